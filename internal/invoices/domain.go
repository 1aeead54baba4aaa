// Package invoices implements the invoice resource. An invoice belongs to a
// company via comp_code and moves through exactly two states: it is created
// Unpaid, and the first update flips it to Paid with today's date as a side
// effect. There is no transition back; once Paid, updates change the amount
// only.
package invoices

import "time"

// Invoice represents an invoice row.
type Invoice struct {
	ID       int64      `json:"id"`
	CompCode string     `json:"comp_code"`
	Amt      float64    `json:"amt"`
	Paid     bool       `json:"paid"`
	AddDate  time.Time  `json:"add_date"`
	PaidDate *time.Time `json:"paid_date"`
}

// CreateInvoiceInput for creating invoices. The store assigns id and
// add_date; paid defaults to false and paid_date to null.
type CreateInvoiceInput struct {
	CompCode string  `validate:"required"`
	Amt      float64 `validate:"required,gt=0"`
}

// UpdateInvoiceInput carries the new amount for an existing invoice.
type UpdateInvoiceInput struct {
	ID  int64   `validate:"required"`
	Amt float64 `validate:"required,gt=0"`
}
