// Package companies implements the company resource: CRUD plus the derived
// industry listing per company.
package companies

// Company represents a company row.
type Company struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CompanyDetail is a company together with its associated industry display
// names, in join-table order.
type CompanyDetail struct {
	Company    Company
	Industries []string
}

// CreateCompanyInput for creating companies.
type CreateCompanyInput struct {
	Code        string `validate:"required"`
	Name        string `validate:"required"`
	Description string
}

// UpdateCompanyInput for updating companies. CurrentCode, when set, names the
// row to update; otherwise the key is re-derived by slugifying Name the same
// way the code was derived at creation time.
type UpdateCompanyInput struct {
	CurrentCode string
	Name        string `validate:"required"`
	Description string
}
