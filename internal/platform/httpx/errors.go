package httpx

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors for the handler and repository layers. Repositories wrap
// these with a key-specific message; RespondError maps them to statuses.
var (
	ErrNotFound   = errors.New("resource not found")
	ErrDuplicate  = errors.New("duplicate entry")
	ErrValidation = errors.New("validation failed")
)

// PostgreSQL SQLSTATE classes that map cleanly onto client errors.
const (
	sqlstateUniqueViolation     = "23505"
	sqlstateForeignKeyViolation = "23503"
)

// RespondError maps a domain error to the API error envelope. Anything that
// is not one of the sentinel errors is a store failure and stays generic.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrValidation):
		Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrDuplicate):
		Error(w, http.StatusConflict, err.Error())
	default:
		Error(w, http.StatusInternalServerError, "internal server error")
	}
}

// StoreError classifies a pgx error. Unique violations surface as duplicates,
// foreign-key violations as validation failures (the client referenced a row
// that does not exist); everything else passes through untouched and ends up
// as a 500.
func StoreError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case sqlstateUniqueViolation:
			return ErrDuplicate
		case sqlstateForeignKeyViolation:
			return ErrValidation
		}
	}
	return err
}
