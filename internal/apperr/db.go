package apperr

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

// dbErrorClass describes how a Postgres SQLSTATE maps onto the public error
// contract. Unknown states fall back to a generic 500 DATABASE_ERROR.
type dbErrorClass struct {
	Status  int
	Code    string
	Message string
}

// pgErrorClasses is the classification table for driver failures.
// Extend it here when new constraint classes need dedicated handling.
var pgErrorClasses = map[string]dbErrorClass{
	// unique_violation
	"23505": {http.StatusConflict, CodeDuplicateEntry, "A record with this value already exists"},
	// foreign_key_violation
	"23503": {http.StatusBadRequest, CodeInvalidRef, "Referenced record does not exist"},
	// not_null_violation
	"23502": {http.StatusBadRequest, CodeMissingField, "A required field is missing"},
}

// FromDBError translates a low-level database error into an AppError,
// classifying known Postgres SQLSTATEs via pgErrorClasses. AppErrors pass
// through untouched so repositories can surface domain errors directly.
func FromDBError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if class, ok := pgErrorClasses[pgErr.Code]; ok {
			return &AppError{
				Status:  class.Status,
				Code:    class.Code,
				Message: class.Message,
				Cause:   err,
			}
		}
	}

	return &AppError{
		Status:  http.StatusInternalServerError,
		Code:    CodeDatabase,
		Message: "Database operation failed",
		Cause:   err,
	}
}
