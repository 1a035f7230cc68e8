package db

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/odyssey-erp/inventory-api/internal/shared"
)

// SQLSTATE codes surfaced on StorageError for diagnostics.
const (
	CodeUniqueViolation     = "23505"
	CodeForeignKeyViolation = "23503"
	CodeCheckViolation      = "23514"
)

// Wrap converts a driver error into a *shared.StorageError. A nil err stays nil.
func Wrap(op, entity string, id int64, err error) error {
	if err == nil {
		return nil
	}
	se := &shared.StorageError{Op: op, Entity: entity, ID: id, Err: err}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		se.Code = pgErr.Code
		se.Constraint = pgErr.ConstraintName
	}
	return se
}

// HasCode reports whether err (or a StorageError around it) carries the given SQLSTATE.
func HasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	var se *shared.StorageError
	if errors.As(err, &se) {
		return se.Code == code
	}
	return false
}
