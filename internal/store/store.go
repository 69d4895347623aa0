// Package store provides database access methods for all Inkwell
// entities. Each store struct wraps its own *sql.DB pool and exposes
// typed query methods; the pools may point at different databases.
package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint
// violations.
const pgUniqueViolation = "23505"

// IsUniqueViolation reports whether err is a PostgreSQL unique
// constraint violation, e.g. a duplicate category name.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
