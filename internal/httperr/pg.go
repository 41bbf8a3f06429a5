package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgExclusionViolation   = "23P01"
	pgSerializationFailure = "40001"
	pgUniqueViolation      = "23505"
	pgDeadlockDetected     = "40P01"
)

// IsExclusionConflict reports whether err is a Postgres constraint or
// serialization failure that should surface as a slot conflict rather
// than an internal error.
func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgExclusionViolation, pgSerializationFailure, pgUniqueViolation, pgDeadlockDetected:
		return true
	}
	return false
}
