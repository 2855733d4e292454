package repositories

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/planflow/plan-engine/pkg/apperrors"
)

// PostgreSQL error codes surfaced as part of the error taxonomy.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translateDBError maps driver errors onto the application taxonomy:
// no rows -> ErrNotFound, uniqueness -> ErrConflict, foreign key ->
// ErrInvalidReference, unreachable datastore -> ErrConnection. Everything
// else passes through unchanged.
func translateDBError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", apperrors.ErrConflict, pgErr.ConstraintName)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s", apperrors.ErrInvalidReference, pgErr.ConstraintName)
		}
		return err
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return fmt.Errorf("%w: %v", apperrors.ErrConnection, err)
	}

	return err
}
