package storage

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// IsConflict reports a unique-index violation. The unique indexes are the
// authoritative uniqueness guard; the handlers' read-then-write pre-checks
// are a best-effort UX optimization and are racy under concurrent
// duplicate submissions.
func IsConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
