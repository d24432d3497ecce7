package storage

import (
	"context"

	"github.com/md-rashed-zaman/bookinglite/libs/db"
)

// EnsureSchema creates the tables and unique indexes on startup. Statements
// are idempotent; there is no migration versioning.
func EnsureSchema(ctx context.Context, pool *db.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS accounts (
			id UUID PRIMARY KEY,
			email TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS accounts_email_key ON accounts (email)`,
		`CREATE TABLE IF NOT EXISTS customers (
			id UUID PRIMARY KEY,
			owner_id TEXT NOT NULL DEFAULT '',
			name TEXT NOT NULL,
			phone TEXT NOT NULL,
			time TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS customers_phone_key ON customers (phone)`,
		`CREATE TABLE IF NOT EXISTS businesses (
			id UUID PRIMARY KEY,
			owner_id TEXT NOT NULL DEFAULT '',
			name TEXT NOT NULL,
			image TEXT NOT NULL,
			category TEXT NOT NULL DEFAULT '',
			address TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS businesses_name_key ON businesses (name)`,
		`CREATE TABLE IF NOT EXISTS appointments (
			id UUID PRIMARY KEY,
			customer_id UUID NOT NULL,
			date TEXT NOT NULL,
			time TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT '',
			location TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'scheduled',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS appointments_status_idx ON appointments (status)`,
	}
	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
