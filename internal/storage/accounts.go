package storage

import (
	"context"

	"github.com/md-rashed-zaman/bookinglite/internal/model"
	"github.com/md-rashed-zaman/bookinglite/libs/db"
)

// Mutable profile columns. The password hash is deliberately not
// updatable through the profile endpoint.
var accountColumns = []string{"email", "name", "phone"}

type AccountRepository struct {
	pool *db.Pool
}

func NewAccountRepository(pool *db.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

func (r *AccountRepository) Create(ctx context.Context, a model.Account) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO accounts (id, email, password_hash, name, phone, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, a.ID, a.Email, a.PasswordHash, a.Name, a.Phone, a.CreatedAt)
	return err
}

func (r *AccountRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM accounts WHERE email = $1)
	`, email).Scan(&exists)
	return exists, err
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (model.Account, error) {
	return r.scanOne(r.pool.QueryRow(ctx, `
		SELECT id, email, password_hash, name, phone, created_at
		FROM accounts
		WHERE email = $1
	`, email))
}

func (r *AccountRepository) GetByID(ctx context.Context, id string) (model.Account, error) {
	return r.scanOne(r.pool.QueryRow(ctx, `
		SELECT id, email, password_hash, name, phone, created_at
		FROM accounts
		WHERE id = $1
	`, id))
}

func (r *AccountRepository) Update(ctx context.Context, id string, fields map[string]string) error {
	return updateColumns(ctx, r.pool, "accounts", accountColumns, id, fields)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *AccountRepository) scanOne(row rowScanner) (model.Account, error) {
	var a model.Account
	err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Name, &a.Phone, &a.CreatedAt)
	if err != nil {
		return model.Account{}, err
	}
	return a, nil
}
