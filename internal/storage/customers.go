package storage

import (
	"context"

	"github.com/md-rashed-zaman/bookinglite/internal/model"
	"github.com/md-rashed-zaman/bookinglite/libs/db"
)

var customerColumns = []string{"name", "phone", "time"}

type CustomerRepository struct {
	pool *db.Pool
}

func NewCustomerRepository(pool *db.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

func (r *CustomerRepository) Create(ctx context.Context, c model.Customer) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO customers (id, owner_id, name, phone, time, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, c.ID, c.OwnerID, c.Name, c.Phone, c.Time, c.CreatedAt)
	return err
}

func (r *CustomerRepository) PhoneExists(ctx context.Context, phone string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM customers WHERE phone = $1)
	`, phone).Scan(&exists)
	return exists, err
}

// List returns customers in insertion order. An empty ownerID lists all
// records; otherwise only those scoped to the given owner reference.
func (r *CustomerRepository) List(ctx context.Context, ownerID string) ([]model.Customer, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, owner_id, name, phone, time, created_at
		FROM customers
		WHERE ($1 = '' OR owner_id = $1)
		ORDER BY created_at
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []model.Customer
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.Name, &c.Phone, &c.Time, &c.CreatedAt); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return customers, nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id string) (model.Customer, error) {
	var c model.Customer
	err := r.pool.QueryRow(ctx, `
		SELECT id, owner_id, name, phone, time, created_at
		FROM customers
		WHERE id = $1
	`, id).Scan(&c.ID, &c.OwnerID, &c.Name, &c.Phone, &c.Time, &c.CreatedAt)
	if err != nil {
		return model.Customer{}, err
	}
	return c, nil
}

func (r *CustomerRepository) Update(ctx context.Context, id string, fields map[string]string) error {
	return updateColumns(ctx, r.pool, "customers", customerColumns, id, fields)
}

func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	return deleteRow(ctx, r.pool, "customers", id)
}
