package storage

import (
	"context"

	"github.com/md-rashed-zaman/bookinglite/internal/model"
	"github.com/md-rashed-zaman/bookinglite/libs/db"
)

var businessColumns = []string{"name", "image", "category", "address", "phone"}

type BusinessRepository struct {
	pool *db.Pool
}

func NewBusinessRepository(pool *db.Pool) *BusinessRepository {
	return &BusinessRepository{pool: pool}
}

func (r *BusinessRepository) Create(ctx context.Context, b model.Business) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO businesses (id, owner_id, name, image, category, address, phone, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, b.ID, b.OwnerID, b.Name, b.Image, b.Category, b.Address, b.Phone, b.CreatedAt)
	return err
}

func (r *BusinessRepository) NameExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM businesses WHERE name = $1)
	`, name).Scan(&exists)
	return exists, err
}

func (r *BusinessRepository) List(ctx context.Context, ownerID string) ([]model.Business, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, owner_id, name, image, category, address, phone, created_at
		FROM businesses
		WHERE ($1 = '' OR owner_id = $1)
		ORDER BY created_at
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var businesses []model.Business
	for rows.Next() {
		var b model.Business
		if err := rows.Scan(&b.ID, &b.OwnerID, &b.Name, &b.Image, &b.Category, &b.Address, &b.Phone, &b.CreatedAt); err != nil {
			return nil, err
		}
		businesses = append(businesses, b)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return businesses, nil
}

func (r *BusinessRepository) Update(ctx context.Context, id string, fields map[string]string) error {
	return updateColumns(ctx, r.pool, "businesses", businessColumns, id, fields)
}

func (r *BusinessRepository) Delete(ctx context.Context, id string) error {
	return deleteRow(ctx, r.pool, "businesses", id)
}
