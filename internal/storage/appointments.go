package storage

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/md-rashed-zaman/bookinglite/internal/model"
	"github.com/md-rashed-zaman/bookinglite/libs/db"
)

var appointmentColumns = []string{"date", "time", "category", "location", "status"}

type AppointmentRepository struct {
	pool *db.Pool
}

func NewAppointmentRepository(pool *db.Pool) *AppointmentRepository {
	return &AppointmentRepository{pool: pool}
}

func (r *AppointmentRepository) Create(ctx context.Context, a model.Appointment) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO appointments (id, customer_id, date, time, category, location, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, a.ID, a.CustomerID, a.Date, a.Time, a.Category, a.Location, a.Status, a.CreatedAt)
	return err
}

// List returns appointments with the given status in insertion order,
// optionally narrowed to one customer.
func (r *AppointmentRepository) List(ctx context.Context, status, customerID string) ([]model.Appointment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, customer_id, date, time, category, location, status, created_at
		FROM appointments
		WHERE status = $1
			AND ($2 = '' OR customer_id::text = $2)
		ORDER BY created_at
	`, status, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var appts []model.Appointment
	for rows.Next() {
		var a model.Appointment
		if err := rows.Scan(&a.ID, &a.CustomerID, &a.Date, &a.Time, &a.Category, &a.Location, &a.Status, &a.CreatedAt); err != nil {
			return nil, err
		}
		appts = append(appts, a)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return appts, nil
}

func (r *AppointmentRepository) Update(ctx context.Context, id string, fields map[string]string) error {
	return updateColumns(ctx, r.pool, "appointments", appointmentColumns, id, fields)
}

// Complete sets the status unconditionally, so completing an already
// completed appointment succeeds.
func (r *AppointmentRepository) Complete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE appointments
		SET status = $2
		WHERE id = $1
	`, id, model.StatusCompleted)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, id string) error {
	return deleteRow(ctx, r.pool, "appointments", id)
}
