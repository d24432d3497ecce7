package storage

import (
	"context"

	"github.com/md-rashed-zaman/bookinglite/internal/model"
)

// The handlers are written against these interfaces so stores can be faked
// in tests and decorated (see internal/cache).

type AccountStore interface {
	Create(ctx context.Context, a model.Account) error
	EmailExists(ctx context.Context, email string) (bool, error)
	GetByEmail(ctx context.Context, email string) (model.Account, error)
	GetByID(ctx context.Context, id string) (model.Account, error)
	Update(ctx context.Context, id string, fields map[string]string) error
}

type CustomerStore interface {
	Create(ctx context.Context, c model.Customer) error
	PhoneExists(ctx context.Context, phone string) (bool, error)
	List(ctx context.Context, ownerID string) ([]model.Customer, error)
	GetByID(ctx context.Context, id string) (model.Customer, error)
	Update(ctx context.Context, id string, fields map[string]string) error
	Delete(ctx context.Context, id string) error
}

type BusinessStore interface {
	Create(ctx context.Context, b model.Business) error
	NameExists(ctx context.Context, name string) (bool, error)
	List(ctx context.Context, ownerID string) ([]model.Business, error)
	Update(ctx context.Context, id string, fields map[string]string) error
	Delete(ctx context.Context, id string) error
}

type AppointmentStore interface {
	Create(ctx context.Context, a model.Appointment) error
	List(ctx context.Context, status, customerID string) ([]model.Appointment, error)
	Update(ctx context.Context, id string, fields map[string]string) error
	Complete(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
