package handlers

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/md-rashed-zaman/bookinglite/internal/model"
)

// The fakes mirror the storage contracts: pgx.ErrNoRows for missing rows,
// PgError 23505 for unique violations.

func conflictErr() error {
	return &pgconn.PgError{Code: "23505"}
}

type fakeAccounts struct {
	byID    map[string]model.Account
	updates map[string]map[string]string
}

func newFakeAccounts(accounts ...model.Account) *fakeAccounts {
	f := &fakeAccounts{
		byID:    map[string]model.Account{},
		updates: map[string]map[string]string{},
	}
	for _, a := range accounts {
		f.byID[a.ID] = a
	}
	return f
}

func (f *fakeAccounts) Create(_ context.Context, a model.Account) error {
	for _, existing := range f.byID {
		if existing.Email == a.Email {
			return conflictErr()
		}
	}
	f.byID[a.ID] = a
	return nil
}

func (f *fakeAccounts) EmailExists(_ context.Context, email string) (bool, error) {
	for _, a := range f.byID {
		if a.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAccounts) GetByEmail(_ context.Context, email string) (model.Account, error) {
	for _, a := range f.byID {
		if a.Email == email {
			return a, nil
		}
	}
	return model.Account{}, pgx.ErrNoRows
}

func (f *fakeAccounts) GetByID(_ context.Context, id string) (model.Account, error) {
	a, ok := f.byID[id]
	if !ok {
		return model.Account{}, pgx.ErrNoRows
	}
	return a, nil
}

func (f *fakeAccounts) Update(_ context.Context, id string, fields map[string]string) error {
	if _, ok := f.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	f.updates[id] = fields
	return nil
}

type fakeCustomers struct {
	byID    map[string]model.Customer
	order   []string
	updates map[string]map[string]string
}

func newFakeCustomers(customers ...model.Customer) *fakeCustomers {
	f := &fakeCustomers{
		byID:    map[string]model.Customer{},
		updates: map[string]map[string]string{},
	}
	for _, c := range customers {
		f.byID[c.ID] = c
		f.order = append(f.order, c.ID)
	}
	return f
}

func (f *fakeCustomers) Create(_ context.Context, c model.Customer) error {
	for _, existing := range f.byID {
		if existing.Phone == c.Phone {
			return conflictErr()
		}
	}
	f.byID[c.ID] = c
	f.order = append(f.order, c.ID)
	return nil
}

func (f *fakeCustomers) PhoneExists(_ context.Context, phone string) (bool, error) {
	for _, c := range f.byID {
		if c.Phone == phone {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCustomers) List(_ context.Context, ownerID string) ([]model.Customer, error) {
	var out []model.Customer
	for _, id := range f.order {
		c, ok := f.byID[id]
		if !ok {
			continue
		}
		if ownerID == "" || c.OwnerID == ownerID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCustomers) GetByID(_ context.Context, id string) (model.Customer, error) {
	c, ok := f.byID[id]
	if !ok {
		return model.Customer{}, pgx.ErrNoRows
	}
	return c, nil
}

func (f *fakeCustomers) Update(_ context.Context, id string, fields map[string]string) error {
	if _, ok := f.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	f.updates[id] = fields
	return nil
}

func (f *fakeCustomers) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.byID, id)
	return nil
}

type fakeBusinesses struct {
	byID    map[string]model.Business
	order   []string
	updates map[string]map[string]string
}

func newFakeBusinesses(businesses ...model.Business) *fakeBusinesses {
	f := &fakeBusinesses{
		byID:    map[string]model.Business{},
		updates: map[string]map[string]string{},
	}
	for _, b := range businesses {
		f.byID[b.ID] = b
		f.order = append(f.order, b.ID)
	}
	return f
}

func (f *fakeBusinesses) Create(_ context.Context, b model.Business) error {
	for _, existing := range f.byID {
		if existing.Name == b.Name {
			return conflictErr()
		}
	}
	f.byID[b.ID] = b
	f.order = append(f.order, b.ID)
	return nil
}

func (f *fakeBusinesses) NameExists(_ context.Context, name string) (bool, error) {
	for _, b := range f.byID {
		if b.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBusinesses) List(_ context.Context, ownerID string) ([]model.Business, error) {
	var out []model.Business
	for _, id := range f.order {
		b, ok := f.byID[id]
		if !ok {
			continue
		}
		if ownerID == "" || b.OwnerID == ownerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBusinesses) Update(_ context.Context, id string, fields map[string]string) error {
	if _, ok := f.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	f.updates[id] = fields
	return nil
}

func (f *fakeBusinesses) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.byID, id)
	return nil
}

type fakeAppointments struct {
	byID    map[string]model.Appointment
	order   []string
	updates map[string]map[string]string
}

func newFakeAppointments(appts ...model.Appointment) *fakeAppointments {
	f := &fakeAppointments{
		byID:    map[string]model.Appointment{},
		updates: map[string]map[string]string{},
	}
	for _, a := range appts {
		f.byID[a.ID] = a
		f.order = append(f.order, a.ID)
	}
	return f
}

func (f *fakeAppointments) Create(_ context.Context, a model.Appointment) error {
	f.byID[a.ID] = a
	f.order = append(f.order, a.ID)
	return nil
}

func (f *fakeAppointments) List(_ context.Context, status, customerID string) ([]model.Appointment, error) {
	var out []model.Appointment
	for _, id := range f.order {
		a, ok := f.byID[id]
		if !ok {
			continue
		}
		if a.Status != status {
			continue
		}
		if customerID != "" && a.CustomerID != customerID {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeAppointments) Update(_ context.Context, id string, fields map[string]string) error {
	if _, ok := f.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	f.updates[id] = fields
	return nil
}

func (f *fakeAppointments) Complete(_ context.Context, id string) error {
	a, ok := f.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	a.Status = model.StatusCompleted
	f.byID[id] = a
	return nil
}

func (f *fakeAppointments) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.byID, id)
	return nil
}
