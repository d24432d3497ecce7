package model

import "time"

const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
)

// Account is a signed-up user of the booking service. The password hash
// never leaves the server.
type Account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	CreatedAt    time.Time `json:"created_at"`
}

// Customer is a client record. OwnerID is an opaque owner reference used to
// scope listing queries; it is not validated against any other entity.
type Customer struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"customer_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Time      string    `json:"time,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Business struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"customer_id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	Category  string    `json:"category"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// Appointment references a Customer by id. Deleting the customer does not
// cascade here.
type Appointment struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	Category   string    `json:"category"`
	Location   string    `json:"location"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}
