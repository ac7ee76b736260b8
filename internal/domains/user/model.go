package user

import (
	"time"

	"github.com/google/uuid"
)

// User is a store account. The password exists only as a bcrypt hash;
// no representation leaving this domain ever carries it.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Name         string
	Address      *Address
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Address is an optional structured postal address.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}
