package domain

import (
	"context"
	"time"
)

// Enrollment is a user's registration record for the event. A user has at
// most one enrollment (unique constraint on user_id).
type Enrollment struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	UserID    int       `json:"userId"`
	Address   *Address  `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Address is the enrollment's postal address. The booking rules only care
// that one exists.
type Address struct {
	ID           int       `json:"id"`
	EnrollmentID int       `json:"enrollmentId"`
	Street       string    `json:"street"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	PostalCode   string    `json:"postalCode"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// EnrollmentRepository defines the interface for enrollment storage
type EnrollmentRepository interface {
	// GetWithAddressByUserID returns the user's enrollment together with its
	// address, or ErrNotFound when the user never enrolled.
	GetWithAddressByUserID(ctx context.Context, userID int) (*Enrollment, error)
}
