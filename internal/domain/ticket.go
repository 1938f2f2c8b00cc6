package domain

import (
	"context"
	"time"
)

// Ticket statuses relevant to hotel booking eligibility.
const (
	TicketStatusReserved = "RESERVED"
	TicketStatusPaid     = "PAID"
)

// Ticket is a purchased (or reserved) access tier for an enrollment.
type Ticket struct {
	ID           int        `json:"id"`
	EnrollmentID int        `json:"enrollmentId"`
	TicketTypeID int        `json:"ticketTypeId"`
	Status       string     `json:"status"`
	TicketType   TicketType `json:"TicketType"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// TicketType carries the flags that determine hotel eligibility.
type TicketType struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Price         int       `json:"price"`
	IsRemote      bool      `json:"isRemote"`
	IncludesHotel bool      `json:"includesHotel"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// TicketRepository defines the interface for ticket storage
type TicketRepository interface {
	// GetByEnrollmentID returns the enrollment's ticket with its ticket type
	// populated, or ErrNotFound when no ticket exists.
	GetByEnrollmentID(ctx context.Context, enrollmentID int) (*Ticket, error)
}
