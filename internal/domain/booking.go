package domain

import (
	"context"
	"time"
)

// Booking links one user to one room. A user holds at most one active
// booking; bookings are never deleted by this service, only moved between
// rooms.
type Booking struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	RoomID    int       `json:"roomId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewBooking returns a new Booking. ID is set by the repository on create.
func NewBooking(userID, roomID int, createdAt, updatedAt time.Time) *Booking {
	return &Booking{
		UserID:    userID,
		RoomID:    roomID,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// BookingWithRoom bundles a booking with its room's public attributes.
// The field name "Room" is part of the API response shape.
// swagger:model BookingWithRoom
type BookingWithRoom struct {
	ID   int   `json:"id"`
	Room *Room `json:"Room"`
}

// BookingRepository defines storage operations for bookings. Create and
// ChangeRoom recheck room occupancy inside a transaction that locks the room
// row, and return ErrRoomCapacityExceeded when the room is full at write
// time.
type BookingRepository interface {
	GetByUserID(ctx context.Context, userID int) (*BookingWithRoom, error)
	GetByID(ctx context.Context, id int) (*Booking, error)
	CountByRoomID(ctx context.Context, roomID int) (int, error)
	Create(ctx context.Context, booking *Booking) error
	ChangeRoom(ctx context.Context, bookingID, roomID int, updatedAt time.Time) error
}

// BookingService is the booking allocation engine: the ordered eligibility
// and capacity checks that govern whether a create or room-change request
// may proceed.
type BookingService interface {
	// GetByUserID returns the caller's booking with its room, or
	// ErrBookingNotFound.
	GetByUserID(ctx context.Context, userID int) (*BookingWithRoom, error)
	// Create books roomID for userID and returns the new booking's ID.
	Create(ctx context.Context, userID, roomID int) (int, error)
	// ChangeRoom moves the caller's booking to roomID and returns bookingID.
	ChangeRoom(ctx context.Context, bookingID, roomID, userID int) (int, error)
}
