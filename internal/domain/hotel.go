package domain

import (
	"context"
	"time"
)

// Hotel groups rooms. It exists as a referenced entity only; hotel listing
// is out of scope for this service.
type Hotel struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Room is a bookable hotel room. Capacity is the maximum number of
// simultaneous bookings the room may hold.
// swagger:model Room
type Room struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	HotelID   int       `json:"hotelId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RoomRepository defines the interface for room storage
type RoomRepository interface {
	GetByID(ctx context.Context, id int) (*Room, error)
}
