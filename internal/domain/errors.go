package domain

import (
	"errors"
	"fmt"
)

// Outcome kinds surfaced by the booking engine. Controllers map these onto
// HTTP status codes; everything the engine returns satisfies errors.Is
// against exactly one of them.
var (
	ErrNotFound             = errors.New("not found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrIneligibleTicket     = errors.New("ticket does not allow hotel booking")
	ErrRoomCapacityExceeded = errors.New("room is at maximum capacity")
)

// Cause errors wrap a kind so internal diagnostics stay precise while the
// external mapping remains many-to-one.
var (
	ErrRoomNotFound    = fmt.Errorf("room %w", ErrNotFound)
	ErrBookingNotFound = fmt.Errorf("booking %w", ErrNotFound)

	ErrEnrollmentRequired = fmt.Errorf("%w: user has no enrollment", ErrUnauthorized)
	ErrDuplicateBooking   = fmt.Errorf("%w: user already has a booking", ErrUnauthorized)
	ErrBookingNotOwned    = fmt.Errorf("%w: booking belongs to another user", ErrUnauthorized)

	ErrTicketNotFound     = fmt.Errorf("%w: enrollment has no ticket", ErrIneligibleTicket)
	ErrTicketNotPaid      = fmt.Errorf("%w: ticket is still reserved", ErrIneligibleTicket)
	ErrTicketRemote       = fmt.Errorf("%w: ticket type is remote", ErrIneligibleTicket)
	ErrTicketWithoutHotel = fmt.Errorf("%w: ticket type does not include hotel", ErrIneligibleTicket)
)

// Sentinel errors for user and session operations.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateEmail     = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
