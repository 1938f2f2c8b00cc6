package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"eventhotelbooking/internal/domain"
)

type bookingService struct {
	bookingRepo    domain.BookingRepository
	roomRepo       domain.RoomRepository
	enrollmentRepo domain.EnrollmentRepository
	ticketRepo     domain.TicketRepository
	userRepo       domain.UserRepository
	mailer         domain.Mailer
	logger         *slog.Logger
}

// NewBookingService creates the booking allocation engine. mailer may be nil
// to disable confirmation email.
func NewBookingService(
	bookingRepo domain.BookingRepository,
	roomRepo domain.RoomRepository,
	enrollmentRepo domain.EnrollmentRepository,
	ticketRepo domain.TicketRepository,
	userRepo domain.UserRepository,
	mailer domain.Mailer,
	logger *slog.Logger,
) domain.BookingService {
	return &bookingService{
		bookingRepo:    bookingRepo,
		roomRepo:       roomRepo,
		enrollmentRepo: enrollmentRepo,
		ticketRepo:     ticketRepo,
		userRepo:       userRepo,
		mailer:         mailer,
		logger:         logger,
	}
}

func (s *bookingService) GetByUserID(ctx context.Context, userID int) (*domain.BookingWithRoom, error) {
	booking, err := s.bookingRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("get booking for user: %w", err)
	}
	return booking, nil
}

// Create runs the ordered allocation checks for a new booking:
// room exists, user has no booking yet, user is enrolled, ticket is
// eligible, room has a free slot. The first failing check decides the error.
func (s *bookingService) Create(ctx context.Context, userID, roomID int) (int, error) {
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, domain.ErrRoomNotFound
		}
		return 0, fmt.Errorf("get room: %w", err)
	}

	if _, err := s.bookingRepo.GetByUserID(ctx, userID); err == nil {
		return 0, domain.ErrDuplicateBooking
	} else if !errors.Is(err, domain.ErrNotFound) {
		return 0, fmt.Errorf("get booking for user: %w", err)
	}

	enrollment, err := s.enrollmentRepo.GetWithAddressByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, domain.ErrEnrollmentRequired
		}
		return 0, fmt.Errorf("get enrollment: %w", err)
	}

	if err := s.checkTicketEligibility(ctx, enrollment.ID); err != nil {
		return 0, err
	}

	occupied, err := s.bookingRepo.CountByRoomID(ctx, roomID)
	if err != nil {
		return 0, fmt.Errorf("count bookings for room: %w", err)
	}
	if occupied >= room.Capacity {
		return 0, domain.ErrRoomCapacityExceeded
	}

	now := time.Now()
	booking := domain.NewBooking(userID, roomID, now, now)
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		// The store rechecks occupancy under a room lock; a concurrent
		// request may have taken the last slot since the count above.
		if errors.Is(err, domain.ErrRoomCapacityExceeded) {
			return 0, domain.ErrRoomCapacityExceeded
		}
		return 0, fmt.Errorf("create booking: %w", err)
	}

	s.sendConfirmation(ctx, userID, room, booking.ID)
	return booking.ID, nil
}

// ChangeRoom runs the ordered allocation checks for moving an existing
// booking: target room exists, caller holds a booking, caller is enrolled,
// the target booking is the caller's own, ticket is eligible, target room
// has a free slot. A move within the caller's current room does not count
// the booking being moved against the room's capacity.
func (s *bookingService) ChangeRoom(ctx context.Context, bookingID, roomID, userID int) (int, error) {
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, domain.ErrRoomNotFound
		}
		return 0, fmt.Errorf("get room: %w", err)
	}

	current, err := s.bookingRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, domain.ErrBookingNotFound
		}
		return 0, fmt.Errorf("get booking for user: %w", err)
	}

	enrollment, err := s.enrollmentRepo.GetWithAddressByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, domain.ErrEnrollmentRequired
		}
		return 0, fmt.Errorf("get enrollment: %w", err)
	}

	target, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, domain.ErrBookingNotFound
		}
		return 0, fmt.Errorf("get booking: %w", err)
	}
	if target.UserID != userID {
		return 0, domain.ErrBookingNotOwned
	}

	if err := s.checkTicketEligibility(ctx, enrollment.ID); err != nil {
		return 0, err
	}

	occupied, err := s.bookingRepo.CountByRoomID(ctx, roomID)
	if err != nil {
		return 0, fmt.Errorf("count bookings for room: %w", err)
	}
	if current.Room != nil && current.Room.ID == roomID {
		// The caller's booking is already in the target room and will not
		// occupy an extra slot after the move.
		occupied--
	}
	if occupied >= room.Capacity {
		return 0, domain.ErrRoomCapacityExceeded
	}

	if err := s.bookingRepo.ChangeRoom(ctx, bookingID, roomID, time.Now()); err != nil {
		if errors.Is(err, domain.ErrRoomCapacityExceeded) {
			return 0, domain.ErrRoomCapacityExceeded
		}
		if errors.Is(err, domain.ErrNotFound) {
			return 0, domain.ErrBookingNotFound
		}
		return 0, fmt.Errorf("change booking room: %w", err)
	}
	return bookingID, nil
}

// checkTicketEligibility enforces the ticket rules shared by Create and
// ChangeRoom: a ticket must exist, be past RESERVED, belong to a
// non-remote ticket type, and include hotel accommodation.
func (s *bookingService) checkTicketEligibility(ctx context.Context, enrollmentID int) error {
	ticket, err := s.ticketRepo.GetByEnrollmentID(ctx, enrollmentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrTicketNotFound
		}
		return fmt.Errorf("get ticket: %w", err)
	}
	switch {
	case ticket.Status == domain.TicketStatusReserved:
		return domain.ErrTicketNotPaid
	case ticket.TicketType.IsRemote:
		return domain.ErrTicketRemote
	case !ticket.TicketType.IncludesHotel:
		return domain.ErrTicketWithoutHotel
	}
	return nil
}

// sendConfirmation emails the user about the new booking. Email failures are
// logged and never fail the booking.
func (s *bookingService) sendConfirmation(ctx context.Context, userID int, room *domain.Room, bookingID int) {
	if s.mailer == nil {
		return
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		s.logger.WarnContext(ctx, "booking confirmation skipped", "booking_id", bookingID, "err", err)
		return
	}
	subject := "Your hotel booking is confirmed"
	text := fmt.Sprintf("Your booking #%d for room %s is confirmed.", bookingID, room.Name)
	html := fmt.Sprintf("<p>Your booking <strong>#%d</strong> for room <strong>%s</strong> is confirmed.</p>", bookingID, room.Name)
	if err := s.mailer.Send(user.Email, subject, html, text); err != nil {
		s.logger.WarnContext(ctx, "booking confirmation failed", "booking_id", bookingID, "err", err)
	}
}
