package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"eventhotelbooking/internal/domain"
)

type bookingRepository struct {
	DB *sql.DB
}

func NewBookingRepository(db *sql.DB) domain.BookingRepository {
	return &bookingRepository{
		DB: db,
	}
}

func (r *bookingRepository) GetByUserID(ctx context.Context, userID int) (*domain.BookingWithRoom, error) {
	query := `
		SELECT b.id, r.id, r.name, r.capacity, r.hotel_id, r.created_at, r.updated_at
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		WHERE b.user_id = $1
	`
	b := &domain.BookingWithRoom{Room: &domain.Room{}}
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&b.ID,
		&b.Room.ID, &b.Room.Name, &b.Room.Capacity, &b.Room.HotelID,
		&b.Room.CreatedAt, &b.Room.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id int) (*domain.Booking, error) {
	query := `
		SELECT id, user_id, room_id, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`
	b := &domain.Booking{}
	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&b.ID, &b.UserID, &b.RoomID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) CountByRoomID(ctx context.Context, roomID int) (int, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE room_id = $1`
	var count int
	if err := r.DB.QueryRowContext(ctx, query, roomID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// Create inserts the booking inside a transaction that locks the room row
// and recounts occupancy, so two concurrent requests cannot overbook a room.
func (r *bookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	capacity, occupied, err := lockRoomAndCount(ctx, tx, booking.RoomID, 0)
	if err != nil {
		return err
	}
	if occupied >= capacity {
		return domain.ErrRoomCapacityExceeded
	}

	query := `
		INSERT INTO bookings (user_id, room_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	if err := tx.QueryRowContext(ctx, query, booking.UserID, booking.RoomID, booking.CreatedAt, booking.UpdatedAt).
		Scan(&booking.ID); err != nil {
		return err
	}
	return tx.Commit()
}

// ChangeRoom moves the booking to roomID under the same room-row lock as
// Create. The booking being moved is excluded from the occupancy count, so a
// move within the same room does not count against the room's capacity.
func (r *bookingRepository) ChangeRoom(ctx context.Context, bookingID, roomID int, updatedAt time.Time) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	capacity, occupied, err := lockRoomAndCount(ctx, tx, roomID, bookingID)
	if err != nil {
		return err
	}
	if occupied >= capacity {
		return domain.ErrRoomCapacityExceeded
	}

	query := `UPDATE bookings SET room_id = $1, updated_at = $2 WHERE id = $3`
	res, err := tx.ExecContext(ctx, query, roomID, updatedAt, bookingID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return tx.Commit()
}

// lockRoomAndCount locks the room row and returns its capacity together with
// the number of bookings currently in the room. excludeBookingID, when
// non-zero, is left out of the count.
func lockRoomAndCount(ctx context.Context, tx *sql.Tx, roomID, excludeBookingID int) (capacity, occupied int, err error) {
	if err = tx.QueryRowContext(ctx, `SELECT capacity FROM rooms WHERE id = $1 FOR UPDATE`, roomID).
		Scan(&capacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, 0, domain.ErrNotFound
		}
		return 0, 0, err
	}
	countQuery := `SELECT COUNT(*) FROM bookings WHERE room_id = $1 AND id <> $2`
	if err = tx.QueryRowContext(ctx, countQuery, roomID, excludeBookingID).Scan(&occupied); err != nil {
		return 0, 0, err
	}
	return capacity, occupied, nil
}
