package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"eventhotelbooking/internal/domain"
)

func TestTicketRepository_GetByEnrollmentID(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("success joins ticket type", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		rows := sqlmock.NewRows([]string{
			"id", "enrollment_id", "ticket_type_id", "status", "created_at", "updated_at",
			"id", "name", "price", "is_remote", "includes_hotel", "created_at", "updated_at",
		}).AddRow(
			9, 5, 3, domain.TicketStatusPaid, createdAt, createdAt,
			3, "Presential with hotel", 60000, false, true, createdAt, createdAt,
		)
		mock.ExpectQuery(`SELECT t.id, t.enrollment_id, t.ticket_type_id, t.status`).
			WithArgs(5).
			WillReturnRows(rows)

		repo := NewTicketRepository(db)
		ticket, err := repo.GetByEnrollmentID(ctx, 5)
		require.NoError(t, err)
		require.Equal(t, 9, ticket.ID)
		require.Equal(t, domain.TicketStatusPaid, ticket.Status)
		require.False(t, ticket.TicketType.IsRemote)
		require.True(t, ticket.TicketType.IncludesHotel)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no ticket", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT t.id, t.enrollment_id, t.ticket_type_id, t.status`).
			WithArgs(6).
			WillReturnError(sql.ErrNoRows)

		repo := NewTicketRepository(db)
		_, err = repo.GetByEnrollmentID(ctx, 6)
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRoomRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		rows := sqlmock.NewRows([]string{"id", "name", "capacity", "hotel_id", "created_at", "updated_at"}).
			AddRow(7, "204", 3, 2, createdAt, createdAt)
		mock.ExpectQuery(`SELECT id, name, capacity, hotel_id`).
			WithArgs(7).
			WillReturnRows(rows)

		repo := NewRoomRepository(db)
		room, err := repo.GetByID(ctx, 7)
		require.NoError(t, err)
		require.Equal(t, &domain.Room{
			ID: 7, Name: "204", Capacity: 3, HotelID: 2,
			CreatedAt: createdAt, UpdatedAt: createdAt,
		}, room)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown room", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, name, capacity, hotel_id`).
			WithArgs(99).
			WillReturnError(sql.ErrNoRows)

		repo := NewRoomRepository(db)
		_, err = repo.GetByID(ctx, 99)
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
