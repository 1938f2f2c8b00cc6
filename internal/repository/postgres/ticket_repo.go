package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventhotelbooking/internal/domain"
)

type ticketRepository struct {
	DB *sql.DB
}

func NewTicketRepository(db *sql.DB) domain.TicketRepository {
	return &ticketRepository{
		DB: db,
	}
}

func (r *ticketRepository) GetByEnrollmentID(ctx context.Context, enrollmentID int) (*domain.Ticket, error) {
	query := `
		SELECT t.id, t.enrollment_id, t.ticket_type_id, t.status, t.created_at, t.updated_at,
		       tt.id, tt.name, tt.price, tt.is_remote, tt.includes_hotel, tt.created_at, tt.updated_at
		FROM tickets t
		JOIN ticket_types tt ON tt.id = t.ticket_type_id
		WHERE t.enrollment_id = $1
	`
	ticket := &domain.Ticket{}
	err := r.DB.QueryRowContext(ctx, query, enrollmentID).Scan(
		&ticket.ID, &ticket.EnrollmentID, &ticket.TicketTypeID, &ticket.Status,
		&ticket.CreatedAt, &ticket.UpdatedAt,
		&ticket.TicketType.ID, &ticket.TicketType.Name, &ticket.TicketType.Price,
		&ticket.TicketType.IsRemote, &ticket.TicketType.IncludesHotel,
		&ticket.TicketType.CreatedAt, &ticket.TicketType.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return ticket, nil
}
