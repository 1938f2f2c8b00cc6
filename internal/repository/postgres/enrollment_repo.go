package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventhotelbooking/internal/domain"
)

type enrollmentRepository struct {
	DB *sql.DB
}

func NewEnrollmentRepository(db *sql.DB) domain.EnrollmentRepository {
	return &enrollmentRepository{
		DB: db,
	}
}

// GetWithAddressByUserID returns the enrollment only when an address exists
// for it; an address-less enrollment is not usable for hotel booking.
func (r *enrollmentRepository) GetWithAddressByUserID(ctx context.Context, userID int) (*domain.Enrollment, error) {
	query := `
		SELECT e.id, e.name, e.user_id, e.created_at, e.updated_at,
		       a.id, a.enrollment_id, a.street, a.city, a.state, a.postal_code, a.created_at, a.updated_at
		FROM enrollments e
		JOIN addresses a ON a.enrollment_id = e.id
		WHERE e.user_id = $1
	`
	e := &domain.Enrollment{Address: &domain.Address{}}
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&e.ID, &e.Name, &e.UserID, &e.CreatedAt, &e.UpdatedAt,
		&e.Address.ID, &e.Address.EnrollmentID, &e.Address.Street, &e.Address.City,
		&e.Address.State, &e.Address.PostalCode, &e.Address.CreatedAt, &e.Address.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}
