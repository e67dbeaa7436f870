package repository

import (
	"context"
	"fmt"

	"github.com/IkkkaM/PersonManagement/internal/domain"
)

// PhoneNumberRepository implements phone-number persistence over PostgreSQL.
type PhoneNumberRepository struct {
	uow *UnitOfWork
}

// GetByPersonID lists the person's phone numbers ordered by id.
func (r *PhoneNumberRepository) GetByPersonID(ctx context.Context, personID int) ([]domain.PhoneNumber, error) {
	query := `
		SELECT phone_number_id, type, number, person_id, created_at, updated_at
		FROM phone_number
		WHERE person_id = $1
		ORDER BY phone_number_id
	`

	rows, err := r.uow.exec().QueryContext(ctx, query, personID)
	if err != nil {
		return nil, fmt.Errorf("failed to get phone numbers: %w", err)
	}
	defer rows.Close()

	var numbers []domain.PhoneNumber
	for rows.Next() {
		var n domain.PhoneNumber
		err := rows.Scan(&n.ID, &n.Type, &n.Number, &n.PersonID, &n.CreatedAt, &n.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan phone number: %w", err)
		}
		numbers = append(numbers, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read phone numbers: %w", err)
	}
	return numbers, nil
}

// Create inserts the phone number and fills in its generated ID.
func (r *PhoneNumberRepository) Create(ctx context.Context, number *domain.PhoneNumber) error {
	query := `
		INSERT INTO phone_number (type, number, person_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING phone_number_id
	`

	err := r.uow.exec().QueryRowContext(ctx, query,
		int(number.Type), number.Number, number.PersonID, number.CreatedAt, number.UpdatedAt,
	).Scan(&number.ID)
	if err != nil {
		return fmt.Errorf("failed to create phone number: %w", err)
	}
	return nil
}

// DeleteByPersonID removes every phone number owned by the person.
func (r *PhoneNumberRepository) DeleteByPersonID(ctx context.Context, personID int) error {
	_, err := r.uow.exec().ExecContext(ctx,
		`DELETE FROM phone_number WHERE person_id = $1`, personID)
	if err != nil {
		return fmt.Errorf("failed to delete phone numbers: %w", err)
	}
	return nil
}
