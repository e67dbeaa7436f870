package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/IkkkaM/PersonManagement/internal/domain"
)

// CityRepository implements city persistence over PostgreSQL.
type CityRepository struct {
	uow *UnitOfWork
}

// GetAll lists every city ordered by name.
func (r *CityRepository) GetAll(ctx context.Context) ([]domain.City, error) {
	query := `
		SELECT city_id, name, created_at, updated_at
		FROM city
		ORDER BY name
	`

	rows, err := r.uow.exec().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get cities: %w", err)
	}
	defer rows.Close()

	var cities []domain.City
	for rows.Next() {
		var city domain.City
		if err := rows.Scan(&city.ID, &city.Name, &city.CreatedAt, &city.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan city: %w", err)
		}
		cities = append(cities, city)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cities: %w", err)
	}
	return cities, nil
}

// GetByID fetches one city. Returns nil when it does not exist.
func (r *CityRepository) GetByID(ctx context.Context, id int) (*domain.City, error) {
	query := `
		SELECT city_id, name, created_at, updated_at
		FROM city
		WHERE city_id = $1
	`

	city := &domain.City{}
	err := r.uow.exec().QueryRowContext(ctx, query, id).Scan(
		&city.ID, &city.Name, &city.CreatedAt, &city.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get city: %w", err)
	}
	return city, nil
}

// Exists reports whether a city row with the given id exists.
func (r *CityRepository) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.uow.exec().QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM city WHERE city_id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check city existence: %w", err)
	}
	return exists, nil
}

// IsReferenced reports whether any person references the city. Cities in
// use cannot be deleted.
func (r *CityRepository) IsReferenced(ctx context.Context, id int) (bool, error) {
	var referenced bool
	err := r.uow.exec().QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM person WHERE city_id = $1)`, id).Scan(&referenced)
	if err != nil {
		return false, fmt.Errorf("failed to check city references: %w", err)
	}
	return referenced, nil
}

// Create inserts the city and fills in its generated ID.
func (r *CityRepository) Create(ctx context.Context, city *domain.City) error {
	query := `
		INSERT INTO city (name, created_at, updated_at)
		VALUES ($1, $2, $3)
		RETURNING city_id
	`

	err := r.uow.exec().QueryRowContext(ctx, query, city.Name, city.CreatedAt, city.UpdatedAt).Scan(&city.ID)
	if err != nil {
		return fmt.Errorf("failed to create city: %w", err)
	}
	return nil
}

// Update overwrites the city name.
func (r *CityRepository) Update(ctx context.Context, city *domain.City) error {
	result, err := r.uow.exec().ExecContext(ctx,
		`UPDATE city SET name = $1, updated_at = $2 WHERE city_id = $3`,
		city.Name, city.UpdatedAt, city.ID)
	if err != nil {
		return fmt.Errorf("failed to update city: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to verify city update: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes the city row. Referential checks are the caller's job.
func (r *CityRepository) Delete(ctx context.Context, id int) error {
	result, err := r.uow.exec().ExecContext(ctx, `DELETE FROM city WHERE city_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete city: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to verify city deletion: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
