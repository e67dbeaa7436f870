package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/IkkkaM/PersonManagement/internal/domain"
)

// PersonRepository implements person persistence over PostgreSQL.
type PersonRepository struct {
	uow *UnitOfWork
}

const personColumns = `
			person.person_id,
			person.first_name,
			person.last_name,
			person.gender,
			person.personal_number,
			person.date_of_birth,
			person.city_id,
			person.image_path,
			person.created_at,
			person.updated_at
`

// Create inserts the person and fills in its generated ID.
func (r *PersonRepository) Create(ctx context.Context, person *domain.Person) error {
	query := `
		INSERT INTO person (
			first_name,
			last_name,
			gender,
			personal_number,
			date_of_birth,
			city_id,
			image_path,
			created_at,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING person_id
	`

	err := r.uow.exec().QueryRowContext(ctx, query,
		person.FirstName,
		person.LastName,
		int(person.Gender),
		person.PersonalNumber,
		person.DateOfBirth,
		person.CityID,
		toNullString(person.ImagePath),
		person.CreatedAt,
		person.UpdatedAt,
	).Scan(&person.ID)
	if err != nil {
		return fmt.Errorf("failed to create person: %w", err)
	}
	return nil
}

// GetByID fetches the bare person row.
func (r *PersonRepository) GetByID(ctx context.Context, id int) (*domain.Person, error) {
	query := `SELECT` + personColumns + `FROM person WHERE person_id = $1`

	person, err := r.scanPerson(r.uow.exec().QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get person: %w", err)
	}
	return person, nil
}

// GetByPersonalNumber fetches the person holding the personal number.
// Returns nil when no person uses it.
func (r *PersonRepository) GetByPersonalNumber(ctx context.Context, personalNumber string) (*domain.Person, error) {
	query := `SELECT` + personColumns + `FROM person WHERE person.personal_number = $1`

	person, err := r.scanPerson(r.uow.exec().QueryRowContext(ctx, query, personalNumber))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get person by personal number: %w", err)
	}
	return person, nil
}

// GetWithDetails hydrates a person with city, phone numbers and outgoing
// connections in one read path. Returns nil when the person does not exist.
func (r *PersonRepository) GetWithDetails(ctx context.Context, id int) (*domain.Person, error) {
	query := `
		SELECT` + personColumns + `,
			c.name
		FROM person
		INNER JOIN city c ON c.city_id = person.city_id
		WHERE person.person_id = $1
	`

	row := r.uow.exec().QueryRowContext(ctx, query, id)

	person := &domain.Person{}
	var imagePath sql.NullString
	var cityName string
	err := row.Scan(
		&person.ID,
		&person.FirstName,
		&person.LastName,
		&person.Gender,
		&person.PersonalNumber,
		&person.DateOfBirth,
		&person.CityID,
		&imagePath,
		&person.CreatedAt,
		&person.UpdatedAt,
		&cityName,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get person details: %w", err)
	}
	if imagePath.Valid {
		person.ImagePath = &imagePath.String
	}
	person.City = &domain.City{ID: person.CityID, Name: cityName}

	phones, err := r.uow.Phones.GetByPersonID(ctx, id)
	if err != nil {
		return nil, err
	}
	person.PhoneNumbers = phones

	connections, err := r.uow.Connections.GetPersonConnections(ctx, id)
	if err != nil {
		return nil, err
	}
	person.Connections = connections

	return person, nil
}

// Exists reports whether a person row with the given id exists.
func (r *PersonRepository) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.uow.exec().QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM person WHERE person_id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check person existence: %w", err)
	}
	return exists, nil
}

// IsPersonalNumberUnique reports whether no other person uses the personal
// number. A non-zero excludePersonID leaves that person out of the check.
func (r *PersonRepository) IsPersonalNumberUnique(ctx context.Context, personalNumber string, excludePersonID int) (bool, error) {
	var exists bool
	err := r.uow.exec().QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM person
			WHERE personal_number = $1 AND person_id <> $2
		)
	`, personalNumber, excludePersonID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check personal number uniqueness: %w", err)
	}
	return !exists, nil
}

// Update overwrites the person's basic fields.
func (r *PersonRepository) Update(ctx context.Context, person *domain.Person) error {
	query := `
		UPDATE person
		SET
			first_name = $1,
			last_name = $2,
			gender = $3,
			personal_number = $4,
			date_of_birth = $5,
			city_id = $6,
			image_path = $7,
			updated_at = $8
		WHERE person_id = $9
	`

	result, err := r.uow.exec().ExecContext(ctx, query,
		person.FirstName,
		person.LastName,
		int(person.Gender),
		person.PersonalNumber,
		person.DateOfBirth,
		person.CityID,
		toNullString(person.ImagePath),
		person.UpdatedAt,
		person.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update person: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to verify person update: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes the person row.
func (r *PersonRepository) Delete(ctx context.Context, id int) error {
	result, err := r.uow.exec().ExecContext(ctx, `DELETE FROM person WHERE person_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to verify person deletion: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// QuickSearch matches the term against first name, last name and personal
// number, case-insensitively, ordered by first then last name.
func (r *PersonRepository) QuickSearch(ctx context.Context, term string, pageNumber, pageSize int) (*domain.Paged[domain.Person], error) {
	where := `
		WHERE person.first_name ILIKE '%' || $1 || '%'
		   OR person.last_name ILIKE '%' || $1 || '%'
		   OR person.personal_number LIKE '%' || $1 || '%'
	`
	return r.pagedSearch(ctx, where, []any{term}, pageNumber, pageSize)
}

// DetailedSearch applies the given filters conjunctively, with the same
// ordering and pagination contract as QuickSearch.
func (r *PersonRepository) DetailedSearch(ctx context.Context, filters domain.PersonSearchFilters, pageNumber, pageSize int) (*domain.Paged[domain.Person], error) {
	var conditions []string
	var args []any

	addCondition := func(condition string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(condition, len(args)))
	}

	if filters.FirstName != "" {
		addCondition(`person.first_name ILIKE '%%' || $%d || '%%'`, filters.FirstName)
	}
	if filters.LastName != "" {
		addCondition(`person.last_name ILIKE '%%' || $%d || '%%'`, filters.LastName)
	}
	if filters.PersonalNumber != "" {
		addCondition(`person.personal_number LIKE '%%' || $%d || '%%'`, filters.PersonalNumber)
	}
	if filters.Gender != nil {
		addCondition(`person.gender = $%d`, int(*filters.Gender))
	}
	if filters.DateOfBirthFrom != nil {
		addCondition(`person.date_of_birth >= $%d`, *filters.DateOfBirthFrom)
	}
	if filters.DateOfBirthTo != nil {
		addCondition(`person.date_of_birth <= $%d`, *filters.DateOfBirthTo)
	}
	if filters.CityID != nil {
		addCondition(`person.city_id = $%d`, *filters.CityID)
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}
	return r.pagedSearch(ctx, where, args, pageNumber, pageSize)
}

func (r *PersonRepository) pagedSearch(ctx context.Context, where string, args []any, pageNumber, pageSize int) (*domain.Paged[domain.Person], error) {
	countQuery := `SELECT COUNT(*) FROM person ` + where

	var totalCount int
	if err := r.uow.exec().QueryRowContext(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, fmt.Errorf("failed to count search results: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT`+personColumns+`,
			c.name
		FROM person
		INNER JOIN city c ON c.city_id = person.city_id
		%s
		ORDER BY person.first_name, person.last_name
		OFFSET $%d LIMIT $%d
	`, where, len(args)+1, len(args)+2)
	args = append(args, (pageNumber-1)*pageSize, pageSize)

	rows, err := r.uow.exec().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search persons: %w", err)
	}
	defer rows.Close()

	items := make([]domain.Person, 0, pageSize)
	for rows.Next() {
		person := domain.Person{}
		var imagePath sql.NullString
		var cityName string

		err := rows.Scan(
			&person.ID,
			&person.FirstName,
			&person.LastName,
			&person.Gender,
			&person.PersonalNumber,
			&person.DateOfBirth,
			&person.CityID,
			&imagePath,
			&person.CreatedAt,
			&person.UpdatedAt,
			&cityName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		if imagePath.Valid {
			person.ImagePath = &imagePath.String
		}
		person.City = &domain.City{ID: person.CityID, Name: cityName}
		items = append(items, person)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read search results: %w", err)
	}

	return &domain.Paged[domain.Person]{
		Items:      items,
		TotalCount: totalCount,
		PageNumber: pageNumber,
		PageSize:   pageSize,
	}, nil
}

// GetAllPersonsConnectionReport builds the per-person connection-count
// report: one query for person identities, one for grouped connection
// counts, joined in memory. Every person appears; persons without
// connections get an empty count map.
func (r *PersonRepository) GetAllPersonsConnectionReport(ctx context.Context) ([]domain.PersonConnectionReportItem, error) {
	personsQuery := `
		SELECT person_id, first_name, last_name
		FROM person
		ORDER BY person_id
	`

	rows, err := r.uow.exec().QueryContext(ctx, personsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to get persons for report: %w", err)
	}
	defer rows.Close()

	var report []domain.PersonConnectionReportItem
	for rows.Next() {
		item := domain.PersonConnectionReportItem{
			ConnectionCounts: make(map[domain.ConnectionType]int),
		}
		if err := rows.Scan(&item.PersonID, &item.FirstName, &item.LastName); err != nil {
			return nil, fmt.Errorf("failed to scan report person: %w", err)
		}
		report = append(report, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read report persons: %w", err)
	}

	countsQuery := `
		SELECT person_id, connection_type, COUNT(*)
		FROM person_connection
		GROUP BY person_id, connection_type
	`

	countRows, err := r.uow.exec().QueryContext(ctx, countsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to get connection counts: %w", err)
	}
	defer countRows.Close()

	counts := make(map[int]map[domain.ConnectionType]int)
	for countRows.Next() {
		var personID int
		var connectionType domain.ConnectionType
		var count int
		if err := countRows.Scan(&personID, &connectionType, &count); err != nil {
			return nil, fmt.Errorf("failed to scan connection count: %w", err)
		}
		if counts[personID] == nil {
			counts[personID] = make(map[domain.ConnectionType]int)
		}
		counts[personID][connectionType] = count
	}
	if err := countRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read connection counts: %w", err)
	}

	for i := range report {
		if c, ok := counts[report[i].PersonID]; ok {
			report[i].ConnectionCounts = c
		}
	}
	return report, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *PersonRepository) scanPerson(row rowScanner) (*domain.Person, error) {
	person := &domain.Person{}
	var imagePath sql.NullString

	err := row.Scan(
		&person.ID,
		&person.FirstName,
		&person.LastName,
		&person.Gender,
		&person.PersonalNumber,
		&person.DateOfBirth,
		&person.CityID,
		&imagePath,
		&person.CreatedAt,
		&person.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if imagePath.Valid {
		person.ImagePath = &imagePath.String
	}
	return person, nil
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
