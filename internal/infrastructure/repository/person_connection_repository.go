package repository

import (
	"context"
	"fmt"

	"github.com/IkkkaM/PersonManagement/internal/domain"
)

// PersonConnectionRepository persists the directional connection rows that
// materialize undirected person-to-person relationships. Storage errors are
// surfaced wrapped but unreinterpreted; classification is the service's job.
type PersonConnectionRepository struct {
	uow *UnitOfWork
}

// Exists reports whether the directional row (personID → connectedPersonID)
// is stored.
func (r *PersonConnectionRepository) Exists(ctx context.Context, personID, connectedPersonID int) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM person_connection
			WHERE person_id = $1 AND connected_person_id = $2
		)
	`

	var exists bool
	err := r.uow.exec().QueryRowContext(ctx, query, personID, connectedPersonID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check connection existence: %w", err)
	}
	return exists, nil
}

// AddBidirectional inserts both reciprocal rows of the unordered pair with
// the same type in a single statement. The caller is responsible for running
// it inside a transaction and for the existence pre-checks.
func (r *PersonConnectionRepository) AddBidirectional(ctx context.Context, personID, connectedPersonID int, connectionType domain.ConnectionType) error {
	forward, err := domain.NewPersonConnection(personID, connectedPersonID, connectionType)
	if err != nil {
		return err
	}
	backward, err := domain.NewPersonConnection(connectedPersonID, personID, connectionType)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO person_connection (
			person_id,
			connected_person_id,
			connection_type,
			created_at,
			updated_at
		) VALUES
			($1, $2, $3, $4, $5),
			($6, $7, $8, $9, $10)
	`

	_, err = r.uow.exec().ExecContext(ctx, query,
		forward.PersonID, forward.ConnectedPersonID, int(forward.ConnectionType), forward.CreatedAt, forward.UpdatedAt,
		backward.PersonID, backward.ConnectedPersonID, int(backward.ConnectionType), backward.CreatedAt, backward.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to add bidirectional connection: %w", err)
	}
	return nil
}

// DeleteBidirectional removes both directional rows of the unordered pair.
func (r *PersonConnectionRepository) DeleteBidirectional(ctx context.Context, personID, connectedPersonID int) error {
	query := `
		DELETE FROM person_connection
		WHERE (person_id = $1 AND connected_person_id = $2)
		   OR (person_id = $2 AND connected_person_id = $1)
	`

	_, err := r.uow.exec().ExecContext(ctx, query, personID, connectedPersonID)
	if err != nil {
		return fmt.Errorf("failed to delete bidirectional connection: %w", err)
	}
	return nil
}

// DeletePersonConnections removes every row naming the person in either
// role, so deleting a person leaves no half-connections behind.
func (r *PersonConnectionRepository) DeletePersonConnections(ctx context.Context, personID int) error {
	query := `
		DELETE FROM person_connection
		WHERE person_id = $1 OR connected_person_id = $1
	`

	_, err := r.uow.exec().ExecContext(ctx, query, personID)
	if err != nil {
		return fmt.Errorf("failed to delete person connections: %w", err)
	}
	return nil
}

// GetPersonConnections lists the person's outgoing connections with the
// connected person's identity, ordered by connected person's name.
func (r *PersonConnectionRepository) GetPersonConnections(ctx context.Context, personID int) ([]domain.PersonConnection, error) {
	query := connectionListQuery + `
		WHERE pc.person_id = $1
		ORDER BY p.first_name, p.last_name
	`

	return r.queryConnections(ctx, query, personID)
}

// GetConnectionsByType lists the person's outgoing connections of one type,
// with the same ordering.
func (r *PersonConnectionRepository) GetConnectionsByType(ctx context.Context, personID int, connectionType domain.ConnectionType) ([]domain.PersonConnection, error) {
	query := connectionListQuery + `
		WHERE pc.person_id = $1 AND pc.connection_type = $2
		ORDER BY p.first_name, p.last_name
	`

	return r.queryConnections(ctx, query, personID, int(connectionType))
}

const connectionListQuery = `
		SELECT
			pc.person_connection_id,
			pc.person_id,
			pc.connected_person_id,
			pc.connection_type,
			pc.created_at,
			pc.updated_at,
			p.first_name,
			p.last_name,
			p.personal_number
		FROM person_connection pc
		INNER JOIN person p ON p.person_id = pc.connected_person_id
`

func (r *PersonConnectionRepository) queryConnections(ctx context.Context, query string, args ...any) ([]domain.PersonConnection, error) {
	rows, err := r.uow.exec().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get connections: %w", err)
	}
	defer rows.Close()

	var connections []domain.PersonConnection
	for rows.Next() {
		var pc domain.PersonConnection
		var connected domain.Person

		err := rows.Scan(
			&pc.ID,
			&pc.PersonID,
			&pc.ConnectedPersonID,
			&pc.ConnectionType,
			&pc.CreatedAt,
			&pc.UpdatedAt,
			&connected.FirstName,
			&connected.LastName,
			&connected.PersonalNumber,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan connection: %w", err)
		}

		connected.ID = pc.ConnectedPersonID
		pc.ConnectedPerson = &connected
		connections = append(connections, pc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read connections: %w", err)
	}

	return connections, nil
}
