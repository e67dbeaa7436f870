package domain

import (
	"context"
	"time"

	"github.com/IkkkaM/PersonManagement/internal/apperrors"
)

// ConnectionType classifies a person-to-person connection.
type ConnectionType int

const (
	ConnectionColleague    ConnectionType = 1
	ConnectionAcquaintance ConnectionType = 2
	ConnectionRelative     ConnectionType = 3
	ConnectionOther        ConnectionType = 4
)

// Valid reports whether t is a known connection type.
func (t ConnectionType) Valid() bool {
	return t >= ConnectionColleague && t <= ConnectionOther
}

func (t ConnectionType) String() string {
	switch t {
	case ConnectionColleague:
		return "Colleague"
	case ConnectionAcquaintance:
		return "Acquaintance"
	case ConnectionRelative:
		return "Relative"
	case ConnectionOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// PersonConnection is one directional row of an undirected relationship.
// Every logical connection between two persons is stored as two reciprocal
// rows with the same type; the repository's bidirectional operations keep
// that symmetry.
type PersonConnection struct {
	ID                int            `json:"id"`
	PersonID          int            `json:"personId"`
	ConnectedPersonID int            `json:"connectedPersonId"`
	ConnectionType    ConnectionType `json:"connectionType"`
	ConnectedPerson   *Person        `json:"connectedPerson,omitempty"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}

// NewPersonConnection builds a validated directional connection row.
func NewPersonConnection(personID, connectedPersonID int, connectionType ConnectionType) (*PersonConnection, error) {
	if personID <= 0 {
		return nil, apperrors.Validation(apperrors.PersonIdRequired)
	}
	if connectedPersonID <= 0 {
		return nil, apperrors.Validation(apperrors.ConnectedPersonIdRequired)
	}
	if personID == connectedPersonID {
		return nil, apperrors.Validation(apperrors.CannotConnectToSelf)
	}
	if !connectionType.Valid() {
		return nil, apperrors.Validation(apperrors.ConnectionTypeInvalid)
	}
	now := time.Now().UTC()
	return &PersonConnection{
		PersonID:          personID,
		ConnectedPersonID: connectedPersonID,
		ConnectionType:    connectionType,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

// PersonConnectionRepository defines connection persistence operations.
// AddBidirectional and DeleteBidirectional are the only safe public write
// paths; they maintain the two-reciprocal-rows invariant inside the
// caller's transaction.
type PersonConnectionRepository interface {
	// Exists reports whether the directional row (personID → connectedPersonID) exists.
	Exists(ctx context.Context, personID, connectedPersonID int) (bool, error)
	// AddBidirectional inserts both reciprocal rows with the same type.
	// Callers must have verified that both persons exist and that neither
	// direction exists yet.
	AddBidirectional(ctx context.Context, personID, connectedPersonID int, connectionType ConnectionType) error
	// DeleteBidirectional removes both directional rows of the unordered pair.
	DeleteBidirectional(ctx context.Context, personID, connectedPersonID int) error
	// DeletePersonConnections removes every row naming the person in
	// either role.
	DeletePersonConnections(ctx context.Context, personID int) error
	// GetPersonConnections lists the person's outgoing connections ordered
	// by connected person's first then last name.
	GetPersonConnections(ctx context.Context, personID int) ([]PersonConnection, error)
	// GetConnectionsByType lists outgoing connections of one type, with
	// the same ordering.
	GetConnectionsByType(ctx context.Context, personID int, connectionType ConnectionType) ([]PersonConnection, error)
}
