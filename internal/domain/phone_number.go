package domain

import (
	"context"
	"strings"
	"time"

	"github.com/IkkkaM/PersonManagement/internal/apperrors"
)

// PhoneType of a phone number.
type PhoneType int

const (
	PhoneTypeMobile PhoneType = 1
	PhoneTypeOffice PhoneType = 2
	PhoneTypeHome   PhoneType = 3
)

// Valid reports whether t is a known phone type.
func (t PhoneType) Valid() bool {
	return t >= PhoneTypeMobile && t <= PhoneTypeHome
}

// PhoneNumber owned by a person. Cascade-deleted with its person.
type PhoneNumber struct {
	ID        int       `json:"id"`
	Type      PhoneType `json:"type"`
	Number    string    `json:"number"`
	PersonID  int       `json:"personId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewPhoneNumber builds a validated phone number. personID may be zero when
// the owning person has not been persisted yet.
func NewPhoneNumber(phoneType PhoneType, number string, personID int) (*PhoneNumber, error) {
	number = strings.TrimSpace(number)
	if !phoneType.Valid() {
		return nil, apperrors.Validation(apperrors.PhoneTypeInvalid)
	}
	if number == "" {
		return nil, apperrors.Validation(apperrors.PhoneNumberRequired)
	}
	if len(number) < 4 || len(number) > 50 {
		return nil, apperrors.Validation(apperrors.PhoneNumberLength)
	}
	now := time.Now().UTC()
	return &PhoneNumber{
		Type:      phoneType,
		Number:    number,
		PersonID:  personID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// PhoneNumberRepository defines phone-number persistence operations.
type PhoneNumberRepository interface {
	GetByPersonID(ctx context.Context, personID int) ([]PhoneNumber, error)
	Create(ctx context.Context, number *PhoneNumber) error
	// DeleteByPersonID removes every phone number owned by the person.
	DeleteByPersonID(ctx context.Context, personID int) error
}
