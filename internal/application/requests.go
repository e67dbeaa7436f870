package application

import (
	"time"

	"github.com/IkkkaM/PersonManagement/internal/domain"
)

// PhoneNumberRequest is one phone number of a create/update request.
type PhoneNumberRequest struct {
	Type   domain.PhoneType `json:"type"`
	Number string           `json:"number"`
}

// PersonCreateRequest carries all fields of a new person.
type PersonCreateRequest struct {
	FirstName      string               `json:"firstName"`
	LastName       string               `json:"lastName"`
	Gender         domain.Gender        `json:"gender"`
	PersonalNumber string               `json:"personalNumber"`
	DateOfBirth    time.Time            `json:"dateOfBirth"`
	CityID         int                  `json:"cityId"`
	PhoneNumbers   []PhoneNumberRequest `json:"phoneNumbers"`
}

// PersonUpdateRequest carries the full replacement state of a person,
// including the whole phone-number collection.
type PersonUpdateRequest struct {
	FirstName      string               `json:"firstName"`
	LastName       string               `json:"lastName"`
	Gender         domain.Gender        `json:"gender"`
	PersonalNumber string               `json:"personalNumber"`
	DateOfBirth    time.Time            `json:"dateOfBirth"`
	CityID         int                  `json:"cityId"`
	PhoneNumbers   []PhoneNumberRequest `json:"phoneNumbers"`
}

// PersonConnectionRequest asks to connect two persons.
type PersonConnectionRequest struct {
	PersonID          int                   `json:"personId"`
	ConnectedPersonID int                   `json:"connectedPersonId"`
	ConnectionType    domain.ConnectionType `json:"connectionType"`
}

// QuickSearchRequest is a paged substring search over names and personal
// numbers.
type QuickSearchRequest struct {
	SearchTerm string `json:"searchTerm"`
	PageNumber int    `json:"pageNumber"`
	PageSize   int    `json:"pageSize"`
}

// DetailedSearchRequest is a paged search with optional conjunctive filters.
type DetailedSearchRequest struct {
	FirstName       string                `json:"firstName"`
	LastName        string                `json:"lastName"`
	PersonalNumber  string                `json:"personalNumber"`
	Gender          *domain.Gender        `json:"gender"`
	DateOfBirthFrom *time.Time            `json:"dateOfBirthFrom"`
	DateOfBirthTo   *time.Time            `json:"dateOfBirthTo"`
	CityID          *int                  `json:"cityId"`
	PageNumber      int                   `json:"pageNumber"`
	PageSize        int                   `json:"pageSize"`
}

// Filters converts the request's optional fields into repository filters.
func (r DetailedSearchRequest) Filters() domain.PersonSearchFilters {
	return domain.PersonSearchFilters{
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		PersonalNumber:  r.PersonalNumber,
		Gender:          r.Gender,
		DateOfBirthFrom: r.DateOfBirthFrom,
		DateOfBirthTo:   r.DateOfBirthTo,
		CityID:          r.CityID,
	}
}
