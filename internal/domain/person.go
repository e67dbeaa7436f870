package domain

import (
	"context"
	"strings"
	"time"

	"github.com/IkkkaM/PersonManagement/internal/apperrors"
)

// Gender of a person.
type Gender int

const (
	GenderMale   Gender = 1
	GenderFemale Gender = 2
)

// Valid reports whether g is a known gender value.
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// Person is a directory entry. Fields are exported for storage scanning;
// all outside mutation goes through NewPerson and the Update* methods,
// which validate before changing any state.
type Person struct {
	ID             int                `json:"id"`
	FirstName      string             `json:"firstName"`
	LastName       string             `json:"lastName"`
	Gender         Gender             `json:"gender"`
	PersonalNumber string             `json:"personalNumber"`
	DateOfBirth    time.Time          `json:"dateOfBirth"`
	CityID         int                `json:"cityId"`
	ImagePath      *string            `json:"imagePath,omitempty"`
	City           *City              `json:"city,omitempty"`
	PhoneNumbers   []PhoneNumber      `json:"phoneNumbers,omitempty"`
	Connections    []PersonConnection `json:"connections,omitempty"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

// NewPerson builds a validated person.
func NewPerson(firstName, lastName string, gender Gender, personalNumber string, dateOfBirth time.Time, cityID int) (*Person, error) {
	p := &Person{}
	if err := p.setBasicInfo(firstName, lastName, gender, personalNumber, dateOfBirth, cityID); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	return p, nil
}

// UpdateBasicInfo re-validates and applies the core person fields.
func (p *Person) UpdateBasicInfo(firstName, lastName string, gender Gender, personalNumber string, dateOfBirth time.Time, cityID int) error {
	if err := p.setBasicInfo(firstName, lastName, gender, personalNumber, dateOfBirth, cityID); err != nil {
		return err
	}
	p.UpdatedAt = time.Now().UTC()
	return nil
}

// UpdateImagePath records the stored image path. An empty path clears it.
func (p *Person) UpdateImagePath(imagePath string) {
	imagePath = strings.TrimSpace(imagePath)
	if imagePath == "" {
		p.ImagePath = nil
	} else {
		p.ImagePath = &imagePath
	}
	p.UpdatedAt = time.Now().UTC()
}

// SetPhoneNumbers replaces the whole phone-number collection after
// validating every entry. Partial phone updates are not supported.
func (p *Person) SetPhoneNumbers(numbers []PhoneNumber) error {
	validated := make([]PhoneNumber, 0, len(numbers))
	for _, n := range numbers {
		pn, err := NewPhoneNumber(n.Type, n.Number, p.ID)
		if err != nil {
			return err
		}
		validated = append(validated, *pn)
	}
	p.PhoneNumbers = validated
	p.UpdatedAt = time.Now().UTC()
	return nil
}

// Age returns the person's age in full years as of today.
func (p *Person) Age() int {
	return ageAt(p.DateOfBirth, time.Now())
}

func (p *Person) setBasicInfo(firstName, lastName string, gender Gender, personalNumber string, dateOfBirth time.Time, cityID int) error {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	personalNumber = strings.TrimSpace(personalNumber)

	if firstName == "" {
		return apperrors.Validation(apperrors.FirstNameRequired)
	}
	if lastName == "" {
		return apperrors.Validation(apperrors.LastNameRequired)
	}
	if !gender.Valid() {
		return apperrors.Validation(apperrors.GenderInvalid)
	}
	if len(personalNumber) != 11 {
		return apperrors.Validation(apperrors.PersonalNumberLength)
	}
	if dateOfBirth.IsZero() {
		return apperrors.Validation(apperrors.DateOfBirthRequired)
	}
	if ageAt(dateOfBirth, time.Now()) < 18 {
		return apperrors.Validation(apperrors.MinimumAge18Required)
	}
	if cityID <= 0 {
		return apperrors.Validation(apperrors.CityIdRequired)
	}

	p.FirstName = firstName
	p.LastName = lastName
	p.Gender = gender
	p.PersonalNumber = personalNumber
	p.DateOfBirth = dateOfBirth
	p.CityID = cityID
	return nil
}

func ageAt(dateOfBirth, now time.Time) int {
	age := now.Year() - dateOfBirth.Year()
	if dateOfBirth.AddDate(age, 0, 0).After(now) {
		age--
	}
	return age
}

// PersonConnectionReportItem is one row of the per-person connection-count
// report. Persons without connections carry an empty ConnectionCounts map.
type PersonConnectionReportItem struct {
	PersonID         int
	FirstName        string
	LastName         string
	ConnectionCounts map[ConnectionType]int
}

// TotalConnections sums the per-type counts.
func (r PersonConnectionReportItem) TotalConnections() int {
	total := 0
	for _, n := range r.ConnectionCounts {
		total += n
	}
	return total
}

// Paged wraps one page of query results together with the total match count.
type Paged[T any] struct {
	Items      []T
	TotalCount int
	PageNumber int
	PageSize   int
}

// PersonSearchFilters describes the optional conjunctive filters of a
// detailed search. Zero-valued fields are ignored.
type PersonSearchFilters struct {
	FirstName       string
	LastName        string
	PersonalNumber  string
	Gender          *Gender
	DateOfBirthFrom *time.Time
	DateOfBirthTo   *time.Time
	CityID          *int
}

// PersonRepository defines person persistence operations.
type PersonRepository interface {
	// Create inserts the person and fills in its generated ID.
	Create(ctx context.Context, person *Person) error
	// GetByID fetches the bare person row.
	GetByID(ctx context.Context, id int) (*Person, error)
	// GetWithDetails hydrates a person with city, phone numbers and
	// outgoing connections (including connected-person identity).
	GetWithDetails(ctx context.Context, id int) (*Person, error)
	// Exists reports whether a person row with the given id exists.
	Exists(ctx context.Context, id int) (bool, error)
	// GetByPersonalNumber fetches the person holding the personal number,
	// nil when nobody uses it.
	GetByPersonalNumber(ctx context.Context, personalNumber string) (*Person, error)
	// IsPersonalNumberUnique reports whether no other person uses the
	// personal number. excludePersonID skips one person (0 skips none).
	IsPersonalNumberUnique(ctx context.Context, personalNumber string, excludePersonID int) (bool, error)
	// Update overwrites the person's basic fields.
	Update(ctx context.Context, person *Person) error
	// Delete removes the person row.
	Delete(ctx context.Context, id int) error
	// QuickSearch matches the term against first name, last name and
	// personal number, case-insensitively.
	QuickSearch(ctx context.Context, term string, pageNumber, pageSize int) (*Paged[Person], error)
	// DetailedSearch applies the given filters conjunctively.
	DetailedSearch(ctx context.Context, filters PersonSearchFilters, pageNumber, pageSize int) (*Paged[Person], error)
	// GetAllPersonsConnectionReport returns one report row per person.
	GetAllPersonsConnectionReport(ctx context.Context) ([]PersonConnectionReportItem, error)
}
