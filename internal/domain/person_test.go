package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IkkkaM/PersonManagement/internal/apperrors"
)

func TestNewPerson(t *testing.T) {
	dob := time.Date(1990, 5, 10, 0, 0, 0, 0, time.UTC)

	p, err := NewPerson("Giorgi", "Beridze", GenderMale, "01005034099", dob, 1)
	require.NoError(t, err)
	assert.Equal(t, "Giorgi", p.FirstName)
	assert.Equal(t, "Beridze", p.LastName)
	assert.Equal(t, GenderMale, p.Gender)
	assert.Equal(t, "01005034099", p.PersonalNumber)
	assert.Equal(t, 1, p.CityID)
	assert.False(t, p.CreatedAt.IsZero())
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)
}

func TestNewPerson_TrimsWhitespace(t *testing.T) {
	dob := time.Date(1985, 1, 1, 0, 0, 0, 0, time.UTC)

	p, err := NewPerson("  Nino ", " Lomidze ", GenderFemale, " 12345678901 ", dob, 3)
	require.NoError(t, err)
	assert.Equal(t, "Nino", p.FirstName)
	assert.Equal(t, "Lomidze", p.LastName)
	assert.Equal(t, "12345678901", p.PersonalNumber)
}

func TestNewPerson_Invalid(t *testing.T) {
	dob := time.Date(1990, 5, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		err  error
		key  string
	}{
		{"empty first name", func() error {
			_, err := NewPerson("", "Beridze", GenderMale, "01005034099", dob, 1)
			return err
		}(), apperrors.FirstNameRequired},
		{"empty last name", func() error {
			_, err := NewPerson("Giorgi", "  ", GenderMale, "01005034099", dob, 1)
			return err
		}(), apperrors.LastNameRequired},
		{"bad gender", func() error {
			_, err := NewPerson("Giorgi", "Beridze", Gender(9), "01005034099", dob, 1)
			return err
		}(), apperrors.GenderInvalid},
		{"short personal number", func() error {
			_, err := NewPerson("Giorgi", "Beridze", GenderMale, "1234", dob, 1)
			return err
		}(), apperrors.PersonalNumberLength},
		{"zero date of birth", func() error {
			_, err := NewPerson("Giorgi", "Beridze", GenderMale, "01005034099", time.Time{}, 1)
			return err
		}(), apperrors.DateOfBirthRequired},
		{"under 18", func() error {
			_, err := NewPerson("Giorgi", "Beridze", GenderMale, "01005034099", time.Now().AddDate(-17, 0, 0), 1)
			return err
		}(), apperrors.MinimumAge18Required},
		{"missing city", func() error {
			_, err := NewPerson("Giorgi", "Beridze", GenderMale, "01005034099", dob, 0)
			return err
		}(), apperrors.CityIdRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.err)
			assert.True(t, apperrors.IsValidation(tt.err))
			assert.Equal(t, tt.key, apperrors.KeyOf(tt.err))
		})
	}
}

func TestAgeAt(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		dob  time.Time
		want int
	}{
		{"birthday already passed", time.Date(2000, 3, 1, 0, 0, 0, 0, time.UTC), 26},
		{"birthday today", time.Date(2008, 6, 15, 0, 0, 0, 0, time.UTC), 18},
		{"birthday tomorrow", time.Date(2008, 6, 16, 0, 0, 0, 0, time.UTC), 17},
		{"leap day birth, non-leap year", time.Date(2004, 2, 29, 0, 0, 0, 0, time.UTC), 22},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ageAt(tt.dob, now))
		})
	}
}

func TestUpdateBasicInfo_RejectsWithoutMutating(t *testing.T) {
	dob := time.Date(1990, 5, 10, 0, 0, 0, 0, time.UTC)
	p, err := NewPerson("Giorgi", "Beridze", GenderMale, "01005034099", dob, 1)
	require.NoError(t, err)

	err = p.UpdateBasicInfo("", "Beridze", GenderMale, "01005034099", dob, 1)
	require.Error(t, err)
	assert.Equal(t, "Giorgi", p.FirstName)
}

func TestUpdateImagePath(t *testing.T) {
	dob := time.Date(1990, 5, 10, 0, 0, 0, 0, time.UTC)
	p, err := NewPerson("Giorgi", "Beridze", GenderMale, "01005034099", dob, 1)
	require.NoError(t, err)

	p.UpdateImagePath("images/abc.jpg")
	require.NotNil(t, p.ImagePath)
	assert.Equal(t, "images/abc.jpg", *p.ImagePath)

	p.UpdateImagePath("  ")
	assert.Nil(t, p.ImagePath)
}

func TestPersonConnectionReportItem_TotalConnections(t *testing.T) {
	item := PersonConnectionReportItem{
		ConnectionCounts: map[ConnectionType]int{
			ConnectionColleague: 2,
			ConnectionRelative:  3,
		},
	}
	assert.Equal(t, 5, item.TotalConnections())

	empty := PersonConnectionReportItem{ConnectionCounts: map[ConnectionType]int{}}
	assert.Equal(t, 0, empty.TotalConnections())
}
