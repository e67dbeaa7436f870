package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/IkkkaM/PersonManagement/internal/apperrors"
	"github.com/IkkkaM/PersonManagement/internal/domain"
)

func TestValidatePersonCreate_Valid(t *testing.T) {
	assert.Empty(t, ValidatePersonCreate(validCreateRequest()))
}

func TestValidatePersonCreate_GeorgianNames(t *testing.T) {
	req := validCreateRequest()
	req.FirstName = "გიორგი"
	req.LastName = "ბერიძე"
	assert.Empty(t, ValidatePersonCreate(req))
}

func TestValidatePersonCreate_MixedScriptName(t *testing.T) {
	req := validCreateRequest()
	req.FirstName = "Giorgiგ"
	keys := ValidatePersonCreate(req)
	assert.Contains(t, keys, apperrors.FirstNameInvalidCharacters)
}

func TestValidatePersonCreate_InconsistentScripts(t *testing.T) {
	req := validCreateRequest()
	req.FirstName = "გიორგი"
	req.LastName = "Beridze"
	keys := ValidatePersonCreate(req)
	assert.Contains(t, keys, apperrors.NamesLanguageInconsistent)
}

func TestValidatePersonCreate_CollectsAllViolations(t *testing.T) {
	req := PersonCreateRequest{
		FirstName:      "",
		LastName:       "B",
		Gender:         domain.Gender(0),
		PersonalNumber: "123",
		DateOfBirth:    time.Time{},
		CityID:         0,
		PhoneNumbers:   nil,
	}

	keys := ValidatePersonCreate(req)
	assert.Contains(t, keys, apperrors.FirstNameRequired)
	assert.Contains(t, keys, apperrors.LastNameLength)
	assert.Contains(t, keys, apperrors.GenderInvalid)
	assert.Contains(t, keys, apperrors.PersonalNumberLength)
	assert.Contains(t, keys, apperrors.DateOfBirthRequired)
	assert.Contains(t, keys, apperrors.CityIdRequired)
	assert.Contains(t, keys, apperrors.PhoneNumbersRequired)
}

func TestValidatePersonCreate_PersonalNumberDigitsOnly(t *testing.T) {
	req := validCreateRequest()
	req.PersonalNumber = "0100503409a"
	keys := ValidatePersonCreate(req)
	assert.Contains(t, keys, apperrors.PersonalNumberOnlyDigits)
}

func TestValidatePersonCreate_Under18(t *testing.T) {
	req := validCreateRequest()
	req.DateOfBirth = time.Now().AddDate(-17, -11, 0)
	keys := ValidatePersonCreate(req)
	assert.Contains(t, keys, apperrors.MinimumAge18Required)
}

func TestValidatePersonCreate_ExactlyEighteenToday(t *testing.T) {
	req := validCreateRequest()
	req.DateOfBirth = time.Now().AddDate(-18, 0, 0)
	keys := ValidatePersonCreate(req)
	assert.NotContains(t, keys, apperrors.MinimumAge18Required)
}

func TestValidatePersonCreate_PhoneRules(t *testing.T) {
	req := validCreateRequest()
	req.PhoneNumbers = []PhoneNumberRequest{
		{Type: domain.PhoneType(9), Number: "123"},
	}
	keys := ValidatePersonCreate(req)
	assert.Contains(t, keys, apperrors.PhoneTypeInvalid)
	assert.Contains(t, keys, apperrors.PhoneNumberLength)
}

func TestValidatePersonCreate_EmptyPhoneListAllowed(t *testing.T) {
	req := validCreateRequest()
	req.PhoneNumbers = []PhoneNumberRequest{}
	keys := ValidatePersonCreate(req)
	assert.NotContains(t, keys, apperrors.PhoneNumbersRequired)
}

func TestValidatePersonConnection(t *testing.T) {
	assert.Empty(t, ValidatePersonConnection(PersonConnectionRequest{
		PersonID:          1,
		ConnectedPersonID: 2,
		ConnectionType:    domain.ConnectionAcquaintance,
	}))

	keys := ValidatePersonConnection(PersonConnectionRequest{
		PersonID:          4,
		ConnectedPersonID: 4,
		ConnectionType:    domain.ConnectionType(0),
	})
	assert.Contains(t, keys, apperrors.CannotConnectToSelf)
	assert.Contains(t, keys, apperrors.ConnectionTypeInvalid)
}

func TestValidateDetailedSearch_PagingOnly(t *testing.T) {
	assert.Empty(t, ValidateDetailedSearch(DetailedSearchRequest{PageNumber: 1, PageSize: 10}))

	keys := ValidateDetailedSearch(DetailedSearchRequest{PageNumber: 0, PageSize: 0})
	assert.Contains(t, keys, apperrors.PageNumberMustBePositive)
	assert.Contains(t, keys, apperrors.PageSizeMustBePositive)
}
