package application

import (
	"strings"
	"time"
	"unicode"

	"github.com/IkkkaM/PersonManagement/internal/apperrors"
)

// maxPageSize bounds a single search page.
const maxPageSize = 100

// ValidatePersonCreate checks a create request and returns the message keys
// of every violated rule.
func ValidatePersonCreate(req PersonCreateRequest) []string {
	return validatePersonFields(req)
}

// ValidatePersonUpdate checks an update request with the same rules as
// creation.
func ValidatePersonUpdate(req PersonUpdateRequest) []string {
	return validatePersonFields(PersonCreateRequest(req))
}

func validatePersonFields(req PersonCreateRequest) []string {
	var keys []string

	keys = append(keys, validateName(req.FirstName,
		apperrors.FirstNameRequired, apperrors.FirstNameLength, apperrors.FirstNameInvalidCharacters)...)
	keys = append(keys, validateName(req.LastName,
		apperrors.LastNameRequired, apperrors.LastNameLength, apperrors.LastNameInvalidCharacters)...)

	// First and last name must be written in the same script.
	if req.FirstName != "" && req.LastName != "" &&
		containsGeorgian(req.FirstName) != containsGeorgian(req.LastName) {
		keys = append(keys, apperrors.NamesLanguageInconsistent)
	}

	if !req.Gender.Valid() {
		keys = append(keys, apperrors.GenderInvalid)
	}

	switch number := strings.TrimSpace(req.PersonalNumber); {
	case number == "":
		keys = append(keys, apperrors.PersonalNumberRequired)
	case len(number) != 11:
		keys = append(keys, apperrors.PersonalNumberLength)
	case !allDigits(number):
		keys = append(keys, apperrors.PersonalNumberOnlyDigits)
	}

	if req.DateOfBirth.IsZero() {
		keys = append(keys, apperrors.DateOfBirthRequired)
	} else if !isAtLeast18(req.DateOfBirth) {
		keys = append(keys, apperrors.MinimumAge18Required)
	}

	if req.CityID <= 0 {
		keys = append(keys, apperrors.CityIdRequired)
	}

	if req.PhoneNumbers == nil {
		keys = append(keys, apperrors.PhoneNumbersRequired)
	}
	for _, phone := range req.PhoneNumbers {
		if !phone.Type.Valid() {
			keys = append(keys, apperrors.PhoneTypeInvalid)
		}
		switch number := strings.TrimSpace(phone.Number); {
		case number == "":
			keys = append(keys, apperrors.PhoneNumberRequired)
		case len(number) < 4 || len(number) > 50:
			keys = append(keys, apperrors.PhoneNumberLength)
		}
	}

	return keys
}

// ValidatePersonConnection checks a connection request.
func ValidatePersonConnection(req PersonConnectionRequest) []string {
	var keys []string
	if req.PersonID <= 0 {
		keys = append(keys, apperrors.PersonIdRequired)
	}
	if req.ConnectedPersonID <= 0 {
		keys = append(keys, apperrors.ConnectedPersonIdRequired)
	}
	if req.PersonID > 0 && req.PersonID == req.ConnectedPersonID {
		keys = append(keys, apperrors.CannotConnectToSelf)
	}
	if !req.ConnectionType.Valid() {
		keys = append(keys, apperrors.ConnectionTypeInvalid)
	}
	return keys
}

// ValidateQuickSearch checks a quick-search request.
func ValidateQuickSearch(req QuickSearchRequest) []string {
	var keys []string
	if strings.TrimSpace(req.SearchTerm) == "" {
		keys = append(keys, apperrors.SearchTermRequired)
	}
	keys = append(keys, validatePaging(req.PageNumber, req.PageSize)...)
	return keys
}

// ValidateDetailedSearch checks a detailed-search request.
func ValidateDetailedSearch(req DetailedSearchRequest) []string {
	return validatePaging(req.PageNumber, req.PageSize)
}

func validatePaging(pageNumber, pageSize int) []string {
	var keys []string
	if pageNumber < 1 {
		keys = append(keys, apperrors.PageNumberMustBePositive)
	}
	if pageSize < 1 {
		keys = append(keys, apperrors.PageSizeMustBePositive)
	} else if pageSize > maxPageSize {
		keys = append(keys, apperrors.PageSizeMaximum)
	}
	return keys
}

func validateName(name, requiredKey, lengthKey, charactersKey string) []string {
	name = strings.TrimSpace(name)
	if name == "" {
		return []string{requiredKey}
	}
	if len([]rune(name)) < 2 || len([]rune(name)) > 50 {
		return []string{lengthKey}
	}
	if !isSingleScriptName(name) {
		return []string{charactersKey}
	}
	return nil
}

// isSingleScriptName accepts names written entirely in Georgian or entirely
// in Latin letters (plus spaces, hyphens and apostrophes), never a mix.
func isSingleScriptName(name string) bool {
	hasGeorgian := false
	hasLatin := false
	for _, r := range name {
		switch {
		case r >= 0x10A0 && r <= 0x10FF:
			hasGeorgian = true
		case unicode.In(r, unicode.Latin):
			hasLatin = true
		case r == ' ' || r == '-' || r == '\'':
		default:
			return false
		}
	}
	return hasGeorgian != hasLatin
}

func containsGeorgian(s string) bool {
	for _, r := range s {
		if r >= 0x10A0 && r <= 0x10FF {
			return true
		}
	}
	return false
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isAtLeast18(dateOfBirth time.Time) bool {
	now := time.Now()
	age := now.Year() - dateOfBirth.Year()
	if dateOfBirth.AddDate(age, 0, 0).After(now) {
		age--
	}
	return age >= 18
}
