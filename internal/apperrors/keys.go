package apperrors

// Localization keys emitted by validators, entities and services. The
// localization provider resolves each key to display text for the
// requested language.
const (
	FirstNameRequired          = "FirstNameRequired"
	FirstNameLength            = "FirstNameLength"
	FirstNameInvalidCharacters = "FirstNameInvalidCharacters"

	LastNameRequired          = "LastNameRequired"
	LastNameLength            = "LastNameLength"
	LastNameInvalidCharacters = "LastNameInvalidCharacters"

	NamesLanguageInconsistent = "NamesLanguageInconsistent"

	GenderRequired = "GenderRequired"
	GenderInvalid  = "GenderInvalid"

	PersonalNumberRequired      = "PersonalNumberRequired"
	PersonalNumberLength        = "PersonalNumberLength"
	PersonalNumberOnlyDigits    = "PersonalNumberOnlyDigits"
	PersonalNumberAlreadyExists = "PersonalNumberAlreadyExists"

	DateOfBirthRequired  = "DateOfBirthRequired"
	MinimumAge18Required = "MinimumAge18Required"

	CityIdRequired    = "CityIdRequired"
	CityNotFound      = "CityNotFound"
	CityNameRequired  = "CityNameRequired"
	CityAlreadyExists = "CityAlreadyExists"
	CityInUse         = "CityInUse"

	PhoneNumbersRequired = "PhoneNumbersRequired"
	PhoneTypeInvalid     = "PhoneTypeInvalid"
	PhoneNumberRequired  = "PhoneNumberRequired"
	PhoneNumberLength    = "PhoneNumberLength"

	PersonIdRequired          = "PersonIdRequired"
	ConnectedPersonIdRequired = "ConnectedPersonIdRequired"
	ConnectionTypeInvalid     = "ConnectionTypeInvalid"
	CannotConnectToSelf       = "CannotConnectToSelf"
	ConnectionAlreadyExists   = "ConnectionAlreadyExists"
	ConnectionNotFound        = "ConnectionNotFound"

	SearchTermRequired       = "SearchTermRequired"
	PageNumberMustBePositive = "PageNumberMustBePositive"
	PageSizeMustBePositive   = "PageSizeMustBePositive"
	PageSizeMaximum          = "PageSizeMaximum"

	PersonNotFound      = "PersonNotFound"
	ValidationFailed    = "ValidationFailed"
	InternalServerError = "InternalServerError"

	FileUploadFailed  = "FileUploadFailed"
	InvalidFileFormat = "InvalidFileFormat"
	FileTooLarge      = "FileTooLarge"
	FileNotFound      = "FileNotFound"

	DatabaseOperationFailed = "DatabaseOperationFailed"
)
