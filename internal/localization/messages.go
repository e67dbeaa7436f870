package localization

import "github.com/IkkkaM/PersonManagement/internal/apperrors"

var englishMessages = map[string]string{
	apperrors.FirstNameRequired:          "First name is required",
	apperrors.FirstNameLength:            "First name must be between 2 and 50 characters",
	apperrors.FirstNameInvalidCharacters: "First name may only contain Georgian or Latin letters, not both",
	apperrors.LastNameRequired:           "Last name is required",
	apperrors.LastNameLength:             "Last name must be between 2 and 50 characters",
	apperrors.LastNameInvalidCharacters:  "Last name may only contain Georgian or Latin letters, not both",
	apperrors.NamesLanguageInconsistent:  "First and last name must be written in the same language",

	apperrors.GenderRequired: "Gender is required",
	apperrors.GenderInvalid:  "Gender is invalid",

	apperrors.PersonalNumberRequired:      "Personal number is required",
	apperrors.PersonalNumberLength:        "Personal number must be exactly 11 characters",
	apperrors.PersonalNumberOnlyDigits:    "Personal number may only contain digits",
	apperrors.PersonalNumberAlreadyExists: "A person with this personal number already exists",

	apperrors.DateOfBirthRequired:  "Date of birth is required",
	apperrors.MinimumAge18Required: "Person must be at least 18 years old",

	apperrors.CityIdRequired:    "City is required",
	apperrors.CityNotFound:      "City not found",
	apperrors.CityNameRequired:  "City name is required",
	apperrors.CityAlreadyExists: "A city with this name already exists",
	apperrors.CityInUse:         "City cannot be deleted while persons reference it",

	apperrors.PhoneNumbersRequired: "Phone numbers are required",
	apperrors.PhoneTypeInvalid:     "Phone type is invalid",
	apperrors.PhoneNumberRequired:  "Phone number is required",
	apperrors.PhoneNumberLength:    "Phone number must be between 4 and 50 characters",

	apperrors.PersonIdRequired:          "Person id must be greater than zero",
	apperrors.ConnectedPersonIdRequired: "Connected person id must be greater than zero",
	apperrors.ConnectionTypeInvalid:     "Connection type is invalid",
	apperrors.CannotConnectToSelf:       "A person cannot be connected to themselves",
	apperrors.ConnectionAlreadyExists:   "These persons are already connected",
	apperrors.ConnectionNotFound:        "Connection not found",

	apperrors.SearchTermRequired:       "Search term is required",
	apperrors.PageNumberMustBePositive: "Page number must be positive",
	apperrors.PageSizeMustBePositive:   "Page size must be positive",
	apperrors.PageSizeMaximum:          "Page size must not exceed 100",

	apperrors.PersonNotFound:      "Person not found",
	apperrors.ValidationFailed:    "Validation failed",
	apperrors.InternalServerError: "An unexpected error occurred",

	apperrors.FileUploadFailed:  "File upload failed",
	apperrors.InvalidFileFormat: "File format is not allowed",
	apperrors.FileTooLarge:      "File is too large",
	apperrors.FileNotFound:      "File not found",

	apperrors.DatabaseOperationFailed: "Database operation failed",
}

var georgianMessages = map[string]string{
	apperrors.FirstNameRequired:          "სახელი სავალდებულოა",
	apperrors.FirstNameLength:            "სახელი უნდა იყოს 2-დან 50 სიმბოლომდე",
	apperrors.FirstNameInvalidCharacters: "სახელი უნდა შეიცავდეს მხოლოდ ქართულ ან მხოლოდ ლათინურ ასოებს",
	apperrors.LastNameRequired:           "გვარი სავალდებულოა",
	apperrors.LastNameLength:             "გვარი უნდა იყოს 2-დან 50 სიმბოლომდე",
	apperrors.LastNameInvalidCharacters:  "გვარი უნდა შეიცავდეს მხოლოდ ქართულ ან მხოლოდ ლათინურ ასოებს",
	apperrors.NamesLanguageInconsistent:  "სახელი და გვარი ერთ ენაზე უნდა იყოს დაწერილი",

	apperrors.GenderRequired: "სქესი სავალდებულოა",
	apperrors.GenderInvalid:  "სქესი არასწორია",

	apperrors.PersonalNumberRequired:      "პირადი ნომერი სავალდებულოა",
	apperrors.PersonalNumberLength:        "პირადი ნომერი უნდა იყოს ზუსტად 11 სიმბოლო",
	apperrors.PersonalNumberOnlyDigits:    "პირადი ნომერი უნდა შეიცავდეს მხოლოდ ციფრებს",
	apperrors.PersonalNumberAlreadyExists: "პირი ამ პირადი ნომრით უკვე არსებობს",

	apperrors.DateOfBirthRequired:  "დაბადების თარიღი სავალდებულოა",
	apperrors.MinimumAge18Required: "პირი უნდა იყოს მინიმუმ 18 წლის",

	apperrors.CityIdRequired:    "ქალაქი სავალდებულოა",
	apperrors.CityNotFound:      "ქალაქი ვერ მოიძებნა",
	apperrors.CityNameRequired:  "ქალაქის სახელი სავალდებულოა",
	apperrors.CityAlreadyExists: "ქალაქი ამ სახელით უკვე არსებობს",
	apperrors.CityInUse:         "ქალაქის წაშლა შეუძლებელია, სანამ მასზე პირები არიან მიბმული",

	apperrors.PhoneNumbersRequired: "ტელეფონის ნომრები სავალდებულოა",
	apperrors.PhoneTypeInvalid:     "ტელეფონის ტიპი არასწორია",
	apperrors.PhoneNumberRequired:  "ტელეფონის ნომერი სავალდებულოა",
	apperrors.PhoneNumberLength:    "ტელეფონის ნომერი უნდა იყოს 4-დან 50 სიმბოლომდე",

	apperrors.PersonIdRequired:          "პირის იდენტიფიკატორი უნდა იყოს ნულზე მეტი",
	apperrors.ConnectedPersonIdRequired: "დაკავშირებული პირის იდენტიფიკატორი უნდა იყოს ნულზე მეტი",
	apperrors.ConnectionTypeInvalid:     "კავშირის ტიპი არასწორია",
	apperrors.CannotConnectToSelf:       "პირი საკუთარ თავს ვერ დაუკავშირდება",
	apperrors.ConnectionAlreadyExists:   "ეს პირები უკვე დაკავშირებულები არიან",
	apperrors.ConnectionNotFound:        "კავშირი ვერ მოიძებნა",

	apperrors.SearchTermRequired:       "საძიებო ტექსტი სავალდებულოა",
	apperrors.PageNumberMustBePositive: "გვერდის ნომერი უნდა იყოს დადებითი",
	apperrors.PageSizeMustBePositive:   "გვერდის ზომა უნდა იყოს დადებითი",
	apperrors.PageSizeMaximum:          "გვერდის ზომა არ უნდა აღემატებოდეს 100-ს",

	apperrors.PersonNotFound:      "პირი ვერ მოიძებნა",
	apperrors.ValidationFailed:    "ვალიდაცია ვერ გაიარა",
	apperrors.InternalServerError: "მოულოდნელი შეცდომა",

	apperrors.FileUploadFailed:  "ფაილის ატვირთვა ვერ მოხერხდა",
	apperrors.InvalidFileFormat: "ფაილის ფორმატი დაუშვებელია",
	apperrors.FileTooLarge:      "ფაილი ზედმეტად დიდია",
	apperrors.FileNotFound:      "ფაილი ვერ მოიძებნა",

	apperrors.DatabaseOperationFailed: "მონაცემთა ბაზის ოპერაცია ვერ შესრულდა",
}
