package repository

import "github.com/IkkkaM/PersonManagement/internal/domain"

// Compile-time checks that the sql implementations satisfy the domain
// repository contracts.
var (
	_ domain.PersonRepository           = (*PersonRepository)(nil)
	_ domain.CityRepository             = (*CityRepository)(nil)
	_ domain.PhoneNumberRepository      = (*PhoneNumberRepository)(nil)
	_ domain.PersonConnectionRepository = (*PersonConnectionRepository)(nil)
)
