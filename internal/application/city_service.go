package application

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rs/zerolog"

	"github.com/IkkkaM/PersonManagement/internal/apperrors"
	"github.com/IkkkaM/PersonManagement/internal/domain"
	"github.com/IkkkaM/PersonManagement/internal/infrastructure/repository"
)

// CityService serves city reads and the restricted write paths. A city that
// persons still reference cannot be deleted.
type CityService struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewCityService creates a city service over the shared connection pool.
func NewCityService(db *sql.DB, log zerolog.Logger) *CityService {
	return &CityService{db: db, log: log}
}

// GetAllCities lists every city.
func (s *CityService) GetAllCities(ctx context.Context) DataResult[[]domain.City] {
	uow := repository.NewUnitOfWork(s.db)
	cities, err := uow.Cities.GetAll(ctx)
	if err != nil {
		return FailData[[]domain.City](s.storage(err))
	}
	return OKData(cities)
}

// GetCityByID returns one city.
func (s *CityService) GetCityByID(ctx context.Context, id int) DataResult[*domain.City] {
	uow := repository.NewUnitOfWork(s.db)
	city, err := uow.Cities.GetByID(ctx, id)
	if err != nil {
		return FailData[*domain.City](s.storage(err))
	}
	if city == nil {
		return FailData[*domain.City](apperrors.NotFound(apperrors.CityNotFound))
	}
	return OKData(city)
}

// CreateCity adds a new city.
func (s *CityService) CreateCity(ctx context.Context, name string) DataResult[*domain.City] {
	city, err := domain.NewCity(name)
	if err != nil {
		return FailData[*domain.City](err)
	}

	uow := repository.NewUnitOfWork(s.db)
	if err := uow.Cities.Create(ctx, city); err != nil {
		if isUniqueViolation(err) {
			return FailData[*domain.City](apperrors.AlreadyExists(apperrors.CityAlreadyExists))
		}
		return FailData[*domain.City](s.storage(err))
	}
	return OKData(city)
}

// UpdateCity renames a city.
func (s *CityService) UpdateCity(ctx context.Context, id int, name string) DataResult[*domain.City] {
	uow := repository.NewUnitOfWork(s.db)

	city, err := uow.Cities.GetByID(ctx, id)
	if err != nil {
		return FailData[*domain.City](s.storage(err))
	}
	if city == nil {
		return FailData[*domain.City](apperrors.NotFound(apperrors.CityNotFound))
	}

	if err := city.UpdateName(name); err != nil {
		return FailData[*domain.City](err)
	}
	if err := uow.Cities.Update(ctx, city); err != nil {
		return FailData[*domain.City](s.storage(err))
	}
	return OKData(city)
}

// DeleteCity removes a city unless persons still reference it.
func (s *CityService) DeleteCity(ctx context.Context, id int) Result {
	uow := repository.NewUnitOfWork(s.db)

	exists, err := uow.Cities.Exists(ctx, id)
	if err != nil {
		return Fail(s.storage(err))
	}
	if !exists {
		return Fail(apperrors.NotFound(apperrors.CityNotFound))
	}

	referenced, err := uow.Cities.IsReferenced(ctx, id)
	if err != nil {
		return Fail(s.storage(err))
	}
	if referenced {
		return Fail(apperrors.Conflict(apperrors.CityInUse))
	}

	if err := uow.Cities.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Fail(apperrors.NotFound(apperrors.CityNotFound))
		}
		return Fail(s.storage(err))
	}
	return OK()
}

func (s *CityService) storage(err error) error {
	s.log.Error().Err(err).Msg("storage operation failed")
	return apperrors.Storage(apperrors.DatabaseOperationFailed, err)
}
