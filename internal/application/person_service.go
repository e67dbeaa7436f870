package application

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/IkkkaM/PersonManagement/internal/apperrors"
	"github.com/IkkkaM/PersonManagement/internal/domain"
	"github.com/IkkkaM/PersonManagement/internal/infrastructure/repository"
)

// PersonService orchestrates the transactional person use cases. Every
// multi-step write follows pre-validate → begin → mutate → commit, rolling
// the whole transaction back on any failure. Each call builds its own unit
// of work; nothing is shared across concurrent requests.
type PersonService struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewPersonService creates a person service over the shared connection pool.
func NewPersonService(db *sql.DB, log zerolog.Logger) *PersonService {
	return &PersonService{db: db, log: log}
}

// CreatePerson persists a new person together with its phone numbers in one
// transaction. No partial person/phone state is ever committed.
func (s *PersonService) CreatePerson(ctx context.Context, req PersonCreateRequest) DataResult[*domain.Person] {
	if keys := ValidatePersonCreate(req); len(keys) > 0 {
		return InvalidData[*domain.Person](keys...)
	}

	uow := repository.NewUnitOfWork(s.db)

	cityExists, err := uow.Cities.Exists(ctx, req.CityID)
	if err != nil {
		return FailData[*domain.Person](s.storage(err))
	}
	if !cityExists {
		return FailData[*domain.Person](apperrors.NotFound(apperrors.CityNotFound))
	}

	unique, err := uow.Persons.IsPersonalNumberUnique(ctx, req.PersonalNumber, 0)
	if err != nil {
		return FailData[*domain.Person](s.storage(err))
	}
	if !unique {
		return FailData[*domain.Person](apperrors.AlreadyExists(apperrors.PersonalNumberAlreadyExists))
	}

	person, err := domain.NewPerson(req.FirstName, req.LastName, req.Gender,
		req.PersonalNumber, req.DateOfBirth, req.CityID)
	if err != nil {
		return FailData[*domain.Person](err)
	}

	if err := uow.Begin(ctx); err != nil {
		return FailData[*domain.Person](s.storage(err))
	}

	if err := uow.Persons.Create(ctx, person); err != nil {
		s.rollback(uow)
		if isUniqueViolation(err) {
			return FailData[*domain.Person](apperrors.AlreadyExists(apperrors.PersonalNumberAlreadyExists))
		}
		return FailData[*domain.Person](s.storage(err))
	}

	for _, phone := range req.PhoneNumbers {
		number, err := domain.NewPhoneNumber(phone.Type, phone.Number, person.ID)
		if err != nil {
			s.rollback(uow)
			return FailData[*domain.Person](err)
		}
		if err := uow.Phones.Create(ctx, number); err != nil {
			s.rollback(uow)
			return FailData[*domain.Person](s.storage(err))
		}
	}

	if err := uow.Commit(); err != nil {
		return FailData[*domain.Person](s.storage(err))
	}

	return s.detailsResult(ctx, uow, person.ID)
}

// UpdatePerson overwrites a person's basic fields and replaces the entire
// phone-number collection in one transaction.
func (s *PersonService) UpdatePerson(ctx context.Context, id int, req PersonUpdateRequest) DataResult[*domain.Person] {
	if keys := ValidatePersonUpdate(req); len(keys) > 0 {
		return InvalidData[*domain.Person](keys...)
	}

	uow := repository.NewUnitOfWork(s.db)

	person, err := uow.Persons.GetByID(ctx, id)
	if err != nil {
		return FailData[*domain.Person](s.storage(err))
	}
	if person == nil {
		return FailData[*domain.Person](apperrors.NotFound(apperrors.PersonNotFound))
	}

	cityExists, err := uow.Cities.Exists(ctx, req.CityID)
	if err != nil {
		return FailData[*domain.Person](s.storage(err))
	}
	if !cityExists {
		return FailData[*domain.Person](apperrors.NotFound(apperrors.CityNotFound))
	}

	unique, err := uow.Persons.IsPersonalNumberUnique(ctx, req.PersonalNumber, id)
	if err != nil {
		return FailData[*domain.Person](s.storage(err))
	}
	if !unique {
		return FailData[*domain.Person](apperrors.AlreadyExists(apperrors.PersonalNumberAlreadyExists))
	}

	if err := person.UpdateBasicInfo(req.FirstName, req.LastName, req.Gender,
		req.PersonalNumber, req.DateOfBirth, req.CityID); err != nil {
		return FailData[*domain.Person](err)
	}

	if err := uow.Begin(ctx); err != nil {
		return FailData[*domain.Person](s.storage(err))
	}

	if err := uow.Persons.Update(ctx, person); err != nil {
		s.rollback(uow)
		return FailData[*domain.Person](s.storage(err))
	}

	// Full phone-number replacement; partial updates are not supported.
	if err := uow.Phones.DeleteByPersonID(ctx, id); err != nil {
		s.rollback(uow)
		return FailData[*domain.Person](s.storage(err))
	}
	for _, phone := range req.PhoneNumbers {
		number, err := domain.NewPhoneNumber(phone.Type, phone.Number, id)
		if err != nil {
			s.rollback(uow)
			return FailData[*domain.Person](err)
		}
		if err := uow.Phones.Create(ctx, number); err != nil {
			s.rollback(uow)
			return FailData[*domain.Person](s.storage(err))
		}
	}

	if err := uow.Commit(); err != nil {
		return FailData[*domain.Person](s.storage(err))
	}

	return s.detailsResult(ctx, uow, id)
}

// DeletePerson removes a person and all dependent rows: connections in both
// roles and phone numbers go first, then the person itself.
func (s *PersonService) DeletePerson(ctx context.Context, id int) Result {
	uow := repository.NewUnitOfWork(s.db)

	exists, err := uow.Persons.Exists(ctx, id)
	if err != nil {
		return Fail(s.storage(err))
	}
	if !exists {
		return Fail(apperrors.NotFound(apperrors.PersonNotFound))
	}

	if err := uow.Begin(ctx); err != nil {
		return Fail(s.storage(err))
	}

	if err := uow.Connections.DeletePersonConnections(ctx, id); err != nil {
		s.rollback(uow)
		return Fail(s.storage(err))
	}
	if err := uow.Phones.DeleteByPersonID(ctx, id); err != nil {
		s.rollback(uow)
		return Fail(s.storage(err))
	}
	if err := uow.Persons.Delete(ctx, id); err != nil {
		s.rollback(uow)
		if errors.Is(err, sql.ErrNoRows) {
			return Fail(apperrors.NotFound(apperrors.PersonNotFound))
		}
		return Fail(s.storage(err))
	}

	if err := uow.Commit(); err != nil {
		return Fail(s.storage(err))
	}
	return OK()
}

// GetPersonByID returns the person's detail view.
func (s *PersonService) GetPersonByID(ctx context.Context, id int) DataResult[*domain.Person] {
	uow := repository.NewUnitOfWork(s.db)
	return s.detailsResult(ctx, uow, id)
}

// UploadPersonImage records the stored image path on the person. Moving the
// bytes is the file service's job; the person entity only keeps the path.
func (s *PersonService) UploadPersonImage(ctx context.Context, id int, imagePath string) DataResult[*domain.Person] {
	uow := repository.NewUnitOfWork(s.db)

	person, err := uow.Persons.GetByID(ctx, id)
	if err != nil {
		return FailData[*domain.Person](s.storage(err))
	}
	if person == nil {
		return FailData[*domain.Person](apperrors.NotFound(apperrors.PersonNotFound))
	}

	person.UpdateImagePath(imagePath)
	if err := uow.Persons.Update(ctx, person); err != nil {
		return FailData[*domain.Person](s.storage(err))
	}

	return s.detailsResult(ctx, uow, id)
}

// AddPersonConnection establishes the undirected connection between two
// persons by inserting both reciprocal rows in one transaction. An existing
// connection between the pair is a distinct, non-exceptional failure.
func (s *PersonService) AddPersonConnection(ctx context.Context, req PersonConnectionRequest) Result {
	if keys := ValidatePersonConnection(req); len(keys) > 0 {
		return Invalid(keys...)
	}

	uow := repository.NewUnitOfWork(s.db)

	for _, id := range []int{req.PersonID, req.ConnectedPersonID} {
		exists, err := uow.Persons.Exists(ctx, id)
		if err != nil {
			return Fail(s.storage(err))
		}
		if !exists {
			return Fail(apperrors.NotFound(apperrors.PersonNotFound))
		}
	}

	// One directional check suffices: the invariant guarantees symmetry
	// once the pair is connected.
	connected, err := uow.Connections.Exists(ctx, req.PersonID, req.ConnectedPersonID)
	if err != nil {
		return Fail(s.storage(err))
	}
	if connected {
		return Fail(apperrors.AlreadyExists(apperrors.ConnectionAlreadyExists))
	}

	if err := uow.Begin(ctx); err != nil {
		return Fail(s.storage(err))
	}

	if err := uow.Connections.AddBidirectional(ctx, req.PersonID, req.ConnectedPersonID, req.ConnectionType); err != nil {
		s.rollback(uow)
		// The pre-check is advisory under concurrency; the unique index
		// on the ordered pair is the actual backstop.
		if isUniqueViolation(err) {
			return Fail(apperrors.AlreadyExists(apperrors.ConnectionAlreadyExists))
		}
		return Fail(s.storage(err))
	}

	if err := uow.Commit(); err != nil {
		if isUniqueViolation(err) {
			return Fail(apperrors.AlreadyExists(apperrors.ConnectionAlreadyExists))
		}
		return Fail(s.storage(err))
	}
	return OK()
}

// RemovePersonConnection removes both directional rows of the pair's
// connection in one transaction.
func (s *PersonService) RemovePersonConnection(ctx context.Context, personID, connectedPersonID int) Result {
	if personID <= 0 {
		return Invalid(apperrors.PersonIdRequired)
	}
	if connectedPersonID <= 0 {
		return Invalid(apperrors.ConnectedPersonIdRequired)
	}

	uow := repository.NewUnitOfWork(s.db)

	connected, err := uow.Connections.Exists(ctx, personID, connectedPersonID)
	if err != nil {
		return Fail(s.storage(err))
	}
	if !connected {
		return Fail(apperrors.NotFound(apperrors.ConnectionNotFound))
	}

	if err := uow.Begin(ctx); err != nil {
		return Fail(s.storage(err))
	}

	if err := uow.Connections.DeleteBidirectional(ctx, personID, connectedPersonID); err != nil {
		s.rollback(uow)
		return Fail(s.storage(err))
	}

	if err := uow.Commit(); err != nil {
		return Fail(s.storage(err))
	}
	return OK()
}

// QuickSearch runs the paged substring search.
func (s *PersonService) QuickSearch(ctx context.Context, req QuickSearchRequest) DataResult[*domain.Paged[domain.Person]] {
	if keys := ValidateQuickSearch(req); len(keys) > 0 {
		return InvalidData[*domain.Paged[domain.Person]](keys...)
	}

	uow := repository.NewUnitOfWork(s.db)
	page, err := uow.Persons.QuickSearch(ctx, req.SearchTerm, req.PageNumber, req.PageSize)
	if err != nil {
		return FailData[*domain.Paged[domain.Person]](s.storage(err))
	}
	return OKData(page)
}

// DetailedSearch runs the paged filtered search.
func (s *PersonService) DetailedSearch(ctx context.Context, req DetailedSearchRequest) DataResult[*domain.Paged[domain.Person]] {
	if keys := ValidateDetailedSearch(req); len(keys) > 0 {
		return InvalidData[*domain.Paged[domain.Person]](keys...)
	}

	uow := repository.NewUnitOfWork(s.db)
	page, err := uow.Persons.DetailedSearch(ctx, req.Filters(), req.PageNumber, req.PageSize)
	if err != nil {
		return FailData[*domain.Paged[domain.Person]](s.storage(err))
	}
	return OKData(page)
}

// GetConnectionReport returns the per-person connection-count report. Pure
// read, no transaction.
func (s *PersonService) GetConnectionReport(ctx context.Context) DataResult[[]domain.PersonConnectionReportItem] {
	uow := repository.NewUnitOfWork(s.db)
	report, err := uow.Persons.GetAllPersonsConnectionReport(ctx)
	if err != nil {
		return FailData[[]domain.PersonConnectionReportItem](s.storage(err))
	}
	return OKData(report)
}

func (s *PersonService) detailsResult(ctx context.Context, uow *repository.UnitOfWork, id int) DataResult[*domain.Person] {
	person, err := uow.Persons.GetWithDetails(ctx, id)
	if err != nil {
		return FailData[*domain.Person](s.storage(err))
	}
	if person == nil {
		return FailData[*domain.Person](apperrors.NotFound(apperrors.PersonNotFound))
	}
	return OKData(person)
}

// rollback discards the open transaction, logging a rollback failure
// instead of masking the error that caused it.
func (s *PersonService) rollback(uow *repository.UnitOfWork) {
	if err := uow.Rollback(); err != nil {
		s.log.Error().Err(err).Msg("transaction rollback failed")
	}
}

func (s *PersonService) storage(err error) error {
	s.log.Error().Err(err).Msg("storage operation failed")
	return apperrors.Storage(apperrors.DatabaseOperationFailed, err)
}

// isUniqueViolation reports whether err is a PostgreSQL unique-constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
