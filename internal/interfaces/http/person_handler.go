package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/IkkkaM/PersonManagement/internal/apperrors"
	"github.com/IkkkaM/PersonManagement/internal/application"
	"github.com/IkkkaM/PersonManagement/internal/domain"
	"github.com/IkkkaM/PersonManagement/internal/localization"
	services "github.com/IkkkaM/PersonManagement/internal/service"
)

const (
	defaultPageNumber = 1
	defaultPageSize   = 10
)

type PersonHandler struct {
	responder
	service       *application.PersonService
	storage       *services.ImageStorage
	maxImageBytes int64
	log           zerolog.Logger
}

func NewPersonHandler(service *application.PersonService, storage *services.ImageStorage, loc *localization.Localizer, maxImageSizeMB int, log zerolog.Logger) *PersonHandler {
	return &PersonHandler{
		responder:     responder{loc: loc},
		service:       service,
		storage:       storage,
		maxImageBytes: int64(maxImageSizeMB) * 1024 * 1024,
		log:           log,
	}
}

func (h *PersonHandler) imageURL(path string) string {
	if h.storage == nil {
		return ""
	}
	return h.storage.GetImageUrl(path)
}

func (h *PersonHandler) GetPerson(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return h.badRequest(c, apperrors.PersonIdRequired)
	}

	res := h.service.GetPersonByID(c.UserContext(), id)
	if !res.IsSuccess() {
		return h.failure(c, res.Result)
	}
	return h.success(c, fiber.StatusOK, toPersonResponse(res.Data, h.imageURL))
}

func (h *PersonHandler) CreatePerson(c *fiber.Ctx) error {
	var req application.PersonCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c, apperrors.ValidationFailed)
	}

	res := h.service.CreatePerson(c.UserContext(), req)
	if !res.IsSuccess() {
		return h.failure(c, res.Result)
	}
	return h.success(c, fiber.StatusCreated, toPersonResponse(res.Data, h.imageURL))
}

func (h *PersonHandler) UpdatePerson(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return h.badRequest(c, apperrors.PersonIdRequired)
	}

	var req application.PersonUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c, apperrors.ValidationFailed)
	}

	res := h.service.UpdatePerson(c.UserContext(), id, req)
	if !res.IsSuccess() {
		return h.failure(c, res.Result)
	}
	return h.success(c, fiber.StatusOK, toPersonResponse(res.Data, h.imageURL))
}

func (h *PersonHandler) DeletePerson(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return h.badRequest(c, apperrors.PersonIdRequired)
	}

	res := h.service.DeletePerson(c.UserContext(), id)
	if !res.IsSuccess() {
		return h.failure(c, res)
	}
	return h.success(c, fiber.StatusOK, nil)
}

// UploadImage replaces the person's photo. The previous stored object, if
// any, is removed after the new one is in place.
func (h *PersonHandler) UploadImage(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return h.badRequest(c, apperrors.PersonIdRequired)
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return h.badRequest(c, apperrors.FileUploadFailed)
	}
	if fileHeader.Size > h.maxImageBytes {
		return h.badRequest(c, apperrors.FileTooLarge)
	}

	current := h.service.GetPersonByID(c.UserContext(), id)
	if !current.IsSuccess() {
		return h.failure(c, current.Result)
	}
	var previousPath string
	if current.Data.ImagePath != nil {
		previousPath = *current.Data.ImagePath
	}

	file, err := fileHeader.Open()
	if err != nil {
		return h.failure(c, application.Fail(apperrors.Storage(apperrors.FileUploadFailed, err)))
	}
	defer file.Close()

	imagePath, err := h.storage.SaveImage(c.UserContext(), file, fileHeader.Filename)
	if err != nil {
		if !apperrors.IsValidation(err) {
			err = apperrors.Storage(apperrors.FileUploadFailed, err)
		}
		return h.failure(c, application.Fail(err))
	}

	res := h.service.UploadPersonImage(c.UserContext(), id, imagePath)
	if !res.IsSuccess() {
		if delErr := h.storage.DeleteImage(c.UserContext(), imagePath); delErr != nil {
			h.log.Warn().Err(delErr).Str("imagePath", imagePath).Msg("failed to remove orphaned image")
		}
		return h.failure(c, res.Result)
	}

	if previousPath != "" && previousPath != imagePath {
		if delErr := h.storage.DeleteImage(c.UserContext(), previousPath); delErr != nil {
			h.log.Warn().Err(delErr).Str("imagePath", previousPath).Msg("failed to remove replaced image")
		}
	}
	return h.success(c, fiber.StatusOK, toPersonResponse(res.Data, h.imageURL))
}

func (h *PersonHandler) QuickSearch(c *fiber.Ctx) error {
	req := application.QuickSearchRequest{
		SearchTerm: c.Query("searchTerm"),
		PageNumber: c.QueryInt("pageNumber", defaultPageNumber),
		PageSize:   c.QueryInt("pageSize", defaultPageSize),
	}

	res := h.service.QuickSearch(c.UserContext(), req)
	if !res.IsSuccess() {
		return h.failure(c, res.Result)
	}
	return h.success(c, fiber.StatusOK, toPagedResponse(res.Data, h.imageURL))
}

func (h *PersonHandler) DetailedSearch(c *fiber.Ctx) error {
	req := application.DetailedSearchRequest{
		FirstName:      c.Query("firstName"),
		LastName:       c.Query("lastName"),
		PersonalNumber: c.Query("personalNumber"),
		PageNumber:     c.QueryInt("pageNumber", defaultPageNumber),
		PageSize:       c.QueryInt("pageSize", defaultPageSize),
	}

	if raw := c.Query("gender"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			return h.badRequest(c, apperrors.GenderInvalid)
		}
		gender := domain.Gender(value)
		req.Gender = &gender
	}
	if raw := c.Query("dateOfBirthFrom"); raw != "" {
		from, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return h.badRequest(c, apperrors.DateOfBirthRequired)
		}
		req.DateOfBirthFrom = &from
	}
	if raw := c.Query("dateOfBirthTo"); raw != "" {
		to, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return h.badRequest(c, apperrors.DateOfBirthRequired)
		}
		req.DateOfBirthTo = &to
	}
	if raw := c.Query("cityId"); raw != "" {
		cityID, err := strconv.Atoi(raw)
		if err != nil {
			return h.badRequest(c, apperrors.CityIdRequired)
		}
		req.CityID = &cityID
	}

	res := h.service.DetailedSearch(c.UserContext(), req)
	if !res.IsSuccess() {
		return h.failure(c, res.Result)
	}
	return h.success(c, fiber.StatusOK, toPagedResponse(res.Data, h.imageURL))
}

type connectionRequest struct {
	ConnectedPersonID int                   `json:"connectedPersonId"`
	ConnectionType    domain.ConnectionType `json:"connectionType"`
}

func (h *PersonHandler) AddConnection(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return h.badRequest(c, apperrors.PersonIdRequired)
	}

	var body connectionRequest
	if err := c.BodyParser(&body); err != nil {
		return h.badRequest(c, apperrors.ValidationFailed)
	}

	res := h.service.AddPersonConnection(c.UserContext(), application.PersonConnectionRequest{
		PersonID:          id,
		ConnectedPersonID: body.ConnectedPersonID,
		ConnectionType:    body.ConnectionType,
	})
	if !res.IsSuccess() {
		return h.failure(c, res)
	}
	return h.success(c, fiber.StatusCreated, nil)
}

func (h *PersonHandler) RemoveConnection(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return h.badRequest(c, apperrors.PersonIdRequired)
	}
	connectedID, err := strconv.Atoi(c.Params("connectedId"))
	if err != nil || connectedID <= 0 {
		return h.badRequest(c, apperrors.ConnectedPersonIdRequired)
	}

	res := h.service.RemovePersonConnection(c.UserContext(), id, connectedID)
	if !res.IsSuccess() {
		return h.failure(c, res)
	}
	return h.success(c, fiber.StatusOK, nil)
}
