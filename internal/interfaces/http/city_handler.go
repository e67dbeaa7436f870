package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/IkkkaM/PersonManagement/internal/apperrors"
	"github.com/IkkkaM/PersonManagement/internal/application"
	"github.com/IkkkaM/PersonManagement/internal/localization"
)

type CityHandler struct {
	responder
	service *application.CityService
}

func NewCityHandler(service *application.CityService, loc *localization.Localizer) *CityHandler {
	return &CityHandler{
		responder: responder{loc: loc},
		service:   service,
	}
}

type cityRequest struct {
	Name string `json:"name"`
}

func (h *CityHandler) GetAllCities(c *fiber.Ctx) error {
	res := h.service.GetAllCities(c.UserContext())
	if !res.IsSuccess() {
		return h.failure(c, res.Result)
	}
	return h.success(c, fiber.StatusOK, res.Data)
}

func (h *CityHandler) GetCity(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return h.badRequest(c, apperrors.CityIdRequired)
	}

	res := h.service.GetCityByID(c.UserContext(), id)
	if !res.IsSuccess() {
		return h.failure(c, res.Result)
	}
	return h.success(c, fiber.StatusOK, res.Data)
}

func (h *CityHandler) CreateCity(c *fiber.Ctx) error {
	var req cityRequest
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c, apperrors.ValidationFailed)
	}

	res := h.service.CreateCity(c.UserContext(), req.Name)
	if !res.IsSuccess() {
		return h.failure(c, res.Result)
	}
	return h.success(c, fiber.StatusCreated, res.Data)
}

func (h *CityHandler) UpdateCity(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return h.badRequest(c, apperrors.CityIdRequired)
	}

	var req cityRequest
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c, apperrors.ValidationFailed)
	}

	res := h.service.UpdateCity(c.UserContext(), id, req.Name)
	if !res.IsSuccess() {
		return h.failure(c, res.Result)
	}
	return h.success(c, fiber.StatusOK, res.Data)
}

func (h *CityHandler) DeleteCity(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return h.badRequest(c, apperrors.CityIdRequired)
	}

	res := h.service.DeleteCity(c.UserContext(), id)
	if !res.IsSuccess() {
		return h.failure(c, res)
	}
	return h.success(c, fiber.StatusOK, nil)
}
