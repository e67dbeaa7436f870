package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/IkkkaM/PersonManagement/internal/apperrors"
	"github.com/IkkkaM/PersonManagement/internal/application"
	"github.com/IkkkaM/PersonManagement/internal/localization"
)

// ApiResponse is the envelope every endpoint returns. Data carries the
// payload on success; Message and Errors carry localized text on failure.
type ApiResponse struct {
	Success bool     `json:"success"`
	Data    any      `json:"data,omitempty"`
	Message string   `json:"message,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// responder translates service results into HTTP responses, resolving
// message keys against the caller's Accept-Language.
type responder struct {
	loc *localization.Localizer
}

func (r responder) success(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(ApiResponse{Success: true, Data: data})
}

func (r responder) failure(c *fiber.Ctx, res application.Result) error {
	tag := r.loc.Match(c.Get(fiber.HeaderAcceptLanguage))

	if len(res.ValidationErrors) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ApiResponse{
			Success: false,
			Message: r.loc.Localize(tag, apperrors.ValidationFailed),
			Errors:  r.loc.LocalizeAll(tag, res.ValidationErrors),
		})
	}

	return c.Status(statusFor(res.Err)).JSON(ApiResponse{
		Success: false,
		Message: r.loc.Localize(tag, apperrors.KeyOf(res.Err)),
	})
}

// badRequest reports a malformed request (unparseable body, bad path
// parameter) before any service call happens.
func (r responder) badRequest(c *fiber.Ctx, key string) error {
	tag := r.loc.Match(c.Get(fiber.HeaderAcceptLanguage))
	return c.Status(fiber.StatusBadRequest).JSON(ApiResponse{
		Success: false,
		Message: r.loc.Localize(tag, key),
	})
}

func (r responder) notFound(c *fiber.Ctx, key string) error {
	tag := r.loc.Match(c.Get(fiber.HeaderAcceptLanguage))
	return c.Status(fiber.StatusNotFound).JSON(ApiResponse{
		Success: false,
		Message: r.loc.Localize(tag, key),
	})
}

func statusFor(err error) int {
	switch {
	case apperrors.IsNotFound(err):
		return fiber.StatusNotFound
	case apperrors.IsValidation(err), apperrors.IsAlreadyExists(err), apperrors.IsConflict(err):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
