package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/IkkkaM/PersonManagement/internal/application"
	"github.com/IkkkaM/PersonManagement/internal/localization"
)

type ReportHandler struct {
	responder
	service *application.PersonService
}

func NewReportHandler(service *application.PersonService, loc *localization.Localizer) *ReportHandler {
	return &ReportHandler{
		responder: responder{loc: loc},
		service:   service,
	}
}

// GetConnectionReport returns per-person connection counts grouped by
// connection type. Persons without connections appear with empty counts.
func (h *ReportHandler) GetConnectionReport(c *fiber.Ctx) error {
	res := h.service.GetConnectionReport(c.UserContext())
	if !res.IsSuccess() {
		return h.failure(c, res.Result)
	}
	return h.success(c, fiber.StatusOK, toReportResponse(res.Data))
}
