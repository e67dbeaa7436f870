package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/IkkkaM/PersonManagement/internal/apperrors"
	"github.com/IkkkaM/PersonManagement/internal/application"
	"github.com/IkkkaM/PersonManagement/internal/localization"
	services "github.com/IkkkaM/PersonManagement/internal/service"
)

type FilesHandler struct {
	responder
	storage *services.ImageStorage
}

func NewFilesHandler(storage *services.ImageStorage, loc *localization.Localizer) *FilesHandler {
	return &FilesHandler{
		responder: responder{loc: loc},
		storage:   storage,
	}
}

// GetImage redirects to the public URL of a stored image.
func (h *FilesHandler) GetImage(c *fiber.Ctx) error {
	fileName := c.Params("fileName")
	if fileName == "" {
		return h.badRequest(c, apperrors.FileNotFound)
	}
	imagePath := "images/" + fileName

	exists, err := h.storage.ImageExists(c.UserContext(), imagePath)
	if err != nil {
		return h.failure(c, application.Fail(apperrors.Storage(apperrors.FileUploadFailed, err)))
	}
	if !exists {
		return h.notFound(c, apperrors.FileNotFound)
	}
	return c.Redirect(h.storage.GetImageUrl(imagePath), fiber.StatusFound)
}
