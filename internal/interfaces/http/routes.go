package http

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts all API routes under /api.
func RegisterRoutes(app *fiber.App, persons *PersonHandler, cities *CityHandler, reports *ReportHandler, files *FilesHandler) {
	api := app.Group("/api")

	personRoutes := api.Group("/person")
	personRoutes.Get("/search", persons.QuickSearch)
	personRoutes.Get("/search/detailed", persons.DetailedSearch)
	personRoutes.Post("/", persons.CreatePerson)
	personRoutes.Get("/:id", persons.GetPerson)
	personRoutes.Put("/:id", persons.UpdatePerson)
	personRoutes.Delete("/:id", persons.DeletePerson)
	personRoutes.Post("/:id/image", persons.UploadImage)
	personRoutes.Post("/:id/connections", persons.AddConnection)
	personRoutes.Delete("/:id/connections/:connectedId", persons.RemoveConnection)

	cityRoutes := api.Group("/city")
	cityRoutes.Get("/", cities.GetAllCities)
	cityRoutes.Post("/", cities.CreateCity)
	cityRoutes.Get("/:id", cities.GetCity)
	cityRoutes.Put("/:id", cities.UpdateCity)
	cityRoutes.Delete("/:id", cities.DeleteCity)

	api.Get("/reports/person-connections", reports.GetConnectionReport)

	if files != nil {
		api.Get("/files/images/:fileName", files.GetImage)
	}
}
