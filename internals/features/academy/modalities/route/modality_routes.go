// file: internals/features/academy/modalities/route/modality_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	modalityController "academia_backend/internals/features/academy/modalities/controller"
)

func ModalityRoutes(r fiber.Router, db *gorm.DB) {
	ctl := modalityController.NewModalityController(db)

	modalities := r.Group("/modalities")
	modalities.Post("/", ctl.Create)
	modalities.Get("/", ctl.List)
	modalities.Get("/:id", ctl.GetByID)
	modalities.Patch("/:id", ctl.Update)
	modalities.Delete("/:id", ctl.Delete)
}
