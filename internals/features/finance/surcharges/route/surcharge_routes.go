// file: internals/features/finance/surcharges/route/surcharge_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	surchargeController "academia_backend/internals/features/finance/surcharges/controller"
)

func SurchargeRoutes(r fiber.Router, db *gorm.DB) {
	ctl := surchargeController.NewSurchargeController(db)

	surcharges := r.Group("/surcharges")
	surcharges.Post("/", ctl.Create)
	surcharges.Get("/", ctl.List)
	surcharges.Patch("/:id", ctl.UpdateStatus)
}
