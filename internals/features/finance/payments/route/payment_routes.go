// file: internals/features/finance/payments/route/payment_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "academia_backend/internals/features/finance/payments/controller"
)

func PaymentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := paymentController.NewPaymentController(db)

	payments := r.Group("/payments")
	payments.Post("/", ctl.Create)
	payments.Get("/", ctl.List)
	payments.Get("/day-cut", ctl.DayCut) // antes de /:id
	payments.Delete("/:id", ctl.Delete)
}
