// file: internals/features/finance/expenses/route/expense_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	expenseController "academia_backend/internals/features/finance/expenses/controller"
)

func ExpenseRoutes(r fiber.Router, db *gorm.DB) {
	ctl := expenseController.NewExpenseController(db)

	expenses := r.Group("/expenses")
	expenses.Post("/", ctl.Create)
	expenses.Get("/", ctl.List)
	expenses.Delete("/:id", ctl.Delete)
}
