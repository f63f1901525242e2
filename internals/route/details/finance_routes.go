// file: internals/route/details/finance_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	expenseRoute "academia_backend/internals/features/finance/expenses/route"
	paymentRoute "academia_backend/internals/features/finance/payments/route"
	surchargeRoute "academia_backend/internals/features/finance/surcharges/route"
)

func FinanceRoutes(r fiber.Router, db *gorm.DB) {
	paymentRoute.PaymentRoutes(r, db)
	expenseRoute.ExpenseRoutes(r, db)
	surchargeRoute.SurchargeRoutes(r, db)
}
