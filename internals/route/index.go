// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	configService "academia_backend/internals/features/system/configuration/service"
	routeDetails "academia_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *configService.ConfigurationService) {
	startTime = time.Now()

	BaseRoutes(app)

	api := app.Group("/api")

	log.Println("[INFO] Montando rutas de academia (socios + modalidades)...")
	routeDetails.AcademyRoutes(api, db, cfg)

	log.Println("[INFO] Montando rutas de finanzas (pagos + gastos + recargos)...")
	routeDetails.FinanceRoutes(api, db)

	log.Println("[INFO] Montando rutas de sistema (configuración)...")
	routeDetails.SystemRoutes(api, cfg)
}
