// file: internals/route/details/system_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"

	configRoute "academia_backend/internals/features/system/configuration/route"
	configService "academia_backend/internals/features/system/configuration/service"
)

func SystemRoutes(r fiber.Router, cfg *configService.ConfigurationService) {
	configRoute.ConfigurationRoutes(r, cfg)
}
