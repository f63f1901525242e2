// file: internals/features/system/configuration/route/configuration_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"

	configController "academia_backend/internals/features/system/configuration/controller"
	configService "academia_backend/internals/features/system/configuration/service"
)

func ConfigurationRoutes(r fiber.Router, cfg *configService.ConfigurationService) {
	ctl := configController.NewConfigurationController(cfg)

	r.Get("/configuration", ctl.Get)
	r.Patch("/configuration", ctl.Update)
}
