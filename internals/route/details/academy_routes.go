// file: internals/route/details/academy_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	memberRoute "academia_backend/internals/features/academy/members/route"
	modalityRoute "academia_backend/internals/features/academy/modalities/route"
	configService "academia_backend/internals/features/system/configuration/service"
)

func AcademyRoutes(r fiber.Router, db *gorm.DB, cfg *configService.ConfigurationService) {
	memberRoute.MemberRoutes(r, db, cfg)
	modalityRoute.ModalityRoutes(r, db)
}
