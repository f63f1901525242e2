// file: internals/features/academy/members/route/member_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	memberController "academia_backend/internals/features/academy/members/controller"
	importController "academia_backend/internals/features/importexport/controller"
	configService "academia_backend/internals/features/system/configuration/service"
	"academia_backend/internals/middlewares"
)

func MemberRoutes(r fiber.Router, db *gorm.DB, cfg *configService.ConfigurationService) {
	ctl := memberController.NewMemberController(db, cfg)
	io := importController.NewImportExportController(db, cfg)

	members := r.Group("/members")
	members.Post("/", ctl.Create)
	members.Get("/", ctl.List)

	// rutas fijas antes de /:id
	members.Get("/export", io.Export)
	members.Post("/import", middlewares.ImportRateLimiter(), io.Import)

	members.Get("/:id", ctl.GetByID)
	members.Patch("/:id", ctl.Update)
	members.Delete("/:id", ctl.Delete)
}
