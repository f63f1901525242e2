package routes

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	configService "academia_backend/internals/features/system/configuration/service"
)

// Las actualizaciones parciales van por PATCH en todos los recursos; PUT no
// se registra.
func TestPartialUpdatesUsePatch(t *testing.T) {
	app := fiber.New()
	SetupRoutes(app, nil, configService.NewConfigurationService(nil))

	methods := map[string][]string{}
	for _, r := range app.GetRoutes() {
		methods[r.Path] = append(methods[r.Path], r.Method)
	}

	for _, path := range []string{
		"/api/members/:id",
		"/api/modalities/:id",
		"/api/surcharges/:id",
		"/api/configuration",
	} {
		assert.Contains(t, methods[path], fiber.MethodPatch, "path %s", path)
		assert.NotContains(t, methods[path], fiber.MethodPut, "path %s", path)
	}
}

func TestFixedPathsRegisteredBeforeParams(t *testing.T) {
	app := fiber.New()
	SetupRoutes(app, nil, configService.NewConfigurationService(nil))

	seen := map[string]bool{}
	for _, r := range app.GetRoutes() {
		seen[r.Method+" "+r.Path] = true
	}
	assert.True(t, seen["GET /api/members/export"])
	assert.True(t, seen["POST /api/members/import"])
	assert.True(t, seen["GET /api/payments/day-cut"])
}
