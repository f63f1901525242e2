package controller

import (
	"github.com/gofiber/fiber/v2"

	dto "academia_backend/internals/features/system/configuration/dto"
	service "academia_backend/internals/features/system/configuration/service"
	helper "academia_backend/internals/helpers"
)

type ConfigurationController struct {
	Service *service.ConfigurationService
}

func NewConfigurationController(svc *service.ConfigurationService) *ConfigurationController {
	return &ConfigurationController{Service: svc}
}

/* ======================== GET ======================== */
// GET /api/configuration
func (h *ConfigurationController) Get(c *fiber.Ctx) error {
	cfg, err := h.Service.Get(c.UserContext())
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "OK", dto.FromModel(cfg))
}

/* ======================== UPDATE (PATCH, partial) ======================== */
// PATCH /api/configuration
func (h *ConfigurationController) Update(c *fiber.Ctx) error {
	var req dto.UpdateSystemConfigurationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	cfg, err := h.Service.Update(c.UserContext(), req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Configuración actualizada", dto.FromModel(cfg))
}
