package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "academia_backend/internals/features/academy/modalities/dto"
	model "academia_backend/internals/features/academy/modalities/model"
	helper "academia_backend/internals/helpers"
)

type ModalityController struct {
	DB *gorm.DB
}

func NewModalityController(db *gorm.DB) *ModalityController {
	return &ModalityController{DB: db}
}

/* ======================= CREATE ======================= */
// POST /api/modalities
func (h *ModalityController) Create(c *fiber.Ctx) error {
	var req dto.CreateModalityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.ModalityGroupTag = strings.ToUpper(strings.TrimSpace(req.ModalityGroupTag))

	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}
	if schedErrs := req.ModalitySchedule.Validate(); schedErrs != nil {
		return helper.JsonValidationError(c, schedErrs)
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict,
				"Ya existe una modalidad con la letra de grupo "+m.ModalityGroupTag)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo crear la modalidad")
	}

	return helper.JsonCreated(c, "Modalidad creada", dto.FromModel(*m))
}

/* ======================== GET BY ID ======================== */
// GET /api/modalities/:id
func (h *ModalityController) GetByID(c *fiber.Ctx) error {
	idStr := c.Params("id")
	if idStr == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "El ID no puede estar vacío")
	}

	var row model.ModalityModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("modality_id = ?", idStr).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Modalidad no encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModel(row))
}

/* ======================== LIST ======================== */
// GET /api/modalities?q=&page=&per_page=
func (h *ModalityController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	base := h.DB.WithContext(c.UserContext()).Model(&model.ModalityModel{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := fmt.Sprintf("%%%s%%", q)
		base = base.Where("(modality_name ILIKE ? OR modality_instructor ILIKE ?)", like, like)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.ModalityModel
	if err := base.
		Order("modality_name ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(list),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ======================== UPDATE (PATCH, partial) ======================== */
// PATCH /api/modalities/:id
func (h *ModalityController) Update(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "El ID no puede estar vacío")
	}

	var req dto.UpdateModalityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if req.ModalityGroupTag != nil {
		up := strings.ToUpper(strings.TrimSpace(*req.ModalityGroupTag))
		req.ModalityGroupTag = &up
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}
	if schedErrs := req.ModalitySchedule.Validate(); schedErrs != nil {
		return helper.JsonValidationError(c, schedErrs)
	}

	var curr model.ModalityModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("modality_id = ?", idStr).
		First(&curr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Modalidad no encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	patch := req.Patch()
	if len(patch) == 0 {
		return helper.JsonOK(c, "Sin cambios", dto.FromModel(curr))
	}

	if err := h.DB.WithContext(c.UserContext()).
		Model(&model.ModalityModel{}).
		Where("modality_id = ?", idStr).
		Updates(patch).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "La letra de grupo ya está en uso")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo actualizar la modalidad")
	}

	var updated model.ModalityModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("modality_id = ?", idStr).
		First(&updated).Error; err != nil {
		return helper.JsonUpdated(c, "Modalidad actualizada", dto.FromModel(curr)) // fallback
	}
	return helper.JsonUpdated(c, "Modalidad actualizada", dto.FromModel(updated))
}

/* ======================== DELETE (SOFT) ======================== */
// DELETE /api/modalities/:id
// Política de borrado: los socios que referencian la modalidad quedan con
// la referencia en NULL (sin cascada sobre socios ni pagos).
func (h *ModalityController) Delete(c *fiber.Ctx) error {
	idStr := c.Params("id")
	if idStr == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "El ID no puede estar vacío")
	}

	err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("modality_id = ?", idStr).Delete(&model.ModalityModel{})
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Modalidad no encontrada")
		}
		if err := tx.Exec(
			`UPDATE members SET member_modality_id = NULL WHERE member_modality_id = ?`, idStr,
		).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo desvincular a los socios")
		}
		return nil
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonDeleted(c, "Modalidad eliminada", fiber.Map{"id": idStr})
}
