package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	memberModel "academia_backend/internals/features/academy/members/model"
	dto "academia_backend/internals/features/finance/surcharges/dto"
	model "academia_backend/internals/features/finance/surcharges/model"
	helper "academia_backend/internals/helpers"
)

type SurchargeController struct {
	DB *gorm.DB
}

func NewSurchargeController(db *gorm.DB) *SurchargeController {
	return &SurchargeController{DB: db}
}

/* ======================= CREATE ======================= */
// POST /api/surcharges
// El índice único (socio, período) hace idempotente el alta: si el barrido
// ya creó el recargo del período, el alta manual devuelve 409.
func (h *SurchargeController) Create(c *fiber.Ctx) error {
	var req dto.CreateSurchargeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var count int64
	if err := h.DB.WithContext(c.UserContext()).
		Model(&memberModel.MemberModel{}).
		Where("member_id = ?", req.SurchargeMemberID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "El socio indicado no existe")
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict,
				"El socio ya tiene un recargo para el período "+m.SurchargePeriod)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo crear el recargo")
	}

	return helper.JsonCreated(c, "Recargo creado", dto.FromModel(*m))
}

/* ======================== LIST ======================== */
// GET /api/surcharges?member_id=&status=&period=&page=&per_page=
func (h *SurchargeController) List(c *fiber.Ctx) error {
	var q dto.ListSurchargeQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query inválida")
	}
	if fieldErrs := helper.ValidateStruct(q); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}
	paging := helper.ResolvePaging(c, 20, 100)

	base := h.DB.WithContext(c.UserContext()).Model(&model.SurchargeModel{})
	if q.MemberID != nil {
		base = base.Where("surcharge_member_id = ?", *q.MemberID)
	}
	if q.Status != nil {
		base = base.Where("surcharge_status = ?", *q.Status)
	}
	if q.Period != nil {
		base = base.Where("surcharge_period = ?", *q.Period)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.SurchargeModel
	if err := base.
		Order("surcharge_applied_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(list),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ======================== UPDATE STATUS ======================== */
// PATCH /api/surcharges/:id
// Única mutación permitida: la transición de estado desde pending.
func (h *SurchargeController) UpdateStatus(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "El ID no puede estar vacío")
	}

	var req dto.UpdateSurchargeStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var curr model.SurchargeModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("surcharge_id = ?", idStr).
		First(&curr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Recargo no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if curr.SurchargeStatus == req.SurchargeStatus {
		return helper.JsonOK(c, "Sin cambios", dto.FromModel(curr))
	}
	if !curr.Transitionable() {
		return helper.JsonError(c, fiber.StatusConflict,
			"Un recargo "+curr.SurchargeStatus+" ya no admite transiciones")
	}

	if err := h.DB.WithContext(c.UserContext()).
		Model(&model.SurchargeModel{}).
		Where("surcharge_id = ?", idStr).
		Update("surcharge_status", req.SurchargeStatus).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo actualizar el recargo")
	}

	curr.SurchargeStatus = req.SurchargeStatus
	return helper.JsonUpdated(c, "Recargo actualizado", dto.FromModel(curr))
}
