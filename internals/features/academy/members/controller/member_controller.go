package controller

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	dto "academia_backend/internals/features/academy/members/dto"
	model "academia_backend/internals/features/academy/members/model"
	modalityModel "academia_backend/internals/features/academy/modalities/model"
	billing "academia_backend/internals/features/finance/billing/service"
	configService "academia_backend/internals/features/system/configuration/service"
	helper "academia_backend/internals/helpers"
)

type MemberController struct {
	DB     *gorm.DB
	Config *configService.ConfigurationService
}

func NewMemberController(db *gorm.DB, cfg *configService.ConfigurationService) *MemberController {
	return &MemberController{DB: db, Config: cfg}
}

/* ======================= CREATE ======================= */
// POST /api/members
func (h *MemberController) Create(c *fiber.Ctx) error {
	var req dto.CreateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.MemberName = strings.TrimSpace(req.MemberName)
	req.MemberPhone = strings.TrimSpace(req.MemberPhone)

	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	if req.MemberModalityID != nil {
		if err := h.modalityExists(c, *req.MemberModalityID); err != nil {
			return helper.FromFiberError(c, err)
		}
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict,
				"Ya existe un socio con ese nombre y teléfono")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo registrar al socio")
	}

	return helper.JsonCreated(c, "Socio registrado", dto.FromModel(*m))
}

/* ======================== GET BY ID ======================== */
// GET /api/members/:id
func (h *MemberController) GetByID(c *fiber.Ctx) error {
	idStr := c.Params("id")
	if idStr == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "El ID no puede estar vacío")
	}

	var row model.MemberModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("member_id = ?", idStr).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Socio no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	enriched, err := h.enrich(c, []model.MemberModel{row})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", enriched[0])
}

/* ======================== LIST ======================== */
// GET /api/members?q=&active=&modality_id=&page=&per_page=
func (h *MemberController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	base := h.DB.WithContext(c.UserContext()).Model(&model.MemberModel{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := fmt.Sprintf("%%%s%%", q)
		base = base.Where("(member_name ILIKE ? OR member_phone ILIKE ?)", like, like)
	}
	if active := c.Query("active"); active != "" {
		base = base.Where("member_active = ?", active == "true")
	}
	if modalityID := c.Query("modality_id"); modalityID != "" {
		base = base.Where("member_modality_id = ?", modalityID)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.MemberModel
	if err := base.
		Order("member_name ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	enriched, err := h.enrich(c, list)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", enriched,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ======================== UPDATE (PATCH, partial) ======================== */
// PATCH /api/members/:id
func (h *MemberController) Update(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "El ID no puede estar vacío")
	}

	var req dto.UpdateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var curr model.MemberModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("member_id = ?", idStr).
		First(&curr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Socio no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if req.MemberModalityID != nil {
		if err := h.modalityExists(c, *req.MemberModalityID); err != nil {
			return helper.FromFiberError(c, err)
		}
	}

	patch := req.Patch()
	if len(patch) == 0 {
		return helper.JsonOK(c, "Sin cambios", dto.FromModel(curr))
	}

	if err := h.DB.WithContext(c.UserContext()).
		Model(&model.MemberModel{}).
		Where("member_id = ?", idStr).
		Updates(patch).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Ya existe un socio con ese nombre y teléfono")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo actualizar al socio")
	}

	var updated model.MemberModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("member_id = ?", idStr).
		First(&updated).Error; err != nil {
		return helper.JsonUpdated(c, "Socio actualizado", dto.FromModel(curr)) // fallback
	}
	return helper.JsonUpdated(c, "Socio actualizado", dto.FromModel(updated))
}

/* ======================== DELETE (SOFT) ======================== */
// DELETE /api/members/:id
// Los pagos y recargos del socio se conservan (referencian por id, sin
// cascada); el socio solo se marca como borrado.
func (h *MemberController) Delete(c *fiber.Ctx) error {
	idStr := c.Params("id")
	if idStr == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "El ID no puede estar vacío")
	}

	res := h.DB.WithContext(c.UserContext()).
		Where("member_id = ?", idStr).
		Delete(&model.MemberModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Socio no encontrado")
	}

	return helper.JsonDeleted(c, "Socio eliminado", fiber.Map{"id": idStr})
}

/* ======================== helpers ======================== */

func (h *MemberController) modalityExists(c *fiber.Ctx, id uuid.UUID) error {
	var count int64
	if err := h.DB.WithContext(c.UserContext()).
		Model(&modalityModel.ModalityModel{}).
		Where("modality_id = ?", id).
		Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if count == 0 {
		return fiber.NewError(fiber.StatusNotFound, "La modalidad indicada no existe")
	}
	return nil
}

// enrich resuelve modalidad y deriva el estado de cobranza de cada socio.
// Los inactivos salen sin bloque de cobranza.
func (h *MemberController) enrich(c *fiber.Ctx, list []model.MemberModel) ([]dto.MemberResponse, error) {
	out := make([]dto.MemberResponse, 0, len(list))
	if len(list) == 0 {
		return out, nil
	}

	cfg, err := h.Config.Get(c.UserContext())
	if err != nil {
		return nil, err
	}

	modalityIDs := make([]uuid.UUID, 0, len(list))
	memberIDs := make([]uuid.UUID, 0, len(list))
	for _, mm := range list {
		memberIDs = append(memberIDs, mm.MemberID)
		if mm.MemberModalityID != nil {
			modalityIDs = append(modalityIDs, *mm.MemberModalityID)
		}
	}

	modalities := map[uuid.UUID]modalityModel.ModalityModel{}
	if len(modalityIDs) > 0 {
		var rows []modalityModel.ModalityModel
		if err := h.DB.WithContext(c.UserContext()).
			Where("modality_id IN ?", modalityIDs).
			Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, r := range rows {
			modalities[r.ModalityID] = r
		}
	}

	surchargeTotals, err := billing.PendingSurchargeTotals(c.UserContext(), h.DB, memberIDs)
	if err != nil {
		return nil, err
	}

	today := time.Now()
	for _, mm := range list {
		resp := dto.FromModel(mm)

		price := decimal.Zero
		if mm.MemberModalityID != nil {
			if mod, ok := modalities[*mm.MemberModalityID]; ok {
				resp.ModalityName = &mod.ModalityName
				p := mod.ModalityMonthlyPrice
				resp.ModalityMonthlyPrice = &p
				price = mod.ModalityMonthlyPrice
			}
		}

		// el socio inactivo no acumula morosidad: se saltea el cálculo
		if mm.MemberActive {
			snap := billing.ComputeSnapshot(billing.SnapshotInput{
				EnrolledAt:        mm.MemberEnrolledAt,
				Today:             today,
				PaymentsSettled:   mm.MemberPaymentsSettled,
				MonthlyPrice:      price,
				BillingDay:        cfg.SystemConfigurationBillingDay,
				PendingSurcharges: surchargeTotals[mm.MemberID],
			})
			resp.Billing = &snap
		}

		out = append(out, resp)
	}
	return out, nil
}
