package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academia_backend/internals/constants"
	memberModel "academia_backend/internals/features/academy/members/model"
	dto "academia_backend/internals/features/finance/payments/dto"
	model "academia_backend/internals/features/finance/payments/model"
	gateway "academia_backend/internals/features/finance/payments/service"
	helper "academia_backend/internals/helpers"
)

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

/* ======================= CREATE ======================= */
// POST /api/payments
// Un pago de mensualidad incrementa el contador de mensualidades saldadas
// del socio en la misma transacción.
func (h *PaymentController) Create(c *fiber.Ctx) error {
	var req dto.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var member memberModel.MemberModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("member_id = ?", req.PaymentMemberID).
		First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "El socio indicado no existe")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	m := req.ToModel()
	err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo registrar el pago")
		}
		if m.PaymentConcept == constants.ConceptMonthlyFee {
			if err := tx.Exec(
				`UPDATE members SET member_payments_settled = member_payments_settled + 1 WHERE member_id = ?`,
				m.PaymentMemberID,
			).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar el contador del socio")
			}
		}
		return nil
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	resp := dto.FromModel(*m)

	// Cobro con tarjeta: best-effort, sin conciliación; si la pasarela
	// falla el pago ya quedó registrado.
	if req.PaymentMethod != nil && *req.PaymentMethod == "card" && gateway.Enabled() {
		email := ""
		if member.MemberEmail != nil {
			email = *member.MemberEmail
		}
		token, redirectURL, gerr := gateway.GenerateChargeLink(
			m.PaymentID.String(), m.PaymentAmount, member.MemberName, email)
		if gerr != nil {
			log.Printf("[GATEWAY] enlace de cobro falló para pago %s: %v", m.PaymentID, gerr)
		} else {
			resp.CardCharge = &dto.CardChargeResponse{Token: token, RedirectURL: redirectURL}
		}
	}

	return helper.JsonCreated(c, "Pago registrado", resp)
}

/* ======================== LIST ======================== */
// GET /api/payments?member_id=&from=&to=&page=&per_page=
func (h *PaymentController) List(c *fiber.Ctx) error {
	var q dto.ListPaymentQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query inválida")
	}
	paging := helper.ResolvePaging(c, 20, 100)

	base := h.DB.WithContext(c.UserContext()).Model(&model.PaymentModel{})
	if q.MemberID != nil {
		base = base.Where("payment_member_id = ?", *q.MemberID)
	}
	if q.From != nil {
		base = base.Where("payment_paid_at >= ?", *q.From)
	}
	if q.To != nil {
		base = base.Where("payment_paid_at <= ?", *q.To)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.PaymentModel
	if err := base.
		Order("payment_paid_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(list),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ======================== DAY CUT ======================== */
// GET /api/payments/day-cut?date=YYYY-MM-DD
// Corte del día: total y cantidad de pagos del día calendario indicado
// (hoy si no se manda fecha).
func (h *PaymentController) DayCut(c *fiber.Ctx) error {
	start, end, err := dayWindow(strings.TrimSpace(c.Query("date")), time.Now())
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "La fecha debe tener formato YYYY-MM-DD")
	}

	var row dto.DayCutResponse
	if err := h.DB.WithContext(c.UserContext()).Raw(`
		SELECT COALESCE(SUM(payment_amount), 0) AS total, COUNT(*) AS count
		FROM payments
		WHERE payment_paid_at >= ? AND payment_paid_at < ?
		  AND payment_deleted_at IS NULL
	`, start, end).Scan(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	row.Date = start.Format("2006-01-02")

	return helper.JsonOK(c, "OK", row)
}

// dayWindow devuelve [inicio, fin) del día calendario en hora del servidor;
// la fecha explícita y la implícita (hoy) usan la misma zona.
func dayWindow(raw string, now time.Time) (time.Time, time.Time, error) {
	day := now
	if raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		day = parsed
	}
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.Local)
	return start, start.AddDate(0, 0, 1), nil
}

/* ======================== DELETE ======================== */
// DELETE /api/payments/:id
// Borrar un pago de mensualidad devuelve el contador del socio (sin bajar
// de cero). El pago es inmutable salvo por esta operación.
func (h *PaymentController) Delete(c *fiber.Ctx) error {
	idStr := c.Params("id")
	if idStr == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "El ID no puede estar vacío")
	}

	var row model.PaymentModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("payment_id = ?", idStr).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pago no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("payment_id = ?", idStr).Delete(&model.PaymentModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if row.PaymentConcept == constants.ConceptMonthlyFee {
			if err := tx.Exec(
				`UPDATE members SET member_payments_settled = GREATEST(member_payments_settled - 1, 0) WHERE member_id = ?`,
				row.PaymentMemberID,
			).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar el contador del socio")
			}
		}
		return nil
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonDeleted(c, "Pago eliminado", fiber.Map{"id": idStr})
}
