package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "academia_backend/internals/features/finance/expenses/dto"
	model "academia_backend/internals/features/finance/expenses/model"
	helper "academia_backend/internals/helpers"
)

type ExpenseController struct {
	DB *gorm.DB
}

func NewExpenseController(db *gorm.DB) *ExpenseController {
	return &ExpenseController{DB: db}
}

/* ======================= CREATE ======================= */
// POST /api/expenses
func (h *ExpenseController) Create(c *fiber.Ctx) error {
	var req dto.CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo registrar el gasto")
	}

	return helper.JsonCreated(c, "Gasto registrado", dto.FromModel(*m))
}

/* ======================== LIST ======================== */
// GET /api/expenses?from=&to=&page=&per_page=
func (h *ExpenseController) List(c *fiber.Ctx) error {
	var q dto.ListExpenseQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query inválida")
	}
	paging := helper.ResolvePaging(c, 20, 100)

	base := h.DB.WithContext(c.UserContext()).Model(&model.ExpenseModel{})
	if q.From != nil {
		base = base.Where("expense_spent_at >= ?", *q.From)
	}
	if q.To != nil {
		base = base.Where("expense_spent_at <= ?", *q.To)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.ExpenseModel
	if err := base.
		Order("expense_spent_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(list),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ======================== DELETE ======================== */
// DELETE /api/expenses/:id
func (h *ExpenseController) Delete(c *fiber.Ctx) error {
	idStr := c.Params("id")
	if idStr == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "El ID no puede estar vacío")
	}

	res := h.DB.WithContext(c.UserContext()).
		Where("expense_id = ?", idStr).
		Delete(&model.ExpenseModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Gasto no encontrado")
	}

	return helper.JsonDeleted(c, "Gasto eliminado", fiber.Map{"id": idStr})
}
