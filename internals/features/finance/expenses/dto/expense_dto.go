package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	m "academia_backend/internals/features/finance/expenses/model"
)

/* =============== REQUESTS =============== */

type CreateExpenseRequest struct {
	ExpenseName    string     `json:"expense_name"     validate:"required,min=2"`
	ExpenseAmount  float64    `json:"expense_amount"   validate:"gte=0"`
	ExpenseSpentAt *time.Time `json:"expense_spent_at" validate:"omitempty"`
}

func (r CreateExpenseRequest) ToModel() *m.ExpenseModel {
	spentAt := time.Now()
	if r.ExpenseSpentAt != nil {
		spentAt = *r.ExpenseSpentAt
	}
	return &m.ExpenseModel{
		ExpenseName:    r.ExpenseName,
		ExpenseAmount:  decimal.NewFromFloat(r.ExpenseAmount),
		ExpenseSpentAt: spentAt,
	}
}

type ListExpenseQuery struct {
	From *time.Time `query:"from" validate:"omitempty"`
	To   *time.Time `query:"to"   validate:"omitempty"`
}

/* =============== RESPONSES =============== */

type ExpenseResponse struct {
	ExpenseID        uuid.UUID       `json:"expense_id"`
	ExpenseName      string          `json:"expense_name"`
	ExpenseAmount    decimal.Decimal `json:"expense_amount"`
	ExpenseSpentAt   time.Time       `json:"expense_spent_at"`
	ExpenseCreatedAt time.Time       `json:"expense_created_at"`
}

func FromModel(x m.ExpenseModel) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:        x.ExpenseID,
		ExpenseName:      x.ExpenseName,
		ExpenseAmount:    x.ExpenseAmount,
		ExpenseSpentAt:   x.ExpenseSpentAt,
		ExpenseCreatedAt: x.ExpenseCreatedAt,
	}
}

func FromModels(list []m.ExpenseModel) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
