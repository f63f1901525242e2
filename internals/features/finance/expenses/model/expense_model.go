package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ExpenseModel struct {
	ExpenseID uuid.UUID `gorm:"column:expense_id;type:uuid;default:gen_random_uuid();primaryKey" json:"expense_id"`

	ExpenseName   string          `gorm:"column:expense_name;type:text;not null" json:"expense_name"`
	ExpenseAmount decimal.Decimal `gorm:"column:expense_amount;type:numeric(12,2);not null;check:expense_amount >= 0" json:"expense_amount"`

	ExpenseSpentAt time.Time `gorm:"column:expense_spent_at;not null;index" json:"expense_spent_at"`

	ExpenseCreatedAt time.Time      `gorm:"column:expense_created_at;autoCreateTime" json:"expense_created_at"`
	ExpenseDeletedAt gorm.DeletedAt `gorm:"column:expense_deleted_at;index" json:"expense_deleted_at,omitempty"`
}

func (ExpenseModel) TableName() string { return "expenses" }
