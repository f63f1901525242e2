package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentModel struct {
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`

	PaymentMemberID uuid.UUID `gorm:"column:payment_member_id;type:uuid;not null;index" json:"payment_member_id"`

	PaymentAmount  decimal.Decimal `gorm:"column:payment_amount;type:numeric(12,2);not null;check:payment_amount >= 0" json:"payment_amount"`
	PaymentConcept string          `gorm:"column:payment_concept;type:text;not null;default:'mensualidad'" json:"payment_concept"`

	PaymentPaidAt time.Time `gorm:"column:payment_paid_at;not null;index" json:"payment_paid_at"`

	PaymentCreatedAt time.Time      `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
	PaymentDeletedAt gorm.DeletedAt `gorm:"column:payment_deleted_at;index" json:"payment_deleted_at,omitempty"`
}

func (PaymentModel) TableName() string { return "payments" }
