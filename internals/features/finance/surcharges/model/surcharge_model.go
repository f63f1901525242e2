package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SurchargeModel struct {
	SurchargeID uuid.UUID `gorm:"column:surcharge_id;type:uuid;default:gen_random_uuid();primaryKey" json:"surcharge_id"`

	SurchargeMemberID uuid.UUID `gorm:"column:surcharge_member_id;type:uuid;not null;uniqueIndex:uq_surcharges_member_period,where:surcharge_deleted_at IS NULL" json:"surcharge_member_id"`

	// Período de facturación "YYYY-MM"; (socio, período) es único: es el
	// respaldo de idempotencia cuando el barrido y un recálculo manual se pisan.
	SurchargePeriod string `gorm:"column:surcharge_period;type:char(7);not null;uniqueIndex:uq_surcharges_member_period,where:surcharge_deleted_at IS NULL" json:"surcharge_period"`

	// El monto nunca se modifica después de creado; solo cambia el estado.
	SurchargeAmount decimal.Decimal `gorm:"column:surcharge_amount;type:numeric(12,2);not null" json:"surcharge_amount"`

	SurchargeStatus string `gorm:"column:surcharge_status;type:text;not null;default:'pending';check:surcharge_status IN ('pending','paid','waived')" json:"surcharge_status"`

	SurchargeAppliedAt time.Time `gorm:"column:surcharge_applied_at;not null" json:"surcharge_applied_at"`

	SurchargeCreatedAt time.Time      `gorm:"column:surcharge_created_at;autoCreateTime" json:"surcharge_created_at"`
	SurchargeUpdatedAt *time.Time     `gorm:"column:surcharge_updated_at;autoUpdateTime" json:"surcharge_updated_at,omitempty"`
	SurchargeDeletedAt gorm.DeletedAt `gorm:"column:surcharge_deleted_at;index" json:"surcharge_deleted_at,omitempty"`
}

func (SurchargeModel) TableName() string { return "surcharges" }

// Transitionable indica si el recargo todavía admite cambio de estado:
// solo pending puede pasar a paid o waived, los demás son terminales.
func (m SurchargeModel) Transitionable() bool {
	return m.SurchargeStatus == "pending"
}
