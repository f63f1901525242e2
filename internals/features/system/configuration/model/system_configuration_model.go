package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Fila única de configuración; la clave fija + índice único garantizan que
// dos primeras-lecturas concurrentes no puedan crear dos filas.
type SystemConfigurationModel struct {
	SystemConfigurationID uuid.UUID `gorm:"column:system_configuration_id;type:uuid;default:gen_random_uuid();primaryKey" json:"system_configuration_id"`

	SystemConfigurationKey string `gorm:"column:system_configuration_key;type:text;not null;default:'global';uniqueIndex:uq_system_configuration_key" json:"-"`

	SystemConfigurationBillingDay int `gorm:"column:system_configuration_billing_day;type:smallint;not null;default:5;check:system_configuration_billing_day BETWEEN 1 AND 31" json:"system_configuration_billing_day"`
	SystemConfigurationGraceDays  int `gorm:"column:system_configuration_grace_days;type:smallint;not null;default:5;check:system_configuration_grace_days >= 0" json:"system_configuration_grace_days"`

	SystemConfigurationSurchargeAmount decimal.Decimal `gorm:"column:system_configuration_surcharge_amount;type:numeric(12,2);not null;default:50" json:"system_configuration_surcharge_amount"`
	SystemConfigurationSurchargeKind   string          `gorm:"column:system_configuration_surcharge_kind;type:text;not null;default:'fixed';check:system_configuration_surcharge_kind IN ('fixed','percentage')" json:"system_configuration_surcharge_kind"`

	SystemConfigurationReportEmail *string `gorm:"column:system_configuration_report_email;type:text" json:"system_configuration_report_email,omitempty"`

	SystemConfigurationCreatedAt time.Time  `gorm:"column:system_configuration_created_at;autoCreateTime" json:"system_configuration_created_at"`
	SystemConfigurationUpdatedAt *time.Time `gorm:"column:system_configuration_updated_at;autoUpdateTime" json:"system_configuration_updated_at,omitempty"`
}

func (SystemConfigurationModel) TableName() string { return "system_configuration" }
