package dto

import (
	"time"

	"github.com/shopspring/decimal"

	m "academia_backend/internals/features/system/configuration/model"
)

/* =============== REQUESTS =============== */

// Update (partial): solo se aplica lo que viene presente; si algo es
// inválido no se persiste nada.
type UpdateSystemConfigurationRequest struct {
	BillingDay      *int     `json:"billing_day"      validate:"omitempty,gte=1,lte=31"`
	GraceDays       *int     `json:"grace_days"       validate:"omitempty,gte=0"`
	SurchargeAmount *float64 `json:"surcharge_amount" validate:"omitempty,gte=0"`
	SurchargeKind   *string  `json:"surcharge_kind"   validate:"omitempty,oneof=fixed percentage"`
	ReportEmail     *string  `json:"report_email"     validate:"omitempty,email"`
}

// Patch construye el mapa de columnas a actualizar a partir de los campos
// presentes (puntero != nil).
func (r UpdateSystemConfigurationRequest) Patch() map[string]interface{} {
	patch := map[string]interface{}{}
	if r.BillingDay != nil {
		patch["system_configuration_billing_day"] = *r.BillingDay
	}
	if r.GraceDays != nil {
		patch["system_configuration_grace_days"] = *r.GraceDays
	}
	if r.SurchargeAmount != nil {
		patch["system_configuration_surcharge_amount"] = decimal.NewFromFloat(*r.SurchargeAmount)
	}
	if r.SurchargeKind != nil {
		patch["system_configuration_surcharge_kind"] = *r.SurchargeKind
	}
	if r.ReportEmail != nil {
		patch["system_configuration_report_email"] = *r.ReportEmail
	}
	return patch
}

/* =============== RESPONSES =============== */

type SystemConfigurationResponse struct {
	BillingDay      int             `json:"billing_day"`
	GraceDays       int             `json:"grace_days"`
	SurchargeAmount decimal.Decimal `json:"surcharge_amount"`
	SurchargeKind   string          `json:"surcharge_kind"`
	ReportEmail     *string         `json:"report_email,omitempty"`
	UpdatedAt       *time.Time      `json:"updated_at,omitempty"`
}

func FromModel(x m.SystemConfigurationModel) SystemConfigurationResponse {
	return SystemConfigurationResponse{
		BillingDay:      x.SystemConfigurationBillingDay,
		GraceDays:       x.SystemConfigurationGraceDays,
		SurchargeAmount: x.SystemConfigurationSurchargeAmount,
		SurchargeKind:   x.SystemConfigurationSurchargeKind,
		ReportEmail:     x.SystemConfigurationReportEmail,
		UpdatedAt:       x.SystemConfigurationUpdatedAt,
	}
}
