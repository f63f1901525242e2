package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	m "academia_backend/internals/features/finance/surcharges/model"
)

/* =============== REQUESTS =============== */

// Alta manual de recargo (el barrido automático usa el mismo modelo).
type CreateSurchargeRequest struct {
	SurchargeMemberID uuid.UUID `json:"surcharge_member_id" validate:"required"`
	SurchargeAmount   float64   `json:"surcharge_amount"    validate:"gte=0"`
	SurchargePeriod   string    `json:"surcharge_period"    validate:"required,len=7,datetime=2006-01"`
}

func (r CreateSurchargeRequest) ToModel() *m.SurchargeModel {
	return &m.SurchargeModel{
		SurchargeMemberID:  r.SurchargeMemberID,
		SurchargeAmount:    decimal.NewFromFloat(r.SurchargeAmount),
		SurchargePeriod:    r.SurchargePeriod,
		SurchargeStatus:    "pending",
		SurchargeAppliedAt: time.Now(),
	}
}

// Transición de estado; el monto nunca se toca.
type UpdateSurchargeStatusRequest struct {
	SurchargeStatus string `json:"surcharge_status" validate:"required,oneof=pending paid waived"`
}

type ListSurchargeQuery struct {
	MemberID *uuid.UUID `query:"member_id" validate:"omitempty"`
	Status   *string    `query:"status"    validate:"omitempty,oneof=pending paid waived"`
	Period   *string    `query:"period"    validate:"omitempty,len=7"`
}

/* =============== RESPONSES =============== */

type SurchargeResponse struct {
	SurchargeID        uuid.UUID       `json:"surcharge_id"`
	SurchargeMemberID  uuid.UUID       `json:"surcharge_member_id"`
	SurchargePeriod    string          `json:"surcharge_period"`
	SurchargeAmount    decimal.Decimal `json:"surcharge_amount"`
	SurchargeStatus    string          `json:"surcharge_status"`
	SurchargeAppliedAt time.Time       `json:"surcharge_applied_at"`
	SurchargeUpdatedAt *time.Time      `json:"surcharge_updated_at,omitempty"`
}

func FromModel(x m.SurchargeModel) SurchargeResponse {
	return SurchargeResponse{
		SurchargeID:        x.SurchargeID,
		SurchargeMemberID:  x.SurchargeMemberID,
		SurchargePeriod:    x.SurchargePeriod,
		SurchargeAmount:    x.SurchargeAmount,
		SurchargeStatus:    x.SurchargeStatus,
		SurchargeAppliedAt: x.SurchargeAppliedAt,
		SurchargeUpdatedAt: x.SurchargeUpdatedAt,
	}
}

func FromModels(list []m.SurchargeModel) []SurchargeResponse {
	out := make([]SurchargeResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
