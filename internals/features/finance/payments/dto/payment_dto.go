package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"academia_backend/internals/constants"
	m "academia_backend/internals/features/finance/payments/model"
)

/* =============== REQUESTS =============== */

type CreatePaymentRequest struct {
	PaymentMemberID uuid.UUID  `json:"payment_member_id" validate:"required"`
	PaymentAmount   float64    `json:"payment_amount"    validate:"gte=0"`
	PaymentConcept  *string    `json:"payment_concept"   validate:"omitempty,min=2"`
	PaymentPaidAt   *time.Time `json:"payment_paid_at"   validate:"omitempty"`

	// "card" dispara el enlace de cobro con la pasarela (best-effort)
	PaymentMethod *string `json:"payment_method" validate:"omitempty,oneof=cash card"`
}

func (r CreatePaymentRequest) ToModel() *m.PaymentModel {
	concept := constants.ConceptMonthlyFee
	if r.PaymentConcept != nil && *r.PaymentConcept != "" {
		concept = *r.PaymentConcept
	}
	paidAt := time.Now()
	if r.PaymentPaidAt != nil {
		paidAt = *r.PaymentPaidAt
	}
	return &m.PaymentModel{
		PaymentMemberID: r.PaymentMemberID,
		PaymentAmount:   decimal.NewFromFloat(r.PaymentAmount),
		PaymentConcept:  concept,
		PaymentPaidAt:   paidAt,
	}
}

type ListPaymentQuery struct {
	MemberID *uuid.UUID `query:"member_id" validate:"omitempty"`
	From     *time.Time `query:"from"      validate:"omitempty"`
	To       *time.Time `query:"to"        validate:"omitempty"`
}

/* =============== RESPONSES =============== */

type PaymentResponse struct {
	PaymentID        uuid.UUID       `json:"payment_id"`
	PaymentMemberID  uuid.UUID       `json:"payment_member_id"`
	PaymentAmount    decimal.Decimal `json:"payment_amount"`
	PaymentConcept   string          `json:"payment_concept"`
	PaymentPaidAt    time.Time       `json:"payment_paid_at"`
	PaymentCreatedAt time.Time       `json:"payment_created_at"`

	// Presente solo cuando se pidió cobro con tarjeta y la pasarela respondió
	CardCharge *CardChargeResponse `json:"card_charge,omitempty"`
}

type CardChargeResponse struct {
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`
}

type DayCutResponse struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
	Count int64           `json:"count"`
}

func FromModel(x m.PaymentModel) PaymentResponse {
	return PaymentResponse{
		PaymentID:        x.PaymentID,
		PaymentMemberID:  x.PaymentMemberID,
		PaymentAmount:    x.PaymentAmount,
		PaymentConcept:   x.PaymentConcept,
		PaymentPaidAt:    x.PaymentPaidAt,
		PaymentCreatedAt: x.PaymentCreatedAt,
	}
}

func FromModels(list []m.PaymentModel) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
