package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	m "academia_backend/internals/features/academy/members/model"
	billing "academia_backend/internals/features/finance/billing/service"
)

const dateLayout = "2006-01-02"

/* =============== REQUESTS =============== */

type CreateMemberRequest struct {
	MemberName  string  `json:"member_name"  validate:"required,min=2"`
	MemberPhone string  `json:"member_phone" validate:"required,min=5"`
	MemberEmail *string `json:"member_email" validate:"omitempty,email"`

	MemberBirthDate  *string `json:"member_birth_date"  validate:"omitempty,datetime=2006-01-02"`
	MemberEnrolledAt string  `json:"member_enrolled_at" validate:"required,datetime=2006-01-02"`

	MemberModalityID      *uuid.UUID `json:"member_modality_id"      validate:"omitempty"`
	MemberPaymentsSettled *int       `json:"member_payments_settled" validate:"omitempty,gte=0"`
	MemberActive          *bool      `json:"member_active"           validate:"omitempty"`
}

func (r CreateMemberRequest) ToModel() *m.MemberModel {
	enrolled, _ := time.Parse(dateLayout, r.MemberEnrolledAt) // validado antes

	out := &m.MemberModel{
		MemberName:       r.MemberName,
		MemberPhone:      r.MemberPhone,
		MemberEmail:      r.MemberEmail,
		MemberEnrolledAt: enrolled,
		MemberModalityID: r.MemberModalityID,
		MemberActive:     true,
	}
	if r.MemberBirthDate != nil {
		if bd, err := time.Parse(dateLayout, *r.MemberBirthDate); err == nil {
			out.MemberBirthDate = &bd
		}
	}
	if r.MemberPaymentsSettled != nil {
		out.MemberPaymentsSettled = *r.MemberPaymentsSettled
	}
	if r.MemberActive != nil {
		out.MemberActive = *r.MemberActive
	}
	return out
}

// Update (partial)
type UpdateMemberRequest struct {
	MemberName  *string `json:"member_name"  validate:"omitempty,min=2"`
	MemberPhone *string `json:"member_phone" validate:"omitempty,min=5"`
	MemberEmail *string `json:"member_email" validate:"omitempty,email"`

	MemberBirthDate  *string `json:"member_birth_date"  validate:"omitempty,datetime=2006-01-02"`
	MemberEnrolledAt *string `json:"member_enrolled_at" validate:"omitempty,datetime=2006-01-02"`

	MemberModalityID      *uuid.UUID `json:"member_modality_id"      validate:"omitempty"`
	MemberPaymentsSettled *int       `json:"member_payments_settled" validate:"omitempty,gte=0"`
	MemberActive          *bool      `json:"member_active"           validate:"omitempty"`
}

func (r UpdateMemberRequest) Patch() map[string]interface{} {
	patch := map[string]interface{}{}
	if r.MemberName != nil {
		patch["member_name"] = *r.MemberName
	}
	if r.MemberPhone != nil {
		patch["member_phone"] = *r.MemberPhone
	}
	if r.MemberEmail != nil {
		patch["member_email"] = *r.MemberEmail
	}
	if r.MemberBirthDate != nil {
		if bd, err := time.Parse(dateLayout, *r.MemberBirthDate); err == nil {
			patch["member_birth_date"] = bd
		}
	}
	if r.MemberEnrolledAt != nil {
		if en, err := time.Parse(dateLayout, *r.MemberEnrolledAt); err == nil {
			patch["member_enrolled_at"] = en
		}
	}
	if r.MemberModalityID != nil {
		patch["member_modality_id"] = *r.MemberModalityID
	}
	if r.MemberPaymentsSettled != nil {
		patch["member_payments_settled"] = *r.MemberPaymentsSettled
	}
	if r.MemberActive != nil {
		patch["member_active"] = *r.MemberActive
	}
	return patch
}

/* =============== RESPONSES =============== */

type MemberResponse struct {
	MemberID uuid.UUID `json:"member_id"`

	MemberName  string  `json:"member_name"`
	MemberPhone string  `json:"member_phone"`
	MemberEmail *string `json:"member_email,omitempty"`

	MemberBirthDate  *time.Time `json:"member_birth_date,omitempty"`
	MemberEnrolledAt time.Time  `json:"member_enrolled_at"`

	MemberModalityID      *uuid.UUID `json:"member_modality_id,omitempty"`
	MemberPaymentsSettled int        `json:"member_payments_settled"`
	MemberActive          bool       `json:"member_active"`

	// Resueltos desde la modalidad (si tiene)
	ModalityName         *string          `json:"modality_name,omitempty"`
	ModalityMonthlyPrice *decimal.Decimal `json:"modality_monthly_price,omitempty"`

	// Estado de cobranza derivado; nulo para socios inactivos.
	Billing *billing.Snapshot `json:"billing,omitempty"`

	MemberCreatedAt time.Time  `json:"member_created_at"`
	MemberUpdatedAt *time.Time `json:"member_updated_at,omitempty"`
}

func FromModel(x m.MemberModel) MemberResponse {
	return MemberResponse{
		MemberID:              x.MemberID,
		MemberName:            x.MemberName,
		MemberPhone:           x.MemberPhone,
		MemberEmail:           x.MemberEmail,
		MemberBirthDate:       x.MemberBirthDate,
		MemberEnrolledAt:      x.MemberEnrolledAt,
		MemberModalityID:      x.MemberModalityID,
		MemberPaymentsSettled: x.MemberPaymentsSettled,
		MemberActive:          x.MemberActive,
		MemberCreatedAt:       x.MemberCreatedAt,
		MemberUpdatedAt:       x.MemberUpdatedAt,
	}
}
