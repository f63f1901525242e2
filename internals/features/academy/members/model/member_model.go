package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MemberModel struct {
	MemberID uuid.UUID `gorm:"column:member_id;type:uuid;default:gen_random_uuid();primaryKey" json:"member_id"`

	MemberName  string  `gorm:"column:member_name;type:text;not null;uniqueIndex:uq_members_name_phone,where:member_deleted_at IS NULL" json:"member_name"`
	MemberPhone string  `gorm:"column:member_phone;type:text;not null;uniqueIndex:uq_members_name_phone,where:member_deleted_at IS NULL" json:"member_phone"`
	MemberEmail *string `gorm:"column:member_email;type:text" json:"member_email,omitempty"`

	MemberBirthDate  *time.Time `gorm:"column:member_birth_date;type:date" json:"member_birth_date,omitempty"`
	MemberEnrolledAt time.Time  `gorm:"column:member_enrolled_at;type:date;not null" json:"member_enrolled_at"`

	// FK (nullable → SET NULL): socio sin modalidad asignada
	MemberModalityID *uuid.UUID `gorm:"column:member_modality_id;type:uuid" json:"member_modality_id,omitempty"`

	// Mensualidades saldadas desde la inscripción; nunca negativo (CHECK)
	MemberPaymentsSettled int `gorm:"column:member_payments_settled;type:integer;not null;default:0;check:member_payments_settled >= 0" json:"member_payments_settled"`

	MemberActive bool `gorm:"column:member_active;not null;default:true" json:"member_active"`

	MemberCreatedAt time.Time      `gorm:"column:member_created_at;autoCreateTime" json:"member_created_at"`
	MemberUpdatedAt *time.Time     `gorm:"column:member_updated_at;autoUpdateTime" json:"member_updated_at,omitempty"`
	MemberDeletedAt gorm.DeletedAt `gorm:"column:member_deleted_at;index" json:"member_deleted_at,omitempty"`
}

func (MemberModel) TableName() string { return "members" }
