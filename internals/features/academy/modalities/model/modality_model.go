package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ModalityModel struct {
	ModalityID uuid.UUID `gorm:"column:modality_id;type:uuid;default:gen_random_uuid();primaryKey" json:"modality_id"`

	ModalityName string `gorm:"column:modality_name;type:text;not null" json:"modality_name"`

	// Letra de grupo (única): clave de cruce con la columna GRUPO de la planilla
	ModalityGroupTag string `gorm:"column:modality_group_tag;type:char(1);not null;uniqueIndex:uq_modalities_group_tag,where:modality_deleted_at IS NULL" json:"modality_group_tag"`

	ModalityMonthlyPrice decimal.Decimal `gorm:"column:modality_monthly_price;type:numeric(12,2);not null;default:0" json:"modality_monthly_price"`

	ModalityInstructor *string `gorm:"column:modality_instructor;type:text" json:"modality_instructor,omitempty"`

	// Horario semanal: {"mon":{"start":"18:00","end":"20:00"}, ...}
	ModalitySchedule datatypes.JSON `gorm:"column:modality_schedule;type:jsonb" json:"modality_schedule,omitempty"`

	ModalityCreatedAt time.Time      `gorm:"column:modality_created_at;autoCreateTime" json:"modality_created_at"`
	ModalityUpdatedAt *time.Time     `gorm:"column:modality_updated_at;autoUpdateTime" json:"modality_updated_at,omitempty"`
	ModalityDeletedAt gorm.DeletedAt `gorm:"column:modality_deleted_at;index" json:"modality_deleted_at,omitempty"`
}

func (ModalityModel) TableName() string { return "modalities" }
