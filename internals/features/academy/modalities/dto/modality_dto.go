package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	m "academia_backend/internals/features/academy/modalities/model"
)

/* =============== SCHEDULE =============== */

type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// WeeklySchedule: franja horaria opcional por día ("mon".."sun").
type WeeklySchedule map[string]TimeRange

var validDays = map[string]bool{
	"mon": true, "tue": true, "wed": true, "thu": true,
	"fri": true, "sat": true, "sun": true,
}

// Validate chequea días conocidos y horas HH:MM con inicio antes del fin.
// Devuelve errores por campo en el formato del envelope, nil si está bien.
func (ws WeeklySchedule) Validate() map[string][]string {
	errs := map[string][]string{}
	for day, tr := range ws {
		if !validDays[day] {
			errs["modality_schedule"] = append(errs["modality_schedule"], "día desconocido: "+day)
			continue
		}
		start, err1 := time.Parse("15:04", tr.Start)
		end, err2 := time.Parse("15:04", tr.End)
		if err1 != nil || err2 != nil {
			errs["modality_schedule"] = append(errs["modality_schedule"], day+": las horas deben tener formato HH:MM")
			continue
		}
		if !start.Before(end) {
			errs["modality_schedule"] = append(errs["modality_schedule"], day+": la hora de inicio debe preceder a la de fin")
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (ws WeeklySchedule) ToJSON() datatypes.JSON {
	if len(ws) == 0 {
		return nil
	}
	b, err := json.Marshal(ws)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}

func ScheduleFromJSON(raw datatypes.JSON) WeeklySchedule {
	if len(raw) == 0 {
		return nil
	}
	var ws WeeklySchedule
	if err := json.Unmarshal(raw, &ws); err != nil {
		return nil
	}
	return ws
}

/* =============== REQUESTS =============== */

type CreateModalityRequest struct {
	ModalityName         string         `json:"modality_name"          validate:"required,min=2"`
	ModalityGroupTag     string         `json:"modality_group_tag"     validate:"required,len=1,alpha,uppercase"`
	ModalityMonthlyPrice float64        `json:"modality_monthly_price" validate:"gte=0"`
	ModalityInstructor   *string        `json:"modality_instructor"    validate:"omitempty,min=2"`
	ModalitySchedule     WeeklySchedule `json:"modality_schedule"      validate:"omitempty"`
}

func (r CreateModalityRequest) ToModel() *m.ModalityModel {
	return &m.ModalityModel{
		ModalityName:         r.ModalityName,
		ModalityGroupTag:     r.ModalityGroupTag,
		ModalityMonthlyPrice: decimal.NewFromFloat(r.ModalityMonthlyPrice),
		ModalityInstructor:   r.ModalityInstructor,
		ModalitySchedule:     r.ModalitySchedule.ToJSON(),
	}
}

// Update (partial)
type UpdateModalityRequest struct {
	ModalityName         *string        `json:"modality_name"          validate:"omitempty,min=2"`
	ModalityGroupTag     *string        `json:"modality_group_tag"     validate:"omitempty,len=1,alpha,uppercase"`
	ModalityMonthlyPrice *float64       `json:"modality_monthly_price" validate:"omitempty,gte=0"`
	ModalityInstructor   *string        `json:"modality_instructor"    validate:"omitempty"`
	ModalitySchedule     WeeklySchedule `json:"modality_schedule"      validate:"omitempty"`
}

func (r UpdateModalityRequest) Patch() map[string]interface{} {
	patch := map[string]interface{}{}
	if r.ModalityName != nil {
		patch["modality_name"] = *r.ModalityName
	}
	if r.ModalityGroupTag != nil {
		patch["modality_group_tag"] = *r.ModalityGroupTag
	}
	if r.ModalityMonthlyPrice != nil {
		patch["modality_monthly_price"] = decimal.NewFromFloat(*r.ModalityMonthlyPrice)
	}
	if r.ModalityInstructor != nil {
		patch["modality_instructor"] = *r.ModalityInstructor
	}
	if r.ModalitySchedule != nil {
		patch["modality_schedule"] = r.ModalitySchedule.ToJSON()
	}
	return patch
}

/* =============== RESPONSES =============== */

type ModalityResponse struct {
	ModalityID           uuid.UUID       `json:"modality_id"`
	ModalityName         string          `json:"modality_name"`
	ModalityGroupTag     string          `json:"modality_group_tag"`
	ModalityMonthlyPrice decimal.Decimal `json:"modality_monthly_price"`
	ModalityInstructor   *string         `json:"modality_instructor,omitempty"`
	ModalitySchedule     WeeklySchedule  `json:"modality_schedule,omitempty"`
	ModalityCreatedAt    time.Time       `json:"modality_created_at"`
	ModalityUpdatedAt    *time.Time      `json:"modality_updated_at,omitempty"`
}

func FromModel(x m.ModalityModel) ModalityResponse {
	return ModalityResponse{
		ModalityID:           x.ModalityID,
		ModalityName:         x.ModalityName,
		ModalityGroupTag:     x.ModalityGroupTag,
		ModalityMonthlyPrice: x.ModalityMonthlyPrice,
		ModalityInstructor:   x.ModalityInstructor,
		ModalitySchedule:     ScheduleFromJSON(x.ModalitySchedule),
		ModalityCreatedAt:    x.ModalityCreatedAt,
		ModalityUpdatedAt:    x.ModalityUpdatedAt,
	}
}

func FromModels(list []m.ModalityModel) []ModalityResponse {
	out := make([]ModalityResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
