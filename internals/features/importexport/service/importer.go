// file: internals/features/importexport/service/importer.go
package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"academia_backend/internals/constants"
	memberModel "academia_backend/internals/features/academy/members/model"
	modalityModel "academia_backend/internals/features/academy/modalities/model"
	paymentModel "academia_backend/internals/features/finance/payments/model"
)

// Los stores se inyectan como interfaces chicas para poder probar el
// pipeline de importación con fakes en memoria.
type MemberStore interface {
	ExistsByNamePhone(ctx context.Context, name, phone string) (bool, error)
	Create(ctx context.Context, m *memberModel.MemberModel) error
}

type ModalityCatalog interface {
	All(ctx context.Context) ([]modalityModel.ModalityModel, error)
}

type PaymentStore interface {
	Create(ctx context.Context, p *paymentModel.PaymentModel) error
}

type Importer struct {
	Members    MemberStore
	Modalities ModalityCatalog
	Payments   PaymentStore

	// now permite fijar la fecha en tests
	now func() time.Time
}

func NewImporter(members MemberStore, modalities ModalityCatalog, payments PaymentStore) *Importer {
	return &Importer{
		Members:    members,
		Modalities: modalities,
		Payments:   payments,
		now:        time.Now,
	}
}

type RejectedRow struct {
	RowNumber  int    `json:"row_number"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Discipline string `json:"discipline"`
	Reason     string `json:"reason"`
}

type Report struct {
	Created        int           `json:"created"`
	Duplicates     int           `json:"duplicates"`
	Rejected       int           `json:"rejected"`
	TotalProcessed int           `json:"total_processed"`
	RejectedRows   []RejectedRow `json:"rejected_rows,omitempty"`

	// Fallos no fatales (la fila igual cuenta como creada)
	Warnings []string `json:"warnings,omitempty"`
}

var enrolledAtLayouts = []string{"2006-01-02", "02/01/2006", "2/1/2006"}

// Run procesa todas las filas: valida, resuelve modalidad, detecta
// duplicados por (nombre, teléfono) y crea socio + pago agregado. Un fallo
// de fila nunca aborta el lote; siempre vale
// TotalProcessed == Created + Duplicates + Rejected.
func (imp *Importer) Run(ctx context.Context, rows []Row) (Report, error) {
	report := Report{RejectedRows: []RejectedRow{}}

	catalog, err := imp.Modalities.All(ctx)
	if err != nil {
		return report, err
	}
	byName := map[string]modalityModel.ModalityModel{}
	byTag := map[string]modalityModel.ModalityModel{}
	for _, mod := range catalog {
		byName[strings.ToLower(strings.TrimSpace(mod.ModalityName))] = mod
		byTag[strings.ToUpper(strings.TrimSpace(mod.ModalityGroupTag))] = mod
	}

	// duplicados dentro del mismo lote
	seen := map[string]bool{}

	for _, row := range rows {
		report.TotalProcessed++

		name := row.FullName()
		phone := strings.TrimSpace(row.Phone)

		reject := func(reason string) {
			report.Rejected++
			report.RejectedRows = append(report.RejectedRows, RejectedRow{
				RowNumber:  row.Number,
				Name:       name,
				Phone:      phone,
				Discipline: row.Discipline,
				Reason:     reason,
			})
		}

		if name == "" {
			reject("falta el nombre")
			continue
		}
		if phone == "" {
			reject("falta el teléfono")
			continue
		}

		enrolledAt, perr := parseEnrolledAt(row.EnrolledAt, imp.now())
		if perr != nil {
			reject(perr.Error())
			continue
		}

		if row.MonthlyPrice != "" {
			if _, perr := strconv.ParseFloat(strings.ReplaceAll(row.MonthlyPrice, ",", "."), 64); perr != nil {
				reject(fmt.Sprintf("mensualidad ilegible: %q", row.MonthlyPrice))
				continue
			}
		}

		modality, ok := resolveModality(row, byName, byTag)
		if !ok {
			reject(fmt.Sprintf("disciplina sin modalidad registrada: %q", strings.TrimSpace(row.Discipline)))
			continue
		}

		key := strings.ToLower(name) + "|" + phone
		if seen[key] {
			report.Duplicates++
			continue
		}
		exists, derr := imp.Members.ExistsByNamePhone(ctx, name, phone)
		if derr != nil {
			reject("no se pudo verificar duplicados: " + derr.Error())
			continue
		}
		if exists {
			seen[key] = true
			report.Duplicates++
			continue
		}

		paidMonths := row.PaidMonths()
		member := &memberModel.MemberModel{
			MemberName:            name,
			MemberPhone:           phone,
			MemberEnrolledAt:      enrolledAt,
			MemberModalityID:      &modality.ModalityID,
			MemberPaymentsSettled: paidMonths,
			MemberActive:          true,
		}
		if cerr := imp.Members.Create(ctx, member); cerr != nil {
			reject("no se pudo crear el socio: " + cerr.Error())
			continue
		}

		// un pago agregado por los meses marcados; el contador del socio ya
		// refleja la cantidad de meses
		if paidMonths > 0 {
			payment := &paymentModel.PaymentModel{
				PaymentMemberID: member.MemberID,
				PaymentAmount:   modality.ModalityMonthlyPrice.Mul(decimal.NewFromInt(int64(paidMonths))),
				PaymentConcept:  constants.ConceptMonthlyFee,
				PaymentPaidAt:   imp.now(),
			}
			if perr := imp.Payments.Create(ctx, payment); perr != nil {
				// el socio ya quedó creado: la fila cuenta como creada y el
				// fallo del pago se reporta aparte, nunca se pierde en logs
				report.Warnings = append(report.Warnings, fmt.Sprintf(
					"fila %d: socio creado pero el pago agregado falló: %v", row.Number, perr))
			}
		}

		seen[key] = true
		report.Created++
	}

	return report, nil
}

func resolveModality(row Row, byName, byTag map[string]modalityModel.ModalityModel) (modalityModel.ModalityModel, bool) {
	if tag := strings.ToUpper(strings.TrimSpace(row.GroupTag)); tag != "" {
		if mod, ok := byTag[tag]; ok {
			return mod, true
		}
	}
	if name := strings.ToLower(strings.TrimSpace(row.Discipline)); name != "" {
		if mod, ok := byName[name]; ok {
			return mod, true
		}
	}
	return modalityModel.ModalityModel{}, false
}

func parseEnrolledAt(raw string, fallback time.Time) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		// sin fecha en la planilla: se toma la fecha de la importación
		return time.Date(fallback.Year(), fallback.Month(), fallback.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	for _, layout := range enrolledAtLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("fecha de inscripción ilegible: %q", raw)
}
