// file: internals/features/importexport/service/exporter.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	memberModel "academia_backend/internals/features/academy/members/model"
	modalityModel "academia_backend/internals/features/academy/modalities/model"
	billing "academia_backend/internals/features/finance/billing/service"
	configModel "academia_backend/internals/features/system/configuration/model"
)

// BuildMemberExport arma la planilla con todos los socios vigentes, la
// modalidad resuelta y el estado de cobranza derivado.
func BuildMemberExport(ctx context.Context, db *gorm.DB, cfg configModel.SystemConfigurationModel) (*excelize.File, error) {
	var members []memberModel.MemberModel
	if err := db.WithContext(ctx).
		Order("member_name ASC").
		Find(&members).Error; err != nil {
		return nil, err
	}

	var modalities []modalityModel.ModalityModel
	if err := db.WithContext(ctx).Find(&modalities).Error; err != nil {
		return nil, err
	}
	byID := map[uuid.UUID]modalityModel.ModalityModel{}
	for _, mod := range modalities {
		byID[mod.ModalityID] = mod
	}

	memberIDs := make([]uuid.UUID, 0, len(members))
	for _, mm := range members {
		memberIDs = append(memberIDs, mm.MemberID)
	}
	surchargeTotals, err := billing.PendingSurchargeTotals(ctx, db, memberIDs)
	if err != nil {
		return nil, err
	}

	today := time.Now()
	rows := make([]ExportRow, 0, len(members))
	for i, mm := range members {
		row := ExportRow{
			Matricula:       i + 1,
			Name:            mm.MemberName,
			Phone:           mm.MemberPhone,
			PaymentsSettled: mm.MemberPaymentsSettled,
			EnrolledAt:      mm.MemberEnrolledAt,
			MonthlyPrice:    decimal.Zero,
		}

		price := decimal.Zero
		if mm.MemberModalityID != nil {
			if mod, ok := byID[*mm.MemberModalityID]; ok {
				row.Discipline = mod.ModalityName
				row.GroupTag = mod.ModalityGroupTag
				row.MonthlyPrice = mod.ModalityMonthlyPrice
				if mod.ModalityInstructor != nil {
					row.Instructor = *mod.ModalityInstructor
				}
				price = mod.ModalityMonthlyPrice
			}
		}

		if mm.MemberActive {
			snap := billing.ComputeSnapshot(billing.SnapshotInput{
				EnrolledAt:        mm.MemberEnrolledAt,
				Today:             today,
				PaymentsSettled:   mm.MemberPaymentsSettled,
				MonthlyPrice:      price,
				BillingDay:        cfg.SystemConfigurationBillingDay,
				PendingSurcharges: surchargeTotals[mm.MemberID],
			})
			row.Status = string(snap.Status)
		} else {
			row.Status = "inactivo"
		}

		rows = append(rows, row)
	}

	return BuildWorkbook(rows)
}
