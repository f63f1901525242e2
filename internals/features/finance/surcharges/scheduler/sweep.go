// file: internals/features/finance/surcharges/scheduler/sweep.go
package scheduler

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"academia_backend/internals/constants"
	memberModel "academia_backend/internals/features/academy/members/model"
	modalityModel "academia_backend/internals/features/academy/modalities/model"
	billing "academia_backend/internals/features/finance/billing/service"
	surchargeModel "academia_backend/internals/features/finance/surcharges/model"
	configService "academia_backend/internals/features/system/configuration/service"
)

// StartSurchargeSweep lanza el barrido periódico que aplica recargos a los
// socios vencidos más allá de los días de gracia. El índice único
// (socio, período) + ON CONFLICT DO NOTHING lo hace idempotente aunque se
// pise con un recálculo manual.
func StartSurchargeSweep(db *gorm.DB, cfgSvc *configService.ConfigurationService) {
	intervalHours := 24
	if val := os.Getenv("SURCHARGE_SWEEP_INTERVAL_HOURS"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			intervalHours = parsed
		}
	}

	go func() {
		for {
			if err := runSweep(db, cfgSvc); err != nil {
				log.Printf("[SWEEP ERROR] barrido de recargos: %v", err)
			}
			time.Sleep(time.Duration(intervalHours) * time.Hour)
		}
	}()
}

func runSweep(db *gorm.DB, cfgSvc *configService.ConfigurationService) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	log.Println("[SWEEP] Evaluando socios vencidos...")

	cfg, err := cfgSvc.Get(ctx)
	if err != nil {
		return err
	}

	// solo socios activos con modalidad: sin precio no hay deuda que recargar
	var members []memberModel.MemberModel
	if err := db.WithContext(ctx).
		Where("member_active = TRUE AND member_modality_id IS NOT NULL").
		Find(&members).Error; err != nil {
		return err
	}
	if len(members) == 0 {
		log.Println("[SWEEP] Sin socios a evaluar")
		return nil
	}

	modalityIDs := make([]uuid.UUID, 0, len(members))
	for _, mm := range members {
		modalityIDs = append(modalityIDs, *mm.MemberModalityID)
	}
	var modalities []modalityModel.ModalityModel
	if err := db.WithContext(ctx).
		Where("modality_id IN ?", modalityIDs).
		Find(&modalities).Error; err != nil {
		return err
	}
	prices := map[uuid.UUID]decimal.Decimal{}
	for _, mod := range modalities {
		prices[mod.ModalityID] = mod.ModalityMonthlyPrice
	}

	now := time.Now()
	period := billing.BillingPeriod(now)
	applied := 0

	for _, mm := range members {
		price, ok := prices[*mm.MemberModalityID]
		if !ok {
			continue
		}
		snap := billing.ComputeSnapshot(billing.SnapshotInput{
			EnrolledAt:      mm.MemberEnrolledAt,
			Today:           now,
			PaymentsSettled: mm.MemberPaymentsSettled,
			MonthlyPrice:    price,
			BillingDay:      cfg.SystemConfigurationBillingDay,
		})
		if snap.Status != billing.StatusOverdue || snap.DaysOverdue <= cfg.SystemConfigurationGraceDays {
			continue
		}

		row := surchargeModel.SurchargeModel{
			SurchargeMemberID:  mm.MemberID,
			SurchargePeriod:    period,
			SurchargeAmount:    SurchargeAmountFor(cfg.SystemConfigurationSurchargeKind, cfg.SystemConfigurationSurchargeAmount, price),
			SurchargeStatus:    constants.SurchargeStatusPending,
			SurchargeAppliedAt: now,
		}
		res := db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "surcharge_member_id"}, {Name: "surcharge_period"}},
				DoNothing: true,
			}).
			Create(&row)
		if res.Error != nil {
			log.Printf("[SWEEP ERROR] recargo para socio %s: %v", mm.MemberID, res.Error)
			continue
		}
		if res.RowsAffected > 0 {
			applied++
		}
	}

	log.Printf("[SWEEP] Listo: %d recargo(s) aplicados para el período %s", applied, period)
	return nil
}

// SurchargeAmountFor resuelve el monto del recargo según el tipo
// configurado: fijo, o porcentaje del precio de la modalidad.
func SurchargeAmountFor(kind string, amount, monthlyPrice decimal.Decimal) decimal.Decimal {
	if kind == constants.SurchargeKindPercentage {
		return monthlyPrice.Mul(amount).Div(decimal.NewFromInt(100)).Round(2)
	}
	return amount
}
