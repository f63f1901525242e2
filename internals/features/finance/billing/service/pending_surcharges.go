// file: internals/features/finance/billing/service/pending_surcharges.go
package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PendingSurchargeTotals suma los recargos en estado pending por socio, en
// una sola consulta, para enriquecer listados sin ir fila por fila.
func PendingSurchargeTotals(ctx context.Context, db *gorm.DB, memberIDs []uuid.UUID) (map[uuid.UUID]decimal.Decimal, error) {
	totals := map[uuid.UUID]decimal.Decimal{}
	if len(memberIDs) == 0 {
		return totals, nil
	}

	var rows []struct {
		MemberID uuid.UUID       `gorm:"column:surcharge_member_id"`
		Total    decimal.Decimal `gorm:"column:total"`
	}
	err := db.WithContext(ctx).Raw(`
		SELECT surcharge_member_id, COALESCE(SUM(surcharge_amount), 0) AS total
		FROM surcharges
		WHERE surcharge_status = 'pending'
		  AND surcharge_deleted_at IS NULL
		  AND surcharge_member_id IN ?
		GROUP BY surcharge_member_id
	`, memberIDs).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		totals[r.MemberID] = r.Total
	}
	return totals, nil
}
