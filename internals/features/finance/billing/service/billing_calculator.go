// file: internals/features/finance/billing/service/billing_calculator.go
//
// Cálculo de morosidad por socio: puro y sin estado, se evalúa por request a
// partir de la fecha de inscripción, el contador de mensualidades saldadas y
// la configuración global (día de cobro). Nunca toca la base de datos.
package service

import (
	"time"

	"github.com/shopspring/decimal"
)

type DelinquencyStatus string

const (
	StatusOnTime  DelinquencyStatus = "on-time"
	StatusDueSoon DelinquencyStatus = "due-soon"
	StatusOverdue DelinquencyStatus = "overdue"
)

// Ventana (en días, inclusive) en la que un socio al día pasa a "due-soon".
const dueSoonWindowDays = 3

type SnapshotInput struct {
	EnrolledAt      time.Time
	Today           time.Time
	PaymentsSettled int
	// Precio mensual de la modalidad; cero cuando el socio no tiene
	// modalidad asignada (o fue borrada): el saldo queda en cero, no falla.
	MonthlyPrice      decimal.Decimal
	BillingDay        int
	PendingSurcharges decimal.Decimal
}

type Snapshot struct {
	MonthsElapsed       int               `json:"months_elapsed"`
	MonthsPending       int               `json:"months_pending"`
	OutstandingBalance  decimal.Decimal   `json:"outstanding_balance"`
	TotalWithSurcharges decimal.Decimal   `json:"total_with_surcharges"`
	NextDueDate         time.Time         `json:"next_due_date"`
	Status              DelinquencyStatus `json:"status"`
	DaysOverdue         int               `json:"days_overdue"`
}

// ComputeSnapshot deriva el estado de cobranza de un socio activo.
// El socio inactivo no acumula nada: esa política la aplica el caller
// salteando este cálculo, no es parte de la fórmula.
func ComputeSnapshot(in SnapshotInput) Snapshot {
	enrolled := dateOnly(in.EnrolledAt)
	today := dateOnly(in.Today)

	monthsElapsed := monthsBetween(enrolled, today)

	monthsPending := monthsElapsed + 1 - in.PaymentsSettled
	if monthsPending < 0 {
		monthsPending = 0
	}

	outstanding := in.MonthlyPrice.Mul(decimal.NewFromInt(int64(monthsPending)))

	billingThisMonth := billingDateOf(today.Year(), today.Month(), in.BillingDay)
	nextDue := billingThisMonth
	if !today.Before(billingThisMonth) {
		next := today.AddDate(0, 1, 0)
		nextDue = billingDateOf(next.Year(), next.Month(), in.BillingDay)
	}

	snap := Snapshot{
		MonthsElapsed:       monthsElapsed,
		MonthsPending:       monthsPending,
		OutstandingBalance:  outstanding,
		TotalWithSurcharges: outstanding.Add(in.PendingSurcharges),
		NextDueDate:         nextDue,
		Status:              StatusOnTime,
	}

	switch {
	case monthsPending > 0 && today.After(billingThisMonth):
		snap.Status = StatusOverdue
		snap.DaysOverdue = int(today.Sub(billingThisMonth).Hours() / 24)
	case monthsPending == 0 && daysBetween(today, nextDue) <= dueSoonWindowDays:
		snap.Status = StatusDueSoon
	}

	return snap
}

// BillingPeriod devuelve el período "YYYY-MM" de una fecha; es la clave de
// idempotencia de los recargos.
func BillingPeriod(t time.Time) string {
	return t.Format("2006-01")
}

// monthsBetween cuenta meses calendario completos entre dos fechas:
// se resta uno si el día del mes actual precede al día de inscripción.
func monthsBetween(from, to time.Time) int {
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() {
		months--
	}
	if months < 0 {
		months = 0
	}
	return months
}

// billingDateOf acota el día de cobro al largo del mes (día 31 en febrero
// cae al último día del mes).
func billingDateOf(year int, month time.Month, billingDay int) time.Time {
	if billingDay < 1 {
		billingDay = 1
	}
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if billingDay > lastDay {
		billingDay = lastDay
	}
	return time.Date(year, month, billingDay, 0, 0, 0, 0, time.UTC)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
