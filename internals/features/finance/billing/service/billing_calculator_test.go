package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeSnapshot_OverdueScenario(t *testing.T) {
	// Inscripto el 10, precio $100, 0 mensualidades saldadas, hoy es el 25
	// del mes siguiente, día de cobro 5.
	snap := ComputeSnapshot(SnapshotInput{
		EnrolledAt:      date(2025, time.January, 10),
		Today:           date(2025, time.February, 25),
		PaymentsSettled: 0,
		MonthlyPrice:    decimal.NewFromInt(100),
		BillingDay:      5,
	})

	require.Equal(t, 1, snap.MonthsElapsed)
	require.Equal(t, 2, snap.MonthsPending)
	assert.True(t, snap.OutstandingBalance.Equal(decimal.NewFromInt(200)), "balance = %s", snap.OutstandingBalance)
	assert.Equal(t, StatusOverdue, snap.Status)
	assert.Equal(t, 20, snap.DaysOverdue)
	assert.Equal(t, date(2025, time.March, 5), snap.NextDueDate)
}

func TestComputeSnapshot_SettledMeansZeroPending(t *testing.T) {
	// paymentsSettled >= monthsElapsed+1 ⇒ monthsPending == 0 y saldo == 0
	cases := []struct {
		name    string
		settled int
	}{
		{"exactly covered", 4},
		{"overpaid", 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			snap := ComputeSnapshot(SnapshotInput{
				EnrolledAt:      date(2025, time.March, 1),
				Today:           date(2025, time.June, 15),
				PaymentsSettled: tc.settled,
				MonthlyPrice:    decimal.NewFromInt(150),
				BillingDay:      5,
			})
			assert.Equal(t, 0, snap.MonthsPending)
			assert.True(t, snap.OutstandingBalance.IsZero())
			assert.NotEqual(t, StatusOverdue, snap.Status)
		})
	}
}

func TestComputeSnapshot_MonthsElapsedDayAdjustment(t *testing.T) {
	cases := []struct {
		name     string
		enrolled time.Time
		today    time.Time
		want     int
	}{
		{"same day of month", date(2025, time.January, 10), date(2025, time.March, 10), 2},
		{"day before enrollment day", date(2025, time.January, 10), date(2025, time.March, 9), 1},
		{"day after enrollment day", date(2025, time.January, 10), date(2025, time.March, 11), 2},
		{"enrolled today", date(2025, time.March, 11), date(2025, time.March, 11), 0},
		{"enrolled in the future", date(2025, time.December, 1), date(2025, time.March, 11), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			snap := ComputeSnapshot(SnapshotInput{
				EnrolledAt:   tc.enrolled,
				Today:        tc.today,
				MonthlyPrice: decimal.NewFromInt(100),
				BillingDay:   5,
			})
			assert.Equal(t, tc.want, snap.MonthsElapsed)
		})
	}
}

func TestComputeSnapshot_NextDueDateRollsOver(t *testing.T) {
	cases := []struct {
		name  string
		today time.Time
		want  time.Time
	}{
		{"before billing day", date(2025, time.April, 2), date(2025, time.April, 5)},
		{"on billing day rolls to next month", date(2025, time.April, 5), date(2025, time.May, 5)},
		{"after billing day", date(2025, time.April, 20), date(2025, time.May, 5)},
		{"december rolls to january", date(2025, time.December, 20), date(2026, time.January, 5)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			snap := ComputeSnapshot(SnapshotInput{
				EnrolledAt:      date(2025, time.January, 1),
				Today:           tc.today,
				PaymentsSettled: 12,
				MonthlyPrice:    decimal.NewFromInt(100),
				BillingDay:      5,
			})
			assert.Equal(t, tc.want, snap.NextDueDate)
			assert.False(t, snap.NextDueDate.Before(tc.today), "next due date nunca en el pasado")
		})
	}
}

func TestComputeSnapshot_BillingDayClampedToMonthLength(t *testing.T) {
	snap := ComputeSnapshot(SnapshotInput{
		EnrolledAt:      date(2025, time.January, 1),
		Today:           date(2025, time.February, 10),
		PaymentsSettled: 12,
		MonthlyPrice:    decimal.NewFromInt(100),
		BillingDay:      31,
	})
	// febrero no tiene 31: el cobro cae al 28
	assert.Equal(t, date(2025, time.February, 28), snap.NextDueDate)
}

func TestComputeSnapshot_DueSoonWindow(t *testing.T) {
	cases := []struct {
		name  string
		today time.Time
		want  DelinquencyStatus
	}{
		{"three days before due", date(2025, time.April, 2), StatusDueSoon},
		{"one day before due", date(2025, time.April, 4), StatusDueSoon},
		{"four days before due", date(2025, time.April, 1), StatusOnTime},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			snap := ComputeSnapshot(SnapshotInput{
				EnrolledAt:      date(2025, time.March, 20),
				Today:           tc.today,
				PaymentsSettled: 2, // cubre monthsElapsed+1
				MonthlyPrice:    decimal.NewFromInt(100),
				BillingDay:      5,
			})
			require.Equal(t, 0, snap.MonthsPending)
			assert.Equal(t, tc.want, snap.Status)
		})
	}
}

func TestComputeSnapshot_PendingButBeforeBillingDateIsOnTime(t *testing.T) {
	// Debe una mensualidad pero el día de cobro del mes aún no pasó.
	snap := ComputeSnapshot(SnapshotInput{
		EnrolledAt:      date(2025, time.March, 1),
		Today:           date(2025, time.April, 3),
		PaymentsSettled: 1,
		MonthlyPrice:    decimal.NewFromInt(100),
		BillingDay:      5,
	})
	require.Equal(t, 1, snap.MonthsPending)
	assert.Equal(t, StatusOnTime, snap.Status)
	assert.Equal(t, 0, snap.DaysOverdue)
}

func TestComputeSnapshot_MissingModalityPriceYieldsZeroBalance(t *testing.T) {
	snap := ComputeSnapshot(SnapshotInput{
		EnrolledAt:      date(2024, time.June, 1),
		Today:           date(2025, time.February, 25),
		PaymentsSettled: 0,
		MonthlyPrice:    decimal.Zero, // modalidad borrada o sin asignar
		BillingDay:      5,
	})
	assert.True(t, snap.OutstandingBalance.IsZero())
	assert.Greater(t, snap.MonthsPending, 0)
}

func TestComputeSnapshot_SurchargesAddedToTotal(t *testing.T) {
	snap := ComputeSnapshot(SnapshotInput{
		EnrolledAt:        date(2025, time.January, 10),
		Today:             date(2025, time.February, 25),
		PaymentsSettled:   0,
		MonthlyPrice:      decimal.NewFromInt(100),
		BillingDay:        5,
		PendingSurcharges: decimal.NewFromInt(75),
	})
	assert.True(t, snap.TotalWithSurcharges.Equal(decimal.NewFromInt(275)),
		"total = %s", snap.TotalWithSurcharges)
}

func TestBillingPeriod(t *testing.T) {
	assert.Equal(t, "2025-02", BillingPeriod(date(2025, time.February, 25)))
	assert.Equal(t, "2025-11", BillingPeriod(date(2025, time.November, 1)))
}
