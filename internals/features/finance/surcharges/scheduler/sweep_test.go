package scheduler

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSurchargeAmountFor(t *testing.T) {
	cases := []struct {
		name   string
		kind   string
		amount decimal.Decimal
		price  decimal.Decimal
		want   decimal.Decimal
	}{
		{"fixed ignores price", "fixed", decimal.NewFromInt(50), decimal.NewFromInt(800), decimal.NewFromInt(50)},
		{"percentage of price", "percentage", decimal.NewFromInt(10), decimal.NewFromInt(800), decimal.NewFromInt(80)},
		{"percentage rounds to cents", "percentage", decimal.NewFromFloat(12.5), decimal.NewFromFloat(99.99), decimal.NewFromFloat(12.50)},
		{"zero price percentage", "percentage", decimal.NewFromInt(10), decimal.Zero, decimal.Zero},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SurchargeAmountFor(tc.kind, tc.amount, tc.price)
			assert.True(t, got.Equal(tc.want), "got %s, want %s", got, tc.want)
		})
	}
}
