package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDefaultConfiguration(t *testing.T) {
	def := DefaultConfiguration()

	assert.Equal(t, "global", def.SystemConfigurationKey)
	assert.Equal(t, 5, def.SystemConfigurationBillingDay)
	assert.Equal(t, 5, def.SystemConfigurationGraceDays)
	assert.True(t, def.SystemConfigurationSurchargeAmount.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, "fixed", def.SystemConfigurationSurchargeKind)
	assert.Nil(t, def.SystemConfigurationReportEmail)
}
