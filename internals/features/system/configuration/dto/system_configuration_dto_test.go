package dto

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "academia_backend/internals/helpers"
)

func intPtr(v int) *int         { return &v }
func f64Ptr(v float64) *float64 { return &v }
func strPtr(v string) *string   { return &v }

func TestUpdateRequest_Validation(t *testing.T) {
	cases := []struct {
		name    string
		req     UpdateSystemConfigurationRequest
		wantErr bool
	}{
		{"empty patch is valid", UpdateSystemConfigurationRequest{}, false},
		{"valid full patch", UpdateSystemConfigurationRequest{
			BillingDay:      intPtr(10),
			GraceDays:       intPtr(3),
			SurchargeAmount: f64Ptr(25),
			SurchargeKind:   strPtr("percentage"),
			ReportEmail:     strPtr("admin@academia.mx"),
		}, false},
		{"billing day above 31 rejected", UpdateSystemConfigurationRequest{BillingDay: intPtr(35)}, true},
		{"billing day zero rejected", UpdateSystemConfigurationRequest{BillingDay: intPtr(0)}, true},
		{"negative grace days rejected", UpdateSystemConfigurationRequest{GraceDays: intPtr(-1)}, true},
		{"negative surcharge rejected", UpdateSystemConfigurationRequest{SurchargeAmount: f64Ptr(-5)}, true},
		{"unknown surcharge kind rejected", UpdateSystemConfigurationRequest{SurchargeKind: strPtr("daily")}, true},
		{"malformed email rejected", UpdateSystemConfigurationRequest{ReportEmail: strPtr("not-an-email")}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := helper.ValidateStruct(tc.req)
			if tc.wantErr {
				assert.NotNil(t, errs)
			} else {
				assert.Nil(t, errs)
			}
		})
	}
}

func TestUpdateRequest_PatchOnlyPresentFields(t *testing.T) {
	req := UpdateSystemConfigurationRequest{
		BillingDay:      intPtr(12),
		SurchargeAmount: f64Ptr(80),
	}
	patch := req.Patch()

	require.Len(t, patch, 2)
	assert.Equal(t, 12, patch["system_configuration_billing_day"])
	amt, ok := patch["system_configuration_surcharge_amount"].(decimal.Decimal)
	require.True(t, ok)
	assert.True(t, amt.Equal(decimal.NewFromInt(80)))
	assert.NotContains(t, patch, "system_configuration_grace_days")
	assert.NotContains(t, patch, "system_configuration_report_email")
}

func TestUpdateRequest_EmptyPatch(t *testing.T) {
	assert.Empty(t, UpdateSystemConfigurationRequest{}.Patch())
}
