package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransitionable(t *testing.T) {
	cases := []struct {
		status string
		want   bool
	}{
		{"pending", true},
		{"paid", false},
		{"waived", false},
	}
	for _, tc := range cases {
		m := SurchargeModel{SurchargeStatus: tc.status}
		assert.Equal(t, tc.want, m.Transitionable(), "estado %s", tc.status)
	}
}
