package controller

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayWindow(t *testing.T) {
	now := time.Date(2025, time.June, 15, 18, 30, 0, 0, time.Local)

	t.Run("sin fecha toma el día de hoy", func(t *testing.T) {
		start, end, err := dayWindow("", now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, time.June, 15, 0, 0, 0, 0, time.Local), start)
		assert.Equal(t, start.AddDate(0, 0, 1), end)
	})

	t.Run("fecha explícita en la misma zona que el default", func(t *testing.T) {
		start, end, err := dayWindow("2025-02-28", now)
		require.NoError(t, err)
		assert.Equal(t, time.Local, start.Location())
		assert.Equal(t, time.Date(2025, time.February, 28, 0, 0, 0, 0, time.Local), start)
		assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.Local), end)
	})

	t.Run("formato inválido", func(t *testing.T) {
		_, _, err := dayWindow("28/02/2025", now)
		require.Error(t, err)
	})
}
