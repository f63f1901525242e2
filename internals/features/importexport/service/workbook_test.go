package service

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWorkbookRoundTrip(t *testing.T) {
	exported := []ExportRow{
		{
			Matricula:       1,
			Name:            "Ana María Pérez",
			Phone:           "555-0101",
			Discipline:      "Karate",
			GroupTag:        "A",
			Instructor:      "Coach Díaz",
			MonthlyPrice:    decimal.NewFromFloat(150.50),
			PaymentsSettled: 3,
			EnrolledAt:      time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC),
			Status:          "on-time",
		},
		{
			Matricula:       2,
			Name:            "Luis",
			Phone:           "555-0102",
			Discipline:      "Natación",
			GroupTag:        "B",
			MonthlyPrice:    decimal.NewFromInt(200),
			PaymentsSettled: 0,
			EnrolledAt:      time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
			Status:          "overdue",
		},
	}

	f, err := BuildWorkbook(exported)
	require.NoError(t, err)
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	rows, err := ParseWorkbook(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// NOMBRE/APELLIDO vuelven a unirse en el mismo nombre persistido
	assert.Equal(t, "Ana María Pérez", rows[0].FullName())
	assert.Equal(t, "Luis", rows[1].FullName())

	assert.Equal(t, "555-0101", rows[0].Phone)
	assert.Equal(t, "Karate", rows[0].Discipline)
	assert.Equal(t, "A", rows[0].GroupTag)
	assert.Equal(t, "Coach Díaz", rows[0].Instructor)
	assert.Equal(t, "2025-01-10", rows[0].EnrolledAt)

	// las marcas de mes reproducen el contador de mensualidades
	assert.Equal(t, 3, rows[0].PaidMonths())
	assert.Equal(t, 0, rows[1].PaidMonths())

	// INSCRIPCION siempre sale marcada
	assert.Equal(t, "X", rows[0].Inscription)
}

func TestParseWorkbookEmptySheet(t *testing.T) {
	// planilla recién creada, sin encabezado ni filas: fallo total, no
	// "cero filas válidas"
	f := excelize.NewFile()
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	_, err = ParseWorkbook(bytes.NewReader(buf.Bytes()))
	assert.ErrorIs(t, err, ErrEmptyWorkbook)
}

func TestParseWorkbookUnreadableBytes(t *testing.T) {
	_, err := ParseWorkbook(bytes.NewReader([]byte("esto no es una planilla")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no se pudo abrir la planilla")
}

func TestParseWorkbookRejectsWrongHeader(t *testing.T) {
	f, err := BuildWorkbook(nil)
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue(sheetName, "B1", "SOBRENOMBRE"))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	_, err = ParseWorkbook(bytes.NewReader(buf.Bytes()))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadHeader)
	assert.Contains(t, err.Error(), "SOBRENOMBRE")
}

func TestParseWorkbookSkipsBlankRows(t *testing.T) {
	f, err := BuildWorkbook([]ExportRow{
		{Matricula: 1, Name: "Ana", Phone: "111", EnrolledAt: time.Now(), MonthlyPrice: decimal.Zero},
	})
	require.NoError(t, err)
	// fila 3 en blanco, fila 4 con datos
	require.NoError(t, f.SetCellValue(sheetName, "B4", "Luis"))
	require.NoError(t, f.SetCellValue(sheetName, "D4", "222"))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	rows, err := ParseWorkbook(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Luis", rows[1].FirstName)
}

func TestParseWorkbookIgnoresStatusColumn(t *testing.T) {
	f, err := BuildWorkbook([]ExportRow{
		{Matricula: 1, Name: "Ana Pérez", Phone: "111", Status: "overdue",
			EnrolledAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), MonthlyPrice: decimal.Zero},
	})
	require.NoError(t, err)
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	rows, err := ParseWorkbook(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	// el estado exportado no forma parte de la fila importada
	assert.Equal(t, "Ana Pérez", rows[0].FullName())
}

func TestSplitNameRoundTrip(t *testing.T) {
	cases := []struct {
		full  string
		first string
		last  string
	}{
		{"Ana Pérez", "Ana", "Pérez"},
		{"Ana María Pérez López", "Ana", "María Pérez López"},
		{"Luis", "Luis", ""},
	}
	for _, tc := range cases {
		first, last := splitName(tc.full)
		assert.Equal(t, tc.first, first)
		assert.Equal(t, tc.last, last)
		r := Row{FirstName: first, LastName: last}
		assert.Equal(t, tc.full, r.FullName())
	}
}
