// file: internals/features/importexport/service/workbook.go
//
// Codec de la planilla de socios. El orden y los encabezados de columna son
// un contrato fijo con el formato de importación: una planilla exportada y
// reimportada debe reconocer a todos los socios como duplicados.
package service

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

var (
	ErrEmptyWorkbook = errors.New("la planilla está vacía")
	ErrBadHeader     = errors.New("encabezados de planilla desconocidos")
)

// Columnas del contrato, en orden. ESTADO es una columna extra solo de
// exportación: el importador la ignora.
var Columns = []string{
	"MATRICULA", "NOMBRE", "APELLIDO", "NUMERO TELEFONO",
	"DISCIPLINA", "GRUPO", "ENTRENADOR", "MENSUALIDAD", "INSCRIPCION",
	"ENE", "FEB", "MAR", "ABR", "MAY", "JUN",
	"JUL", "AGO", "SEP", "OCT", "NOV", "DIC",
	"FECHA DE INSCRIPCION",
}

const exportStatusColumn = "ESTADO"

const (
	colMatricula = iota
	colFirstName
	colLastName
	colPhone
	colDiscipline
	colGroupTag
	colInstructor
	colMonthlyPrice
	colInscription
	colFirstMonth // ENE..DIC son 12 columnas consecutivas
	colEnrolledAt = colFirstMonth + 12
)

const sheetName = "Socios"

// Row es una fila cruda de la planilla, ya tipada pero sin validar.
type Row struct {
	Number int // 1-based, sin contar el encabezado

	Matricula    string
	FirstName    string
	LastName     string
	Phone        string
	Discipline   string
	GroupTag     string
	Instructor   string
	MonthlyPrice string
	Inscription  string
	MonthsPaid   [12]bool
	EnrolledAt   string
}

// FullName une nombre y apellido tal como se persiste en el socio.
func (r Row) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(r.FirstName) + " " + strings.TrimSpace(r.LastName))
}

// PaidMonths cuenta las columnas de mes marcadas con X.
func (r Row) PaidMonths() int {
	n := 0
	for _, paid := range r.MonthsPaid {
		if paid {
			n++
		}
	}
	return n
}

// ParseWorkbook lee la primera hoja y devuelve las filas de datos. Una
// planilla ilegible o sin encabezado es un fallo total (distinto de "cero
// filas válidas", que es un éxito con created=0).
func ParseWorkbook(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("no se pudo abrir la planilla: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyWorkbook
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("no se pudo leer la hoja %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyWorkbook
	}

	if err := checkHeader(rows[0]); err != nil {
		return nil, err
	}

	out := make([]Row, 0, len(rows)-1)
	for i, raw := range rows[1:] {
		if isBlank(raw) {
			continue
		}
		row := Row{
			Number:       i + 1,
			Matricula:    cell(raw, colMatricula),
			FirstName:    cell(raw, colFirstName),
			LastName:     cell(raw, colLastName),
			Phone:        cell(raw, colPhone),
			Discipline:   cell(raw, colDiscipline),
			GroupTag:     cell(raw, colGroupTag),
			Instructor:   cell(raw, colInstructor),
			MonthlyPrice: cell(raw, colMonthlyPrice),
			Inscription:  cell(raw, colInscription),
			EnrolledAt:   cell(raw, colEnrolledAt),
		}
		for m := 0; m < 12; m++ {
			row.MonthsPaid[m] = strings.EqualFold(cell(raw, colFirstMonth+m), "X")
		}
		out = append(out, row)
	}
	return out, nil
}

func checkHeader(header []string) error {
	if len(header) < len(Columns) {
		return ErrBadHeader
	}
	for i, want := range Columns {
		if !strings.EqualFold(strings.TrimSpace(header[i]), want) {
			return fmt.Errorf("%w: columna %d es %q, se esperaba %q", ErrBadHeader, i+1, header[i], want)
		}
	}
	return nil
}

func cell(raw []string, idx int) string {
	if idx >= len(raw) {
		return ""
	}
	return strings.TrimSpace(raw[idx])
}

func isBlank(raw []string) bool {
	for _, v := range raw {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

/* =============== EXPORT =============== */

// ExportRow es una fila ya resuelta (modalidad + estado de cobranza) lista
// para serializar.
type ExportRow struct {
	Matricula       int
	Name            string
	Phone           string
	Discipline      string
	GroupTag        string
	Instructor      string
	MonthlyPrice    decimal.Decimal
	PaymentsSettled int
	EnrolledAt      time.Time
	Status          string
}

// BuildWorkbook serializa el contrato de columnas más la columna extra
// ESTADO. Las columnas de mes se marcan desde el contador de mensualidades
// saldadas (las primeras N, tope 12), de modo que reimportar reproduzca el
// mismo contador.
func BuildWorkbook(rows []ExportRow) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, err
	}

	header := append(append([]string{}, Columns...), exportStatusColumn)
	for i, name := range header {
		cellRef, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cellRef, name); err != nil {
			return nil, err
		}
	}

	for i, row := range rows {
		first, last := splitName(row.Name)
		values := make([]interface{}, len(header))
		values[colMatricula] = row.Matricula
		values[colFirstName] = first
		values[colLastName] = last
		values[colPhone] = row.Phone
		values[colDiscipline] = row.Discipline
		values[colGroupTag] = row.GroupTag
		values[colInstructor] = row.Instructor
		values[colMonthlyPrice] = row.MonthlyPrice.InexactFloat64()
		values[colInscription] = "X"
		for m := 0; m < 12; m++ {
			if m < row.PaymentsSettled {
				values[colFirstMonth+m] = "X"
			} else {
				values[colFirstMonth+m] = ""
			}
		}
		values[colEnrolledAt] = row.EnrolledAt.Format("2006-01-02")
		values[len(Columns)] = row.Status

		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheetName, cellRef, &values); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// splitName separa el nombre completo para las columnas NOMBRE/APELLIDO;
// al reimportar, FullName vuelve a unirlos en el mismo valor.
func splitName(full string) (string, string) {
	parts := strings.SplitN(strings.TrimSpace(full), " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}
