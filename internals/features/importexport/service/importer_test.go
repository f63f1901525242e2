package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	memberModel "academia_backend/internals/features/academy/members/model"
	modalityModel "academia_backend/internals/features/academy/modalities/model"
	paymentModel "academia_backend/internals/features/finance/payments/model"
)

type fakeMemberStore struct {
	created   []*memberModel.MemberModel
	createErr error
}

func (s *fakeMemberStore) ExistsByNamePhone(_ context.Context, name, phone string) (bool, error) {
	for _, m := range s.created {
		if strings.EqualFold(m.MemberName, name) && m.MemberPhone == phone {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeMemberStore) Create(_ context.Context, m *memberModel.MemberModel) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = append(s.created, m)
	return nil
}

type fakeCatalog struct{ modalities []modalityModel.ModalityModel }

func (c *fakeCatalog) All(_ context.Context) ([]modalityModel.ModalityModel, error) {
	return c.modalities, nil
}

type fakePaymentStore struct {
	created   []*paymentModel.PaymentModel
	createErr error
}

func (s *fakePaymentStore) Create(_ context.Context, p *paymentModel.PaymentModel) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = append(s.created, p)
	return nil
}

func testCatalog(t *testing.T) *fakeCatalog {
	t.Helper()
	return &fakeCatalog{modalities: []modalityModel.ModalityModel{
		{
			ModalityName:         "Karate",
			ModalityGroupTag:     "A",
			ModalityMonthlyPrice: decimal.NewFromInt(100),
		},
		{
			ModalityName:         "Natación",
			ModalityGroupTag:     "B",
			ModalityMonthlyPrice: decimal.NewFromInt(150),
		},
	}}
}

func newTestImporter(members *fakeMemberStore, catalog *fakeCatalog, payments *fakePaymentStore) *Importer {
	imp := NewImporter(members, catalog, payments)
	imp.now = func() time.Time { return time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC) }
	return imp
}

func validRow(number int, name, phone string) Row {
	return Row{
		Number:     number,
		FirstName:  name,
		LastName:   "Pérez",
		Phone:      phone,
		Discipline: "Karate",
		GroupTag:   "A",
		EnrolledAt: "2025-01-10",
	}
}

func TestImporterCountsInvariant(t *testing.T) {
	members := &fakeMemberStore{}
	payments := &fakePaymentStore{}
	imp := newTestImporter(members, testCatalog(t), payments)

	rows := []Row{
		validRow(1, "Ana", "111"),
		// duplicado dentro del mismo lote
		validRow(2, "Ana", "111"),
		// sin nombre
		{Number: 3, Phone: "222", Discipline: "Karate"},
		validRow(4, "Luis", "333"),
	}
	report, err := imp.Run(context.Background(), rows)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Created)
	assert.Equal(t, 1, report.Duplicates)
	assert.Equal(t, 1, report.Rejected)
	assert.Equal(t, 4, report.TotalProcessed)
	assert.Equal(t, report.TotalProcessed, report.Created+report.Duplicates+report.Rejected)
	assert.Len(t, members.created, 2)
}

func TestImporterReimportIsIdempotent(t *testing.T) {
	members := &fakeMemberStore{}
	imp := newTestImporter(members, testCatalog(t), &fakePaymentStore{})

	rows := []Row{
		validRow(1, "Ana", "111"),
		validRow(2, "Luis", "333"),
	}

	first, err := imp.Run(context.Background(), rows)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Created)
	assert.Equal(t, 0, first.Duplicates)

	second, err := imp.Run(context.Background(), rows)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Created)
	assert.Equal(t, first.Created, second.Duplicates)
	assert.Len(t, members.created, 2)
}

func TestImporterRejectsUnknownDiscipline(t *testing.T) {
	imp := newTestImporter(&fakeMemberStore{}, testCatalog(t), &fakePaymentStore{})

	row := validRow(1, "Ana", "111")
	row.Discipline = "Esgrima"
	row.GroupTag = "Z"

	report, err := imp.Run(context.Background(), []Row{row})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Rejected)
	require.Len(t, report.RejectedRows, 1)
	assert.Contains(t, report.RejectedRows[0].Reason, "Esgrima")
}

func TestImporterResolvesModalityByGroupTag(t *testing.T) {
	members := &fakeMemberStore{}
	imp := newTestImporter(members, testCatalog(t), &fakePaymentStore{})

	// disciplina con otro texto, pero el grupo B alcanza para resolver
	row := validRow(1, "Ana", "111")
	row.Discipline = "natacion adultos"
	row.GroupTag = "b"

	report, err := imp.Run(context.Background(), []Row{row})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Created)
	require.Len(t, members.created, 1)
	require.NotNil(t, members.created[0].MemberModalityID)
}

func TestImporterRejectsMissingFields(t *testing.T) {
	imp := newTestImporter(&fakeMemberStore{}, testCatalog(t), &fakePaymentStore{})

	rows := []Row{
		{Number: 1, Phone: "111", Discipline: "Karate"},
		{Number: 2, FirstName: "Ana", Discipline: "Karate"},
	}
	report, err := imp.Run(context.Background(), rows)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Rejected)
	assert.Equal(t, "falta el nombre", report.RejectedRows[0].Reason)
	assert.Equal(t, "falta el teléfono", report.RejectedRows[1].Reason)
}

func TestImporterRejectsUnparsableDate(t *testing.T) {
	imp := newTestImporter(&fakeMemberStore{}, testCatalog(t), &fakePaymentStore{})

	row := validRow(1, "Ana", "111")
	row.EnrolledAt = "ayer"

	report, err := imp.Run(context.Background(), []Row{row})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Rejected)
	assert.Contains(t, report.RejectedRows[0].Reason, "fecha de inscripción")
}

func TestImporterBlankDateDefaultsToImportDay(t *testing.T) {
	members := &fakeMemberStore{}
	imp := newTestImporter(members, testCatalog(t), &fakePaymentStore{})

	row := validRow(1, "Ana", "111")
	row.EnrolledAt = ""

	report, err := imp.Run(context.Background(), []Row{row})
	require.NoError(t, err)
	require.Equal(t, 1, report.Created)
	assert.Equal(t, time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC), members.created[0].MemberEnrolledAt)
}

func TestImporterCreatesAggregatePayment(t *testing.T) {
	members := &fakeMemberStore{}
	payments := &fakePaymentStore{}
	imp := newTestImporter(members, testCatalog(t), payments)

	row := validRow(1, "Ana", "111")
	row.MonthsPaid[0] = true
	row.MonthsPaid[1] = true
	row.MonthsPaid[2] = true

	report, err := imp.Run(context.Background(), []Row{row})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Created)
	require.Len(t, members.created, 1)
	assert.Equal(t, 3, members.created[0].MemberPaymentsSettled)

	require.Len(t, payments.created, 1)
	assert.True(t, payments.created[0].PaymentAmount.Equal(decimal.NewFromInt(300)),
		"pago agregado = mensualidad x meses marcados")
}

func TestImporterPaymentFailureKeepsMemberCreated(t *testing.T) {
	members := &fakeMemberStore{}
	payments := &fakePaymentStore{createErr: errors.New("conexión caída")}
	imp := newTestImporter(members, testCatalog(t), payments)

	row := validRow(1, "Ana", "111")
	row.MonthsPaid[0] = true

	report, err := imp.Run(context.Background(), []Row{row})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Created)
	assert.Equal(t, 0, report.Rejected)
	assert.Equal(t, report.TotalProcessed, report.Created+report.Duplicates+report.Rejected)
	require.Len(t, report.Warnings, 1)
	assert.Contains(t, report.Warnings[0], "pago agregado falló")
	assert.Len(t, members.created, 1)
}

func TestImporterZeroValidRowsIsStillSuccess(t *testing.T) {
	imp := newTestImporter(&fakeMemberStore{}, testCatalog(t), &fakePaymentStore{})

	report, err := imp.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, report.TotalProcessed)
	assert.Zero(t, report.Created)
}
