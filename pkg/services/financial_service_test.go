package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filinglens/filinglens/pkg/models"
	testdb "github.com/filinglens/filinglens/test/database"
)

func TestFinancialService_EnsureConcept(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewFinancialService(client.Client)
	ctx := context.Background()

	created, err := svc.EnsureConcept(ctx, "Revenues", "Total revenue", []string{"Revenue", "Net sales"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Revenue", "Net sales"}, created.Labels)

	t.Run("labels union on re-ensure", func(t *testing.T) {
		again, err := svc.EnsureConcept(ctx, "Revenues", "", []string{"Net sales", "Total revenues"})
		require.NoError(t, err)
		assert.Equal(t, created.ID, again.ID)
		assert.Equal(t, []string{"Revenue", "Net sales", "Total revenues"}, again.Labels)
	})

	t.Run("name required", func(t *testing.T) {
		_, err := svc.EnsureConcept(ctx, "", "", nil)
		assert.True(t, IsValidationError(err))
	})

	t.Run("get and list", func(t *testing.T) {
		_, err := svc.EnsureConcept(ctx, "Assets", "", nil)
		require.NoError(t, err)

		got, err := svc.GetConcept(ctx, "Revenues")
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)

		_, err = svc.GetConcept(ctx, "Liabilities")
		assert.ErrorIs(t, err, ErrNotFound)

		concepts, err := svc.ListConcepts(ctx)
		require.NoError(t, err)
		require.Len(t, concepts, 2)
		assert.Equal(t, "Assets", concepts[0].Name)
	})
}

func TestFinancialService_UpsertValue(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewFinancialService(client.Client)
	ctx := context.Background()

	company, err := NewCompanyService(client.Client).UpsertCompany(ctx, models.UpsertCompanyInput{
		Ticker: "ACME",
		Name:   "Acme Corp",
	})
	require.NoError(t, err)

	filings := NewFilingService(client.Client)
	filing, err := filings.UpsertFiling(ctx, models.UpsertFilingInput{
		CompanyID:       company.ID,
		AccessionNumber: "acc-1",
		FormType:        "10-K",
		FilingDate:      time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	valueDate := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	input := models.UpsertFinancialValueInput{
		CompanyID:   company.ID,
		ConceptName: "Revenues",
		ValueDate:   valueDate,
		FilingID:    filing.ID,
		Value:       decimal.NewFromInt(391_035_000_000),
	}

	first, err := svc.UpsertValue(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, first.FilingID)
	assert.Equal(t, filing.ID, *first.FilingID)

	t.Run("same key updates in place", func(t *testing.T) {
		revised := input
		revised.Value = decimal.NewFromInt(391_036_000_000)
		again, err := svc.UpsertValue(ctx, revised)
		require.NoError(t, err)
		assert.Equal(t, first.ID, again.ID)
		assert.True(t, again.Value.Equal(revised.Value))
	})

	t.Run("nil filing is a distinct key", func(t *testing.T) {
		unfiled := input
		unfiled.FilingID = ""
		other, err := svc.UpsertValue(ctx, unfiled)
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, other.ID)
		assert.Nil(t, other.FilingID)
	})

	t.Run("list newest first with concept filter", func(t *testing.T) {
		older := input
		older.ValueDate = time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)
		_, err := svc.UpsertValue(ctx, older)
		require.NoError(t, err)

		assets := input
		assets.ConceptName = "Assets"
		_, err = svc.UpsertValue(ctx, assets)
		require.NoError(t, err)

		revenues, err := svc.ListValues(ctx, company.ID, "Revenues", 10)
		require.NoError(t, err)
		require.Len(t, revenues, 3)
		assert.True(t, revenues[0].ValueDate.After(revenues[2].ValueDate))

		all, err := svc.ListValues(ctx, company.ID, "", 10)
		require.NoError(t, err)
		assert.Len(t, all, 4)

		_, err = svc.ListValues(ctx, company.ID, "Liabilities", 10)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("company required", func(t *testing.T) {
		bad := input
		bad.CompanyID = ""
		_, err := svc.UpsertValue(ctx, bad)
		assert.True(t, IsValidationError(err))
	})
}
