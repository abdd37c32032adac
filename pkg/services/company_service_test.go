package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filinglens/filinglens/pkg/models"
	testdb "github.com/filinglens/filinglens/test/database"
)

func TestCompanyService_UpsertCompany(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewCompanyService(client.Client)
	ctx := context.Background()

	created, err := svc.UpsertCompany(ctx, models.UpsertCompanyInput{
		Ticker:    " acme ",
		Name:      "Acme Corp",
		Exchanges: []string{"NYSE"},
	})
	require.NoError(t, err)
	assert.Equal(t, "ACME", created.Ticker)

	t.Run("re-upsert updates in place", func(t *testing.T) {
		updated, err := svc.UpsertCompany(ctx, models.UpsertCompanyInput{
			Ticker: "ACME",
			Name:   "Acme Corporation",
		})
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, "Acme Corporation", updated.Name)
	})

	t.Run("ticker required", func(t *testing.T) {
		_, err := svc.UpsertCompany(ctx, models.UpsertCompanyInput{Name: "No Ticker Inc"})
		assert.True(t, IsValidationError(err))
	})

	t.Run("name required", func(t *testing.T) {
		_, err := svc.UpsertCompany(ctx, models.UpsertCompanyInput{Ticker: "NONM"})
		assert.True(t, IsValidationError(err))
	})
}

func TestCompanyService_GetAndList(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewCompanyService(client.Client)
	ctx := context.Background()

	a, err := svc.UpsertCompany(ctx, models.UpsertCompanyInput{Ticker: "MSFT", Name: "Microsoft"})
	require.NoError(t, err)
	_, err = svc.UpsertCompany(ctx, models.UpsertCompanyInput{Ticker: "AAPL", Name: "Apple"})
	require.NoError(t, err)

	got, err := svc.GetByTicker(ctx, "msft")
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)

	_, err = svc.GetByTicker(ctx, "GHOST")
	assert.ErrorIs(t, err, ErrNotFound)

	byID, err := svc.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "MSFT", byID.Ticker)

	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	companies, err := svc.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, companies, 2)
	assert.Equal(t, "AAPL", companies[0].Ticker)
	assert.Equal(t, "MSFT", companies[1].Ticker)
}
