package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filinglens/filinglens/ent"
	"github.com/filinglens/filinglens/ent/document"
	"github.com/filinglens/filinglens/pkg/contenthash"
	"github.com/filinglens/filinglens/pkg/database"
	"github.com/filinglens/filinglens/pkg/models"
	testdb "github.com/filinglens/filinglens/test/database"
)

type filingFixture struct {
	client  *database.Client
	svc     *FilingService
	company *ent.Company
}

func setupFilingFixture(t *testing.T) *filingFixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	company, err := NewCompanyService(client.Client).UpsertCompany(ctx, models.UpsertCompanyInput{
		Ticker: "ACME",
		Name:   "Acme Corp",
	})
	require.NoError(t, err)

	return &filingFixture{
		client:  client,
		svc:     NewFilingService(client.Client),
		company: company,
	}
}

func (fx *filingFixture) filingInput(accession string) models.UpsertFilingInput {
	return models.UpsertFilingInput{
		CompanyID:       fx.company.ID,
		AccessionNumber: accession,
		FormType:        "10-K",
		FilingDate:      time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		SourceURL:       "https://example.com/" + accession,
	}
}

func TestFilingService_UpsertFiling(t *testing.T) {
	fx := setupFilingFixture(t)
	ctx := context.Background()

	first, err := fx.svc.UpsertFiling(ctx, fx.filingInput("acc-1"))
	require.NoError(t, err)
	assert.Equal(t, "10-K", first.FormType)

	t.Run("re-upsert refreshes in place", func(t *testing.T) {
		input := fx.filingInput("acc-1")
		input.FormType = "10-K/A"
		again, err := fx.svc.UpsertFiling(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, first.ID, again.ID)
		assert.Equal(t, "10-K/A", again.FormType)
	})

	t.Run("missing accession rejected", func(t *testing.T) {
		input := fx.filingInput("")
		_, err := fx.svc.UpsertFiling(ctx, input)
		assert.True(t, IsValidationError(err))
	})

	t.Run("get by accession", func(t *testing.T) {
		got, err := fx.svc.GetByAccession(ctx, "acc-1")
		require.NoError(t, err)
		assert.Equal(t, first.ID, got.ID)

		_, err = fx.svc.GetByAccession(ctx, "acc-nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestFilingService_ListByCompany(t *testing.T) {
	fx := setupFilingFixture(t)
	ctx := context.Background()

	older := fx.filingInput("acc-old")
	older.FilingDate = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	_, err := fx.svc.UpsertFiling(ctx, older)
	require.NoError(t, err)

	quarterly := fx.filingInput("acc-q")
	quarterly.FormType = "10-Q"
	_, err = fx.svc.UpsertFiling(ctx, quarterly)
	require.NoError(t, err)

	all, err := fx.svc.ListByCompany(ctx, fx.company.ID, "", 10)
	require.NoError(t, err)
	require.Len(t, all, 2)
	// Newest filing date first.
	assert.Equal(t, "acc-q", all[0].AccessionNumber)

	annual, err := fx.svc.ListByCompany(ctx, fx.company.ID, "10-K", 10)
	require.NoError(t, err)
	require.Len(t, annual, 1)
	assert.Equal(t, "acc-old", annual[0].AccessionNumber)
}

func TestFilingService_UpsertDocument(t *testing.T) {
	fx := setupFilingFixture(t)
	ctx := context.Background()

	f, err := fx.svc.UpsertFiling(ctx, fx.filingInput("acc-1"))
	require.NoError(t, err)

	input := models.UpsertDocumentInput{
		FilingID:     f.ID,
		CompanyID:    fx.company.ID,
		Title:        "Item 7",
		DocumentType: "management_discussion",
		Content:      "Revenue grew 12% year over year.",
	}

	doc, err := fx.svc.UpsertDocument(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, contenthash.Text(input.Content), doc.ContentHash)

	t.Run("identical content is a no-op", func(t *testing.T) {
		again, err := fx.svc.UpsertDocument(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, doc.ID, again.ID)

		count, err := fx.client.Client.Document.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("changed content creates a new row", func(t *testing.T) {
		revised := input
		revised.Content = "Revenue grew 14% year over year."
		other, err := fx.svc.UpsertDocument(ctx, revised)
		require.NoError(t, err)
		assert.NotEqual(t, doc.ID, other.ID)
	})

	t.Run("unknown document type rejected", func(t *testing.T) {
		bad := input
		bad.DocumentType = "meme_section"
		_, err := fx.svc.UpsertDocument(ctx, bad)
		assert.True(t, IsValidationError(err))
	})
}

func TestFilingService_ListDocuments(t *testing.T) {
	fx := setupFilingFixture(t)
	ctx := context.Background()

	f, err := fx.svc.UpsertFiling(ctx, fx.filingInput("acc-1"))
	require.NoError(t, err)
	_, err = fx.svc.UpsertDocument(ctx, models.UpsertDocumentInput{
		FilingID:     f.ID,
		CompanyID:    fx.company.ID,
		DocumentType: "risk_factors",
		Content:      "Risks abound.",
	})
	require.NoError(t, err)

	docs, err := fx.svc.ListDocuments(ctx, f.ID)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	// Listings omit the body; the hash stands in for it.
	assert.Empty(t, docs[0].Content)
	assert.NotEmpty(t, docs[0].ContentHash)

	full, err := fx.svc.GetDocument(ctx, docs[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Risks abound.", full.Content)
}

func TestFilingService_DocumentByHash(t *testing.T) {
	fx := setupFilingFixture(t)
	ctx := context.Background()

	f, err := fx.svc.UpsertFiling(ctx, fx.filingInput("acc-1"))
	require.NoError(t, err)
	doc, err := fx.svc.UpsertDocument(ctx, models.UpsertDocumentInput{
		FilingID:     f.ID,
		CompanyID:    fx.company.ID,
		DocumentType: "management_discussion",
		Content:      "Section text.",
	})
	require.NoError(t, err)

	t.Run("full hash", func(t *testing.T) {
		got, err := fx.svc.DocumentByHash(ctx, doc.ContentHash)
		require.NoError(t, err)
		assert.Equal(t, doc.ID, got.ID)
	})

	t.Run("short prefix", func(t *testing.T) {
		got, err := fx.svc.DocumentByHash(ctx, contenthash.Short(doc.ContentHash))
		require.NoError(t, err)
		assert.Equal(t, doc.ID, got.ID)
	})

	t.Run("prefix below the minimum is rejected", func(t *testing.T) {
		_, err := fx.svc.DocumentByHash(ctx, doc.ContentHash[:6])
		assert.True(t, IsValidationError(err))
	})

	t.Run("unknown prefix", func(t *testing.T) {
		_, err := fx.svc.DocumentByHash(ctx, "000000000000")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("same content on two filings is not ambiguous", func(t *testing.T) {
		other, err := fx.svc.UpsertFiling(ctx, fx.filingInput("acc-2"))
		require.NoError(t, err)
		_, err = fx.svc.UpsertDocument(ctx, models.UpsertDocumentInput{
			FilingID:     other.ID,
			CompanyID:    fx.company.ID,
			DocumentType: "management_discussion",
			Content:      "Section text.",
		})
		require.NoError(t, err)

		got, err := fx.svc.DocumentByHash(ctx, contenthash.Short(doc.ContentHash))
		require.NoError(t, err)
		// Earliest row wins; both carry the same text anyway.
		assert.Equal(t, doc.ID, got.ID)
	})

	t.Run("distinct hashes under one prefix are ambiguous", func(t *testing.T) {
		a, err := fx.svc.UpsertDocument(ctx, models.UpsertDocumentInput{
			FilingID:     f.ID,
			CompanyID:    fx.company.ID,
			DocumentType: "risk_factors",
			Content:      "First body.",
		})
		require.NoError(t, err)
		b, err := fx.svc.UpsertDocument(ctx, models.UpsertDocumentInput{
			FilingID:     f.ID,
			CompanyID:    fx.company.ID,
			DocumentType: "legal_proceedings",
			Content:      "Second body.",
		})
		require.NoError(t, err)

		require.NoError(t, fx.client.Client.Document.UpdateOneID(a.ID).
			SetContentHash("feedfacefeed"+a.ContentHash[12:]).Exec(ctx))
		require.NoError(t, fx.client.Client.Document.UpdateOneID(b.ID).
			SetContentHash("feedfacefeed"+b.ContentHash[12:]).Exec(ctx))

		_, err = fx.svc.DocumentByHash(ctx, "feedfacefeed")
		assert.ErrorIs(t, err, ErrAmbiguousHash)
	})
}

func TestFilingService_FirstDocumentOfType(t *testing.T) {
	fx := setupFilingFixture(t)
	ctx := context.Background()

	f, err := fx.svc.UpsertFiling(ctx, fx.filingInput("acc-1"))
	require.NoError(t, err)

	_, err = fx.svc.FirstDocumentOfType(ctx, f.ID, document.DocumentTypeRiskFactors)
	assert.ErrorIs(t, err, ErrNotFound)

	created, err := fx.svc.UpsertDocument(ctx, models.UpsertDocumentInput{
		FilingID:     f.ID,
		CompanyID:    fx.company.ID,
		DocumentType: "risk_factors",
		Content:      "Risks.",
	})
	require.NoError(t, err)

	got, err := fx.svc.FirstDocumentOfType(ctx, f.ID, document.DocumentTypeRiskFactors)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Risks.", got.Content)
}
