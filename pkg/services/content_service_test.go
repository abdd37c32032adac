package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filinglens/filinglens/ent"
	"github.com/filinglens/filinglens/ent/generatedcontent"
	"github.com/filinglens/filinglens/pkg/contenthash"
	"github.com/filinglens/filinglens/pkg/database"
	"github.com/filinglens/filinglens/pkg/models"
	testdb "github.com/filinglens/filinglens/test/database"
)

// contentFixture bundles the rows every content test needs: a company with
// one filing and two documents, plus a prompt and a model config.
type contentFixture struct {
	contents *ContentService
	company  *ent.Company
	filing   *ent.Filing
	docA     *ent.Document
	docB     *ent.Document
	prompt   *ent.Prompt
	config   *ent.ModelConfig
}

func setupContentFixture(t *testing.T, client *database.Client) *contentFixture {
	t.Helper()
	ctx := context.Background()

	companies := NewCompanyService(client.Client)
	filings := NewFilingService(client.Client)
	prompts := NewPromptService(client.Client)
	configs := NewModelConfigService(client.Client)

	company, err := companies.UpsertCompany(ctx, models.UpsertCompanyInput{
		Ticker: "ACME",
		Name:   "Acme Corp",
	})
	require.NoError(t, err)

	f, err := filings.UpsertFiling(ctx, models.UpsertFilingInput{
		CompanyID:       company.ID,
		AccessionNumber: "0000000001-24-000001",
		FormType:        "10-K",
		FilingDate:      time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	docA, err := filings.UpsertDocument(ctx, models.UpsertDocumentInput{
		FilingID:     f.ID,
		CompanyID:    company.ID,
		Title:        "Management's Discussion and Analysis",
		DocumentType: "management_discussion",
		Content:      "Revenue grew 12% on strong demand.",
	})
	require.NoError(t, err)

	docB, err := filings.UpsertDocument(ctx, models.UpsertDocumentInput{
		FilingID:     f.ID,
		CompanyID:    company.ID,
		Title:        "Risk Factors",
		DocumentType: "risk_factors",
		Content:      "Supply chain concentration remains a risk.",
	})
	require.NoError(t, err)

	p, err := prompts.EnsurePrompt(ctx, "single_summary", "system", "", "Summarize the filing section.")
	require.NoError(t, err)

	mc, err := configs.EnsureModelConfig(ctx, "claude-sonnet-4-5", map[string]interface{}{"max_tokens": 8192})
	require.NoError(t, err)

	return &contentFixture{
		contents: NewContentService(client.Client),
		company:  company,
		filing:   f,
		docA:     docA,
		docB:     docB,
		prompt:   p,
		config:   mc,
	}
}

func (fx *contentFixture) singleInput(content string, docIDs ...string) models.CreateContentInput {
	return models.CreateContentInput{
		Content:           content,
		CompanyID:         fx.company.ID,
		DocumentType:      "management_discussion",
		FormType:          "10-K",
		ContentStage:      "single_summary",
		SystemPromptID:    fx.prompt.ID,
		ModelConfigID:     fx.config.ID,
		SourceDocumentIDs: docIDs,
	}
}

func TestContentService_CreateOrGet(t *testing.T) {
	client := testdb.NewTestClient(t)
	fx := setupContentFixture(t, client)
	ctx := context.Background()

	t.Run("creates then dedups by hash", func(t *testing.T) {
		first, created, err := fx.contents.CreateOrGet(ctx, fx.singleInput("summary one", fx.docA.ID))
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, contenthash.Text("summary one"), first.ContentHash)
		assert.Equal(t, generatedcontent.SourceTypeDocuments, first.SourceType)

		again, created, err := fx.contents.CreateOrGet(ctx, fx.singleInput("summary one", fx.docA.ID))
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first.ID, again.ID)
	})

	t.Run("rejects both source sets", func(t *testing.T) {
		input := fx.singleInput("mixed sources", fx.docA.ID)
		input.SourceContentIDs = []string{"some-content"}
		_, _, err := fx.contents.CreateOrGet(ctx, input)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects no sources", func(t *testing.T) {
		input := fx.singleInput("no sources")
		_, _, err := fx.contents.CreateOrGet(ctx, input)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects unknown stage", func(t *testing.T) {
		input := fx.singleInput("bad stage", fx.docA.ID)
		input.ContentStage = "bogus"
		_, _, err := fx.contents.CreateOrGet(ctx, input)
		assert.True(t, IsValidationError(err))
	})

	t.Run("records provenance edges", func(t *testing.T) {
		gc, created, err := fx.contents.CreateOrGet(ctx, fx.singleInput("provenance check", fx.docA.ID, fx.docB.ID))
		require.NoError(t, err)
		require.True(t, created)

		ids, err := client.Client.GeneratedContent.QuerySourceDocuments(gc).IDs(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{fx.docA.ID, fx.docB.ID}, ids)
	})
}

func TestContentService_ContentSources(t *testing.T) {
	client := testdb.NewTestClient(t)
	fx := setupContentFixture(t, client)
	ctx := context.Background()

	single, _, err := fx.contents.CreateOrGet(ctx, fx.singleInput("base summary", fx.docA.ID))
	require.NoError(t, err)

	t.Run("aggregate over generated content", func(t *testing.T) {
		agg, created, err := fx.contents.CreateOrGet(ctx, models.CreateContentInput{
			Content:          "aggregate over base",
			CompanyID:        fx.company.ID,
			ContentStage:     "aggregate_summary",
			SystemPromptID:   fx.prompt.ID,
			ModelConfigID:    fx.config.ID,
			SourceContentIDs: []string{single.ID},
		})
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, generatedcontent.SourceTypeGeneratedContent, agg.SourceType)
	})

	t.Run("unknown source content rejected", func(t *testing.T) {
		_, _, err := fx.contents.CreateOrGet(ctx, models.CreateContentInput{
			Content:          "aggregate over ghost",
			CompanyID:        fx.company.ID,
			ContentStage:     "aggregate_summary",
			SystemPromptID:   fx.prompt.ID,
			ModelConfigID:    fx.config.ID,
			SourceContentIDs: []string{"missing-id"},
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("text identical to a source dedups to that source", func(t *testing.T) {
		// An artifact whose text equals an existing row hashes to that row;
		// the pre-lookup returns it before any provenance walk happens.
		got, created, err := fx.contents.CreateOrGet(ctx, models.CreateContentInput{
			Content:          "base summary",
			CompanyID:        fx.company.ID,
			ContentStage:     "aggregate_summary",
			SystemPromptID:   fx.prompt.ID,
			ModelConfigID:    fx.config.ID,
			SourceContentIDs: []string{single.ID},
		})
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, single.ID, got.ID)
	})

	t.Run("provenance depth is bounded", func(t *testing.T) {
		prev := single
		// A chain of 16 content-sourced levels is the deepest the walk
		// accepts; the next level trips the cycle guard.
		for i := 1; i <= 16; i++ {
			next, _, err := fx.contents.CreateOrGet(ctx, models.CreateContentInput{
				Content:          fmt.Sprintf("chain level %d", i),
				CompanyID:        fx.company.ID,
				ContentStage:     "aggregate_summary",
				SystemPromptID:   fx.prompt.ID,
				ModelConfigID:    fx.config.ID,
				SourceContentIDs: []string{prev.ID},
			})
			require.NoError(t, err, "level %d", i)
			prev = next
		}

		_, _, err := fx.contents.CreateOrGet(ctx, models.CreateContentInput{
			Content:          "chain level 17",
			CompanyID:        fx.company.ID,
			ContentStage:     "aggregate_summary",
			SystemPromptID:   fx.prompt.ID,
			ModelConfigID:    fx.config.ID,
			SourceContentIDs: []string{prev.ID},
		})
		assert.ErrorIs(t, err, ErrSourceCycle)
	})
}

func TestContentService_ByHash(t *testing.T) {
	client := testdb.NewTestClient(t)
	fx := setupContentFixture(t, client)
	ctx := context.Background()

	gc, _, err := fx.contents.CreateOrGet(ctx, fx.singleInput("hash lookup target", fx.docA.ID))
	require.NoError(t, err)

	t.Run("full hash", func(t *testing.T) {
		found, err := fx.contents.ByHash(ctx, gc.ContentHash)
		require.NoError(t, err)
		assert.Equal(t, gc.ID, found.ID)
	})

	t.Run("prefix", func(t *testing.T) {
		found, err := fx.contents.ByHash(ctx, gc.ContentHash[:contenthash.ShortHashLen])
		require.NoError(t, err)
		assert.Equal(t, gc.ID, found.ID)
	})

	t.Run("short prefix rejected", func(t *testing.T) {
		_, err := fx.contents.ByHash(ctx, gc.ContentHash[:6])
		assert.True(t, IsValidationError(err))
	})

	t.Run("unknown prefix", func(t *testing.T) {
		_, err := fx.contents.ByHash(ctx, "000000000000")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("ambiguous prefix", func(t *testing.T) {
		other, _, err := fx.contents.CreateOrGet(ctx, fx.singleInput("second artifact", fx.docB.ID))
		require.NoError(t, err)

		// Give both rows a common 12-char prefix with distinct tails.
		prefix := "abcdefabcdef"
		err = client.Client.GeneratedContent.UpdateOneID(gc.ID).
			SetContentHash(prefix + gc.ContentHash[12:]).
			Exec(ctx)
		require.NoError(t, err)
		err = client.Client.GeneratedContent.UpdateOneID(other.ID).
			SetContentHash(prefix + other.ContentHash[12:]).
			Exec(ctx)
		require.NoError(t, err)

		_, err = fx.contents.ByHash(ctx, prefix)
		assert.ErrorIs(t, err, ErrAmbiguousHash)
	})
}

func TestContentService_SetSummary(t *testing.T) {
	client := testdb.NewTestClient(t)
	fx := setupContentFixture(t, client)
	ctx := context.Background()

	gc, _, err := fx.contents.CreateOrGet(ctx, fx.singleInput("summarizable", fx.docA.ID))
	require.NoError(t, err)

	err = fx.contents.SetSummary(ctx, gc.ID, "one-line digest")
	require.NoError(t, err)

	reloaded, err := fx.contents.Get(ctx, gc.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.Summary)
	assert.Equal(t, "one-line digest", *reloaded.Summary)
	// The content itself is immutable.
	assert.Equal(t, "summarizable", reloaded.Content)

	err = fx.contents.SetSummary(ctx, "missing", "x")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestContentService_FindExistingForDocument(t *testing.T) {
	client := testdb.NewTestClient(t)
	fx := setupContentFixture(t, client)
	ctx := context.Background()

	gc, _, err := fx.contents.CreateOrGet(ctx, fx.singleInput("doc summary", fx.docA.ID))
	require.NoError(t, err)

	t.Run("hit", func(t *testing.T) {
		found, err := fx.contents.FindExistingForDocument(ctx, fx.docA.ID, fx.prompt.ID, fx.config.ID)
		require.NoError(t, err)
		assert.Equal(t, gc.ID, found.ID)
	})

	t.Run("miss on different document", func(t *testing.T) {
		_, err := fx.contents.FindExistingForDocument(ctx, fx.docB.ID, fx.prompt.ID, fx.config.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("miss on different prompt", func(t *testing.T) {
		prompts := NewPromptService(client.Client)
		other, err := prompts.EnsurePrompt(ctx, "other", "system", "", "A different instruction.")
		require.NoError(t, err)

		_, err = fx.contents.FindExistingForDocument(ctx, fx.docA.ID, other.ID, fx.config.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestContentService_FindExistingForSources(t *testing.T) {
	client := testdb.NewTestClient(t)
	fx := setupContentFixture(t, client)
	ctx := context.Background()

	mkSingle := func(n int, docID string) *ent.GeneratedContent {
		gc, _, err := fx.contents.CreateOrGet(ctx, fx.singleInput(fmt.Sprintf("single %d", n), docID))
		require.NoError(t, err)
		return gc
	}
	s1 := mkSingle(1, fx.docA.ID)
	s2 := mkSingle(2, fx.docB.ID)

	agg, _, err := fx.contents.CreateOrGet(ctx, models.CreateContentInput{
		Content:          "pairwise aggregate",
		CompanyID:        fx.company.ID,
		ContentStage:     "aggregate_summary",
		SystemPromptID:   fx.prompt.ID,
		ModelConfigID:    fx.config.ID,
		SourceContentIDs: []string{s1.ID, s2.ID},
	})
	require.NoError(t, err)

	t.Run("exact set matches in any order", func(t *testing.T) {
		found, err := fx.contents.FindExistingForSources(ctx, fx.prompt.ID, fx.config.ID, []string{s2.ID, s1.ID})
		require.NoError(t, err)
		assert.Equal(t, agg.ID, found.ID)
	})

	t.Run("subset does not match", func(t *testing.T) {
		_, err := fx.contents.FindExistingForSources(ctx, fx.prompt.ID, fx.config.ID, []string{s1.ID})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("superset does not match", func(t *testing.T) {
		s3 := mkSingle(3, fx.docA.ID)
		_, err := fx.contents.FindExistingForSources(ctx, fx.prompt.ID, fx.config.ID, []string{s1.ID, s2.ID, s3.ID})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty set", func(t *testing.T) {
		_, err := fx.contents.FindExistingForSources(ctx, fx.prompt.ID, fx.config.ID, nil)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestContentService_LatestAggregates(t *testing.T) {
	client := testdb.NewTestClient(t)
	fx := setupContentFixture(t, client)
	ctx := context.Background()

	base, _, err := fx.contents.CreateOrGet(ctx, fx.singleInput("base for aggregates", fx.docA.ID))
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, _, err := fx.contents.CreateOrGet(ctx, models.CreateContentInput{
			Content:          fmt.Sprintf("aggregate %d", i),
			CompanyID:        fx.company.ID,
			ContentStage:     "aggregate_summary",
			SystemPromptID:   fx.prompt.ID,
			ModelConfigID:    fx.config.ID,
			SourceContentIDs: []string{base.ID},
		})
		require.NoError(t, err)
	}

	aggs, err := fx.contents.LatestAggregates(ctx, fx.company.ID, 3)
	require.NoError(t, err)
	assert.Len(t, aggs, 3)
	for _, a := range aggs {
		assert.Equal(t, generatedcontent.ContentStageAggregateSummary, a.ContentStage)
	}
}
