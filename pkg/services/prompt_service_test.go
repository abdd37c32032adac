package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filinglens/filinglens/pkg/contenthash"
	testdb "github.com/filinglens/filinglens/test/database"
)

func TestPromptService_EnsurePrompt(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewPromptService(client.Client)
	ctx := context.Background()

	t.Run("creates and hashes", func(t *testing.T) {
		p, err := svc.EnsurePrompt(ctx, "single_summary", "system", "per-section summary", "Summarize this section.")
		require.NoError(t, err)
		assert.Equal(t, contenthash.Text("Summarize this section."), p.ContentHash)
	})

	t.Run("identical content returns existing row regardless of name", func(t *testing.T) {
		first, err := svc.EnsurePrompt(ctx, "name-a", "system", "", "Shared instruction text.")
		require.NoError(t, err)

		second, err := svc.EnsurePrompt(ctx, "name-b", "system", "", "Shared instruction text.")
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "name-a", second.Name)
	})

	t.Run("empty role defaults to system", func(t *testing.T) {
		p, err := svc.EnsurePrompt(ctx, "defaulted", "", "", "Role-free prompt.")
		require.NoError(t, err)
		assert.Equal(t, "system", string(p.Role))
	})

	t.Run("rejects empty content", func(t *testing.T) {
		_, err := svc.EnsurePrompt(ctx, "empty", "system", "", "")
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := svc.EnsurePrompt(ctx, "bad-role", "oracle", "", "content")
		assert.True(t, IsValidationError(err))
	})
}

func TestPromptService_ByHash(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewPromptService(client.Client)
	ctx := context.Background()

	p, err := svc.EnsurePrompt(ctx, "lookup", "system", "", "Hash lookup target.")
	require.NoError(t, err)

	found, err := svc.ByHash(ctx, p.ContentHash)
	require.NoError(t, err)
	assert.Equal(t, p.ID, found.ID)

	found, err = svc.ByHash(ctx, p.ContentHash[:contenthash.ShortHashLen])
	require.NoError(t, err)
	assert.Equal(t, p.ID, found.ID)

	_, err = svc.ByHash(ctx, p.ContentHash[:8])
	assert.True(t, IsValidationError(err))

	_, err = svc.ByHash(ctx, "ffffffffffff")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCanonicalPromptContent(t *testing.T) {
	writeFile := func(t *testing.T, path, content string) {
		t.Helper()
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	t.Run("prompt.md only", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "prompt.md"), "  Base instruction.\n\n")

		content, err := CanonicalPromptContent(dir)
		require.NoError(t, err)
		assert.Equal(t, "Base instruction.", content)
	})

	t.Run("examples appended in sorted order", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "prompt.md"), "Base instruction.")
		writeFile(t, filepath.Join(dir, "examples", "02_second.md"), "Second example.\n")
		writeFile(t, filepath.Join(dir, "examples", "01_first.md"), "First example.\n")
		// Non-markdown files are ignored.
		writeFile(t, filepath.Join(dir, "examples", "notes.txt"), "ignored")

		content, err := CanonicalPromptContent(dir)
		require.NoError(t, err)
		assert.Equal(t, "Base instruction.\n\nFirst example.\n\nSecond example.", content)
	})

	t.Run("missing prompt.md errors", func(t *testing.T) {
		_, err := CanonicalPromptContent(t.TempDir())
		assert.Error(t, err)
	})
}

func TestPromptService_EnsurePromptFromDir(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewPromptService(client.Client)
	ctx := context.Background()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "prompt.md"), []byte("Dir-loaded prompt."), 0o644))

	p, err := svc.EnsurePromptFromDir(ctx, "from-dir", dir)
	require.NoError(t, err)
	assert.Equal(t, contenthash.Text("Dir-loaded prompt."), p.ContentHash)

	// Reloading the same directory is idempotent.
	again, err := svc.EnsurePromptFromDir(ctx, "from-dir", dir)
	require.NoError(t, err)
	assert.Equal(t, p.ID, again.ID)
}
