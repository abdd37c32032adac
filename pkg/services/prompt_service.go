package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/filinglens/filinglens/ent"
	"github.com/filinglens/filinglens/ent/prompt"
	"github.com/filinglens/filinglens/pkg/contenthash"
)

// PromptService manages content-addressed Prompt records.
type PromptService struct {
	client *ent.Client
}

// NewPromptService creates a new PromptService.
func NewPromptService(client *ent.Client) *PromptService {
	return &PromptService{client: client}
}

// EnsurePrompt is a content-hash-deduplicated upsert: identical content
// returns the existing row regardless of name. Idempotent.
func (s *PromptService) EnsurePrompt(ctx context.Context, name, role, description, content string) (*ent.Prompt, error) {
	if name == "" {
		return nil, NewValidationError("name", "required")
	}
	if content == "" {
		return nil, NewValidationError("content", "required")
	}
	promptRole := prompt.Role(role)
	if role == "" {
		promptRole = prompt.RoleSystem
	} else if err := prompt.RoleValidator(promptRole); err != nil {
		return nil, NewValidationError("role", err.Error())
	}

	hash := contenthash.Text(content)

	existing, err := s.client.Prompt.Query().
		Where(prompt.ContentHashEQ(hash)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query prompt: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	created, err := s.client.Prompt.Create().
		SetID(newID()).
		SetName(name).
		SetRole(promptRole).
		SetDescription(description).
		SetContent(content).
		SetContentHash(hash).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Concurrent insert of identical content; the existing row wins.
			return s.ByHash(ctx, hash)
		}
		return nil, fmt.Errorf("failed to create prompt: %w", err)
	}
	return created, nil
}

// EnsurePromptFromDir loads a prompt directory's canonical content and
// upserts it. The directory layout is {dir}/prompt.md plus optional
// examples/*.md concatenated in sorted filename order.
func (s *PromptService) EnsurePromptFromDir(ctx context.Context, name, dir string) (*ent.Prompt, error) {
	content, err := CanonicalPromptContent(dir)
	if err != nil {
		return nil, err
	}
	return s.EnsurePrompt(ctx, name, "system", fmt.Sprintf("loaded from %s", dir), content)
}

// ByHash returns a prompt by full content hash or an unambiguous prefix of
// at least contenthash.ShortHashLen characters.
func (s *PromptService) ByHash(ctx context.Context, hash string) (*ent.Prompt, error) {
	if len(hash) == 64 {
		p, err := s.client.Prompt.Query().
			Where(prompt.ContentHashEQ(hash)).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("failed to get prompt: %w", err)
		}
		return p, nil
	}

	if len(hash) < contenthash.ShortHashLen {
		return nil, NewValidationError("hash", fmt.Sprintf("prefix must be at least %d characters", contenthash.ShortHashLen))
	}
	matches, err := s.client.Prompt.Query().
		Where(prompt.ContentHashHasPrefix(hash)).
		Limit(2).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query prompt by prefix: %w", err)
	}
	switch len(matches) {
	case 0:
		return nil, ErrNotFound
	case 1:
		return matches[0], nil
	default:
		return nil, ErrAmbiguousHash
	}
}

// List returns prompts ordered by name.
func (s *PromptService) List(ctx context.Context, limit int) ([]*ent.Prompt, error) {
	if limit <= 0 {
		limit = 100
	}
	prompts, err := s.client.Prompt.Query().
		Order(ent.Asc(prompt.FieldName)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list prompts: %w", err)
	}
	return prompts, nil
}

// CanonicalPromptContent assembles the canonical prompt text for a prompt
// directory: prompt.md stripped, then each examples/*.md stripped and
// appended with a blank-line separator, in sorted filename order.
func CanonicalPromptContent(dir string) (string, error) {
	base, err := os.ReadFile(filepath.Join(dir, "prompt.md"))
	if err != nil {
		return "", fmt.Errorf("failed to read prompt.md in %s: %w", dir, err)
	}

	var b strings.Builder
	b.WriteString(strings.TrimSpace(string(base)))

	examplesDir := filepath.Join(dir, "examples")
	entries, err := os.ReadDir(examplesDir)
	if err != nil {
		if os.IsNotExist(err) {
			return b.String(), nil
		}
		return "", fmt.Errorf("failed to read examples dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".md") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		example, err := os.ReadFile(filepath.Join(examplesDir, name))
		if err != nil {
			return "", fmt.Errorf("failed to read example %s: %w", name, err)
		}
		b.WriteString("\n\n")
		b.WriteString(strings.TrimSpace(string(example)))
	}
	return b.String(), nil
}
