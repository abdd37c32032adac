// Package llm defines the chat-completion boundary the pipeline calls
// through, plus the Anthropic-backed implementation and a deterministic
// stub for tests.
package llm

import "context"

// Request is one chat completion: a system prompt, the user content, and
// the model configuration to run it under.
type Request struct {
	SystemPrompt string
	UserContent  string
	Model        string
	// Options carries provider parameters (temperature, max_tokens, ...)
	// in the same canonical map form the model config is hashed from.
	Options map[string]interface{}
}

// Result is the completion plus the bookkeeping the pipeline records on
// the artifact.
type Result struct {
	Response             string
	TotalDurationSeconds float64
	InputTokens          *int
	OutputTokens         *int
	// Warning is non-empty when the response is usable but degraded, e.g.
	// truncated by the token limit.
	Warning string
}

// ChatCompleter executes chat completions. Implementations must be safe
// for concurrent use; the worker pool shares one across workers.
type ChatCompleter interface {
	Complete(ctx context.Context, req Request) (*Result, error)
}
