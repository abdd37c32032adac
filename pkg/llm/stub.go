package llm

import (
	"context"
	"crypto/sha256"
	"fmt"
	"sync"
)

// StubCompleter is a deterministic in-memory ChatCompleter for tests. The
// response for a given (system prompt, user content, model) triple is
// stable across calls, so content hashes computed from stub output are
// reproducible.
type StubCompleter struct {
	mu sync.Mutex

	// Err, when set, is returned from every Complete call.
	Err error
	// EmptyResponse forces an empty completion.
	EmptyResponse bool
	// Warning is copied onto every result.
	Warning string

	calls []Request
}

// NewStubCompleter creates a stub with no scripted failures.
func NewStubCompleter() *StubCompleter {
	return &StubCompleter{}
}

// Complete returns a deterministic digest-derived response and records the
// call.
func (s *StubCompleter) Complete(_ context.Context, req Request) (*Result, error) {
	s.mu.Lock()
	s.calls = append(s.calls, req)
	err := s.Err
	empty := s.EmptyResponse
	warning := s.Warning
	s.mu.Unlock()

	if err != nil {
		return nil, err
	}

	response := ""
	if !empty {
		sum := sha256.Sum256([]byte(req.SystemPrompt + "\x00" + req.UserContent + "\x00" + req.Model))
		response = fmt.Sprintf("stub summary %x", sum[:8])
	}

	inputTokens := len(req.UserContent) / 4
	outputTokens := len(response) / 4
	return &Result{
		Response:             response,
		TotalDurationSeconds: 0.01,
		InputTokens:          &inputTokens,
		OutputTokens:         &outputTokens,
		Warning:              warning,
	}, nil
}

// Calls returns a copy of the recorded requests in call order.
func (s *StubCompleter) Calls() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.calls))
	copy(out, s.calls)
	return out
}

// CallCount returns the number of completions requested so far.
func (s *StubCompleter) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}
