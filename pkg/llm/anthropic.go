package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// defaultMaxTokens applies when the model config carries no max_tokens
// option.
const defaultMaxTokens = 8192

// AnthropicCompleter is the production ChatCompleter backed by the
// Anthropic Messages API.
type AnthropicCompleter struct {
	client anthropic.Client
}

// NewAnthropicCompleter creates a completer. An empty apiKey falls back to
// the ANTHROPIC_API_KEY environment variable via the SDK's defaults.
func NewAnthropicCompleter(apiKey string) *AnthropicCompleter {
	opts := []option.RequestOption{}
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}
	return &AnthropicCompleter{client: anthropic.NewClient(opts...)}
}

// Complete runs one chat completion and measures wall-clock duration.
func (c *AnthropicCompleter) Complete(ctx context.Context, req Request) (*Result, error) {
	if req.Model == "" {
		return nil, fmt.Errorf("llm: model is required")
	}

	params := buildMessageParams(req)

	start := time.Now()
	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("llm: completion failed: %w", err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}

	inputTokens := int(msg.Usage.InputTokens)
	outputTokens := int(msg.Usage.OutputTokens)
	result := &Result{
		Response:             b.String(),
		TotalDurationSeconds: time.Since(start).Seconds(),
		InputTokens:          &inputTokens,
		OutputTokens:         &outputTokens,
	}
	if msg.StopReason == anthropic.StopReasonMaxTokens {
		result.Warning = "response truncated at max_tokens"
	}
	return result, nil
}

// buildMessageParams maps the canonical model-config options onto the
// Messages API request. A "seed" option may be present in canonical
// configs; the Messages API has no sampling-seed parameter, so it only
// affects the config hash.
func buildMessageParams(req Request) anthropic.MessageNewParams {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(req.Model),
		MaxTokens: optionInt(req.Options, "max_tokens", defaultMaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.UserContent)),
		},
	}
	if req.SystemPrompt != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.SystemPrompt}}
	}
	if t, ok := optionFloat(req.Options, "temperature"); ok {
		params.Temperature = anthropic.Float(t)
	}
	if p, ok := optionFloat(req.Options, "top_p"); ok {
		params.TopP = anthropic.Float(p)
	}
	if k, ok := optionFloat(req.Options, "top_k"); ok {
		params.TopK = anthropic.Int(int64(k))
	}
	return params
}

// optionInt reads an integer option from the canonical options map. JSON
// round-trips numbers as float64, so both forms are accepted.
func optionInt(options map[string]interface{}, key string, fallback int64) int64 {
	if options == nil {
		return fallback
	}
	switch v := options[key].(type) {
	case int:
		return int64(v)
	case int64:
		return v
	case float64:
		return int64(v)
	default:
		return fallback
	}
}

func optionFloat(options map[string]interface{}, key string) (float64, bool) {
	if options == nil {
		return 0, false
	}
	switch v := options[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}
