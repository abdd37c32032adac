package config

// PipelineConfig contains the defaults the pipeline orchestrator applies
// when job params leave them unset.
type PipelineConfig struct {
	// Model is the default model identifier for generation.
	Model string `yaml:"model"`

	// ModelOptions are the default provider parameters, hashed into the
	// model config identity.
	ModelOptions map[string]interface{} `yaml:"model_options"`

	// PromptsDir is the root directory holding per-stage prompt
	// directories ({stage}/prompt.md plus optional examples/).
	PromptsDir string `yaml:"prompts_dir"`

	// Forms are the form types the full pipeline processes by default.
	Forms []string `yaml:"forms"`

	// Counts maps form type to how many recent filings to ingest.
	Counts map[string]int `yaml:"counts"`

	// DocumentTypes are the filing sections summarized per form.
	DocumentTypes []string `yaml:"document_types"`

	// MaxAggregatesPerTicker bounds how many recent aggregate summaries
	// the group stage reads per company.
	MaxAggregatesPerTicker int `yaml:"max_aggregates_per_ticker"`
}

// DefaultPipelineConfig returns the built-in pipeline defaults.
func DefaultPipelineConfig() *PipelineConfig {
	return &PipelineConfig{
		Model: "claude-sonnet-4-5",
		ModelOptions: map[string]interface{}{
			"max_tokens":  8192,
			"temperature": 0.2,
		},
		PromptsDir: "prompts",
		Forms:      []string{"10-K", "10-Q"},
		Counts: map[string]int{
			"10-K": 5,
			"10-Q": 6,
		},
		DocumentTypes:          []string{"management_discussion", "risk_factors"},
		MaxAggregatesPerTicker: 3,
	}
}
