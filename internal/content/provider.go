package content

import (
	"context"
	"encoding/json"
)

// Provider generates practice content through an LLM.
// Consumers call Generate with a Request and receive structured JSON.
type Provider interface {
	// Generate sends a single-turn prompt and returns a structured
	// response. The request's Schema field, when set, instructs the
	// provider to return JSON conforming to that schema; the response
	// Content is then the validated JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes one content generation call. Generation here is
// always single-turn: a system prompt framing the tutor role plus one
// user prompt describing the question to produce.
type Request struct {
	// System sets the LLM's role and constraints.
	System string

	// Prompt is the user-facing generation instruction.
	Prompt string

	// Schema is the JSON Schema the response must conform to.
	// When set, the provider uses its native structured output mechanism.
	// When nil, the response Content is raw text as json.RawMessage.
	Schema *Schema

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	// Default: 0.0 (deterministic) when not set.
	Temperature float64
}

// Schema defines the JSON structure expected from the LLM.
type Schema struct {
	// Name identifies this schema (used as the schema name for OpenAI,
	// resource name for validation). Kebab-case, e.g. "varied-question".
	Name string

	// Description is sent to the LLM to guide generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the LLM's output.
type Response struct {
	// Content is the generated output. When a Schema was provided in the
	// request, this is the validated JSON object. When no Schema was
	// provided, this is the raw text response.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens", "error"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
