package llm

import (
	"context"
	"encoding/json"
)

// Provider generates model output for a single request. All consumers
// in this codebase ask for schema-constrained JSON: question
// generation, answer assessment, and knowledge extraction each carry
// their own Schema.
type Provider interface {
	// Generate sends the request and returns the model's output. With a
	// Schema set, Content is JSON validated against it before return.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the configured model identifier.
	ModelID() string
}

// Request is a single generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Single-turn calls, the common case
	// here, carry exactly one user message.
	Messages []Message

	// Schema, when set, makes the provider use its native structured
	// output mechanism and validates Content against the definition.
	// When nil, Content is the raw text reply.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0, 1]. Zero value means deterministic.
	Temperature float64
}

type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names and defines the JSON shape a response must take.
type Schema struct {
	// Name is kebab-case, e.g. "study-question". Providers that need a
	// schema or tool name on the wire use it directly.
	Name string

	// Description tells the model what the object represents.
	Description string

	// Definition is a JSON Schema document as a Go map.
	Definition map[string]any
}

// Response is the model's output for one request.
type Response struct {
	// Content is validated JSON when the request carried a Schema,
	// otherwise the raw text reply.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request, which may be
	// more specific than the configured alias.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
