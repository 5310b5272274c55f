package llm

import (
	"context"
	"encoding/json"
)

// Provider is one configured model behind a common call surface.
// Question generation uses Generate with a schema attached; the chat
// tutor uses Stream. Decorators (retry, logging) wrap this interface,
// so everything here holds for the whole chain.
type Provider interface {
	// Generate runs one blocking completion. With req.Schema set the
	// provider asks for structured output and the returned Content is
	// schema-validated JSON; without it, Content is the raw text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// Stream delivers the completion incrementally. The channel closes
	// when the model finishes; a mid-stream failure arrives as the last
	// chunk's Err. Schemas don't apply to streamed output.
	Stream(ctx context.Context, req Request) (<-chan Chunk, error)

	// ModelID is the resolved model identifier, for event logging.
	ModelID() string
}

// Request is a provider-neutral completion request.
type Request struct {
	// System sets the model's role. The ChemCat persona lives here for
	// chat; question generation uses it for format constraints.
	System string

	// Messages is the conversation so far. One user message for
	// generation; the tutor replays its whole transcript.
	Messages []Message

	// Schema, when non-nil, constrains the output via the provider's
	// structured-output mechanism and is re-validated locally.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0, 1]; zero means deterministic.
	Temperature float64
}

// Message is one turn of conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies a message's speaker.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON Schema the response must satisfy. Name doubles
// as the provider-side tool or schema identifier and the local
// compilation cache key, so it must be stable per definition.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Response is a finished completion.
type Response struct {
	// Content is validated JSON when the request carried a schema,
	// raw text otherwise.
	Content json.RawMessage

	Usage Usage

	// Model that actually served the call, which may differ from the
	// requested alias.
	Model string

	// StopReason normalized across providers: "end", "max_tokens",
	// or "error".
	StopReason string
}

// Chunk is one streamed increment. Err, when set, ends the stream.
type Chunk struct {
	Text string
	Err  error
}

// Usage counts tokens for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
