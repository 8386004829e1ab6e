package llm

import (
	"context"
	"encoding/json"
)

// Provider abstracts a chat-completion backend. Callers describe the
// structured payload they want via a Tool; providers force the model to
// answer through that tool (or the closest native equivalent) and hand
// back the tool's arguments as JSON.
type Provider interface {
	// Generate sends one request and returns the structured response.
	// When req.Tool is set, Content is the validated tool-call argument
	// object. When nil, Content is the raw text wrapped as JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the configured model identifier.
	ModelID() string
}

// Request describes a single chat-completion call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Question generation is single-turn,
	// so this usually holds one user message.
	Messages []Message

	// Tool, when set, is the function the model must call to respond.
	// Providers without a tool-call wire format use their native
	// structured-output mechanism against Tool.Parameters instead.
	Tool *Tool

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0,1]; zero means deterministic.
	Temperature float64
}

// Message is one turn of conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies a message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Tool describes the function the model is forced to call.
type Tool struct {
	// Name is the tool name, e.g. "provide_questions".
	Name string

	// Description guides the model toward the right payload.
	Description string

	// Parameters is the JSON Schema of the tool's argument object.
	Parameters map[string]any
}

// Response is the provider's output.
type Response struct {
	// Content is the tool-call arguments (or raw text when no Tool was
	// requested), already checked against Tool.Parameters.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens", or "error".
	StopReason string
}

// Usage tracks token counts for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
