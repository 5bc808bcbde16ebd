package converse

import "context"

// Responder defines the interface for conversational reply backends
type Responder interface {
	// Respond generates a reply to the conversation so far
	Respond(ctx context.Context, req *Request) (*Response, error)

	// Name returns the responder name (e.g., "ollama", "canned")
	Name() string

	// Model returns the model being used
	Model() string
}

// Message represents a conversation message
type Message struct {
	Role    string // "user", "assistant", "system"
	Content string
}

// Request represents a normalized reply request
type Request struct {
	SystemPrompt string
	Messages     []Message
	Temperature  float64
	MaxTokens    int
}

// Response represents a normalized reply
type Response struct {
	Content       string
	ResponderName string
	ModelName     string
	// Degraded marks replies produced without the language backend
	Degraded bool
}
