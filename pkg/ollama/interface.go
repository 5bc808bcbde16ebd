package ollama

import "context"

// IOllama defines the interface for the Ollama API client.
// Implementations are safe for concurrent use.
type IOllama interface {
	// Chat sends a chat completion request to Ollama
	Chat(ctx context.Context, req *Request) (*Response, error)

	// Healthy reports whether the Ollama server is reachable
	Healthy(ctx context.Context) error

	// Model returns the model being used
	Model() string
}

// New creates a new Ollama client with the given configuration
func New(cfg Config) (IOllama, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newOllamaImpl(cfg), nil
}
