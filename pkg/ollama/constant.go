package ollama

import "time"

const (
	// DefaultModel is the default Ollama model
	DefaultModel = "llama3.1:8b"

	// DefaultBaseURL is the default Ollama server address
	DefaultBaseURL = "http://localhost:11434"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second
)
