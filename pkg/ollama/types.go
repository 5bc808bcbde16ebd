package ollama

import "net/http"

// Config holds Ollama client configuration
type Config struct {
	BaseURL    string
	Model      string
	HTTPClient *http.Client
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// ollamaImpl is the internal implementation of IOllama
type ollamaImpl struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// Message is one turn of a chat conversation
type Message struct {
	Role    string `json:"role"` // system | user | assistant
	Content string `json:"content"`
}

// Request represents an Ollama chat request
type Request struct {
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// Response represents an Ollama chat response
type Response struct {
	Content string
	Model   string
}

// Wire types for the Ollama /api/chat endpoint
type chatRequest struct {
	Model    string      `json:"model"`
	Messages []Message   `json:"messages"`
	Stream   bool        `json:"stream"`
	Options  chatOptions `json:"options,omitempty"`
}

type chatOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type chatResponse struct {
	Model   string  `json:"model"`
	Message Message `json:"message"`
	Done    bool    `json:"done"`
}
