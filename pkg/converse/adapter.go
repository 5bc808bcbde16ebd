package converse

import (
	"context"
	"fmt"
	"strings"

	"tablebooker/pkg/ollama"
)

// OllamaAdapter adapts pkg/ollama to the converse.Responder interface
type OllamaAdapter struct {
	client ollama.IOllama
}

// NewOllamaAdapter creates a new Ollama adapter
func NewOllamaAdapter(client ollama.IOllama) *OllamaAdapter {
	return &OllamaAdapter{client: client}
}

// Respond implements Responder
func (a *OllamaAdapter) Respond(ctx context.Context, req *Request) (*Response, error) {
	messages := make([]ollama.Message, 0, len(req.Messages)+1)
	if req.SystemPrompt != "" {
		messages = append(messages, ollama.Message{Role: "system", Content: req.SystemPrompt})
	}
	for _, m := range req.Messages {
		messages = append(messages, ollama.Message{Role: m.Role, Content: m.Content})
	}

	resp, err := a.client.Chat(ctx, &ollama.Request{
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, &ResponderError{Responder: a.Name(), Err: err}
	}

	content := strings.TrimSpace(resp.Content)
	if content == "" {
		return nil, &ResponderError{Responder: a.Name(), Err: fmt.Errorf("empty completion")}
	}

	return &Response{
		Content:       content,
		ResponderName: a.Name(),
		ModelName:     a.client.Model(),
	}, nil
}

// Name returns responder name
func (a *OllamaAdapter) Name() string {
	return "ollama"
}

// Model returns model name
func (a *OllamaAdapter) Model() string {
	return a.client.Model()
}
