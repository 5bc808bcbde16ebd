package converse

import (
	"fmt"
	"net/http"
	"time"

	"tablebooker/config"
	"tablebooker/pkg/ollama"
)

// InitializeResponders creates the responder chain from config.ConverseConfig.
// The language backend (when enabled) goes first; the canned responder is
// always appended last so the chain can never come up empty.
func InitializeResponders(cfg *config.ConverseConfig) ([]Responder, error) {
	if cfg == nil {
		return nil, fmt.Errorf("converse config is nil")
	}

	var responders []Responder

	if cfg.Ollama.Enabled {
		client, err := ollama.New(ollama.Config{
			BaseURL: cfg.Ollama.BaseURL,
			Model:   cfg.Ollama.Model,
			HTTPClient: &http.Client{
				Timeout: time.Duration(cfg.Ollama.TimeoutSeconds) * time.Second,
			},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create ollama client: %w", err)
		}
		responders = append(responders, NewOllamaAdapter(client))
	}

	responders = append(responders, NewCanned())
	return responders, nil
}
