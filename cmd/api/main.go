package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tablebooker/config"
	_ "tablebooker/docs" // Swagger docs
	chatUC "tablebooker/internal/chat/usecase"
	"tablebooker/internal/httpserver"
	"tablebooker/internal/restaurant"
	"tablebooker/internal/session"
	"tablebooker/pkg/converse"
	"tablebooker/pkg/dateparse"
	"tablebooker/pkg/log"
	"tablebooker/pkg/ollama"
	"tablebooker/pkg/resdiary"
)

// @title       TableBooker API
// @description Conversational restaurant booking over a ResDiary-style reservation API.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting TableBooker...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Reservation API: %s", cfg.ResDiary.BaseURL)

	// 3. Reservation API client and venue directory
	apiClient := resdiary.New(logger, resdiary.Config{
		BaseURL:        cfg.ResDiary.BaseURL,
		APIToken:       cfg.ResDiary.APIToken,
		Timeout:        time.Duration(cfg.ResDiary.TimeoutSeconds) * time.Second,
		MaxReadRetries: cfg.ResDiary.MaxReadRetries,
	})
	directory := restaurant.LoadDirectory(ctx, logger, apiClient)
	resolver := restaurant.NewResolver(directory)

	// 4. Date parser
	dates, err := dateparse.NewParser(cfg.Chat.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Chat.Timezone, err)
		dates, _ = dateparse.NewParser("UTC")
	}

	// 5. Session store
	store := session.New(logger, session.Config{
		MaxSessions: cfg.Session.MaxSessions,
		IdleTTL:     time.Duration(cfg.Session.IdleTTLMinutes) * time.Minute,
	})

	// 6. Reply generation chain
	responders, err := converse.InitializeResponders(&cfg.Converse)
	if err != nil {
		logger.Error(ctx, "Failed to initialize responders: ", err)
		return
	}
	manager := converse.NewManager(responders, &converse.Config{
		FallbackEnabled: cfg.Converse.FallbackEnabled,
		RetryAttempts:   cfg.Converse.RetryAttempts,
		RetryDelay:      cfg.Converse.RetryDelayDuration(),
		MaxTotalTimeout: cfg.Converse.MaxTotalTimeoutDuration(),
	}, logger)

	// Dedicated probe client for /ai-status so health checks do not
	// compete with in-flight generations for the shared timeout.
	var aiProbe ollama.IOllama
	if cfg.Converse.Ollama.Enabled {
		aiProbe, err = ollama.New(ollama.Config{
			BaseURL: cfg.Converse.Ollama.BaseURL,
			Model:   cfg.Converse.Ollama.Model,
			HTTPClient: &http.Client{
				Timeout: time.Duration(cfg.Converse.Ollama.TimeoutSeconds) * time.Second,
			},
		})
		if err != nil {
			logger.Warnf(ctx, "Language backend probe unavailable: %v", err)
		}
	}

	// 7. Chat use case
	uc := chatUC.New(logger, store, resolver, directory, apiClient, manager, dates, chatUC.Config{
		ConfirmWord:          cfg.Chat.ConfirmWord,
		CancellationReasonID: cfg.Chat.CancellationReasonID,
	})

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		ChatUseCase: uc,
		Directory:   directory,
		Ollama:      aiProbe,
		RateLimit:   cfg.RateLimit,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
