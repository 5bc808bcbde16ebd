package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Booking specifics
	ResDiary ResDiaryConfig
	Session  SessionConfig
	Chat     ChatConfig

	// Reply generation
	Converse ConverseConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
}

// ResDiaryConfig points at the reservation API.
type ResDiaryConfig struct {
	BaseURL        string
	APIToken       string
	TimeoutSeconds int
	MaxReadRetries int
}

type SessionConfig struct {
	MaxSessions    int
	IdleTTLMinutes int
}

type ChatConfig struct {
	ConfirmWord          string
	CancellationReasonID int
	Timezone             string
}

// ConverseConfig holds configuration for the reply generation chain.
type ConverseConfig struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      string
	MaxTotalTimeout string
	Ollama          OllamaConfig
}

// OllamaConfig holds configuration for the local language backend.
type OllamaConfig struct {
	Enabled        bool
	BaseURL        string
	Model          string
	TimeoutSeconds int
}

// RetryDelayDuration parses the retry delay, falling back to 1s.
func (c ConverseConfig) RetryDelayDuration() time.Duration {
	return parseDuration(c.RetryDelay, time.Second)
}

// MaxTotalTimeoutDuration parses the chain timeout, falling back to 60s.
func (c ConverseConfig) MaxTotalTimeoutDuration() time.Duration {
	return parseDuration(c.MaxTotalTimeout, 60*time.Second)
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	// Reservation API
	cfg.ResDiary.BaseURL = viper.GetString("resdiary.base_url")
	cfg.ResDiary.APIToken = expandEnvVar(viper.GetString("resdiary.api_token"))
	cfg.ResDiary.TimeoutSeconds = viper.GetInt("resdiary.timeout_seconds")
	cfg.ResDiary.MaxReadRetries = viper.GetInt("resdiary.max_read_retries")
	if token := viper.GetString("resdiary_api_token"); token != "" {
		cfg.ResDiary.APIToken = token
	}
	if cfg.ResDiary.BaseURL == "" {
		return nil, fmt.Errorf("resdiary.base_url is required")
	}

	// Sessions
	cfg.Session.MaxSessions = viper.GetInt("session.max_sessions")
	cfg.Session.IdleTTLMinutes = viper.GetInt("session.idle_ttl_minutes")

	// Chat behavior
	cfg.Chat.ConfirmWord = viper.GetString("chat.confirm_word")
	cfg.Chat.CancellationReasonID = viper.GetInt("chat.cancellation_reason_id")
	cfg.Chat.Timezone = viper.GetString("chat.timezone")

	// Reply generation
	cfg.Converse.FallbackEnabled = viper.GetBool("converse.fallback_enabled")
	cfg.Converse.RetryAttempts = viper.GetInt("converse.retry_attempts")
	cfg.Converse.RetryDelay = viper.GetString("converse.retry_delay")
	cfg.Converse.MaxTotalTimeout = viper.GetString("converse.max_total_timeout")
	cfg.Converse.Ollama.Enabled = viper.GetBool("converse.ollama.enabled")
	cfg.Converse.Ollama.BaseURL = viper.GetString("converse.ollama.base_url")
	cfg.Converse.Ollama.Model = viper.GetString("converse.ollama.model")
	cfg.Converse.Ollama.TimeoutSeconds = viper.GetInt("converse.ollama.timeout_seconds")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 60)

	viper.SetDefault("resdiary.base_url", "http://localhost:8547")
	viper.SetDefault("resdiary.timeout_seconds", 10)
	viper.SetDefault("resdiary.max_read_retries", 2)

	viper.SetDefault("session.max_sessions", 10000)
	viper.SetDefault("session.idle_ttl_minutes", 30)

	viper.SetDefault("chat.confirm_word", "confirmed")
	viper.SetDefault("chat.cancellation_reason_id", 1)
	viper.SetDefault("chat.timezone", "Europe/London")

	viper.SetDefault("converse.fallback_enabled", true)
	viper.SetDefault("converse.retry_attempts", 3)
	viper.SetDefault("converse.retry_delay", "1s")
	viper.SetDefault("converse.max_total_timeout", "60s")
	viper.SetDefault("converse.ollama.enabled", true)
	viper.SetDefault("converse.ollama.base_url", "http://localhost:11434")
	viper.SetDefault("converse.ollama.model", "llama3.1:8b")
	viper.SetDefault("converse.ollama.timeout_seconds", 30)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}
