// Package config builds the immutable runtime configuration from the
// environment. The value is constructed once at process start and passed
// explicitly into every component that needs it.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Defaults applied when the corresponding environment variable is unset.
const (
	DefaultLocation     = "us-central1"
	DefaultPort         = 8080
	DefaultProvider     = "vertex"
	DefaultDBPath       = "/tmp/sessions.db"
	DefaultHistoryLimit = 20
)

// Config holds everything the gateway needs at runtime.
type Config struct {
	ProjectID string // GCP project serving the Vertex AI endpoint (required for vertex)
	Location  string // GCP region for the Vertex AI endpoint
	Port      int    // HTTP listen port

	Provider string // vertex, openai, or anthropic
	Model    string // model name override; empty means the provider default
	APIKey   string // credential for the selected provider
	BaseURL  string // optional API base URL override (openai provider only)

	DBPath       string // SQLite session database; ephemeral storage by design
	HistoryLimit int    // turns read back as conversation context
	LogLevel     string // zerolog level name, empty means info
}

// FromEnv reads the configuration from environment variables. Missing
// required settings are returned as errors so the process refuses to start
// rather than run degraded.
func FromEnv() (*Config, error) {
	cfg := &Config{
		ProjectID:    os.Getenv("GCP_PROJECT_ID"),
		Location:     envOr("GCP_LOCATION", DefaultLocation),
		Provider:     envOr("LLM_PROVIDER", DefaultProvider),
		DBPath:       envOr("SESSION_DB_PATH", DefaultDBPath),
		Port:         DefaultPort,
		HistoryLimit: DefaultHistoryLimit,
		LogLevel:     os.Getenv("LOG_LEVEL"),
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil || port <= 0 || port > 65535 {
			return nil, fmt.Errorf("invalid PORT value %q", portStr)
		}
		cfg.Port = port
	}

	if limitStr := os.Getenv("SESSION_HISTORY_LIMIT"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			return nil, fmt.Errorf("invalid SESSION_HISTORY_LIMIT value %q", limitStr)
		}
		cfg.HistoryLimit = limit
	}

	switch cfg.Provider {
	case "vertex":
		if cfg.ProjectID == "" {
			return nil, fmt.Errorf("GCP_PROJECT_ID environment variable is required")
		}
		cfg.APIKey = os.Getenv("VERTEX_ACCESS_TOKEN")
		cfg.Model = os.Getenv("VERTEX_MODEL")
	case "openai":
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
		cfg.Model = os.Getenv("OPENAI_MODEL")
		cfg.BaseURL = os.Getenv("OPENAI_BASE_URL")
	case "anthropic":
		cfg.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		cfg.Model = os.Getenv("ANTHROPIC_MODEL")
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER: %s (supported: vertex, openai, anthropic)", cfg.Provider)
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
