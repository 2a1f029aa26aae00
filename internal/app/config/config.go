// Package config loads process-level settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	// ProviderOpenAI selects the OpenAI Responses API adapter.
	ProviderOpenAI = "openai"
	// ProviderGemini selects the Gemini adapter.
	ProviderGemini = "gemini"

	defaultPort          = 3000
	defaultPublicDir     = "public"
	defaultSearchTimeout = 60 * time.Second
)

// Config holds server configuration.
type Config struct {
	Port          int           // listen port
	PublicDir     string        // directory served at /
	Provider      string        // web search provider
	SearchTimeout time.Duration // total timeout of one outbound call
	CORSOrigins   []string      // empty disables CORS
}

// Addr returns the listen address for gin.Engine.Run.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// LoadConfig loads configuration from environment variables, falling back to
// defaults for missing or malformed values.
func LoadConfig() Config {
	cfg := Config{
		Port:          defaultPort,
		PublicDir:     defaultPublicDir,
		Provider:      ProviderOpenAI,
		SearchTimeout: defaultSearchTimeout,
	}

	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 && p < 65536 {
			cfg.Port = p
		} else {
			slog.Warn("invalid PORT, using default", "value", v, "default", defaultPort)
		}
	}
	if v := os.Getenv("PUBLIC_DIR"); v != "" {
		cfg.PublicDir = v
	}
	if v := strings.ToLower(strings.TrimSpace(os.Getenv("SEARCH_PROVIDER"))); v != "" {
		cfg.Provider = v
	}
	if v := os.Getenv("SEARCH_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d >= 0 {
			cfg.SearchTimeout = d
		} else {
			slog.Warn("invalid SEARCH_TIMEOUT, using default", "value", v, "default", defaultSearchTimeout)
		}
	}
	for _, o := range strings.Split(os.Getenv("CORS_ALLOW_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}
	return cfg
}
