package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "PUBLIC_DIR", "SEARCH_PROVIDER", "SEARCH_TIMEOUT", "CORS_ALLOW_ORIGINS"} {
		t.Setenv(k, "")
	}

	cfg := LoadConfig()

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, ":3000", cfg.Addr())
	assert.Equal(t, "public", cfg.PublicDir)
	assert.Equal(t, ProviderOpenAI, cfg.Provider)
	assert.Equal(t, 60*time.Second, cfg.SearchTimeout)
	assert.Empty(t, cfg.CORSOrigins)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("PUBLIC_DIR", "/srv/www")
	t.Setenv("SEARCH_PROVIDER", " Gemini ")
	t.Setenv("SEARCH_TIMEOUT", "15s")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, ,https://b.example")

	cfg := LoadConfig()

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "/srv/www", cfg.PublicDir)
	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, 15*time.Second, cfg.SearchTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "non-numeric port", key: "PORT", value: "abc"},
		{name: "port out of range", key: "PORT", value: "70000"},
		{name: "malformed timeout", key: "SEARCH_TIMEOUT", value: "soon"},
		{name: "negative timeout", key: "SEARCH_TIMEOUT", value: "-5s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PORT", "")
			t.Setenv("SEARCH_TIMEOUT", "")
			t.Setenv(tt.key, tt.value)

			cfg := LoadConfig()

			assert.Equal(t, 3000, cfg.Port)
			assert.Equal(t, 60*time.Second, cfg.SearchTimeout)
		})
	}
}
