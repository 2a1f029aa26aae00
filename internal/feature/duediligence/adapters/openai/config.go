// Package openai provides a WebSearcher backed by the OpenAI Responses API
// with the web_search_preview tool enabled.
package openai

import "os"

// DefaultModel is used when OPENAI_MODEL is not set.
const DefaultModel = "gpt-4o-mini"

// Config holds configuration for the OpenAI client.
type Config struct {
	APIKey  string // API key; not validated, a missing key fails at call time
	BaseURL string // optional endpoint override (e.g., a proxy)
	Model   string // model identifier
}

// LoadConfig loads OpenAI configuration from environment variables.
func LoadConfig() Config {
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = DefaultModel
	}
	return Config{
		APIKey:  os.Getenv("OPENAI_API_KEY"),
		BaseURL: os.Getenv("OPENAI_BASE_URL"),
		Model:   model,
	}
}
