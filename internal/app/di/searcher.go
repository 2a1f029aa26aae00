// Package di provides dependency injection factories for creating application components.
package di

import (
	"fmt"

	"duediligence_backend/internal/app/config"
	"duediligence_backend/internal/feature/duediligence/adapters/gemini"
	"duediligence_backend/internal/feature/duediligence/adapters/openai"
	"duediligence_backend/internal/feature/duediligence/usecase"
	infrahttp "duediligence_backend/internal/platform/http"
)

// NewWebSearcher creates the WebSearcher for the configured provider, each with
// its own traced HTTP client. API keys are not checked here.
func NewWebSearcher(cfg config.Config) (usecase.WebSearcher, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		return openai.NewOpenAISearcher(openai.LoadConfig(), infrahttp.NewHTTPClient(cfg.SearchTimeout, "openai_http")), nil
	case config.ProviderGemini:
		return gemini.NewGeminiSearcher(gemini.LoadConfig(), infrahttp.NewHTTPClient(cfg.SearchTimeout, "gemini_http")), nil
	default:
		return nil, fmt.Errorf("unknown SEARCH_PROVIDER %q (want %q or %q)", cfg.Provider, config.ProviderOpenAI, config.ProviderGemini)
	}
}
