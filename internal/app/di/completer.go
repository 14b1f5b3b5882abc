// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"
	"fmt"

	"pagegen_backend/internal/feature/generate/adapters/gemini"
	"pagegen_backend/internal/feature/generate/adapters/openai"
	"pagegen_backend/internal/feature/generate/usecase"
	"pagegen_backend/internal/platform/config"
	infrahttp "pagegen_backend/internal/platform/http"
)

// NewCompleter creates the completion backend selected by COMPLETION_PROVIDER.
// The provider value is validated at config load, so the default branch only
// guards against future additions.
func NewCompleter(ctx context.Context, cfg config.Config) (usecase.Completer, error) {
	switch cfg.CompletionProvider {
	case config.ProviderOpenAI:
		httpClient := infrahttp.NewHTTPClient(cfg.CompletionTimeout)
		return openai.NewClient(cfg.OpenAIAPIKey, cfg.CompletionModel, httpClient), nil
	case config.ProviderGemini:
		return gemini.NewGenerator(ctx, cfg.CompletionModel)
	default:
		return nil, fmt.Errorf("unsupported completion provider: %s", cfg.CompletionProvider)
	}
}
