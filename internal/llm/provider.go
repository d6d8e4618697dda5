package llm

import (
	"context"
	"errors"
	"fmt"
)

// ErrMissingAPIKey is returned when the configured provider has no credential
// in the environment. Surfaced separately so the CLI can tell the user to fix
// configuration rather than retry.
var ErrMissingAPIKey = errors.New("no API key configured")

// Provider sends one completion request and returns the raw response text.
// Implementations declare the analysis schema to the backend, but callers
// must not trust that declaration; the response is validated after parsing.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Name() string
}

// ProviderConfig carries the environment-sourced settings a provider needs.
type ProviderConfig struct {
	Provider     string
	BaseURL      string
	APIKey       string
	GeminiAPIKey string
	Model        string
}

// NewProvider builds the configured provider. A missing credential fails here,
// before any prompt is built or network touched.
func NewProvider(ctx context.Context, cfg ProviderConfig) (Provider, error) {
	switch cfg.Provider {
	case "openai", "":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("%w: set LLM_API_KEY", ErrMissingAPIKey)
		}
		return NewOpenAIProvider(cfg.BaseURL, cfg.APIKey, cfg.Model), nil

	case "gemini":
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("%w: set GEMINI_API_KEY", ErrMissingAPIKey)
		}
		return NewGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.Model)

	default:
		return nil, fmt.Errorf("unsupported LLM_PROVIDER: %s (supported: openai, gemini)", cfg.Provider)
	}
}
