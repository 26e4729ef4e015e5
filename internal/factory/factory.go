// Package factory builds the completion client selected by configuration.
package factory

import (
	"context"
	"fmt"

	"fjacquet/nexus-classifier/internal/classifier"
	"fjacquet/nexus-classifier/internal/config"
	"fjacquet/nexus-classifier/internal/logging"
)

// ProviderType identifies a completion provider.
type ProviderType string

const (
	Groq      ProviderType = config.ProviderGroq
	OpenAI    ProviderType = config.ProviderOpenAI
	Gemini    ProviderType = config.ProviderGemini
	Anthropic ProviderType = config.ProviderAnthropic
)

// ClientSettings carries what a provider client needs to be built.
type ClientSettings struct {
	APIKey  string
	Model   string
	BaseURL string
}

// GetCompletionClient returns a new client for the given provider.
// The absence of an API key is detected here, before any network call.
func GetCompletionClient(ctx context.Context, provider ProviderType, settings ClientSettings, logger logging.Logger) (classifier.CompletionClient, error) {
	if settings.APIKey == "" {
		return nil, fmt.Errorf("no API key configured for provider %s", provider)
	}
	if logger == nil {
		logger = logging.GetLogger()
	}

	switch provider {
	case Groq, OpenAI:
		return classifier.NewOpenAIClient(string(provider), settings.APIKey, settings.Model, settings.BaseURL, logger), nil
	case Gemini:
		client, err := classifier.NewGeminiClient(ctx, settings.APIKey, settings.Model, logger)
		if err != nil {
			return nil, err
		}
		return client, nil
	case Anthropic:
		return classifier.NewAnthropicClient(settings.APIKey, settings.Model, settings.BaseURL), nil
	default:
		return nil, fmt.Errorf("unknown provider type: %s", provider)
	}
}

// NewCompletionClientFromConfig builds the client described by cfg. It returns
// a nil client and no error when AI is disabled or no key is configured: the
// classifier then runs on the keyword strategy alone.
func NewCompletionClientFromConfig(ctx context.Context, cfg *config.Config, logger logging.Logger) (classifier.CompletionClient, error) {
	if cfg == nil || !cfg.AIConfigured() {
		return nil, nil
	}
	return GetCompletionClient(ctx, ProviderType(cfg.AI.Provider), ClientSettings{
		APIKey:  cfg.AI.APIKey,
		Model:   cfg.AI.Model,
		BaseURL: cfg.AI.BaseURL,
	}, logger)
}
