package factory_test

import (
	"context"
	"testing"

	"fjacquet/nexus-classifier/internal/classifier"
	"fjacquet/nexus-classifier/internal/config"
	"fjacquet/nexus-classifier/internal/factory"
	"fjacquet/nexus-classifier/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCompletionClient(t *testing.T) {
	tests := []struct {
		name         string
		provider     factory.ProviderType
		settings     factory.ClientSettings
		expectError  bool
		expectedType interface{}
	}{
		{
			name:         "Groq",
			provider:     factory.Groq,
			settings:     factory.ClientSettings{APIKey: "gsk_key", Model: "llama-3.3-70b-versatile"},
			expectedType: &classifier.OpenAIClient{},
		},
		{
			name:         "OpenAI",
			provider:     factory.OpenAI,
			settings:     factory.ClientSettings{APIKey: "sk-key", Model: "gpt-4o-mini"},
			expectedType: &classifier.OpenAIClient{},
		},
		{
			name:         "Anthropic",
			provider:     factory.Anthropic,
			settings:     factory.ClientSettings{APIKey: "sk-ant-key", Model: "claude-3-5-haiku-latest"},
			expectedType: &classifier.AnthropicClient{},
		},
		{
			name:        "Missing key",
			provider:    factory.Groq,
			settings:    factory.ClientSettings{Model: "llama"},
			expectError: true,
		},
		{
			name:        "Unknown provider",
			provider:    "mistral",
			settings:    factory.ClientSettings{APIKey: "k"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := factory.GetCompletionClient(context.Background(), tt.provider, tt.settings, logging.NewMockLogger())

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, client)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.expectedType, client)
			assert.Equal(t, string(tt.provider), client.Provider())
			assert.Equal(t, tt.settings.Model, client.Model())
		})
	}
}

func TestNewCompletionClientFromConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.AI.Enabled = true
	cfg.AI.Provider = config.ProviderGroq
	cfg.AI.Model = "llama-3.3-70b-versatile"

	client, err := factory.NewCompletionClientFromConfig(context.Background(), cfg, logging.NewMockLogger())
	require.NoError(t, err)
	assert.Nil(t, client, "no key means no client")

	cfg.AI.APIKey = "gsk_0123456789abcdefghijklmnop"
	client, err = factory.NewCompletionClientFromConfig(context.Background(), cfg, logging.NewMockLogger())
	require.NoError(t, err)
	require.NotNil(t, client)
	assert.Equal(t, "groq", client.Provider())

	cfg.AI.Enabled = false
	client, err = factory.NewCompletionClientFromConfig(context.Background(), cfg, logging.NewMockLogger())
	require.NoError(t, err)
	assert.Nil(t, client)

	client, err = factory.NewCompletionClientFromConfig(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Nil(t, client)
}
