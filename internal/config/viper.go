// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Supported AI providers.
const (
	ProviderGroq      = "groq"
	ProviderOpenAI    = "openai"
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
)

var providerDefaults = map[string]struct {
	model  string
	envKey string
}{
	ProviderGroq:      {model: "llama-3.3-70b-versatile", envKey: "GROQ_API_KEY"},
	ProviderOpenAI:    {model: "gpt-4o-mini", envKey: "OPENAI_API_KEY"},
	ProviderGemini:    {model: "gemini-2.0-flash", envKey: "GEMINI_API_KEY"},
	ProviderAnthropic: {model: "claude-3-5-haiku-latest", envKey: "ANTHROPIC_API_KEY"},
}

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	AI struct {
		Enabled           bool    `mapstructure:"enabled" yaml:"enabled"`
		Provider          string  `mapstructure:"provider" yaml:"provider"`
		Model             string  `mapstructure:"model" yaml:"model"`
		BaseURL           string  `mapstructure:"base_url" yaml:"base_url"`
		TimeoutMs         int     `mapstructure:"timeout_ms" yaml:"timeout_ms"`
		RequestsPerMinute int     `mapstructure:"requests_per_minute" yaml:"requests_per_minute"`
		Temperature       float64 `mapstructure:"temperature" yaml:"temperature"`
		MaxTokens         int     `mapstructure:"max_tokens" yaml:"max_tokens"`
		APIKey            string  `mapstructure:"api_key" yaml:"-"` // Never serialize API key
	} `mapstructure:"ai" yaml:"ai"`

	Server struct {
		Host          string `mapstructure:"host" yaml:"host"`
		Port          int    `mapstructure:"port" yaml:"port"`
		MaxTextLength int    `mapstructure:"max_text_length" yaml:"max_text_length"`
	} `mapstructure:"server" yaml:"server"`

	Classifier struct {
		KeywordsFile string `mapstructure:"keywords_file" yaml:"keywords_file"`
	} `mapstructure:"classifier" yaml:"classifier"`

	Batch struct {
		Workers int `mapstructure:"workers" yaml:"workers"`
	} `mapstructure:"batch" yaml:"batch"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.nexus-classifier")
	v.AddConfigPath(".nexus-classifier")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("NEXUS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.AI.Provider = strings.ToLower(strings.TrimSpace(config.AI.Provider))
	applyProviderDefaults(&config)

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("ai.enabled", true)
	v.SetDefault("ai.provider", ProviderGroq)
	v.SetDefault("ai.model", "")
	v.SetDefault("ai.base_url", "")
	v.SetDefault("ai.timeout_ms", 900)
	v.SetDefault("ai.requests_per_minute", 120)
	v.SetDefault("ai.temperature", 0.2)
	v.SetDefault("ai.max_tokens", 256)
	v.SetDefault("ai.api_key", "")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.max_text_length", 2000)

	v.SetDefault("classifier.keywords_file", "")

	v.SetDefault("batch.workers", 4)
}

// applyProviderDefaults fills the model and the API key from the provider's
// conventions when they were not configured explicitly.
func applyProviderDefaults(config *Config) {
	defaults, ok := providerDefaults[config.AI.Provider]
	if !ok {
		return
	}
	if strings.TrimSpace(config.AI.Model) == "" {
		config.AI.Model = defaults.model
	}
	if strings.TrimSpace(config.AI.APIKey) == "" {
		config.AI.APIKey = strings.TrimSpace(GetEnv(defaults.envKey, ""))
	}
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if _, ok := providerDefaults[config.AI.Provider]; !ok {
		return fmt.Errorf("unsupported ai.provider: %q (must be one of groq, openai, gemini, anthropic)", config.AI.Provider)
	}

	// A missing API key is not an error: the classifier runs on the keyword fallback.
	if config.AI.TimeoutMs < 50 || config.AI.TimeoutMs > 30000 {
		return fmt.Errorf("ai.timeout_ms must be between 50 and 30000, got: %d", config.AI.TimeoutMs)
	}

	if config.AI.RequestsPerMinute < 0 || config.AI.RequestsPerMinute > 100000 {
		return fmt.Errorf("ai.requests_per_minute must be between 0 and 100000, got: %d", config.AI.RequestsPerMinute)
	}

	if config.AI.Temperature < 0.0 || config.AI.Temperature > 2.0 {
		return fmt.Errorf("ai.temperature must be between 0.0 and 2.0, got: %f", config.AI.Temperature)
	}

	if config.AI.MaxTokens < 16 || config.AI.MaxTokens > 4096 {
		return fmt.Errorf("ai.max_tokens must be between 16 and 4096, got: %d", config.AI.MaxTokens)
	}

	if config.Server.Port < 1 || config.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got: %d", config.Server.Port)
	}

	if config.Server.MaxTextLength < 1 {
		return fmt.Errorf("server.max_text_length must be positive, got: %d", config.Server.MaxTextLength)
	}

	if config.Batch.Workers < 1 || config.Batch.Workers > 64 {
		return fmt.Errorf("batch.workers must be between 1 and 64, got: %d", config.Batch.Workers)
	}

	return nil
}

// AIConfigured reports whether the AI strategy can be attempted: enabled and
// holding a credential.
func (c *Config) AIConfigured() bool {
	return c.AI.Enabled && strings.TrimSpace(c.AI.APIKey) != ""
}

// MaskedAPIKey returns a loggable form of the API key.
func (c *Config) MaskedAPIKey() string {
	key := strings.TrimSpace(c.AI.APIKey)
	switch {
	case key == "":
		return ""
	case len(key) > 20:
		return key[:4] + "..."
	default:
		return "invalid"
	}
}

// Address returns the host:port the HTTP server listens on.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
