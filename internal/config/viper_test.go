package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearTestEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"NEXUS_LOG_LEVEL", "NEXUS_LOG_FORMAT",
		"NEXUS_AI_ENABLED", "NEXUS_AI_PROVIDER", "NEXUS_AI_MODEL", "NEXUS_AI_BASE_URL",
		"NEXUS_AI_TIMEOUT_MS", "NEXUS_AI_REQUESTS_PER_MINUTE", "NEXUS_AI_TEMPERATURE",
		"NEXUS_AI_MAX_TOKENS", "NEXUS_AI_API_KEY",
		"NEXUS_SERVER_HOST", "NEXUS_SERVER_PORT", "NEXUS_SERVER_MAX_TEXT_LENGTH",
		"NEXUS_CLASSIFIER_KEYWORDS_FILE", "NEXUS_BATCH_WORKERS",
		"GROQ_API_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY", "ANTHROPIC_API_KEY",
	} {
		t.Setenv(key, "")
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(originalDir))
	})
}

func TestInitializeConfig_Defaults(t *testing.T) {
	clearTestEnvVars(t)
	chdir(t, t.TempDir())

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.True(t, config.AI.Enabled)
	assert.Equal(t, ProviderGroq, config.AI.Provider)
	assert.Equal(t, "llama-3.3-70b-versatile", config.AI.Model)
	assert.Equal(t, 900, config.AI.TimeoutMs)
	assert.Equal(t, 120, config.AI.RequestsPerMinute)
	assert.InDelta(t, 0.2, config.AI.Temperature, 1e-9)
	assert.Equal(t, 256, config.AI.MaxTokens)
	assert.Equal(t, "", config.AI.APIKey)
	assert.Equal(t, "0.0.0.0", config.Server.Host)
	assert.Equal(t, 8000, config.Server.Port)
	assert.Equal(t, 2000, config.Server.MaxTextLength)
	assert.Equal(t, 4, config.Batch.Workers)
	assert.False(t, config.AIConfigured(), "no key means fallback mode")
	assert.Equal(t, "0.0.0.0:8000", config.Address())
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	clearTestEnvVars(t)
	chdir(t, t.TempDir())

	testEnvVars := map[string]string{
		"NEXUS_LOG_LEVEL":                "debug",
		"NEXUS_LOG_FORMAT":               "json",
		"NEXUS_AI_PROVIDER":              "Gemini",
		"NEXUS_AI_TIMEOUT_MS":            "500",
		"NEXUS_SERVER_PORT":              "9090",
		"NEXUS_CLASSIFIER_KEYWORDS_FILE": "/etc/nexus/keywords.yaml",
		"GEMINI_API_KEY":                 "gemini-test-key",
	}
	for key, value := range testEnvVars {
		t.Setenv(key, value)
	}

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, ProviderGemini, config.AI.Provider)
	assert.Equal(t, "gemini-2.0-flash", config.AI.Model)
	assert.Equal(t, 500, config.AI.TimeoutMs)
	assert.Equal(t, 9090, config.Server.Port)
	assert.Equal(t, "/etc/nexus/keywords.yaml", config.Classifier.KeywordsFile)
	assert.Equal(t, "gemini-test-key", config.AI.APIKey)
	assert.True(t, config.AIConfigured())
}

func TestInitializeConfig_ExplicitKeyWinsOverProviderKey(t *testing.T) {
	clearTestEnvVars(t)
	chdir(t, t.TempDir())

	t.Setenv("GROQ_API_KEY", "provider-key")
	t.Setenv("NEXUS_AI_API_KEY", "explicit-key")

	config, err := InitializeConfig()
	require.NoError(t, err)
	assert.Equal(t, "explicit-key", config.AI.APIKey)
}

func TestInitializeConfig_ConfigFile(t *testing.T) {
	clearTestEnvVars(t)

	tempDir := t.TempDir()
	configContent := `
log:
  level: "warn"
ai:
  provider: "anthropic"
  model: "claude-custom"
  timeout_ms: 700
server:
  port: 8081
  max_text_length: 500
batch:
  workers: 8
`
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(configContent), 0644))
	chdir(t, tempDir)

	// env var should override the file
	t.Setenv("NEXUS_SERVER_PORT", "8082")

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, ProviderAnthropic, config.AI.Provider)
	assert.Equal(t, "claude-custom", config.AI.Model)
	assert.Equal(t, 700, config.AI.TimeoutMs)
	assert.Equal(t, 8082, config.Server.Port)
	assert.Equal(t, 500, config.Server.MaxTextLength)
	assert.Equal(t, 8, config.Batch.Workers)
}

func TestInitializeConfig_AIDisabledWithKey(t *testing.T) {
	clearTestEnvVars(t)
	chdir(t, t.TempDir())

	t.Setenv("GROQ_API_KEY", "gsk_abcdefghijklmnopqrstuvwxyz")
	t.Setenv("NEXUS_AI_ENABLED", "false")

	config, err := InitializeConfig()
	require.NoError(t, err)
	assert.False(t, config.AIConfigured())
}

func validConfig() *Config {
	c := &Config{}
	c.Log.Level = "info"
	c.Log.Format = "text"
	c.AI.Provider = ProviderGroq
	c.AI.TimeoutMs = 900
	c.AI.RequestsPerMinute = 60
	c.AI.Temperature = 0.2
	c.AI.MaxTokens = 256
	c.Server.Port = 8000
	c.Server.MaxTextLength = 2000
	c.Batch.Workers = 4
	return c
}

func TestValidateConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name         string
		modifyConfig func(*Config)
		expectError  string
	}{
		{name: "invalid log level", modifyConfig: func(c *Config) { c.Log.Level = "loud" }, expectError: "invalid log level"},
		{name: "invalid log format", modifyConfig: func(c *Config) { c.Log.Format = "xml" }, expectError: "invalid log format"},
		{name: "unknown provider", modifyConfig: func(c *Config) { c.AI.Provider = "mistral" }, expectError: "unsupported ai.provider"},
		{name: "timeout too small", modifyConfig: func(c *Config) { c.AI.TimeoutMs = 10 }, expectError: "ai.timeout_ms"},
		{name: "negative rate", modifyConfig: func(c *Config) { c.AI.RequestsPerMinute = -1 }, expectError: "ai.requests_per_minute"},
		{name: "temperature too high", modifyConfig: func(c *Config) { c.AI.Temperature = 3 }, expectError: "ai.temperature"},
		{name: "max tokens too small", modifyConfig: func(c *Config) { c.AI.MaxTokens = 1 }, expectError: "ai.max_tokens"},
		{name: "bad port", modifyConfig: func(c *Config) { c.Server.Port = 0 }, expectError: "server.port"},
		{name: "bad max text length", modifyConfig: func(c *Config) { c.Server.MaxTextLength = 0 }, expectError: "server.max_text_length"},
		{name: "too many workers", modifyConfig: func(c *Config) { c.Batch.Workers = 100 }, expectError: "batch.workers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.modifyConfig(c)
			err := validateConfig(c)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}

	assert.NoError(t, validateConfig(validConfig()))
}

func TestMaskedAPIKey(t *testing.T) {
	c := validConfig()
	assert.Equal(t, "", c.MaskedAPIKey())

	c.AI.APIKey = "short"
	assert.Equal(t, "invalid", c.MaskedAPIKey())

	c.AI.APIKey = "gsk_0123456789abcdefghijklmnop"
	assert.Equal(t, "gsk_...", c.MaskedAPIKey())
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("NEXUS_TEST_ONLY_VAR=from-dotenv\n"), 0600))
	t.Setenv("NEXUS_TEST_ONLY_VAR", "")
	require.NoError(t, os.Unsetenv("NEXUS_TEST_ONLY_VAR"))

	loaded := loadEnvFile(filepath.Join(dir, "missing.env"), envFile)
	assert.Equal(t, envFile, loaded)
	assert.Equal(t, "from-dotenv", GetEnv("NEXUS_TEST_ONLY_VAR", "fallback"))
	assert.Equal(t, "fallback", GetEnv("NEXUS_TEST_UNSET_VAR_XYZ", "fallback"))
}
