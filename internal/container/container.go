// Package container provides dependency injection for the nexus-classifier application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"context"
	"fmt"
	"io"
	"time"

	"fjacquet/nexus-classifier/internal/batch"
	"fjacquet/nexus-classifier/internal/classifier"
	"fjacquet/nexus-classifier/internal/config"
	"fjacquet/nexus-classifier/internal/factory"
	"fjacquet/nexus-classifier/internal/logging"
	"fjacquet/nexus-classifier/internal/server"
	"fjacquet/nexus-classifier/internal/store"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation - all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger     logging.Logger
	config     *config.Config
	store      *store.KeywordStore
	aiClient   classifier.CompletionClient
	keywords   *classifier.KeywordStrategy
	aiStrategy *classifier.AIStrategy
	classifier *classifier.Classifier
}

// NewContainer creates and wires all application dependencies, with a logger
// built from the configuration.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(ctx, cfg, logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format))
}

// NewContainerWithLogger creates and wires all application dependencies using logger.
func NewContainerWithLogger(ctx context.Context, cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		logger = logging.GetLogger()
	}

	keywordStore := store.NewKeywordStore(cfg.Classifier.KeywordsFile, logger)
	keywords, err := classifier.NewKeywordStrategyFromSource(keywordStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build keyword strategy: %w", err)
	}

	aiClient, err := factory.NewCompletionClientFromConfig(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create completion client: %w", err)
	}

	if aiClient != nil {
		logger.Info("AI classification enabled",
			logging.Field{Key: logging.FieldProvider, Value: aiClient.Provider()},
			logging.Field{Key: logging.FieldModel, Value: aiClient.Model()},
			logging.Field{Key: "api_key", Value: cfg.MaskedAPIKey()})
	} else {
		logger.Warn("AI classification disabled, using keyword fallback only",
			logging.Field{Key: logging.FieldProvider, Value: cfg.AI.Provider},
			logging.Field{Key: logging.FieldReason, Value: disabledReason(cfg)})
	}

	aiStrategy := classifier.NewAIStrategy(aiClient, classifier.AIStrategyOptions{
		Timeout:           time.Duration(cfg.AI.TimeoutMs) * time.Millisecond,
		RequestsPerMinute: cfg.AI.RequestsPerMinute,
		Temperature:       float32(cfg.AI.Temperature),
		MaxTokens:         cfg.AI.MaxTokens,
	}, logger)

	cls := classifier.NewClassifier(aiStrategy, keywords, logger)

	logger.Debug("Container initialized successfully",
		logging.Field{Key: "mode", Value: cls.Mode()})

	return &Container{
		logger:     logger,
		config:     cfg,
		store:      keywordStore,
		aiClient:   aiClient,
		keywords:   keywords,
		aiStrategy: aiStrategy,
		classifier: cls,
	}, nil
}

func disabledReason(cfg *config.Config) string {
	if !cfg.AI.Enabled {
		return "ai.enabled is false"
	}
	return "no API key configured"
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetStore returns the keyword store.
func (c *Container) GetStore() *store.KeywordStore {
	return c.store
}

// GetAIClient returns the completion client, or nil when AI is not configured.
func (c *Container) GetAIClient() classifier.CompletionClient {
	return c.aiClient
}

// GetKeywordStrategy returns the fallback strategy.
func (c *Container) GetKeywordStrategy() *classifier.KeywordStrategy {
	return c.keywords
}

// GetClassifier returns the orchestrator.
func (c *Container) GetClassifier() *classifier.Classifier {
	return c.classifier
}

// NewServer builds the HTTP server around the classifier.
func (c *Container) NewServer(version string) *server.Server {
	return server.New(c.classifier, server.Options{
		MaxTextLength: c.config.Server.MaxTextLength,
		Version:       version,
	}, c.logger)
}

// NewBatchProcessor builds a batch processor using the configured worker count.
func (c *Container) NewBatchProcessor(delimiter rune) *batch.Processor {
	return batch.NewProcessor(c.classifier, c.config.Batch.Workers, delimiter, c.logger)
}

// Close releases the completion client when it holds resources.
func (c *Container) Close() error {
	if closer, ok := c.aiClient.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			return fmt.Errorf("failed to close completion client: %w", err)
		}
	}
	c.logger.Debug("Container closed")
	return nil
}
