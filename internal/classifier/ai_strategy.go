package classifier

import (
	"context"
	"errors"
	"time"

	"fjacquet/nexus-classifier/internal/classifiererror"
	"fjacquet/nexus-classifier/internal/logging"
	"fjacquet/nexus-classifier/internal/models"

	"golang.org/x/time/rate"
)

// DefaultAITimeout bounds a single completion call.
const DefaultAITimeout = 900 * time.Millisecond

// AIStrategyOptions tunes the AI strategy.
type AIStrategyOptions struct {
	Timeout time.Duration
	// RequestsPerMinute caps outgoing calls; 0 disables the limit.
	RequestsPerMinute int
	Temperature       float32
	MaxTokens         int
}

// AIStrategy implements classification through an external completion service.
// A nil client means no credentials were configured and the strategy is unavailable.
type AIStrategy struct {
	client       CompletionClient
	limiter      *rate.Limiter
	timeout      time.Duration
	temperature  float32
	maxTokens    int
	systemPrompt string
	logger       logging.Logger
}

// NewAIStrategy creates a new AIStrategy instance.
func NewAIStrategy(client CompletionClient, opts AIStrategyOptions, logger logging.Logger) *AIStrategy {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultAITimeout
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = 256
	}

	s := &AIStrategy{
		client:       client,
		timeout:      opts.Timeout,
		temperature:  opts.Temperature,
		maxTokens:    opts.MaxTokens,
		systemPrompt: BuildSystemPrompt(),
		logger:       logger,
	}
	if opts.RequestsPerMinute > 0 {
		perSecond := rate.Limit(float64(opts.RequestsPerMinute) / 60.0)
		s.limiter = rate.NewLimiter(perSecond, opts.RequestsPerMinute)
	}
	return s
}

// Name returns the name of this strategy for logging and debugging.
func (s *AIStrategy) Name() string {
	return "AI"
}

// Available reports whether a completion client is configured.
func (s *AIStrategy) Available() bool {
	return s.client != nil
}

// Model returns the model identifier of the configured client, or "".
func (s *AIStrategy) Model() string {
	if s.client == nil {
		return ""
	}
	return s.client.Model()
}

func (s *AIStrategy) provider() string {
	if s.client == nil {
		return "none"
	}
	return s.client.Provider()
}

// Classify asks the completion service for a category. Every failure is an
// *classifiererror.AIError of kind ErrAIUnavailable, ErrAITransport or ErrAIResponse.
func (s *AIStrategy) Classify(ctx context.Context, text string) (models.ClassificationResult, error) {
	if s.client == nil {
		return models.ClassificationResult{}, classifiererror.NewAIError(
			classifiererror.ErrAIUnavailable, s.provider(), errors.New("no completion client configured"))
	}

	if s.limiter != nil && !s.limiter.Allow() {
		return models.ClassificationResult{}, classifiererror.NewAIError(
			classifiererror.ErrAIUnavailable, s.provider(), errors.New("rate limit exceeded"))
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	reply, err := s.client.Complete(callCtx, CompletionRequest{
		System:      s.systemPrompt,
		User:        text,
		Temperature: s.temperature,
		MaxTokens:   s.maxTokens,
		JSONMode:    true,
	})
	elapsed := time.Since(start)
	if err != nil {
		if classifiererror.Kind(err) != nil {
			return models.ClassificationResult{}, err
		}
		return models.ClassificationResult{}, classifiererror.NewAIError(classifiererror.ErrAITransport, s.provider(), err)
	}
	if ctxErr := callCtx.Err(); ctxErr != nil {
		// a client that ignores its context still must not win after the deadline
		return models.ClassificationResult{}, classifiererror.NewAIError(classifiererror.ErrAITransport, s.provider(), ctxErr)
	}

	category, reasoning, inTaxonomy, err := parseCompletion(reply)
	if err != nil {
		return models.ClassificationResult{}, classifiererror.NewAIError(classifiererror.ErrAIResponse, s.provider(), err)
	}

	if !inTaxonomy {
		s.logger.WithFields(
			logging.Field{Key: logging.FieldProvider, Value: s.provider()},
			logging.Field{Key: logging.FieldCategory, Value: category.String()},
		).Warn("AI label outside taxonomy, coerced to default category")
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldStrategy, Value: s.Name()},
		logging.Field{Key: logging.FieldProvider, Value: s.provider()},
		logging.Field{Key: logging.FieldModel, Value: s.client.Model()},
		logging.Field{Key: logging.FieldCategory, Value: category.String()},
		logging.Field{Key: logging.FieldDuration, Value: elapsed.Milliseconds()},
	).Info("AI classification succeeded")

	return models.ClassificationResult{
		Category:  category,
		Reasoning: reasoning,
		Model:     s.client.Model(),
		Strategy:  models.StrategyAI,
	}, nil
}
