// Package classifier classifies legal-support messages into a closed taxonomy.
// The Classifier tries an AI strategy first and always falls back to the
// keyword strategy, so a valid request never fails.
package classifier

import (
	"context"
	"fmt"
	"time"

	"fjacquet/nexus-classifier/internal/classifiererror"
	"fjacquet/nexus-classifier/internal/logging"
	"fjacquet/nexus-classifier/internal/models"
	"fjacquet/nexus-classifier/internal/textutils"
)

// Mode names reported by the health endpoint.
const (
	ModeAI       = "LLM"
	ModeFallback = "Fallback"
)

type state int

const (
	stateValidate state = iota
	stateAttemptAI
	stateFallback
	stateDone
)

// Classifier orchestrates the primary and fallback strategies.
type Classifier struct {
	primary  Strategy
	fallback *KeywordStrategy
	logger   logging.Logger
}

// NewClassifier creates a Classifier. primary may be nil, in which case every
// request is answered by the fallback.
func NewClassifier(primary Strategy, fallback *KeywordStrategy, logger logging.Logger) *Classifier {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if fallback == nil {
		fallback = NewKeywordStrategy(nil, logger)
	}
	return &Classifier{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// Mode returns ModeAI when the primary strategy can be attempted, ModeFallback otherwise.
func (c *Classifier) Mode() string {
	if c.primary != nil && c.primary.Available() {
		return ModeAI
	}
	return ModeFallback
}

// Model returns the model identifier of the active mode.
func (c *Classifier) Model() string {
	if c.Mode() == ModeAI {
		if m, ok := c.primary.(interface{ Model() string }); ok && m.Model() != "" {
			return m.Model()
		}
	}
	return models.HeuristicModel
}

// Classify validates req and classifies its text. The only error it returns
// is a *classifiererror.ValidationError; every AI failure ends in the fallback.
func (c *Classifier) Classify(ctx context.Context, req models.ClassificationRequest) (models.ClassificationResponse, error) {
	start := time.Now()
	logger := c.logger.WithField(logging.FieldTextSize, len(req.Text))

	var result models.ClassificationResult
	for st := stateValidate; st != stateDone; {
		switch st {
		case stateValidate:
			if textutils.IsBlank(req.Text) {
				logger.Debug("Rejected empty classification request")
				return models.ClassificationResponse{}, &classifiererror.ValidationError{
					Field:  "text",
					Reason: "must not be empty",
				}
			}
			st = stateAttemptAI

		case stateAttemptAI:
			if c.primary == nil || !c.primary.Available() {
				logger.Debug("AI strategy not configured, using fallback")
				st = stateFallback
				continue
			}
			r, err := c.attempt(ctx, req.Text)
			if err != nil {
				logger.WithError(err).WithFields(
					logging.Field{Key: logging.FieldErrorKind, Value: errorKindName(err)},
					logging.Field{Key: logging.FieldStrategy, Value: c.primary.Name()},
				).Warn("AI classification failed, using fallback")
				st = stateFallback
				continue
			}
			result = r
			st = stateDone

		case stateFallback:
			result = c.fallback.Evaluate(req.Text)
			st = stateDone
		}
	}

	logger.WithFields(
		logging.Field{Key: logging.FieldCategory, Value: result.Category.String()},
		logging.Field{Key: logging.FieldStrategy, Value: string(result.Strategy)},
		logging.Field{Key: logging.FieldModel, Value: result.Model},
		logging.Field{Key: logging.FieldDuration, Value: time.Since(start).Milliseconds()},
	).Info("Message classified")

	return result.Response(), nil
}

// attempt runs the primary strategy, turning a panic or an incomplete result
// into an ErrAIResponse.
func (c *Classifier) attempt(ctx context.Context, text string) (result models.ClassificationResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = classifiererror.NewAIError(classifiererror.ErrAIResponse, c.primary.Name(), fmt.Errorf("panic: %v", r))
		}
	}()

	result, err = c.primary.Classify(ctx, text)
	if err != nil {
		return models.ClassificationResult{}, err
	}
	if !result.IsComplete() {
		return models.ClassificationResult{}, classifiererror.NewAIError(
			classifiererror.ErrAIResponse, c.primary.Name(), fmt.Errorf("incomplete result: %+v", result))
	}
	return result, nil
}

func errorKindName(err error) string {
	switch classifiererror.Kind(err) {
	case classifiererror.ErrAIUnavailable:
		return "unavailable"
	case classifiererror.ErrAITransport:
		return "transport"
	case classifiererror.ErrAIResponse:
		return "response"
	default:
		return "unknown"
	}
}
