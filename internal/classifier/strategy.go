package classifier

import (
	"context"

	"fjacquet/nexus-classifier/internal/models"
)

// Strategy is one way of turning a message into a classification.
// There are two implementations: AIStrategy and KeywordStrategy.
type Strategy interface {
	// Name returns the name of this strategy for logging and debugging purposes.
	Name() string

	// Available reports whether the strategy can be attempted at all. The
	// orchestrator skips an unavailable strategy without calling Classify.
	Available() bool

	// Classify classifies text. A returned result is always complete and its
	// category always belongs to the taxonomy.
	Classify(ctx context.Context, text string) (models.ClassificationResult, error)
}

// KeywordSource supplies per-category keyword overrides loaded at start-up.
type KeywordSource interface {
	LoadKeywordOverrides() (map[models.Category][]string, error)
}
