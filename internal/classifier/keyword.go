package classifier

import (
	"context"
	"fmt"
	"strings"

	"fjacquet/nexus-classifier/internal/logging"
	"fjacquet/nexus-classifier/internal/models"
	"fjacquet/nexus-classifier/internal/textutils"
)

type keyword struct {
	original   string
	normalized string
}

// KeywordStrategy implements classification using keyword matching over
// per-category keyword tables. It never fails and never blocks.
type KeywordStrategy struct {
	categories []models.Category
	// keywords[i] belongs to categories[i]; built once, read-only afterwards.
	keywords [][]keyword
	logger   logging.Logger
}

// NewKeywordStrategy creates a KeywordStrategy from the built-in keyword table.
// A category present in overrides has its keyword list replaced entirely.
func NewKeywordStrategy(overrides map[models.Category][]string, logger logging.Logger) *KeywordStrategy {
	if logger == nil {
		logger = logging.GetLogger()
	}

	categories := models.Categories()
	s := &KeywordStrategy{
		categories: categories,
		keywords:   make([][]keyword, len(categories)),
		logger:     logger,
	}

	for i, category := range categories {
		source := defaultKeywords[category]
		if override, ok := overrides[category]; ok {
			source = override
		}
		s.keywords[i] = buildKeywords(source)
	}

	return s
}

// NewKeywordStrategyFromSource loads keyword overrides from source and builds
// the strategy from them.
func NewKeywordStrategyFromSource(source KeywordSource, logger logging.Logger) (*KeywordStrategy, error) {
	if source == nil {
		return NewKeywordStrategy(nil, logger), nil
	}
	overrides, err := source.LoadKeywordOverrides()
	if err != nil {
		return nil, fmt.Errorf("failed to load keyword overrides: %w", err)
	}
	return NewKeywordStrategy(overrides, logger), nil
}

func buildKeywords(source []string) []keyword {
	seen := make(map[string]bool, len(source))
	out := make([]keyword, 0, len(source))
	for _, kw := range source {
		normalized := textutils.Normalize(kw)
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true
		out = append(out, keyword{original: strings.TrimSpace(kw), normalized: normalized})
	}
	return out
}

// Name returns the name of this strategy for logging and debugging.
func (s *KeywordStrategy) Name() string {
	return "Keyword"
}

// Available always returns true.
func (s *KeywordStrategy) Available() bool {
	return true
}

// Classify implements Strategy. It never returns an error.
func (s *KeywordStrategy) Classify(_ context.Context, text string) (models.ClassificationResult, error) {
	return s.Evaluate(text), nil
}

// Evaluate scores every category by the number of distinct keywords found in
// text and returns the best one. Ties go to the category declared first; no
// match at all yields the default category.
func (s *KeywordStrategy) Evaluate(text string) models.ClassificationResult {
	normalized := textutils.Normalize(text)

	best := models.DefaultCategory
	var bestMatches []string
	for i, category := range s.categories {
		var matches []string
		for _, kw := range s.keywords[i] {
			if textutils.ContainsPhrase(normalized, kw.normalized) {
				matches = append(matches, kw.original)
			}
		}
		if len(matches) > len(bestMatches) {
			best = category
			bestMatches = matches
		}
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldStrategy, Value: s.Name()},
		logging.Field{Key: logging.FieldCategory, Value: best.String()},
		logging.Field{Key: logging.FieldMatches, Value: len(bestMatches)},
	).Debug("Heuristic classification completed")

	return models.ClassificationResult{
		Category:  best,
		Reasoning: heuristicReasoning(best, bestMatches),
		Model:     models.HeuristicModel,
		Strategy:  models.StrategyHeuristic,
	}
}

// Keywords returns a copy of the keywords configured for category, in their
// original spelling.
func (s *KeywordStrategy) Keywords(category models.Category) []string {
	i := category.Index()
	if i < 0 {
		return nil
	}
	out := make([]string, len(s.keywords[i]))
	for j, kw := range s.keywords[i] {
		out[j] = kw.original
	}
	return out
}

func heuristicReasoning(category models.Category, matches []string) string {
	if len(matches) == 0 {
		return fmt.Sprintf("Nenhum termo-chave relevante identificado; categoria padrão %s aplicada.", category)
	}
	quoted := make([]string, len(matches))
	for i, m := range matches {
		quoted[i] = `"` + m + `"`
	}
	return fmt.Sprintf("Identificados %d termo(s)-chave de %s: %s.", len(matches), category, strings.Join(quoted, ", "))
}
