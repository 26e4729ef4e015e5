package models

// StrategyName tags the mechanism that produced a classification.
type StrategyName string

const (
	// StrategyAI marks results produced by a language model.
	StrategyAI StrategyName = "LLM"
	// StrategyHeuristic marks results produced by the keyword rule engine.
	StrategyHeuristic StrategyName = "Fallback-Heuristic"
)

// HeuristicModel is the model identifier reported by the keyword rule engine.
const HeuristicModel = "Keywords-Heuristic"

// ClassificationRequest is the inbound payload of a classification.
type ClassificationRequest struct {
	Text string `json:"text"`
}

// ClassificationResult is what a strategy produces for a single text.
type ClassificationResult struct {
	Category  Category
	Reasoning string
	Model     string
	Strategy  StrategyName
}

// ClassificationResponse is the externally visible form of a ClassificationResult.
type ClassificationResponse struct {
	Category  string `json:"category"`
	Reasoning string `json:"reasoning"`
	Model     string `json:"model"`
	Strategy  string `json:"strategy"`
}

// Response converts the result into its wire form.
func (r ClassificationResult) Response() ClassificationResponse {
	return ClassificationResponse{
		Category:  string(r.Category),
		Reasoning: r.Reasoning,
		Model:     r.Model,
		Strategy:  string(r.Strategy),
	}
}

// IsComplete reports whether every field of the result is populated and the
// category belongs to the taxonomy.
func (r ClassificationResult) IsComplete() bool {
	return r.Category.IsValid() &&
		r.Reasoning != "" &&
		r.Model != "" &&
		(r.Strategy == StrategyAI || r.Strategy == StrategyHeuristic)
}
