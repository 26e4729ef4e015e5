package classifier

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"fjacquet/nexus-classifier/internal/models"
)

// defaultAIReasoning is used when the model returns a category without reasoning.
const defaultAIReasoning = "Classificação via IA"

type completionPayload struct {
	Category  string `json:"category"`
	Reasoning string `json:"reasoning"`
}

// parseCompletion extracts the JSON object of a model reply. Text around the
// object (code fences, a leading sentence) is ignored. The returned category is
// already coerced into the taxonomy; inTaxonomy tells whether coercion was
// needed.
func parseCompletion(reply string) (category models.Category, reasoning string, inTaxonomy bool, err error) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end < start {
		return "", "", false, errors.New("reply contains no JSON object")
	}

	var payload completionPayload
	if err := json.Unmarshal([]byte(reply[start:end+1]), &payload); err != nil {
		return "", "", false, fmt.Errorf("failed to decode reply: %w", err)
	}

	if strings.TrimSpace(payload.Category) == "" {
		return "", "", false, errors.New("reply has no category")
	}

	_, inTaxonomy = models.ParseCategory(payload.Category)
	reasoning = strings.TrimSpace(payload.Reasoning)
	if reasoning == "" {
		reasoning = defaultAIReasoning
	}

	return models.CoerceCategory(payload.Category), reasoning, inTaxonomy, nil
}
