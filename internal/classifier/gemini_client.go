package classifier

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fjacquet/nexus-classifier/internal/classifiererror"
	"fjacquet/nexus-classifier/internal/logging"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const providerGemini = "gemini"

// GeminiClient implements CompletionClient for the Google Gemini API.
type GeminiClient struct {
	client    *genai.Client
	modelName string
	logger    logging.Logger
}

// NewGeminiClient creates a new Gemini client. The returned client must be closed.
func NewGeminiClient(ctx context.Context, apiKey, modelName string, logger logging.Logger) (*GeminiClient, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client:    client,
		modelName: modelName,
		logger:    logger,
	}, nil
}

// Model returns the configured model identifier.
func (c *GeminiClient) Model() string { return c.modelName }

// Provider returns "gemini".
func (c *GeminiClient) Provider() string { return providerGemini }

// Complete sends the prompt as a single text turn. Gemini has no separate
// system role in this API version, so the system prompt leads the text.
func (c *GeminiClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	// a fresh model handle per call keeps generation settings request-local
	model := c.client.GenerativeModel(c.modelName)
	model.SetTemperature(req.Temperature)
	if req.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(req.MaxTokens))
	}

	prompt := req.System + "\n\nMensagem do usuário:\n" + req.User
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", classifiererror.NewAIError(classifiererror.ErrAITransport, providerGemini, err)
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil ||
		len(resp.Candidates[0].Content.Parts) == 0 {
		return "", classifiererror.NewAIError(classifiererror.ErrAIResponse, providerGemini, errors.New("no content in Gemini response"))
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}

	c.logger.WithFields(
		logging.Field{Key: logging.FieldProvider, Value: providerGemini},
		logging.Field{Key: logging.FieldTextSize, Value: b.Len()},
	).Debug("Gemini response received")

	return b.String(), nil
}

// Close releases the underlying gRPC connection.
func (c *GeminiClient) Close() error {
	return c.client.Close()
}
