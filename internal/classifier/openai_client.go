package classifier

import (
	"context"
	"errors"
	"strings"

	"fjacquet/nexus-classifier/internal/classifiererror"
	"fjacquet/nexus-classifier/internal/logging"

	"github.com/sashabaranov/go-openai"
)

// GroqBaseURL is the OpenAI-compatible endpoint of Groq.
const GroqBaseURL = "https://api.groq.com/openai/v1"

// OpenAIClient implements CompletionClient for OpenAI-compatible chat
// completion APIs (OpenAI itself and Groq).
type OpenAIClient struct {
	client   *openai.Client
	model    string
	provider string
	logger   logging.Logger
}

// NewOpenAIClient creates a client for provider. An empty baseURL selects the
// provider's public endpoint.
func NewOpenAIClient(provider, apiKey, model, baseURL string, logger logging.Logger) *OpenAIClient {
	if logger == nil {
		logger = logging.GetLogger()
	}

	clientConfig := openai.DefaultConfig(apiKey)
	switch {
	case baseURL != "":
		clientConfig.BaseURL = strings.TrimRight(baseURL, "/")
	case provider == "groq":
		clientConfig.BaseURL = GroqBaseURL
	}

	return &OpenAIClient{
		client:   openai.NewClientWithConfig(clientConfig),
		model:    model,
		provider: provider,
		logger:   logger,
	}
}

// Model returns the configured model identifier.
func (c *OpenAIClient) Model() string { return c.model }

// Provider returns the provider name.
func (c *OpenAIClient) Provider() string { return c.provider }

// Complete sends a system + user chat completion and returns the first choice.
func (c *OpenAIClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	chatReq := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.User},
		},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.JSONMode {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := c.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			c.logger.WithFields(
				logging.Field{Key: logging.FieldProvider, Value: c.provider},
				logging.Field{Key: logging.FieldStatus, Value: apiErr.HTTPStatusCode},
			).Debug("Completion API returned an error status")
		}
		return "", classifiererror.NewAIError(classifiererror.ErrAITransport, c.provider, err)
	}

	if len(resp.Choices) == 0 {
		return "", classifiererror.NewAIError(classifiererror.ErrAIResponse, c.provider, errors.New("empty choices"))
	}

	return resp.Choices[0].Message.Content, nil
}
