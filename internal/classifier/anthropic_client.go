package classifier

import (
	"context"
	"errors"
	"strings"

	"fjacquet/nexus-classifier/internal/classifiererror"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const providerAnthropic = "anthropic"

// AnthropicClient implements CompletionClient for the Anthropic Messages API.
type AnthropicClient struct {
	client anthropic.Client
	model  string
}

// NewAnthropicClient creates a new Anthropic client. SDK retries are disabled:
// a failed attempt goes straight to the keyword fallback.
func NewAnthropicClient(apiKey, model, baseURL string) *AnthropicClient {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &AnthropicClient{
		client: anthropic.NewClient(opts...),
		model:  model,
	}
}

// Model returns the configured model identifier.
func (c *AnthropicClient) Model() string { return c.model }

// Provider returns "anthropic".
func (c *AnthropicClient) Provider() string { return providerAnthropic }

// Complete sends a single user message with the system prompt.
func (c *AnthropicClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	maxTokens := int64(req.MaxTokens)
	if maxTokens <= 0 {
		maxTokens = 256
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: maxTokens,
		System:    []anthropic.TextBlockParam{{Text: req.System}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.User)),
		},
		Temperature: anthropic.Float(float64(req.Temperature)),
	}

	resp, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", classifiererror.NewAIError(classifiererror.ErrAITransport, providerAnthropic, err)
	}

	var b strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	if b.Len() == 0 {
		return "", classifiererror.NewAIError(classifiererror.ErrAIResponse, providerAnthropic, errors.New("no text block in response"))
	}

	return b.String(), nil
}
