package openai

import (
	"context"
	"fmt"
	"strings"
	"time"

	oai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"lifesim/pkg/evaluator"
)

// DefaultModel is the chat model used when none is configured.
const DefaultModel = "gpt-4o-mini"

// Client is an OpenAI-compatible chat-completions evaluator. The base URL
// is configurable so any compatible endpoint can serve as the provider.
type Client struct {
	client      oai.Client
	model       string
	temperature float64
	topP        float64
}

// NewClient creates a client for the given key. baseURL may be empty to use
// the official OpenAI endpoint.
func NewClient(apiKey, baseURL, model string, temperature, topP float64) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	if model == "" {
		model = DefaultModel
	}

	return &Client{
		client:      oai.NewClient(opts...),
		model:       model,
		temperature: temperature,
		topP:        topP,
	}
}

// Evaluate sends the fixed evaluator instruction plus the user's daily log
// and returns the raw text reply.
func (c *Client) Evaluate(logText string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	params := oai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.model),
		Messages: []oai.ChatCompletionMessageParamUnion{
			oai.SystemMessage(evaluator.Prompt),
			oai.UserMessage("User log: " + logText),
		},
		Temperature: oai.Float(c.temperature),
		TopP:        oai.Float(c.topP),
		MaxTokens:   oai.Int(256),
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if resp == nil || len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from model %s", c.model)
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// IsRateLimitOrAuthError reports whether the error from the SDK looks like
// throttling or a credential problem. The SDK does not expose typed status
// errors across compatible backends, so this matches on the message.
func IsRateLimitOrAuthError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "429") ||
		strings.Contains(errStr, "401") ||
		strings.Contains(errStr, "403") ||
		strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "unauthorized")
}
