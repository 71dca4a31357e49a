package gemini

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"lifesim/pkg/evaluator"
)

const (
	defaultAPIBase = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultModel is the generation model used when none is configured.
	DefaultModel = "gemini-1.5-flash-latest"
)

// Client calls the Gemini generateContent API for stat evaluation.
type Client struct {
	apiKey  string
	model   string
	client  *http.Client
	apiBase string
}

// NewClient creates a Gemini client for the given key and model.
func NewClient(apiKey, model string) *Client {
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		apiKey: apiKey,
		model:  model,
		client: &http.Client{
			Timeout: 90 * time.Second,
		},
		apiBase: defaultAPIBase,
	}
}

// APIError captures non-200 responses to allow inspection of the status code.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini API error (status %d): %s", e.StatusCode, e.Body)
}

// IsAuth reports whether the error indicates an invalid or unauthorized key.
func (e *APIError) IsAuth() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// IsRateLimit reports whether the error indicates request throttling.
func (e *APIError) IsRateLimit() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// Request types for the Gemini API
type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback struct {
		BlockReason string `json:"blockReason,omitempty"`
	} `json:"promptFeedback,omitempty"`
}

// Evaluate sends the fixed evaluator instruction plus the user's daily log
// and returns the raw text reply.
func (c *Client) Evaluate(logText string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("gemini API key not configured")
	}

	reqBody := geminiRequest{
		Contents: []geminiContent{
			{
				Parts: []geminiPart{
					{Text: evaluator.BuildInput(logText)},
				},
			},
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.apiBase, c.model, c.apiKey)
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to perform request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		bodyStr := string(bodyBytes)
		if len(bodyStr) > 200 {
			bodyStr = bodyStr[:200] + "...(truncated)"
		}
		return "", &APIError{
			StatusCode: resp.StatusCode,
			Body:       bodyStr,
		}
	}

	var geminiResp geminiResponse
	if err := json.Unmarshal(bodyBytes, &geminiResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if geminiResp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("content blocked: %s", geminiResp.PromptFeedback.BlockReason)
	}

	if len(geminiResp.Candidates) == 0 {
		return "", fmt.Errorf("no response candidates returned")
	}

	candidate := geminiResp.Candidates[0]
	if len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content parts in response")
	}

	return strings.TrimSpace(candidate.Content.Parts[0].Text), nil
}
