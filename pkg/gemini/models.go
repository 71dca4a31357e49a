package gemini

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// ModelInfo describes one model visible to the API key.
type ModelInfo struct {
	Name    string   `json:"name"`
	Methods []string `json:"supportedGenerationMethods"`
}

// SupportsGeneration reports whether the model can serve generateContent.
func (m ModelInfo) SupportsGeneration() bool {
	for _, method := range m.Methods {
		if method == "generateContent" {
			return true
		}
	}
	return false
}

type listModelsResponse struct {
	Models []ModelInfo `json:"models"`
}

// ListModels returns the models available to the configured API key.
// Used to verify key access before blaming a failed evaluation on the model.
func (c *Client) ListModels() ([]ModelInfo, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("gemini API key not configured")
	}

	url := fmt.Sprintf("%s/models?key=%s", c.apiBase, c.apiKey)
	resp, err := c.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to perform request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		bodyStr := string(bodyBytes)
		if len(bodyStr) > 200 {
			bodyStr = bodyStr[:200] + "...(truncated)"
		}
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Body:       bodyStr,
		}
	}

	var listResp listModelsResponse
	if err := json.Unmarshal(bodyBytes, &listResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return listResp.Models, nil
}
