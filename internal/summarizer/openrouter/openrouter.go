package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	retry "github.com/sethvargo/go-retry"

	"docdigest/internal/config"
	"docdigest/internal/port"
)

const (
	apiURL = "https://openrouter.ai/api/v1/chat/completions"
	model  = "mistralai/devstral-small-2505:free"

	promptPrefix = "Résume ce texte de manière concise en français :\n\n"

	// 3 total attempts, fixed delay, no backoff. Credential, transport and
	// API errors are retried alike.
	maxRetries = 2
	retryDelay = 2 * time.Second
)

// Client implements port.Summarizer against the OpenRouter chat-completions
// API. The API key is fetched from the parameter store on every attempt, so
// a rotated key is picked up without a restart.
type Client struct {
	params   port.ParameterStore
	keyParam string
	endpoint string
	client   *http.Client
}

// NewClient creates an OpenRouter-backed summarizer.
func NewClient(params port.ParameterStore, cfg *config.SummarizerConfig) *Client {
	return newClient(params, cfg, apiURL)
}

// NewClientWithEndpoint creates a client pointing at a custom API endpoint
// (for testing).
func NewClientWithEndpoint(params port.ParameterStore, cfg *config.SummarizerConfig, endpoint string) *Client {
	return newClient(params, cfg, endpoint)
}

func newClient(params port.ParameterStore, cfg *config.SummarizerConfig, endpoint string) *Client {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		params:   params,
		keyParam: cfg.APIKeyParam,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Summarize returns a French summary of text. An empty summary with a nil
// error means the model answered with no usable content; that outcome is not
// retried. After the retries are exhausted the last error is returned.
func (c *Client) Summarize(ctx context.Context, text string) (string, error) {
	var summary string
	backoff := retry.WithMaxRetries(maxRetries, retry.NewConstant(retryDelay))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		out, err := c.complete(ctx, text)
		if err != nil {
			return retry.RetryableError(err)
		}
		summary = out
		return nil
	})
	if err != nil {
		return "", err
	}
	return summary, nil
}

func (c *Client) complete(ctx context.Context, text string) (string, error) {
	apiKey, err := c.params.GetParameter(ctx, c.keyParam)
	if err != nil {
		return "", fmt.Errorf("retrieving API key: %w", err)
	}

	reqBody := map[string]interface{}{
		"model": model,
		"messages": []map[string]interface{}{
			{
				"role":    "user",
				"content": promptPrefix + text,
			},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling openrouter API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openrouter API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	return parseResponse(respBody)
}

// apiResponse models the OpenRouter chat-completions response.
type apiResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// parseResponse extracts the first choice's content. A response with no
// choices or empty content yields an empty summary, not an error.
func parseResponse(body []byte) (string, error) {
	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("unmarshaling response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
