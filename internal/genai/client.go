// internal/genai/client.go
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"astral-content/internal/common/config"
	httpclient "astral-content/internal/common/http"
	"astral-content/internal/common/logger"
	"astral-content/internal/prompt"
)

var (
	ErrGenerationTimeout = errors.New("GENERATION_TIMEOUT")
	ErrGenerationFailed  = errors.New("GENERATION_FAILED")
)

const maxRetries = 2

// Client calls the text generation API with a composed prompt. Transient
// failures are retried with exponential backoff; the context deadline always
// wins over remaining attempts.
type Client struct {
	baseURL string
	apiKey  string
	timeout time.Duration
	http    *httpclient.Client
	logger  logger.Logger
}

func NewClient(cfg config.GenAIConfig, log logger.Logger) *Client {
	timeout := time.Duration(cfg.Timeout) * time.Millisecond
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		timeout: timeout,
		http:    httpclient.NewClient(0),
		logger:  log.WithFields(map[string]interface{}{"component": "genai-client"}),
	}
}

type generateRequest struct {
	Model        string  `json:"model"`
	SystemPrompt string  `json:"systemPrompt"`
	UserPrompt   string  `json:"userPrompt"`
	Temperature  float64 `json:"temperature"`
	MaxTokens    int     `json:"maxTokens"`
}

type generateResponse struct {
	Text string `json:"text"`
}

// Generate sends a composed prompt and returns the generated text.
func (c *Client) Generate(ctx context.Context, composed *prompt.ComposedPrompt) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(generateRequest{
		Model:        composed.Template.Model.Model,
		SystemPrompt: composed.SystemPrompt,
		UserPrompt:   composed.UserPrompt,
		Temperature:  composed.Template.Model.Temperature,
		MaxTokens:    composed.Template.Model.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	var resp *http.Response
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return "", ErrGenerationTimeout
			}
		}

		req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/api/ai/generate", bytes.NewBuffer(body))
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
		}
		req.Header.Set("Content-Type", "application/json")
		if c.apiKey != "" {
			req.Header.Set("Authorization", "Bearer "+c.apiKey)
		}

		resp, lastErr = c.http.Do(req)
		if lastErr == nil {
			if resp.StatusCode == http.StatusOK {
				break
			}
			resp.Body.Close()
			lastErr = fmt.Errorf("status %d", resp.StatusCode)
			resp = nil
		}

		if ctx.Err() != nil {
			return "", ErrGenerationTimeout
		}
	}

	if lastErr != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", ErrGenerationTimeout
		}
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, lastErr)
	}
	if resp == nil {
		return "", fmt.Errorf("%w: no successful response after retries", ErrGenerationFailed)
	}
	defer resp.Body.Close()

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: decode error: %v", ErrGenerationFailed, err)
	}
	if strings.TrimSpace(out.Text) == "" {
		return "", fmt.Errorf("%w: empty generation", ErrGenerationFailed)
	}

	c.logger.Info("generation completed", map[string]interface{}{
		"template": composed.Template.ID,
		"model":    composed.Template.Model.Model,
		"chars":    len(out.Text),
	})
	return out.Text, nil
}
