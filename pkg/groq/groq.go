package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type groqImpl struct {
	apiKey     string
	model      string
	baseURL    string
	maxRetries int
	retryDelay time.Duration
	httpClient *http.Client
}

// newGroqImpl creates a new Groq implementation
func newGroqImpl(cfg Config) *groqImpl {
	return &groqImpl{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    cfg.BaseURL,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
		httpClient: cfg.HTTPClient,
	}
}

// ChatCompletion sends a chat completion request to the Groq API.
// HTTP 503 (model loading / transient overload) is retried up to the
// configured bound with a fixed delay between attempts. Any other non-200
// status and any transport failure are surfaced immediately as typed errors.
func (g *groqImpl) ChatCompletion(ctx context.Context, req *Request) (*Response, error) {
	if req.Model == "" {
		req.Model = g.model
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("groq: failed to marshal request: %w", err)
	}

	for attempt := 0; attempt < g.maxRetries; attempt++ {
		resp, err := g.doRequest(ctx, body)
		if err != nil {
			return nil, &TransportError{Err: err}
		}

		if resp.StatusCode == http.StatusOK {
			var result Response
			if decErr := json.NewDecoder(resp.Body).Decode(&result); decErr != nil {
				resp.Body.Close()
				return nil, fmt.Errorf("groq: failed to decode response: %w", decErr)
			}
			resp.Body.Close()
			return &result, nil
		}

		raw, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusServiceUnavailable {
			return nil, &BackendError{Status: resp.StatusCode, Body: backendMessage(raw)}
		}

		// 503: wait the fixed delay before the next attempt, unless the
		// caller cancelled meanwhile.
		select {
		case <-time.After(g.retryDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return nil, ErrBackendUnavailable
}

// Model returns the model being used
func (g *groqImpl) Model() string {
	return g.model
}

func (g *groqImpl) doRequest(ctx context.Context, body []byte) (*http.Response, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	return g.httpClient.Do(httpReq)
}

// backendMessage extracts the error message from Groq's error envelope,
// falling back to the raw body when the envelope does not parse.
func backendMessage(raw []byte) string {
	var envelope errorResponse
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error.Message != "" {
		return envelope.Error.Message
	}
	return string(raw)
}
