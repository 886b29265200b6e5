package groq_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"calendar-assistant/pkg/groq"
)

func newTestClient(t *testing.T, url string, maxRetries int) groq.IGroq {
	t.Helper()
	client, err := groq.New(groq.Config{
		APIKey:     "test-key",
		BaseURL:    url,
		MaxRetries: maxRetries,
		RetryDelay: 10 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

func TestConfigValidate(t *testing.T) {
	_, err := groq.New(groq.Config{})
	if err == nil {
		t.Fatalf("expected error for missing API key")
	}

	client, err := groq.New(groq.Config{APIKey: "k"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Model() != groq.DefaultModel {
		t.Errorf("expected default model, got %s", client.Model())
	}
}

func TestChatCompletion(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/chat/completions" {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
				t.Errorf("unexpected auth header: %s", got)
			}

			var req groq.Request
			json.NewDecoder(r.Body).Decode(&req)
			if req.Model != groq.DefaultModel {
				t.Errorf("expected default model in request, got %s", req.Model)
			}

			w.Write([]byte(`{
				"id": "chatcmpl-1",
				"choices": [{"index": 0, "message": {"role": "assistant", "content": "{\"summary\":\"Call\"}"}}],
				"usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15}
			}`))
		}))
		defer ts.Close()

		client := newTestClient(t, ts.URL, 5)
		resp, err := client.ChatCompletion(context.Background(), &groq.Request{
			Messages: []groq.Message{{Role: "user", Content: "hi"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Choices) != 1 || resp.Choices[0].Message.Content != `{"summary":"Call"}` {
			t.Errorf("unexpected response: %+v", resp)
		}
	})

	t.Run("Retries on 503 then succeeds", func(t *testing.T) {
		var calls int32
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&calls, 1) < 3 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "content": "ok"}}]}`))
		}))
		defer ts.Close()

		client := newTestClient(t, ts.URL, 5)
		resp, err := client.ChatCompletion(context.Background(), &groq.Request{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Choices[0].Message.Content != "ok" {
			t.Errorf("unexpected content: %s", resp.Choices[0].Message.Content)
		}
		if got := atomic.LoadInt32(&calls); got != 3 {
			t.Errorf("expected 3 calls, got %d", got)
		}
	})

	t.Run("Backend unavailable after retry budget", func(t *testing.T) {
		var calls int32
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer ts.Close()

		client := newTestClient(t, ts.URL, 3)
		_, err := client.ChatCompletion(context.Background(), &groq.Request{})
		if !errors.Is(err, groq.ErrBackendUnavailable) {
			t.Fatalf("expected ErrBackendUnavailable, got %v", err)
		}
		if got := atomic.LoadInt32(&calls); got != 3 {
			t.Errorf("expected exactly 3 attempts, got %d", got)
		}
	})

	t.Run("Non-retryable status surfaces immediately", func(t *testing.T) {
		var calls int32
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error": {"message": "invalid model", "type": "invalid_request_error"}}`))
		}))
		defer ts.Close()

		client := newTestClient(t, ts.URL, 5)
		_, err := client.ChatCompletion(context.Background(), &groq.Request{})

		var backendErr *groq.BackendError
		if !errors.As(err, &backendErr) {
			t.Fatalf("expected BackendError, got %v", err)
		}
		if backendErr.Status != http.StatusBadRequest {
			t.Errorf("unexpected status: %d", backendErr.Status)
		}
		if backendErr.Body != "invalid model" {
			t.Errorf("expected envelope message, got %q", backendErr.Body)
		}
		if got := atomic.LoadInt32(&calls); got != 1 {
			t.Errorf("expected no retries on 400, got %d calls", got)
		}
	})

	t.Run("Transport error surfaces immediately", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		ts.Close() // force connection refused

		client := newTestClient(t, ts.URL, 5)
		_, err := client.ChatCompletion(context.Background(), &groq.Request{})

		var transportErr *groq.TransportError
		if !errors.As(err, &transportErr) {
			t.Fatalf("expected TransportError, got %v", err)
		}
	})

	t.Run("Context cancellation stops retry wait", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer ts.Close()

		client, err := groq.New(groq.Config{
			APIKey:     "test-key",
			BaseURL:    ts.URL,
			MaxRetries: 5,
			RetryDelay: time.Minute,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err = client.ChatCompletion(ctx, &groq.Request{})
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("expected deadline exceeded, got %v", err)
		}
	})
}
