package extractor_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"calendar-assistant/internal/event"
	"calendar-assistant/internal/event/extractor"
	"calendar-assistant/pkg/groq"
	"calendar-assistant/pkg/log"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

var _ log.Logger = (*mockLogger)(nil)

type mockGroq struct {
	content  string
	err      error
	noChoice bool
	lastReq  *groq.Request
}

func (m *mockGroq) ChatCompletion(ctx context.Context, req *groq.Request) (*groq.Response, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	resp := &groq.Response{}
	if !m.noChoice {
		resp.Choices = []groq.Choice{{Message: groq.Message{Role: "assistant", Content: m.content}}}
	}
	return resp, nil
}

func (m *mockGroq) Model() string { return "test-model" }

var testNow = time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

func TestExtract(t *testing.T) {
	ctx := context.Background()

	t.Run("direct JSON reply", func(t *testing.T) {
		llm := &mockGroq{content: `{"summary": "Team sync", "start": {"dateTime": "2025-03-15T09:00:00+05:30", "timeZone": "Asia/Kolkata"}}`}
		ex := extractor.New(&mockLogger{}, llm, "Asia/Kolkata")

		got, err := ex.Extract(ctx, "team sync saturday 9am", testNow)
		if err != nil {
			t.Fatalf("Extract failed: %v", err)
		}
		if got.Summary != "Team sync" {
			t.Errorf("Expected summary 'Team sync', got %q", got.Summary)
		}
		if got.Start == nil || got.Start.DateTime != "2025-03-15T09:00:00+05:30" {
			t.Errorf("Unexpected start: %+v", got.Start)
		}
	})

	t.Run("request shape", func(t *testing.T) {
		llm := &mockGroq{content: `{}`}
		ex := extractor.New(&mockLogger{}, llm, "Asia/Kolkata")

		if _, err := ex.Extract(ctx, "lunch tomorrow", testNow); err != nil {
			t.Fatalf("Extract failed: %v", err)
		}
		req := llm.lastReq
		if len(req.Messages) != 2 {
			t.Fatalf("Expected system + user message, got %d", len(req.Messages))
		}
		if req.Messages[0].Role != "system" || req.Messages[1].Role != "user" {
			t.Errorf("Unexpected roles: %s, %s", req.Messages[0].Role, req.Messages[1].Role)
		}
		if req.Messages[1].Content != "lunch tomorrow" {
			t.Errorf("User message should carry the utterance, got %q", req.Messages[1].Content)
		}
		if req.MaxTokens != 1024 || req.Temperature != 0.7 {
			t.Errorf("Unexpected sampling params: maxTokens=%d temperature=%v", req.MaxTokens, req.Temperature)
		}
		if req.ResponseFormat == nil || req.ResponseFormat.Type != "json_object" {
			t.Errorf("Expected json_object response format, got %+v", req.ResponseFormat)
		}
	})

	t.Run("prompt carries current date", func(t *testing.T) {
		llm := &mockGroq{content: `{}`}
		ex := extractor.New(&mockLogger{}, llm, "UTC")

		if _, err := ex.Extract(ctx, "dinner tonight", testNow); err != nil {
			t.Fatalf("Extract failed: %v", err)
		}
		system := llm.lastReq.Messages[0].Content
		for _, want := range []string{"March 10, 2025", "14:30", "UTC"} {
			if !strings.Contains(system, want) {
				t.Errorf("System prompt missing %q", want)
			}
		}
	})

	t.Run("unknown timezone falls back to UTC in the prompt", func(t *testing.T) {
		llm := &mockGroq{content: `{}`}
		ex := extractor.New(&mockLogger{}, llm, "Mars/Olympus_Mons")

		if _, err := ex.Extract(ctx, "dinner tonight", testNow); err != nil {
			t.Fatalf("Extract failed: %v", err)
		}
		system := llm.lastReq.Messages[0].Content
		if strings.Contains(system, "Mars/Olympus_Mons") {
			t.Errorf("Prompt must not name a zone the times are not in: %s", system)
		}
		if !strings.Contains(system, "UTC") || !strings.Contains(system, "14:30") {
			t.Errorf("Expected UTC label and UTC clock, got: %s", system)
		}
	})

	t.Run("prose around object is stripped", func(t *testing.T) {
		llm := &mockGroq{content: `Here is the event you asked for: {"summary": "Dentist"} hope that helps!`}
		ex := extractor.New(&mockLogger{}, llm, "Asia/Kolkata")

		got, err := ex.Extract(ctx, "dentist", testNow)
		if err != nil {
			t.Fatalf("Extract failed: %v", err)
		}
		if got.Summary != "Dentist" {
			t.Errorf("Expected summary 'Dentist', got %q", got.Summary)
		}
	})

	t.Run("fenced block reply", func(t *testing.T) {
		llm := &mockGroq{content: "Sure! ```json\n{\"summary\": \"Call\"}\n```"}
		ex := extractor.New(&mockLogger{}, llm, "Asia/Kolkata")

		got, err := ex.Extract(ctx, "call with bob", testNow)
		if err != nil {
			t.Fatalf("Extract failed: %v", err)
		}
		if got.Summary != "Call" {
			t.Errorf("Expected summary 'Call', got %q", got.Summary)
		}
	})

	t.Run("fenced block with stray brace outside", func(t *testing.T) {
		// the brace-span strategy grabs the trailing "}" and fails to
		// parse, so recovery has to fall through to the fence
		llm := &mockGroq{content: "```json\n{\"summary\": \"Call\"}\n``` :}"}
		ex := extractor.New(&mockLogger{}, llm, "Asia/Kolkata")

		got, err := ex.Extract(ctx, "call with bob", testNow)
		if err != nil {
			t.Fatalf("Extract failed: %v", err)
		}
		if got.Summary != "Call" {
			t.Errorf("Expected summary 'Call', got %q", got.Summary)
		}
	})

	t.Run("field scraping with positional dateTimes", func(t *testing.T) {
		llm := &mockGroq{content: `summary: "Standup", broken json,, dateTime: "2025-03-11T09:00:00" more garbage dateTime: "2025-03-11T09:30:00"`}
		ex := extractor.New(&mockLogger{}, llm, "Asia/Kolkata")

		got, err := ex.Extract(ctx, "standup tomorrow", testNow)
		if err != nil {
			t.Fatalf("Extract failed: %v", err)
		}
		if got.Summary != "Standup" {
			t.Errorf("Expected summary 'Standup', got %q", got.Summary)
		}
		if got.Start == nil || got.Start.DateTime != "2025-03-11T09:00:00" {
			t.Errorf("Unexpected start: %+v", got.Start)
		}
		if got.End == nil || got.End.DateTime != "2025-03-11T09:30:00" {
			t.Errorf("Unexpected end: %+v", got.End)
		}
		if got.Start.TimeZone != "America/Los_Angeles" {
			t.Errorf("Scraped stamps should get the fallback timezone, got %q", got.Start.TimeZone)
		}
	})

	t.Run("single dateTime is not scraped", func(t *testing.T) {
		llm := &mockGroq{content: `summary: "Standup", broken, dateTime: "2025-03-11T09:00:00" nothing else`}
		ex := extractor.New(&mockLogger{}, llm, "Asia/Kolkata")

		got, err := ex.Extract(ctx, "something at nine", testNow)
		if err != nil {
			t.Fatalf("Extract failed: %v", err)
		}
		if got.Start != nil || got.End != nil {
			t.Errorf("A lone dateTime must not become start or end: %+v", got)
		}
	})

	t.Run("unrecoverable reply", func(t *testing.T) {
		llm := &mockGroq{content: "I am sorry, I cannot help with that."}
		ex := extractor.New(&mockLogger{}, llm, "Asia/Kolkata")

		_, err := ex.Extract(ctx, "schedule something", testNow)
		if !errors.Is(err, event.ErrNoCandidate) {
			t.Fatalf("Expected ErrNoCandidate, got %v", err)
		}
	})

	t.Run("empty choices", func(t *testing.T) {
		llm := &mockGroq{noChoice: true}
		ex := extractor.New(&mockLogger{}, llm, "Asia/Kolkata")

		_, err := ex.Extract(ctx, "schedule something", testNow)
		if !errors.Is(err, event.ErrNoCandidate) {
			t.Fatalf("Expected ErrNoCandidate, got %v", err)
		}
	})

	t.Run("backend error is wrapped", func(t *testing.T) {
		llm := &mockGroq{err: groq.ErrBackendUnavailable}
		ex := extractor.New(&mockLogger{}, llm, "Asia/Kolkata")

		_, err := ex.Extract(ctx, "schedule something", testNow)
		if !errors.Is(err, groq.ErrBackendUnavailable) {
			t.Fatalf("Expected ErrBackendUnavailable in chain, got %v", err)
		}
	})

	t.Run("sentinel error field survives recovery", func(t *testing.T) {
		llm := &mockGroq{content: `{"error": "incomplete_time_info"}`}
		ex := extractor.New(&mockLogger{}, llm, "Asia/Kolkata")

		got, err := ex.Extract(ctx, "meet someday", testNow)
		if err != nil {
			t.Fatalf("Extract failed: %v", err)
		}
		if got.Error != "incomplete_time_info" {
			t.Errorf("Expected sentinel error field, got %q", got.Error)
		}
	})

	t.Run("attendee strings are promoted", func(t *testing.T) {
		llm := &mockGroq{content: `{"summary": "Review", "attendees": ["a@example.com", {"email": "b@example.com"}]}`}
		ex := extractor.New(&mockLogger{}, llm, "Asia/Kolkata")

		got, err := ex.Extract(ctx, "review with a and b", testNow)
		if err != nil {
			t.Fatalf("Extract failed: %v", err)
		}
		if len(got.Attendees) != 2 || got.Attendees[0].Email != "a@example.com" || got.Attendees[1].Email != "b@example.com" {
			t.Errorf("Unexpected attendees: %+v", got.Attendees)
		}
	})
}

