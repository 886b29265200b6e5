package extractor

import (
	"context"
	"fmt"
	"time"

	"calendar-assistant/internal/event"
	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/groq"
	"calendar-assistant/pkg/log"
)

const (
	maxTokens   = 1024
	temperature = 0.7
)

// Extractor turns a natural-language utterance into a candidate event by
// asking the chat backend for structured JSON and recovering it from the
// reply.
type Extractor struct {
	l        log.Logger
	llm      groq.IGroq
	timezone string
	loc      *time.Location
}

func New(l log.Logger, llm groq.IGroq, timezone string) *Extractor {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		// fall back label and clock together so the prompt never names a
		// zone the times are not in
		l.Warnf(context.Background(), "extractor.New: unknown timezone %q, using UTC: %v", timezone, err)
		loc = time.UTC
		timezone = "UTC"
	}
	return &Extractor{
		l:        l,
		llm:      llm,
		timezone: timezone,
		loc:      loc,
	}
}

// Extract asks the backend for event details and runs the recovery chain
// over its reply. now anchors relative dates like "tomorrow".
func (e *Extractor) Extract(ctx context.Context, utterance string, now time.Time) (*model.CandidateEvent, error) {
	req := &groq.Request{
		Messages: []groq.Message{
			{Role: groq.RoleSystem, Content: systemPrompt(now.In(e.loc), e.timezone)},
			{Role: groq.RoleUser, Content: utterance},
		},
		MaxTokens:      maxTokens,
		Temperature:    temperature,
		ResponseFormat: &groq.ResponseFormat{Type: groq.ResponseFormatJSONObject},
	}

	resp, err := e.llm.ChatCompletion(ctx, req)
	if err != nil {
		e.l.Errorf(ctx, "extractor.Extract: backend call failed: %v", err)
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		e.l.Warnf(ctx, "extractor.Extract: backend returned no choices")
		return nil, event.ErrNoCandidate
	}

	content := resp.Choices[0].Message.Content
	candidate := recoverCandidate(content)
	if candidate == nil {
		e.l.Warnf(ctx, "extractor.Extract: no strategy recovered JSON from reply (%d bytes)", len(content))
		return nil, event.ErrNoCandidate
	}
	return candidate, nil
}
