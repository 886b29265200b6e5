package validator_test

import (
	"testing"
	"time"

	"calendar-assistant/internal/event/validator"
	"calendar-assistant/internal/model"
)

func fixedClock() time.Time {
	return time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)
}

func newValidator() *validator.Validator {
	return validator.New(validator.Config{Now: fixedClock})
}

func TestValidate(t *testing.T) {
	t.Run("well-formed event passes untouched", func(t *testing.T) {
		in := model.CandidateEvent{
			Summary:  "Team sync",
			Location: "Room 4",
			Start:    &model.EventDateTime{DateTime: "2025-03-15T09:00:00+05:30", TimeZone: "Asia/Kolkata"},
			End:      &model.EventDateTime{DateTime: "2025-03-15T10:00:00+05:30", TimeZone: "Asia/Kolkata"},
		}

		out, warnings := newValidator().Validate(in)
		if len(warnings) != 0 {
			t.Fatalf("Expected no warnings, got %v", warnings)
		}
		if out.Summary != "Team sync" || out.Location != "Room 4" {
			t.Errorf("Fields should be preserved: %+v", out)
		}
		if out.Start.DateTime != "2025-03-15T09:00:00+05:30" {
			t.Errorf("Unexpected start: %q", out.Start.DateTime)
		}
		if out.End.DateTime != "2025-03-15T10:00:00+05:30" {
			t.Errorf("Unexpected end: %q", out.End.DateTime)
		}
	})

	t.Run("missing summary gets default", func(t *testing.T) {
		out, warnings := newValidator().Validate(model.CandidateEvent{
			Start: &model.EventDateTime{DateTime: "2025-03-15T09:00:00"},
		})
		if out.Summary != "Untitled Event" {
			t.Errorf("Expected default summary, got %q", out.Summary)
		}
		if len(warnings) != 0 {
			t.Errorf("Default summary should not warn: %v", warnings)
		}
	})

	t.Run("absent start and end are synthesized silently", func(t *testing.T) {
		out, warnings := newValidator().Validate(model.CandidateEvent{Summary: "Chat"})
		if len(warnings) != 0 {
			t.Fatalf("Synthesis from absence must not warn: %v", warnings)
		}
		if out.Start == nil || out.Start.DateTime != "2025-03-10T15:30:00+05:30" {
			t.Errorf("Expected start one hour out, got %+v", out.Start)
		}
		if out.End == nil || out.End.DateTime != "2025-03-10T16:30:00+05:30" {
			t.Errorf("Expected end two hours out, got %+v", out.End)
		}
		if out.Start.TimeZone != "Asia/Kolkata" || out.End.TimeZone != "Asia/Kolkata" {
			t.Errorf("Synthesized stamps should carry the default timezone: %+v", out)
		}
	})

	t.Run("empty dateTime is synthesized without warning", func(t *testing.T) {
		out, warnings := newValidator().Validate(model.CandidateEvent{
			Summary: "Chat",
			Start:   &model.EventDateTime{TimeZone: "Asia/Kolkata"},
			End:     &model.EventDateTime{},
		})
		if len(warnings) != 0 {
			t.Fatalf("Expected no warnings, got %v", warnings)
		}
		if out.Start.DateTime != "2025-03-10T15:30:00+05:30" {
			t.Errorf("Unexpected start: %q", out.Start.DateTime)
		}
		if out.End.TimeZone != "Asia/Kolkata" {
			t.Errorf("Missing timezone should be injected, got %q", out.End.TimeZone)
		}
	})

	t.Run("unparseable dateTime warns once and defaults", func(t *testing.T) {
		out, warnings := newValidator().Validate(model.CandidateEvent{
			Summary: "Chat",
			Start:   &model.EventDateTime{DateTime: "sometime soon", TimeZone: "Asia/Kolkata"},
			End:     &model.EventDateTime{DateTime: "2025-03-15T10:00:00"},
		})
		if len(warnings) != 1 {
			t.Fatalf("Expected exactly one warning, got %v", warnings)
		}
		if warnings[0].Field != "start" {
			t.Errorf("Warning should name the start field, got %q", warnings[0].Field)
		}
		if out.Start.DateTime != "2025-03-10T15:30:00+05:30" {
			t.Errorf("Unexpected repaired start: %q", out.Start.DateTime)
		}
	})

	t.Run("stale year is moved to the current year", func(t *testing.T) {
		out, _ := newValidator().Validate(model.CandidateEvent{
			Summary: "Chat",
			Start:   &model.EventDateTime{DateTime: "2020-03-15T09:00:00"},
			End:     &model.EventDateTime{DateTime: "2020-03-15T10:00:00"},
		})
		if out.Start.DateTime != "2025-03-15T09:00:00+05:30" {
			t.Errorf("Expected year correction, got %q", out.Start.DateTime)
		}
		if out.End.DateTime != "2025-03-15T10:00:00+05:30" {
			t.Errorf("Expected year correction, got %q", out.End.DateTime)
		}
	})

	t.Run("natural language stamp is canonicalized", func(t *testing.T) {
		out, warnings := newValidator().Validate(model.CandidateEvent{
			Summary: "Lunch",
			Start:   &model.EventDateTime{DateTime: "March 15, 2025 at 1:30 PM"},
			End:     &model.EventDateTime{DateTime: "March 15, 2025"},
		})
		if len(warnings) != 0 {
			t.Fatalf("Expected no warnings, got %v", warnings)
		}
		if out.Start.DateTime != "2025-03-15T13:30:00+05:30" {
			t.Errorf("Unexpected start: %q", out.Start.DateTime)
		}
		// date without a time defaults to noon
		if out.End.DateTime != "2025-03-15T12:00:00+05:30" {
			t.Errorf("Unexpected end: %q", out.End.DateTime)
		}
	})

	t.Run("validation is idempotent", func(t *testing.T) {
		v := newValidator()
		first, _ := v.Validate(model.CandidateEvent{
			Summary: "Chat",
			Start:   &model.EventDateTime{DateTime: "March 15, 2025 at 9 AM"},
		})
		second, warnings := v.Validate(first)
		if len(warnings) != 0 {
			t.Fatalf("Second pass must not warn: %v", warnings)
		}
		if second.Start.DateTime != first.Start.DateTime || second.End.DateTime != first.End.DateTime {
			t.Errorf("Second pass changed the event: %+v vs %+v", first, second)
		}
		if second.Summary != first.Summary {
			t.Errorf("Summary changed: %q vs %q", first.Summary, second.Summary)
		}
	})

	t.Run("colorId out of range warns", func(t *testing.T) {
		_, warnings := newValidator().Validate(model.CandidateEvent{
			Summary: "Chat",
			ColorID: "12",
			Start:   &model.EventDateTime{DateTime: "2025-03-15T09:00:00"},
		})
		if len(warnings) != 1 || warnings[0].Field != "colorId" {
			t.Fatalf("Expected a colorId warning, got %v", warnings)
		}
	})

	t.Run("colorId in range is silent", func(t *testing.T) {
		out, warnings := newValidator().Validate(model.CandidateEvent{
			Summary: "Chat",
			ColorID: "7",
			Start:   &model.EventDateTime{DateTime: "2025-03-15T09:00:00"},
		})
		if len(warnings) != 0 {
			t.Fatalf("Expected no warnings, got %v", warnings)
		}
		if out.ColorID != "7" {
			t.Errorf("ColorID should be preserved, got %q", out.ColorID)
		}
	})

	t.Run("malformed recurrence rule warns", func(t *testing.T) {
		out, warnings := newValidator().Validate(model.CandidateEvent{
			Summary:    "Standup",
			Recurrence: []string{"RRULE:FREQ=WEEKLY;BYDAY=MO", "RRULE:FREQ=SOMETIMES"},
			Start:      &model.EventDateTime{DateTime: "2025-03-15T09:00:00"},
		})
		if len(warnings) != 1 || warnings[0].Field != "recurrence" {
			t.Fatalf("Expected one recurrence warning, got %v", warnings)
		}
		if len(out.Recurrence) != 2 {
			t.Errorf("Rules must be kept even when warned about: %v", out.Recurrence)
		}
	})

	t.Run("sentinel error field is cleared", func(t *testing.T) {
		out, _ := newValidator().Validate(model.CandidateEvent{
			Summary: "Chat",
			Error:   model.SentinelIncompleteTimeInfo,
		})
		if out.Error != "" {
			t.Errorf("Validated events must not carry the extraction error field, got %q", out.Error)
		}
	})

	t.Run("input is not mutated", func(t *testing.T) {
		in := model.CandidateEvent{
			Summary: "Chat",
			Start:   &model.EventDateTime{DateTime: "2020-03-15T09:00:00"},
		}
		newValidator().Validate(in)
		if in.Start.DateTime != "2020-03-15T09:00:00" {
			t.Errorf("Validate mutated its input: %q", in.Start.DateTime)
		}
	})

	t.Run("custom timezone and offset", func(t *testing.T) {
		v := validator.New(validator.Config{
			TimeZone: "America/New_York",
			Offset:   "-05:00",
			Now:      fixedClock,
		})
		out, _ := v.Validate(model.CandidateEvent{Summary: "Chat"})
		if out.Start.TimeZone != "America/New_York" {
			t.Errorf("Expected configured timezone, got %q", out.Start.TimeZone)
		}
		if out.Start.DateTime != "2025-03-10T15:30:00-05:00" {
			t.Errorf("Expected configured offset, got %q", out.Start.DateTime)
		}
	})
}
