package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"calendar-assistant/internal/event"
	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/gcalendar"
)

// Schedule runs the full pipeline: extract a candidate from the utterance,
// repair it, then submit it to the calendar.
func (uc *implUseCase) Schedule(ctx context.Context, sc model.Scope, input event.ScheduleInput) (event.ScheduleOutput, error) {
	utterance := strings.TrimSpace(input.Utterance)
	if utterance == "" {
		return event.ScheduleOutput{}, event.ErrEmptyInput
	}

	uc.l.Infof(ctx, "event.Schedule: user=%s chars=%d", sc.UserID, len(utterance))

	candidate, err := uc.extractor.Extract(ctx, utterance, uc.clock())
	if err != nil {
		if errors.Is(err, event.ErrNoCandidate) {
			return event.ScheduleOutput{}, err
		}
		uc.l.Errorf(ctx, "event.Schedule: extraction failed: %v", err)
		return event.ScheduleOutput{}, fmt.Errorf("extract event: %w", err)
	}

	if candidate.Error == model.SentinelIncompleteTimeInfo {
		return event.ScheduleOutput{}, event.ErrIncompleteTimeInfo
	}
	if candidate.Start == nil || candidate.Start.DateTime == "" {
		return event.ScheduleOutput{}, event.ErrIncompleteTimeInfo
	}

	validated, warnings := uc.validator.Validate(*candidate)
	for _, w := range warnings {
		uc.l.Warnf(ctx, "event.Schedule: repaired %s: %s", w.Field, w.Message)
	}

	created, err := uc.calendar.CreateEvent(ctx, buildCreateRequest(uc.calendarID, validated))
	if err != nil {
		uc.l.Errorf(ctx, "event.Schedule: calendar insert failed: %v", err)
		return event.ScheduleOutput{}, fmt.Errorf("create calendar event: %w", err)
	}

	uc.l.Infof(ctx, "event.Schedule: created event %s", created.EventID)
	return event.ScheduleOutput{
		Event:    validated,
		Warnings: warnings,
		EventID:  created.EventID,
		HTMLLink: created.HTMLLink,
	}, nil
}

func buildCreateRequest(calendarID string, e model.CandidateEvent) gcalendar.CreateEventRequest {
	req := gcalendar.CreateEventRequest{
		CalendarID:  calendarID,
		Summary:     e.Summary,
		Location:    e.Location,
		Description: e.Description,
		ColorID:     string(e.ColorID),
		Recurrence:  e.Recurrence,
		Start: gcalendar.EventStamp{
			DateTime: e.Start.DateTime,
			TimeZone: e.Start.TimeZone,
		},
		End: gcalendar.EventStamp{
			DateTime: e.End.DateTime,
			TimeZone: e.End.TimeZone,
		},
	}
	for _, a := range e.Attendees {
		if a.Email != "" {
			req.Attendees = append(req.Attendees, a.Email)
		}
	}
	return req
}
