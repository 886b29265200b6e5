package usecase

import (
	"context"
	"fmt"
	"time"

	"calendar-assistant/internal/event"
	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/datemath"
	"calendar-assistant/pkg/gcalendar"
)

const upcomingLimit = 10

// ListUpcoming fetches the next events and renders them as display lines.
func (uc *implUseCase) ListUpcoming(ctx context.Context, sc model.Scope) (event.ListUpcomingOutput, error) {
	events, err := uc.calendar.ListUpcoming(ctx, gcalendar.ListUpcomingRequest{
		CalendarID: uc.calendarID,
		MaxResults: upcomingLimit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "event.ListUpcoming: calendar list failed: %v", err)
		return event.ListUpcomingOutput{}, fmt.Errorf("list calendar events: %w", err)
	}

	lines := make([]string, 0, len(events))
	for _, e := range events {
		lines = append(lines, formatEventLine(e))
	}
	return event.ListUpcomingOutput{Events: lines}, nil
}

func formatEventLine(e gcalendar.Event) string {
	if e.AllDay {
		if t, err := time.Parse("2006-01-02", e.Start); err == nil {
			return fmt.Sprintf("🕒 %s (all day) - %s", datemath.HumanDate(t), e.Summary)
		}
		return fmt.Sprintf("🕒 %s (all day) - %s", e.Start, e.Summary)
	}
	if t, ok := datemath.ParseStamp(e.Start); ok {
		return fmt.Sprintf("🕒 %s - %s", datemath.HumanDateTime(t), e.Summary)
	}
	return fmt.Sprintf("🕒 %s - %s", e.Start, e.Summary)
}
