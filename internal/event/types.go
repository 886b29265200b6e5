package event

import "calendar-assistant/internal/model"

// ScheduleInput carries one natural-language scheduling request.
type ScheduleInput struct {
	Utterance string
}

// ScheduleOutput is the result of a successful scheduling run.
type ScheduleOutput struct {
	Event    model.CandidateEvent
	Warnings []model.Warning
	EventID  string
	HTMLLink string
}

// ListUpcomingOutput holds display-ready lines for upcoming events.
type ListUpcomingOutput struct {
	Events []string
}
