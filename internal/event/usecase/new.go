package usecase

import (
	"context"
	"time"

	"calendar-assistant/internal/event"
	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/gcalendar"
	"calendar-assistant/pkg/log"
)

// Extractor produces a candidate event from an utterance.
type Extractor interface {
	Extract(ctx context.Context, utterance string, now time.Time) (*model.CandidateEvent, error)
}

// Validator repairs a candidate into a submittable event.
type Validator interface {
	Validate(candidate model.CandidateEvent) (model.CandidateEvent, []model.Warning)
}

// Calendar is the slice of the calendar client the usecase needs.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.CreateEventResult, error)
	ListUpcoming(ctx context.Context, req gcalendar.ListUpcomingRequest) ([]gcalendar.Event, error)
}

type implUseCase struct {
	l          log.Logger
	extractor  Extractor
	validator  Validator
	calendar   Calendar
	calendarID string
	clock      func() time.Time
}

var _ event.UseCase = (*implUseCase)(nil)

func New(l log.Logger, extractor Extractor, validator Validator, calendar Calendar, calendarID string) event.UseCase {
	return &implUseCase{
		l:          l,
		extractor:  extractor,
		validator:  validator,
		calendar:   calendar,
		calendarID: calendarID,
		clock:      time.Now,
	}
}
