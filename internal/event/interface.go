package event

import (
	"context"

	"calendar-assistant/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Schedule(ctx context.Context, sc model.Scope, input ScheduleInput) (ScheduleOutput, error)
	ListUpcoming(ctx context.Context, sc model.Scope) (ListUpcomingOutput, error)
}
