package http

import (
	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/event"
	"calendar-assistant/pkg/log"
	"calendar-assistant/pkg/recorder"
)

// Handler is the public interface for the event HTTP delivery layer.
type Handler interface {
	Schedule(c *gin.Context)
	ScheduleVoice(c *gin.Context)
	ListUpcoming(c *gin.Context)
}

type handler struct {
	l           log.Logger
	uc          event.UseCase
	recorder    *recorder.Recorder
	transcriber recorder.Transcriber
}

// New creates a new HTTP handler for the event domain. transcriber may be
// nil, in which case voice scheduling is reported as unavailable.
func New(l log.Logger, uc event.UseCase, rec *recorder.Recorder, transcriber recorder.Transcriber) *handler {
	return &handler{
		l:           l,
		uc:          uc,
		recorder:    rec,
		transcriber: transcriber,
	}
}
