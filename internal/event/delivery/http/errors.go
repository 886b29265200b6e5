package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/event"
	"calendar-assistant/pkg/response"
)

var (
	// errNeedMoreTimeInfo is shown for both unrecoverable model output and
	// the incomplete-time sentinel. The two cases are deliberately
	// indistinguishable to the caller.
	errNeedMoreTimeInfo = errors.New(event.MsgNeedMoreTimeInfo)

	errVoiceUnavailable    = errors.New("voice scheduling is not configured on this server")
	errTranscriptionFailed = errors.New("could not transcribe the audio clip")
)

// handleError translates domain errors into HTTP responses.
func (h *handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, event.ErrEmptyInput):
		response.Error(c, event.ErrEmptyInput)
	case errors.Is(err, event.ErrNoCandidate), errors.Is(err, event.ErrIncompleteTimeInfo):
		response.ErrorWithStatus(c, http.StatusUnprocessableEntity, errNeedMoreTimeInfo)
	default:
		response.InternalError(c)
	}
}
