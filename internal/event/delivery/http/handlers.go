package http

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/response"
)

// Schedule godoc
// @Summary     Schedule an event from natural language
// @Description Extracts event details from a free-form utterance, repairs
// @Description them and inserts the event into Google Calendar. Repaired
// @Description fields are reported as warnings alongside the created event.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       body body scheduleReq true "Natural language request"
// @Success     200 {object} scheduleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "Time information missing or undeterminable"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events [POST]
func (h *handler) Schedule(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processScheduleReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Schedule(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Schedule: %v", err)
		h.handleError(c, err)
		return
	}

	response.OKWithWarnings(c, h.newScheduleResp(out), out.Warnings)
}

// ScheduleVoice godoc
// @Summary     Schedule an event from a voice clip
// @Description Transcribes an uploaded audio clip and schedules the
// @Description transcribed request the same way as POST /events.
// @Tags        Events
// @Accept      multipart/form-data
// @Produce     json
// @Param       audio formData file true "Audio clip (wav)"
// @Success     200 {object} scheduleVoiceResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "Time information missing or undeterminable"
// @Failure     503 {object} response.Resp "Voice scheduling not configured"
// @Router      /api/v1/events/voice [POST]
func (h *handler) ScheduleVoice(c *gin.Context) {
	ctx := c.Request.Context()

	if h.transcriber == nil {
		response.ErrorWithStatus(c, http.StatusServiceUnavailable, errVoiceUnavailable)
		return
	}

	audio, err := h.processVoiceReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer audio.Close()

	session, err := h.recorder.Start(audio)
	if err != nil {
		h.l.Errorf(ctx, "recorder.Start: %v", err)
		response.InternalError(c)
		return
	}
	// the upload is finite, so wait for the full clip before transcribing
	path, err := session.Wait()
	if err != nil {
		h.l.Errorf(ctx, "recorder capture failed: %v", err)
		response.InternalError(c)
		return
	}
	defer os.Remove(path)

	transcript, err := h.transcriber.Transcribe(ctx, path)
	if err != nil {
		h.l.Errorf(ctx, "transcriber.Transcribe: %v", err)
		response.ErrorWithStatus(c, http.StatusBadGateway, errTranscriptionFailed)
		return
	}

	out, err := h.uc.Schedule(ctx, h.scope(c), scheduleReq{Utterance: transcript}.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Schedule (voice): %v", err)
		h.handleError(c, err)
		return
	}

	response.OKWithWarnings(c, h.newScheduleVoiceResp(transcript, out), out.Warnings)
}

// ListUpcoming godoc
// @Summary     List upcoming events
// @Description Returns display-ready lines for the next calendar events.
// @Tags        Events
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/upcoming [GET]
func (h *handler) ListUpcoming(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.ListUpcoming(ctx, h.scope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListUpcoming: %v", err)
		h.handleError(c, err)
		return
	}

	response.OK(c, h.newListResp(out))
}

func (h *handler) scope(c *gin.Context) model.Scope {
	return model.Scope{UserID: c.ClientIP()}
}
