package http

import (
	"calendar-assistant/internal/event"
	"calendar-assistant/internal/model"
)

// --- Request DTOs ---

type scheduleReq struct {
	Utterance string `json:"utterance" binding:"required,max=2000"`
}

func (r scheduleReq) toInput() event.ScheduleInput {
	return event.ScheduleInput{
		Utterance: r.Utterance,
	}
}

// --- Response DTOs ---

type eventResp struct {
	Summary     string               `json:"summary"`
	Location    string               `json:"location,omitempty"`
	Description string               `json:"description,omitempty"`
	Start       *model.EventDateTime `json:"start"`
	End         *model.EventDateTime `json:"end"`
	ColorID     string               `json:"colorId,omitempty"`
	Attendees   []string             `json:"attendees,omitempty"`
	Recurrence  []string             `json:"recurrence,omitempty"`
}

func newEventResp(e model.CandidateEvent) eventResp {
	resp := eventResp{
		Summary:     e.Summary,
		Location:    e.Location,
		Description: e.Description,
		Start:       e.Start,
		End:         e.End,
		ColorID:     string(e.ColorID),
		Recurrence:  e.Recurrence,
	}
	for _, a := range e.Attendees {
		if a.Email != "" {
			resp.Attendees = append(resp.Attendees, a.Email)
		}
	}
	return resp
}

type scheduleResp struct {
	Event    eventResp `json:"event"`
	EventID  string    `json:"event_id"`
	HTMLLink string    `json:"html_link,omitempty"`
}

func (h *handler) newScheduleResp(out event.ScheduleOutput) scheduleResp {
	return scheduleResp{
		Event:    newEventResp(out.Event),
		EventID:  out.EventID,
		HTMLLink: out.HTMLLink,
	}
}

type scheduleVoiceResp struct {
	Transcript string    `json:"transcript"`
	Event      eventResp `json:"event"`
	EventID    string    `json:"event_id"`
	HTMLLink   string    `json:"html_link,omitempty"`
}

func (h *handler) newScheduleVoiceResp(transcript string, out event.ScheduleOutput) scheduleVoiceResp {
	return scheduleVoiceResp{
		Transcript: transcript,
		Event:      newEventResp(out.Event),
		EventID:    out.EventID,
		HTMLLink:   out.HTMLLink,
	}
}

type listResp struct {
	Events []string `json:"events"`
}

func (h *handler) newListResp(out event.ListUpcomingOutput) listResp {
	if out.Events == nil {
		out.Events = []string{}
	}
	return listResp{Events: out.Events}
}
