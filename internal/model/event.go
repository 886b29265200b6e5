package model

import (
	"encoding/json"
	"fmt"
)

// SentinelIncompleteTimeInfo is the fixed value the extraction model places
// in the "error" field when it cannot determine date/time information from
// the utterance.
const SentinelIncompleteTimeInfo = "incomplete_time_info"

// EventDateTime is one endpoint of an event.
type EventDateTime struct {
	DateTime string `json:"dateTime,omitempty"`
	TimeZone string `json:"timeZone,omitempty"`
}

// Attendee is a single event attendee. Model output sometimes lists
// attendees as bare email strings instead of objects; UnmarshalJSON accepts
// both shapes so string entries are promoted to structured records.
type Attendee struct {
	Email string `json:"email"`
}

func (a *Attendee) UnmarshalJSON(data []byte) error {
	var email string
	if err := json.Unmarshal(data, &email); err == nil {
		a.Email = email
		return nil
	}

	type attendee Attendee // avoid recursion
	var obj attendee
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("attendee must be a string or an object: %w", err)
	}
	*a = Attendee(obj)
	return nil
}

// ColorID is a Google Calendar color identifier ("1" through "11"). Model
// output may carry it as a JSON number or a string.
type ColorID string

func (c *ColorID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = ColorID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("colorId must be a number or a string")
	}
	*c = ColorID(n.String())
	return nil
}

func (c ColorID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(c))
}

// CandidateEvent is the loosely-typed event shape extracted from model
// output. Every field is optional until it has passed through the
// validator, which guarantees summary, start and end.
type CandidateEvent struct {
	Summary     string         `json:"summary,omitempty"`
	Location    string         `json:"location,omitempty"`
	Description string         `json:"description,omitempty"`
	Start       *EventDateTime `json:"start,omitempty"`
	End         *EventDateTime `json:"end,omitempty"`
	ColorID     ColorID        `json:"colorId,omitempty"`
	Attendees   []Attendee     `json:"attendees,omitempty"`
	Recurrence  []string       `json:"recurrence,omitempty"`

	// Error holds SentinelIncompleteTimeInfo when the model could not
	// determine timing. Checked before validation, never afterwards.
	Error string `json:"error,omitempty"`
}

// IsEmpty reports whether no event field was extracted at all.
func (e CandidateEvent) IsEmpty() bool {
	return e.Summary == "" && e.Location == "" && e.Description == "" &&
		e.Start == nil && e.End == nil && e.ColorID == "" &&
		len(e.Attendees) == 0 && len(e.Recurrence) == 0 && e.Error == ""
}

// Clone returns a deep copy so the validator can repair fields without
// aliasing the extractor's output.
func (e CandidateEvent) Clone() CandidateEvent {
	out := e
	if e.Start != nil {
		start := *e.Start
		out.Start = &start
	}
	if e.End != nil {
		end := *e.End
		out.End = &end
	}
	if e.Attendees != nil {
		out.Attendees = append([]Attendee(nil), e.Attendees...)
	}
	if e.Recurrence != nil {
		out.Recurrence = append([]string(nil), e.Recurrence...)
	}
	return out
}

// Warning records a field that needed a synthesized or corrected value
// during validation. Warnings are user-visible caveats, never failures.
type Warning struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
