package gcalendar

// EventStamp is one endpoint of an event, already in canonical ISO form
// with an explicit offset, plus its IANA timezone label.
type EventStamp struct {
	DateTime string
	TimeZone string
}

// CreateEventRequest is the input for creating a Google Calendar event.
// Start and End are required; everything else is optional.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Location    string
	Description string
	Start       EventStamp
	End         EventStamp
	ColorID     string   // "1" through "11", empty for calendar default
	Attendees   []string // attendee email addresses
	Recurrence  []string // RRULE strings, passed through verbatim
}

// CreateEventResult reports a successfully created event.
type CreateEventResult struct {
	EventID  string
	HTMLLink string
}

// ListUpcomingRequest is the input for listing upcoming events.
type ListUpcomingRequest struct {
	CalendarID string
	MaxResults int64
}

// Event is a simplified upcoming-event record. Start holds the raw
// dateTime for timed events or the date for all-day events.
type Event struct {
	ID       string
	Summary  string
	Start    string
	AllDay   bool
	HTMLLink string
}
