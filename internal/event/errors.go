package event

import "errors"

// Domain-specific errors for the event package.
var (
	// ErrEmptyInput rejects blank utterances before any backend call.
	ErrEmptyInput = errors.New("utterance is empty")

	// ErrNoCandidate means every JSON-recovery strategy failed on the
	// model's reply. No event is fabricated in that case.
	ErrNoCandidate = errors.New("could not recover event details from model output")

	// ErrIncompleteTimeInfo covers both the model's explicit
	// incomplete_time_info sentinel and a candidate missing its start
	// time. Both short-circuit before validation.
	ErrIncompleteTimeInfo = errors.New("could not determine event time from input")
)

// MsgNeedMoreTimeInfo is the user-facing rejection shown for ErrNoCandidate
// and ErrIncompleteTimeInfo alike.
const MsgNeedMoreTimeInfo = "Not able to get the time or details are incomplete. Please provide more specific date and time information."
