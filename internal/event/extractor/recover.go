package extractor

import (
	"encoding/json"
	"regexp"
	"strings"

	"calendar-assistant/internal/model"
)

// fallbackTimeZone is assumed for timestamps pulled out by the field-pattern
// strategy, which only ever sees the raw dateTime strings.
const fallbackTimeZone = "America/Los_Angeles"

// recoverCandidate runs the recovery strategies in order over a model reply
// and returns the first candidate any of them produces. A strict parse is
// tried first, then progressively more forgiving repairs.
func recoverCandidate(text string) *model.CandidateEvent {
	for _, strategy := range []func(string) *model.CandidateEvent{
		recoverStrict,
		recoverBraceSpan,
		recoverFencedBlock,
		recoverFieldPatterns,
	} {
		if candidate := strategy(text); candidate != nil {
			return candidate
		}
	}
	return nil
}

// recoverStrict parses the reply as-is.
func recoverStrict(text string) *model.CandidateEvent {
	return parseCandidate(text)
}

// recoverBraceSpan parses the widest substring between the first "{" and the
// last "}", which strips prose the model wrapped around the object.
func recoverBraceSpan(text string) *model.CandidateEvent {
	first := strings.Index(text, "{")
	last := strings.LastIndex(text, "}")
	if first < 0 || last <= first {
		return nil
	}
	return parseCandidate(text[first : last+1])
}

var fencedBlockPattern = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// recoverFencedBlock parses the contents of a markdown code fence.
func recoverFencedBlock(text string) *model.CandidateEvent {
	m := fencedBlockPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	return parseCandidate(m[1])
}

var (
	summaryPattern     = regexp.MustCompile(`"?summary"?\s*:\s*"([^"]*)"`)
	locationPattern    = regexp.MustCompile(`"?location"?\s*:\s*"([^"]*)"`)
	descriptionPattern = regexp.MustCompile(`"?description"?\s*:\s*"([^"]*)"`)
	dateTimePattern    = regexp.MustCompile(`"?dateTime"?\s*:\s*"([^"]*)"`)
)

// recoverFieldPatterns scrapes individual fields out of replies too mangled
// for any JSON parse. Start and end are taken positionally from the first two
// dateTime values; without both, timing would be guesswork and the strategy
// gives up on them.
func recoverFieldPatterns(text string) *model.CandidateEvent {
	var candidate model.CandidateEvent
	if m := summaryPattern.FindStringSubmatch(text); m != nil {
		candidate.Summary = m[1]
	}
	if m := locationPattern.FindStringSubmatch(text); m != nil {
		candidate.Location = m[1]
	}
	if m := descriptionPattern.FindStringSubmatch(text); m != nil {
		candidate.Description = m[1]
	}
	if stamps := dateTimePattern.FindAllStringSubmatch(text, -1); len(stamps) >= 2 {
		candidate.Start = &model.EventDateTime{DateTime: stamps[0][1], TimeZone: fallbackTimeZone}
		candidate.End = &model.EventDateTime{DateTime: stamps[1][1], TimeZone: fallbackTimeZone}
	}
	if candidate.IsEmpty() {
		return nil
	}
	return &candidate
}

func parseCandidate(text string) *model.CandidateEvent {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "{") {
		return nil
	}
	var candidate model.CandidateEvent
	if err := json.Unmarshal([]byte(text), &candidate); err != nil {
		return nil
	}
	return &candidate
}
