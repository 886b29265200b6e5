package validator

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/datemath"
)

const (
	// DefaultSummary fills in when the model extracted no title.
	DefaultSummary = "Untitled Event"

	// DefaultTimeZone and DefaultOffset are used for every repaired or
	// synthesized timestamp unless configured otherwise.
	DefaultTimeZone = "Asia/Kolkata"
	DefaultOffset   = "+05:30"

	defaultStartLead = 1 * time.Hour
	defaultEndLead   = 2 * time.Hour
)

// Config tunes the validator. Zero values get sensible defaults.
type Config struct {
	TimeZone string
	Offset   string

	// Now overrides the clock, for tests.
	Now func() time.Time
}

func (c *Config) fillDefaults() {
	if c.TimeZone == "" {
		c.TimeZone = DefaultTimeZone
	}
	if c.Offset == "" {
		c.Offset = DefaultOffset
	}
	if c.Now == nil {
		c.Now = time.Now
	}
}

// Validator repairs candidate events into a shape Google Calendar accepts.
// It never rejects: every problem is either fixed with a default or
// surfaced as a warning alongside the fixed value.
type Validator struct {
	timeZone string
	offset   string
	now      func() time.Time
}

func New(cfg Config) *Validator {
	cfg.fillDefaults()
	return &Validator{
		timeZone: cfg.TimeZone,
		offset:   cfg.Offset,
		now:      cfg.Now,
	}
}

// Validate returns a repaired copy of the candidate plus warnings for every
// value it had to correct. Running Validate over its own output yields the
// same event and no new warnings.
func (v *Validator) Validate(candidate model.CandidateEvent) (model.CandidateEvent, []model.Warning) {
	out := candidate.Clone()
	var warnings []model.Warning

	if strings.TrimSpace(out.Summary) == "" {
		out.Summary = DefaultSummary
	}

	out.Start = v.repairStamp("start", out.Start, defaultStartLead, &warnings)
	out.End = v.repairStamp("end", out.End, defaultEndLead, &warnings)

	if out.ColorID != "" {
		if n, err := strconv.Atoi(string(out.ColorID)); err != nil || n < 1 || n > 11 {
			warnings = append(warnings, model.Warning{
				Field:   "colorId",
				Message: fmt.Sprintf("colorId %q is outside the valid range 1-11", out.ColorID),
			})
		}
	}

	for _, rule := range out.Recurrence {
		if err := checkRecurrence(rule); err != nil {
			warnings = append(warnings, model.Warning{
				Field:   "recurrence",
				Message: fmt.Sprintf("unrecognized recurrence rule %q", rule),
			})
		}
	}

	out.Error = ""
	return out, warnings
}

// repairStamp guarantees a parseable, canonical timestamp. A missing or
// empty value is synthesized silently; a present but unparseable one is
// replaced and warned about.
func (v *Validator) repairStamp(field string, stamp *model.EventDateTime, lead time.Duration, warnings *[]model.Warning) *model.EventDateTime {
	if stamp == nil {
		return &model.EventDateTime{
			DateTime: v.defaultDateTime(lead),
			TimeZone: v.timeZone,
		}
	}
	if stamp.TimeZone == "" {
		stamp.TimeZone = v.timeZone
	}
	if stamp.DateTime == "" {
		stamp.DateTime = v.defaultDateTime(lead)
		return stamp
	}

	parsed, ok := datemath.ParseStamp(stamp.DateTime)
	if !ok {
		*warnings = append(*warnings, model.Warning{
			Field:   field,
			Message: fmt.Sprintf("could not parse %s time %q, using a default", field, stamp.DateTime),
		})
		stamp.DateTime = v.defaultDateTime(lead)
		return stamp
	}

	// models trained on older data sometimes emit last year's date for
	// "next Friday"; move it into the current year, keeping month and day
	if year := v.now().Year(); parsed.Year() < year {
		parsed = time.Date(year, parsed.Month(), parsed.Day(),
			parsed.Hour(), parsed.Minute(), parsed.Second(), 0, parsed.Location())
	}

	stamp.DateTime = datemath.Canonical(parsed, v.offset)
	return stamp
}

func (v *Validator) defaultDateTime(lead time.Duration) string {
	return datemath.Canonical(v.now().Add(lead), v.offset)
}

func checkRecurrence(rule string) error {
	body, found := strings.CutPrefix(rule, "RRULE:")
	if !found {
		// EXDATE and RDATE lines pass through unchecked
		return nil
	}
	_, err := rrule.StrToRRule(body)
	return err
}
