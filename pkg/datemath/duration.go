package datemath

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// MaxDaySteps bounds the number of calendar days Project will step through.
// Descriptors needing more steps get the date reached at the ceiling, which
// is a best-effort result rather than the exact deadline.
const MaxDaySteps = 365

// MaxHours caps hour projection so the wall-clock arithmetic stays inside
// the range of int and time.Time. Larger magnitudes project to the cap.
const MaxHours = 24 * 366 * 10000

var magnitudeRe = regexp.MustCompile(`\d+`)

// ParseDuration extracts the structured duration from a descriptor.
// The magnitude is the first run of digits; "hora" selects hours, anything
// else means days; "hábil" or "habil" restricts counting to Monday-Friday.
// Magnitudes beyond int saturate to math.MaxInt.
// ok is false when the text is blank or carries no digits.
func ParseDuration(text string) (d Duration, ok bool) {
	if strings.TrimSpace(text) == "" {
		return Duration{}, false
	}

	digits := magnitudeRe.FindString(text)
	if digits == "" {
		return Duration{}, false
	}
	magnitude, err := strconv.Atoi(digits)
	if err != nil {
		// a digit run only fails on range; saturate
		magnitude = math.MaxInt
	}

	lower := strings.ToLower(text)
	d = Duration{Magnitude: magnitude, Unit: UnitDays}
	if strings.Contains(lower, "hora") {
		d.Unit = UnitHours
	}
	if strings.Contains(lower, "hábil") || strings.Contains(lower, "habil") {
		d.BusinessDaysOnly = true
	}
	return d, true
}

// Project returns start moved forward by d. Hours are added on the wall
// clock with no business-day restriction, up to MaxHours. Days are stepped one at a time,
// counting only weekdays when BusinessDaysOnly is set, up to MaxDaySteps
// steps.
func (p *Parser) Project(d Duration, start time.Time) time.Time {
	current := start.In(p.location)

	if d.Unit == UnitHours {
		hours := d.Magnitude
		if hours > MaxHours {
			hours = MaxHours
		}
		return time.Date(
			current.Year(), current.Month(), current.Day(),
			current.Hour()+hours, current.Minute(), current.Second(), current.Nanosecond(),
			p.location,
		)
	}

	counted := 0
	for steps := 0; counted < d.Magnitude && steps < MaxDaySteps; steps++ {
		current = current.AddDate(0, 0, 1)
		if !d.BusinessDaysOnly || IsBusinessDay(current) {
			counted++
		}
	}
	return current
}

// ComputeDeadline parses text and projects it from start. A zero start
// means now. ok is false when text has no usable magnitude.
func (p *Parser) ComputeDeadline(text string, start time.Time) (deadline time.Time, ok bool) {
	d, ok := ParseDuration(text)
	if !ok {
		return time.Time{}, false
	}
	if start.IsZero() {
		start = p.Now()
	}
	return p.Project(d, start), true
}

// IsBusinessDay reports whether t falls on Monday through Friday.
// Holidays are not considered.
func IsBusinessDay(t time.Time) bool {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	return true
}
