package datemath

import "time"

const (
	criticalMaxDays = 2
	warningMaxDays  = 5
)

// Classify maps a deadline to its urgency tier relative to now. A zero
// deadline has no tier; a zero now means the parser's clock.
//
// A deadline that has already passed, even earlier the same day, is
// critical. Otherwise the whole-day distance decides: up to 2 days is
// critical, 3 to 5 is warning, beyond that is on time.
func (p *Parser) Classify(deadline, now time.Time) Urgency {
	if deadline.IsZero() {
		return UrgencyNone
	}
	if now.IsZero() {
		now = p.Now()
	}

	diffDays := p.DaysRemaining(deadline, now)
	diffTime := deadline.Sub(now)

	switch {
	case diffTime < 0 || diffDays <= criticalMaxDays:
		return UrgencyCritical
	case diffDays <= warningMaxDays:
		return UrgencyWarning
	default:
		return UrgencyOnTime
	}
}

// DaysRemaining is the number of calendar days between the day of now and
// the day of deadline in the parser's location. Negative once the
// deadline's day is in the past.
func (p *Parser) DaysRemaining(deadline, now time.Time) int {
	if now.IsZero() {
		now = p.Now()
	}
	d := deadline.In(p.location)
	n := now.In(p.location)
	// Compare calendar dates in UTC so DST shifts do not produce 23 or 25 hour days.
	dDay := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	nDay := time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
	return int(dDay.Sub(nDay) / (24 * time.Hour))
}
