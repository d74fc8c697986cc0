package datemath

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidStart is returned when a start expression cannot be resolved.
var ErrInvalidStart = errors.New("invalid start expression")

// Parser projects duration descriptors onto calendar dates and classifies
// the resulting deadlines. Day boundaries are taken in the parser's location.
type Parser struct {
	location *time.Location
	now      func() time.Time
}

// Option configures a Parser.
type Option func(*Parser)

// WithClock replaces the clock used when no explicit start or now is given.
func WithClock(now func() time.Time) Option {
	return func(p *Parser) {
		if now != nil {
			p.now = now
		}
	}
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "America/Santiago"
func NewParser(timezone string, opts ...Option) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	p := &Parser{location: loc, now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Location returns the location used for day boundaries.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Now returns the current instant from the parser's clock, in its location.
func (p *Parser) Now() time.Time {
	return p.now().In(p.location)
}

var startLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ResolveStart converts a start expression into an instant. The empty
// string, "now" and "ahora" resolve to now; "today"/"hoy",
// "tomorrow"/"mañana" and "yesterday"/"ayer" resolve to the start of that
// day. RFC 3339 timestamps are taken as-is; local date or date-time
// layouts are read in the parser's location.
func (p *Parser) ResolveStart(expr string, now time.Time) (time.Time, error) {
	if now.IsZero() {
		now = p.Now()
	}

	trimmed := strings.TrimSpace(expr)
	switch strings.ToLower(trimmed) {
	case "", "now", "ahora":
		return now.In(p.location), nil
	case "today", "hoy":
		return p.startOfDay(now), nil
	case "tomorrow", "mañana", "manana":
		return p.startOfDay(now.In(p.location).AddDate(0, 0, 1)), nil
	case "yesterday", "ayer":
		return p.startOfDay(now.In(p.location).AddDate(0, 0, -1)), nil
	}

	if t, err := time.Parse(time.RFC3339, trimmed); err == nil {
		return t.In(p.location), nil
	}
	for _, layout := range startLayouts {
		if t, err := time.ParseInLocation(layout, trimmed, p.location); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidStart, expr)
}

// ParseDeadline reads an explicit deadline timestamp. An empty string
// yields the zero time, meaning "no deadline".
func (p *Parser) ParseDeadline(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.In(p.location), nil
	}
	for _, layout := range startLayouts {
		if t, err := time.ParseInLocation(layout, value, p.location); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid deadline %q", value)
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
