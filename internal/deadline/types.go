package deadline

import (
	"time"

	"school-case-management/pkg/datemath"
)

// --- UseCase Inputs ---

// ComputeInput asks for the deadline of a duration descriptor.
type ComputeInput struct {
	Duration string // e.g. "3 días hábiles"
	Start    string // start expression; empty means now
}

// ClassifyInput asks for the urgency tier of an explicit deadline.
type ClassifyInput struct {
	Deadline string // empty means no deadline
}

// --- UseCase Outputs ---

type ComputeOutput struct {
	Start         time.Time
	Duration      datemath.Duration
	Deadline      time.Time
	Urgency       datemath.Urgency
	DaysRemaining int
}

type ClassifyOutput struct {
	Deadline      time.Time // zero when no deadline was given
	Urgency       datemath.Urgency
	DaysRemaining int
}
