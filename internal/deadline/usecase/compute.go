package usecase

import (
	"context"
	"fmt"

	"school-case-management/internal/deadline"
	"school-case-management/pkg/datemath"
)

// Compute projects the duration descriptor from the resolved start and
// classifies the result against the parser's clock.
func (uc *implUseCase) Compute(ctx context.Context, input deadline.ComputeInput) (deadline.ComputeOutput, error) {
	d, ok := datemath.ParseDuration(input.Duration)
	if !ok {
		return deadline.ComputeOutput{}, deadline.ErrUnparsableDuration
	}

	now := uc.dateMath.Now()
	start, err := uc.dateMath.ResolveStart(input.Start, now)
	if err != nil {
		uc.l.Debugf(ctx, "uc.Compute ResolveStart(%q): %v", input.Start, err)
		return deadline.ComputeOutput{}, fmt.Errorf("%w: %q", deadline.ErrInvalidStart, input.Start)
	}

	due := uc.dateMath.Project(d, start)

	return deadline.ComputeOutput{
		Start:         start,
		Duration:      d,
		Deadline:      due,
		Urgency:       uc.dateMath.Classify(due, now),
		DaysRemaining: uc.dateMath.DaysRemaining(due, now),
	}, nil
}
