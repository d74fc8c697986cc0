package usecase

import (
	"context"
	"fmt"

	"school-case-management/internal/deadline"
	"school-case-management/pkg/datemath"
)

// Classify returns the urgency tier of an explicit deadline.
func (uc *implUseCase) Classify(ctx context.Context, input deadline.ClassifyInput) (deadline.ClassifyOutput, error) {
	due, err := uc.dateMath.ParseDeadline(input.Deadline)
	if err != nil {
		uc.l.Debugf(ctx, "uc.Classify ParseDeadline(%q): %v", input.Deadline, err)
		return deadline.ClassifyOutput{}, fmt.Errorf("%w: %q", deadline.ErrInvalidDeadline, input.Deadline)
	}
	if due.IsZero() {
		return deadline.ClassifyOutput{Urgency: datemath.UrgencyNone}, nil
	}

	now := uc.dateMath.Now()
	return deadline.ClassifyOutput{
		Deadline:      due,
		Urgency:       uc.dateMath.Classify(due, now),
		DaysRemaining: uc.dateMath.DaysRemaining(due, now),
	}, nil
}
