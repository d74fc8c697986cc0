package usecase

import (
	"context"
	"fmt"

	"school-case-management/internal/casefile"
	repo "school-case-management/internal/casefile/repository"
	"school-case-management/pkg/datemath"
)

// Summary counts open cases per urgency tier for the traffic-light panel.
func (uc *implUseCase) Summary(ctx context.Context) (casefile.SummaryOutput, error) {
	cases, err := uc.repo.ListCases(ctx, repo.ListCasesOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Summary ListCases: %v", err)
		return casefile.SummaryOutput{}, fmt.Errorf("%w: %v", casefile.ErrBackendUnavailable, err)
	}

	now := uc.dateMath.Now()
	out := casefile.SummaryOutput{
		ByUrgency: map[datemath.Urgency]int{
			datemath.UrgencyCritical: 0,
			datemath.UrgencyWarning:  0,
			datemath.UrgencyOnTime:   0,
			datemath.UrgencyNone:     0,
		},
		GeneratedAt: now,
	}
	for _, c := range cases {
		if c.IsClosed() {
			continue
		}
		out.ByUrgency[uc.resolveCase(c, now).Urgency]++
		out.Total++
	}
	return out, nil
}
