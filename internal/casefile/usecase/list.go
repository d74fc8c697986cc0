package usecase

import (
	"context"
	"fmt"

	"school-case-management/internal/casefile"
	repo "school-case-management/internal/casefile/repository"
	"school-case-management/pkg/datemath"
)

// List returns cases with resolved deadlines, most urgent first.
func (uc *implUseCase) List(ctx context.Context, input casefile.ListCasesInput) (casefile.ListCasesOutput, error) {
	var urgency datemath.Urgency
	if input.Urgency != "" {
		urgency = datemath.Urgency(input.Urgency)
		if !urgency.IsValid() {
			return casefile.ListCasesOutput{}, casefile.ErrInvalidUrgency
		}
	}

	cases, err := uc.repo.ListCases(ctx, repo.ListCasesOptions{Status: input.Status})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListCases: %v", err)
		return casefile.ListCasesOutput{}, fmt.Errorf("%w: %v", casefile.ErrBackendUnavailable, err)
	}

	now := uc.dateMath.Now()
	includeClosed := input.IncludeClosed || input.Status == "closed"

	views := make([]casefile.CaseView, 0, len(cases))
	for _, c := range cases {
		if c.IsClosed() && !includeClosed {
			continue
		}
		view := uc.resolveCase(c, now)
		if urgency != "" && view.Urgency != urgency {
			continue
		}
		views = append(views, view)
	}
	sortViews(views)

	limit, offset := normalizePage(input.Limit, input.Offset)
	total := len(views)
	start := offset
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return casefile.ListCasesOutput{
		Cases:  views[start:end],
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

func normalizePage(limit, offset int) (int, int) {
	switch {
	case limit <= 0:
		limit = defaultLimit
	case limit > maxLimit:
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
