package usecase

import (
	"context"
	"errors"
	"fmt"

	"school-case-management/internal/casefile"
	repo "school-case-management/internal/casefile/repository"
)

// Detail returns one case with every step's resolved deadline.
func (uc *implUseCase) Detail(ctx context.Context, id string) (casefile.DetailCaseOutput, error) {
	c, err := uc.repo.GetCase(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return casefile.DetailCaseOutput{}, casefile.ErrCaseNotFound
		}
		uc.l.Errorf(ctx, "uc.Detail GetCase: %v", err)
		return casefile.DetailCaseOutput{}, fmt.Errorf("%w: %v", casefile.ErrBackendUnavailable, err)
	}

	return casefile.DetailCaseOutput{Case: uc.resolveCase(c, uc.dateMath.Now())}, nil
}
