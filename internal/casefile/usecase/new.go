package usecase

import (
	"school-case-management/internal/casefile/repository"
	"school-case-management/pkg/datemath"
	pkgLog "school-case-management/pkg/log"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.CaseRepository
	dateMath *datemath.Parser
}

// New creates a new casefile UseCase instance.
func New(l pkgLog.Logger, repo repository.CaseRepository, dateMath *datemath.Parser) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		dateMath: dateMath,
	}
}
