package usecase

import (
	"school-case-management/pkg/datemath"
	"school-case-management/pkg/log"
)

// implUseCase is the private implementation of deadline.UseCase.
type implUseCase struct {
	l        log.Logger
	dateMath *datemath.Parser
}

// New creates a new deadline UseCase implementation.
func New(l log.Logger, dateMath *datemath.Parser) *implUseCase {
	return &implUseCase{
		l:        l,
		dateMath: dateMath,
	}
}
