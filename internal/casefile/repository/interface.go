package repository

import (
	"context"

	"school-case-management/internal/model"
)

// CaseRepository reads case records from the school backend.
type CaseRepository interface {
	ListCases(ctx context.Context, opt ListCasesOptions) ([]model.Case, error)
	GetCase(ctx context.Context, id string) (model.Case, error)
}
