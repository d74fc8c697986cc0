package casefile

import "context"

// UseCase resolves protocol deadlines for cases read from the school backend.
type UseCase interface {
	List(ctx context.Context, input ListCasesInput) (ListCasesOutput, error)
	Detail(ctx context.Context, id string) (DetailCaseOutput, error)
	Summary(ctx context.Context) (SummaryOutput, error)
}
