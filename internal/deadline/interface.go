package deadline

import "context"

// UseCase exposes the deadline calculator and classifier.
type UseCase interface {
	Compute(ctx context.Context, input ComputeInput) (ComputeOutput, error)
	Classify(ctx context.Context, input ClassifyInput) (ClassifyOutput, error)
}
