package recipient

import "context"

//go:generate mockgen -source=interface.go -destination=mocks/usecase.go -package=mocks

// UseCase resolves the final recipient list of a trigger.
type UseCase interface {
	// Resolve normalizes direct recipients, expands topic references and
	// returns the merged, deduplicated subscriber list.
	Resolve(ctx context.Context, input ResolveInput) (ResolveOutput, error)
}
