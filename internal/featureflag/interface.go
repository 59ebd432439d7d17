package featureflag

import "context"

//go:generate mockgen -source=interface.go -destination=mocks/usecase.go -package=mocks

// UseCase answers feature flag questions for a tenant and user.
type UseCase interface {
	IsTopicNotificationEnabled(ctx context.Context, input Input) (bool, error)
}
