package topic

import "context"

//go:generate mockgen -source=interface.go -destination=mocks/repository.go -package=mocks

// Repository looks up topic membership.
type Repository interface {
	// GetTopicSubscribers returns the current members of a topic in the
	// order they joined. A topic without members yields an empty slice.
	GetTopicSubscribers(ctx context.Context, opts GetSubscribersOptions) ([]Subscriber, error)
}
