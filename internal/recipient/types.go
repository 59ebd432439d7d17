package recipient

import "recipient-srv/internal/model"

// ResolutionContext scopes one resolution call.
type ResolutionContext struct {
	EnvironmentID  string
	OrganizationID string
	UserID         string
	TransactionID  string
}

// ResolveInput is the input of UseCase.Resolve.
type ResolveInput struct {
	Context    ResolutionContext
	Recipients []model.Recipient
	// Actor is excluded from topic-derived recipients. Nil when the trigger
	// has no actor.
	Actor *model.Subscriber
}

// ResolveOutput is the output of UseCase.Resolve.
type ResolveOutput struct {
	Subscribers []model.Subscriber
}
