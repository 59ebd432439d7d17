package topic

// GetSubscribersOptions identifies a topic inside one tenant.
type GetSubscribersOptions struct {
	EnvironmentID  string
	OrganizationID string
	TopicKey       string
}

// Subscriber is a topic member as stored.
type Subscriber struct {
	TopicID              string
	TopicKey             string
	SubscriberID         string
	ExternalSubscriberID string
}
