package model

// RecipientTypeTopic is the value of the "type" field that marks a topic
// reference in a trigger payload.
const RecipientTypeTopic = "Topic"

// RecipientKind tags the shape of a raw trigger recipient.
type RecipientKind int

const (
	RecipientKindUnknown RecipientKind = iota
	RecipientKindSubscriberID
	RecipientKindSubscriber
	RecipientKindTopic
)

func (k RecipientKind) String() string {
	switch k {
	case RecipientKindSubscriberID:
		return "subscriber_id"
	case RecipientKindSubscriber:
		return "subscriber"
	case RecipientKindTopic:
		return "topic"
	default:
		return "unknown"
	}
}

// Recipient is one entry of a trigger's "to" field. Exactly one of
// SubscriberID, Subscriber or TopicKey is meaningful, selected by Kind.
type Recipient struct {
	Kind         RecipientKind
	SubscriberID string
	Subscriber   Subscriber
	TopicKey     string
}

// NewSubscriberIDRecipient wraps a bare subscriber identifier.
func NewSubscriberIDRecipient(subscriberID string) Recipient {
	return Recipient{Kind: RecipientKindSubscriberID, SubscriberID: subscriberID}
}

// NewSubscriberRecipient wraps a full subscriber object.
func NewSubscriberRecipient(s Subscriber) Recipient {
	return Recipient{Kind: RecipientKindSubscriber, Subscriber: s}
}

// NewTopicRecipient wraps a topic reference.
func NewTopicRecipient(topicKey string) Recipient {
	return Recipient{Kind: RecipientKindTopic, TopicKey: topicKey}
}

// IsTopic reports whether r references a topic.
func (r Recipient) IsTopic() bool {
	return r.Kind == RecipientKindTopic
}

// TopicReference is the topic part of a Recipient.
type TopicReference struct {
	TopicKey string
}
