package usecase

import (
	"recipient-srv/internal/model"
	"recipient-srv/internal/recipient"
)

// normalize validates every entry and returns the direct (non-topic)
// recipients as canonical subscribers, in input order.
func normalize(recipients []model.Recipient) ([]model.Subscriber, error) {
	res := make([]model.Subscriber, 0, len(recipients))

	for i, r := range recipients {
		switch r.Kind {
		case model.RecipientKindTopic:
			if r.TopicKey == "" {
				return nil, &recipient.InvalidRecipientError{Index: i, Reason: "topic key is empty"}
			}
		case model.RecipientKindSubscriberID:
			if r.SubscriberID == "" {
				return nil, &recipient.InvalidRecipientError{Index: i, Reason: "subscriber id is empty"}
			}
			res = append(res, model.NewSubscriber(r.SubscriberID))
		case model.RecipientKindSubscriber:
			if r.Subscriber.SubscriberID == "" {
				return nil, &recipient.InvalidRecipientError{Index: i, Reason: "subscriber object has no subscriberId"}
			}
			res = append(res, r.Subscriber)
		default:
			return nil, &recipient.InvalidRecipientError{Index: i, Reason: "unknown recipient kind " + r.Kind.String()}
		}
	}

	return res, nil
}

// findTopics returns the topic references of recipients in input order.
// Repeated keys are kept.
func findTopics(recipients []model.Recipient) []model.TopicReference {
	var refs []model.TopicReference
	for _, r := range recipients {
		if r.IsTopic() {
			refs = append(refs, model.TopicReference{TopicKey: r.TopicKey})
		}
	}
	return refs
}
