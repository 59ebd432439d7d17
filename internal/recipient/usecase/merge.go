package usecase

import "recipient-srv/internal/model"

// merge appends topicDerived (minus the actor) to direct and drops repeated
// subscriber ids, keeping the first occurrence.
func merge(direct, topicDerived []model.Subscriber, actor *model.Subscriber) []model.Subscriber {
	if actor != nil {
		topicDerived = excludeActor(topicDerived, actor.SubscriberID)
	}

	all := make([]model.Subscriber, 0, len(direct)+len(topicDerived))
	all = append(all, direct...)
	all = append(all, topicDerived...)

	return deduplicate(all)
}

func excludeActor(subscribers []model.Subscriber, actorID string) []model.Subscriber {
	res := make([]model.Subscriber, 0, len(subscribers))
	for _, s := range subscribers {
		if s.SubscriberID != actorID {
			res = append(res, s)
		}
	}
	return res
}

// deduplicate is O(n) in time and space.
func deduplicate(subscribers []model.Subscriber) []model.Subscriber {
	seen := make(map[string]struct{}, len(subscribers))
	res := make([]model.Subscriber, 0, len(subscribers))
	for _, s := range subscribers {
		if _, ok := seen[s.SubscriberID]; ok {
			continue
		}
		seen[s.SubscriberID] = struct{}{}
		res = append(res, s)
	}
	return res
}
