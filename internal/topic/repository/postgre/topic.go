package postgres

import (
	"context"

	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/friendsofgo/errors"

	"recipient-srv/internal/topic"
)

func (r *implRepository) GetTopicSubscribers(ctx context.Context, opts topic.GetSubscribersOptions) ([]topic.Subscriber, error) {
	args, err := r.buildGetTopicSubscribersArgs(opts)
	if err != nil {
		r.l.Errorf(ctx, "internal.topic.repository.postgres.GetTopicSubscribers.buildGetTopicSubscribersArgs: %v", err)
		return nil, err
	}

	var rows []*topicSubscriberRow
	if err := queries.Raw(getTopicSubscribersQuery, args...).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.topic.repository.postgres.GetTopicSubscribers.Bind: %v", err)
		return nil, errors.Wrap(err, "postgres: failed to select topic subscribers")
	}

	subs, err := toSubscribers(rows)
	if err != nil {
		return nil, errors.Wrapf(err, "key %q", opts.TopicKey)
	}

	return subs, nil
}
