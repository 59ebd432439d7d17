package postgres

import (
	"github.com/aarondl/null/v8"

	"recipient-srv/internal/topic"
)

// getTopicSubscribersQuery returns one row per member, or a single row with
// NULL member columns when the topic exists but is empty.
const getTopicSubscribersQuery = `
SELECT
	t.id AS topic_id,
	t.key AS topic_key,
	ts._subscriber_id AS subscriber_id,
	ts.external_subscriber_id AS external_subscriber_id
FROM topics AS t
LEFT JOIN topic_subscribers AS ts
	ON ts._topic_id = t.id
	AND ts._environment_id = t._environment_id
	AND ts._organization_id = t._organization_id
WHERE t.key = $1
	AND t._environment_id = $2
	AND t._organization_id = $3
ORDER BY ts.created_at ASC NULLS LAST, ts.id ASC NULLS LAST`

type topicSubscriberRow struct {
	TopicID              string      `boil:"topic_id"`
	TopicKey             string      `boil:"topic_key"`
	SubscriberID         null.String `boil:"subscriber_id"`
	ExternalSubscriberID null.String `boil:"external_subscriber_id"`
}

func (r *implRepository) buildGetTopicSubscribersArgs(opts topic.GetSubscribersOptions) ([]interface{}, error) {
	if opts.TopicKey == "" || opts.EnvironmentID == "" || opts.OrganizationID == "" {
		return nil, topic.ErrFieldRequired
	}
	return []interface{}{opts.TopicKey, opts.EnvironmentID, opts.OrganizationID}, nil
}

// toSubscribers maps joined rows to members. Zero rows means the topic does
// not exist; rows with a NULL external id come from the empty-topic join.
func toSubscribers(rows []*topicSubscriberRow) ([]topic.Subscriber, error) {
	if len(rows) == 0 {
		return nil, topic.ErrTopicNotFound
	}

	res := make([]topic.Subscriber, 0, len(rows))
	for _, row := range rows {
		if !row.ExternalSubscriberID.Valid {
			continue
		}
		res = append(res, topic.Subscriber{
			TopicID:              row.TopicID,
			TopicKey:             row.TopicKey,
			SubscriberID:         row.SubscriberID.String,
			ExternalSubscriberID: row.ExternalSubscriberID.String,
		})
	}
	return res, nil
}
