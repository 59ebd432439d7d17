package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"recipient-srv/internal/featureflag"
	"recipient-srv/internal/model"
	"recipient-srv/internal/recipient"
	"recipient-srv/internal/recipient/metrics"
	"recipient-srv/internal/topic"
)

var flagInput = featureflag.Input{
	EnvironmentID:  testContext.EnvironmentID,
	OrganizationID: testContext.OrganizationID,
	UserID:         testContext.UserID,
}

func lookup(key string) topic.GetSubscribersOptions {
	return topic.GetSubscribersOptions{
		EnvironmentID:  testContext.EnvironmentID,
		OrganizationID: testContext.OrganizationID,
		TopicKey:       key,
	}
}

// scenarioRecipients is ["a", {subscriberId: "b"}, {type: "Topic", topicKey: "t1"}].
func scenarioRecipients() []model.Recipient {
	return []model.Recipient{
		model.NewSubscriberIDRecipient("a"),
		model.NewSubscriberRecipient(model.Subscriber{SubscriberID: "b"}),
		model.NewTopicRecipient("t1"),
	}
}

func TestResolve_Scenarios(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		actor   *model.Subscriber
		want    []string
	}{
		{
			name:    "topic duplicate of direct recipient is dropped",
			enabled: true,
			want:    []string{"a", "b", "c"},
		},
		{
			name:    "actor excluded from topic members",
			enabled: true,
			actor:   &model.Subscriber{SubscriberID: "c"},
			want:    []string{"a", "b"},
		},
		{
			name:    "flag disabled ignores topic membership",
			enabled: false,
			want:    []string{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, deps := initUseCase(t, false)
			ctx := context.Background()

			deps.flags.EXPECT().IsTopicNotificationEnabled(gomock.Any(), flagInput).Return(tt.enabled, nil)
			if tt.enabled {
				deps.topicRepo.EXPECT().GetTopicSubscribers(gomock.Any(), lookup("t1")).Return(members("b", "c"), nil)
			}

			out, err := uc.Resolve(ctx, recipient.ResolveInput{
				Context:    testContext,
				Recipients: scenarioRecipients(),
				Actor:      tt.actor,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, subscriberIDs(out.Subscribers))
		})
	}
}

func TestResolve_DirectOnlyMakesNoLookups(t *testing.T) {
	uc, deps := initUseCase(t, false)

	deps.flags.EXPECT().IsTopicNotificationEnabled(gomock.Any(), flagInput).Return(true, nil)
	deps.topicRepo.EXPECT().GetTopicSubscribers(gomock.Any(), gomock.Any()).Times(0)

	out, err := uc.Resolve(context.Background(), recipient.ResolveInput{
		Context: testContext,
		Recipients: []model.Recipient{
			model.NewSubscriberIDRecipient("c"),
			model.NewSubscriberIDRecipient("a"),
			model.NewSubscriberRecipient(model.Subscriber{SubscriberID: "c", Email: "c@example.com"}),
			model.NewSubscriberIDRecipient("b"),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []model.Subscriber{{SubscriberID: "c"}, {SubscriberID: "a"}, {SubscriberID: "b"}}, out.Subscribers)
}

func TestResolve_TopicsOnly(t *testing.T) {
	t.Run("disabled returns empty", func(t *testing.T) {
		uc, deps := initUseCase(t, false)

		deps.flags.EXPECT().IsTopicNotificationEnabled(gomock.Any(), flagInput).Return(false, nil)
		deps.topicRepo.EXPECT().GetTopicSubscribers(gomock.Any(), gomock.Any()).Times(0)

		out, err := uc.Resolve(context.Background(), recipient.ResolveInput{
			Context:    testContext,
			Recipients: []model.Recipient{model.NewTopicRecipient("t1"), model.NewTopicRecipient("t2")},
		})
		require.NoError(t, err)
		assert.NotNil(t, out.Subscribers)
		assert.Empty(t, out.Subscribers)
	})

	t.Run("enabled concatenates in reference order", func(t *testing.T) {
		uc, deps := initUseCase(t, false)

		deps.flags.EXPECT().IsTopicNotificationEnabled(gomock.Any(), flagInput).Return(true, nil)
		deps.topicRepo.EXPECT().GetTopicSubscribers(gomock.Any(), lookup("t1")).Return(members("x", "y"), nil)
		deps.topicRepo.EXPECT().GetTopicSubscribers(gomock.Any(), lookup("t2")).Return(members("y", "z"), nil)
		deps.topicRepo.EXPECT().GetTopicSubscribers(gomock.Any(), lookup("empty")).Return([]topic.Subscriber{}, nil)

		out, err := uc.Resolve(context.Background(), recipient.ResolveInput{
			Context: testContext,
			Recipients: []model.Recipient{
				model.NewTopicRecipient("t1"),
				model.NewTopicRecipient("empty"),
				model.NewTopicRecipient("t2"),
			},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"x", "y", "z"}, subscriberIDs(out.Subscribers))
	})
}

func TestResolve_ActorExclusion(t *testing.T) {
	actor := &model.Subscriber{SubscriberID: "u1"}

	t.Run("only via topic", func(t *testing.T) {
		uc, deps := initUseCase(t, false)

		deps.flags.EXPECT().IsTopicNotificationEnabled(gomock.Any(), flagInput).Return(true, nil)
		deps.topicRepo.EXPECT().GetTopicSubscribers(gomock.Any(), lookup("t1")).Return(members("u1", "u2"), nil)

		out, err := uc.Resolve(context.Background(), recipient.ResolveInput{
			Context:    testContext,
			Recipients: []model.Recipient{model.NewTopicRecipient("t1")},
			Actor:      actor,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"u2"}, subscriberIDs(out.Subscribers))
	})

	t.Run("direct and via topic", func(t *testing.T) {
		uc, deps := initUseCase(t, false)

		deps.flags.EXPECT().IsTopicNotificationEnabled(gomock.Any(), flagInput).Return(true, nil)
		deps.topicRepo.EXPECT().GetTopicSubscribers(gomock.Any(), lookup("t1")).Return(members("u1", "u2"), nil)

		out, err := uc.Resolve(context.Background(), recipient.ResolveInput{
			Context: testContext,
			Recipients: []model.Recipient{
				model.NewSubscriberIDRecipient("u1"),
				model.NewTopicRecipient("t1"),
			},
			Actor: actor,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"u1", "u2"}, subscriberIDs(out.Subscribers))
	})
}

func TestResolve_Idempotent(t *testing.T) {
	uc, deps := initUseCase(t, false)

	deps.flags.EXPECT().IsTopicNotificationEnabled(gomock.Any(), flagInput).Return(true, nil).Times(2)
	deps.topicRepo.EXPECT().GetTopicSubscribers(gomock.Any(), lookup("t1")).Return(members("b", "c", "d"), nil).Times(2)

	input := recipient.ResolveInput{
		Context:    testContext,
		Recipients: scenarioRecipients(),
		Actor:      &model.Subscriber{SubscriberID: "d"},
	}

	first, err := uc.Resolve(context.Background(), input)
	require.NoError(t, err)
	second, err := uc.Resolve(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestResolve_Errors(t *testing.T) {
	t.Run("invalid recipient stops before any I/O", func(t *testing.T) {
		uc, deps := initUseCase(t, false)

		deps.flags.EXPECT().IsTopicNotificationEnabled(gomock.Any(), gomock.Any()).Times(0)

		_, err := uc.Resolve(context.Background(), recipient.ResolveInput{
			Context:    testContext,
			Recipients: []model.Recipient{model.NewTopicRecipient("t1"), {}},
		})
		assert.ErrorIs(t, err, recipient.ErrInvalidRecipient)
		assert.Equal(t, 1.0, testutil.ToFloat64(deps.metrics.ResolutionOutcome.WithLabelValues(metrics.StatusFailed)))
	})

	t.Run("flag failure", func(t *testing.T) {
		uc, deps := initUseCase(t, false)
		cause := errors.New("redis: connection refused")

		deps.flags.EXPECT().IsTopicNotificationEnabled(gomock.Any(), flagInput).Return(false, cause)
		deps.topicRepo.EXPECT().GetTopicSubscribers(gomock.Any(), gomock.Any()).Times(0)

		_, err := uc.Resolve(context.Background(), recipient.ResolveInput{
			Context:    testContext,
			Recipients: scenarioRecipients(),
		})
		assert.ErrorIs(t, err, recipient.ErrFeatureFlagUnavailable)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("topic lookup failure", func(t *testing.T) {
		uc, deps := initUseCase(t, false)

		deps.flags.EXPECT().IsTopicNotificationEnabled(gomock.Any(), flagInput).Return(true, nil)
		deps.topicRepo.EXPECT().GetTopicSubscribers(gomock.Any(), lookup("t1")).Return(nil, topic.ErrTopicNotFound)

		out, err := uc.Resolve(context.Background(), recipient.ResolveInput{
			Context:    testContext,
			Recipients: scenarioRecipients(),
		})
		assert.ErrorIs(t, err, recipient.ErrTopicLookupFailed)
		assert.ErrorIs(t, err, topic.ErrTopicNotFound)
		assert.Nil(t, out.Subscribers)

		var lookupErr *recipient.TopicLookupFailedError
		require.ErrorAs(t, err, &lookupErr)
		assert.Equal(t, "t1", lookupErr.TopicKey)
	})
}

func TestResolve_RecordsSuccessMetrics(t *testing.T) {
	uc, deps := initUseCase(t, false)

	deps.flags.EXPECT().IsTopicNotificationEnabled(gomock.Any(), flagInput).Return(true, nil)
	deps.topicRepo.EXPECT().GetTopicSubscribers(gomock.Any(), lookup("t1")).Return(members("b", "c"), nil)

	_, err := uc.Resolve(context.Background(), recipient.ResolveInput{
		Context:    testContext,
		Recipients: scenarioRecipients(),
	})
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(deps.metrics.ResolutionOutcome.WithLabelValues(metrics.StatusSuccess)))
	assert.Equal(t, 0.0, testutil.ToFloat64(deps.metrics.ResolutionOutcome.WithLabelValues(metrics.StatusFailed)))
	assert.Equal(t, 1, testutil.CollectAndCount(deps.metrics.TopicLookupLatency))
}
