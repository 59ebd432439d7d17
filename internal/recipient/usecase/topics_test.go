package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"recipient-srv/internal/auditlog"
	"recipient-srv/internal/model"
	"recipient-srv/internal/recipient"
	"recipient-srv/internal/topic"
)

func TestExpandTopics_OrderIndependentOfTiming(t *testing.T) {
	uc, deps := initUseCase(t, false)

	delays := map[string]time.Duration{
		"slow":   30 * time.Millisecond,
		"medium": 15 * time.Millisecond,
		"fast":   0,
	}
	membersByKey := map[string][]topic.Subscriber{
		"slow":   members("s1", "s2"),
		"medium": members("m1"),
		"fast":   members("f1", "s1"),
	}

	deps.flags.EXPECT().IsTopicNotificationEnabled(gomock.Any(), flagInput).Return(true, nil)
	deps.topicRepo.EXPECT().GetTopicSubscribers(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, opts topic.GetSubscribersOptions) ([]topic.Subscriber, error) {
			time.Sleep(delays[opts.TopicKey])
			return membersByKey[opts.TopicKey], nil
		}).Times(3)

	got, err := uc.expandTopics(context.Background(), testContext, []model.Recipient{
		model.NewTopicRecipient("slow"),
		model.NewSubscriberIDRecipient("a"),
		model.NewTopicRecipient("medium"),
		model.NewTopicRecipient("fast"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"s1", "s2", "m1", "f1", "s1"}, subscriberIDs(got))
}

func TestExpandTopics_RepeatedKeysLookedUpEachTime(t *testing.T) {
	uc, deps := initUseCase(t, false)

	deps.flags.EXPECT().IsTopicNotificationEnabled(gomock.Any(), flagInput).Return(true, nil)
	deps.topicRepo.EXPECT().GetTopicSubscribers(gomock.Any(), lookup("t1")).Return(members("x"), nil).Times(2)

	got, err := uc.expandTopics(context.Background(), testContext, []model.Recipient{
		model.NewTopicRecipient("t1"),
		model.NewTopicRecipient("t1"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "x"}, subscriberIDs(got))
}

func TestExpandTopics_OnlySubscriberIDPropagated(t *testing.T) {
	uc, deps := initUseCase(t, false)

	deps.flags.EXPECT().IsTopicNotificationEnabled(gomock.Any(), flagInput).Return(true, nil)
	deps.topicRepo.EXPECT().GetTopicSubscribers(gomock.Any(), lookup("t1")).Return([]topic.Subscriber{
		{TopicID: "tp-1", TopicKey: "t1", SubscriberID: "internal-1", ExternalSubscriberID: "ext-1"},
	}, nil)

	got, err := uc.expandTopics(context.Background(), testContext, []model.Recipient{model.NewTopicRecipient("t1")})
	require.NoError(t, err)
	assert.Equal(t, []model.Subscriber{{SubscriberID: "ext-1"}}, got)
}

func TestExpandTopics_ConcurrencyLimit(t *testing.T) {
	uc, deps := initUseCase(t, false)
	uc.config.TopicLookupConcurrency = 2

	var inFlight, peak atomic.Int32
	deps.flags.EXPECT().IsTopicNotificationEnabled(gomock.Any(), flagInput).Return(true, nil)
	deps.topicRepo.EXPECT().GetTopicSubscribers(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, opts topic.GetSubscribersOptions) ([]topic.Subscriber, error) {
			n := inFlight.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			inFlight.Add(-1)
			return members(opts.TopicKey), nil
		}).Times(6)

	refs := make([]model.Recipient, 6)
	for i := range refs {
		refs[i] = model.NewTopicRecipient(string(rune('a' + i)))
	}

	got, err := uc.expandTopics(context.Background(), testContext, refs)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, subscriberIDs(got))
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestExpandTopics_FailureAbortsWhole(t *testing.T) {
	uc, deps := initUseCase(t, false)
	cause := errors.New("pq: connection reset")

	deps.flags.EXPECT().IsTopicNotificationEnabled(gomock.Any(), flagInput).Return(true, nil)
	deps.topicRepo.EXPECT().GetTopicSubscribers(gomock.Any(), lookup("ok")).Return(members("a"), nil).AnyTimes()
	deps.topicRepo.EXPECT().GetTopicSubscribers(gomock.Any(), lookup("broken")).Return(nil, cause)

	got, err := uc.expandTopics(context.Background(), testContext, []model.Recipient{
		model.NewTopicRecipient("ok"),
		model.NewTopicRecipient("broken"),
	})
	assert.Nil(t, got)
	assert.ErrorIs(t, err, recipient.ErrTopicLookupFailed)
	assert.ErrorIs(t, err, cause)
}

func TestExpandTopics_CallerCancellation(t *testing.T) {
	uc, deps := initUseCase(t, false)
	ctx, cancel := context.WithCancel(context.Background())

	deps.flags.EXPECT().IsTopicNotificationEnabled(gomock.Any(), flagInput).Return(true, nil)
	deps.topicRepo.EXPECT().GetTopicSubscribers(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, opts topic.GetSubscribersOptions) ([]topic.Subscriber, error) {
			cancel()
			<-ctx.Done()
			return nil, ctx.Err()
		}).MinTimes(1)

	got, err := uc.expandTopics(ctx, testContext, []model.Recipient{
		model.NewTopicRecipient("t1"),
		model.NewTopicRecipient("t2"),
	})
	assert.Nil(t, got)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, recipient.ErrTopicLookupFailed)
}

func TestExpandTopics_RecordsAudit(t *testing.T) {
	uc, deps := initUseCase(t, true)
	cause := errors.New("pq: timeout")

	deps.flags.EXPECT().IsTopicNotificationEnabled(gomock.Any(), flagInput).Return(true, nil)
	deps.topicRepo.EXPECT().GetTopicSubscribers(gomock.Any(), lookup("t1")).Return(members("a", "b"), nil)
	deps.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Do(func(ctx context.Context, entry auditlog.Entry) {
		assert.Equal(t, "env-1", entry.EnvironmentID)
		assert.Equal(t, "org-1", entry.OrganizationID)
		assert.Equal(t, "t1", entry.TopicKey)
		assert.Equal(t, "tx-1", entry.TransactionID)
		assert.Equal(t, "user-1", entry.UserID)
		assert.Equal(t, auditlog.CodeTopicSubscribersFetched, entry.Code)
		assert.Equal(t, auditlog.StatusSuccess, entry.Status)
		assert.Equal(t, 2, entry.Raw["subscriber_count"])
	})

	_, err := uc.expandTopics(context.Background(), testContext, []model.Recipient{model.NewTopicRecipient("t1")})
	require.NoError(t, err)

	deps.flags.EXPECT().IsTopicNotificationEnabled(gomock.Any(), flagInput).Return(true, nil)
	deps.topicRepo.EXPECT().GetTopicSubscribers(gomock.Any(), lookup("t2")).Return(nil, cause)
	deps.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Do(func(ctx context.Context, entry auditlog.Entry) {
		assert.Equal(t, "t2", entry.TopicKey)
		assert.Equal(t, auditlog.CodeTopicSubscribersFailed, entry.Code)
		assert.Equal(t, auditlog.StatusFailed, entry.Status)
		assert.Equal(t, cause.Error(), entry.Text)
	})

	_, err = uc.expandTopics(context.Background(), testContext, []model.Recipient{model.NewTopicRecipient("t2")})
	assert.ErrorIs(t, err, recipient.ErrTopicLookupFailed)
}

func TestExpandTopics_CanceledSiblingsNotAuditedAsFailed(t *testing.T) {
	uc, deps := initUseCase(t, true)
	cause := errors.New("pq: connection reset")

	deps.flags.EXPECT().IsTopicNotificationEnabled(gomock.Any(), flagInput).Return(true, nil)
	deps.topicRepo.EXPECT().GetTopicSubscribers(gomock.Any(), lookup("slow")).
		DoAndReturn(func(ctx context.Context, opts topic.GetSubscribersOptions) ([]topic.Subscriber, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})
	deps.topicRepo.EXPECT().GetTopicSubscribers(gomock.Any(), lookup("broken")).Return(nil, cause)
	deps.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Do(func(ctx context.Context, entry auditlog.Entry) {
		assert.Equal(t, "broken", entry.TopicKey)
		assert.Equal(t, auditlog.StatusFailed, entry.Status)
		assert.Equal(t, cause.Error(), entry.Text)
	}).Times(1)

	got, err := uc.expandTopics(context.Background(), testContext, []model.Recipient{
		model.NewTopicRecipient("slow"),
		model.NewTopicRecipient("broken"),
	})
	assert.Nil(t, got)
	assert.ErrorIs(t, err, cause)

	// one failed and one canceled series
	assert.Equal(t, 2, testutil.CollectAndCount(deps.metrics.TopicLookupLatency))
}
