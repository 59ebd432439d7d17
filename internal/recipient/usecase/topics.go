package usecase

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"recipient-srv/internal/auditlog"
	"recipient-srv/internal/featureflag"
	"recipient-srv/internal/model"
	"recipient-srv/internal/recipient"
	"recipient-srv/internal/recipient/metrics"
	"recipient-srv/internal/topic"
)

// expandTopics resolves every topic reference to its members. Lookups run
// concurrently; results are reassembled in reference order. Returns an empty
// list without any lookup when topic notifications are disabled.
func (uc *implUseCase) expandTopics(ctx context.Context, rc recipient.ResolutionContext, recipients []model.Recipient) ([]model.Subscriber, error) {
	enabled, err := uc.flags.IsTopicNotificationEnabled(ctx, featureflag.Input{
		EnvironmentID:  rc.EnvironmentID,
		OrganizationID: rc.OrganizationID,
		UserID:         rc.UserID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.recipient.usecase.expandTopics.IsTopicNotificationEnabled: %v", err)
		return nil, &recipient.FeatureFlagUnavailableError{Err: err}
	}
	if !enabled {
		uc.l.Debugf(ctx, "internal.recipient.usecase.expandTopics: topic notifications disabled")
		return []model.Subscriber{}, nil
	}

	refs := findTopics(recipients)
	if len(refs) == 0 {
		return []model.Subscriber{}, nil
	}

	results := make([][]model.Subscriber, len(refs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.config.TopicLookupConcurrency)
	for i, ref := range refs {
		g.Go(func() error {
			subs, err := uc.getTopicSubscribers(gctx, rc, ref)
			if err != nil {
				return err
			}
			results[i] = subs
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, err
	}

	total := 0
	for _, subs := range results {
		total += len(subs)
	}
	res := make([]model.Subscriber, 0, total)
	for _, subs := range results {
		res = append(res, subs...)
	}
	return res, nil
}

func (uc *implUseCase) getTopicSubscribers(ctx context.Context, rc recipient.ResolutionContext, ref model.TopicReference) ([]model.Subscriber, error) {
	start := time.Now()
	members, err := uc.topicRepo.GetTopicSubscribers(ctx, topic.GetSubscribersOptions{
		EnvironmentID:  rc.EnvironmentID,
		OrganizationID: rc.OrganizationID,
		TopicKey:       ref.TopicKey,
	})
	if err != nil {
		// Siblings of a failed lookup are canceled through the group context;
		// they are not failures of their own topic.
		if ctx.Err() != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
			uc.metrics.ObserveTopicLookup(metrics.StatusCanceled, time.Since(start))
			return nil, &recipient.TopicLookupFailedError{TopicKey: ref.TopicKey, Err: err}
		}
		uc.metrics.ObserveTopicLookup(metrics.StatusFailed, time.Since(start))
		uc.recordLookup(ctx, rc, ref, auditlog.StatusFailed, err.Error(), nil)
		uc.l.Warnf(ctx, "internal.recipient.usecase.getTopicSubscribers: topic=%s: %v", ref.TopicKey, err)
		return nil, &recipient.TopicLookupFailedError{TopicKey: ref.TopicKey, Err: err}
	}
	uc.metrics.ObserveTopicLookup(metrics.StatusSuccess, time.Since(start))

	subs := make([]model.Subscriber, len(members))
	for i, m := range members {
		subs[i] = model.NewSubscriber(m.ExternalSubscriberID)
	}

	uc.recordLookup(ctx, rc, ref, auditlog.StatusSuccess, "Topic subscribers fetched", map[string]any{
		"subscriber_count": len(subs),
	})
	return subs, nil
}

func (uc *implUseCase) recordLookup(ctx context.Context, rc recipient.ResolutionContext, ref model.TopicReference, status auditlog.Status, text string, raw map[string]any) {
	if uc.audit == nil {
		return
	}

	code := auditlog.CodeTopicSubscribersFetched
	if status == auditlog.StatusFailed {
		code = auditlog.CodeTopicSubscribersFailed
	}

	uc.audit.Record(ctx, auditlog.Entry{
		EnvironmentID:  rc.EnvironmentID,
		OrganizationID: rc.OrganizationID,
		TopicKey:       ref.TopicKey,
		TransactionID:  rc.TransactionID,
		UserID:         rc.UserID,
		Code:           code,
		Status:         status,
		Text:           text,
		Raw:            raw,
	})
}
