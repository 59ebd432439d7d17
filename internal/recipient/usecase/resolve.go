package usecase

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"recipient-srv/internal/recipient"
	"recipient-srv/internal/recipient/metrics"
	pkgLog "recipient-srv/pkg/log"
)

func (uc *implUseCase) Resolve(ctx context.Context, input recipient.ResolveInput) (recipient.ResolveOutput, error) {
	ctx, span := uc.tracer.Start(ctx, "recipient.Resolve", trace.WithAttributes(
		attribute.String("transaction_id", input.Context.TransactionID),
		attribute.String("environment_id", input.Context.EnvironmentID),
		attribute.Int("recipients.input", len(input.Recipients)),
		attribute.Bool("actor.present", input.Actor != nil),
	))
	defer span.End()

	ctx = pkgLog.WithFields(ctx, "transaction_id", input.Context.TransactionID)

	direct, err := normalize(input.Recipients)
	if err != nil {
		uc.l.Warnf(ctx, "internal.recipient.usecase.Resolve.normalize: %v", err)
		return recipient.ResolveOutput{}, uc.fail(span, err)
	}

	topicDerived, err := uc.expandTopics(ctx, input.Context, input.Recipients)
	if err != nil {
		return recipient.ResolveOutput{}, uc.fail(span, err)
	}

	subs := merge(direct, topicDerived, input.Actor)

	span.SetAttributes(
		attribute.Int("recipients.direct", len(direct)),
		attribute.Int("recipients.topic", len(topicDerived)),
		attribute.Int("recipients.resolved", len(subs)),
	)
	uc.metrics.IncrementOutcome(metrics.StatusSuccess)
	uc.metrics.ObserveResolved(len(subs))
	uc.l.Debugf(ctx, "internal.recipient.usecase.Resolve: direct=%d topic=%d resolved=%d", len(direct), len(topicDerived), len(subs))

	return recipient.ResolveOutput{Subscribers: subs}, nil
}

func (uc *implUseCase) fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	uc.metrics.IncrementOutcome(metrics.StatusFailed)
	return err
}
