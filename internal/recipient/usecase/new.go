package usecase

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"recipient-srv/internal/auditlog"
	"recipient-srv/internal/featureflag"
	"recipient-srv/internal/recipient"
	"recipient-srv/internal/recipient/metrics"
	"recipient-srv/internal/topic"
	pkgLog "recipient-srv/pkg/log"
)

const (
	tracerName                    = "recipient-srv/internal/recipient/usecase"
	defaultTopicLookupConcurrency = 8
)

// Config tunes the resolver.
type Config struct {
	// TopicLookupConcurrency bounds in-flight membership lookups per call.
	TopicLookupConcurrency int
}

type implUseCase struct {
	l         pkgLog.Logger
	topicRepo topic.Repository
	flags     featureflag.UseCase
	audit     auditlog.UseCase
	metrics   *metrics.Metrics
	tracer    trace.Tracer
	config    Config
}

// New creates the recipient resolver. audit and m may be nil.
func New(
	l pkgLog.Logger,
	topicRepo topic.Repository,
	flags featureflag.UseCase,
	audit auditlog.UseCase,
	m *metrics.Metrics,
	cfg Config,
) recipient.UseCase {
	if cfg.TopicLookupConcurrency <= 0 {
		cfg.TopicLookupConcurrency = defaultTopicLookupConcurrency
	}
	return &implUseCase{
		l:         l,
		topicRepo: topicRepo,
		flags:     flags,
		audit:     audit,
		metrics:   m,
		tracer:    otel.Tracer(tracerName),
		config:    cfg,
	}
}
