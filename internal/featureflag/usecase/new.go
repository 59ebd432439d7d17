package usecase

import (
	"recipient-srv/internal/featureflag"
	pkgLog "recipient-srv/pkg/log"
	pkgRedis "recipient-srv/pkg/redis"
)

// Config holds the defaults used when no override is stored.
type Config struct {
	TopicNotificationEnabled bool
}

type implUseCase struct {
	l      pkgLog.Logger
	redis  pkgRedis.IRedis
	config Config
}

func New(l pkgLog.Logger, redis pkgRedis.IRedis, cfg Config) featureflag.UseCase {
	return &implUseCase{
		l:      l,
		redis:  redis,
		config: cfg,
	}
}
