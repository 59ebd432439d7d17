package usecase

import (
	"sync"
	"time"

	"recipient-srv/internal/auditlog"
	"recipient-srv/internal/auditlog/repository"
	pkgLog "recipient-srv/pkg/log"
)

const defaultWriteTimeout = 5 * time.Second

// Config controls the audit writer.
type Config struct {
	Enabled      bool
	WriteTimeout time.Duration
}

type implUseCase struct {
	l      pkgLog.Logger
	repo   repository.Repository
	config Config
	clock  func() time.Time

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

func New(l pkgLog.Logger, repo repository.Repository, cfg Config) auditlog.UseCase {
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = defaultWriteTimeout
	}
	return &implUseCase{
		l:      l,
		repo:   repo,
		config: cfg,
		clock:  time.Now,
	}
}
