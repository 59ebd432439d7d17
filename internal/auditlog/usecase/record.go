package usecase

import (
	"context"

	"recipient-srv/internal/auditlog"
	"recipient-srv/internal/auditlog/repository"
)

func (uc *implUseCase) Record(ctx context.Context, entry auditlog.Entry) {
	if !uc.config.Enabled {
		return
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = uc.clock()
	}

	uc.mu.Lock()
	if uc.closed {
		uc.mu.Unlock()
		uc.l.Warnf(ctx, "internal.auditlog.usecase.Record: %v: dropping code=%s topic=%s", auditlog.ErrClosed, entry.Code, entry.TopicKey)
		return
	}
	uc.wg.Add(1)
	uc.mu.Unlock()

	// The write outlives the request that produced it.
	writeCtx := context.WithoutCancel(ctx)
	go func() {
		defer uc.wg.Done()

		ctx, cancel := context.WithTimeout(writeCtx, uc.config.WriteTimeout)
		defer cancel()

		if err := uc.repo.Create(ctx, repository.CreateOptions{Entry: entry}); err != nil {
			uc.l.Errorf(ctx, "internal.auditlog.usecase.Record.Create: code=%s topic=%s: %v", entry.Code, entry.TopicKey, err)
		}
	}()
}

func (uc *implUseCase) Close(ctx context.Context) error {
	uc.mu.Lock()
	uc.closed = true
	uc.mu.Unlock()

	done := make(chan struct{})
	go func() {
		uc.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
