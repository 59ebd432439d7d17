package auditlog

import "context"

//go:generate mockgen -source=interface.go -destination=mocks/usecase.go -package=mocks

// UseCase records execution log entries. Recording never fails the caller.
type UseCase interface {
	// Record schedules entry for persistence and returns immediately.
	Record(ctx context.Context, entry Entry)
	// Close waits for scheduled writes to finish or ctx to expire.
	Close(ctx context.Context) error
}
