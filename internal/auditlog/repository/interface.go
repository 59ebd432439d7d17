package repository

import (
	"context"

	"recipient-srv/internal/auditlog"
)

// Repository persists execution log entries.
type Repository interface {
	Create(ctx context.Context, opts CreateOptions) error
}

// CreateOptions contains options for creating an entry.
type CreateOptions struct {
	Entry auditlog.Entry
}
