package auditlog

import "errors"

var (
	ErrClosed = errors.New("audit log closed")
)
