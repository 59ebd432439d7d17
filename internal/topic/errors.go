package topic

import "errors"

var (
	ErrTopicNotFound = errors.New("topic not found")
	ErrFieldRequired = errors.New("field required")
)
