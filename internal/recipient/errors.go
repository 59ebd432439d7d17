package recipient

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRecipient       = errors.New("invalid recipient")
	ErrFeatureFlagUnavailable = errors.New("feature flag unavailable")
	ErrTopicLookupFailed      = errors.New("topic lookup failed")
)

// InvalidRecipientError reports a recipient entry that is neither an
// identifier, a subscriber object nor a topic reference.
type InvalidRecipientError struct {
	Index  int
	Reason string
}

func (e *InvalidRecipientError) Error() string {
	return fmt.Sprintf("%s at index %d: %s", ErrInvalidRecipient, e.Index, e.Reason)
}

func (e *InvalidRecipientError) Is(target error) bool {
	return target == ErrInvalidRecipient
}

// FeatureFlagUnavailableError wraps a failed topic-notification flag check.
type FeatureFlagUnavailableError struct {
	Err error
}

func (e *FeatureFlagUnavailableError) Error() string {
	return fmt.Sprintf("%s: %v", ErrFeatureFlagUnavailable, e.Err)
}

func (e *FeatureFlagUnavailableError) Unwrap() error {
	return e.Err
}

func (e *FeatureFlagUnavailableError) Is(target error) bool {
	return target == ErrFeatureFlagUnavailable
}

// TopicLookupFailedError wraps a failed membership lookup for TopicKey.
type TopicLookupFailedError struct {
	TopicKey string
	Err      error
}

func (e *TopicLookupFailedError) Error() string {
	return fmt.Sprintf("%s: topic %q: %v", ErrTopicLookupFailed, e.TopicKey, e.Err)
}

func (e *TopicLookupFailedError) Unwrap() error {
	return e.Err
}

func (e *TopicLookupFailedError) Is(target error) bool {
	return target == ErrTopicLookupFailed
}
