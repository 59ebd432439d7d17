package http

import (
	"context"
	"errors"
	"net/http"

	"recipient-srv/internal/recipient"
	pkgErrors "recipient-srv/pkg/errors"
)

var (
	errWrongBody    = pkgErrors.NewHTTPError(40001, "Wrong body", http.StatusBadRequest)
	errMissingTo    = pkgErrors.NewValidationError(40002, "to", "is required")
	errInvalidActor = pkgErrors.NewValidationError(40003, "actor", "must be a subscriber id or an object with subscriberId")
	errUnauthorized = pkgErrors.NewUnauthorizedHTTPError()

	errRequestCanceled = pkgErrors.NewHTTPError(40801, "Request canceled", http.StatusRequestTimeout)
	errFlagUnavailable = pkgErrors.NewHTTPError(50301, "Feature flag service unavailable, retry the trigger", http.StatusServiceUnavailable)
	errTopicLookup     = pkgErrors.NewHTTPError(50201, "Topic lookup failed, retry the trigger", http.StatusBadGateway)
)

// mapError converts use case errors to HTTP errors. Cancellation is checked
// first since a lookup failure may wrap it.
func (h *Handler) mapError(err error) error {
	var httpErr *pkgErrors.HTTPError
	var validationErr *pkgErrors.ValidationError
	var invalid *recipient.InvalidRecipientError

	switch {
	case errors.As(err, &httpErr):
		return httpErr
	case errors.As(err, &validationErr):
		return validationErr
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return errRequestCanceled
	case errors.As(err, &invalid):
		return pkgErrors.NewValidationError(40004, "to", invalid.Error())
	case errors.Is(err, recipient.ErrFeatureFlagUnavailable):
		return errFlagUnavailable
	case errors.Is(err, recipient.ErrTopicLookupFailed):
		return errTopicLookup
	default:
		return err
	}
}
