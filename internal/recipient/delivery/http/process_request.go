package http

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"recipient-srv/internal/model"
	"recipient-srv/pkg/scope"
)

// processResolveRequest binds and validates the body and returns it with the
// caller's scope. A missing transaction id is generated.
func (h *Handler) processResolveRequest(c *gin.Context) (resolveReq, model.Scope, error) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		return resolveReq{}, model.Scope{}, errUnauthorized
	}

	var req resolveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.recipient.delivery.http.processResolveRequest.ShouldBindJSON: %v", err)
		if errors.Is(err, errInvalidActor) {
			return resolveReq{}, model.Scope{}, errInvalidActor
		}
		return resolveReq{}, model.Scope{}, errWrongBody
	}

	if err := req.validate(); err != nil {
		h.l.Warnf(ctx, "internal.recipient.delivery.http.processResolveRequest.validate: %v", err)
		return resolveReq{}, model.Scope{}, err
	}

	if req.TransactionID == "" {
		req.TransactionID = uuid.NewString()
	}

	return req, sc, nil
}
