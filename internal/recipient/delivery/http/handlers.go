package http

import (
	"github.com/gin-gonic/gin"

	"recipient-srv/pkg/log"
	"recipient-srv/pkg/response"
)

// Resolve resolves the final recipient list of a trigger.
// @Summary Resolve trigger recipients
// @Description Normalizes direct recipients, expands topic references and returns the deduplicated subscriber list. The actor is excluded from topic-derived recipients only.
// @Tags Recipient
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body resolveReq true "Trigger recipients"
// @Success 200 {object} response.Resp{data=resolveResp} "Resolved recipients"
// @Failure 400 {object} response.Resp "Invalid recipient or body"
// @Failure 401 {object} response.Resp "Unauthorized"
// @Failure 408 {object} response.Resp "Request canceled"
// @Failure 502 {object} response.Resp "Topic lookup failed"
// @Failure 503 {object} response.Resp "Feature flag unavailable"
// @Router /api/v1/triggers/recipients [POST]
func (h *Handler) Resolve(c *gin.Context) {
	req, sc, err := h.processResolveRequest(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	ctx := log.WithFields(c.Request.Context(), "transaction_id", req.TransactionID)
	c.Header("X-Transaction-Id", req.TransactionID)

	o, err := h.uc.Resolve(ctx, req.toInput(sc))
	if err != nil {
		h.l.Warnf(ctx, "internal.recipient.delivery.http.Resolve.Resolve: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newResolveResp(req.TransactionID, o))
}
