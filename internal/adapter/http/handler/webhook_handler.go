package handler

import (
	"lightning-payment-gateway/internal/adapter/http/dto"
	"lightning-payment-gateway/internal/core/ports"
	"lightning-payment-gateway/pkg/apperror"
	"lightning-payment-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// WebhookHandler handles operator webhook endpoints.
type WebhookHandler struct {
	dispatcher ports.WebhookDispatcher
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(dispatcher ports.WebhookDispatcher) *WebhookHandler {
	return &WebhookHandler{dispatcher: dispatcher}
}

// SendTest handles POST /api/v1/webhooks/test. It probes a receiver with a
// signed webhook.test event so operators can verify their endpoint config.
func (h *WebhookHandler) SendTest(c *gin.Context) {
	var req dto.WebhookTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	delivered := h.dispatcher.SendTest(c.Request.Context(), req.URL, req.Secret)
	response.OK(c, dto.WebhookTestResponse{Delivered: delivered})
}

// Reprocess handles POST /api/v1/webhooks/reprocess. It replays every
// captured failure record; records are deleted only when redelivered.
func (h *WebhookHandler) Reprocess(c *gin.Context) {
	result, err := h.dispatcher.ReprocessFailed(c.Request.Context())
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	response.OK(c, result)
}
