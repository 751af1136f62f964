package handler

import (
	"time"

	"lightning-payment-gateway/internal/adapter/http/dto"
	"lightning-payment-gateway/internal/core/domain"
	"lightning-payment-gateway/internal/core/ports"
	"lightning-payment-gateway/pkg/apperror"
	"lightning-payment-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles payment submission and listing endpoints.
type PaymentHandler struct {
	paymentSvc ports.PaymentService
	store      ports.PaymentStore
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentSvc ports.PaymentService, store ports.PaymentStore) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc, store: store}
}

// ProcessPayment handles POST /api/v1/payments.
func (h *PaymentHandler) ProcessPayment(c *gin.Context) {
	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	network, ok := domain.ParseNetwork(req.Network)
	if !ok {
		response.Error(c, apperror.ErrUnsupportedNetwork(req.Network))
		return
	}

	payment := domain.NewPaymentRequest(req.TransactionID, req.Username, req.Amount, network, req.DestinationWallet)
	payment.WebhookURL = req.WebhookURL
	payment.WebhookSecret = req.WebhookSecret

	// The request is accepted only once it is durably pending.
	if err := h.store.Save(c.Request.Context(), payment); err != nil {
		response.Error(c, apperror.ErrPersistence(err))
		return
	}

	if _, err := h.paymentSvc.Process(c.Request.Context(), payment); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toPaymentResponse(payment))
}

// ListPending handles GET /api/v1/payments/pending.
func (h *PaymentHandler) ListPending(c *gin.Context) {
	records, err := h.store.ListPending(c.Request.Context())
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	response.OK(c, records)
}

// ListSent handles GET /api/v1/payments/sent.
func (h *PaymentHandler) ListSent(c *gin.Context) {
	records, err := h.store.ListSent(c.Request.Context())
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	response.OK(c, records)
}

func toPaymentResponse(p *domain.PaymentRequest) dto.PaymentResponse {
	resp := dto.PaymentResponse{
		ID:              p.ID.String(),
		TransactionID:   p.TransactionID,
		Network:         string(p.Network),
		Amount:          p.Amount,
		Status:          string(p.Status),
		TransactionHash: p.TransactionHash,
		NetworkFee:      p.NetworkFee,
	}
	if p.CompletedAt != nil {
		resp.CompletedAt = p.CompletedAt.Format(time.RFC3339)
	}
	return resp
}
