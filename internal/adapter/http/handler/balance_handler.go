package handler

import (
	"lightning-payment-gateway/internal/core/domain"
	"lightning-payment-gateway/internal/core/ports"
	"lightning-payment-gateway/pkg/apperror"
	"lightning-payment-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// BalanceHandler handles balance query endpoints.
type BalanceHandler struct {
	paymentSvc ports.PaymentService
}

// NewBalanceHandler creates a new BalanceHandler.
func NewBalanceHandler(paymentSvc ports.PaymentService) *BalanceHandler {
	return &BalanceHandler{paymentSvc: paymentSvc}
}

// GetAllBalances handles GET /api/v1/balances.
func (h *BalanceHandler) GetAllBalances(c *gin.Context) {
	balances, err := h.paymentSvc.GetAllBalances(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, balances)
}

// GetBalance handles GET /api/v1/balances/:network.
func (h *BalanceHandler) GetBalance(c *gin.Context) {
	network, ok := domain.ParseNetwork(c.Param("network"))
	if !ok {
		response.Error(c, apperror.ErrUnsupportedNetwork(c.Param("network")))
		return
	}

	snap, err := h.paymentSvc.GetBalance(c.Request.Context(), network)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, snap)
}
