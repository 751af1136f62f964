package handler

import (
	"lightning-payment-gateway/internal/adapter/http/middleware"
	"lightning-payment-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	PaymentSvc     ports.PaymentService
	PaymentStore   ports.PaymentStore
	WebhookSvc     ports.WebhookDispatcher
	HealthCheckers []ports.HealthChecker
	APIKey         string // empty = auth disabled
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Deep health check, pings both settlement backends
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// API v1 routes, key-protected when a key is configured
	v1 := r.Group("/api/v1", middleware.APIKeyAuth(deps.APIKey))

	paymentHandler := NewPaymentHandler(deps.PaymentSvc, deps.PaymentStore)
	payments := v1.Group("/payments")
	{
		payments.POST("", paymentHandler.ProcessPayment)
		payments.GET("/pending", paymentHandler.ListPending)
		payments.GET("/sent", paymentHandler.ListSent)
	}

	balanceHandler := NewBalanceHandler(deps.PaymentSvc)
	balances := v1.Group("/balances")
	{
		balances.GET("", balanceHandler.GetAllBalances)
		balances.GET("/:network", balanceHandler.GetBalance)
	}

	webhookHandler := NewWebhookHandler(deps.WebhookSvc)
	webhooks := v1.Group("/webhooks")
	{
		webhooks.POST("/test", webhookHandler.SendTest)
		webhooks.POST("/reprocess", webhookHandler.Reprocess)
	}

	return r
}
