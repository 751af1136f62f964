package ports

import (
	"context"

	"lightning-payment-gateway/internal/core/domain"
)

// SettlementClient is one backend capable of moving funds. The program
// wires two logical instances: the unified LND client (on-chain bitcoin and
// Lightning through one node) and the Elements sidechain client.
type SettlementClient interface {
	// SendPayment moves amount (smallest unit) to destination and reports
	// the transaction hash and fee. Any backend error is returned as-is;
	// callers treat every failure as uniform and terminal.
	SendPayment(ctx context.Context, destination string, amount int64) (*domain.SettlementResult, error)

	// GetBalance reports the snapshot for the given kind. Each backend
	// supports a subset of kinds.
	GetBalance(ctx context.Context, kind domain.BalanceKind) (*domain.BalanceSnapshot, error)
}

// PaymentService drives a request through its lifecycle.
type PaymentService interface {
	Process(ctx context.Context, req *domain.PaymentRequest) (*domain.SettlementResult, error)
	GetBalance(ctx context.Context, network domain.Network) (*domain.BalanceSnapshot, error)
	// GetAllBalances fetches every backend concurrently; one failure fails
	// the whole call, never a partial result.
	GetAllBalances(ctx context.Context) (*domain.AllBalances, error)
}

// WebhookDispatcher delivers signed notifications. Delivery failure is
// absorbed: Notify reports a boolean and durably captures exhausted
// deliveries on its own.
type WebhookDispatcher interface {
	Notify(ctx context.Context, url string, event domain.WebhookEvent, data interface{}, secret string) bool
	SendTest(ctx context.Context, url string, secret string) bool
	ReprocessFailed(ctx context.Context) (*ReprocessResult, error)
}

// ReprocessResult summarizes a failed-webhook replay pass.
type ReprocessResult struct {
	Redelivered int `json:"redelivered"`
	Remaining   int `json:"remaining"`
}

// SignatureService handles HMAC-SHA256 signing and verification.
type SignatureService interface {
	Sign(secretKey string, payload []byte) string
	Verify(secretKey string, payload []byte, signature string) bool
}
