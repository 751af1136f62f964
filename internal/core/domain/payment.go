package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Network identifies a settlement network.
type Network string

const (
	NetworkBitcoin   Network = "bitcoin"
	NetworkLightning Network = "lightning"
	NetworkLiquid    Network = "liquid"
	NetworkUnknown   Network = "unknown"
)

// ParseNetwork validates a caller-declared network value.
func ParseNetwork(s string) (Network, bool) {
	switch Network(s) {
	case NetworkBitcoin, NetworkLightning, NetworkLiquid:
		return Network(s), true
	}
	return NetworkUnknown, false
}

// PaymentStatus represents the lifecycle state of a payment request.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusSent    PaymentStatus = "sent"
	PaymentStatusError   PaymentStatus = "error"
)

// PaymentRequest is the central entity: one payment instruction moving
// through pending -> sent|error. Field names on the wire are camelCase;
// webhook payloads and stored files share this representation.
type PaymentRequest struct {
	ID                uuid.UUID     `json:"id"`
	TransactionID     string        `json:"transactionId"` // caller-supplied correlation token
	Username          string        `json:"username,omitempty"`
	Amount            int64         `json:"amount"` // smallest currency unit
	Network           Network       `json:"network"`
	DestinationWallet string        `json:"destinationWallet"`
	WebhookURL        string        `json:"webhookUrl,omitempty"`
	WebhookSecret     string        `json:"-"` // never serialized into records or payloads
	Status            PaymentStatus `json:"status"`
	Timestamp         time.Time     `json:"timestamp"`

	// Populated on success.
	TransactionHash string     `json:"transactionHash,omitempty"`
	CompletedAt     *time.Time `json:"completedAt,omitempty"`
	NetworkFee      int64      `json:"networkFee,omitempty"`

	// Populated on failure.
	Error   string     `json:"error,omitempty"`
	ErrorAt *time.Time `json:"errorAt,omitempty"`
}

// NewPaymentRequest builds a pending request at ingestion time.
func NewPaymentRequest(transactionID, username string, amount int64, network Network, destination string) *PaymentRequest {
	return &PaymentRequest{
		ID:                uuid.New(),
		TransactionID:     transactionID,
		Username:          username,
		Amount:            amount,
		Network:           network,
		DestinationWallet: destination,
		Status:            PaymentStatusPending,
		Timestamp:         time.Now().UTC(),
	}
}

// StorageKey derives the file key shared by the pending and sent partitions.
func (p *PaymentRequest) StorageKey() string {
	return fmt.Sprintf("%s_%s", p.ID, p.TransactionID)
}

// MarkSent transitions the request to its successful terminal state.
func (p *PaymentRequest) MarkSent(txHash string, fee int64) {
	now := time.Now().UTC()
	p.Status = PaymentStatusSent
	p.TransactionHash = txHash
	p.NetworkFee = fee
	p.CompletedAt = &now
}

// MarkError transitions the request to its failed terminal state.
func (p *PaymentRequest) MarkError(message string) {
	now := time.Now().UTC()
	p.Status = PaymentStatusError
	p.Error = message
	p.ErrorAt = &now
}

// IsTerminal returns true once the request left pending.
func (p *PaymentRequest) IsTerminal() bool {
	return p.Status == PaymentStatusSent || p.Status == PaymentStatusError
}

// SettlementResult is what a backend reports for a completed send.
type SettlementResult struct {
	TransactionHash string `json:"transactionHash"`
	Fee             int64  `json:"fee"` // smallest currency unit
}
