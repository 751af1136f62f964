package domain

import (
	"encoding/json"
	"time"
)

// WebhookEvent identifies a lifecycle notification.
type WebhookEvent string

const (
	WebhookEventPending   WebhookEvent = "payment.pending"
	WebhookEventCompleted WebhookEvent = "payment.completed"
	WebhookEventFailed    WebhookEvent = "payment.failed"
	WebhookEventTest      WebhookEvent = "webhook.test"
)

// ServerInfo identifies the sending gateway in webhook payloads.
type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// WebhookPayload is the exact wire shape of an outbound notification.
// The serialized bytes are produced once and reused for signing and
// transmission, so a receiver can verify the signature over the raw body.
type WebhookPayload struct {
	Event     WebhookEvent `json:"event"`
	Timestamp string       `json:"timestamp"` // ISO-8601, generation time
	Data      interface{}  `json:"data"`
	Server    ServerInfo   `json:"server"`
}

// FailedWebhook is the durable record written when every delivery attempt
// for one notification has been exhausted.
type FailedWebhook struct {
	URL           string          `json:"url"`
	Secret        string          `json:"secret,omitempty"`
	CorrelationID string          `json:"correlationId"`
	Event         WebhookEvent    `json:"event"`
	Payload       json.RawMessage `json:"payload"` // full serialized WebhookPayload
	Error         string          `json:"error"`
	FailedAt      time.Time       `json:"failedAt"`
	AttemptsMade  int             `json:"attemptsMade"`
}
