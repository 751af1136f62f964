package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"lightning-payment-gateway/internal/core/domain"
	"lightning-payment-gateway/internal/core/ports"
	"lightning-payment-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Webhook signature headers. Both signature headers carry the identical
// sha256=<hex> value so receivers written against either convention verify.
const (
	HeaderWebhookSignature = "X-Webhook-Signature"
	HeaderSignature        = "X-Signature"
	HeaderWebhookTimestamp = "X-Webhook-Timestamp"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// WebhookOptions configures delivery behavior.
type WebhookOptions struct {
	Timeout       time.Duration // per-attempt timeout
	RetryAttempts int           // retries after the first attempt
	RetryDelay    time.Duration // fixed delay between attempts
	Server        domain.ServerInfo
}

// webhookDispatcher implements ports.WebhookDispatcher.
type webhookDispatcher struct {
	failStore  ports.FailedWebhookStore
	sigSvc     ports.SignatureService
	httpClient HTTPClient
	opts       WebhookOptions
	log        zerolog.Logger
}

// NewWebhookDispatcher creates a new webhook dispatcher.
func NewWebhookDispatcher(
	failStore ports.FailedWebhookStore,
	sigSvc ports.SignatureService,
	httpClient HTTPClient,
	opts WebhookOptions,
	log zerolog.Logger,
) ports.WebhookDispatcher {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.RetryAttempts < 0 {
		opts.RetryAttempts = 0
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = 5 * time.Second
	}
	return &webhookDispatcher{
		failStore:  failStore,
		sigSvc:     sigSvc,
		httpClient: httpClient,
		opts:       opts,
		log:        log,
	}
}

// Notify builds, signs and delivers one notification. It never returns an
// error: delivery failure is retried, then durably captured, and the caller
// only learns the boolean outcome.
func (s *webhookDispatcher) Notify(ctx context.Context, url string, event domain.WebhookEvent, data interface{}, secret string) bool {
	payload := domain.WebhookPayload{
		Event:     event,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Data:      data,
		Server:    s.opts.Server,
	}

	// Serialized exactly once; the same bytes are signed and transmitted.
	body, err := json.Marshal(payload)
	if err != nil {
		s.log.Error().Err(err).Str("event", string(event)).Msg("webhook: failed to marshal payload")
		return false
	}

	corrID := correlationID(data)
	if s.send(ctx, url, corrID, string(event), body, secret) {
		return true
	}

	rec := &domain.FailedWebhook{
		URL:           url,
		Secret:        secret,
		CorrelationID: corrID,
		Event:         event,
		Payload:       body,
		Error:         fmt.Sprintf("delivery failed after %d attempts", s.attempts()),
		FailedAt:      time.Now().UTC(),
		AttemptsMade:  s.attempts(),
	}
	if err := s.failStore.Save(ctx, rec); err != nil {
		s.log.Error().Err(err).Str("correlation_id", corrID).Msg("webhook: failed to persist failure record")
	}
	return false
}

// SendTest delivers a webhook.test event so operators can verify their
// receiver before going live.
func (s *webhookDispatcher) SendTest(ctx context.Context, url string, secret string) bool {
	data := map[string]string{
		"message": "webhook configuration test",
	}
	return s.Notify(ctx, url, domain.WebhookEventTest, data, secret)
}

// ReprocessFailed replays every persisted failure record through the same
// delivery path with a fresh retry budget. A record is deleted only after
// its resend succeeds.
func (s *webhookDispatcher) ReprocessFailed(ctx context.Context) (*ports.ReprocessResult, error) {
	stored, err := s.failStore.List(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list failed webhooks: %w", err))
	}

	res := &ports.ReprocessResult{}
	for _, f := range stored {
		if !s.send(ctx, f.Record.URL, f.Record.CorrelationID, string(f.Record.Event), f.Record.Payload, f.Record.Secret) {
			res.Remaining++
			continue
		}
		res.Redelivered++
		if err := s.failStore.Delete(ctx, f.Name); err != nil {
			s.log.Error().Err(err).Str("record", f.Name).Msg("webhook: redelivered but failed to delete failure record")
		}
	}

	s.log.Info().
		Int("redelivered", res.Redelivered).
		Int("remaining", res.Remaining).
		Msg("webhook: reprocess pass finished")
	return res, nil
}

// send runs the full fixed-delay retry loop over the exact payload bytes.
func (s *webhookDispatcher) send(ctx context.Context, url, corrID, event string, body []byte, secret string) bool {
	signature := ""
	if secret != "" {
		signature = "sha256=" + s.sigSvc.Sign(secret, body)
	}

	attempts := s.attempts()
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			time.Sleep(s.opts.RetryDelay)
		}

		err := s.deliver(ctx, url, body, signature)
		if err == nil {
			s.log.Info().
				Str("event", event).
				Str("correlation_id", corrID).
				Int("attempt", attempt).
				Msg("webhook: delivered")
			return true
		}
		s.log.Warn().Err(err).
			Str("event", event).
			Str("correlation_id", corrID).
			Int("attempt", attempt).
			Msg("webhook: delivery attempt failed")
	}

	s.log.Error().
		Str("event", event).
		Str("correlation_id", corrID).
		Str("url", url).
		Int("attempts", attempts).
		Msg("webhook: all delivery attempts exhausted")
	return false
}

// deliver performs one POST attempt with a bounded timeout. Only 2xx counts
// as success.
func (s *webhookDispatcher) deliver(ctx context.Context, url string, body []byte, signature string) error {
	attemptCtx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderWebhookTimestamp, strconv.FormatInt(time.Now().Unix(), 10))
	if signature != "" {
		req.Header.Set(HeaderWebhookSignature, signature)
		req.Header.Set(HeaderSignature, signature)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}

func (s *webhookDispatcher) attempts() int {
	return 1 + s.opts.RetryAttempts
}

// correlationID ties log lines and failure records back to the payment the
// notification describes.
func correlationID(data interface{}) string {
	switch v := data.(type) {
	case *domain.PaymentRequest:
		return v.ID.String()
	case domain.PaymentRequest:
		return v.ID.String()
	}
	return uuid.New().String()
}
