package file

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"lightning-payment-gateway/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFailureStore(t *testing.T) (*FailedWebhookStore, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "failures")
	s, err := NewFailedWebhookStore(dir, zerolog.Nop())
	require.NoError(t, err)
	return s, dir
}

func testFailureRecord(corrID string) *domain.FailedWebhook {
	return &domain.FailedWebhook{
		URL:           "https://example.com/hook",
		Secret:        "shh",
		CorrelationID: corrID,
		Event:         domain.WebhookEventFailed,
		Payload:       json.RawMessage(`{"event":"payment.failed"}`),
		Error:         "connection refused",
		FailedAt:      time.Now().UTC(),
		AttemptsMade:  4,
	}
}

func TestFailedWebhookStore_SaveAndList(t *testing.T) {
	s, _ := newFailureStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, testFailureRecord("abc")))

	records, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0]
	assert.Contains(t, got.Name, "_abc.json")
	assert.Equal(t, "https://example.com/hook", got.Record.URL)
	assert.Equal(t, "shh", got.Record.Secret)
	assert.Equal(t, 4, got.Record.AttemptsMade)
	assert.JSONEq(t, `{"event":"payment.failed"}`, string(got.Record.Payload))
}

func TestFailedWebhookStore_SeparateFilesPerFailure(t *testing.T) {
	s, _ := newFailureStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, testFailureRecord("one")))
	require.NoError(t, s.Save(ctx, testFailureRecord("two")))

	records, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestFailedWebhookStore_Delete(t *testing.T) {
	s, _ := newFailureStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, testFailureRecord("gone")))
	records, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)

	require.NoError(t, s.Delete(ctx, records[0].Name))

	records, err = s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestFailedWebhookStore_DeleteRejectsPathEscape(t *testing.T) {
	s, _ := newFailureStore(t)
	assert.Error(t, s.Delete(context.Background(), "../outside.json"))
}

func TestFailedWebhookStore_ListSkipsCorruptFiles(t *testing.T) {
	s, dir := newFailureStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, testFailureRecord("ok")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "123_bad.json"), []byte("nope"), 0o644))

	records, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "ok", records[0].Record.CorrelationID)
}
