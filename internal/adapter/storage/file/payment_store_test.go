package file

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"lightning-payment-gateway/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*PaymentStore, string, string) {
	t.Helper()
	root := t.TempDir()
	pending := filepath.Join(root, "pending")
	sent := filepath.Join(root, "sent")
	s, err := NewPaymentStore(pending, sent, zerolog.Nop())
	require.NoError(t, err)
	return s, pending, sent
}

func TestPaymentStore_SaveWritesPendingFile(t *testing.T) {
	s, pending, _ := newTestStore(t)
	req := domain.NewPaymentRequest("tx-1", "alice", 1000, domain.NetworkLightning, "lnbc1xyz")

	require.NoError(t, s.Save(context.Background(), req))

	path := filepath.Join(pending, req.StorageKey()+".json")
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got domain.PaymentRequest
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, req.ID, got.ID)
	assert.Equal(t, "tx-1", got.TransactionID)
	assert.Equal(t, domain.PaymentStatusPending, got.Status)
}

func TestPaymentStore_MoveToSent(t *testing.T) {
	s, pending, sent := newTestStore(t)
	req := domain.NewPaymentRequest("tx-2", "", 500, domain.NetworkBitcoin, "bc1qexample")
	require.NoError(t, s.Save(context.Background(), req))

	req.MarkSent("deadbeef", 42)
	require.NoError(t, s.MoveToSent(context.Background(), req))

	name := req.StorageKey() + ".json"
	assert.NoFileExists(t, filepath.Join(pending, name))

	data, err := os.ReadFile(filepath.Join(sent, name))
	require.NoError(t, err)
	var got domain.PaymentRequest
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, domain.PaymentStatusSent, got.Status)
	assert.Equal(t, "deadbeef", got.TransactionHash)
	assert.Equal(t, int64(42), got.NetworkFee)
}

func TestPaymentStore_MoveToSentWithoutPendingFile(t *testing.T) {
	// A record that was never saved still moves cleanly; the missing pending
	// file is not an error.
	s, _, sent := newTestStore(t)
	req := domain.NewPaymentRequest("tx-3", "", 500, domain.NetworkBitcoin, "bc1qexample")
	req.MarkSent("cafe", 1)

	require.NoError(t, s.MoveToSent(context.Background(), req))
	assert.FileExists(t, filepath.Join(sent, req.StorageKey()+".json"))
}

func TestPaymentStore_RecordErrorKeepsOriginal(t *testing.T) {
	s, pending, _ := newTestStore(t)
	req := domain.NewPaymentRequest("tx-4", "", 500, domain.NetworkLiquid, "lq1qqexample")
	require.NoError(t, s.Save(context.Background(), req))

	req.MarkError("no route")
	require.NoError(t, s.RecordError(context.Background(), req))

	assert.FileExists(t, filepath.Join(pending, req.StorageKey()+".json"))

	data, err := os.ReadFile(filepath.Join(pending, "error_"+req.StorageKey()+".json"))
	require.NoError(t, err)
	var got domain.PaymentRequest
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, domain.PaymentStatusError, got.Status)
	assert.Equal(t, "no route", got.Error)
	assert.NotNil(t, got.ErrorAt)
}

func TestPaymentStore_ListSkipsCorruptFiles(t *testing.T) {
	s, pending, _ := newTestStore(t)
	req := domain.NewPaymentRequest("tx-5", "", 500, domain.NetworkLightning, "lnbc1xyz")
	require.NoError(t, s.Save(context.Background(), req))

	require.NoError(t, os.WriteFile(filepath.Join(pending, "broken.json"), []byte("{not json"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(pending, "notes.txt"), []byte("ignored"), 0o644))

	records, err := s.ListPending(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, req.ID, records[0].ID)
}

func TestPaymentStore_ListIncludesErrorRecords(t *testing.T) {
	s, _, _ := newTestStore(t)
	req := domain.NewPaymentRequest("tx-6", "", 500, domain.NetworkLightning, "lnbc1xyz")
	require.NoError(t, s.Save(context.Background(), req))
	req.MarkError("timeout")
	require.NoError(t, s.RecordError(context.Background(), req))

	records, err := s.ListPending(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestPaymentStore_Reconcile(t *testing.T) {
	s, pending, _ := newTestStore(t)
	ctx := context.Background()

	// Simulate a crash between the MoveToSent write and delete: the record
	// exists in both partitions.
	crashed := domain.NewPaymentRequest("tx-7", "", 500, domain.NetworkBitcoin, "bc1qexample")
	require.NoError(t, s.Save(ctx, crashed))
	crashed.MarkSent("f00d", 3)
	data, err := json.Marshal(crashed)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(s.sentDir, crashed.StorageKey()+".json"), data, 0o644))

	// A genuinely pending record and an error copy must survive.
	alive := domain.NewPaymentRequest("tx-8", "", 500, domain.NetworkLightning, "lnbc1xyz")
	require.NoError(t, s.Save(ctx, alive))
	alive.MarkError("boom")
	require.NoError(t, s.RecordError(ctx, alive))

	cleaned, err := s.Reconcile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, cleaned)

	assert.NoFileExists(t, filepath.Join(pending, crashed.StorageKey()+".json"))
	assert.FileExists(t, filepath.Join(pending, alive.StorageKey()+".json"))
	assert.FileExists(t, filepath.Join(pending, "error_"+alive.StorageKey()+".json"))
}

func TestPaymentStore_ReconcileNothingToDo(t *testing.T) {
	s, _, _ := newTestStore(t)
	cleaned, err := s.Reconcile(context.Background())
	require.NoError(t, err)
	assert.Zero(t, cleaned)
}
