package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"lightning-payment-gateway/internal/core/domain"

	"github.com/rs/zerolog"
)

// errorPrefix marks pending records that captured a settlement failure. The
// original pending file stays alongside the error copy.
const errorPrefix = "error_"

// PaymentStore implements ports.PaymentStore on top of two flat directories,
// one per partition. Records are JSON files named <key>.json.
type PaymentStore struct {
	pendingDir string
	sentDir    string
	log        zerolog.Logger
}

// NewPaymentStore creates the partition directories if missing.
func NewPaymentStore(pendingDir, sentDir string, log zerolog.Logger) (*PaymentStore, error) {
	for _, dir := range []string{pendingDir, sentDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir %s: %w", dir, err)
		}
	}
	return &PaymentStore{pendingDir: pendingDir, sentDir: sentDir, log: log}, nil
}

// Save writes a new record into the pending partition.
func (s *PaymentStore) Save(ctx context.Context, req *domain.PaymentRequest) error {
	return s.write(filepath.Join(s.pendingDir, req.StorageKey()+".json"), req)
}

// MoveToSent writes the updated record into the sent partition first and only
// then deletes the pending file. A crash between the two steps leaves a
// duplicate, never a lost record; Reconcile cleans duplicates up.
func (s *PaymentStore) MoveToSent(ctx context.Context, req *domain.PaymentRequest) error {
	name := req.StorageKey() + ".json"
	if err := s.write(filepath.Join(s.sentDir, name), req); err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(s.pendingDir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove pending record %s: %w", name, err)
	}
	return nil
}

// RecordError writes the error-annotated record under the error_ prefix in the
// pending partition. The original pending file is kept for postmortem.
func (s *PaymentStore) RecordError(ctx context.Context, req *domain.PaymentRequest) error {
	name := errorPrefix + req.StorageKey() + ".json"
	return s.write(filepath.Join(s.pendingDir, name), req)
}

// ListPending returns every readable record in the pending partition,
// including error-annotated copies.
func (s *PaymentStore) ListPending(ctx context.Context) ([]domain.PaymentRequest, error) {
	return s.list(s.pendingDir)
}

// ListSent returns every readable record in the sent partition.
func (s *PaymentStore) ListSent(ctx context.Context) ([]domain.PaymentRequest, error) {
	return s.list(s.sentDir)
}

// Reconcile deletes pending files whose key already exists in the sent
// partition. Error-annotated copies are left alone.
func (s *PaymentStore) Reconcile(ctx context.Context) (int, error) {
	sent, err := os.ReadDir(s.sentDir)
	if err != nil {
		return 0, fmt.Errorf("read sent dir: %w", err)
	}
	sentKeys := make(map[string]struct{}, len(sent))
	for _, e := range sent {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			sentKeys[e.Name()] = struct{}{}
		}
	}

	pending, err := os.ReadDir(s.pendingDir)
	if err != nil {
		return 0, fmt.Errorf("read pending dir: %w", err)
	}

	cleaned := 0
	for _, e := range pending {
		if e.IsDir() || strings.HasPrefix(e.Name(), errorPrefix) {
			continue
		}
		if _, dup := sentKeys[e.Name()]; !dup {
			continue
		}
		if err := os.Remove(filepath.Join(s.pendingDir, e.Name())); err != nil {
			return cleaned, fmt.Errorf("remove duplicate pending record %s: %w", e.Name(), err)
		}
		s.log.Info().Str("file", e.Name()).Msg("reconciled duplicate pending record")
		cleaned++
	}
	return cleaned, nil
}

func (s *PaymentStore) write(path string, req *domain.PaymentRequest) error {
	data, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal payment record: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write payment record %s: %w", filepath.Base(path), err)
	}
	return nil
}

func (s *PaymentStore) list(dir string) ([]domain.PaymentRequest, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	records := make([]domain.PaymentRequest, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			s.log.Warn().Err(err).Str("file", e.Name()).Msg("skipping unreadable payment record")
			continue
		}
		var rec domain.PaymentRequest
		if err := json.Unmarshal(data, &rec); err != nil {
			s.log.Warn().Err(err).Str("file", e.Name()).Msg("skipping corrupt payment record")
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}
