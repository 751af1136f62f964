package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"lightning-payment-gateway/internal/core/domain"
	"lightning-payment-gateway/internal/core/ports"

	"github.com/rs/zerolog"
)

// FailedWebhookStore implements ports.FailedWebhookStore as one JSON file per
// exhausted delivery. File names embed a timestamp so a listing
// sorts in failure order.
type FailedWebhookStore struct {
	dir string
	log zerolog.Logger
}

// NewFailedWebhookStore creates the failure directory if missing.
func NewFailedWebhookStore(dir string, log zerolog.Logger) (*FailedWebhookStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create webhook failure dir: %w", err)
	}
	return &FailedWebhookStore{dir: dir, log: log}, nil
}

// Save persists one failure record.
func (s *FailedWebhookStore) Save(ctx context.Context, rec *domain.FailedWebhook) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal failed webhook: %w", err)
	}
	// Nanosecond timestamps keep two failures of the same payment from
	// landing on one filename.
	name := fmt.Sprintf("%d_%s.json", time.Now().UnixNano(), rec.CorrelationID)
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("write failed webhook %s: %w", name, err)
	}
	return nil
}

// List returns every readable failure record with the name it is stored
// under. Corrupt files are skipped and logged, not fatal.
func (s *FailedWebhookStore) List(ctx context.Context) ([]ports.StoredFailedWebhook, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read webhook failure dir: %w", err)
	}

	records := make([]ports.StoredFailedWebhook, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, e.Name()))
		if err != nil {
			s.log.Warn().Err(err).Str("file", e.Name()).Msg("skipping unreadable webhook failure record")
			continue
		}
		var rec domain.FailedWebhook
		if err := json.Unmarshal(data, &rec); err != nil {
			s.log.Warn().Err(err).Str("file", e.Name()).Msg("skipping corrupt webhook failure record")
			continue
		}
		records = append(records, ports.StoredFailedWebhook{Name: e.Name(), Record: rec})
	}
	return records, nil
}

// Delete removes one record by stored name.
func (s *FailedWebhookStore) Delete(ctx context.Context, name string) error {
	// Names come back from List; refuse anything that could escape the dir.
	if name != filepath.Base(name) {
		return fmt.Errorf("invalid record name: %s", name)
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("delete webhook failure record %s: %w", name, err)
	}
	return nil
}
