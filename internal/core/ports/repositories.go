package ports

import (
	"context"

	"lightning-payment-gateway/internal/core/domain"
)

// PaymentStore persists payment requests across the pending and sent
// partitions. Implementations assume a single-writer process; concurrent
// external modification of the partitions is undefined behavior.
type PaymentStore interface {
	// Save writes a new record into the pending partition. It must fail
	// loudly: a request that cannot be durably recorded is not accepted.
	Save(ctx context.Context, req *domain.PaymentRequest) error

	// MoveToSent writes the full updated record into the sent partition,
	// then deletes the pending file. Write-then-delete, in that order, so a
	// crash mid-move leaves the record recoverable from either partition.
	MoveToSent(ctx context.Context, req *domain.PaymentRequest) error

	// RecordError writes the error-annotated record into the pending
	// partition under a distinguishable key prefix. The original pending
	// file is kept for postmortem.
	RecordError(ctx context.Context, req *domain.PaymentRequest) error

	ListPending(ctx context.Context) ([]domain.PaymentRequest, error)
	ListSent(ctx context.Context) ([]domain.PaymentRequest, error)

	// Reconcile removes pending files whose key already exists in the sent
	// partition, resolving duplicates left by a crash between the two
	// MoveToSent steps. Returns the number of files cleaned up.
	Reconcile(ctx context.Context) (int, error)
}

// FailedWebhookStore persists exhausted webhook deliveries, one record per
// failure, for later reprocessing.
type FailedWebhookStore interface {
	Save(ctx context.Context, rec *domain.FailedWebhook) error
	List(ctx context.Context) ([]StoredFailedWebhook, error)
	Delete(ctx context.Context, name string) error
}

// StoredFailedWebhook pairs a persisted failure record with the name it is
// stored under, so callers can delete exactly what they redelivered.
type StoredFailedWebhook struct {
	Name   string
	Record domain.FailedWebhook
}
