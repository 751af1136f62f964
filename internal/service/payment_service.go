package service

import (
	"context"
	"fmt"
	"time"

	"lightning-payment-gateway/internal/core/domain"
	"lightning-payment-gateway/internal/core/ports"
	"lightning-payment-gateway/pkg/apperror"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// PaymentServiceImpl implements ports.PaymentService. It owns a request for
// the duration of one Process call: routing, the settlement call, both
// terminal transitions and the webhook fires at each transition.
type PaymentServiceImpl struct {
	lnd      ports.SettlementClient // unified on-chain + Lightning backend
	elements ports.SettlementClient // confidential-asset sidechain backend
	store    ports.PaymentStore
	webhooks ports.WebhookDispatcher
	log      zerolog.Logger
}

// NewPaymentService creates a new PaymentServiceImpl.
func NewPaymentService(
	lnd ports.SettlementClient,
	elements ports.SettlementClient,
	store ports.PaymentStore,
	webhooks ports.WebhookDispatcher,
	log zerolog.Logger,
) *PaymentServiceImpl {
	return &PaymentServiceImpl{
		lnd:      lnd,
		elements: elements,
		store:    store,
		webhooks: webhooks,
		log:      log,
	}
}

// Process drives one request from pending to its terminal state.
// Ordering within a call: pending webhook, settlement call, terminal
// persistence, terminal webhook. The settlement call is never retried; a
// resubmission is a new request with a new id.
func (s *PaymentServiceImpl) Process(ctx context.Context, req *domain.PaymentRequest) (*domain.SettlementResult, error) {
	// The declared network wins at this level. Only the unified backend
	// reclassifies the destination internally for its on-chain vs channel
	// code paths.
	client, err := s.resolveClient(req.Network)
	if err != nil {
		return nil, err
	}

	if req.WebhookURL != "" {
		// Fire-and-await; a failed pending notification never aborts the
		// payment itself.
		s.webhooks.Notify(ctx, req.WebhookURL, domain.WebhookEventPending, req, req.WebhookSecret)
	}

	result, err := client.SendPayment(ctx, req.DestinationWallet, req.Amount)
	if err != nil {
		req.MarkError(err.Error())
		if storeErr := s.store.RecordError(ctx, req); storeErr != nil {
			s.log.Error().Err(storeErr).Str("tx_id", req.ID.String()).Msg("failed to record payment error")
		}
		if req.WebhookURL != "" {
			s.webhooks.Notify(ctx, req.WebhookURL, domain.WebhookEventFailed, req, req.WebhookSecret)
		}
		s.log.Warn().Err(err).
			Str("tx_id", req.ID.String()).
			Str("network", string(req.Network)).
			Int64("amount", req.Amount).
			Msg("payment failed")
		return nil, apperror.ErrSettlementFailed(err)
	}

	req.MarkSent(result.TransactionHash, result.Fee)

	// Terminal persistence happens before the terminal webhook: a receiver
	// must never learn about a completion that is not durably recorded, and
	// the caller must not see "sent" either.
	if err := s.store.MoveToSent(ctx, req); err != nil {
		s.log.Error().Err(err).
			Str("tx_id", req.ID.String()).
			Str("transaction_hash", result.TransactionHash).
			Msg("settled payment could not be durably recorded")
		return nil, apperror.ErrPersistence(err)
	}

	if req.WebhookURL != "" {
		s.webhooks.Notify(ctx, req.WebhookURL, domain.WebhookEventCompleted, req, req.WebhookSecret)
	}

	s.log.Info().
		Str("tx_id", req.ID.String()).
		Str("network", string(req.Network)).
		Int64("amount", req.Amount).
		Int64("fee", result.Fee).
		Str("transaction_hash", result.TransactionHash).
		Msg("payment sent")

	return result, nil
}

// GetBalance fetches one network's snapshot.
func (s *PaymentServiceImpl) GetBalance(ctx context.Context, network domain.Network) (*domain.BalanceSnapshot, error) {
	client, kind, err := s.resolveBalance(network)
	if err != nil {
		return nil, err
	}
	snap, err := client.GetBalance(ctx, kind)
	if err != nil {
		return nil, apperror.ErrBackendUnavailable(fmt.Errorf("%s balance: %w", network, err))
	}
	return snap, nil
}

// GetAllBalances fans out all three backend fetches concurrently and joins
// them. One failure fails the aggregate; no partial results.
func (s *PaymentServiceImpl) GetAllBalances(ctx context.Context) (*domain.AllBalances, error) {
	var bitcoin, lightning, liquid *domain.BalanceSnapshot

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		bitcoin, err = s.GetBalance(gctx, domain.NetworkBitcoin)
		return err
	})
	g.Go(func() error {
		var err error
		lightning, err = s.GetBalance(gctx, domain.NetworkLightning)
		return err
	})
	g.Go(func() error {
		var err error
		liquid, err = s.GetBalance(gctx, domain.NetworkLiquid)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.AllBalances{
		Bitcoin:   bitcoin,
		Lightning: lightning,
		Liquid:    liquid,
		Timestamp: time.Now().UTC(),
	}, nil
}

// resolveClient maps a declared network to its backend once, at the
// orchestrator boundary.
func (s *PaymentServiceImpl) resolveClient(network domain.Network) (ports.SettlementClient, error) {
	switch network {
	case domain.NetworkBitcoin, domain.NetworkLightning:
		return s.lnd, nil
	case domain.NetworkLiquid:
		return s.elements, nil
	}
	return nil, apperror.ErrUnsupportedNetwork(string(network))
}

func (s *PaymentServiceImpl) resolveBalance(network domain.Network) (ports.SettlementClient, domain.BalanceKind, error) {
	switch network {
	case domain.NetworkBitcoin:
		return s.lnd, domain.BalanceKindOnChain, nil
	case domain.NetworkLightning:
		return s.lnd, domain.BalanceKindChannel, nil
	case domain.NetworkLiquid:
		return s.elements, domain.BalanceKindAsset, nil
	}
	return nil, "", apperror.ErrUnsupportedNetwork(string(network))
}
