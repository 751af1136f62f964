package integration

import (
	"context"
	"errors"
	"sync/atomic"

	"lightning-payment-gateway/internal/core/domain"
)

// fakeSettlementClient stands in for one settlement backend. Failures are
// toggled per instance; calls are counted for ordering assertions.
type fakeSettlementClient struct {
	name    string
	fail    atomic.Bool
	sends   atomic.Int64
	balance domain.BalanceSnapshot
	result  domain.SettlementResult
}

func newFakeSettlementClient(name, txHash string) *fakeSettlementClient {
	return &fakeSettlementClient{
		name:    name,
		balance: domain.BalanceSnapshot{Confirmed: 1000, Total: 1000},
		result:  domain.SettlementResult{TransactionHash: txHash, Fee: 7},
	}
}

func (f *fakeSettlementClient) SendPayment(_ context.Context, _ string, _ int64) (*domain.SettlementResult, error) {
	f.sends.Add(1)
	if f.fail.Load() {
		return nil, errors.New(f.name + ": insufficient funds")
	}
	res := f.result
	return &res, nil
}

func (f *fakeSettlementClient) GetBalance(_ context.Context, _ domain.BalanceKind) (*domain.BalanceSnapshot, error) {
	if f.fail.Load() {
		return nil, errors.New(f.name + ": connection refused")
	}
	bal := f.balance
	return &bal, nil
}

func (f *fakeSettlementClient) Ping(_ context.Context) error {
	if f.fail.Load() {
		return errors.New(f.name + ": connection refused")
	}
	return nil
}

func (f *fakeSettlementClient) Name() string { return f.name }
