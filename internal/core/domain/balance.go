package domain

import "time"

// BalanceKind selects which balance a backend should report.
type BalanceKind string

const (
	BalanceKindOnChain BalanceKind = "onchain" // LND wallet balance
	BalanceKindChannel BalanceKind = "channel" // LND channel-network balance
	BalanceKindAsset   BalanceKind = "asset"   // Elements multi-asset balance
)

// BalanceSnapshot is a point-in-time view of one backend balance, in
// smallest currency units. Assets is populated only by the sidechain
// backend, keyed by asset label.
type BalanceSnapshot struct {
	Confirmed   int64            `json:"confirmed"`
	Unconfirmed int64            `json:"unconfirmed"`
	Total       int64            `json:"total"`
	Assets      map[string]int64 `json:"assets,omitempty"`
}

// AllBalances aggregates every network's snapshot. It is all-or-nothing:
// the orchestrator never returns a partially populated value.
type AllBalances struct {
	Bitcoin   *BalanceSnapshot `json:"bitcoin"`
	Lightning *BalanceSnapshot `json:"lightning"`
	Liquid    *BalanceSnapshot `json:"liquid"`
	Timestamp time.Time        `json:"timestamp"`
}
