package elements

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"lightning-payment-gateway/config"
	"lightning-payment-gateway/internal/core/domain"

	"github.com/rs/zerolog"
)

const satsPerCoin = 100_000_000

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.SettlementClient against an Elements node's
// JSON-RPC interface. Amounts cross the wire as decimal coin strings; the
// rest of the program speaks satoshis.
type Client struct {
	url        string
	user       string
	password   string
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewClient builds a sidechain client. A configured wallet name is appended
// to the RPC path so calls land on that wallet.
func NewClient(cfg config.ElementsConfig, log zerolog.Logger) *Client {
	url := strings.TrimSuffix(cfg.RPCURL, "/")
	if cfg.Wallet != "" {
		url += "/wallet/" + cfg.Wallet
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		url:        url,
		user:       cfg.User,
		password:   cfg.Password,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// SendPayment sends amount satoshis to a sidechain address and reads the
// network fee back off the wallet transaction.
func (c *Client) SendPayment(ctx context.Context, destination string, amount int64) (*domain.SettlementResult, error) {
	var txid string
	if err := c.call(ctx, "sendtoaddress", []interface{}{destination, formatCoins(amount)}, &txid); err != nil {
		return nil, fmt.Errorf("sendtoaddress: %w", err)
	}

	fee := c.lookupTxFee(ctx, txid)

	c.log.Info().
		Str("txid", txid).
		Int64("fee_sat", fee).
		Msg("sidechain payment broadcast")

	return &domain.SettlementResult{TransactionHash: txid, Fee: fee}, nil
}

// GetBalance reports the wallet's per-asset balance. Only the asset kind is
// served here; chain balances belong to the other backend.
func (c *Client) GetBalance(ctx context.Context, kind domain.BalanceKind) (*domain.BalanceSnapshot, error) {
	if kind != domain.BalanceKindAsset {
		return nil, fmt.Errorf("elements backend does not report %s balances", kind)
	}

	var confirmed map[string]float64
	if err := c.call(ctx, "getbalance", nil, &confirmed); err != nil {
		return nil, fmt.Errorf("getbalance: %w", err)
	}

	var unconfirmed map[string]float64
	if err := c.call(ctx, "getunconfirmedbalance", nil, &unconfirmed); err != nil {
		return nil, fmt.Errorf("getunconfirmedbalance: %w", err)
	}

	snap := &domain.BalanceSnapshot{Assets: make(map[string]int64, len(confirmed))}
	for asset, coins := range confirmed {
		sats := coinsToSats(coins)
		snap.Assets[asset] = sats
		snap.Confirmed += sats
	}
	for _, coins := range unconfirmed {
		snap.Unconfirmed += coinsToSats(coins)
	}
	snap.Total = snap.Confirmed + snap.Unconfirmed
	return snap, nil
}

// Ping implements ports.HealthChecker.
func (c *Client) Ping(ctx context.Context) error {
	var info json.RawMessage
	return c.call(ctx, "getblockchaininfo", nil, &info)
}

// Name returns the dependency name.
func (c *Client) Name() string {
	return "elements"
}

// walletTx is the slice of gettransaction output this adapter reads. The
// node reports the fee as a negative coin amount.
type walletTx struct {
	Fee float64 `json:"fee"`
}

func (c *Client) lookupTxFee(ctx context.Context, txid string) int64 {
	var tx walletTx
	if err := c.call(ctx, "gettransaction", []interface{}{txid}, &tx); err != nil {
		c.log.Warn().Err(err).Str("txid", txid).Msg("could not look up sidechain fee")
		return 0
	}
	return coinsToSats(math.Abs(tx.Fee))
}

type rpcRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      string        `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

func (c *Client) call(ctx context.Context, method string, params []interface{}, result interface{}) error {
	if params == nil {
		params = []interface{}{}
	}
	body, err := json.Marshal(rpcRequest{JSONRPC: "1.0", ID: "lpg", Method: method, Params: params})
	if err != nil {
		return fmt.Errorf("marshal rpc request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build rpc request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.user, c.password)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("read rpc response: %w", err)
	}

	var rpcResp rpcResponse
	if err := json.Unmarshal(data, &rpcResp); err != nil {
		return fmt.Errorf("decode rpc response (status %d): %w", resp.StatusCode, err)
	}
	if rpcResp.Error != nil {
		return rpcResp.Error
	}
	if result != nil {
		if err := json.Unmarshal(rpcResp.Result, result); err != nil {
			return fmt.Errorf("decode %s result: %w", method, err)
		}
	}
	return nil
}

// formatCoins renders satoshis as the decimal coin string the node expects.
// Formatting sidesteps float rounding on amounts near the precision edge.
func formatCoins(sats int64) string {
	return fmt.Sprintf("%d.%08d", sats/satsPerCoin, sats%satsPerCoin)
}

func coinsToSats(coins float64) int64 {
	return int64(math.Round(coins * satsPerCoin))
}
