package lnd

import (
	"context"
	"encoding/hex"
	"fmt"
	"net/http"
	"os"
	"time"

	"lightning-payment-gateway/config"
	"lightning-payment-gateway/internal/core/domain"

	"github.com/lightningnetwork/lnd/lnrpc"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

// rpcClient is the slice of lnrpc.LightningClient this adapter uses.
// Narrowed so tests can fake it without generating the full client.
type rpcClient interface {
	SendPaymentSync(ctx context.Context, in *lnrpc.SendRequest, opts ...grpc.CallOption) (*lnrpc.SendResponse, error)
	DecodePayReq(ctx context.Context, in *lnrpc.PayReqString, opts ...grpc.CallOption) (*lnrpc.PayReq, error)
	SendCoins(ctx context.Context, in *lnrpc.SendCoinsRequest, opts ...grpc.CallOption) (*lnrpc.SendCoinsResponse, error)
	GetTransactions(ctx context.Context, in *lnrpc.GetTransactionsRequest, opts ...grpc.CallOption) (*lnrpc.TransactionDetails, error)
	WalletBalance(ctx context.Context, in *lnrpc.WalletBalanceRequest, opts ...grpc.CallOption) (*lnrpc.WalletBalanceResponse, error)
	ChannelBalance(ctx context.Context, in *lnrpc.ChannelBalanceRequest, opts ...grpc.CallOption) (*lnrpc.ChannelBalanceResponse, error)
	GetInfo(ctx context.Context, in *lnrpc.GetInfoRequest, opts ...grpc.CallOption) (*lnrpc.GetInfoResponse, error)
}

// Client implements ports.SettlementClient against a single LND node. It
// serves both the bitcoin and lightning networks: the destination shape,
// not the declared network, decides whether a payment goes out over a
// channel or on-chain.
type Client struct {
	ln         rpcClient
	conn       *grpc.ClientConn
	classifier *domain.AddressClassifier
	httpClient *http.Client // LNURL-pay resolution
	timeout    time.Duration
	log        zerolog.Logger
}

// macaroonCredential attaches the node macaroon to every RPC.
type macaroonCredential struct {
	hexMac string
}

func (m macaroonCredential) GetRequestMetadata(ctx context.Context, uri ...string) (map[string]string, error) {
	return map[string]string{"macaroon": m.hexMac}, nil
}

func (m macaroonCredential) RequireTransportSecurity() bool { return false }

// NewClient dials the node's gRPC interface. An empty TLS cert path means a
// plaintext connection, for regtest setups only.
func NewClient(cfg config.LNDConfig, classifier *domain.AddressClassifier, log zerolog.Logger) (*Client, error) {
	var transport credentials.TransportCredentials
	if cfg.TLSCertPath != "" {
		creds, err := credentials.NewClientTLSFromFile(cfg.TLSCertPath, "")
		if err != nil {
			return nil, fmt.Errorf("load lnd tls cert: %w", err)
		}
		transport = creds
	} else {
		transport = insecure.NewCredentials()
	}

	opts := []grpc.DialOption{grpc.WithTransportCredentials(transport)}
	if cfg.MacaroonPath != "" {
		mac, err := os.ReadFile(cfg.MacaroonPath)
		if err != nil {
			return nil, fmt.Errorf("read lnd macaroon: %w", err)
		}
		opts = append(opts, grpc.WithPerRPCCredentials(macaroonCredential{hexMac: hex.EncodeToString(mac)}))
	}

	conn, err := grpc.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("dial lnd %s: %w", cfg.Host, err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	log.Info().Str("host", cfg.Host).Msg("LND client connected")

	return &Client{
		ln:         lnrpc.NewLightningClient(conn),
		conn:       conn,
		classifier: classifier,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		timeout:    timeout,
		log:        log,
	}, nil
}

// Close releases the gRPC connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// SendPayment routes by destination shape: invoices and payment aliases go
// over Lightning, everything else is sent on-chain.
func (c *Client) SendPayment(ctx context.Context, destination string, amount int64) (*domain.SettlementResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if c.classifier.Classify(destination) == domain.NetworkLightning {
		if domain.IsLightningAlias(destination) {
			invoice, err := c.resolveAlias(ctx, destination, amount)
			if err != nil {
				return nil, err
			}
			return c.payInvoice(ctx, invoice, amount)
		}
		return c.payInvoice(ctx, destination, amount)
	}

	return c.sendOnChain(ctx, destination, amount)
}

// GetBalance reports the node's wallet or channel balance.
func (c *Client) GetBalance(ctx context.Context, kind domain.BalanceKind) (*domain.BalanceSnapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	switch kind {
	case domain.BalanceKindOnChain:
		resp, err := c.ln.WalletBalance(ctx, &lnrpc.WalletBalanceRequest{})
		if err != nil {
			return nil, fmt.Errorf("wallet balance: %w", err)
		}
		return &domain.BalanceSnapshot{
			Confirmed:   resp.ConfirmedBalance,
			Unconfirmed: resp.UnconfirmedBalance,
			Total:       resp.TotalBalance,
		}, nil

	case domain.BalanceKindChannel:
		resp, err := c.ln.ChannelBalance(ctx, &lnrpc.ChannelBalanceRequest{})
		if err != nil {
			return nil, fmt.Errorf("channel balance: %w", err)
		}
		var confirmed, unconfirmed int64
		if resp.LocalBalance != nil {
			confirmed = int64(resp.LocalBalance.Sat)
		}
		if resp.UnsettledLocalBalance != nil {
			unconfirmed += int64(resp.UnsettledLocalBalance.Sat)
		}
		if resp.PendingOpenLocalBalance != nil {
			unconfirmed += int64(resp.PendingOpenLocalBalance.Sat)
		}
		return &domain.BalanceSnapshot{
			Confirmed:   confirmed,
			Unconfirmed: unconfirmed,
			Total:       confirmed + unconfirmed,
		}, nil

	default:
		return nil, fmt.Errorf("lnd backend does not report %s balances", kind)
	}
}

// Ping implements ports.HealthChecker.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.ln.GetInfo(ctx, &lnrpc.GetInfoRequest{})
	return err
}

// Name returns the dependency name.
func (c *Client) Name() string {
	return "lnd"
}

// payInvoice settles a BOLT11 invoice. The explicit amount is passed only
// for zero-amount invoices; lnd rejects an Amt override otherwise.
func (c *Client) payInvoice(ctx context.Context, invoice string, amount int64) (*domain.SettlementResult, error) {
	req := &lnrpc.SendRequest{PaymentRequest: invoice}

	decoded, err := c.ln.DecodePayReq(ctx, &lnrpc.PayReqString{PayReq: invoice})
	if err != nil {
		return nil, fmt.Errorf("decode invoice: %w", err)
	}
	if decoded.NumSatoshis == 0 {
		req.Amt = amount
	}

	resp, err := c.ln.SendPaymentSync(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("send lightning payment: %w", err)
	}
	if resp.PaymentError != "" {
		return nil, fmt.Errorf("lightning payment failed: %s", resp.PaymentError)
	}

	var fee int64
	if resp.PaymentRoute != nil {
		fee = resp.PaymentRoute.TotalFeesMsat / 1000
	}

	c.log.Info().
		Str("payment_hash", hex.EncodeToString(resp.PaymentHash)).
		Int64("fee_sat", fee).
		Msg("lightning payment settled")

	return &domain.SettlementResult{
		TransactionHash: hex.EncodeToString(resp.PaymentHash),
		Fee:             fee,
	}, nil
}

// sendOnChain broadcasts a plain on-chain send and looks the mining fee up
// from the wallet's transaction list. The fee lookup is best effort.
func (c *Client) sendOnChain(ctx context.Context, address string, amount int64) (*domain.SettlementResult, error) {
	resp, err := c.ln.SendCoins(ctx, &lnrpc.SendCoinsRequest{Addr: address, Amount: amount})
	if err != nil {
		return nil, fmt.Errorf("send coins: %w", err)
	}

	fee := c.lookupTxFee(ctx, resp.Txid)

	c.log.Info().
		Str("txid", resp.Txid).
		Int64("fee_sat", fee).
		Msg("on-chain payment broadcast")

	return &domain.SettlementResult{TransactionHash: resp.Txid, Fee: fee}, nil
}

func (c *Client) lookupTxFee(ctx context.Context, txid string) int64 {
	details, err := c.ln.GetTransactions(ctx, &lnrpc.GetTransactionsRequest{})
	if err != nil {
		c.log.Warn().Err(err).Str("txid", txid).Msg("could not look up on-chain fee")
		return 0
	}
	for _, tx := range details.Transactions {
		if tx.TxHash == txid {
			return tx.TotalFees
		}
	}
	return 0
}
