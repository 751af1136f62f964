package lnd

import (
	"context"
	"encoding/hex"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lightning-payment-gateway/internal/core/domain"

	"github.com/lightningnetwork/lnd/lnrpc"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
)

// fakeRPC implements rpcClient with overridable funcs.
type fakeRPC struct {
	sendPaymentSync func(*lnrpc.SendRequest) (*lnrpc.SendResponse, error)
	decodePayReq    func(*lnrpc.PayReqString) (*lnrpc.PayReq, error)
	sendCoins       func(*lnrpc.SendCoinsRequest) (*lnrpc.SendCoinsResponse, error)
	getTransactions func() (*lnrpc.TransactionDetails, error)
	walletBalance   func() (*lnrpc.WalletBalanceResponse, error)
	channelBalance  func() (*lnrpc.ChannelBalanceResponse, error)
	getInfo         func() (*lnrpc.GetInfoResponse, error)
}

func (f *fakeRPC) SendPaymentSync(_ context.Context, in *lnrpc.SendRequest, _ ...grpc.CallOption) (*lnrpc.SendResponse, error) {
	return f.sendPaymentSync(in)
}

func (f *fakeRPC) DecodePayReq(_ context.Context, in *lnrpc.PayReqString, _ ...grpc.CallOption) (*lnrpc.PayReq, error) {
	if f.decodePayReq != nil {
		return f.decodePayReq(in)
	}
	return &lnrpc.PayReq{NumSatoshis: 1000}, nil
}

func (f *fakeRPC) SendCoins(_ context.Context, in *lnrpc.SendCoinsRequest, _ ...grpc.CallOption) (*lnrpc.SendCoinsResponse, error) {
	return f.sendCoins(in)
}

func (f *fakeRPC) GetTransactions(_ context.Context, _ *lnrpc.GetTransactionsRequest, _ ...grpc.CallOption) (*lnrpc.TransactionDetails, error) {
	if f.getTransactions != nil {
		return f.getTransactions()
	}
	return &lnrpc.TransactionDetails{}, nil
}

func (f *fakeRPC) WalletBalance(_ context.Context, _ *lnrpc.WalletBalanceRequest, _ ...grpc.CallOption) (*lnrpc.WalletBalanceResponse, error) {
	return f.walletBalance()
}

func (f *fakeRPC) ChannelBalance(_ context.Context, _ *lnrpc.ChannelBalanceRequest, _ ...grpc.CallOption) (*lnrpc.ChannelBalanceResponse, error) {
	return f.channelBalance()
}

func (f *fakeRPC) GetInfo(_ context.Context, _ *lnrpc.GetInfoRequest, _ ...grpc.CallOption) (*lnrpc.GetInfoResponse, error) {
	return f.getInfo()
}

func newTestClient(rpc *fakeRPC) *Client {
	return &Client{
		ln:         rpc,
		classifier: domain.NewDefaultClassifier(),
		httpClient: &http.Client{Timeout: time.Second},
		timeout:    5 * time.Second,
		log:        zerolog.Nop(),
	}
}

func TestSendPayment_InvoiceGoesOverLightning(t *testing.T) {
	hash := []byte{0xde, 0xad, 0xbe, 0xef}
	var got *lnrpc.SendRequest
	rpc := &fakeRPC{
		sendPaymentSync: func(in *lnrpc.SendRequest) (*lnrpc.SendResponse, error) {
			got = in
			return &lnrpc.SendResponse{
				PaymentHash:  hash,
				PaymentRoute: &lnrpc.Route{TotalFeesMsat: 2500},
			}, nil
		},
	}
	c := newTestClient(rpc)

	res, err := c.SendPayment(context.Background(), "lnbc10u1pexample", 1000)
	require.NoError(t, err)

	assert.Equal(t, "lnbc10u1pexample", got.PaymentRequest)
	assert.Zero(t, got.Amt, "amount must not override a non-zero invoice")
	assert.Equal(t, hex.EncodeToString(hash), res.TransactionHash)
	assert.Equal(t, int64(2), res.Fee, "msat fee rounds down to sats")
}

func TestSendPayment_ZeroAmountInvoiceGetsExplicitAmount(t *testing.T) {
	var got *lnrpc.SendRequest
	rpc := &fakeRPC{
		decodePayReq: func(*lnrpc.PayReqString) (*lnrpc.PayReq, error) {
			return &lnrpc.PayReq{NumSatoshis: 0}, nil
		},
		sendPaymentSync: func(in *lnrpc.SendRequest) (*lnrpc.SendResponse, error) {
			got = in
			return &lnrpc.SendResponse{PaymentHash: []byte{0x01}}, nil
		},
	}
	c := newTestClient(rpc)

	_, err := c.SendPayment(context.Background(), "lnbc1pexample", 777)
	require.NoError(t, err)
	assert.Equal(t, int64(777), got.Amt)
}

func TestSendPayment_PaymentErrorIsFailure(t *testing.T) {
	rpc := &fakeRPC{
		sendPaymentSync: func(*lnrpc.SendRequest) (*lnrpc.SendResponse, error) {
			return &lnrpc.SendResponse{PaymentError: "no route to destination"}, nil
		},
	}
	c := newTestClient(rpc)

	res, err := c.SendPayment(context.Background(), "lnbc10u1pexample", 1000)
	assert.Nil(t, res)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no route to destination")
}

func TestSendPayment_OnChainAddressUsesSendCoins(t *testing.T) {
	var got *lnrpc.SendCoinsRequest
	rpc := &fakeRPC{
		sendCoins: func(in *lnrpc.SendCoinsRequest) (*lnrpc.SendCoinsResponse, error) {
			got = in
			return &lnrpc.SendCoinsResponse{Txid: "abc123"}, nil
		},
		getTransactions: func() (*lnrpc.TransactionDetails, error) {
			return &lnrpc.TransactionDetails{Transactions: []*lnrpc.Transaction{
				{TxHash: "other", TotalFees: 99},
				{TxHash: "abc123", TotalFees: 150},
			}}, nil
		},
	}
	c := newTestClient(rpc)

	res, err := c.SendPayment(context.Background(), "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4", 5000)
	require.NoError(t, err)
	assert.Equal(t, "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4", got.Addr)
	assert.Equal(t, int64(5000), got.Amount)
	assert.Equal(t, "abc123", res.TransactionHash)
	assert.Equal(t, int64(150), res.Fee)
}

func TestSendPayment_FeeLookupFailureIsNotFatal(t *testing.T) {
	rpc := &fakeRPC{
		sendCoins: func(*lnrpc.SendCoinsRequest) (*lnrpc.SendCoinsResponse, error) {
			return &lnrpc.SendCoinsResponse{Txid: "abc123"}, nil
		},
		getTransactions: func() (*lnrpc.TransactionDetails, error) {
			return nil, errors.New("wallet busy")
		},
	}
	c := newTestClient(rpc)

	res, err := c.SendPayment(context.Background(), "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", 5000)
	require.NoError(t, err)
	assert.Zero(t, res.Fee)
}

func TestGetBalance_OnChain(t *testing.T) {
	rpc := &fakeRPC{
		walletBalance: func() (*lnrpc.WalletBalanceResponse, error) {
			return &lnrpc.WalletBalanceResponse{
				ConfirmedBalance:   9000,
				UnconfirmedBalance: 500,
				TotalBalance:       9500,
			}, nil
		},
	}
	c := newTestClient(rpc)

	snap, err := c.GetBalance(context.Background(), domain.BalanceKindOnChain)
	require.NoError(t, err)
	assert.Equal(t, int64(9000), snap.Confirmed)
	assert.Equal(t, int64(500), snap.Unconfirmed)
	assert.Equal(t, int64(9500), snap.Total)
}

func TestGetBalance_Channel(t *testing.T) {
	rpc := &fakeRPC{
		channelBalance: func() (*lnrpc.ChannelBalanceResponse, error) {
			return &lnrpc.ChannelBalanceResponse{
				LocalBalance:            &lnrpc.Amount{Sat: 4000},
				UnsettledLocalBalance:   &lnrpc.Amount{Sat: 100},
				PendingOpenLocalBalance: &lnrpc.Amount{Sat: 200},
			}, nil
		},
	}
	c := newTestClient(rpc)

	snap, err := c.GetBalance(context.Background(), domain.BalanceKindChannel)
	require.NoError(t, err)
	assert.Equal(t, int64(4000), snap.Confirmed)
	assert.Equal(t, int64(300), snap.Unconfirmed)
	assert.Equal(t, int64(4300), snap.Total)
}

func TestGetBalance_UnsupportedKind(t *testing.T) {
	c := newTestClient(&fakeRPC{})
	_, err := c.GetBalance(context.Background(), domain.BalanceKindAsset)
	assert.Error(t, err)
}

func TestLNURL_PayParamsAndInvoice(t *testing.T) {
	var callbackAmount string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/.well-known/lnurlp/alice":
			w.Write([]byte(`{"callback":"` + serverURL(r) + `/lnurl/cb","minSendable":1000,"maxSendable":100000000,"tag":"payRequest"}`))
		case "/lnurl/cb":
			callbackAmount = r.URL.Query().Get("amount")
			w.Write([]byte(`{"pr":"lnbc10u1presolved"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := newTestClient(&fakeRPC{})

	params, err := c.fetchPayParams(context.Background(), srv.URL+"/.well-known/lnurlp/alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), params.MinSendable)

	invoice, err := c.fetchInvoice(context.Background(), params.Callback, 1000_000)
	require.NoError(t, err)
	assert.Equal(t, "lnbc10u1presolved", invoice)
	assert.Equal(t, "1000000", callbackAmount)
}

func TestLNURL_ErrorStatusSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ERROR","reason":"user not found"}`))
	}))
	defer srv.Close()

	c := newTestClient(&fakeRPC{})
	_, err := c.fetchPayParams(context.Background(), srv.URL+"/.well-known/lnurlp/nobody")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user not found")
}

func serverURL(r *http.Request) string {
	return "http://" + r.Host
}
