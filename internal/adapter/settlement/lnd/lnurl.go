package lnd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// lnurlPayParams is the first-step response of the LNURL-pay flow.
type lnurlPayParams struct {
	Callback    string `json:"callback"`
	MinSendable int64  `json:"minSendable"` // millisatoshi
	MaxSendable int64  `json:"maxSendable"` // millisatoshi
	Tag         string `json:"tag"`
	Status      string `json:"status"`
	Reason      string `json:"reason"`
}

// lnurlInvoice is the callback response carrying the invoice to pay.
type lnurlInvoice struct {
	PR     string `json:"pr"`
	Status string `json:"status"`
	Reason string `json:"reason"`
}

// resolveAlias turns user@domain.tld into a BOLT11 invoice for the requested
// amount via the LNURL-pay well-known endpoint.
func (c *Client) resolveAlias(ctx context.Context, alias string, amountSat int64) (string, error) {
	user, host, ok := strings.Cut(alias, "@")
	if !ok || user == "" || host == "" {
		return "", fmt.Errorf("invalid payment alias: %s", alias)
	}

	params, err := c.fetchPayParams(ctx, fmt.Sprintf("https://%s/.well-known/lnurlp/%s", host, user))
	if err != nil {
		return "", err
	}

	amountMsat := amountSat * 1000
	if amountMsat < params.MinSendable || (params.MaxSendable > 0 && amountMsat > params.MaxSendable) {
		return "", fmt.Errorf("amount %d msat outside alias range [%d, %d]",
			amountMsat, params.MinSendable, params.MaxSendable)
	}

	return c.fetchInvoice(ctx, params.Callback, amountMsat)
}

func (c *Client) fetchPayParams(ctx context.Context, endpoint string) (*lnurlPayParams, error) {
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("resolve payment alias: %w", err)
	}

	var params lnurlPayParams
	if err := json.Unmarshal(body, &params); err != nil {
		return nil, fmt.Errorf("decode lnurl-pay params: %w", err)
	}
	if strings.EqualFold(params.Status, "ERROR") {
		return nil, fmt.Errorf("lnurl-pay error: %s", params.Reason)
	}
	if params.Tag != "payRequest" || params.Callback == "" {
		return nil, fmt.Errorf("alias endpoint is not a payRequest")
	}
	return &params, nil
}

func (c *Client) fetchInvoice(ctx context.Context, callback string, amountMsat int64) (string, error) {
	u, err := url.Parse(callback)
	if err != nil {
		return "", fmt.Errorf("invalid lnurl callback: %w", err)
	}
	q := u.Query()
	q.Set("amount", fmt.Sprintf("%d", amountMsat))
	u.RawQuery = q.Encode()

	body, err := c.get(ctx, u.String())
	if err != nil {
		return "", fmt.Errorf("request alias invoice: %w", err)
	}

	var inv lnurlInvoice
	if err := json.Unmarshal(body, &inv); err != nil {
		return "", fmt.Errorf("decode alias invoice: %w", err)
	}
	if strings.EqualFold(inv.Status, "ERROR") {
		return "", fmt.Errorf("lnurl-pay error: %s", inv.Reason)
	}
	if inv.PR == "" {
		return "", fmt.Errorf("alias endpoint returned no invoice")
	}
	return inv.PR, nil
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, 1<<20))
}
