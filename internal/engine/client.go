// Package engine calls the external blockchain transaction relay on
// behalf of a fixed operator wallet. Every call is a live round trip:
// no caching and no retry; failures surface as ErrUpstream with the
// cause attached for logging.
package engine

import (
	"bytes"         // Request body buffer
	"context"       // Request-scoped cancellation
	"encoding/json" // JSON encoding of request bodies
	"errors"        // Sentinel error
	"fmt"           // Error wrapping and URL building
	"io"            // Response body reading
	"net/http"      // HTTP client
	"net/url"       // Query escaping
	"time"          // Client timeout
)

// ErrUpstream marks any relay failure: transport error, timeout, or a
// non-2xx response.
var ErrUpstream = errors.New("relay request failed")

// defaultTimeout bounds every relay round trip.
const defaultTimeout = 10 * time.Second

// Client issues claim and balance requests against the relay's contract
// endpoints under the operator's credentials.
type Client struct {
	baseURL       string       // Relay base URL
	chain         string       // Target chain identifier
	contract      string       // Target ERC-20 contract address
	backendWallet string       // Operator wallet address header value
	secretKey     string       // Operator API secret for the bearer header
	http          *http.Client // Timeout-bounded HTTP client
}

// New constructs a relay client for one chain/contract pair.
func New(baseURL, chain, contract, backendWallet, secretKey string) *Client {
	return &Client{
		baseURL:       baseURL,
		chain:         chain,
		contract:      contract,
		backendWallet: backendWallet,
		secretKey:     secretKey,
		http:          &http.Client{Timeout: defaultTimeout},
	}
}

// claimRequest is the relay's claim-to request body.
type claimRequest struct {
	Recipient string `json:"recipient"` // Wallet receiving the tokens
	Amount    string `json:"amount"`    // Token amount to claim
}

// ClaimTo asks the relay to transfer one token unit to the recipient
// address and returns the relay's raw JSON response.
func (c *Client) ClaimTo(ctx context.Context, recipient string) (json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/contract/%s/%s/erc20/claim-to", c.baseURL, c.chain, c.contract)
	body, err := json.Marshal(claimRequest{Recipient: recipient, Amount: "1"})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

// BalanceOf queries the relay for the ERC-20 balance of the wallet
// address and returns the relay's raw JSON response.
func (c *Client) BalanceOf(ctx context.Context, wallet string) (json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/contract/%s/%s/erc20/balance-of?wallet_address=%s",
		c.baseURL, c.chain, c.contract, url.QueryEscape(wallet))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return c.do(req)
}

// do attaches the operator credentials, performs the round trip, and
// returns the body of a 2xx response.
func (c *Client) do(req *http.Request) (json.RawMessage, error) {
	req.Header.Set("x-backend-wallet-address", c.backendWallet)
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode, body)
	}
	return body, nil
}
