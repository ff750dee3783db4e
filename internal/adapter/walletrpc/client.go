package walletrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"private-payroll-gateway/internal/core/ports"

	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.WalletAdapter against a wallet's JSON-RPC-over-HTTP
// surface. Responses are deliberately decoded loosely: wallet backends
// disagree on envelope shapes, so every field access tolerates absence.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient HTTPClient
	log        zerolog.Logger
}

// New creates a wallet RPC client.
func New(baseURL, apiKey string, httpClient HTTPClient, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
		log:        log,
	}
}

type statusResponse struct {
	Connected bool   `json:"connected"`
	Address   string `json:"address"`
}

type submitRequest struct {
	ProgramID  string   `json:"program_id"`
	Function   string   `json:"function"`
	Inputs     []string `json:"inputs"`
	Fee        uint64   `json:"fee"`
	PrivateFee bool     `json:"private_fee"`
}

type submitResponse struct {
	TransactionID string `json:"transaction_id"`
	ID            string `json:"id"`
}

// Connected reports whether the wallet session is active. Any transport or
// decode failure reads as not connected.
func (c *Client) Connected(ctx context.Context) bool {
	var status statusResponse
	if err := c.get(ctx, "/status", &status); err != nil {
		c.log.Debug().Err(err).Msg("wallet status probe failed")
		return false
	}
	return status.Connected
}

// Address returns the active account address.
func (c *Client) Address(ctx context.Context) (string, error) {
	var status statusResponse
	if err := c.get(ctx, "/status", &status); err != nil {
		return "", err
	}
	if status.Address == "" {
		return "", fmt.Errorf("wallet reported no active address")
	}
	return status.Address, nil
}

// Submit sends the operation payload and returns the transaction id the
// wallet assigned.
func (c *Client) Submit(ctx context.Context, payload ports.OperationPayload) (string, error) {
	body := submitRequest{
		ProgramID:  payload.ProgramID,
		Function:   string(payload.Function),
		Inputs:     payload.Inputs,
		Fee:        payload.Fee,
		PrivateFee: payload.PrivateFee,
	}

	var resp submitResponse
	if err := c.post(ctx, "/transactions", body, &resp); err != nil {
		return "", err
	}
	txID := resp.TransactionID
	if txID == "" {
		txID = resp.ID
	}
	if txID == "" {
		return "", fmt.Errorf("wallet accepted submission but returned no transaction id")
	}
	return txID, nil
}

// TransactionStatus returns the wallet's free-form status string for txID.
// Backends return either a bare string or an object; both are flattened.
func (c *Client) TransactionStatus(ctx context.Context, txID string) (string, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/transactions/"+url.PathEscape(txID)+"/status", &raw); err != nil {
		return "", err
	}
	status, err := flattenStatus(raw)
	if err != nil {
		return "", fmt.Errorf("transaction %s: %w", txID, err)
	}
	return status, nil
}

// Records bulk-fetches the wallet's records for a program.
func (c *Client) Records(ctx context.Context, programID string, includePlaintext bool) ([]ports.RawRecord, error) {
	path := "/records?program=" + url.QueryEscape(programID) + "&plaintext=" + strconv.FormatBool(includePlaintext)

	var raw json.RawMessage
	if err := c.get(ctx, path, &raw); err != nil {
		return nil, err
	}

	// Bare array or {"records": [...]} envelope.
	var records []ports.RawRecord
	if err := json.Unmarshal(raw, &records); err == nil {
		return records, nil
	}
	var envelope struct {
		Records []ports.RawRecord `json:"records"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("decoding records response: %w", err)
	}
	return envelope.Records, nil
}

// flattenStatus normalizes a status payload to one string. Object forms are
// probed for the common field spellings before giving up.
func flattenStatus(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}

	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil {
		return "", fmt.Errorf("undecodable status payload")
	}
	for _, key := range []string{"status", "state", "type"} {
		if v, ok := obj[key].(string); ok && v != "" {
			return v, nil
		}
		// One level of nesting: {"status": {"type": "Accepted"}}.
		if nested, ok := obj[key].(map[string]any); ok {
			for _, nestedKey := range []string{"status", "state", "type"} {
				if v, ok := nested[nestedKey].(string); ok && v != "" {
					return v, nil
				}
			}
		}
	}
	return "", fmt.Errorf("no status field in payload")
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("building wallet request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding wallet request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building wallet request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("wallet rpc %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return fmt.Errorf("reading wallet response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("wallet rpc %s %s: status %d: %s", req.Method, req.URL.Path, resp.StatusCode, truncate(data, 256))
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding wallet response: %w", err)
	}
	return nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
