package node

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/wippyai/wevm-cdk/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// APIKeyHeader carries the node API key.
const APIKeyHeader = "X-API-Key"

// SignAndBroadcastPath is the endpoint that signs a transaction with the
// sender's node key and broadcasts it.
const SignAndBroadcastPath = "/transactions/signAndBroadcast"

const defaultTimeout = 30 * time.Second

// Client talks to the REST API of a node.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http = &http.Client{Timeout: d}
	}
}

// New creates a client for the node at baseURL.
func New(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Response is the node's answer to a broadcast.
type Response struct {
	Status int
	Body   []byte
	ID     string // transaction id, when the node returned one
}

// SignAndBroadcast posts tx to the sign-and-broadcast endpoint. Any non-2xx
// answer is returned as a transport error carrying the status and body.
// Requests are never retried.
func (c *Client) SignAndBroadcast(ctx context.Context, tx any) (*Response, error) {
	return c.post(ctx, SignAndBroadcastPath, tx)
}

func (c *Client) post(ctx context.Context, path string, body any) (*Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseDeploy, errors.KindInvalidInput, err, "marshal transaction")
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, errors.Transport("create request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set(APIKeyHeader, c.apiKey)
	}

	Logger().Debug("posting to node", zap.String("url", url), zap.Int("bytes", len(data)))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Transport("post "+url, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			Logger().Warn("failed to close response body", zap.Error(err))
		}
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Transport("read response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.New(errors.PhaseDeploy, errors.KindTransport).
			Value(resp.StatusCode).
			Detail("http %d: %s", resp.StatusCode, strings.TrimSpace(string(raw))).
			Build()
	}

	out := &Response{Status: resp.StatusCode, Body: raw}
	var ack struct {
		ID string `json:"id"`
	}
	if len(raw) > 0 && json.Unmarshal(raw, &ack) == nil {
		out.ID = ack.ID
	}

	Logger().Info("transaction accepted", zap.Int("status", out.Status), zap.String("id", out.ID))
	return out, nil
}

func (r *Response) String() string {
	if r.ID != "" {
		return fmt.Sprintf("%d %s", r.Status, r.ID)
	}
	return fmt.Sprintf("%d", r.Status)
}
