// File: tripway/gateway/client.go
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
)

// User-facing messages for the failure classes the transport can hit.
const (
	MsgTimeout       = "Request timed out. Please try again."
	MsgNoConnection  = "Cannot connect to server. Please check your connection and try again."
	MsgGenericFailed = "Something went wrong"
)

// Caller is the request surface the domain service clients depend on;
// tests substitute it with a fake.
type Caller interface {
	Do(ctx context.Context, endpoint string, opts Options) Result
}

// Options shapes one outgoing request.
type Options struct {
	Method string
	Data   interface{}
	Params map[string]string
	Token  string
}

// Client is the single transport to the backend API gateway. All domain
// service clients go through Do; it injects the bearer token, enforces
// the request ceiling and folds every failure into the Result envelope.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	logger         *zap.Logger
	onUnauthorized func(ctx context.Context)
}

// NewClient builds a gateway client with a fixed timeout ceiling.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// SetUnauthorizedHook registers the callback fired when any non-auth
// endpoint answers 401. The session store uses it to tear the session
// down; a 401 from the login call itself is a plain credential
// rejection and never fires the hook.
func (c *Client) SetUnauthorizedHook(fn func(ctx context.Context)) {
	c.onUnauthorized = fn
}

func isAuthEndpoint(endpoint string) bool {
	return strings.HasPrefix(endpoint, "/api/auth/")
}

// Do issues one request and normalizes the outcome. It never returns a
// Go error: timeouts, connection failures and HTTP error statuses all
// come back as a failed Result with a user-facing message.
func (c *Client) Do(ctx context.Context, endpoint string, opts Options) Result {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if opts.Data != nil {
		payload, err := json.Marshal(opts.Data)
		if err != nil {
			c.logger.Error("gateway: failed to encode request body",
				zap.String("endpoint", endpoint), zap.Error(err))
			return Failure(MsgGenericFailed, 0)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		c.logger.Error("gateway: failed to build request",
			zap.String("endpoint", endpoint), zap.Error(err))
		return Failure(MsgGenericFailed, 0)
	}
	req.Header.Set("Content-Type", "application/json")
	if opts.Token != "" {
		req.Header.Set("Authorization", "Bearer "+opts.Token)
	}
	if len(opts.Params) > 0 {
		q := url.Values{}
		for k, v := range opts.Params {
			q.Set(k, v)
		}
		req.URL.RawQuery = q.Encode()
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.transportFailure(endpoint, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("gateway: failed to read response",
			zap.String("endpoint", endpoint), zap.Error(err))
		return Failure(MsgGenericFailed, resp.StatusCode)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return Result{Success: true, Data: data, Status: resp.StatusCode}
	}

	if resp.StatusCode == http.StatusUnauthorized && !isAuthEndpoint(endpoint) && c.onUnauthorized != nil {
		c.onUnauthorized(ctx)
	}

	msg := serverErrorMessage(data, resp.StatusCode)
	c.logger.Warn("gateway: request failed",
		zap.String("method", method),
		zap.String("endpoint", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.String("error", msg))
	return Result{Success: false, Error: msg, Details: data, Status: resp.StatusCode}
}

func (c *Client) transportFailure(endpoint string, err error) Result {
	msg := MsgNoConnection
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		msg = MsgTimeout
	} else if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		msg = MsgTimeout
	}
	c.logger.Warn("gateway: transport failure",
		zap.String("endpoint", endpoint), zap.Error(err))
	return Failure(msg, 0)
}

// serverErrorMessage surfaces the body's message or error field
// verbatim, falling back to a generic status line.
func serverErrorMessage(body []byte, status int) string {
	var parsed struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Message != "" {
			return parsed.Message
		}
		if parsed.Error != "" {
			return parsed.Error
		}
	}
	return fmt.Sprintf("Server Error %d", status)
}
