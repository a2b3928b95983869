package xpyun

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	defaultBaseURL = "https://open.xpyun.net/api/openapi/xprinter"
	defaultTimeout = 30 * time.Second

	// Version of the SDK, sent in the User-Agent header.
	Version = "0.1.0"

	userAgent = "xpyun-sdk-go/" + Version
)

// Client represents an XPYUN open platform client. Credentials are fixed
// for the life of the client; the client is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	user       string
	userKey    string
	logger     *zap.Logger
	debug      bool
	now        func() time.Time
}

// Option is a function that configures the client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithBaseURL sets a custom base URL for the API.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the request timeout on the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithLogger sets the logger used by the client.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables debug logging of every request and response.
func WithDebug() Option {
	return func(c *Client) {
		c.debug = true
	}
}

// New creates a new XPYUN client for the given account credentials.
func New(user, userKey string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    defaultBaseURL,
		user:       user,
		userKey:    userKey,
		logger:     zap.NewNop(),
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// envelope is the JSON wrapper every endpoint responds with.
type envelope struct {
	Code               int             `json:"code"`
	Msg                string          `json:"msg"`
	Data               json.RawMessage `json:"data"`
	ServerExecutedTime int64           `json:"serverExecutedTime"`
}

// call performs a signed POST to the named API method. Params are merged
// with the auth parameters and the request time; on success the envelope
// data is decoded into out when out is non-nil.
func (c *Client) call(ctx context.Context, method string, params map[string]any, out any) error {
	now := c.now()

	body := c.authParams(now)
	body["requestTime"] = now.UnixMilli()
	for k, v := range params {
		body[k] = v
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request body: %w", err)
	}

	if c.debug {
		c.logger.Debug("xpyun request",
			zap.String("method", method),
			zap.Any("params", params),
		)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+method, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json;charset=UTF-8")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("request failed with status %d: %w", resp.StatusCode, err)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(raw))
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	if c.debug {
		c.logger.Debug("xpyun response",
			zap.String("method", method),
			zap.Int("code", env.Code),
			zap.String("msg", env.Msg),
		)
	}

	if env.Code != codeOK {
		return &APIError{Code: env.Code, Msg: env.Msg}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decoding response data: %w", err)
		}
	}

	return nil
}

// User returns the account user the client was created with.
func (c *Client) User() string {
	return c.user
}
