package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/vidhub/internal/client/notify"
	"github.com/dmitrijs2005/vidhub/internal/common"
	"github.com/dmitrijs2005/vidhub/internal/logging"
	"github.com/google/uuid"
)

const maxResponseBytes = 8 << 20

// TokenSource yields the credential to attach to outbound requests. An empty
// token means the request goes out anonymously.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// UnauthorizedHandler is called with the request path whenever the backend
// answers 401.
type UnauthorizedHandler func(ctx context.Context, path string)

type envelope struct {
	StatusCode int             `json:"statusCode"`
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message"`
	Success    bool            `json:"success"`
}

type APIClient struct {
	baseURL  string
	http     *http.Client
	tokens   TokenSource
	notifier notify.Notifier
	log      logging.Logger

	mu             sync.RWMutex
	onUnauthorized UnauthorizedHandler
}

type Option func(*APIClient)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *APIClient) { c.http = hc }
}

func WithTimeout(d time.Duration) Option {
	return func(c *APIClient) { c.http.Timeout = d }
}

func WithNotifier(n notify.Notifier) Option {
	return func(c *APIClient) { c.notifier = n }
}

func WithLogger(l logging.Logger) Option {
	return func(c *APIClient) { c.log = l }
}

// NewAPIClient returns a client rooted at baseURL, e.g.
// "http://localhost:4000/api/v1".
func NewAPIClient(baseURL string, tokens TokenSource, opts ...Option) *APIClient {
	c := &APIClient{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{},
		tokens:   tokens,
		notifier: notify.Discard{},
		log:      logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With("component", "api")
	return c
}

// SetUnauthorizedHandler installs h as the reaction to 401 answers. The
// session layer registers itself here once both are constructed.
func (c *APIClient) SetUnauthorizedHandler(h UnauthorizedHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUnauthorized = h
}

func (c *APIClient) unauthorized(ctx context.Context, path string) {
	c.mu.RLock()
	h := c.onUnauthorized
	c.mu.RUnlock()
	if h != nil {
		h(ctx, path)
	}
}

type request struct {
	method      string
	path        string
	query       url.Values
	body        io.Reader
	contentType string
}

func (c *APIClient) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, request{method: http.MethodGet, path: path, query: query}, out)
}

func (c *APIClient) postJSON(ctx context.Context, path string, in any, out any) error {
	b, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode %s body: %w", path, err)
	}
	return c.do(ctx, request{
		method:      http.MethodPost,
		path:        path,
		body:        bytes.NewReader(b),
		contentType: "application/json",
	}, out)
}

func (c *APIClient) do(ctx context.Context, r request, out any) error {
	target := c.baseURL + r.path
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, r.method, target, r.body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", r.method, r.path, err)
	}

	reqID := uuid.NewString()
	ctx = logging.WithRequestID(ctx, reqID)
	req.Header.Set(common.RequestIDHeaderName, reqID)
	req.Header.Set("Accept", "application/json")
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		c.log.Warn(ctx, "credential lookup failed, sending anonymously", "error", err)
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.log.Warn(ctx, "request failed", "method", r.method, "path", r.path, "error", err)
		c.notifier.Error(MsgNetworkError)
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, r.method, r.path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read %s %s: %w", r.method, r.path, err)
	}

	var env envelope
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil && resp.StatusCode < 300 {
			return fmt.Errorf("decode %s %s: %w", r.method, r.path, err)
		}
	}

	c.log.Info(ctx, "request done",
		"method", r.method, "path", r.path, "status", resp.StatusCode, "elapsed", time.Since(started))

	if resp.StatusCode == http.StatusUnauthorized {
		c.unauthorized(ctx, r.path)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Status: resp.StatusCode, Method: r.method, Path: r.path, Message: env.Message}
	}

	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", r.method, r.path, err)
	}
	return nil
}

// decodeFirst unmarshals raw into out, taking the first element when the
// backend wrapped a single record in an array (aggregation results).
func decodeFirst(raw json.RawMessage, out any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return ErrEmptyResponse
	}
	if trimmed[0] != '[' {
		return json.Unmarshal(trimmed, out)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return err
	}
	if len(items) == 0 {
		return ErrEmptyResponse
	}
	return json.Unmarshal(items[0], out)
}
