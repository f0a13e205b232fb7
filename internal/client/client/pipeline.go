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
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/dmitrijs2005/lightgallery/internal/client/models"
	"github.com/dmitrijs2005/lightgallery/internal/common"
	"github.com/dmitrijs2005/lightgallery/internal/logging"
)

const (
	DefaultTimeout     = 10 * time.Second
	DefaultRefreshPath = "/auth/refresh"
)

// CredentialStore is the pipeline's view of the credential owner. The token
// is re-read on every dispatch; the pipeline never keeps its own copy.
type CredentialStore interface {
	Token(ctx context.Context) string
	Replace(ctx context.Context, stale, fresh string) bool
	ClearIf(ctx context.Context, token string) bool
}

// Request describes one API call. Body, when not nil, is sent as JSON.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any

	// NoRefresh marks calls whose 401 must never start a refresh: the
	// refresh call itself and the login call.
	NoRefresh bool
}

// HTTPClient is the authenticated request pipeline. It is safe for
// concurrent use.
type HTTPClient struct {
	baseURL     string
	http        *http.Client
	store       CredentialStore
	timeout     time.Duration
	refreshPath string

	refreshes singleflight.Group
	events    *Events
	metrics   *Metrics
	log       logging.Logger
	observe   func(from, to State)
}

type Option func(*HTTPClient)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

// WithTimeout sets the per-dispatch timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.timeout = d }
}

func WithRefreshPath(p string) Option {
	return func(c *HTTPClient) { c.refreshPath = p }
}

func WithEvents(e *Events) Option {
	return func(c *HTTPClient) { c.events = e }
}

func WithMetrics(m *Metrics) Option {
	return func(c *HTTPClient) { c.metrics = m }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

// WithStateObserver installs fn to be called on every state transition.
func WithStateObserver(fn func(from, to State)) Option {
	return func(c *HTTPClient) { c.observe = fn }
}

func NewHTTPClient(baseURL string, store CredentialStore, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL:     strings.TrimRight(baseURL, "/"),
		http:        &http.Client{},
		store:       store,
		timeout:     DefaultTimeout,
		refreshPath: DefaultRefreshPath,
		events:      NewEvents(),
		log:         logging.Discard(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Events returns the hub announcing session terminations.
func (c *HTTPClient) Events() *Events {
	return c.events
}

// Do runs req through the pipeline and decodes the envelope's data into
// out (which may be nil).
func (c *HTTPClient) Do(ctx context.Context, req *Request, out any) error {
	id := uuid.NewString()
	cl := &call{
		client: c,
		req:    req,
		id:     id,
		state:  StateIdle,
		log:    c.log.With("request_id", id, "method", req.Method, "path", req.Path),
	}
	return cl.run(ctx, out)
}

// call carries one request through the state machine.
type call struct {
	client  *HTTPClient
	req     *Request
	id      string
	state   State
	token   string
	retried bool
	env     *models.Envelope
	err     error
	log     logging.Logger
}

func (cl *call) to(ctx context.Context, next State) {
	cl.log.Debug(ctx, "pipeline transition", "from", cl.state.String(), "to", next.String())
	if cl.client.observe != nil {
		cl.client.observe(cl.state, next)
	}
	cl.state = next
}

func (cl *call) run(ctx context.Context, out any) error {
	c := cl.client
	for {
		switch cl.state {
		case StateIdle:
			cl.token = c.store.Token(ctx)
			cl.to(ctx, StateDispatched)

		case StateDispatched:
			cl.to(ctx, cl.dispatch(ctx))

		case StateRetried:
			cl.to(ctx, StateDispatched)

		case StateSucceeded:
			c.metrics.request(cl.state)
			return decodeData(cl.env, out)

		case StateBusinessError, StateFailed, StateGaveUp:
			c.metrics.request(cl.state)
			return cl.err

		case StateAuthFailed:
			if cl.retried {
				cl.err = c.rejectRetry(ctx, cl.token, cl.err)
				c.metrics.request(cl.state)
				return cl.err
			}
			if cl.req.NoRefresh || cl.token == "" {
				c.metrics.request(cl.state)
				return cl.err
			}
			cl.to(ctx, StateRefreshing)

		case StateRefreshing:
			fresh, err := c.awaitRefresh(ctx, cl.token)
			if err != nil {
				cl.err = err
				cl.to(ctx, StateGaveUp)
				continue
			}
			cl.token = fresh
			cl.retried = true
			cl.to(ctx, StateRetried)

		default:
			return fmt.Errorf("pipeline in unexpected state %s", cl.state)
		}
	}
}

// dispatch performs the exchange with the current token and classifies the
// outcome into the next state, leaving env or err populated.
func (cl *call) dispatch(ctx context.Context) State {
	c := cl.client

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	httpReq, err := c.newHTTPRequest(ctx, cl.req, cl.token)
	if err != nil {
		cl.err = fmt.Errorf("failed to create request: %w", err)
		return StateFailed
	}
	httpReq.Header.Set(common.RequestIDHeaderName, cl.id)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		cl.log.Warn(ctx, "request not delivered", "error", err)
		cl.err = &StatusError{Kind: ErrUnavailable, Cause: err}
		return StateFailed
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		cl.err = &StatusError{Kind: ErrUnavailable, Status: resp.StatusCode, Cause: err}
		return StateFailed
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		cl.err = &StatusError{
			Kind:    statusKind(resp.StatusCode),
			Status:  resp.StatusCode,
			Message: errorMessage(body),
		}
		if resp.StatusCode == http.StatusUnauthorized {
			return StateAuthFailed
		}
		return StateFailed
	}

	env := &models.Envelope{Code: http.StatusOK}
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, env); err != nil {
			cl.err = &StatusError{Kind: ErrRequestFailed, Status: resp.StatusCode, Message: "malformed response", Cause: err}
			return StateFailed
		}
	}

	switch {
	case env.OK():
		cl.env = env
		return StateSucceeded
	case env.Code == http.StatusUnauthorized:
		cl.err = &StatusError{Kind: ErrUnauthorized, Status: env.Code, Message: env.Message}
		return StateAuthFailed
	default:
		cl.err = &BusinessError{Code: env.Code, Message: env.Message}
		return StateBusinessError
	}
}

func (c *HTTPClient) newHTTPRequest(ctx context.Context, req *Request, token string) (*http.Request, error) {
	u := c.baseURL + req.Path
	if len(req.Query) > 0 {
		u += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		b, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json;charset=utf-8")
	}
	if token != "" {
		httpReq.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}
	return httpReq, nil
}

func decodeData(env *models.Envelope, out any) error {
	if out == nil || env == nil {
		return nil
	}
	data := bytes.TrimSpace(env.Data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}

// errorMessage pulls a human-readable message out of an error body. Both the
// envelope "message" and the FastAPI-style "detail" string are understood.
func errorMessage(body []byte) string {
	var payload struct {
		Message string          `json:"message"`
		Detail  json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	var detail string
	if err := json.Unmarshal(payload.Detail, &detail); err == nil {
		return detail
	}
	return ""
}
