// Package gql is a thin authenticated GraphQL client used for both platform
// services.
package gql

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/machinebox/graphql"
	"golang.org/x/oauth2"
)

// Call describes one query or mutation.
type Call struct {
	Operation string // operation name, used for logging only
	Query     string
	Variables map[string]any
}

// Client runs GraphQL calls against a single endpoint.
type Client interface {
	// Do runs call and decodes the response's data object into out.
	Do(ctx context.Context, call Call, out any) error
}

// Options configures NewClient.
type Options struct {
	Endpoint string
	Token    string
	Timeout  time.Duration
	Headers  map[string]string // sent with every call
	Observer Observer
	Debug    func(string)      // receives the raw request/response trace, nil disables
	Base     http.RoundTripper // nil uses http.DefaultTransport
}

type client struct {
	endpoint string
	timeout  time.Duration
	headers  map[string]string
	gql      *graphql.Client
	observer Observer
}

// NewClient creates a Client that authenticates every call with
// "Authorization: Bearer <token>".
func NewClient(opts Options) Client {
	observer := opts.Observer
	if observer == nil {
		observer = NoopObserver{}
	}
	g := graphql.NewClient(opts.Endpoint, graphql.WithHTTPClient(BearerHTTPClient(opts.Token, opts.Base)))
	if opts.Debug != nil {
		g.Log = opts.Debug
	}
	return &client{
		endpoint: opts.Endpoint,
		timeout:  opts.Timeout,
		headers:  opts.Headers,
		gql:      g,
		observer: observer,
	}
}

// BearerHTTPClient returns an http.Client whose transport adds the bearer
// token to each request and turns any non-2xx response into ErrRequestFailed.
func BearerHTTPClient(token string, base http.RoundTripper) *http.Client {
	if base == nil {
		base = http.DefaultTransport
	}
	return &http.Client{
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}),
			Base:   statusTransport{base: base},
		},
	}
}

// statusTransport rejects non-2xx responses before the GraphQL layer sees
// them; the graphql client only looks at the status when the body is not JSON.
type statusTransport struct {
	base http.RoundTripper
}

func (t statusTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		resp.Body.Close()
		return nil, fmt.Errorf("%w: status %d: %s", ErrRequestFailed, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return resp, nil
}

func (c *client) Do(ctx context.Context, call Call, out any) error {
	start := time.Now()
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	requestID := uuid.New().String()
	req := graphql.NewRequest(call.Query)
	for k, v := range call.Variables {
		req.Var(k, v)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	req.Header.Set("X-Request-Id", requestID)

	err := c.gql.Run(ctx, req, out)
	err = classify(ctx, call.Operation, err)

	c.observer.OnCallComplete(CallEvent{
		Operation: call.Operation,
		Endpoint:  c.endpoint,
		RequestID: requestID,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
		ErrorCode: errorCode(err),
	})
	return err
}

func classify(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, ErrTimeout)
	}
	if ctx.Err() != nil {
		return fmt.Errorf("%s: %w", op, ctx.Err())
	}
	if isConnectionError(err) {
		return fmt.Errorf("%s: %w: %v", op, ErrUnavailable, err)
	}
	return fmt.Errorf("%s: %w: %v", op, ErrRequestFailed, err)
}

func isConnectionError(err error) bool {
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrRequestFailed):
		return "REQUEST_FAILED"
	case errors.Is(err, context.Canceled):
		return "CANCELED"
	default:
		return "UNKNOWN"
	}
}
