package know2

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

const maxResponseBytes = 1 << 20

const defaultRequestTimeout = 30 * time.Second

// client issues authenticated requests against the catalog API and decodes
// the standard envelope. It is safe for concurrent use; the session cookie
// jar on the underlying http.Client carries the authentication state.
type client struct {
	base       *url.URL
	httpClient *http.Client
	timeout    time.Duration
	log        zerolog.Logger
}

func newClient(baseURL string, httpClient *http.Client, timeout time.Duration, log zerolog.Logger) (*client, error) {
	parsed, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, errors.New("base url must use http or https")
	}
	if parsed.Host == "" {
		return nil, errors.New("base url host is required")
	}

	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return &client{
		base:       parsed,
		httpClient: httpClient,
		timeout:    timeout,
		log:        log.With().Str("component", "know2").Logger(),
	}, nil
}

// do performs one request and returns the raw response body. Every non-2xx
// status is terminal; the caller receives the status and body through
// onError and nothing is retried. Timeouts take the same path with status 0.
func (c *client) do(ctx context.Context, method, path string, query url.Values, body any, onError func(status int, body string) error) ([]byte, error) {
	endpoint := *c.base
	endpoint.Path = strings.TrimRight(endpoint.Path, "/") + path
	if len(query) > 0 {
		endpoint.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, method, endpoint.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if timedOut(err) {
			c.log.Debug().Str("method", method).Str("path", path).Msg("request timed out")
			return nil, onError(0, strings.TrimSpace(err.Error()))
		}
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		if timedOut(err) {
			c.log.Debug().Str("method", method).Str("path", path).Msg("response read timed out")
			return nil, onError(0, strings.TrimSpace(err.Error()))
		}
		return nil, fmt.Errorf("%s %s: read response: %w", method, path, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.log.Debug().Str("method", method).Str("path", path).Int("status", resp.StatusCode).Msg("request failed")
		return nil, onError(resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	return raw, nil
}

// A request that outlives its deadline is terminal just like a bad status,
// so it flows through onError with status 0 (no status was received).
// Caller cancellation is not a timeout and propagates untouched.
func timedOut(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}

func (c *client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.timeout)
}

// fetch decodes a full envelope response for one catalog call.
func fetch[T any](ctx context.Context, c *client, method, path string, query url.Values, body any, onError func(status int, body string) error) (envelope[T], error) {
	var env envelope[T]

	raw, err := c.do(ctx, method, path, query, body, onError)
	if err != nil {
		return env, err
	}

	if err := json.Unmarshal(raw, &env); err != nil {
		return env, fmt.Errorf("%s %s: decode envelope: %w", method, path, err)
	}

	return env, nil
}

func orderedBy(field, direction string) url.Values {
	values := url.Values{}
	values.Set("order_by", field)
	values.Set("order", direction)
	return values
}
