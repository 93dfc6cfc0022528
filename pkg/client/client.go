// Package client is the HTTP client for the event calendar API.
//
// Requests that fail without a response are retried for a bounded window. Responses
// with an error status are never retried. Every outcome is returned as a Result, callers
// never receive a transport error.
package client

import (
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// RetryCeiling is the time after the first attempt during which transport failures are retried.
	RetryCeiling = 60 * time.Second

	// RetryInterval is the wait between two attempts.
	RetryInterval = 2 * time.Second

	// AttemptTimeout bounds a single attempt.
	AttemptTimeout = 30 * time.Second
)

// Client sends requests to the API.
type Client struct {
	BaseURL string

	// Retry enables retrying transport failures. When false, a single attempt is made.
	Retry bool

	http     *http.Client
	ceiling  time.Duration
	interval time.Duration
	now      func() time.Time
	sleep    func(context.Context, time.Duration) error
	logger   zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the http.Client used for all attempts.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// WithRetry enables or disables retrying transport failures.
func WithRetry(enabled bool) Option {
	return func(c *Client) {
		c.Retry = enabled
	}
}

// WithRetryWindow overrides RetryCeiling and RetryInterval.
func WithRetryWindow(ceiling, interval time.Duration) Option {
	return func(c *Client) {
		c.ceiling = ceiling
		c.interval = interval
	}
}

// WithClock replaces the wall clock and the wait between attempts.
func WithClock(now func() time.Time, sleep func(context.Context, time.Duration) error) Option {
	return func(c *Client) {
		c.now = now
		c.sleep = sleep
	}
}

// WithLogger sets the logger for retry messages.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// New creates a client for the API at baseURL. An empty baseURL selects DefaultBaseURL.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		BaseURL:  strings.TrimRight(baseURL, "/"),
		Retry:    true,
		http:     NewHTTPClient(AttemptTimeout),
		ceiling:  RetryCeiling,
		interval: RetryInterval,
		now:      time.Now,
		sleep:    sleep,
		logger:   log.With().Str("component", "client").Logger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// NewHTTPClient returns an http.Client with short connection timeouts.
func NewHTTPClient(timeout time.Duration) *http.Client {
	tr := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         (&net.Dialer{Timeout: 5 * time.Second, KeepAlive: 60 * time.Second}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: tr}
}

// sleep waits for d or until the context is done.
func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
