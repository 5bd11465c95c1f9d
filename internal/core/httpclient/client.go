package httpclient

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"opensea-orders/internal/core/logger"
	"opensea-orders/internal/core/metrics"
	"opensea-orders/internal/core/proxy"

	"go.uber.org/zap"
	"golang.org/x/net/http/httpguts"
)

// LoggingRoundTripper captures request details for debugging.
// Header values are never logged.
type LoggingRoundTripper struct {
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
}

// RoundTrip executes the request, logs it and records upstream metrics.
func (lrt *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	log := logger.Named("httpclient")

	log.Debug("HTTP Request Started",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
	)

	resp, err := lrt.Proxied.RoundTrip(req)

	duration := time.Since(start)
	metrics.UpstreamLatency.WithLabelValues(req.Method).Observe(duration.Seconds())

	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(req.Method, "error").Inc()
		log.Debug("HTTP Request Failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(req.Method, strconv.Itoa(resp.StatusCode)).Inc()
	log.Debug("HTTP Request Completed",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", duration),
	)

	return resp, nil
}

// HeaderRoundTripper sets a fixed set of headers on every outgoing request.
type HeaderRoundTripper struct {
	// Headers are applied with Set, replacing any value already on the request.
	Headers http.Header
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
}

// RoundTrip clones the request, applies the headers and forwards it.
func (hrt *HeaderRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if len(hrt.Headers) == 0 {
		return hrt.Proxied.RoundTrip(req)
	}
	clone := req.Clone(req.Context())
	for key, values := range hrt.Headers {
		clone.Header.Del(key)
		for _, v := range values {
			clone.Header.Add(key, v)
		}
	}
	return hrt.Proxied.RoundTrip(clone)
}

// Option configures NewClient.
type Option func(*options) error

type options struct {
	headers   http.Header
	proxy     proxy.Settings
	transport http.RoundTripper
}

// WithHeader attaches a header to every request made by the client.
// The name and value must be valid, printable ASCII.
func WithHeader(key, value string) Option {
	return func(o *options) error {
		if !httpguts.ValidHeaderFieldName(key) {
			return fmt.Errorf("invalid header name %q", key)
		}
		if !isPrintableASCII(value) || !httpguts.ValidHeaderFieldValue(value) {
			return fmt.Errorf("invalid value for header %s", key)
		}
		o.headers.Set(key, value)
		return nil
	}
}

// WithProxy routes requests through the given proxy when it is configured.
func WithProxy(p proxy.Settings) Option {
	return func(o *options) error {
		o.proxy = p
		return nil
	}
}

// WithTransport replaces the base transport. Proxy settings are ignored when set.
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) error {
		o.transport = rt
		return nil
	}
}

// NewClient returns an http.Client with header and logging middleware.
// A zero timeout leaves deadlines to the request context.
func NewClient(timeout time.Duration, opts ...Option) (*http.Client, error) {
	o := &options{headers: make(http.Header)}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}

	base := o.transport
	if base == nil {
		t := http.DefaultTransport.(*http.Transport).Clone()
		if o.proxy.HasProxy() {
			t.Proxy = o.proxy.ProxyFunc()
		}
		base = t
	}

	return &http.Client{
		Transport: &HeaderRoundTripper{
			Headers: o.headers,
			Proxied: &LoggingRoundTripper{Proxied: base},
		},
		Timeout: timeout,
	}, nil
}

func isPrintableASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 0x20 || c > 0x7e {
			return false
		}
	}
	return true
}
