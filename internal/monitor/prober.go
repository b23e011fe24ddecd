package monitor

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rileyhilliard/sitemon/internal/config"
	"github.com/rileyhilliard/sitemon/internal/logger"
)

// maxDrainBytes bounds how much of a response body is read before closing,
// so keep-alive connections can be reused without buffering large pages.
const maxDrainBytes = 64 << 10

// connection pooling limits, sized for a handful of sites polled every few seconds
const (
	defaultMaxIdleConns        = 100
	defaultMaxIdleConnsPerHost = 2
	defaultMaxConnsPerHost     = 4
	defaultIdleConnTimeout     = 60 * time.Second
)

// Prober checks one address. Implementations honor ctx cancellation and never
// return an error: a probe that did not complete is reported as Failure.
type Prober interface {
	Probe(ctx context.Context, address string) Outcome
}

// ProbeFunc adapts a function to the Prober interface.
type ProbeFunc func(ctx context.Context, address string) Outcome

// Probe calls f(ctx, address).
func (f ProbeFunc) Probe(ctx context.Context, address string) Outcome {
	return f(ctx, address)
}

// HTTPProber probes sites with a GET request over a pooled HTTP client.
// The deadline comes from the caller's context, not from the client.
type HTTPProber struct {
	client *http.Client
	log    logger.Logger
}

// NewHTTPProber creates an HTTPProber. A nil logger discards output.
func NewHTTPProber(log logger.Logger) *HTTPProber {
	if log == nil {
		log = logger.Noop()
	}
	return &HTTPProber{
		client: &http.Client{
			// no client timeout - the poller applies one per probe via context
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        defaultMaxIdleConns,
				MaxIdleConnsPerHost: defaultMaxIdleConnsPerHost,
				MaxConnsPerHost:     defaultMaxConnsPerHost,
				IdleConnTimeout:     defaultIdleConnTimeout,
			},
		},
		log: log,
	}
}

// Probe issues GET address. Any response is Success with its status code;
// anything else is Failure. Addresses without a scheme are sent over https.
func (p *HTTPProber) Probe(ctx context.Context, address string) Outcome {
	target := config.NormalizeURL(address)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		p.log.Debug("probe %s: bad request: %v", target, err)
		return Failure()
	}
	req.Header.Set("User-Agent", "sitemon")

	start := time.Now()
	resp, err := p.client.Do(req)
	if err != nil {
		p.log.Debug("probe %s: %s after %s: %v", target, failureReason(err), time.Since(start).Round(time.Millisecond), err)
		return Failure()
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes))

	p.log.Debug("probe %s: %d in %s", target, resp.StatusCode, time.Since(start).Round(time.Millisecond))
	return Success(resp.StatusCode)
}

// Close releases idle connections held by the prober.
func (p *HTTPProber) Close() {
	if transport, ok := p.client.Transport.(*http.Transport); ok {
		transport.CloseIdleConnections()
	}
}

// Failure reasons, used only for diagnostics.
const (
	ReasonTimeout = "timeout"
	ReasonRefused = "refused"
	ReasonDNS     = "dns"
	ReasonTLS     = "tls"
	ReasonOther   = "other"
)

// failureReason categorizes a transport error for debug logging.
func failureReason(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return ReasonTimeout
	}

	errStr := strings.ToLower(err.Error())

	switch {
	case strings.Contains(errStr, "timeout"):
		return ReasonTimeout
	case strings.Contains(errStr, "connection refused"):
		return ReasonRefused
	case strings.Contains(errStr, "no such host"),
		strings.Contains(errStr, "server misbehaving"):
		return ReasonDNS
	case strings.Contains(errStr, "tls"),
		strings.Contains(errStr, "x509"),
		strings.Contains(errStr, "certificate"):
		return ReasonTLS
	default:
		return ReasonOther
	}
}
