// Package transport provides the HTTP client used for all outbound Reddit
// requests: token-bucket pacing, bounded retries with exponential backoff,
// gzip handling and, when proxies are configured, per-connection TLS
// fingerprinting so bulk fetches are not trivially distinguishable from
// browser traffic.
package transport

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	utls "github.com/refraction-networking/utls"
	"golang.org/x/net/proxy"
	"golang.org/x/time/rate"
)

var clientHelloIDs = []utls.ClientHelloID{
	utls.HelloChrome_Auto,
	utls.HelloFirefox_Auto,
	utls.HelloSafari_Auto,
	utls.HelloEdge_Auto,
}

// Options configures a Client. Zero values fall back to direct connections,
// three retries and one request per second.
type Options struct {
	UserAgent       string
	ProxyURLs       []string
	MaxRetries      int
	Timeout         time.Duration
	RequestInterval time.Duration
}

// ProxyRotator hands out proxies round-robin across requests.
type ProxyRotator struct {
	parsed  []*url.URL
	current atomic.Uint32
}

func NewProxyRotator(proxyURLs []string) (*ProxyRotator, error) {
	r := &ProxyRotator{}
	for _, raw := range proxyURLs {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		u, err := url.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("parse proxy URL %s: %w", MaskProxyURL(raw), err)
		}
		r.parsed = append(r.parsed, u)
	}
	return r, nil
}

// Next returns the next proxy in rotation, or nil when none are configured.
func (r *ProxyRotator) Next() *url.URL {
	if r == nil || len(r.parsed) == 0 {
		return nil
	}
	idx := r.current.Add(1) % uint32(len(r.parsed))
	return r.parsed[idx]
}

// MaskProxyURL hides the password portion of a proxy URL for logging.
func MaskProxyURL(proxyURL string) string {
	if !strings.Contains(proxyURL, "@") {
		return proxyURL
	}
	u, err := url.Parse(proxyURL)
	if err != nil || u.User == nil {
		return "[masked]"
	}
	return strings.Replace(proxyURL, u.User.String(), u.User.Username()+":****", 1)
}

// fingerprintingDialer performs the TLS handshake with a randomly chosen
// browser ClientHello instead of Go's default fingerprint.
type fingerprintingDialer struct {
	proxyURL *url.URL
	helloID  utls.ClientHelloID
}

func newFingerprintingDialer(proxyURL *url.URL) *fingerprintingDialer {
	return &fingerprintingDialer{
		proxyURL: proxyURL,
		helloID:  clientHelloIDs[rand.Intn(len(clientHelloIDs))],
	}
}

func (d *fingerprintingDialer) DialTLSContext(ctx context.Context, network, addr string) (net.Conn, error) {
	conn, err := d.dial(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	host := addr
	if h, _, err := net.SplitHostPort(addr); err == nil {
		host = h
	}

	uconn := utls.UClient(conn, &utls.Config{ServerName: host}, d.helloID)
	if err := uconn.HandshakeContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("uTLS handshake: %w", err)
	}
	return uconn, nil
}

func (d *fingerprintingDialer) dial(ctx context.Context, network, addr string) (net.Conn, error) {
	if d.proxyURL == nil {
		var dialer net.Dialer
		return dialer.DialContext(ctx, network, addr)
	}

	switch d.proxyURL.Scheme {
	case "http", "https":
		transport := &http.Transport{Proxy: http.ProxyURL(d.proxyURL)}
		conn, err := transport.DialContext(ctx, network, addr)
		if err != nil {
			return nil, fmt.Errorf("dial via HTTP proxy: %w", err)
		}
		return conn, nil

	case "socks5":
		auth := &proxy.Auth{}
		if d.proxyURL.User != nil {
			auth.User = d.proxyURL.User.Username()
			if password, ok := d.proxyURL.User.Password(); ok {
				auth.Password = password
			}
		}
		dialer, err := proxy.SOCKS5("tcp", d.proxyURL.Host, auth, &net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		})
		if err != nil {
			return nil, fmt.Errorf("create SOCKS5 dialer: %w", err)
		}
		if cd, ok := dialer.(proxy.ContextDialer); ok {
			conn, err := cd.DialContext(ctx, network, addr)
			if err != nil {
				return nil, fmt.Errorf("dial via SOCKS5 proxy: %w", err)
			}
			return conn, nil
		}
		conn, err := dialer.Dial(network, addr)
		if err != nil {
			return nil, fmt.Errorf("dial via SOCKS5 proxy: %w", err)
		}
		return conn, nil

	default:
		return nil, fmt.Errorf("unsupported proxy scheme: %s", d.proxyURL.Scheme)
	}
}

// fingerprintingTransport picks a proxy and a TLS fingerprint per request.
type fingerprintingTransport struct {
	rotator *ProxyRotator
}

func (t *fingerprintingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	proxyURL := t.rotator.Next()

	inner := &http.Transport{
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 30 * time.Second,
		ForceAttemptHTTP2:     false,
	}
	if proxyURL != nil {
		inner.Proxy = http.ProxyURL(proxyURL)
	}
	if req.URL.Scheme == "https" {
		inner.DialTLSContext = newFingerprintingDialer(proxyURL).DialTLSContext
	}

	return inner.RoundTrip(req)
}

// Client wraps http.Client with pacing, retries and response decoding. A
// single Client is safe for concurrent use; independent fetches share only
// the rate limiter.
type Client struct {
	client     *http.Client
	limiter    *rate.Limiter
	maxRetries int
	userAgent  string
}

func NewClient(opts Options) (*Client, error) {
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = 3
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.RequestInterval <= 0 {
		opts.RequestInterval = time.Second
	}

	httpClient := &http.Client{Timeout: opts.Timeout}
	if len(opts.ProxyURLs) > 0 {
		rotator, err := NewProxyRotator(opts.ProxyURLs)
		if err != nil {
			return nil, err
		}
		for i, p := range opts.ProxyURLs {
			slog.Debug("registered proxy", "index", i+1, "url", MaskProxyURL(p))
		}
		httpClient.Transport = &fingerprintingTransport{rotator: rotator}
	}

	return &Client{
		client:     httpClient,
		limiter:    rate.NewLimiter(rate.Every(opts.RequestInterval), 1),
		maxRetries: opts.MaxRetries,
		userAgent:  opts.UserAgent,
	}, nil
}

func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= 500
}

// Do issues the request, retrying transport errors and 429/5xx responses
// with exponential backoff up to MaxRetries attempts. It returns the final
// status code and fully read (and, where needed, gunzipped) body. A non-2xx
// status on the last attempt is not an error here; callers decide how to
// surface it.
func (c *Client) Do(req *http.Request) (int, []byte, error) {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return 0, nil, err
	}

	if req.Header.Get("User-Agent") == "" && c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(1<<uint(attempt)) * time.Second
			slog.Debug("retrying request", "url", req.URL.String(), "attempt", attempt+1, "backoff", backoff)
			select {
			case <-req.Context().Done():
				return 0, nil, req.Context().Err()
			case <-time.After(backoff):
			}
		}

		resp, err := c.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		body, err := readBody(resp)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}

		if retryableStatus(resp.StatusCode) && attempt < c.maxRetries-1 {
			lastErr = fmt.Errorf("status %d", resp.StatusCode)
			continue
		}

		return resp.StatusCode, body, nil
	}

	return 0, nil, fmt.Errorf("all %d attempts failed: %w", c.maxRetries, lastErr)
}

func readBody(resp *http.Response) ([]byte, error) {
	var reader io.ReadCloser = resp.Body
	if strings.EqualFold(resp.Header.Get("Content-Encoding"), "gzip") {
		gr, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("gzip reader: %w", err)
		}
		defer gr.Close()
		reader = gr
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	// Some proxies hand back still-compressed payloads with the header
	// stripped; detect the gzip magic and decompress once more.
	if len(body) > 2 && body[0] == 0x1f && body[1] == 0x8b {
		gr, err := gzip.NewReader(bytes.NewReader(body))
		if err == nil {
			if uncompressed, err := io.ReadAll(gr); err == nil {
				body = uncompressed
			}
			gr.Close()
		}
	}

	return body, nil
}
