package aed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/c360studio/lexmerge/source/weburl"
)

// DefaultBaseURL serves the published lemma pages.
const DefaultBaseURL = "https://raw.githubusercontent.com/simondschweitzer/aed/gh-pages/"

// ErrNotFound is returned when the server has no page for a lemma.
var ErrNotFound = errors.New("lemma not found")

// FetcherConfig configures remote lemma retrieval.
type FetcherConfig struct {
	BaseURL        string
	Timeout        time.Duration
	UserAgent      string
	MaxContentSize int64
}

// Fetcher downloads single lemma pages.
type Fetcher struct {
	client    *http.Client
	baseURL   string
	userAgent string
	maxSize   int64
	resolve   func(base, name string) (string, error)
}

// NewFetcher creates a fetcher that refuses private network targets, both
// by URL and after DNS resolution.
func NewFetcher(cfg FetcherConfig) *Fetcher {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.MaxContentSize == 0 {
		cfg.MaxContentSize = 5 << 20
	}

	dialer := &net.Dialer{Timeout: 10 * time.Second, KeepAlive: 30 * time.Second}
	safeDial := func(ctx context.Context, network, addr string) (net.Conn, error) {
		host, port, err := net.SplitHostPort(addr)
		if err != nil {
			return nil, fmt.Errorf("invalid address: %w", err)
		}
		ips, err := net.DefaultResolver.LookupIPAddr(ctx, host)
		if err != nil {
			return nil, fmt.Errorf("DNS lookup failed: %w", err)
		}
		for _, ip := range ips {
			if weburl.IsPrivateIP(ip.IP) {
				return nil, fmt.Errorf("%w: %s resolves to %s", weburl.ErrBlocked, host, ip.IP)
			}
		}
		for _, ip := range ips {
			if conn, err := dialer.DialContext(ctx, network, net.JoinHostPort(ip.IP.String(), port)); err == nil {
				return conn, nil
			}
		}
		return nil, fmt.Errorf("failed to connect to %s", host)
	}

	client := &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			DialContext:           safeDial,
			TLSHandshakeTimeout:   10 * time.Second,
			ResponseHeaderTimeout: cfg.Timeout,
			MaxIdleConns:          10,
			IdleConnTimeout:       90 * time.Second,
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 5 {
				return errors.New("too many redirects (max 5)")
			}
			if err := weburl.ValidateURL(req.URL.String()); err != nil {
				return fmt.Errorf("redirect blocked: %w", err)
			}
			return nil
		},
	}

	return &Fetcher{
		client:    client,
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		maxSize:   cfg.MaxContentSize,
		resolve:   weburl.Resolve,
	}
}

// Fetch downloads and parses the page of lemma id.
func (f *Fetcher) Fetch(ctx context.Context, id string) (*Lemma, error) {
	if !lemmaID.MatchString(id) {
		return nil, fmt.Errorf("invalid lemma id %q", id)
	}
	pageURL, err := f.resolve(f.baseURL, id+".html")
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch lemma %s: %w", id, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("lemma %s: %w", id, ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("fetch lemma %s: HTTP %d: %s", id, resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("read lemma %s: %w", id, err)
	}
	if int64(len(body)) > f.maxSize {
		return nil, fmt.Errorf("lemma %s: content too large (exceeds %d bytes)", id, f.maxSize)
	}
	return ParseLemma(id, bytes.NewReader(body))
}
