package weburl

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
)

// ErrBlocked is returned for URLs that must not be fetched.
var ErrBlocked = errors.New("url blocked")

var (
	cgnat    = mustCIDR("100.64.0.0/10")
	v6unique = mustCIDR("fc00::/7")
	v6link   = mustCIDR("fe80::/10")
)

func mustCIDR(s string) *net.IPNet {
	_, n, err := net.ParseCIDR(s)
	if err != nil {
		panic("invalid CIDR " + s + ": " + err.Error())
	}
	return n
}

// ValidateURL checks that rawURL is an HTTPS URL outside private networks.
func ValidateURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if parsed.Scheme != "https" {
		return fmt.Errorf("%w: scheme %q, only https is allowed", ErrBlocked, parsed.Scheme)
	}

	host := strings.ToLower(parsed.Hostname())
	switch {
	case host == "":
		return fmt.Errorf("%w: missing host", ErrBlocked)
	case host == "localhost" || host == "127.0.0.1" || host == "::1":
		return fmt.Errorf("%w: localhost", ErrBlocked)
	case strings.HasSuffix(host, ".local") || strings.HasSuffix(host, ".internal"):
		return fmt.Errorf("%w: local domain %s", ErrBlocked, host)
	}

	if ip := net.ParseIP(host); ip != nil && IsPrivateIP(ip) {
		return fmt.Errorf("%w: private address %s", ErrBlocked, host)
	}
	return nil
}

// IsPrivateIP reports whether ip is loopback, private, link-local, CGNAT or
// IPv6 unique local. IPv4-mapped IPv6 addresses are checked as IPv4.
func IsPrivateIP(ip net.IP) bool {
	if v4 := ip.To4(); v4 != nil {
		ip = v4
	}
	if ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() {
		return true
	}
	return cgnat.Contains(ip) || v6unique.Contains(ip) || v6link.Contains(ip)
}

// Resolve joins name onto base and validates the resulting URL.
func Resolve(base, name string) (string, error) {
	b, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %w", err)
	}
	if !strings.HasSuffix(b.Path, "/") {
		b.Path += "/"
	}
	ref, err := url.Parse(url.PathEscape(name))
	if err != nil {
		return "", fmt.Errorf("invalid page name %q: %w", name, err)
	}
	resolved := b.ResolveReference(ref).String()
	if err := ValidateURL(resolved); err != nil {
		return "", err
	}
	return resolved, nil
}
