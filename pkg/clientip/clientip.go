package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// Config lists the proxy headers allowed to override the TCP peer address.
// Leave it empty unless the service runs behind a proxy that overwrites them.
type Config struct {
	Headers []string `env:"CLIENT_IP_HEADERS" envSeparator:","`
}

// Resolver picks the client address out of a request.
type Resolver struct {
	headers []string
}

// NewResolver returns a Resolver that consults headers in order before
// falling back to RemoteAddr.
func NewResolver(headers ...string) *Resolver {
	hs := make([]string, 0, len(headers))
	for _, h := range headers {
		if h = strings.TrimSpace(h); h != "" {
			hs = append(hs, http.CanonicalHeaderKey(h))
		}
	}
	return &Resolver{headers: hs}
}

// NewFromConfig is NewResolver over cfg.Headers.
func NewFromConfig(cfg Config) *Resolver {
	return NewResolver(cfg.Headers...)
}

// Resolve returns the normalized client IP, or "" if nothing valid is found.
// X-Forwarded-For style lists yield their first valid entry.
func (res *Resolver) Resolve(r *http.Request) string {
	for _, h := range res.headers {
		for v := range strings.SplitSeq(r.Header.Get(h), ",") {
			if ip := parse(v); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parse(r.RemoteAddr)
	}
	return parse(host)
}

func parse(s string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return addr.Unmap().WithZone("").String()
}
