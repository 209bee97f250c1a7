package middleware

import (
	"context"
	"net/http"
	"net/netip"
	"strings"
)

// IANA defined IPv4 non-public ranges.
var privateRanges = []netip.Prefix{
	netip.MustParsePrefix("10.0.0.0/8"),
	netip.MustParsePrefix("100.64.0.0/10"),
	netip.MustParsePrefix("172.16.0.0/12"),
	netip.MustParsePrefix("192.0.0.0/24"),
	netip.MustParsePrefix("192.168.0.0/16"),
	netip.MustParsePrefix("198.18.0.0/15"),
}

// InjectIPAddress grabs the client IP address from the *http.Request.Header
// and promotes it to the request context under IPAddrKey.
func InjectIPAddress() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), IPAddrKey, GetIPAddress(r.Header))
			h.ServeHTTP(w, r.Clone(ctx))
		})
	}
}

// GetIPAddress parses the "X-Forwarded-For" and "X-Real-Ip" headers for
// the client's IP address.
//
// Addresses from non-public ranges are skipped, marching right to left so the
// result is the address just before our own proxies.
func GetIPAddress(hm http.Header) string {
	for _, h := range []string{"X-Forwarded-For", "X-Real-Ip"} {
		addresses := strings.Split(hm.Get(h), ",")
		for i := len(addresses) - 1; i >= 0; i-- {
			raw := strings.TrimSpace(addresses[i])
			addr, err := netip.ParseAddr(raw)
			if err != nil || !addr.IsGlobalUnicast() || isPrivate(addr) {
				continue
			}

			return raw
		}
	}

	return "0.0.0.0"
}

func isPrivate(addr netip.Addr) bool {
	for _, r := range privateRanges {
		if r.Contains(addr) {
			return true
		}
	}

	return false
}
