package http

import (
	"net/http"
	"net/netip"

	"github.com/go-chi/chi/v5/middleware"
)

// withTrustedRealIP runs middleware.RealIP only for requests whose socket
// peer falls in trusted. Every other request keeps its peer address, so
// clients cannot pick their own rate-limit key through forwarding headers.
func withTrustedRealIP(trusted []netip.Prefix) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		forwarded := middleware.RealIP(next)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if peerTrusted(r.RemoteAddr, trusted) {
				forwarded.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// peerTrusted reports whether remoteAddr ("ip:port" or a bare ip) is
// inside one of trusted.
func peerTrusted(remoteAddr string, trusted []netip.Prefix) bool {
	if len(trusted) == 0 {
		return false
	}

	var addr netip.Addr
	if addrPort, err := netip.ParseAddrPort(remoteAddr); err == nil {
		addr = addrPort.Addr()
	} else if addr, err = netip.ParseAddr(remoteAddr); err != nil {
		return false
	}
	addr = addr.Unmap()

	for _, prefix := range trusted {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}
