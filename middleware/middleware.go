package middleware

import "net/http"

// An Adapter allows chaining middlewares together.
type Adapter func(http.Handler) http.Handler

// NoopAdapter hands back the handler unchanged.
// Middlewares return it when misconfiguration leaves them nothing to do.
func NoopAdapter(h http.Handler) http.Handler { return h }

// Chain glues the set of adapters to the handler.
// The first adapter is the outermost, so it sees the request first.
func Chain(handler http.Handler, adapters ...Adapter) http.Handler {
	for i := len(adapters) - 1; i >= 0; i-- {
		handler = adapters[i](handler)
	}

	return handler
}

// A CtxKey identifies values this package stores in a request's context.
type CtxKey string

func (k CtxKey) String() string { return "esccweb middleware context key: " + string(k) }

const (
	// RequestIDKey holds the uuid RequestID assigns to each request.
	RequestIDKey CtxKey = "request-id"

	// IPAddrKey holds the client IP InjectIPAddress extracts.
	IPAddrKey CtxKey = "ip-address"
)
