package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// A visitor pairs a rate limiter with the moment it last made a request.
type visitor struct {
	lastSeen time.Time
	limiter  *rate.Limiter
}

// Visitors maps a token-bucket limiter to each client IP address.
type Visitors struct {
	mu  sync.Mutex
	val map[string]*visitor
}

func NewVisitors() *Visitors { return &Visitors{val: make(map[string]*visitor)} }

// fetch retrieves the visitor for the given ip, creating one if not seen.
//
// New visitors are limited to 5 requests every second with bursts of up to 20.
func (vs *Visitors) fetch(ip string) *visitor {
	vs.mu.Lock()
	defer vs.mu.Unlock()

	v, ok := vs.val[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(5, 20)}
		vs.val[ip] = v
	}

	v.lastSeen = time.Now().UTC()
	return v
}

// cleanup forgets visitors not seen in over an hour.
func (vs *Visitors) cleanup() {
	vs.mu.Lock()
	defer vs.mu.Unlock()

	for ip, v := range vs.val {
		if time.Since(v.lastSeen) > time.Hour {
			delete(vs.val, ip)
		}
	}
}

// RateLimit drops requests exceeding their IP's limit with 429 Too Many Requests.
//
// If visitors is nil, NoopAdapter returns and this middleware does nothing.
func RateLimit(visitors *Visitors) Adapter {
	if visitors == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !visitors.fetch(GetIPAddress(r.Header)).limiter.Allow() {
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			visitors.cleanup()
			h.ServeHTTP(w, r)
		})
	}
}
