package middleware

import (
	"net/http"
	"strings"

	"github.com/east-sussex-county-council/Escc.Data.Web/logger"
)

// LogRequest logs the request's method, requested URL, and originating IP address
// using the enclosed implementation of logger.Logger.
//
// LogRequest scrubs the values for the following keys:
// - password
//
// If l is nil, NoopAdapter returns and this middleware does nothing.
func LogRequest(l logger.Logger) Adapter {
	if l == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			uri := r.URL.Path
			q := r.URL.Query()
			if q.Get("password") != "" {
				q.Set("password", "xxxxxxx")
			}

			if query := q.Encode(); query != "" {
				uri += "?" + query
			}

			parts := []string{r.Method, uri}
			if ip, ok := r.Context().Value(IPAddrKey).(string); ok {
				parts = append([]string{ip}, parts...)
			}

			l.Info(strings.Join(parts, " "), nil)
			h.ServeHTTP(w, r)
		})
	}
}
