package middleware

import (
	"errors"
	"net/http"

	"github.com/east-sussex-county-council/Escc.Data.Web/httpstatus"
	"github.com/east-sussex-county-council/Escc.Data.Web/logger"
	"github.com/east-sussex-county-council/Escc.Data.Web/querystring"
)

// VerifySignedQuery rejects requests whose querystring fails the Signer's check.
// Unsigned or tampered querystrings get 400 Bad Request; lapsed time-limited
// links get 410 Gone.
//
// If s is nil, NoopAdapter returns and this middleware does nothing.
func VerifySignedQuery(s *querystring.Signer, l logger.Logger) Adapter {
	if s == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			err := s.Verify(r.URL)
			if err == nil {
				h.ServeHTTP(w, r)
				return
			}

			if l != nil {
				l.Warn(err.Error(), &logger.LogContext{Request: r, Error: err})
			}

			if errors.Is(err, querystring.ErrExpired) {
				httpstatus.Gone(w)
				return
			}

			httpstatus.BadRequest(w)
		})
	}
}
