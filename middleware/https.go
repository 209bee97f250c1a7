package middleware

import (
	"net/http"
	"net/url"

	esccweb "github.com/east-sussex-county-council/Escc.Data.Web"
	"github.com/east-sussex-county-council/Escc.Data.Web/httpstatus"
)

// ForceHTTPS permanently redirects HTTP requests to HTTPS if the environment is
// not development.
//
// "X-Forwarded-Proto" is checked because an application behind a proxy
// terminates TLS there, not on the request itself.
func ForceHTTPS(env esccweb.Environment) Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" || env.IsDevelopment() {
				h.ServeHTTP(w, r)
				return
			}

			base := new(url.URL)
			*base = *r.URL
			base.Scheme = "http"
			base.Host = r.Host

			dest := new(url.URL)
			*dest = *base
			dest.Scheme = "https"

			res, err := httpstatus.Resolve(httpstatus.Redirect{
				RequestURL:  base,
				Method:      r.Method,
				Destination: dest,
				Kind:        httpstatus.Permanent,
			})
			if err != nil {
				httpstatus.InternalServerError(w)
				return
			}

			res.Apply(w)
		})
	}
}
