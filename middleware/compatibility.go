package middleware

import "net/http"

const defaultCompatibilityMode = "IE=edge"

// CompatibilityMode sets the "X-UA-Compatible" header, telling Internet Explorer
// which rendering engine to use. Intranets routinely pin old engines through a
// site-wide policy; "IE=edge" opts a response out of that.
//
// An empty mode falls back to "IE=edge".
func CompatibilityMode(mode string) Adapter {
	if mode == "" {
		mode = defaultCompatibilityMode
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-UA-Compatible", mode)
			h.ServeHTTP(w, r)
		})
	}
}
