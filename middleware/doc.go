/*
Package middleware defines what a middleware is in this library and a set of basic
middlewares for wiring its helpers into any net/http stack.

The available middlewares are:
- CORS
- CompatibilityMode
- ForceHTTPS
- InjectIPAddress
- LogRequest
- RateLimit
- RequestID
- VerifySignedQuery

No default chain is provided; applications differ too much. A typical one:

	vs := middleware.NewVisitors()
	adpts := []middleware.Adapter{
		middleware.RateLimit(vs),
		middleware.ForceHTTPS(env),
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		middleware.LogRequest(log),
		middleware.CORS(origin),
		middleware.CompatibilityMode(""),
	}
	handler := middleware.Chain(mux, adpts...)
*/
package middleware
