/*
Package httpstatus wraps standard HTTP response-status conventions as small helpers
over net/http.

Redirects are computed by [Resolve], a pure function that turns a request URL and a
possibly-relative destination into a status code, Location header value, and fallback
HTML body. Applying that result to a live http.ResponseWriter is a separate step,
either through [Result.Apply] or the [MovedPermanently] and [SeeOther] wrappers.

The remaining helpers write a fixed status onto the response. [InternalServerError]
and [BadGateway] pause for a random interval first so response times cannot be used
to tell error causes apart.
*/
package httpstatus
