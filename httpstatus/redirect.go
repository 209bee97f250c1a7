package httpstatus

import (
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"

	esccweb "github.com/east-sussex-county-council/Escc.Data.Web"
)

// ErrSelfRedirect reports a destination resolving to the URL already being requested.
// Following it would loop forever, so it is always a bug in the calling code.
var ErrSelfRedirect = errors.New("self redirect")

// A Kind selects between the redirect statuses the library issues.
type Kind int

const (
	// Permanent issues 301 Moved Permanently.
	Permanent Kind = iota

	// Temporary issues 303 See Other.
	Temporary
)

// A Redirect is the input to Resolve. All fields are read, never mutated.
//
// Destination may be relative, in which case it resolves against RequestURL.
// RequestURL must be absolute.
type Redirect struct {
	RequestURL  *url.URL
	Method      string
	Destination *url.URL
	Kind        Kind
}

// A Result is a fully computed redirect, ready to apply to a response.
//
// Location is always an absolute URL and never equal to the URL that was requested.
// Body is empty for HEAD requests.
type Result struct {
	Code     int
	Status   string
	Location string
	Body     string
}

// Resolve computes the redirect described by rd without touching a live response.
//
// A missing RequestURL or Destination returns an error wrapping
// [esccweb.ErrMissingData]. A destination resolving to the request URL itself
// returns ErrSelfRedirect. Destinations outside http and https return an error
// wrapping [esccweb.ErrNotValid]; a redirect is not the place for javascript: and
// friends.
func Resolve(rd Redirect) (Result, error) {
	if rd.RequestURL == nil {
		return Result{}, fmt.Errorf("%w: no request URL", esccweb.ErrMissingData)
	}

	if rd.Destination == nil {
		return Result{}, fmt.Errorf("%w: no destination", esccweb.ErrMissingData)
	}

	dest := rd.Destination
	if !dest.IsAbs() {
		dest = rd.RequestURL.ResolveReference(dest)
	}

	if dest.Scheme != "http" && dest.Scheme != "https" {
		return Result{}, fmt.Errorf("%w: cannot redirect to %q URL", esccweb.ErrNotValid, dest.Scheme)
	}

	loc := dest.String()
	if loc == rd.RequestURL.String() {
		return Result{}, fmt.Errorf("%w: %s", ErrSelfRedirect, loc)
	}

	res := Result{Location: loc}
	switch rd.Kind {
	case Temporary:
		res.Code = http.StatusSeeOther
		res.Status = "303 See Other"
	default:
		res.Code = http.StatusMovedPermanently
		res.Status = "301 Moved Permanently"
	}

	// Advisory only, for the rare client that renders the response
	// instead of following it. HEAD responses carry no body.
	if rd.Method != http.MethodHead {
		escaped := html.EscapeString(loc)
		res.Body = fmt.Sprintf(
			"<html><head><title>%s</title></head><body><p>Please see <a href=\"%s\">%s</a>.</p></body></html>",
			res.Status,
			escaped,
			escaped,
		)
	}

	return res, nil
}

// Apply writes the Result onto w. Once Apply returns the response is complete;
// calling code should return from its handler rather than write anything further.
func (res Result) Apply(w http.ResponseWriter) error {
	if w == nil {
		return fmt.Errorf("%w: no response writer", esccweb.ErrMissingData)
	}

	w.Header().Set("Location", res.Location)
	if res.Body != "" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
	}

	w.WriteHeader(res.Code)

	if res.Body != "" {
		if _, err := io.WriteString(w, res.Body); err != nil {
			return err
		}
	}

	return nil
}

// MovedPermanently redirects the request to destination with 301 Moved Permanently.
//
// Use when a resource has moved for good, e.g., a reorganised URL scheme,
// so clients update any stored links.
func MovedPermanently(w http.ResponseWriter, r *http.Request, destination string) error {
	return redirect(w, r, destination, Permanent)
}

// SeeOther redirects the request to destination with 303 See Other.
//
// Use when the response to the request lives at another URL,
// e.g., a confirmation page after a form POST.
func SeeOther(w http.ResponseWriter, r *http.Request, destination string) error {
	return redirect(w, r, destination, Temporary)
}

// redirect adapts the resolver to the net/http boundary.
func redirect(w http.ResponseWriter, r *http.Request, destination string, kind Kind) error {
	if r == nil {
		return fmt.Errorf("%w: no request", esccweb.ErrMissingData)
	}

	dest, err := url.Parse(destination)
	if err != nil {
		return fmt.Errorf("%w: destination is not a valid URL: %v", esccweb.ErrNotValid, err)
	}

	res, err := Resolve(Redirect{
		RequestURL:  requestURL(r),
		Method:      r.Method,
		Destination: dest,
		Kind:        kind,
	})
	if err != nil {
		return err
	}

	return res.Apply(w)
}

// requestURL reconstructs the absolute URL the client requested.
// In a server, *http.Request.URL holds only the path and query;
// the scheme and host live elsewhere on the request.
func requestURL(r *http.Request) *url.URL {
	if r.URL.IsAbs() {
		return r.URL
	}

	u := new(url.URL)
	*u = *r.URL
	u.Scheme = "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		u.Scheme = "https"
	}
	u.Host = r.Host

	return u
}
