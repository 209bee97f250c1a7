package httpstatus

import (
	"crypto/rand"
	"net/http"
	"time"
)

// BadRequest responds 400 Bad Request.
func BadRequest(w http.ResponseWriter) { respond(w, http.StatusBadRequest) }

// NotFound responds 404 Not Found.
func NotFound(w http.ResponseWriter) { respond(w, http.StatusNotFound) }

// Gone responds 410 Gone.
//
// Prefer this over 404 when a resource existed and was deliberately removed,
// e.g., a lapsed time-limited link.
func Gone(w http.ResponseWriter) { respond(w, http.StatusGone) }

// InternalServerError responds 500 Internal Server Error after a short random delay.
//
// The delay stops response times leaking which kind of failure occurred.
// It blocks the calling goroutine; that is the point.
func InternalServerError(w http.ResponseWriter) {
	randomDelay()
	respond(w, http.StatusInternalServerError)
}

// BadGateway responds 502 Bad Gateway after the same random delay as
// InternalServerError.
func BadGateway(w http.ResponseWriter) {
	randomDelay()
	respond(w, http.StatusBadGateway)
}

func respond(w http.ResponseWriter, code int) {
	http.Error(w, http.StatusText(code), code)
}

// randomDelay sleeps between 0 and 255 milliseconds, drawn from crypto/rand
// so the interval cannot be predicted. If the entropy source fails the
// maximum delay applies; a broken source must never remove the cover.
func randomDelay() {
	b := []byte{0xff}
	if _, err := rand.Read(b); err != nil {
		b[0] = 0xff
	}

	time.Sleep(time.Duration(b[0]) * time.Millisecond)
}
