package middleware_test

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/east-sussex-county-council/Escc.Data.Web/logger"
	"github.com/east-sussex-county-council/Escc.Data.Web/middleware"
)

func TestLogRequest(t *testing.T) {
	// Arrange
	color.NoColor = true
	b := new(bytes.Buffer)
	l := logger.New(logger.WithLogger(log.New(b, "", 0)))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "http://example.org/page?q=1&password=hunter2", nil)
	r.Header.Set("X-Forwarded-For", "203.0.113.7")

	// Act
	middleware.Chain(
		noopHandler(),
		middleware.InjectIPAddress(),
		middleware.LogRequest(l),
	).ServeHTTP(w, r)

	// Assert
	out := b.String()
	require.Contains(t, out, "203.0.113.7 GET /page?")
	require.Contains(t, out, "password=xxxxxxx")
	require.NotContains(t, out, "hunter2")
}

func TestLogRequestNilLogger(t *testing.T) {
	require.Equal(t,
		fmt.Sprintf("%p", middleware.NoopAdapter),
		fmt.Sprintf("%p", middleware.LogRequest(nil)),
	)
}
