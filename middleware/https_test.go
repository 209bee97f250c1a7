package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	esccweb "github.com/east-sussex-county-council/Escc.Data.Web"
	"github.com/east-sussex-county-council/Escc.Data.Web/middleware"
)

func TestForceHTTPS(t *testing.T) {
	t.Run("Development-Passes", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "http://example.com/page", nil)

		middleware.ForceHTTPS(esccweb.Development)(noopHandler()).ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Forwarded-HTTPS-Passes", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "http://example.com/page", nil)
		r.Header.Set("X-Forwarded-Proto", "https")

		middleware.ForceHTTPS(esccweb.Production)(noopHandler()).ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("HTTP-Redirects", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "http://example.com/page?q=1", nil)
		r.Header.Set("X-Forwarded-Proto", "http")

		middleware.ForceHTTPS(esccweb.Production)(noopHandler()).ServeHTTP(w, r)

		require.Equal(t, http.StatusMovedPermanently, w.Code)
		require.Equal(t, "https://example.com/page?q=1", w.Header().Get("Location"))
		require.Contains(t, w.Body.String(), "https://example.com/page?q=1")
	})

	t.Run("HEAD-Redirects-Without-Body", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodHead, "http://example.com/page", nil)

		middleware.ForceHTTPS(esccweb.Production)(noopHandler()).ServeHTTP(w, r)

		require.Equal(t, http.StatusMovedPermanently, w.Code)
		require.Empty(t, w.Body.String())
	})
}
