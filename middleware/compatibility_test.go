package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/east-sussex-county-council/Escc.Data.Web/middleware"
)

func TestCompatibilityMode(t *testing.T) {
	tcs := []struct {
		name     string
		mode     string
		expected string
	}{
		{"Default", "", "IE=edge"},
		{"Pinned", "IE=9", "IE=9"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "http://example.org", nil)

			middleware.CompatibilityMode(tc.mode)(noopHandler()).ServeHTTP(w, r)

			require.Equal(t, tc.expected, w.Header().Get("X-UA-Compatible"))
		})
	}
}
