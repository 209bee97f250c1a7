package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/east-sussex-county-council/Escc.Data.Web/middleware"
)

func TestGetIPAddress(t *testing.T) {
	tcs := []struct {
		name     string
		headers  map[string]string
		expected string
	}{
		{"None", nil, "0.0.0.0"},
		{"Forwarded-For", map[string]string{"X-Forwarded-For": "203.0.113.7"}, "203.0.113.7"},
		{"Real-Ip", map[string]string{"X-Real-Ip": "203.0.113.7"}, "203.0.113.7"},
		{
			"Rightmost-Public",
			map[string]string{"X-Forwarded-For": "203.0.113.7, 198.51.100.2"},
			"198.51.100.2",
		},
		{
			"Skips-Private",
			map[string]string{"X-Forwarded-For": "203.0.113.7, 10.1.2.3"},
			"203.0.113.7",
		},
		{"Only-Private", map[string]string{"X-Forwarded-For": "192.168.1.10"}, "0.0.0.0"},
		{"Garbage", map[string]string{"X-Forwarded-For": "not-an-ip"}, "0.0.0.0"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			hm := http.Header{}
			for k, v := range tc.headers {
				hm.Set(k, v)
			}

			require.Equal(t, tc.expected, middleware.GetIPAddress(hm))
		})
	}
}

func TestInjectIPAddress(t *testing.T) {
	var got string
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = r.Context().Value(middleware.IPAddrKey).(string)
	})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "http://example.org", nil)
	r.Header.Set("X-Forwarded-For", "203.0.113.7")

	middleware.InjectIPAddress()(h).ServeHTTP(w, r)

	require.Equal(t, "203.0.113.7", got)
}
