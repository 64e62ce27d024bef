package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lounnaci/gestion-eau/internal/entity"
)

func TestWithIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{
			name:       "remote addr only",
			remoteAddr: "203.0.113.7:54321",
			want:       "203.0.113.7",
		},
		{
			name:       "x-forwarded-for wins",
			remoteAddr: "10.0.0.1:80",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.2"},
			want:       "203.0.113.7",
		},
		{
			name:       "x-real-ip wins over forwarded",
			remoteAddr: "10.0.0.1:80",
			headers: map[string]string{
				"X-Forwarded-For": "203.0.113.7",
				"X-Real-IP":       "198.51.100.9",
			},
			want: "198.51.100.9",
		},
		{
			name:       "garbage forwarded header is skipped",
			remoteAddr: "10.0.0.1:80",
			headers:    map[string]string{"X-Forwarded-For": "not-an-ip, 203.0.113.7"},
			want:       "203.0.113.7",
		},
		{
			name:       "unparseable everything",
			remoteAddr: "bad",
			want:       "unknown",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got string

			next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				got = entity.IPFromCtx(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
			req.RemoteAddr = tc.remoteAddr

			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}

			NewMiddleware().WithIP(next).ServeHTTP(httptest.NewRecorder(), req)

			require.Equal(t, tc.want, got)
		})
	}
}
