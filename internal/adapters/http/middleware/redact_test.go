package middleware_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen11/devflix-admin/internal/adapters/http/middleware"
)

const redactedValue = "[REDACTED]"

func TestRedactHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers http.Header
		// want lists key=value pairs in the order RedactHeaders returns them.
		want [][2]string
	}{
		{
			name:    "no headers",
			headers: http.Header{},
			want:    [][2]string{},
		},
		{
			name:    "bearer token",
			headers: http.Header{"Authorization": {"Bearer admin-token"}},
			want:    [][2]string{{"Authorization", redactedValue}},
		},
		{
			name: "every credential header",
			headers: http.Header{
				"Cookie":              {"session=abc"},
				"Proxy-Authorization": {"Basic Zm9vOmJhcg=="},
				"Set-Cookie":          {"session=abc; HttpOnly"},
				"X-Api-Key":           {"key-123"},
			},
			want: [][2]string{
				{"Cookie", redactedValue},
				{"Proxy-Authorization", redactedValue},
				{"Set-Cookie", redactedValue},
				{"X-Api-Key", redactedValue},
			},
		},
		{
			name: "request metadata passes through sorted",
			headers: http.Header{
				"X-Request-Id":     {"req-1"},
				"Content-Type":     {"application/json"},
				"X-Correlation-Id": {"flow-9"},
			},
			want: [][2]string{
				{"Content-Type", "application/json"},
				{"X-Correlation-Id", "flow-9"},
				{"X-Request-Id", "req-1"},
			},
		},
		{
			name:    "multi-value header joined",
			headers: http.Header{"Accept": {"application/json", "application/problem+json"}},
			want:    [][2]string{{"Accept", "application/json,application/problem+json"}},
		},
		{
			name: "mixed",
			headers: http.Header{
				"Authorization": {"Bearer admin-token"},
				"User-Agent":    {"devflix-console/2.3"},
			},
			want: [][2]string{
				{"Authorization", redactedValue},
				{"User-Agent", "devflix-console/2.3"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			attrs := middleware.RedactHeaders(tt.headers)

			got := make([][2]string, 0, len(attrs))
			for _, a := range attrs {
				got = append(got, [2]string{a.Key, a.Value.String()})
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
