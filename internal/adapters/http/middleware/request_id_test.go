package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/devflix-admin/internal/adapters/http/middleware"
)

// serveRequestID runs one request through RequestID and returns the ID the
// handler saw along with the recorder.
func serveRequestID(t *testing.T, inbound string) (string, *httptest.ResponseRecorder) {
	t.Helper()

	var got string
	handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = middleware.RequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", http.NoBody)
	if inbound != "" {
		req.Header.Set("X-Request-ID", inbound)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return got, rec
}

func TestRequestID_GeneratesUUIDWhenMissing(t *testing.T) {
	t.Parallel()

	got, rec := serveRequestID(t, "")

	parsed, err := uuid.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
	assert.Equal(t, got, rec.Header().Get("X-Request-ID"))
}

func TestRequestID_InboundHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		inbound string
		kept    bool
	}{
		{name: "opaque token", inbound: "edge-7f3a9c", kept: true},
		{name: "uuid", inbound: "0b6f1d0e-44a5-4f34-9d7c-2d1c7c8a5e10", kept: true},
		{name: "at length limit", inbound: strings.Repeat("a", 128), kept: true},
		{name: "too long", inbound: strings.Repeat("a", 129), kept: false},
		{name: "contains space", inbound: "abc def", kept: false},
		{name: "non ascii", inbound: "idé", kept: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, rec := serveRequestID(t, tt.inbound)

			assert.Equal(t, got, rec.Header().Get("X-Request-ID"))
			if tt.kept {
				assert.Equal(t, tt.inbound, got)
				return
			}
			assert.NotEqual(t, tt.inbound, got)
			_, err := uuid.Parse(got)
			assert.NoError(t, err, "replacement should be a UUID")
		})
	}
}

func TestRequestID_UniqueAcrossRequests(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{}, 50)
	for range 50 {
		id, _ := serveRequestID(t, "")
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, 50)
}

func TestRequestIDFromContext(t *testing.T) {
	t.Parallel()

	assert.Empty(t, middleware.RequestIDFromContext(context.Background()))

	ctx := middleware.WithRequestID(context.Background(), "stored-id")
	assert.Equal(t, "stored-id", middleware.RequestIDFromContext(ctx))
}
