package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter_DefaultsToOK(t *testing.T) {
	t.Parallel()

	rw := newResponseWriter(httptest.NewRecorder())

	assert.Equal(t, http.StatusOK, rw.statusCode)
	assert.False(t, rw.headerWritten)
}

func TestResponseWriter_FirstWriteHeaderWins(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	rw.WriteHeader(http.StatusCreated)
	rw.WriteHeader(http.StatusConflict)

	assert.Equal(t, http.StatusCreated, rw.statusCode)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, rw.headerWritten)
}

func TestResponseWriter_CountsBytesAcrossWrites(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	n, err := rw.Write([]byte(`{"id":`))
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	_, err = rw.Write([]byte(`"x"}`))
	require.NoError(t, err)

	assert.Equal(t, int64(10), rw.written)
	assert.True(t, rw.headerWritten, "a write implies headers were sent")
	assert.Equal(t, http.StatusOK, rw.statusCode)
	assert.Equal(t, `{"id":"x"}`, rec.Body.String())
}

func TestResponseWriter_ResponseControllerReachesWrapped(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	assert.Same(t, rec, rw.Unwrap())
	require.NoError(t, http.NewResponseController(rw).Flush())
	assert.True(t, rec.Flushed)
}
