package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/devflix-admin/internal/adapters/http/dto"
)

func TestCreateCategory_RejectsUndecodableBodies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		body         string
		wantLocation string
		wantMessage  string
	}{
		{name: "empty body", body: "", wantLocation: "body", wantMessage: "request body is required"},
		{name: "syntax error", body: "{bad", wantLocation: "body", wantMessage: "malformed JSON at byte"},
		{name: "truncated", body: `{"name":"Docs"`, wantLocation: "body", wantMessage: "malformed JSON: unexpected end of input"},
		{name: "wrong type for flag", body: `{"name":"Docs","is_active":"yes"}`, wantLocation: "body.is_active", wantMessage: "must be a boolean"},
		{name: "wrong type for name", body: `{"name":42}`, wantLocation: "body.name", wantMessage: "must be a string"},
		{name: "two objects", body: `{"name":"Docs"} {"name":"Kids"}`, wantLocation: "body", wantMessage: "request body must hold a single JSON object"},
		{name: "stray closing brace", body: `{"name":"Drama"}}`, wantLocation: "body", wantMessage: "request body must hold a single JSON object"},
		{name: "stray closing bracket", body: `{"name":"Drama"}]`, wantLocation: "body", wantMessage: "request body must hold a single JSON object"},
		{name: "trailing garbage", body: `{"name":"Drama"} x`, wantLocation: "body", wantMessage: "request body must hold a single JSON object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, _, _ := newCategoryHandler(t)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/categories", strings.NewReader(tt.body))
			h.CreateCategory(rec, req)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			resp := decodeJSON[dto.ErrorResponse](t, rec)
			require.Len(t, resp.Errors, 1)
			assert.Equal(t, tt.wantLocation, resp.Errors[0].Location)
			assert.Contains(t, resp.Errors[0].Message, tt.wantMessage)
		})
	}
}

func TestCreateCategory_TrailingWhitespaceAccepted(t *testing.T) {
	t.Parallel()
	h, create, _ := newCategoryHandler(t)
	create.EXPECT().Handle(mock.Anything, mock.Anything).Return(validCategory(), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/categories",
		strings.NewReader("{\"name\":\"Drama\",\"is_active\":true}\n\t "))
	h.CreateCategory(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateCategory_OversizedBody(t *testing.T) {
	t.Parallel()
	h, _, _ := newCategoryHandler(t)

	body := `{"name":"` + strings.Repeat("x", 70<<10) + `"}`
	rec := httptest.NewRecorder()
	h.CreateCategory(rec, httptest.NewRequest(http.MethodPost, "/api/v1/categories", strings.NewReader(body)))

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	assert.Contains(t, resp.Detail, "exceeds 65536 bytes")
}
