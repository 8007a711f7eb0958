package http_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/jsamuelsen11/devflix-admin/internal/adapters/http"
	"github.com/jsamuelsen11/devflix-admin/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/devflix-admin/internal/ports"
	"github.com/jsamuelsen11/devflix-admin/mocks"
)

type routerMocks struct {
	create   *mocks.MockCreateCategoryHandler
	svc      *mocks.MockCategoryService
	registry *mocks.MockHealthRegistry
}

func newTestRouter(t *testing.T, middlewares ...func(http.Handler) http.Handler) (http.Handler, routerMocks) {
	t.Helper()
	m := routerMocks{
		create:   mocks.NewMockCreateCategoryHandler(t),
		svc:      mocks.NewMockCategoryService(t),
		registry: mocks.NewMockHealthRegistry(t),
	}

	ch := handlers.NewCategoryHandler(m.create, m.svc)
	hh := handlers.NewHealthHandler(m.registry)

	return adapthttp.NewRouter(ch, hh, middlewares...), m
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	expectedRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health/live"},
		{http.MethodGet, "/health/ready"},
		{http.MethodPost, "/api/v1/categories/"},
		{http.MethodGet, "/api/v1/categories/{id}"},
		{http.MethodPut, "/api/v1/categories/{id}"},
		{http.MethodPost, "/api/v1/categories/{id}/activate"},
		{http.MethodPost, "/api/v1/categories/{id}/deactivate"},
	}

	chiRouter, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, expected := range expectedRoutes {
		key := expected.method + " " + expected.path
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	router, m := newTestRouter(t, testMW)
	m.registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	router.ServeHTTP(rec, req)

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_IntegrationCreateCategory(t *testing.T) {
	t.Parallel()

	router, m := newTestRouter(t)

	id := uuid.New()
	m.create.EXPECT().Handle(mock.Anything, mock.Anything).
		Return(&ports.CategoryResponse{ID: id, Name: "Documentary", IsActive: true}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/categories", bytes.NewBufferString(`{"name":"Documentary"}`))
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
	if got := rec.Header().Get("Location"); got != "/api/v1/categories/"+id.String() {
		t.Errorf("Location = %q", got)
	}
}

func TestRouter_IntegrationActivateUsesPathID(t *testing.T) {
	t.Parallel()

	router, m := newTestRouter(t)

	id := uuid.New()
	m.svc.EXPECT().ActivateCategory(mock.Anything, id).
		Return(&ports.CategoryResponse{ID: id, Name: "Documentary", IsActive: true}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/categories/"+id.String()+"/activate", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/categories/"+uuid.NewString(), nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
