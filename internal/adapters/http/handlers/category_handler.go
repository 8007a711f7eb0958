// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/devflix-admin/internal/adapters/http/dto"
	"github.com/jsamuelsen11/devflix-admin/internal/ports"
)

// categoriesPath is the collection path used to build Location headers.
const categoriesPath = "/api/v1/categories/"

// CategoryHandler handles HTTP requests for the category admin API.
type CategoryHandler struct {
	create ports.CreateCategoryHandler
	svc    ports.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler with the given use case ports.
func NewCategoryHandler(create ports.CreateCategoryHandler, svc ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{create: create, svc: svc}
}

// CreateCategory handles POST /api/v1/categories.
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCategoryRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	created, err := h.create.Handle(r.Context(), req.ToPort())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Location", categoriesPath+created.ID.String())
	writeJSON(w, r, http.StatusCreated, dto.ToCategoryResponse(created))
}

// GetCategory handles GET /api/v1/categories/{id}.
func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	h.byID(w, r, h.svc.GetCategory)
}

// UpdateCategory handles PUT /api/v1/categories/{id}.
func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateCategoryRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateCategory(r.Context(), id, req.ToPort())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToCategoryResponse(updated))
}

// ActivateCategory handles POST /api/v1/categories/{id}/activate.
func (h *CategoryHandler) ActivateCategory(w http.ResponseWriter, r *http.Request) {
	h.byID(w, r, h.svc.ActivateCategory)
}

// DeactivateCategory handles POST /api/v1/categories/{id}/deactivate.
func (h *CategoryHandler) DeactivateCategory(w http.ResponseWriter, r *http.Request) {
	h.byID(w, r, h.svc.DeactivateCategory)
}

// byID runs a use case that takes only the {id} path parameter and writes
// the resulting category with 200.
func (h *CategoryHandler) byID(
	w http.ResponseWriter,
	r *http.Request,
	call func(context.Context, uuid.UUID) (*ports.CategoryResponse, error),
) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	c, err := call(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToCategoryResponse(c))
}
