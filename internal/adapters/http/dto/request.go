package dto

import "github.com/jsamuelsen11/devflix-admin/internal/ports"

// CreateCategoryRequest represents the JSON body for creating a category.
// Omitted description and is_active fall back to "" and true.
type CreateCategoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// ToPort converts the body into the use case request. Field rules are
// enforced by the Category aggregate, not here.
func (r *CreateCategoryRequest) ToPort() ports.CreateCategoryRequest {
	return ports.CreateCategoryRequest{
		Name:        r.Name,
		Description: r.Description,
		IsActive:    r.IsActive,
	}
}

// UpdateCategoryRequest represents the JSON body for updating a category.
// A missing description keeps the current one.
type UpdateCategoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// ToPort converts the body into the use case request.
func (r *UpdateCategoryRequest) ToPort() ports.UpdateCategoryRequest {
	return ports.UpdateCategoryRequest{
		Name:        r.Name,
		Description: r.Description,
	}
}
