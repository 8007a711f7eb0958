// Package category holds the Category aggregate of the admin catalog.
package category

import (
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/devflix-admin/internal/domain/validator"
)

// Field limits enforced by Validate.
const (
	NameMinLength        = 3
	NameMaxLength        = 255
	DescriptionMaxLength = 10_000
)

const (
	fieldName        = "Name"
	fieldDescription = "Description"
)

// Category is a catalog category. Its fields are only reachable through
// accessors so every change goes through a validating mutation.
type Category struct {
	id          uuid.UUID
	name        string
	description *string
	isActive    bool
	createdAt   time.Time
}

// New creates a Category with a fresh ID and creation time and validates it.
// A nil description is rejected; pass a pointer to "" for no description.
func New(name string, description *string, isActive bool, opts ...Option) (*Category, error) {
	s := newSettings(opts)

	c := &Category{
		id:          s.newID(),
		name:        name,
		description: copyString(description),
		isActive:    isActive,
		createdAt:   s.now().UTC(),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Restore rebuilds a persisted Category. Storage adapters use it when
// reading rows back; the result is validated like a new Category.
func Restore(id uuid.UUID, name, description string, isActive bool, createdAt time.Time) (*Category, error) {
	c := &Category{
		id:          id,
		name:        name,
		description: &description,
		isActive:    isActive,
		createdAt:   createdAt,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// ID returns the category identifier.
func (c *Category) ID() uuid.UUID { return c.id }

// Name returns the category name.
func (c *Category) Name() string { return c.name }

// Description returns the category description, "" when none was given.
func (c *Category) Description() string {
	if c.description == nil {
		return ""
	}
	return *c.description
}

// IsActive reports whether the category is active.
func (c *Category) IsActive() bool { return c.isActive }

// CreatedAt returns the creation time in UTC.
func (c *Category) CreatedAt() time.Time { return c.createdAt }

// Activate marks the category active.
func (c *Category) Activate() error {
	return c.mutate(func(next *Category) {
		next.isActive = true
	})
}

// Deactivate marks the category inactive.
func (c *Category) Deactivate() error {
	return c.mutate(func(next *Category) {
		next.isActive = false
	})
}

// Update replaces the name and, when description is non-nil, the
// description. On a validation failure the category is left unchanged.
func (c *Category) Update(name string, description *string) error {
	return c.mutate(func(next *Category) {
		next.name = name
		if description != nil {
			next.description = copyString(description)
		}
	})
}

// Validate checks the category invariants and returns the first violation.
func (c *Category) Validate() error {
	if err := validator.NotNullOrEmptyMessage(&c.name, fieldName, fieldName+" should not be empty or null"); err != nil {
		return err
	}
	if err := validator.MinLength(c.name, NameMinLength, fieldName); err != nil {
		return err
	}
	if err := validator.MaxLength(c.name, NameMaxLength, fieldName); err != nil {
		return err
	}
	if err := validator.NotNull(c.description, fieldDescription); err != nil {
		return err
	}
	return validator.MaxLength(*c.description, DescriptionMaxLength, fieldDescription)
}

// mutate applies fn to a copy and keeps the result only if it validates.
func (c *Category) mutate(fn func(next *Category)) error {
	next := *c
	fn(&next)
	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
