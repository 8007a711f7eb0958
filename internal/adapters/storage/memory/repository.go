package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	appctx "github.com/jsamuelsen11/devflix-admin/internal/app/context"
	"github.com/jsamuelsen11/devflix-admin/internal/domain"
	"github.com/jsamuelsen11/devflix-admin/internal/domain/category"
	"github.com/jsamuelsen11/devflix-admin/internal/ports"
)

var _ ports.CategoryRepository = (*Repository)(nil)

// Repository implements ports.CategoryRepository over a Store. Insert and
// Update only stage actions on the request's unit of work; the Store is
// written when the unit of work commits.
type Repository struct {
	store *Store
}

// NewRepository creates a Repository backed by store.
func NewRepository(store *Store) *Repository {
	return &Repository{store: store}
}

func cacheKey(id uuid.UUID) string {
	return "category:" + id.String()
}

// Insert stages c for insertion.
func (r *Repository) Insert(ctx context.Context, c *category.Category) error {
	rc, err := appctx.Require(ctx)
	if err != nil {
		return fmt.Errorf("insert category %s: %w", c.ID(), err)
	}
	action := &insertAction{store: r.store, rec: toRecord(c)}
	if err := rc.Stage(cacheKey(c.ID()), c, action); err != nil {
		return fmt.Errorf("insert category %s: %w", c.ID(), err)
	}
	return nil
}

// Update stages the new state of c.
func (r *Repository) Update(ctx context.Context, c *category.Category) error {
	rc, err := appctx.Require(ctx)
	if err != nil {
		return fmt.Errorf("update category %s: %w", c.ID(), err)
	}
	action := &updateAction{store: r.store, rec: toRecord(c)}
	if err := rc.Stage(cacheKey(c.ID()), c, action); err != nil {
		return fmt.Errorf("update category %s: %w", c.ID(), err)
	}
	return nil
}

// Get returns the category with the given ID, including writes staged
// earlier in the same request. Without a request context it reads the Store
// directly.
func (r *Repository) Get(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	rc, ok := appctx.FromContext(ctx)
	if !ok {
		return r.load(id)
	}
	return appctx.GetOrFetch(rc, cacheKey(id), func(_ context.Context) (*category.Category, error) {
		return r.load(id)
	})
}

func (r *Repository) load(id uuid.UUID) (*category.Category, error) {
	rec, ok := r.store.get(id)
	if !ok {
		return nil, fmt.Errorf("category %s: %w", id, domain.ErrNotFound)
	}
	c, err := rec.toCategory()
	if err != nil {
		return nil, fmt.Errorf("restoring category %s: %w", id, err)
	}
	return c, nil
}

type insertAction struct {
	store *Store
	rec   record
}

func (a *insertAction) Execute(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return a.store.insert(a.rec)
}

func (a *insertAction) Rollback(_ context.Context) error {
	a.store.delete(a.rec.id)
	return nil
}

func (a *insertAction) Description() string {
	return "insert category " + a.rec.id.String()
}

type updateAction struct {
	store *Store
	rec   record
	prev  record
}

func (a *updateAction) Execute(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	prev, err := a.store.replace(a.rec)
	if err != nil {
		return err
	}
	a.prev = prev
	return nil
}

func (a *updateAction) Rollback(_ context.Context) error {
	a.store.put(a.prev)
	return nil
}

func (a *updateAction) Description() string {
	return "update category " + a.rec.id.String()
}
