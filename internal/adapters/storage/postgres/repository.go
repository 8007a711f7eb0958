package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	appctx "github.com/jsamuelsen11/devflix-admin/internal/app/context"
	"github.com/jsamuelsen11/devflix-admin/internal/domain"
	"github.com/jsamuelsen11/devflix-admin/internal/domain/category"
	"github.com/jsamuelsen11/devflix-admin/internal/platform/breaker"
	"github.com/jsamuelsen11/devflix-admin/internal/ports"
)

var _ ports.CategoryRepository = (*Repository)(nil)

const pgUniqueViolation = "23505"

const categoryColumns = `id, name, description, is_active, created_at`

// Repository implements ports.CategoryRepository over PostgreSQL.
type Repository struct {
	pool    *pgxpool.Pool
	breaker *breaker.Breaker
}

// NewRepository creates a Repository. Reads outside a transaction go
// through b.
func NewRepository(pool *pgxpool.Pool, b *breaker.Breaker) *Repository {
	return &Repository{pool: pool, breaker: b}
}

func cacheKey(id uuid.UUID) string {
	return "category:" + id.String()
}

// scanCategory scans a row into a Category.
func scanCategory(row pgx.Row) (*category.Category, error) {
	var (
		id          uuid.UUID
		name        string
		description string
		isActive    bool
		createdAt   time.Time
	)
	if err := row.Scan(&id, &name, &description, &isActive, &createdAt); err != nil {
		return nil, err
	}
	return category.Restore(id, name, description, isActive, createdAt.UTC())
}

// Insert stages an INSERT for c. The statement runs when the unit of work
// commits.
func (r *Repository) Insert(ctx context.Context, c *category.Category) error {
	rc, err := appctx.Require(ctx)
	if err != nil {
		return fmt.Errorf("insert category %s: %w", c.ID(), err)
	}
	action := &insertAction{
		pool:        r.pool,
		id:          c.ID(),
		name:        c.Name(),
		description: c.Description(),
		isActive:    c.IsActive(),
		createdAt:   c.CreatedAt(),
	}
	if err := rc.Stage(cacheKey(c.ID()), c, action); err != nil {
		return fmt.Errorf("insert category %s: %w", c.ID(), err)
	}
	return nil
}

// Update stages an UPDATE of the mutable columns of c.
func (r *Repository) Update(ctx context.Context, c *category.Category) error {
	rc, err := appctx.Require(ctx)
	if err != nil {
		return fmt.Errorf("update category %s: %w", c.ID(), err)
	}
	action := &updateAction{
		pool:        r.pool,
		id:          c.ID(),
		name:        c.Name(),
		description: c.Description(),
		isActive:    c.IsActive(),
	}
	if err := rc.Stage(cacheKey(c.ID()), c, action); err != nil {
		return fmt.Errorf("update category %s: %w", c.ID(), err)
	}
	return nil
}

// Get loads a category by ID, returning writes staged earlier in the same
// request without touching the database.
func (r *Repository) Get(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	rc, ok := appctx.FromContext(ctx)
	if !ok {
		return r.load(ctx, id)
	}
	return appctx.GetOrFetch(rc, cacheKey(id), func(fetchCtx context.Context) (*category.Category, error) {
		return r.load(fetchCtx, id)
	})
}

func (r *Repository) load(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	var c *category.Category
	err := r.breaker.Execute(ctx, "get", func(ctx context.Context) error {
		row := r.pool.QueryRow(ctx,
			`SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id)
		var err error
		c, err = scanCategory(row)
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("category %s: %w", id, domain.ErrNotFound)
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get category %s: %w", id, err)
	}
	return c, nil
}

// executor returns the transaction opened by UnitOfWork.Commit, or pool
// when the action runs outside one.
func executor(ctx context.Context, pool *pgxpool.Pool) querier {
	if tx, ok := txFromContext(ctx); ok {
		return tx
	}
	return pool
}

// mapWriteError turns constraint violations into domain errors.
func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("%w: %s", domain.ErrConflict, pgErr.ConstraintName)
	}
	return err
}

type insertAction struct {
	pool        *pgxpool.Pool
	id          uuid.UUID
	name        string
	description string
	isActive    bool
	createdAt   time.Time
}

func (a *insertAction) Execute(ctx context.Context) error {
	_, err := executor(ctx, a.pool).Exec(ctx,
		`INSERT INTO categories (`+categoryColumns+`) VALUES ($1, $2, $3, $4, $5)`,
		a.id, a.name, a.description, a.isActive, a.createdAt,
	)
	return mapWriteError(err)
}

// Rollback is left to the surrounding transaction.
func (a *insertAction) Rollback(_ context.Context) error { return nil }

func (a *insertAction) Description() string {
	return "insert category " + a.id.String()
}

type updateAction struct {
	pool        *pgxpool.Pool
	id          uuid.UUID
	name        string
	description string
	isActive    bool
}

func (a *updateAction) Execute(ctx context.Context) error {
	tag, err := executor(ctx, a.pool).Exec(ctx,
		`UPDATE categories SET name = $2, description = $3, is_active = $4 WHERE id = $1`,
		a.id, a.name, a.description, a.isActive,
	)
	if err != nil {
		return mapWriteError(err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("category %s: %w", a.id, domain.ErrNotFound)
	}
	return nil
}

// Rollback is left to the surrounding transaction.
func (a *updateAction) Rollback(_ context.Context) error { return nil }

func (a *updateAction) Description() string {
	return "update category " + a.id.String()
}
