package memory_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/devflix-admin/internal/adapters/storage/memory"
	appctx "github.com/jsamuelsen11/devflix-admin/internal/app/context"
	"github.com/jsamuelsen11/devflix-admin/internal/domain"
	"github.com/jsamuelsen11/devflix-admin/internal/domain/category"
)

func strPtr(s string) *string { return &s }

func newCategory(t *testing.T, name string) *category.Category {
	t.Helper()
	c, err := category.New(name, strPtr("films about "+name), true)
	require.NoError(t, err)
	return c
}

func requestCtx() context.Context {
	ctx := context.Background()
	return appctx.WithRequestContext(ctx, appctx.New(ctx))
}

func TestInsert_NotVisibleUntilCommit(t *testing.T) {
	t.Parallel()

	store := memory.NewStore()
	repo := memory.NewRepository(store)
	ctx := requestCtx()
	c := newCategory(t, "Documentary")

	require.NoError(t, repo.Insert(ctx, c))
	assert.Equal(t, 0, store.Len(), "insert must be staged, not applied")

	require.NoError(t, memory.UnitOfWork{}.Commit(ctx))
	assert.Equal(t, 1, store.Len())

	got, err := repo.Get(context.Background(), c.ID())
	require.NoError(t, err)
	assert.Equal(t, c.Name(), got.Name())
	assert.Equal(t, c.Description(), got.Description())
	assert.Equal(t, c.IsActive(), got.IsActive())
	assert.True(t, c.CreatedAt().Equal(got.CreatedAt()))
}

func TestGet_ReadsOwnStagedWrites(t *testing.T) {
	t.Parallel()

	repo := memory.NewRepository(memory.NewStore())
	ctx := requestCtx()
	c := newCategory(t, "Horror")

	require.NoError(t, repo.Insert(ctx, c))

	got, err := repo.Get(ctx, c.ID())
	require.NoError(t, err)
	assert.Same(t, c, got)
}

func TestGet_NotFound(t *testing.T) {
	t.Parallel()

	repo := memory.NewRepository(memory.NewStore())

	_, err := repo.Get(requestCtx(), uuid.New())
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.Get(context.Background(), uuid.New())
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGet_ReturnsCopy(t *testing.T) {
	t.Parallel()

	repo := memory.NewRepository(memory.NewStore())
	ctx := requestCtx()
	c := newCategory(t, "Comedy")
	require.NoError(t, repo.Insert(ctx, c))
	require.NoError(t, memory.UnitOfWork{}.Commit(ctx))

	got, err := repo.Get(context.Background(), c.ID())
	require.NoError(t, err)
	require.NoError(t, got.Deactivate())

	again, err := repo.Get(context.Background(), c.ID())
	require.NoError(t, err)
	assert.True(t, again.IsActive(), "mutating a loaded category must not change the store")
}

func TestWritesRequireRequestContext(t *testing.T) {
	t.Parallel()

	repo := memory.NewRepository(memory.NewStore())
	c := newCategory(t, "Drama")

	require.ErrorIs(t, repo.Insert(context.Background(), c), appctx.ErrNoRequestContext)
	require.ErrorIs(t, repo.Update(context.Background(), c), appctx.ErrNoRequestContext)
	require.ErrorIs(t, memory.UnitOfWork{}.Commit(context.Background()), appctx.ErrNoRequestContext)
}

func TestUpdate_AppliedOnCommit(t *testing.T) {
	t.Parallel()

	store := memory.NewStore()
	repo := memory.NewRepository(store)
	c := newCategory(t, "Action")

	ctx := requestCtx()
	require.NoError(t, repo.Insert(ctx, c))
	require.NoError(t, memory.UnitOfWork{}.Commit(ctx))

	ctx = requestCtx()
	loaded, err := repo.Get(ctx, c.ID())
	require.NoError(t, err)
	require.NoError(t, loaded.Update("Action & Adventure", nil))
	require.NoError(t, repo.Update(ctx, loaded))
	require.NoError(t, memory.UnitOfWork{}.Commit(ctx))

	got, err := repo.Get(context.Background(), c.ID())
	require.NoError(t, err)
	assert.Equal(t, "Action & Adventure", got.Name())
	assert.Equal(t, c.Description(), got.Description())
}

func TestUpdate_MissingCategoryFailsCommit(t *testing.T) {
	t.Parallel()

	store := memory.NewStore()
	repo := memory.NewRepository(store)
	ctx := requestCtx()

	require.NoError(t, repo.Update(ctx, newCategory(t, "Western")))

	err := memory.UnitOfWork{}.Commit(ctx)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 0, store.Len())
}

func TestCommit_DuplicateRollsBackEarlierInserts(t *testing.T) {
	t.Parallel()

	store := memory.NewStore()
	repo := memory.NewRepository(store)
	existing := newCategory(t, "Thriller")

	ctx := requestCtx()
	require.NoError(t, repo.Insert(ctx, existing))
	require.NoError(t, memory.UnitOfWork{}.Commit(ctx))

	ctx = requestCtx()
	fresh := newCategory(t, "Romance")
	require.NoError(t, repo.Insert(ctx, fresh))
	require.NoError(t, repo.Insert(ctx, existing))

	err := memory.UnitOfWork{}.Commit(ctx)
	require.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, 1, store.Len())

	_, err = repo.Get(context.Background(), fresh.ID())
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCommit_CanceledContextWritesNothing(t *testing.T) {
	t.Parallel()

	store := memory.NewStore()
	repo := memory.NewRepository(store)

	base := context.Background()
	ctx, cancel := context.WithCancel(appctx.WithRequestContext(base, appctx.New(base)))
	c := newCategory(t, "Western")
	require.NoError(t, repo.Insert(ctx, c))
	cancel()

	err := memory.UnitOfWork{}.Commit(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, store.Len())

	_, err = repo.Get(base, c.ID())
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCommit_CanceledMidwayRollsBackAppliedWrites(t *testing.T) {
	t.Parallel()

	store := memory.NewStore()
	repo := memory.NewRepository(store)
	existing := newCategory(t, "Animation")

	ctx := requestCtx()
	require.NoError(t, repo.Insert(ctx, existing))
	require.NoError(t, memory.UnitOfWork{}.Commit(ctx))

	base := context.Background()
	rc := appctx.New(base)
	ctx, cancel := context.WithCancel(appctx.WithRequestContext(base, rc))
	defer cancel()

	renamed, err := repo.Get(ctx, existing.ID())
	require.NoError(t, err)
	require.NoError(t, renamed.Update("Animated Features", strPtr(renamed.Description())))
	require.NoError(t, repo.Update(ctx, renamed))
	require.NoError(t, rc.AddAction(cancelAction{cancel: cancel}))
	fresh := newCategory(t, "Anime")
	require.NoError(t, repo.Insert(ctx, fresh))

	err = memory.UnitOfWork{}.Commit(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, store.Len())

	got, err := repo.Get(base, existing.ID())
	require.NoError(t, err)
	assert.Equal(t, "Animation", got.Name())
}

// cancelAction cancels the commit's context when it executes.
type cancelAction struct {
	cancel context.CancelFunc
}

func (a cancelAction) Execute(context.Context) error {
	a.cancel()
	return nil
}

func (cancelAction) Rollback(context.Context) error { return nil }

func (cancelAction) Description() string { return "cancel" }

func TestCommit_Twice(t *testing.T) {
	t.Parallel()

	repo := memory.NewRepository(memory.NewStore())
	ctx := requestCtx()
	require.NoError(t, repo.Insert(ctx, newCategory(t, "Sci-Fi")))

	require.NoError(t, memory.UnitOfWork{}.Commit(ctx))
	require.ErrorIs(t, memory.UnitOfWork{}.Commit(ctx), appctx.ErrAlreadyCommitted)
}

func TestStore_HealthCheck(t *testing.T) {
	t.Parallel()

	store := memory.NewStore()

	assert.Equal(t, "memory", store.Name())
	assert.NoError(t, store.HealthCheck(context.Background()))
}
