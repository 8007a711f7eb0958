package health_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/devflix-admin/internal/platform/health"
	"github.com/jsamuelsen11/devflix-admin/mocks"
)

func TestCheckAll_Empty(t *testing.T) {
	t.Parallel()

	results := health.New().CheckAll(context.Background())

	if results == nil {
		t.Fatal("expected non-nil map, got nil")
	}
	if len(results) != 0 {
		t.Errorf("expected empty map, got %d entries", len(results))
	}
}

func TestCheckAll_AllHealthy(t *testing.T) {
	t.Parallel()

	pg := mocks.NewMockHealthChecker(t)
	pg.EXPECT().Name().Return("postgres")
	pg.EXPECT().HealthCheck(mock.Anything).Return(nil)

	cache := mocks.NewMockHealthChecker(t)
	cache.EXPECT().Name().Return("redis")
	cache.EXPECT().HealthCheck(mock.Anything).Return(nil)

	r := health.New()
	r.Register(pg)
	r.Register(cache)

	results := r.CheckAll(context.Background())

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for name, err := range results {
		if err != nil {
			t.Errorf("%s check = %v, want nil", name, err)
		}
	}
}

func TestCheckAll_MixedHealth(t *testing.T) {
	t.Parallel()

	healthy := mocks.NewMockHealthChecker(t)
	healthy.EXPECT().Name().Return("postgres")
	healthy.EXPECT().HealthCheck(mock.Anything).Return(nil)

	downErr := errors.New("dial tcp 127.0.0.1:6379: connection refused")
	unhealthy := mocks.NewMockHealthChecker(t)
	unhealthy.EXPECT().Name().Return("redis")
	unhealthy.EXPECT().HealthCheck(mock.Anything).Return(downErr)

	r := health.New()
	r.Register(healthy)
	r.Register(unhealthy)

	results := r.CheckAll(context.Background())

	if results["postgres"] != nil {
		t.Errorf("postgres check = %v, want nil", results["postgres"])
	}
	if !errors.Is(results["redis"], downErr) {
		t.Errorf("redis check = %v, want %v", results["redis"], downErr)
	}
}

func TestCheckAll_ContextPropagated(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	checker := mocks.NewMockHealthChecker(t)
	checker.EXPECT().Name().Return("postgres")
	checker.EXPECT().HealthCheck(mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() != nil
	})).Return(context.Canceled)

	r := health.New()
	r.Register(checker)

	results := r.CheckAll(ctx)

	if !errors.Is(results["postgres"], context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", results["postgres"])
	}
}

func TestCheckAll_ProbesRunConcurrently(t *testing.T) {
	t.Parallel()

	// Each probe waits for the other to start; run sequentially they would
	// both time out.
	var started sync.WaitGroup
	started.Add(2)
	probe := func(ctx context.Context) error {
		started.Done()
		done := make(chan struct{})
		go func() {
			started.Wait()
			close(done)
		}()
		select {
		case <-done:
			return nil
		case <-time.After(2 * time.Second):
			return errors.New("peer probe never started")
		}
	}

	a := mocks.NewMockHealthChecker(t)
	a.EXPECT().Name().Return("postgres")
	a.EXPECT().HealthCheck(mock.Anything).RunAndReturn(probe)

	b := mocks.NewMockHealthChecker(t)
	b.EXPECT().Name().Return("redis")
	b.EXPECT().HealthCheck(mock.Anything).RunAndReturn(probe)

	r := health.New()
	r.Register(a)
	r.Register(b)

	for name, err := range r.CheckAll(context.Background()) {
		if err != nil {
			t.Errorf("%s check = %v, want nil", name, err)
		}
	}
}

func TestCheckAll_ConcurrentSafety(t *testing.T) {
	t.Parallel()

	r := health.New()

	var wg sync.WaitGroup
	const goroutines = 50

	// Half the goroutines register checkers, half call CheckAll.
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		if i%2 == 0 {
			go func() {
				defer wg.Done()
				c := mocks.NewMockHealthChecker(t)
				c.EXPECT().Name().Return("checker").Maybe()
				c.EXPECT().HealthCheck(mock.Anything).Return(nil).Maybe()
				r.Register(c)
			}()
		} else {
			go func() {
				defer wg.Done()
				r.CheckAll(context.Background())
			}()
		}
	}

	wg.Wait()
}
