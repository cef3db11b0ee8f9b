package health_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/project-board/internal/app/state"
	"github.com/jsamuelsen11/project-board/internal/platform/health"
	"github.com/jsamuelsen11/project-board/mocks"
)

func TestCheckAll(t *testing.T) {
	t.Parallel()

	errNotRendered := errors.New("board views not rendered")

	boardAPI := mocks.NewMockHealthChecker(t)
	boardAPI.EXPECT().Name().Return("board-api")
	boardAPI.EXPECT().HealthCheck(mock.Anything).Return(nil)

	r := health.New()
	if got := r.CheckAll(t.Context()); got == nil || len(got) != 0 {
		t.Fatalf("CheckAll() on empty registry = %v, want empty map", got)
	}

	r.Register(boardAPI)
	r.Register(state.New())
	r.Register(health.NewCheck("board-views", func(context.Context) error { return errNotRendered }))

	got := r.CheckAll(t.Context())
	want := map[string]error{"board-api": nil, "board-state": nil, "board-views": errNotRendered}
	if len(got) != len(want) {
		t.Fatalf("CheckAll() = %v, want %v", got, want)
	}
	for name, err := range want {
		if res, ok := got[name]; !ok || !errors.Is(res, err) {
			t.Errorf("CheckAll()[%q] = %v, want %v", name, res, err)
		}
	}
}

func TestCheckAll_SameNameLastWins(t *testing.T) {
	t.Parallel()

	r := health.New()
	r.Register(health.NewCheck("board-views", func(context.Context) error { return errors.New("stale") }))
	r.Register(health.NewCheck("board-views", func(context.Context) error { return nil }))

	if err := r.CheckAll(t.Context())["board-views"]; err != nil {
		t.Errorf("board-views = %v, want the later check's nil", err)
	}
}

func TestCheckAll_RunsChecksConcurrently(t *testing.T) {
	t.Parallel()

	// Each check waits for the other to start; run one after the other they
	// would both hit the deadline.
	var started sync.WaitGroup
	started.Add(2)
	rendezvous := func(ctx context.Context) error {
		started.Done()
		done := make(chan struct{})
		go func() { started.Wait(); close(done) }()
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	r := health.New()
	r.Register(health.NewCheck("board-state", rendezvous))
	r.Register(health.NewCheck("board-views", rendezvous))

	ctx, cancel := context.WithTimeout(t.Context(), time.Second)
	defer cancel()
	for name, err := range r.CheckAll(ctx) {
		if err != nil {
			t.Errorf("%s = %v, want nil", name, err)
		}
	}
}

func TestCheckAll_PassesContext(t *testing.T) {
	t.Parallel()

	type key struct{}
	ctx := context.WithValue(t.Context(), key{}, "readiness")

	checker := mocks.NewMockHealthChecker(t)
	checker.EXPECT().Name().Return("board-state")
	checker.EXPECT().HealthCheck(mock.MatchedBy(func(got context.Context) bool {
		return got.Value(key{}) == "readiness"
	})).Return(nil)

	r := health.New()
	r.Register(checker)
	r.CheckAll(ctx)
}

func TestRegister_Concurrent(t *testing.T) {
	t.Parallel()

	r := health.New()
	var wg sync.WaitGroup
	for range 20 {
		wg.Go(func() {
			r.Register(health.NewCheck("board-views", func(context.Context) error { return nil }))
			r.CheckAll(context.Background())
		})
	}
	wg.Wait()
}
