package state_test

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/jsamuelsen11/project-board/internal/app/state"
	"github.com/jsamuelsen11/project-board/internal/domain/project"
)

// sequentialIDs returns a deterministic id generator: p-1, p-2, ...
func sequentialIDs() state.Option {
	var n int
	return state.WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("p-%d", n)
	})
}

// recorder collects every snapshot a listener receives.
type recorder struct {
	snapshots [][]project.Project
}

func (r *recorder) listen(projects []project.Project) {
	r.snapshots = append(r.snapshots, projects)
}

func (r *recorder) last(t *testing.T) []project.Project {
	t.Helper()
	if len(r.snapshots) == 0 {
		t.Fatal("listener was never notified")
	}
	return r.snapshots[len(r.snapshots)-1]
}

func TestAddProject_NotifiesWithActiveProject(t *testing.T) {
	t.Parallel()

	ps := state.New()
	rec := &recorder{}
	ps.AddListener(rec.listen)

	created := ps.AddProject("A", "desc with 5+ chars", 2)

	snap := rec.last(t)
	if len(snap) != 1 {
		t.Fatalf("snapshot has %d projects, want 1", len(snap))
	}
	if snap[0].Status != project.StatusActive {
		t.Errorf("Status = %q, want %q", snap[0].Status, project.StatusActive)
	}
	if snap[0].ID == "" {
		t.Error("ID is empty, want generated id")
	}
	if snap[0] != created {
		t.Errorf("snapshot project = %+v, want returned project %+v", snap[0], created)
	}
}

func TestAddProject_GeneratesDistinctIDs(t *testing.T) {
	t.Parallel()

	ps := state.New()
	seen := make(map[string]bool)
	for i := range 100 {
		p := ps.AddProject(fmt.Sprintf("P%d", i), "a description", 2)
		if seen[p.ID] {
			t.Fatalf("duplicate id %q", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestAddProject_PreservesCreationOrder(t *testing.T) {
	t.Parallel()

	ps := state.New(sequentialIDs())
	ps.AddProject("first", "description", 2)
	ps.AddProject("second", "description", 3)

	got := ps.Projects()
	if len(got) != 2 || got[0].ID != "p-1" || got[1].ID != "p-2" {
		t.Errorf("Projects() = %+v, want ids [p-1 p-2]", got)
	}
}

func TestUpdateProjectStatus_MovesBetweenPartitions(t *testing.T) {
	t.Parallel()

	ps := state.New(sequentialIDs())
	rec := &recorder{}
	ps.AddListener(rec.listen)

	p := ps.AddProject("A", "desc with 5+ chars", 2)

	if !ps.UpdateProjectStatus(p.ID, project.StatusFinished) {
		t.Fatal("UpdateProjectStatus() = false, want true")
	}

	snap := rec.last(t)
	if got := project.Filter(snap, project.StatusFinished); len(got) != 1 || got[0].ID != p.ID {
		t.Errorf("finished partition = %+v, want [%s]", got, p.ID)
	}
	if got := project.Filter(snap, project.StatusActive); len(got) != 0 {
		t.Errorf("active partition = %+v, want empty", got)
	}
}

func TestUpdateProjectStatus_SameStatusIsIdempotent(t *testing.T) {
	t.Parallel()

	ps := state.New(sequentialIDs())
	rec := &recorder{}
	ps.AddListener(rec.listen)

	p := ps.AddProject("A", "desc with 5+ chars", 2)
	ps.UpdateProjectStatus(p.ID, project.StatusFinished)
	notified := len(rec.snapshots)

	if ps.UpdateProjectStatus(p.ID, project.StatusFinished) {
		t.Error("second UpdateProjectStatus() = true, want false")
	}
	if len(rec.snapshots) != notified {
		t.Errorf("listener notified %d times, want %d", len(rec.snapshots), notified)
	}
}

func TestUpdateProjectStatus_UnknownIDIsNoOp(t *testing.T) {
	t.Parallel()

	ps := state.New(sequentialIDs())
	rec := &recorder{}
	ps.AddProject("A", "desc with 5+ chars", 2)
	ps.AddListener(rec.listen)

	before := ps.Projects()
	if ps.UpdateProjectStatus("nonexistent-id", project.StatusFinished) {
		t.Error("UpdateProjectStatus(unknown) = true, want false")
	}

	if !slices.Equal(ps.Projects(), before) {
		t.Errorf("Projects() changed: got %+v, want %+v", ps.Projects(), before)
	}
	if len(rec.snapshots) != 0 {
		t.Errorf("listener notified %d times, want 0", len(rec.snapshots))
	}
}

func TestAddListener_NoReplay(t *testing.T) {
	t.Parallel()

	ps := state.New(sequentialIDs())
	ps.AddProject("A", "description", 2)
	ps.AddProject("B", "description", 2)

	rec := &recorder{}
	ps.AddListener(rec.listen)
	if len(rec.snapshots) != 0 {
		t.Fatalf("late listener received %d snapshots on registration, want 0", len(rec.snapshots))
	}

	ps.AddProject("C", "description", 2)
	if len(rec.snapshots) != 1 || len(rec.snapshots[0]) != 3 {
		t.Errorf("snapshots = %+v, want one snapshot of 3 projects", rec.snapshots)
	}
}

func TestListeners_NotifiedInRegistrationOrder(t *testing.T) {
	t.Parallel()

	ps := state.New()
	var order []string
	for _, name := range []string{"first", "second", "third"} {
		ps.AddListener(func(_ []project.Project) {
			order = append(order, name)
		})
	}

	ps.AddProject("A", "description", 2)

	if !slices.Equal(order, []string{"first", "second", "third"}) {
		t.Errorf("notification order = %v, want [first second third]", order)
	}
}

func TestSnapshots_AreDefensiveCopies(t *testing.T) {
	t.Parallel()

	ps := state.New(sequentialIDs())
	var other []project.Project
	ps.AddListener(func(projects []project.Project) {
		projects[0].Title = "mutated by listener"
		projects[0].Status = project.StatusFinished
	})
	ps.AddListener(func(projects []project.Project) {
		other = projects
	})

	ps.AddProject("A", "description", 2)

	if other[0].Title != "A" {
		t.Errorf("second listener saw Title %q, want %q", other[0].Title, "A")
	}
	got, ok := ps.Project("p-1")
	if !ok {
		t.Fatal("Project(p-1) not found")
	}
	if got.Title != "A" || got.Status != project.StatusActive {
		t.Errorf("container project = %+v, want untouched", got)
	}

	snap := ps.Projects()
	snap[0].Title = "mutated by reader"
	if got, _ := ps.Project("p-1"); got.Title != "A" {
		t.Errorf("Projects() copy leaked into container: Title %q", got.Title)
	}
}

func TestProject_Lookup(t *testing.T) {
	t.Parallel()

	ps := state.New(sequentialIDs())
	ps.AddProject("A", "description", 2)

	if _, ok := ps.Project("missing"); ok {
		t.Error("Project(missing) ok = true, want false")
	}
	if got, ok := ps.Project("p-1"); !ok || got.Title != "A" {
		t.Errorf("Project(p-1) = %+v, %v; want A, true", got, ok)
	}
	if ps.Len() != 1 {
		t.Errorf("Len() = %d, want 1", ps.Len())
	}
}

func TestConcurrentMutations_AllRecorded(t *testing.T) {
	t.Parallel()

	ps := state.New()
	var mu sync.Mutex
	var lastLen int
	ps.AddListener(func(projects []project.Project) {
		mu.Lock()
		defer mu.Unlock()
		if len(projects) < lastLen {
			t.Errorf("snapshot shrank from %d to %d", lastLen, len(projects))
		}
		lastLen = len(projects)
	})

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p := ps.AddProject(fmt.Sprintf("P%d", i), "description", 2)
			ps.UpdateProjectStatus(p.ID, project.StatusFinished)
		}()
	}
	wg.Wait()

	if ps.Len() != 50 {
		t.Errorf("Len() = %d, want 50", ps.Len())
	}
	if got := project.Filter(ps.Projects(), project.StatusFinished); len(got) != 50 {
		t.Errorf("finished = %d, want 50", len(got))
	}
}

func TestHealthCheck(t *testing.T) {
	t.Parallel()

	t.Run("healthy when lock is free", func(t *testing.T) {
		t.Parallel()
		s := state.New()
		if err := s.HealthCheck(context.Background()); err != nil {
			t.Errorf("HealthCheck() error = %v, want nil", err)
		}
		if s.Name() != "board-state" {
			t.Errorf("Name() = %q, want %q", s.Name(), "board-state")
		}
	})

	t.Run("unhealthy while a listener blocks", func(t *testing.T) {
		t.Parallel()
		s := state.New()
		release := make(chan struct{})
		entered := make(chan struct{})
		s.AddListener(func([]project.Project) {
			close(entered)
			<-release
		})

		go s.AddProject("Launch", "Ship the board", 2)
		<-entered
		defer close(release)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		err := s.HealthCheck(ctx)
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("HealthCheck() error = %v, want DeadlineExceeded", err)
		}
	})
	t.Run("healthy once the listener returns", func(t *testing.T) {
		t.Parallel()
		s := state.New()
		release := make(chan struct{})
		entered := make(chan struct{})
		s.AddListener(func([]project.Project) {
			close(entered)
			<-release
		})

		go s.AddProject("Launch", "Ship the board", 2)
		<-entered
		time.AfterFunc(20*time.Millisecond, func() { close(release) })

		if err := s.HealthCheck(context.Background()); err != nil {
			t.Errorf("HealthCheck() error = %v, want nil", err)
		}
	})
}

// Not parallel: it compares the process goroutine count.
func TestHealthCheck_TimeoutsLeaveNoGoroutines(t *testing.T) {
	s := state.New()
	release := make(chan struct{})
	entered := make(chan struct{})
	s.AddListener(func([]project.Project) {
		close(entered)
		<-release
	})

	go s.AddProject("Launch", "Ship the board", 2)
	<-entered
	defer close(release)

	before := runtime.NumGoroutine()
	for range 50 {
		ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
		if err := s.HealthCheck(ctx); err == nil {
			t.Fatal("HealthCheck() error = nil while locked, want error")
		}
		cancel()
	}

	if after := runtime.NumGoroutine(); after > before+5 {
		t.Errorf("goroutines after 50 timed-out checks = %d, want about %d", after, before)
	}
}
