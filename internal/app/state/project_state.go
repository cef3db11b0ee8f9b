package state

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/project-board/internal/domain/project"
)

// ProjectState is the board's single source of truth. Create one per process
// and pass it to the components that need it.
type ProjectState struct {
	mu       sync.Mutex
	subject  Subject[project.Project]
	projects []project.Project
	newID    func() string
}

// Option configures a ProjectState.
type Option func(*ProjectState)

// WithIDGenerator replaces the uuid-based id generator.
func WithIDGenerator(fn func() string) Option {
	return func(s *ProjectState) {
		s.newID = fn
	}
}

// New creates an empty ProjectState.
func New(opts ...Option) *ProjectState {
	s := &ProjectState{newID: uuid.NewString}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddListener registers fn for all future notifications.
func (s *ProjectState) AddListener(fn Listener[project.Project]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subject.AddListener(fn)
}

// AddProject appends a new active project and notifies listeners.
// Input is assumed to be validated by the caller.
func (s *ProjectState) AddProject(title, description string, people int) project.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := project.Project{
		ID:          s.newID(),
		Title:       title,
		Description: description,
		People:      people,
		Status:      project.StatusActive,
	}
	s.projects = append(s.projects, p)
	s.subject.notify(s.projects)

	return p
}

// UpdateProjectStatus moves the project with the given id to status and
// notifies listeners. Unknown ids and unchanged statuses are no-ops; the
// result reports whether anything changed.
func (s *ProjectState) UpdateProjectStatus(id string, status project.Status) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 || s.projects[i].Status == status {
		return false
	}

	s.projects[i].Status = status
	s.subject.notify(s.projects)
	return true
}

// Projects returns a copy of all projects in creation order.
func (s *ProjectState) Projects() []project.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]project.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// Project returns the project with the given id.
func (s *ProjectState) Project(id string) (project.Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return project.Project{}, false
	}
	return s.projects[i], true
}

// Len returns the number of projects.
func (s *ProjectState) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.projects)
}

// healthPoll is how often HealthCheck retries a held lock.
const healthPoll = 5 * time.Millisecond

// HealthCheck reports whether the state lock can be taken before ctx ends.
// A listener that blocks forever shows up here as an unhealthy board.
func (s *ProjectState) HealthCheck(ctx context.Context) error {
	ticker := time.NewTicker(healthPoll)
	defer ticker.Stop()

	for {
		if s.mu.TryLock() {
			s.mu.Unlock()
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("board state locked: %w", ctx.Err())
		case <-ticker.C:
		}
	}
}

// Name identifies the state container in readiness reports.
func (s *ProjectState) Name() string {
	return "board-state"
}

// indexOf must be called with s.mu held.
func (s *ProjectState) indexOf(id string) int {
	for i := range s.projects {
		if s.projects[i].ID == id {
			return i
		}
	}
	return -1
}
