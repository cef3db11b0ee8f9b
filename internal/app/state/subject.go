// Package state holds the board's observable in-memory state.
//
// ProjectState owns the canonical project list. Every mutation pushes a copy
// of the full list to the registered listeners, synchronously and in
// registration order:
//
//	ps := state.New()
//	ps.AddListener(func(projects []project.Project) { ... })
//	ps.AddProject("Board", "Drag and drop board", 2)
//
// Listeners run while the container holds its lock and must not call back
// into it.
package state

// Listener receives a snapshot of the full item list after each mutation.
// The slice is a copy owned by the listener and must be treated as
// read-only.
type Listener[T any] func(items []T)

// Subject keeps the listener list for a state container.
// The zero value is ready to use. Subject is not safe for concurrent use;
// the embedding container serializes access.
type Subject[T any] struct {
	listeners []Listener[T]
}

// AddListener registers fn. Listeners are never removed and are not replayed
// past notifications.
func (s *Subject[T]) AddListener(fn Listener[T]) {
	s.listeners = append(s.listeners, fn)
}

// notify calls every listener, in registration order, with its own copy of
// items.
func (s *Subject[T]) notify(items []T) {
	for _, fn := range s.listeners {
		snapshot := make([]T, len(items))
		copy(snapshot, items)
		fn(snapshot)
	}
}
