package tasklist

import (
	"sync"

	"github.com/gosuda/tasklist/internal/domain"
)

// Locked serializes access to a Store. The store has no internal locking,
// so any front-end that can see concurrent calls (HTTP) must go through
// this wrapper; the console drives the store from a single goroutine and
// uses it bare.
type Locked struct {
	mu    sync.Mutex
	store *Store
}

func NewLocked(store *Store) *Locked {
	return &Locked{store: store}
}

func (l *Locked) AddProject(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.store.AddProject(name)
}

func (l *Locked) AddTask(project, description string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.AddTask(project, description)
}

func (l *Locked) SetDone(id int64, done bool) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.SetDone(id, done)
}

func (l *Locked) SetDeadline(id int64, deadline domain.Date) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.SetDeadline(id, deadline)
}

func (l *Locked) AllProjects() ProjectView {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.AllProjects()
}

func (l *Locked) TasksDueToday() ProjectView {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.TasksDueToday()
}

func (l *Locked) TasksWithoutDeadline() ProjectView {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.TasksWithoutDeadline()
}

func (l *Locked) TasksByDeadline() DeadlineView {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.TasksByDeadline()
}
