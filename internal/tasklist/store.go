// Package tasklist holds the in-memory project/task store and its read
// views. The store is deliberately single-threaded; concurrent callers
// (the HTTP front-end) go through Locked.
package tasklist

import (
	"sort"
	"strings"

	"github.com/gosuda/tasklist/internal/domain"
)

// Store owns every project and task for the lifetime of the process.
// Projects iterate in insertion order; tasks keep the order they were
// added in. Lookups by task id are linear scans, which is fine at the
// data volumes this system sees.
type Store struct {
	order  []string
	tasks  map[string][]*domain.Task
	lastID int64
}

func New() *Store {
	return &Store{tasks: make(map[string][]*domain.Task)}
}

// AddProject registers an empty project under the trimmed name. Re-adding
// an existing name resets its task list to empty but keeps its position in
// iteration order.
func (s *Store) AddProject(name string) {
	name = strings.TrimSpace(name)
	if _, ok := s.tasks[name]; !ok {
		s.order = append(s.order, name)
	}
	s.tasks[name] = nil
}

// AddTask appends a new task to the named project and reports whether the
// project exists. The id counter only advances on success.
func (s *Store) AddTask(project, description string) bool {
	if _, ok := s.tasks[project]; !ok {
		return false
	}
	s.lastID++
	s.tasks[project] = append(s.tasks[project], &domain.Task{
		ID:          s.lastID,
		Description: description,
	})
	return true
}

// SetDone flips the completion flag of the task with the given id and
// reports whether such a task exists.
func (s *Store) SetDone(id int64, done bool) bool {
	t := s.find(id)
	if t == nil {
		return false
	}
	t.Done = done
	return true
}

// SetDeadline assigns a deadline to the task with the given id and reports
// whether such a task exists. An existing deadline is overwritten.
func (s *Store) SetDeadline(id int64, deadline domain.Date) bool {
	t := s.find(id)
	if t == nil {
		return false
	}
	d := deadline
	t.Deadline = &d
	return true
}

// AllProjects snapshots every project in insertion order, including ones
// with no tasks yet.
func (s *Store) AllProjects() ProjectView {
	view := make(ProjectView, 0, len(s.order))
	for _, name := range s.order {
		view = append(view, ProjectTasks{Name: name, Tasks: cloneTasks(s.tasks[name])})
	}
	return view
}

// TasksDueToday snapshots the tasks whose deadline is the current calendar
// date. Projects without a qualifying task are omitted.
func (s *Store) TasksDueToday() ProjectView {
	today := domain.Today()
	var view ProjectView
	for _, name := range s.order {
		var due []domain.Task
		for _, t := range s.tasks[name] {
			if t.Deadline != nil && *t.Deadline == today {
				due = append(due, t.Clone())
			}
		}
		if len(due) > 0 {
			view = append(view, ProjectTasks{Name: name, Tasks: due})
		}
	}
	return view
}

// TasksWithoutDeadline snapshots the tasks that have no deadline set,
// sorted alphabetically by project name. This is the one view with an
// ordering contract that differs from insertion order.
func (s *Store) TasksWithoutDeadline() ProjectView {
	var view ProjectView
	for _, name := range s.order {
		var open []domain.Task
		for _, t := range s.tasks[name] {
			if t.Deadline == nil {
				open = append(open, t.Clone())
			}
		}
		if len(open) > 0 {
			view = append(view, ProjectTasks{Name: name, Tasks: open})
		}
	}
	sort.Slice(view, func(i, j int) bool { return view[i].Name < view[j].Name })
	return view
}

// TasksByDeadline groups every task with a deadline first by exact date,
// ascending, then by project in first-seen insertion order.
func (s *Store) TasksByDeadline() DeadlineView {
	var view DeadlineView
	byDate := make(map[domain.Date]int)
	for _, name := range s.order {
		for _, t := range s.tasks[name] {
			if t.Deadline == nil {
				continue
			}
			gi, ok := byDate[*t.Deadline]
			if !ok {
				gi = len(view)
				byDate[*t.Deadline] = gi
				view = append(view, DeadlineGroup{Date: *t.Deadline})
			}
			view[gi].Projects = view[gi].Projects.add(name, t.Clone())
		}
	}
	sort.Slice(view, func(i, j int) bool { return view[i].Date.Before(view[j].Date) })
	return view
}

func (s *Store) find(id int64) *domain.Task {
	for _, name := range s.order {
		for _, t := range s.tasks[name] {
			if t.ID == id {
				return t
			}
		}
	}
	return nil
}

func cloneTasks(tasks []*domain.Task) []domain.Task {
	out := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Clone())
	}
	return out
}
