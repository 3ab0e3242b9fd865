package v1

import (
	"github.com/gosuda/tasklist/internal/domain"
	"github.com/gosuda/tasklist/internal/tasklist"
)

// Service is the store surface the HTTP handlers need. *tasklist.Locked
// satisfies it; handlers must not be given the bare store because requests
// can run concurrently.
type Service interface {
	AddProject(name string)
	AddTask(project, description string) bool
	SetDeadline(id int64, deadline domain.Date) bool
	AllProjects() tasklist.ProjectView
	TasksWithoutDeadline() tasklist.ProjectView
	TasksByDeadline() tasklist.DeadlineView
}
