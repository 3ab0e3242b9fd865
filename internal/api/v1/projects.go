package v1

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/gosuda/tasklist/internal/domain"
	"github.com/gosuda/tasklist/internal/tasklist"
)

// Request fields are declared optional so that blank-vs-missing is decided
// in the handlers with a 400, not by schema validation with a 422.

type CreateProjectInput struct {
	Body struct {
		Name string `json:"name,omitempty" doc:"Project name"`
	}
}

type ListProjectsOutput struct {
	Body tasklist.ProjectView
}

type CreateTaskInput struct {
	Project string `path:"project" doc:"Project name"`
	Body    struct {
		Description string `json:"description,omitempty" doc:"Task description"`
	}
}

type SetDeadlineInput struct {
	Project  string `path:"project" doc:"Project name"`
	ID       string `path:"id" doc:"Task ID"`
	Deadline string `query:"deadline" doc:"Deadline as dd-MM-yyyy"`
}

type ViewByDeadlineOutput struct {
	Body struct {
		Deadlines       tasklist.DeadlineView `json:"deadlines"`
		NoDeadlineTasks tasklist.ProjectView  `json:"noDeadlineTasks"`
	}
}

func RegisterProjectRoutes(api huma.API, svc Service) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-project",
		Method:        http.MethodPost,
		Path:          "/projects",
		Summary:       "Create a new project",
		Tags:          []string{"Projects"},
		DefaultStatus: http.StatusOK,
	}, func(_ context.Context, input *CreateProjectInput) (*struct{}, error) {
		if strings.TrimSpace(input.Body.Name) == "" {
			return nil, huma.Error400BadRequest("name is required")
		}
		svc.AddProject(input.Body.Name)
		return nil, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-projects",
		Method:      http.MethodGet,
		Path:        "/projects",
		Summary:     "List all projects with their tasks",
		Tags:        []string{"Projects"},
	}, func(_ context.Context, _ *struct{}) (*ListProjectsOutput, error) {
		return &ListProjectsOutput{Body: svc.AllProjects()}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "create-task",
		Method:        http.MethodPost,
		Path:          "/projects/{project}/tasks",
		Summary:       "Add a task to a project",
		Tags:          []string{"Projects"},
		DefaultStatus: http.StatusCreated,
	}, func(_ context.Context, input *CreateTaskInput) (*struct{}, error) {
		if strings.TrimSpace(input.Body.Description) == "" {
			return nil, huma.Error400BadRequest("description is required")
		}
		if !svc.AddTask(input.Project, input.Body.Description) {
			return nil, huma.Error404NotFound("project not found")
		}
		return nil, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "set-task-deadline",
		Method:        http.MethodPut,
		Path:          "/projects/{project}/tasks/{id}",
		Summary:       "Set or update a task's deadline",
		Tags:          []string{"Projects"},
		DefaultStatus: http.StatusCreated,
	}, func(_ context.Context, input *SetDeadlineInput) (*struct{}, error) {
		id, err := strconv.ParseInt(input.ID, 10, 64)
		if err != nil {
			return nil, huma.Error400BadRequest("task id must be an integer")
		}
		date, err := domain.ParseDate(input.Deadline)
		if err != nil {
			return nil, huma.Error400BadRequest("deadline must be a dd-MM-yyyy date")
		}
		// Deadlines are task-global; the project segment is not consulted.
		if !svc.SetDeadline(id, date) {
			return nil, huma.Error404NotFound("task not found")
		}
		return nil, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "view-by-deadline",
		Method:      http.MethodGet,
		Path:        "/projects/view_by_deadline",
		Summary:     "Group tasks by deadline date",
		Tags:        []string{"Projects"},
	}, func(_ context.Context, _ *struct{}) (*ViewByDeadlineOutput, error) {
		out := &ViewByDeadlineOutput{}
		out.Body.Deadlines = svc.TasksByDeadline()
		out.Body.NoDeadlineTasks = svc.TasksWithoutDeadline()
		return out, nil
	})
}
