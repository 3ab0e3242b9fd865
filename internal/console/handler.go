// Package console implements the line-oriented front-end: a command
// dispatcher that maps text commands onto store operations, and the
// read loop that feeds it from an input stream.
package console

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/gosuda/tasklist/internal/domain"
	"github.com/gosuda/tasklist/internal/tasklist"
)

// Hard-error sentinels. Execute returns these for input it cannot
// interpret at all; the console loop propagates them and the process
// stops. The HTTP front-end never sees them — it parses its own input
// and answers 400 for the same conditions.
var (
	ErrBadTaskID   = errors.New("console: task id is not a number")
	ErrBadDeadline = errors.New("console: deadline is not a dd-MM-yyyy date")
)

// Handler dispatches one command line at a time against a store and
// renders results to out.
type Handler struct {
	store *tasklist.Store
	out   io.Writer
}

func NewHandler(store *tasklist.Store, out io.Writer) *Handler {
	return &Handler{store: store, out: out}
}

// Execute parses and runs a single command line. Soft errors (unknown
// command, unknown project or task, missing arguments) are reported on
// out and return nil; only uninterpretable input returns an error.
func (h *Handler) Execute(line string) error {
	cmd, rest, _ := strings.Cut(line, " ")
	switch cmd {
	case "show":
		h.printChecked(h.store.AllProjects())
	case "today":
		h.printChecked(h.store.TasksDueToday())
	case "view-by-deadline":
		h.viewByDeadline()
	case "add":
		h.add(rest)
	case "check":
		return h.setDone(cmd, rest, true)
	case "uncheck":
		return h.setDone(cmd, rest, false)
	case "deadline":
		return h.deadline(rest)
	case "help":
		h.help()
	default:
		fmt.Fprintf(h.out, "I don't know what the command %q is.\n", cmd)
	}
	return nil
}

func (h *Handler) add(rest string) {
	sub, args, _ := strings.Cut(rest, " ")
	switch sub {
	case "project":
		if strings.TrimSpace(args) == "" {
			fmt.Fprintln(h.out, "Invalid command format. Expected format: add project <project name>")
			return
		}
		h.store.AddProject(args)
	case "task":
		project, description, ok := strings.Cut(args, " ")
		if !ok || project == "" || strings.TrimSpace(description) == "" {
			fmt.Fprintln(h.out, "Invalid command format. Expected format: add task <project name> <task description>")
			return
		}
		if !h.store.AddTask(project, description) {
			fmt.Fprintln(h.out, "No project with the given name was found.")
		}
	default:
		fmt.Fprintln(h.out, "Invalid command format. Expected format: add project <project name> | add task <project name> <task description>")
	}
}

func (h *Handler) setDone(cmd, rest string, done bool) error {
	idRaw := strings.TrimSpace(rest)
	if idRaw == "" {
		fmt.Fprintf(h.out, "Invalid command format. Expected format: %s <task ID>\n", cmd)
		return nil
	}
	id, err := strconv.ParseInt(idRaw, 10, 64)
	if err != nil {
		fmt.Fprintln(h.out, "Invalid task ID.")
		return fmt.Errorf("%w: %q", ErrBadTaskID, idRaw)
	}
	if !h.store.SetDone(id, done) {
		fmt.Fprintln(h.out, "No task with the given ID was found.")
	}
	return nil
}

func (h *Handler) deadline(rest string) error {
	if rest == "" {
		fmt.Fprintln(h.out, "Invalid command format. Expected format: deadline <task ID> <dd-MM-yyyy>")
		return nil
	}
	idRaw, dateRaw, _ := strings.Cut(rest, " ")
	id, err := strconv.ParseInt(idRaw, 10, 64)
	if err != nil {
		fmt.Fprintln(h.out, "Invalid task ID.")
		return fmt.Errorf("%w: %q", ErrBadTaskID, idRaw)
	}
	date, err := domain.ParseDate(dateRaw)
	if err != nil {
		fmt.Fprintln(h.out, "Invalid deadline format. Expected format: dd-MM-yyyy.")
		return fmt.Errorf("%w: %q", ErrBadDeadline, dateRaw)
	}
	if !h.store.SetDeadline(id, date) {
		fmt.Fprintln(h.out, "No task with the given ID was found.")
	}
	return nil
}

// printChecked renders project blocks with checkbox lines, the format
// shared by show and today.
func (h *Handler) printChecked(view tasklist.ProjectView) {
	for _, p := range view {
		fmt.Fprintln(h.out, p.Name)
		for _, t := range p.Tasks {
			check := ' '
			if t.Done {
				check = 'x'
			}
			fmt.Fprintf(h.out, "    [%c] %d: %s\n", check, t.ID, t.Description)
		}
		fmt.Fprintln(h.out)
	}
}

func (h *Handler) viewByDeadline() {
	for _, group := range h.store.TasksByDeadline() {
		fmt.Fprintf(h.out, "%s:\n", group.Date)
		h.printSorted(group.Projects)
	}
	if noDeadline := h.store.TasksWithoutDeadline(); len(noDeadline) > 0 {
		fmt.Fprintln(h.out, "No deadline:")
		h.printSorted(noDeadline)
	}
}

// printSorted renders nested project blocks alphabetically. Sorting here
// is a rendering concern: the store views keep insertion order so the
// HTTP front-end can serialize them as-is.
func (h *Handler) printSorted(view tasklist.ProjectView) {
	sorted := make(tasklist.ProjectView, len(view))
	copy(sorted, view)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	for _, p := range sorted {
		fmt.Fprintf(h.out, "     %s:\n", p.Name)
		for _, t := range p.Tasks {
			fmt.Fprintf(h.out, "       \t%d: %s\n", t.ID, t.Description)
		}
	}
}

func (h *Handler) help() {
	fmt.Fprintln(h.out, "Commands:")
	fmt.Fprintln(h.out, "  show")
	fmt.Fprintln(h.out, "  today")
	fmt.Fprintln(h.out, "  view-by-deadline")
	fmt.Fprintln(h.out, "  add project <project name>")
	fmt.Fprintln(h.out, "  add task <project name> <task description>")
	fmt.Fprintln(h.out, "  check <task ID>")
	fmt.Fprintln(h.out, "  uncheck <task ID>")
	fmt.Fprintln(h.out, "  deadline <task ID> <date>")
	fmt.Fprintln(h.out, "  quit")
	fmt.Fprintln(h.out)
}
