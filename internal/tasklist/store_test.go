package tasklist

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gosuda/tasklist/internal/domain"
)

func mustDate(t *testing.T, s string) domain.Date {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

// ---------------------------------------------------------------------------
// Mutations
// ---------------------------------------------------------------------------

func TestAddTaskAssignsIncreasingIDs(t *testing.T) {
	t.Parallel()

	s := New()
	s.AddProject("alpha")
	s.AddProject("beta")

	require.True(t, s.AddTask("alpha", "first"))
	require.True(t, s.AddTask("beta", "second"))
	require.True(t, s.AddTask("alpha", "third"))

	view := s.AllProjects()
	require.Len(t, view, 2)
	assert.Equal(t, int64(1), view[0].Tasks[0].ID)
	assert.Equal(t, int64(3), view[0].Tasks[1].ID)
	assert.Equal(t, int64(2), view[1].Tasks[0].ID)
}

func TestAddTaskUnknownProjectIsANoOp(t *testing.T) {
	t.Parallel()

	s := New()
	s.AddProject("p")

	require.False(t, s.AddTask("missing", "t"))

	// The id counter must not have advanced on the failed call.
	require.True(t, s.AddTask("p", "t1"))
	view := s.AllProjects()
	require.Len(t, view, 1)
	require.Len(t, view[0].Tasks, 1)
	assert.Equal(t, int64(1), view[0].Tasks[0].ID)
}

func TestAddProjectTrimsAndOverwrites(t *testing.T) {
	t.Parallel()

	s := New()
	s.AddProject("  spaced  ")
	require.True(t, s.AddTask("spaced", "t1"))

	// Re-adding resets the task list but keeps iteration position.
	s.AddProject("other")
	s.AddProject("spaced")

	view := s.AllProjects()
	require.Len(t, view, 2)
	assert.Equal(t, "spaced", view[0].Name)
	assert.Empty(t, view[0].Tasks)
	assert.Equal(t, "other", view[1].Name)
}

func TestSetDone(t *testing.T) {
	t.Parallel()

	s := New()
	s.AddProject("p")
	require.True(t, s.AddTask("p", "t1"))

	assert.False(t, s.SetDone(999, true))

	require.True(t, s.SetDone(1, true))
	assert.True(t, s.AllProjects()[0].Tasks[0].Done)

	require.True(t, s.SetDone(1, false))
	assert.False(t, s.AllProjects()[0].Tasks[0].Done)
}

func TestSetDeadlineRoundTrip(t *testing.T) {
	t.Parallel()

	s := New()
	s.AddProject("p")
	require.True(t, s.AddTask("p", "t1"))

	d := mustDate(t, "24-12-2024")
	assert.False(t, s.SetDeadline(999, d))
	require.True(t, s.SetDeadline(1, d))

	got := s.AllProjects()[0].Tasks[0].Deadline
	require.NotNil(t, got)
	assert.Equal(t, d, *got)
}

// ---------------------------------------------------------------------------
// Read views
// ---------------------------------------------------------------------------

func TestAllProjectsKeepsInsertionOrderAndEmptyProjects(t *testing.T) {
	t.Parallel()

	s := New()
	s.AddProject("zeta")
	s.AddProject("alpha")
	require.True(t, s.AddTask("alpha", "t1"))

	view := s.AllProjects()
	require.Len(t, view, 2)
	assert.Equal(t, "zeta", view[0].Name)
	assert.Empty(t, view[0].Tasks)
	assert.Equal(t, "alpha", view[1].Name)
}

func TestViewsAreSnapshots(t *testing.T) {
	t.Parallel()

	s := New()
	s.AddProject("p")
	require.True(t, s.AddTask("p", "t1"))

	view := s.AllProjects()
	view[0].Tasks[0].Done = true
	view[0].Tasks[0].Description = "mutated"
	d := mustDate(t, "01-01-2024")
	view[0].Tasks[0].Deadline = &d

	fresh := s.AllProjects()[0].Tasks[0]
	assert.False(t, fresh.Done)
	assert.Equal(t, "t1", fresh.Description)
	assert.Nil(t, fresh.Deadline)
}

func TestTasksDueToday(t *testing.T) {
	t.Parallel()

	s := New()
	s.AddProject("p")
	require.True(t, s.AddTask("p", "due"))
	require.True(t, s.AddTask("p", "future"))
	require.True(t, s.AddTask("p", "open"))

	today := domain.Today()
	tomorrow := domain.DateOf(time.Now().AddDate(0, 0, 1))
	require.True(t, s.SetDeadline(1, today))
	require.True(t, s.SetDeadline(2, tomorrow))

	view := s.TasksDueToday()
	require.Len(t, view, 1)
	require.Len(t, view[0].Tasks, 1)
	assert.Equal(t, "due", view[0].Tasks[0].Description)

	// A project with no task due today is omitted entirely.
	s.AddProject("quiet")
	require.True(t, s.AddTask("quiet", "t"))
	view = s.TasksDueToday()
	require.Len(t, view, 1)
	assert.Equal(t, "p", view[0].Name)
}

func TestTasksWithoutDeadlineSortsProjectsAlphabetically(t *testing.T) {
	t.Parallel()

	s := New()
	s.AddProject("zeta")
	s.AddProject("alpha")
	s.AddProject("mid")
	require.True(t, s.AddTask("zeta", "z1"))
	require.True(t, s.AddTask("alpha", "a1"))
	require.True(t, s.AddTask("mid", "m1"))
	require.True(t, s.AddTask("mid", "m2"))
	require.True(t, s.SetDeadline(4, mustDate(t, "01-01-2030")))

	view := s.TasksWithoutDeadline()
	require.Len(t, view, 3)
	assert.Equal(t, "alpha", view[0].Name)
	assert.Equal(t, "mid", view[1].Name)
	assert.Equal(t, "zeta", view[2].Name)
	require.Len(t, view[1].Tasks, 1)
	assert.Equal(t, "m1", view[1].Tasks[0].Description)

	// Projects where every task has a deadline are omitted.
	s.AddProject("dated")
	require.True(t, s.AddTask("dated", "d1"))
	require.True(t, s.SetDeadline(5, mustDate(t, "01-01-2030")))
	view = s.TasksWithoutDeadline()
	require.Len(t, view, 3)
}

func TestTasksByDeadlineGroupsAndOrders(t *testing.T) {
	t.Parallel()

	s := New()
	s.AddProject("zeta")
	s.AddProject("alpha")
	require.True(t, s.AddTask("zeta", "z1"))  // 1
	require.True(t, s.AddTask("alpha", "a1")) // 2
	require.True(t, s.AddTask("zeta", "z2"))  // 3
	require.True(t, s.AddTask("alpha", "a2")) // 4

	late := mustDate(t, "31-12-2024")
	early := mustDate(t, "01-01-2024")
	require.True(t, s.SetDeadline(1, late))
	require.True(t, s.SetDeadline(2, late))
	require.True(t, s.SetDeadline(3, early))

	view := s.TasksByDeadline()
	require.Len(t, view, 2)

	// Ascending date order regardless of assignment order.
	assert.Equal(t, early, view[0].Date)
	assert.Equal(t, late, view[1].Date)

	// Within a group, first-seen project insertion order, not alphabetical.
	require.Len(t, view[1].Projects, 2)
	assert.Equal(t, "zeta", view[1].Projects[0].Name)
	assert.Equal(t, "alpha", view[1].Projects[1].Name)

	// Tasks without a deadline are absent.
	for _, g := range view {
		for _, p := range g.Projects {
			for _, task := range p.Tasks {
				assert.NotNil(t, task.Deadline)
			}
		}
	}
}

// ---------------------------------------------------------------------------
// JSON views
// ---------------------------------------------------------------------------

func TestProjectViewMarshalsOrderedObject(t *testing.T) {
	t.Parallel()

	s := New()
	s.AddProject("zeta")
	s.AddProject("alpha")
	require.True(t, s.AddTask("zeta", "z1"))

	data, err := json.Marshal(s.AllProjects())
	require.NoError(t, err)
	assert.JSONEq(t, `{"zeta":[{"id":1,"description":"z1","done":false,"deadline":null}],"alpha":[]}`, string(data))

	// Key order is insertion order, which a plain map would not keep.
	text := string(data)
	assert.Less(t, indexOf(t, text, `"zeta"`), indexOf(t, text, `"alpha"`))

	var empty ProjectView
	data, err = json.Marshal(empty)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestDeadlineViewMarshalsAscendingDates(t *testing.T) {
	t.Parallel()

	s := New()
	s.AddProject("p")
	require.True(t, s.AddTask("p", "t1"))
	require.True(t, s.AddTask("p", "t2"))
	// Lexically "02-01-2024" < "30-11-2023" but chronologically later; the
	// view must order by date, not by formatted key.
	require.True(t, s.SetDeadline(1, mustDate(t, "02-01-2024")))
	require.True(t, s.SetDeadline(2, mustDate(t, "30-11-2023")))

	data, err := json.Marshal(s.TasksByDeadline())
	require.NoError(t, err)
	text := string(data)
	assert.Less(t, indexOf(t, text, `"30-11-2023"`), indexOf(t, text, `"02-01-2024"`))
}

func indexOf(t *testing.T, haystack, needle string) int {
	t.Helper()
	i := strings.Index(haystack, needle)
	require.GreaterOrEqual(t, i, 0, "expected %q in %q", needle, haystack)
	return i
}
