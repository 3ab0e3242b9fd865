package tasklist

import (
	"bytes"
	"encoding/json"

	"github.com/gosuda/tasklist/internal/domain"
)

// ProjectTasks is one project's name with a snapshot of its tasks.
type ProjectTasks struct {
	Name  string
	Tasks []domain.Task
}

// ProjectView is an ordered set of project blocks. It marshals as a JSON
// object whose keys appear in view order; a plain map cannot guarantee
// that, and the wire format promises stable ordering.
type ProjectView []ProjectTasks

// add appends a task under the named project, creating the block at the
// end of the view if the name has not been seen yet.
func (v ProjectView) add(name string, task domain.Task) ProjectView {
	for i := range v {
		if v[i].Name == name {
			v[i].Tasks = append(v[i].Tasks, task)
			return v
		}
	}
	return append(v, ProjectTasks{Name: name, Tasks: []domain.Task{task}})
}

func (v ProjectView) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range v {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeMember(&buf, p.Name, p.Tasks); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// DeadlineGroup holds every task due on one date, grouped per project in
// first-seen insertion order.
type DeadlineGroup struct {
	Date     domain.Date
	Projects ProjectView
}

// DeadlineView is an ordered set of deadline groups, ascending by date.
// It marshals as a JSON object keyed by dd-MM-yyyy strings in that order.
type DeadlineView []DeadlineGroup

func (v DeadlineView) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, g := range v {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeMember(&buf, g.Date.String(), g.Projects); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeMember(buf *bytes.Buffer, key string, value any) error {
	k, err := json.Marshal(key)
	if err != nil {
		return err
	}
	val, err := json.Marshal(value)
	if err != nil {
		return err
	}
	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(val)
	return nil
}
