package domain

// Task is the unit of work tracked by the system. IDs are assigned by the
// store from a process-wide monotonic counter and are never reused; the
// description is fixed at creation.
type Task struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Done        bool   `json:"done"`
	Deadline    *Date  `json:"deadline"`
}

// Clone returns a copy that shares no mutable state with the receiver.
func (t Task) Clone() Task {
	c := t
	if t.Deadline != nil {
		d := *t.Deadline
		c.Deadline = &d
	}
	return c
}
