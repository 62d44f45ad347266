package domain

import "fmt"

// Priority ranks tasks.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Task is a checklist item.
// swagger:model Task
type Task struct {
	ID         string   `json:"id"`
	EventID    string   `json:"weddingId"`
	Title      string   `json:"title"`
	DueDate    string   `json:"dueDate"`
	Completed  bool     `json:"completed"`
	AssignedTo string   `json:"assignedTo"`
	Priority   Priority `json:"priority"`
}

func (t Task) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("%w: task id is required", ErrInvalidInput)
	}
	if t.Title == "" {
		return fmt.Errorf("%w: task title is required", ErrInvalidInput)
	}
	switch t.Priority {
	case "", PriorityHigh, PriorityMedium, PriorityLow:
	default:
		return fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, t.Priority)
	}
	return nil
}

// TaskPatch holds the fields of a partial task update.
type TaskPatch struct {
	Title      *string   `json:"title,omitempty"`
	DueDate    *string   `json:"dueDate,omitempty"`
	Completed  *bool     `json:"completed,omitempty"`
	AssignedTo *string   `json:"assignedTo,omitempty"`
	Priority   *Priority `json:"priority,omitempty"`
}

func (p TaskPatch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.AssignedTo != nil {
		t.AssignedTo = *p.AssignedTo
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
}
