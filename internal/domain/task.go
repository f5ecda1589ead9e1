package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Status labels used when rendering a task.
const (
	StatusDone       = "DONE"
	StatusInProgress = "IN PROGRESS"
)

// Task is a single entry in the task list.
//
// On disk a task is the two-element JSON array [description, is_done].
type Task struct {
	Description string
	Done        bool
}

// Status returns the rendered completion label.
func (t Task) Status() string {
	if t.Done {
		return StatusDone
	}
	return StatusInProgress
}

// MarshalJSON encodes the task as [description, is_done].
func (t Task) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{t.Description, t.Done})
}

// UnmarshalJSON decodes a [description, is_done] pair.
func (t *Task) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("task must be a [description, is_done] array: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("task must have 2 elements, got %d", len(pair))
	}
	if isNull(pair[0]) || isNull(pair[1]) {
		return fmt.Errorf("task elements must not be null")
	}

	var desc string
	if err := json.Unmarshal(pair[0], &desc); err != nil {
		return fmt.Errorf("task description: %w", err)
	}
	var done bool
	if err := json.Unmarshal(pair[1], &done); err != nil {
		return fmt.Errorf("task is_done: %w", err)
	}

	t.Description = desc
	t.Done = done
	return nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
