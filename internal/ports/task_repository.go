package ports

import (
	"context"

	"github.com/bft-labs/tasker/internal/domain"
)

// TaskRepository persists the task list as a single unit.
type TaskRepository interface {
	// Load reads the full task list.
	// Returns an error wrapping fs.ErrNotExist if nothing has been saved yet,
	// and a *domain.DecodeError if the stored contents are not a task list.
	Load(ctx context.Context) (domain.List, error)

	// Save replaces the stored task list with tasks in full.
	Save(ctx context.Context, tasks domain.List) error
}
