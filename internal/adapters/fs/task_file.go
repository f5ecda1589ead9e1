package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bft-labs/tasker/internal/domain"
)

// DefaultFileMode is the permission used when creating the task file.
const DefaultFileMode os.FileMode = 0o644

// TaskFileRepository implements ports.TaskRepository using a JSON file.
//
// Save overwrites the whole file. With atomic writes disabled (the default)
// a crash mid-write can leave a truncated file behind.
type TaskFileRepository struct {
	path   string
	atomic bool
}

// Option configures a TaskFileRepository.
type Option func(*TaskFileRepository)

// WithAtomicWrite makes Save write to a temp file and rename it into place.
func WithAtomicWrite(enabled bool) Option {
	return func(r *TaskFileRepository) {
		r.atomic = enabled
	}
}

// NewTaskFileRepository creates a repository for the file at path.
func NewTaskFileRepository(path string, opts ...Option) *TaskFileRepository {
	r := &TaskFileRepository{path: path}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Load reads and decodes the task file.
// A missing file yields an error wrapping fs.ErrNotExist.
func (r *TaskFileRepository) Load(ctx context.Context) (domain.List, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read task file: %w", err)
	}

	tasks, err := Decode(data)
	if err != nil {
		var de *domain.DecodeError
		if errors.As(err, &de) {
			de.Path = r.path
		}
		return nil, err
	}
	return tasks, nil
}

// Save replaces the task file contents with tasks.
func (r *TaskFileRepository) Save(ctx context.Context, tasks domain.List) error {
	data, err := Encode(tasks)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create task file directory: %w", err)
		}
	}

	if !r.atomic {
		if err := os.WriteFile(r.path, data, DefaultFileMode); err != nil {
			return fmt.Errorf("write task file: %w", err)
		}
		return nil
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, DefaultFileMode); err != nil {
		return fmt.Errorf("write task file: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace task file: %w", err)
	}
	return nil
}

// Path returns the task file path.
func (r *TaskFileRepository) Path() string {
	return r.path
}
