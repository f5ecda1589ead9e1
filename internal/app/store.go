package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/rs/zerolog"

	"github.com/bft-labs/tasker/internal/domain"
	"github.com/bft-labs/tasker/internal/ports"
)

// Store owns the task list and keeps it in sync with its repository.
//
// Every mutating call builds the next list, saves it in full, and only then
// makes it current. A failed call leaves both memory and storage unchanged.
// Store is not safe for concurrent use.
type Store struct {
	repo   ports.TaskRepository
	tasks  domain.List
	out    io.Writer
	logger zerolog.Logger
}

// Open loads the task list from repo. If nothing is stored yet, an empty
// list is saved first.
func Open(ctx context.Context, repo ports.TaskRepository, opts ...Option) (*Store, error) {
	s := &Store{
		repo:   repo,
		out:    os.Stdout,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	tasks, err := repo.Load(ctx)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug().Msg("task file missing, creating empty list")
		tasks = domain.List{}
		if err := repo.Save(ctx, tasks); err != nil {
			return nil, fmt.Errorf("create task file: %w", err)
		}
	} else if err != nil {
		return nil, err
	}

	s.tasks = tasks
	s.logger.Debug().Int("count", len(tasks)).Msg("tasks loaded")
	return s, nil
}

// Tasks returns a copy of the current task list.
func (s *Store) Tasks() domain.List {
	return s.tasks.Clone()
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// List renders the task table to the store's output.
// The only possible error comes from writing to the output.
func (s *Store) List() error {
	return RenderTable(s.out, s.tasks)
}

// Add appends a task, or inserts it before index when AtIndex is given.
func (s *Store) Add(ctx context.Context, description string, opts ...AddOption) (domain.List, error) {
	var p addParams
	for _, opt := range opts {
		opt(&p)
	}
	task := domain.Task{Description: description, Done: p.done}

	if !p.at {
		return s.commit(ctx, "add", len(s.tasks), s.tasks.Append(task))
	}
	next, err := s.tasks.Insert(p.index, task)
	if err != nil {
		return nil, err
	}
	return s.commit(ctx, "add", p.index, next)
}

// Edit replaces the description at index, keeping its completion flag.
func (s *Store) Edit(ctx context.Context, index int, description string) (domain.List, error) {
	next, err := s.tasks.Edit(index, description)
	if err != nil {
		return nil, err
	}
	return s.commit(ctx, "edit", index, next)
}

// ToggleStatus flips the completion flag at index.
func (s *Store) ToggleStatus(ctx context.Context, index int) (domain.List, error) {
	next, err := s.tasks.Toggle(index)
	if err != nil {
		return nil, err
	}
	return s.commit(ctx, "status", index, next)
}

// Delete removes the task at index. Later tasks move down by one.
func (s *Store) Delete(ctx context.Context, index int) (domain.List, error) {
	next, err := s.tasks.Delete(index)
	if err != nil {
		return nil, err
	}
	return s.commit(ctx, "delete", index, next)
}

func (s *Store) commit(ctx context.Context, op string, index int, next domain.List) (domain.List, error) {
	if err := s.repo.Save(ctx, next); err != nil {
		return nil, fmt.Errorf("%s task %d: %w", op, index, err)
	}
	s.tasks = next
	s.logger.Debug().
		Str("op", op).
		Int("index", index).
		Int("count", len(next)).
		Msg("tasks saved")
	return next.Clone(), nil
}
