// Package tasker keeps an ordered task list in a local JSON file.
//
// Example usage:
//
//	store, err := tasker.Open(ctx, "task_list.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if _, err := store.Add(ctx, "test the code"); err != nil {
//	    log.Fatal(err)
//	}
//	if _, err := store.ToggleStatus(ctx, 0); err != nil {
//	    log.Fatal(err)
//	}
//	store.List()
//
// Every mutating call rewrites the whole file before returning. The file is
// assumed to have a single writer; there is no locking.
package tasker

import (
	"context"

	"github.com/bft-labs/tasker/internal/adapters/fs"
	"github.com/bft-labs/tasker/internal/app"
	"github.com/bft-labs/tasker/internal/cliconfig"
	"github.com/bft-labs/tasker/internal/domain"
)

// Task is a description and a completion flag.
type Task = domain.Task

// List is an ordered sequence of tasks addressed by zero-based index.
type List = domain.List

// Store owns a task list and its backing file.
type Store = app.Store

// Option configures a Store.
type Option = app.Option

// AddOption configures a single Add call.
type AddOption = app.AddOption

// IndexError and DecodeError carry details for ErrIndexOutOfRange and ErrDecode.
type (
	IndexError  = domain.IndexError
	DecodeError = domain.DecodeError
)

// Errors returned by Store operations. Check with errors.Is.
var (
	ErrIndexOutOfRange = domain.ErrIndexOutOfRange
	ErrDecode          = domain.ErrDecode
)

// DefaultTaskFile is the file name the command line uses when none is set.
const DefaultTaskFile = cliconfig.DefaultTaskFile

// Store and Add options.
var (
	WithOutput = app.WithOutput
	WithLogger = app.WithLogger
	Done       = app.Done
	AtIndex    = app.AtIndex
)

// Open loads the task list at path, creating the file with an empty list
// if it does not exist. The file is overwritten in place on every change.
func Open(ctx context.Context, path string, opts ...Option) (*Store, error) {
	return app.Open(ctx, fs.NewTaskFileRepository(path), opts...)
}

// OpenAtomic is like Open but writes through a temp file renamed into place,
// so a crash mid-write cannot leave a truncated file.
func OpenAtomic(ctx context.Context, path string, opts ...Option) (*Store, error) {
	return app.Open(ctx, fs.NewTaskFileRepository(path, fs.WithAtomicWrite(true)), opts...)
}
