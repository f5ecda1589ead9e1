package app

import (
	"io"

	"github.com/rs/zerolog"
)

// Option configures optional behavior of a Store.
type Option func(*Store)

// WithOutput sets where List renders the task table.
// If not provided, os.Stdout is used.
func WithOutput(w io.Writer) Option {
	return func(s *Store) {
		s.out = w
	}
}

// WithLogger sets the logger for store operations.
// If not provided, nothing is logged.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// AddOption configures a single Add call.
type AddOption func(*addParams)

type addParams struct {
	done  bool
	index int
	at    bool
}

// Done sets the completion flag of the added task.
func Done(done bool) AddOption {
	return func(p *addParams) {
		p.done = done
	}
}

// AtIndex inserts the task before the one currently at index instead of
// appending it.
func AtIndex(index int) AddOption {
	return func(p *addParams) {
		p.index = index
		p.at = true
	}
}
