package app

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/bft-labs/tasker/internal/adapters/fs"
	"github.com/bft-labs/tasker/internal/domain"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func waitRender(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for render")
	}
}

func TestWatcher_RerendersOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	ctx := context.Background()

	tests := []struct {
		name   string
		atomic bool
	}{
		{name: "overwrite", atomic: false},
		{name: "rename", atomic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := fs.NewTaskFileRepository(path, fs.WithAtomicWrite(tt.atomic))
			if err := repo.Save(ctx, domain.List{{Description: "first"}}); err != nil {
				t.Fatalf("Save: %v", err)
			}

			out := &syncBuffer{}
			w := NewWatcher(repo, path, out, zerolog.Nop(), 10*time.Millisecond)
			renders := make(chan struct{}, 16)
			w.rendered = func() { renders <- struct{}{} }

			runCtx, cancel := context.WithCancel(ctx)
			done := make(chan error, 1)
			go func() { done <- w.Run(runCtx) }()

			waitRender(t, renders)
			if !strings.Contains(out.String(), "first") {
				t.Fatalf("initial render = %q", out.String())
			}

			if err := repo.Save(ctx, domain.List{{Description: "first"}, {Description: "second", Done: true}}); err != nil {
				t.Fatalf("Save: %v", err)
			}

			deadline := time.After(5 * time.Second)
			for !strings.Contains(out.String(), "second") {
				select {
				case <-renders:
				case <-deadline:
					t.Fatalf("no re-render after write, output = %q", out.String())
				}
			}

			cancel()
			select {
			case err := <-done:
				if err != nil {
					t.Errorf("Run returned %v", err)
				}
			case <-time.After(5 * time.Second):
				t.Fatal("Run did not stop after cancel")
			}
		})
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "tasks.json")
	repo := fs.NewTaskFileRepository(path)

	w := NewWatcher(repo, path, &syncBuffer{}, zerolog.Nop(), 0)
	if err := w.Run(context.Background()); err == nil {
		t.Fatal("Run succeeded watching a missing directory")
	}
}
