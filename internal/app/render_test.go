package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bft-labs/tasker/internal/domain"
)

func TestRenderTable(t *testing.T) {
	tests := []struct {
		name  string
		tasks domain.List
		want  []string
	}{
		{
			name:  "empty list uses header widths",
			tasks: domain.List{},
			want: []string{
				"",
				"Index  Task  Status",
				strings.Repeat("-", 19),
				"",
			},
		},
		{
			name: "mixed status",
			tasks: domain.List{
				{Description: "test the code", Done: true},
				{Description: "write docstrings"},
			},
			want: []string{
				"",
				"Index  Task              Status",
				strings.Repeat("-", 36),
				"    0  test the code     DONE",
				"    1  write docstrings  IN PROGRESS",
				"",
			},
		},
		{
			name: "short descriptions keep header floor",
			tasks: domain.List{
				{Description: "a", Done: true},
			},
			want: []string{
				"",
				"Index  Task  Status",
				strings.Repeat("-", 19),
				"    0  a     DONE",
				"",
			},
		},
		{
			name: "unicode description width counts runes",
			tasks: domain.List{
				{Description: "café au lait", Done: true},
			},
			want: []string{
				"",
				"Index  Task          Status",
				strings.Repeat("-", 27),
				"    0  café au lait  DONE",
				"",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := RenderTable(&buf, tt.tasks); err != nil {
				t.Fatalf("RenderTable: %v", err)
			}
			want := strings.Join(tt.want, "\n") + "\n"
			if buf.String() != want {
				t.Errorf("RenderTable output:\n%q\nwant:\n%q", buf.String(), want)
			}
		})
	}
}

func TestRenderTable_WideIndex(t *testing.T) {
	tasks := make(domain.List, 123456)
	for i := range tasks {
		tasks[i] = domain.Task{Description: "x"}
	}

	var buf bytes.Buffer
	if err := RenderTable(&buf, tasks); err != nil {
		t.Fatalf("RenderTable: %v", err)
	}
	lines := strings.Split(buf.String(), "\n")
	if lines[1] != " Index  Task  Status" {
		t.Errorf("header = %q", lines[1])
	}
	if lines[3] != "     0  x     IN PROGRESS" {
		t.Errorf("first row = %q", lines[3])
	}
	if got := lines[len(lines)-3]; got != "123455  x     IN PROGRESS" {
		t.Errorf("last row = %q", got)
	}
}
