package app

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/bft-labs/tasker/internal/domain"
)

const columnGap = "  "

// RenderTable writes the task table:
//
//	(blank line)
//	Index  Task              Status
//	------------------------------------
//	    0  test the code     DONE
//	    1  write docstrings  IN PROGRESS
//	(blank line)
//
// Index is right-aligned; Task and Status are left-aligned. Column widths
// fit the widest value with the header label as a floor, and the rule spans
// all three columns.
func RenderTable(w io.Writer, tasks domain.List) error {
	idxWidth := len("Index")
	if n := len(tasks); n > 0 {
		idxWidth = max(idxWidth, len(strconv.Itoa(n-1)))
	}
	taskWidth := utf8.RuneCountInString("Task")
	statusWidth := len("Status")
	for _, t := range tasks {
		taskWidth = max(taskWidth, utf8.RuneCountInString(t.Description))
		statusWidth = max(statusWidth, len(t.Status()))
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw)
	fmt.Fprintf(bw, "%*s%s%-*s%s%s\n", idxWidth, "Index", columnGap, taskWidth, "Task", columnGap, "Status")
	fmt.Fprintln(bw, strings.Repeat("-", idxWidth+taskWidth+statusWidth+2*len(columnGap)))
	for i, t := range tasks {
		fmt.Fprintf(bw, "%*d%s%-*s%s%s\n", idxWidth, i, columnGap, taskWidth, t.Description, columnGap, t.Status())
	}
	fmt.Fprintln(bw)
	return bw.Flush()
}
