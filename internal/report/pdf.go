// Package report renders the task list as a PDF document.
package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/bft-labs/tasker/internal/domain"
)

const bottomMargin = 20.0

// BuildTaskReport returns a one-table PDF of tasks. Descriptions are wrapped
// to the column width; characters outside cp1252 are replaced.
func BuildTaskReport(title string, tasks domain.List, generated time.Time) ([]byte, error) {
	p := gofpdf.New("P", "mm", "A4", "")
	tr := p.UnicodeTranslatorFromDescriptor("")
	p.SetTitle(title, true)
	p.SetAutoPageBreak(false, bottomMargin)
	p.AddPage()

	p.SetFont("Arial", "B", 16)
	p.Cell(0, 10, tr(title))
	p.Ln(10)
	p.SetFont("Arial", "", 9)
	done := 0
	for _, t := range tasks {
		if t.Done {
			done++
		}
	}
	p.Cell(0, 6, fmt.Sprintf("%d tasks, %d done. Generated %s", len(tasks), done, generated.Format(time.RFC3339)))
	p.Ln(10)

	const (
		idxW    = 16.0
		statusW = 30.0
		lineH   = 7.0
	)
	left, _, right, _ := p.GetMargins()
	pageW, pageH := p.GetPageSize()
	taskW := pageW - left - right - idxW - statusW

	p.SetFont("Arial", "B", 11)
	p.SetFillColor(230, 230, 230)
	p.CellFormat(idxW, lineH, "Index", "1", 0, "R", true, 0, "")
	p.CellFormat(taskW, lineH, "Task", "1", 0, "L", true, 0, "")
	p.CellFormat(statusW, lineH, "Status", "1", 1, "L", true, 0, "")

	p.SetFont("Arial", "", 11)
	for i, t := range tasks {
		lines := p.SplitLines([]byte(tr(t.Description)), taskW-2)
		if len(lines) == 0 {
			lines = [][]byte{nil}
		}
		h := lineH * float64(len(lines))
		if _, y := p.GetXY(); y+h > pageH-bottomMargin {
			p.AddPage()
		}
		x, y := p.GetXY()
		p.CellFormat(idxW, h, fmt.Sprintf("%d", i), "1", 0, "RT", false, 0, "")
		p.MultiCell(taskW, lineH, tr(t.Description), "1", "L", false)
		p.SetXY(x+idxW+taskW, y)
		p.CellFormat(statusW, h, t.Status(), "1", 1, "LT", false, 0, "")
	}

	var buf bytes.Buffer
	if err := p.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
