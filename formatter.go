package pdfparse

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AlexGrytsai/DivorceLawyerAssistant-sub000/model"
	"github.com/AlexGrytsai/DivorceLawyerAssistant-sub000/overlay"
	"github.com/AlexGrytsai/DivorceLawyerAssistant-sub000/tables"
)

// renderedPart is one positioned block of page output, either a line of
// text or a rendered table.
type renderedPart struct {
	top  float64
	text string
}

// renderPage renders one assembled page: a "Page # N" header followed by
// the page's lines and tables merged in top-to-bottom order. At equal
// heights lines sort ahead of tables. The render carries a trailing newline
// so consecutive page renders concatenate directly.
func renderPage(page *model.Page, ov *overlay.Overlay, withLabel bool) string {
	blocks := make([]renderedPart, 0, len(page.Lines)+len(page.Tables))
	for _, line := range page.Lines {
		blocks = append(blocks, renderedPart{top: line.Top(), text: ov.RenderLine(line, withLabel)})
	}
	for _, t := range page.Tables {
		blocks = append(blocks, renderedPart{top: t.Top(), text: renderTable(t, withLabel)})
	}
	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].top < blocks[j].top
	})

	parts := make([]string, 0, len(blocks)+1)
	parts = append(parts, fmt.Sprintf("Page # %d\n", page.Number))
	for _, block := range blocks {
		parts = append(parts, block.text)
	}
	return strings.Join(parts, "\n") + "\n"
}

// renderTable picks the table render for the active mode: an aligned grid
// by default, the pipe layout when field labels are on.
func renderTable(t *model.Table, withLabel bool) string {
	if withLabel {
		return tables.RenderPipe(t, true)
	}
	return tables.RenderGrid(t)
}
