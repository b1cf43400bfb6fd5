package tables

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/AlexGrytsai/DivorceLawyerAssistant-sub000/model"
)

// RenderGrid renders the table as an aligned ASCII grid with the header
// names as the first row. Cells are space-joined plain text; unfilled form
// fields render as [model.NotFilled]. A table without header columns renders
// as the empty string.
func RenderGrid(t *model.Table) string {
	if t.ColCount() == 0 {
		return ""
	}

	w := table.NewWriter()
	w.Style().Options.SeparateRows = true
	w.Style().Format.Header = text.FormatDefault

	header := make(table.Row, len(t.HeaderNames))
	for i, name := range t.HeaderNames {
		header[i] = name
	}
	w.AppendHeader(header)

	for _, row := range t.Rows {
		r := make(table.Row, len(t.HeaderNames))
		for j := range t.HeaderNames {
			text := ""
			if j < len(row) {
				text = model.CellText(row[j], false)
			}
			r[j] = text
		}
		w.AppendRow(r)
	}

	return w.Render()
}

// RenderPipe renders the table in the compact pipe layout consumed by
// machine reviewers: one "a | b | c" header line, a dash rule, then one
// pipe-joined line per row with [model.NotFilled] for absent cells. With
// withLabel set, field-backed cell values carry their field name prefix.
func RenderPipe(t *model.Table, withLabel bool) string {
	if t.ColCount() == 0 {
		return ""
	}

	header := strings.Join(t.HeaderNames, " | ")
	lines := []string{header, strings.Repeat("-", len(header)+5)}

	for _, row := range RowMaps(t, withLabel) {
		values := make([]string, len(t.HeaderNames))
		for i, name := range t.HeaderNames {
			values[i] = row[name]
		}
		lines = append(lines, strings.Join(values, " | "))
	}

	return strings.Join(lines, "\n")
}

// RowMaps converts the table body into one header-keyed map per row. A
// column whose cell is empty maps to [model.NotFilled].
func RowMaps(t *model.Table, withLabel bool) []map[string]string {
	maps := make([]map[string]string, 0, len(t.Rows))

	for _, row := range t.Rows {
		m := make(map[string]string, len(t.HeaderNames))
		for j, name := range t.HeaderNames {
			text := ""
			if j < len(row) {
				text = model.CellText(row[j], withLabel)
			}
			if text == "" {
				text = model.NotFilled
			}
			m[name] = text
		}
		maps = append(maps, m)
	}

	return maps
}
