package model

import "strings"

// Cell holds the elements assigned to one column slot of a table row
type Cell []Element

// Table represents a detected table: the header geometry that names and
// bounds its columns, plus body rows segmented against that header. Every
// row carries one cell per header column; a cell may be empty when no
// element fell into its column.
type Table struct {
	HeaderNames []string
	HeaderCells []Rect
	Rows        [][]Cell
	Rect        Rect
}

// NewTable creates an empty table bounded by rect with the given header
func NewTable(rect Rect, names []string, cells []Rect) *Table {
	return &Table{
		HeaderNames: names,
		HeaderCells: cells,
		Rows:        make([][]Cell, 0),
		Rect:        rect,
	}
}

// Top returns the vertical position used to order the table on its page
func (t *Table) Top() float64 {
	return t.Rect.Y0
}

// ColCount returns the number of header columns
func (t *Table) ColCount() int {
	return len(t.HeaderNames)
}

// RowCount returns the number of body rows
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// AddRow appends a body row. The row must already be aligned to the header
// columns (one cell per column).
func (t *Table) AddRow(row []Cell) {
	t.Rows = append(t.Rows, row)
}

// Widgets returns every form field referenced from the table's cells
func (t *Table) Widgets() []Widget {
	var fields []Widget
	for _, row := range t.Rows {
		for _, cell := range row {
			for _, el := range cell {
				if fe, ok := el.(*FieldElement); ok {
					fields = append(fields, fe.Widget)
				}
			}
		}
	}
	return fields
}

// ToMarkdown converts the table to markdown format using plain cell text
func (t *Table) ToMarkdown() string {
	if len(t.HeaderNames) == 0 {
		return ""
	}

	var sb strings.Builder

	for _, name := range t.HeaderNames {
		sb.WriteString("| ")
		sb.WriteString(strings.ReplaceAll(name, "\n", " "))
		sb.WriteString(" ")
	}
	sb.WriteString("|\n")

	for range t.HeaderNames {
		sb.WriteString("|---")
	}
	sb.WriteString("|\n")

	for _, row := range t.Rows {
		for _, cell := range row {
			sb.WriteString("| ")
			sb.WriteString(strings.ReplaceAll(CellText(cell, false), "\n", " "))
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
	}

	return sb.String()
}

// ToCSV converts the table to CSV format, header row first
func (t *Table) ToCSV() string {
	var sb strings.Builder

	writeRow := func(values []string) {
		for j, text := range values {
			if strings.Contains(text, ",") || strings.Contains(text, "\"") || strings.Contains(text, "\n") {
				text = "\"" + strings.ReplaceAll(text, "\"", "\"\"") + "\""
			}
			sb.WriteString(text)
			if j < len(values)-1 {
				sb.WriteString(",")
			}
		}
		sb.WriteString("\n")
	}

	writeRow(t.HeaderNames)
	for _, row := range t.Rows {
		values := make([]string, len(row))
		for j, cell := range row {
			values[j] = CellText(cell, false)
		}
		writeRow(values)
	}

	return sb.String()
}

// CellText space-joins the text of a cell's elements. Text elements
// contribute their span text; field elements contribute their display value
// per [DisplayValue], so an unfilled Text field renders as [NotFilled].
// Elements whose display value is empty are skipped.
func CellText(cell Cell, withLabel bool) string {
	parts := make([]string, 0, len(cell))
	for _, el := range cell {
		var text string
		switch e := el.(type) {
		case *TextElement:
			text = e.Span.Text
		case *FieldElement:
			text = DisplayValue(e.Widget, withLabel)
		}
		if text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}
