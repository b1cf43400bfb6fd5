package model

// Page represents a single assembled page: its free-flowing lines (table
// content removed), the tables detected on it, and the form fields that were
// present in the page's raw input.
type Page struct {
	Number  int // 1-indexed position in the scraped input
	Lines   []Line
	Widgets []Widget
	Tables  []*Table
}

// NewPage creates an empty page with the given number
func NewPage(number int) *Page {
	return &Page{
		Number:  number,
		Lines:   make([]Line, 0),
		Widgets: make([]Widget, 0),
		Tables:  make([]*Table, 0),
	}
}

// AddLine appends a line to the page
func (p *Page) AddLine(line Line) {
	p.Lines = append(p.Lines, line)
}

// AddTable appends a table to the page
func (p *Page) AddTable(table *Table) {
	p.Tables = append(p.Tables, table)
}

// TextFields returns the page's Text-type widgets that carry a value
func (p *Page) TextFields() []Widget {
	var fields []Widget
	for _, w := range p.Widgets {
		if w.FieldType() == FieldTypeText && w.FieldValue() != "" {
			fields = append(fields, w)
		}
	}
	return fields
}
