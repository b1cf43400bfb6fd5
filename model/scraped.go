package model

// ScrapedPage is the per-page input contract produced by the primitive
// extraction layer: positioned text runs, form-field references, and
// externally detected table boundaries, all unordered.
type ScrapedPage struct {
	Spans   []Span
	Widgets []Widget
	Tables  []ScrapedTable
}

// IsEmpty reports whether the page carries neither text nor fields. Empty
// pages produce no output during assembly.
func (sp ScrapedPage) IsEmpty() bool {
	return len(sp.Spans) == 0 && len(sp.Widgets) == 0
}

// Elements converts the page's spans and widgets into one mixed element
// list, the form consumed by line grouping.
func (sp ScrapedPage) Elements() []Element {
	elements := make([]Element, 0, len(sp.Spans)+len(sp.Widgets))
	for _, span := range sp.Spans {
		elements = append(elements, &TextElement{Span: span})
	}
	for _, w := range sp.Widgets {
		elements = append(elements, &FieldElement{Widget: w})
	}
	return elements
}

// ScrapedTable is an externally supplied table boundary with its header row
type ScrapedTable struct {
	BBox   Rect
	Header TableHeader
}

// TableHeader carries the header-cell geometry that names a table's columns.
// Names and Cells are parallel: Cells[i] bounds the column labelled Names[i].
type TableHeader struct {
	Names []string
	Cells []Rect
}

// ColCount returns the number of header columns
func (h TableHeader) ColCount() int {
	return len(h.Names)
}
