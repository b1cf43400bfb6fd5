package model

// Document represents a fully assembled document. Pages keep the numbers
// they had in the scraped input, so a document whose empty pages were
// skipped may carry gaps in the numbering.
type Document struct {
	Pages []*Page
}

// NewDocument creates a new empty document
func NewDocument() *Document {
	return &Document{
		Pages: make([]*Page, 0),
	}
}

// AddPage appends a page, preserving its number
func (d *Document) AddPage(page *Page) {
	d.Pages = append(d.Pages, page)
}

// GetPage returns the page with the given number, or nil if absent
func (d *Document) GetPage(number int) *Page {
	for _, page := range d.Pages {
		if page.Number == number {
			return page
		}
	}
	return nil
}

// PageCount returns the number of assembled pages
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// Tables returns all tables from all pages in page order
func (d *Document) Tables() []*Table {
	var tables []*Table
	for _, page := range d.Pages {
		tables = append(tables, page.Tables...)
	}
	return tables
}

// HasTables returns true if any page carries a detected table
func (d *Document) HasTables() bool {
	for _, page := range d.Pages {
		if len(page.Tables) > 0 {
			return true
		}
	}
	return false
}
