package tables

import (
	"github.com/AlexGrytsai/DivorceLawyerAssistant-sub000/model"
)

// Config holds configuration for table extraction
type Config struct {
	// Tolerance is the containment slack, in page points, used when testing
	// whether a line sits inside a table region or a header cell (default: 5)
	Tolerance float64
}

// DefaultConfig returns sensible default configuration
func DefaultConfig() Config {
	return Config{
		Tolerance: 5.0,
	}
}

// Processor splits a page's lines into free-flowing text and table content,
// segmenting the table content into columns against externally detected
// header geometry.
type Processor struct {
	config Config
}

// NewProcessor creates a processor with default configuration
func NewProcessor() *Processor {
	return &Processor{
		config: DefaultConfig(),
	}
}

// NewProcessorWithConfig creates a processor with custom configuration
func NewProcessorWithConfig(config Config) *Processor {
	return &Processor{
		config: config,
	}
}

// Process partitions lines against the scraped table boundaries. Lines
// contained in a boundary are consumed by that table and re-rendered only as
// table rows; everything else is returned as free-flowing lines. Boundaries
// are processed in input order, so a line inside two overlapping regions
// belongs to the first.
func (p *Processor) Process(lines []model.Line, scraped []model.ScrapedTable) ([]model.Line, []*model.Table) {
	remaining := lines
	tables := make([]*model.Table, 0, len(scraped))

	for _, st := range scraped {
		var members []model.Line
		remaining, members = p.splitMembers(remaining, st.BBox)
		members = p.dropHeaderDuplicates(members, st.Header.Cells)
		tables = append(tables, p.parse(st, members))
	}

	return remaining, tables
}

// splitMembers separates the lines contained in the table region from the
// rest, preserving order in both halves
func (p *Processor) splitMembers(lines []model.Line, region model.Rect) (outside, members []model.Line) {
	for _, line := range lines {
		if region.ContainsRect(line.Rect, p.config.Tolerance) {
			members = append(members, line)
		} else {
			outside = append(outside, line)
		}
	}
	return outside, members
}

// dropHeaderDuplicates discards member lines that sit inside any header
// cell, fully or partially, so the header row's own text is not parsed as a
// data row.
func (p *Processor) dropHeaderDuplicates(lines []model.Line, cells []model.Rect) []model.Line {
	if len(cells) == 0 {
		return lines
	}

	var kept []model.Line
	for _, line := range lines {
		if !p.inHeaderCell(line.Rect, cells) {
			kept = append(kept, line)
		}
	}
	return kept
}

func (p *Processor) inHeaderCell(r model.Rect, cells []model.Rect) bool {
	for _, cell := range cells {
		if cell.ContainsRect(r, p.config.Tolerance) || cell.PartiallyContains(r) {
			return true
		}
	}
	return false
}

// parse segments the member lines into rows aligned to the header columns.
// Each line becomes one row; a column collects every element whose left edge
// falls inside its header cell. Column ranges are not required to be
// disjoint, so an element may land in more than one column when header
// cells overlap.
func (p *Processor) parse(st model.ScrapedTable, members []model.Line) *model.Table {
	tbl := model.NewTable(st.BBox, st.Header.Names, st.Header.Cells)

	for _, line := range members {
		row := make([]model.Cell, len(st.Header.Cells))
		for j, cell := range st.Header.Cells {
			for _, el := range line.Elements {
				if cell.ContainsLeftEdge(el.Rect()) {
					row[j] = append(row[j], el)
				}
			}
		}
		tbl.AddRow(row)
	}

	return tbl
}
