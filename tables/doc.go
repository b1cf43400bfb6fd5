// Package tables separates tabular content from flowing text and segments
// it into columns.
//
// Table boundaries arrive pre-detected from the extraction layer as a
// bounding rectangle plus header-cell geometry; this package decides which
// lines belong to each table, discards the header row's own text, and
// assigns the remaining elements to columns.
//
// # Extraction
//
// The [Processor] consumes a page's grouped lines together with its scraped
// table boundaries:
//
//	proc := tables.NewProcessor()
//	plain, parsed := proc.Process(lines, page.Tables)
//
// A line belongs to a table when the table's rectangle contains the line's
// rectangle (with tolerance). Member lines are removed from the plain list
// and reappear only as table rows. Lines sitting inside a header cell are
// dropped entirely; they duplicate the column names the header already
// provides.
//
// # Column Assignment
//
// Each body line becomes one row. A column collects every element whose
// left edge falls within its header cell's horizontal range. Overlapping
// header cells may claim the same element for two columns; the processor
// does not arbitrate.
//
// # Rendering
//
//	grid := tables.RenderGrid(tbl)        // aligned ASCII grid
//	pipe := tables.RenderPipe(tbl, true)  // pipe rows with field labels
//	rows := tables.RowMaps(tbl, false)    // one header-keyed map per row
//
// [RenderGrid] produces the human-readable aligned layout. [RenderPipe]
// produces the compact layout consumed by machine reviewers, one line per
// row. [RowMaps] exposes rows as maps for programmatic use; absent cells
// appear as [model.NotFilled].
package tables
