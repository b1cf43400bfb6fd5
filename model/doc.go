// Package model provides the intermediate representation (IR) for
// reconstructed document content.
//
// This package defines the data structures every pipeline stage consumes and
// produces: the geometric primitives extracted from a document, the element
// union that line grouping operates on, and the assembled page/document
// types handed to rendering.
//
// # Input Contract
//
// The extraction layer delivers one [ScrapedPage] per document page: raw
// [Span] values, [Widget] references, and [ScrapedTable] boundaries, all
// unordered. The pipeline owns nothing heavier; widgets in particular stay
// behind the small [Widget] interface so the core never depends on the
// extraction layer's field objects and remains testable with [FormField]
// literals.
//
// # Elements
//
// Line grouping works over a mixed list of positioned items. The [Element]
// interface has exactly two implementations:
//
//   - [TextElement] - a positioned text span
//   - [FieldElement] - a reference to an interactive form field
//
// [Element.Kind] discriminates the two, so consumers can switch exhaustively
// instead of probing concrete types.
//
// # Assembled Structure
//
// Grouping and table detection produce [Line] and [Table] values collected
// into a [Page]; pages form a [Document]:
//
//	doc := model.NewDocument()
//	doc.AddPage(page)
//	text := doc.GetPage(1).Lines[0]
//
// Pages keep their scraped numbering, so skipped (empty) pages leave gaps.
//
// # Geometry
//
// [Rect] is the single geometric primitive, an axis-aligned rectangle with Y
// increasing downward. Its predicate methods carry the pipeline's layout
// decisions:
//
//   - [Rect.SameLine] - tolerant same-baseline test for line clustering
//   - [Rect.ContainsRect] - containment with tolerance, for table membership
//   - [Rect.PartiallyContains] - asymmetric containment, for header duplicates
//   - [Rect.ContainsLeftEdge] - left-edge column membership
//   - [Rect.Intersects], [Rect.Intersection] - overlap tests for overlay
//
// All predicates are total and assume well-formed rectangles; degenerate
// input is a caller error and is deliberately not validated here.
package model
