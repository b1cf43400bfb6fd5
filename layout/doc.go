// Package layout groups a page's unordered positioned elements into ordered
// text lines.
//
// Extraction delivers text spans and form-field references as a flat set;
// this package rebuilds the vertical reading order from their rectangles.
//
// # Line Grouping
//
// The [Builder] clusters elements into lines and orders them:
//
//	builder := layout.NewBuilder()
//	lines := builder.Build(page.Elements())
//
// Elements are sorted by their top edge, then scanned against a seed
// rectangle: the first element of each line anchors the line's vertical
// band, and every subsequent element within the same-line tolerance of that
// seed joins the line. A finished line is ordered left to right.
//
// The seed rectangle is never re-derived as members join. A line whose
// elements drift vertically can therefore split earlier than a human reader
// would split it; callers that need looser grouping raise
// [Config.Tolerance].
//
// # Duplicate Suppression
//
// Filled form fields are frequently rendered twice by the source document:
// once as the interactive widget and once as flattened page text. When a
// text element in a line matches a field element's display value, the text
// element is dropped and the field kept.
//
// # Configuration
//
//	config := layout.DefaultConfig()
//	config.Tolerance = 8
//	builder := layout.NewBuilderWithConfig(config)
package layout
