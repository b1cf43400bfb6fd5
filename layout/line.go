package layout

import (
	"sort"
	"strings"

	"github.com/AlexGrytsai/DivorceLawyerAssistant-sub000/model"
)

// Config holds configuration for line grouping
type Config struct {
	// Tolerance is the vertical distance, in page points, within which two
	// rectangles count as sharing a line (default: 5)
	Tolerance float64
}

// DefaultConfig returns sensible default configuration
func DefaultConfig() Config {
	return Config{
		Tolerance: 5.0,
	}
}

// Builder groups positioned elements into ordered lines
type Builder struct {
	config Config
}

// NewBuilder creates a builder with default configuration
func NewBuilder() *Builder {
	return &Builder{
		config: DefaultConfig(),
	}
}

// NewBuilderWithConfig creates a builder with custom configuration
func NewBuilderWithConfig(config Config) *Builder {
	return &Builder{
		config: config,
	}
}

// Build clusters elements into lines ordered top to bottom. Within a line,
// elements are ordered left to right. The line's rectangle is the rectangle
// of its seed element: the first element, in vertical order, that opened the
// line.
func (b *Builder) Build(elements []model.Element) []model.Line {
	if len(elements) == 0 {
		return nil
	}

	sorted := make([]model.Element, len(elements))
	copy(sorted, elements)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rect().Y0 < sorted[j].Rect().Y0
	})

	var lines []model.Line
	seed := sorted[0].Rect()
	current := []model.Element{sorted[0]}

	for _, el := range sorted[1:] {
		if seed.SameLine(el.Rect(), b.config.Tolerance) {
			current = append(current, el)
			continue
		}

		lines = append(lines, closeLine(seed, current))
		seed = el.Rect()
		current = []model.Element{el}
	}
	lines = append(lines, closeLine(seed, current))

	return lines
}

// closeLine finalizes a group: duplicate text is dropped, the remaining
// elements are ordered left to right, and the line is anchored to its seed
// rectangle.
func closeLine(seed model.Rect, elements []model.Element) model.Line {
	elements = dropFieldEchoes(elements)
	sort.SliceStable(elements, func(i, j int) bool {
		return elements[i].Rect().X0 < elements[j].Rect().X0
	})
	return model.NewLine(seed, elements...)
}

// dropFieldEchoes removes text elements whose content duplicates a field
// element's display value in the same group. Source documents often render
// a filled field twice, as the widget and as flattened page text; only the
// field survives here.
func dropFieldEchoes(elements []model.Element) []model.Element {
	values := make(map[string]struct{})
	for _, el := range elements {
		if fe, ok := el.(*model.FieldElement); ok {
			if v := strings.TrimSpace(model.DisplayValue(fe.Widget, false)); v != "" {
				values[v] = struct{}{}
			}
		}
	}
	if len(values) == 0 {
		return elements
	}

	kept := make([]model.Element, 0, len(elements))
	for _, el := range elements {
		if te, ok := el.(*model.TextElement); ok {
			if _, dup := values[strings.TrimSpace(te.Span.Text)]; dup {
				continue
			}
		}
		kept = append(kept, el)
	}
	return kept
}
