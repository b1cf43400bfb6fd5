// Package overlay merges form-field display values into the text spans they
// visually cover.
//
// Interactive documents draw field widgets on top of filler text (underscore
// runs, blank captions). Rendering both verbatim duplicates or garbles the
// output, so for each span the overlay finds the first field whose rectangle
// intersects it, maps the intersection onto the span's character range, and
// splices the field's bracketed display value over the covered characters.
// Fields that never matched a span surface as standalone bracketed elements,
// and every element ends up ordered left to right.
//
//	ov := overlay.New()
//	line = ov.Apply(line, false)
//	text := ov.RenderLine(line, false)
//
// The character range is interpolated linearly from geometry, so it is an
// approximation; [Config.ToleranceBefore] and [Config.ToleranceAfter] widen
// the preserved text on each side to avoid clipping characters adjacent to
// the field.
package overlay

import (
	"sort"
	"strings"

	"github.com/AlexGrytsai/DivorceLawyerAssistant-sub000/model"
)

// Config holds configuration for value splicing
type Config struct {
	// ToleranceBefore shifts the splice start to the right, keeping that
	// many characters ahead of the computed overlap (default: 2)
	ToleranceBefore int

	// ToleranceAfter shifts the splice end to the left, keeping that many
	// characters behind the computed overlap (default: 1)
	ToleranceAfter int
}

// DefaultConfig returns sensible default configuration
func DefaultConfig() Config {
	return Config{
		ToleranceBefore: 2,
		ToleranceAfter:  1,
	}
}

// Overlay splices field display values into overlapping spans
type Overlay struct {
	config Config
}

// New creates an overlay with default configuration
func New() *Overlay {
	return &Overlay{
		config: DefaultConfig(),
	}
}

// NewWithConfig creates an overlay with custom configuration
func NewWithConfig(config Config) *Overlay {
	return &Overlay{
		config: config,
	}
}

// Apply merges the line's field elements into its text spans and returns the
// processed line. Each span is matched against the line's fields in element
// order; the first intersecting field with a non-empty display value is
// spliced into the span and consumed. Fields left unconsumed stay in the
// line as standalone elements. The result keeps the line's seed rectangle
// and is ordered left to right.
func (o *Overlay) Apply(line model.Line, withLabel bool) model.Line {
	fields := line.Fields()
	consumed := make([]bool, len(fields))

	elements := make([]model.Element, 0, len(line.Elements))
	for _, el := range line.Elements {
		te, ok := el.(*model.TextElement)
		if !ok {
			continue
		}

		matched := false
		for i, w := range fields {
			if consumed[i] || !te.Span.Rect.Intersects(w.Rect()) {
				continue
			}
			if model.DisplayValue(w, false) == "" {
				continue
			}
			elements = append(elements, &model.TextElement{Span: o.splice(te.Span, w, withLabel)})
			consumed[i] = true
			matched = true
			break
		}
		if !matched {
			elements = append(elements, te)
		}
	}

	for i, w := range fields {
		if !consumed[i] {
			elements = append(elements, &model.FieldElement{Widget: w})
		}
	}

	sort.SliceStable(elements, func(i, j int) bool {
		return elements[i].Rect().X0 < elements[j].Rect().X0
	})

	return model.NewLine(line.Rect, elements...)
}

// splice replaces the span characters covered by the field with the field's
// bracketed display value. The covered character range is derived by mapping
// the intersection's horizontal extent onto the span text proportionally;
// underscore filler is stripped from the result. The new span keeps the
// original rectangle.
func (o *Overlay) splice(span model.Span, w model.Widget, withLabel bool) model.Span {
	ix := span.Rect.Intersection(w.Rect())
	runes := []rune(span.Text)

	start, end := 0, len(runes)
	if width := span.Rect.Width(); width > 0 {
		start = int((ix.X0-span.Rect.X0)/width*float64(len(runes))) + o.config.ToleranceBefore
		end = int((ix.X1-span.Rect.X0)/width*float64(len(runes))) - o.config.ToleranceAfter
	}
	start = clamp(start, 0, len(runes))
	end = clamp(end, start, len(runes))

	text := string(runes[:start]) + "[" + model.DisplayValue(w, withLabel) + "]" + string(runes[end:])
	text = strings.ReplaceAll(text, "_", "")

	return model.Span{Text: text, Rect: span.Rect}
}

// RenderLine renders a line as text: element texts joined by single spaces,
// with field elements bracketed. Fields whose display value is empty
// contribute nothing.
func (o *Overlay) RenderLine(line model.Line, withLabel bool) string {
	parts := make([]string, 0, len(line.Elements))
	for _, el := range line.Elements {
		switch e := el.(type) {
		case *model.TextElement:
			if e.Span.Text != "" {
				parts = append(parts, e.Span.Text)
			}
		case *model.FieldElement:
			if v := model.DisplayValue(e.Widget, withLabel); v != "" {
				parts = append(parts, "["+v+"]")
			}
		}
	}
	return strings.Join(parts, " ")
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
