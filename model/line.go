package model

// Line is a horizontally ordered group of elements sharing one vertical band
// on a page. Rect is fixed at construction to the rectangle of the line's
// first (seed) element and is used only for vertical placement; it is not
// re-derived as elements join.
type Line struct {
	Elements []Element
	Rect     Rect
}

// NewLine creates a line anchored to the given seed rectangle
func NewLine(seed Rect, elements ...Element) Line {
	return Line{Elements: elements, Rect: seed}
}

// Top returns the vertical position used to order the line on its page
func (l Line) Top() float64 {
	return l.Rect.Y0
}

// Spans returns the text elements of the line in element order
func (l Line) Spans() []Span {
	var spans []Span
	for _, el := range l.Elements {
		if te, ok := el.(*TextElement); ok {
			spans = append(spans, te.Span)
		}
	}
	return spans
}

// Fields returns the form-field elements of the line in element order
func (l Line) Fields() []Widget {
	var fields []Widget
	for _, el := range l.Elements {
		if fe, ok := el.(*FieldElement); ok {
			fields = append(fields, fe.Widget)
		}
	}
	return fields
}
