package model

// Span represents an immutable run of extracted text with its bounding
// rectangle. Spans are produced once by the extraction layer and never
// mutated; overlay processing replaces a span rather than editing it.
type Span struct {
	Text string
	Rect Rect
}

// FieldType represents the type of an interactive form field
type FieldType int

const (
	FieldTypeOther FieldType = iota
	FieldTypeText
	FieldTypeComboBox
	FieldTypeCheckBox
)

func (ft FieldType) String() string {
	switch ft {
	case FieldTypeText:
		return "Text"
	case FieldTypeComboBox:
		return "ComboBox"
	case FieldTypeCheckBox:
		return "CheckBox"
	default:
		return "Other"
	}
}

// Widget is the minimal view of an interactive form field that the pipeline
// consumes. The concrete field object is owned by the extraction layer; the
// pipeline only ever holds references, so any type carrying a name, a type,
// a value, and a rectangle can participate.
type Widget interface {
	FieldName() string
	FieldType() FieldType
	FieldValue() string
	Rect() Rect
}

// FormField is the stock Widget implementation used by the extraction
// contract and by tests.
type FormField struct {
	Name  string
	Type  FieldType
	Value string
	BBox  Rect
}

func (f *FormField) FieldName() string    { return f.Name }
func (f *FormField) FieldType() FieldType { return f.Type }
func (f *FormField) FieldValue() string   { return f.Value }
func (f *FormField) Rect() Rect           { return f.BBox }

// ElementKind discriminates the two element variants
type ElementKind int

const (
	KindText ElementKind = iota
	KindField
)

func (k ElementKind) String() string {
	switch k {
	case KindField:
		return "Field"
	default:
		return "Text"
	}
}

// Element is one positioned item on a page: a text span or a form field.
// Exactly two implementations exist, [TextElement] and [FieldElement];
// switches over [Element.Kind] cover every case.
type Element interface {
	Kind() ElementKind
	Rect() Rect
}

// TextElement wraps a Span as a line element
type TextElement struct {
	Span Span
}

func (e *TextElement) Kind() ElementKind { return KindText }
func (e *TextElement) Rect() Rect        { return e.Span.Rect }

// FieldElement wraps a form-field reference as a line element
type FieldElement struct {
	Widget Widget
}

func (e *FieldElement) Kind() ElementKind { return KindField }
func (e *FieldElement) Rect() Rect        { return e.Widget.Rect() }

// Placeholder and checkbox display values.
const (
	NotFilled   = "N/A"
	CheckboxOn  = "ON"
	CheckboxOff = "OFF"
)

// DisplayValue renders the text a widget contributes to output. Text and
// ComboBox fields yield their value, or [NotFilled] when the value is empty;
// CheckBox fields yield [CheckboxOn] or [CheckboxOff]; any other field type
// yields the empty string. With withLabel set the result is prefixed with
// "field_name: " so downstream consumers can trace the originating field.
func DisplayValue(w Widget, withLabel bool) string {
	var value string
	switch w.FieldType() {
	case FieldTypeText, FieldTypeComboBox:
		value = w.FieldValue()
		if value == "" {
			value = NotFilled
		}
	case FieldTypeCheckBox:
		if w.FieldValue() == "" {
			value = CheckboxOff
		} else {
			value = CheckboxOn
		}
	default:
		return ""
	}

	if withLabel {
		return w.FieldName() + ": " + value
	}
	return value
}
