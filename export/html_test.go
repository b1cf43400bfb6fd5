package export

import (
	"strings"
	"testing"

	"github.com/AlexGrytsai/DivorceLawyerAssistant-sub000/model"
)

// testDocument builds a one-page document with a line above a one-column,
// one-row table.
func testDocument() *model.Document {
	line := model.NewLine(
		model.NewRect(0, 0, 50, 10),
		&model.TextElement{Span: model.Span{Text: "hello", Rect: model.NewRect(0, 0, 50, 10)}},
	)

	tbl := model.NewTable(
		model.NewRect(0, 50, 100, 100),
		[]string{"Name"},
		[]model.Rect{model.NewRect(0, 50, 100, 60)},
	)
	tbl.AddRow([]model.Cell{
		{&model.TextElement{Span: model.Span{Text: "Jane", Rect: model.NewRect(0, 62, 30, 70)}}},
	})

	page := model.NewPage(1)
	page.AddLine(line)
	page.AddTable(tbl)

	doc := model.NewDocument()
	doc.AddPage(page)
	return doc
}

func TestDocumentHTML(t *testing.T) {
	got, err := DocumentHTML(testDocument(), false)
	if err != nil {
		t.Fatalf("DocumentHTML() error: %v", err)
	}

	want := "<article><section><h2>Page # 1</h2><p>hello</p>" +
		"<table><thead><tr><th>Name</th></tr></thead>" +
		"<tbody><tr><td>Jane</td></tr></tbody></table></section></article>"
	if got != want {
		t.Errorf("DocumentHTML() = %q, want %q", got, want)
	}
}

// Blocks render in top-to-bottom order, so a table above a line comes
// first in the markup even though pages store lines and tables separately.
func TestDocumentHTML_ReadingOrder(t *testing.T) {
	tbl := model.NewTable(
		model.NewRect(0, 10, 100, 40),
		[]string{"H"},
		[]model.Rect{model.NewRect(0, 10, 100, 20)},
	)
	line := model.NewLine(
		model.NewRect(0, 80, 50, 90),
		&model.TextElement{Span: model.Span{Text: "after", Rect: model.NewRect(0, 80, 50, 90)}},
	)

	page := model.NewPage(2)
	page.AddLine(line)
	page.AddTable(tbl)

	doc := model.NewDocument()
	doc.AddPage(page)

	got, err := DocumentHTML(doc, false)
	if err != nil {
		t.Fatalf("DocumentHTML() error: %v", err)
	}

	tableAt := strings.Index(got, "<table>")
	lineAt := strings.Index(got, "<p>after</p>")
	if tableAt < 0 || lineAt < 0 {
		t.Fatalf("DocumentHTML() missing blocks: %q", got)
	}
	if tableAt > lineAt {
		t.Errorf("table at %d should precede line at %d: %q", tableAt, lineAt, got)
	}
}

func TestDocumentHTML_EscapesText(t *testing.T) {
	line := model.NewLine(
		model.NewRect(0, 0, 50, 10),
		&model.TextElement{Span: model.Span{Text: "a & b <c>", Rect: model.NewRect(0, 0, 50, 10)}},
	)
	page := model.NewPage(1)
	page.AddLine(line)

	doc := model.NewDocument()
	doc.AddPage(page)

	got, err := DocumentHTML(doc, false)
	if err != nil {
		t.Fatalf("DocumentHTML() error: %v", err)
	}

	if !strings.Contains(got, "a &amp; b &lt;c&gt;") {
		t.Errorf("DocumentHTML() did not escape text: %q", got)
	}
}

// Unconsumed field elements render bracketed inside their paragraph, with
// the label prefix in label mode.
func TestDocumentHTML_FieldLine(t *testing.T) {
	field := &model.FormField{
		Name:  "agree",
		Type:  model.FieldTypeCheckBox,
		Value: "Yes",
		BBox:  model.NewRect(0, 0, 20, 10),
	}
	line := model.NewLine(model.NewRect(0, 0, 20, 10), &model.FieldElement{Widget: field})

	page := model.NewPage(1)
	page.AddLine(line)

	doc := model.NewDocument()
	doc.AddPage(page)

	plain, err := DocumentHTML(doc, false)
	if err != nil {
		t.Fatalf("DocumentHTML() error: %v", err)
	}
	if !strings.Contains(plain, "<p>[ON]</p>") {
		t.Errorf("plain render = %q, want it to contain %q", plain, "<p>[ON]</p>")
	}

	labeled, err := DocumentHTML(doc, true)
	if err != nil {
		t.Fatalf("DocumentHTML() error: %v", err)
	}
	if !strings.Contains(labeled, "<p>[agree: ON]</p>") {
		t.Errorf("labeled render = %q, want it to contain %q", labeled, "<p>[agree: ON]</p>")
	}
}

func TestDocumentHTML_Empty(t *testing.T) {
	got, err := DocumentHTML(model.NewDocument(), false)
	if err != nil {
		t.Fatalf("DocumentHTML() error: %v", err)
	}
	if got != "<article></article>" {
		t.Errorf("DocumentHTML() on empty document = %q, want %q", got, "<article></article>")
	}
}
