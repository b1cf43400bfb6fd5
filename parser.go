package pdfparse

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"github.com/AlexGrytsai/DivorceLawyerAssistant-sub000/export"
	"github.com/AlexGrytsai/DivorceLawyerAssistant-sub000/layout"
	"github.com/AlexGrytsai/DivorceLawyerAssistant-sub000/model"
	"github.com/AlexGrytsai/DivorceLawyerAssistant-sub000/overlay"
	"github.com/AlexGrytsai/DivorceLawyerAssistant-sub000/rag"
	"github.com/AlexGrytsai/DivorceLawyerAssistant-sub000/tables"
)

// parsedPage holds the data assembled from a single page.
type parsedPage struct {
	index    int
	page     *model.Page
	text     string
	warnings []Warning
}

// Parser provides a fluent interface for assembling scraped page data into
// reading-order text, detected tables, and a form-field value map.
// Each configuration method returns a new Parser instance, making it
// safe for concurrent use and allowing method chaining.
type Parser struct {
	// Source
	pages []model.ScrapedPage

	// Configuration
	options ParseOptions
}

// clone creates a copy of the Parser with a copy of options.
// This ensures immutability - each chain method returns a new instance.
func (p *Parser) clone() *Parser {
	return &Parser{
		pages:   p.pages,
		options: p.options.clone(),
	}
}

// ============================================================================
// Configuration Methods (return new Parser instance)
// ============================================================================

// WithFieldLabels configures all renders to prefix field values with their
// field name, as in "[first_name: Jane]". Tables switch from the aligned
// grid layout to the pipe layout. This is the mode consumed by automated
// document reviewers, which need to know which field produced each value.
//
// Example:
//
//	text, _, err := pdfparse.FromPages(pages).WithFieldLabels().Text()
func (p *Parser) WithFieldLabels() *Parser {
	newP := p.clone()
	newP.options.withLabels = true
	return newP
}

// Parallel configures the parser to assemble pages concurrently. Pages are
// mutually independent, so output is identical to a sequential parse; page
// order in the output is input order regardless of completion order.
//
// Example:
//
//	res, _, err := pdfparse.FromPages(pages).Parallel().Result()
func (p *Parser) Parallel() *Parser {
	newP := p.clone()
	newP.options.parallel = true
	return newP
}

// Normalize configures the parser to apply NFKC normalization to span text
// at ingestion, folding ligatures and width variants the extraction layer
// sometimes emits. Off by default so pipeline output stays byte-exact with
// the raw input.
func (p *Parser) Normalize() *Parser {
	newP := p.clone()
	newP.options.normalize = true
	return newP
}

// WithLogger attaches a zap logger for debug-level pipeline tracing. A nil
// logger disables tracing (the default).
func (p *Parser) WithLogger(logger *zap.Logger) *Parser {
	newP := p.clone()
	if logger == nil {
		logger = zap.NewNop()
	}
	newP.options.logger = logger
	return newP
}

// ============================================================================
// Terminal Operations (execute the parse and return results)
// ============================================================================

// ParseResult is the complete output of a parse: the document's rendered
// text and the collected form-field values.
type ParseResult struct {
	Text   string
	Fields *FieldValues
}

// FieldValues maps field names to the values of filled Text fields, split
// into two buckets: fields referenced from a detected table row and
// free-standing fields. A name recorded in the Table bucket is not repeated
// in the Text bucket. The buckets carry distinct validation limits.
type FieldValues struct {
	Text  map[string]string
	Table map[string]string
}

// Result runs the parse and returns the rendered document text together
// with the field-value buckets.
//
// Returns the result, any warnings encountered during processing, and an
// error if the parse failed. Warnings indicate non-fatal issues (e.g., a
// table with no header columns) where assembly succeeded but results may
// be imperfect.
//
// Example:
//
//	res, warnings, err := pdfparse.FromPages(pages).Result()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", pdfparse.FormatWarnings(warnings))
//	}
func (p *Parser) Result() (*ParseResult, []Warning, error) {
	parsed, warnings := p.run()

	doc := model.NewDocument()
	var sb strings.Builder
	for _, pp := range parsed {
		doc.AddPage(pp.page)
		sb.WriteString(pp.text)
	}

	return &ParseResult{
		Text:   sb.String(),
		Fields: collectFields(doc),
	}, warnings, nil
}

// Text runs the parse and returns the rendered document text only. Page
// renders are concatenated in input order.
//
// Example:
//
//	text, warnings, err := pdfparse.FromPages(pages).Text()
func (p *Parser) Text() (string, []Warning, error) {
	parsed, warnings := p.run()

	var sb strings.Builder
	for _, pp := range parsed {
		sb.WriteString(pp.text)
	}
	return sb.String(), warnings, nil
}

// Fields runs the parse and returns the field-value buckets only.
//
// Example:
//
//	fields, _, err := pdfparse.FromPages(pages).Fields()
//	for name, value := range fields.Text {
//	    fmt.Println(name, "=", value)
//	}
func (p *Parser) Fields() (*FieldValues, []Warning, error) {
	doc, warnings, err := p.Document()
	if err != nil {
		return nil, warnings, err
	}
	return collectFields(doc), warnings, nil
}

// Document runs the parse and returns the assembled document model: pages
// with their reading-order lines (field values already merged in), detected
// tables, and widgets. Empty input pages produce no Page entry, so page
// numbers may have gaps.
//
// Example:
//
//	doc, _, err := pdfparse.FromPages(pages).Document()
//	for _, page := range doc.Pages {
//	    fmt.Printf("Page %d: %d lines, %d tables\n", page.Number, len(page.Lines), len(page.Tables))
//	}
func (p *Parser) Document() (*model.Document, []Warning, error) {
	parsed, warnings := p.run()

	doc := model.NewDocument()
	for _, pp := range parsed {
		doc.AddPage(pp.page)
	}
	return doc, warnings, nil
}

// Chunks runs the parse and splits the rendered text into page-aligned
// chunks suitable for embedding or vector-DB ingestion.
//
// Example:
//
//	chunks, _, err := pdfparse.FromPages(pages).Chunks()
//	jsonl, err := chunks.ToJSONL()
func (p *Parser) Chunks() (*rag.ChunkCollection, []Warning, error) {
	return p.ChunksWithConfig(rag.DefaultChunkerConfig())
}

// ChunksWithConfig is like Chunks but uses custom chunking configuration.
func (p *Parser) ChunksWithConfig(config rag.ChunkerConfig) (*rag.ChunkCollection, []Warning, error) {
	parsed, warnings := p.run()

	pageTexts := make([]rag.PageText, 0, len(parsed))
	for _, pp := range parsed {
		pageTexts = append(pageTexts, rag.PageText{
			Page:     pp.page.Number,
			Text:     pp.text,
			HasTable: len(pp.page.Tables) > 0,
		})
	}

	chunker := rag.NewChunkerWithConfig(config)
	return chunker.Chunk(pageTexts), warnings, nil
}

// HTML runs the parse and renders the assembled document as an HTML
// fragment: a section per page, a paragraph per line, a table element per
// detected table.
//
// Example:
//
//	html, _, err := pdfparse.FromPages(pages).HTML()
func (p *Parser) HTML() (string, []Warning, error) {
	doc, warnings, err := p.Document()
	if err != nil {
		return "", warnings, err
	}

	html, err := export.DocumentHTML(doc, p.options.withLabels)
	if err != nil {
		return "", warnings, fmt.Errorf("rendering html: %w", err)
	}
	return html, warnings, nil
}

// ============================================================================
// Pipeline
// ============================================================================

// run assembles every page and returns the non-empty ones in input order,
// together with the warnings they produced. With the Parallel option the
// pages are built concurrently; results land in an index-addressed slice so
// ordering never depends on completion order.
func (p *Parser) run() ([]parsedPage, []Warning) {
	results := make([]*parsedPage, len(p.pages))

	if p.options.parallel {
		var wg sync.WaitGroup
		for i := range p.pages {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i] = p.buildPage(i, p.pages[i])
			}(i)
		}
		wg.Wait()
	} else {
		for i := range p.pages {
			results[i] = p.buildPage(i, p.pages[i])
		}
	}

	var parsed []parsedPage
	var warnings []Warning
	for _, r := range results {
		if r == nil {
			continue
		}
		parsed = append(parsed, *r)
		warnings = append(warnings, r.warnings...)
	}
	return parsed, warnings
}

// buildPage runs the assembly pipeline for one scraped page: group elements
// into lines, extract table content, merge field values into the remaining
// lines, then render. Returns nil for pages with no spans and no widgets.
func (p *Parser) buildPage(index int, sp model.ScrapedPage) *parsedPage {
	if sp.IsEmpty() {
		return nil
	}

	if p.options.normalize {
		sp = normalizeSpans(sp)
	}

	builder := layout.NewBuilder()
	proc := tables.NewProcessor()
	ov := overlay.New()

	lines := builder.Build(sp.Elements())
	remaining, tbls := proc.Process(lines, sp.Tables)

	page := model.NewPage(index + 1)
	page.Widgets = sp.Widgets

	for _, line := range remaining {
		page.AddLine(ov.Apply(line, p.options.withLabels))
	}

	var warnings []Warning
	for _, t := range tbls {
		if t.ColCount() == 0 {
			warnings = append(warnings, Warning{
				Page:    page.Number,
				Message: "table has no header columns; its rows render empty",
			})
		}
		page.AddTable(t)
	}

	text := renderPage(page, ov, p.options.withLabels)

	p.options.logger.Debug("page assembled",
		zap.Int("page", page.Number),
		zap.Int("lines", len(page.Lines)),
		zap.Int("tables", len(page.Tables)),
		zap.Int("widgets", len(page.Widgets)))

	return &parsedPage{index: index, page: page, text: text, warnings: warnings}
}

// normalizeSpans applies NFKC normalization to span text. Geometry and
// widget values pass through untouched.
func normalizeSpans(sp model.ScrapedPage) model.ScrapedPage {
	spans := make([]model.Span, len(sp.Spans))
	for i, s := range sp.Spans {
		spans[i] = model.Span{Text: norm.NFKC.String(s.Text), Rect: s.Rect}
	}
	sp.Spans = spans
	return sp
}

// collectFields gathers filled Text fields into the two buckets. The Table
// bucket is built first, across all pages, so a field referenced from a
// table row is never repeated in the Text bucket.
func collectFields(doc *model.Document) *FieldValues {
	fv := &FieldValues{
		Text:  make(map[string]string),
		Table: make(map[string]string),
	}

	for _, page := range doc.Pages {
		for _, t := range page.Tables {
			for _, w := range t.Widgets() {
				if w.FieldType() == model.FieldTypeText && w.FieldValue() != "" {
					fv.Table[w.FieldName()] = w.FieldValue()
				}
			}
		}
	}

	for _, page := range doc.Pages {
		for _, w := range page.TextFields() {
			if _, ok := fv.Table[w.FieldName()]; ok {
				continue
			}
			fv.Text[w.FieldName()] = w.FieldValue()
		}
	}

	return fv
}
