// Package pdfparse reconstructs a logical document from the flat, unordered
// geometry a low-level PDF extraction layer produces: positioned text spans,
// interactive form-field widgets, and table bounding boxes. It groups spans
// into reading-order lines, separates tabular content from flowing text,
// segments tables into columns, and merges form-field values into the text
// they visually overlap.
//
// Basic usage:
//
//	text, warnings, err := pdfparse.FromPages(pages).Text()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", pdfparse.FormatWarnings(warnings))
//	}
//
// With options:
//
//	res, _, err := pdfparse.FromPages(pages).
//	    WithFieldLabels().
//	    Parallel().
//	    Result()
//
// For advanced use cases, the lower-level layout, tables, and overlay
// packages are also available.
package pdfparse

import (
	"github.com/AlexGrytsai/DivorceLawyerAssistant-sub000/model"
)

// FromPages creates a Parser over already-scraped page data for fluent
// configuration. The input is not copied; callers must not mutate it until a
// terminal operation has returned.
//
// Example:
//
//	text, warnings, err := pdfparse.FromPages(pages).Text()
func FromPages(pages []model.ScrapedPage) *Parser {
	return &Parser{
		pages:   pages,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	fields := pdfparse.Must(pdfparse.FieldsJSON(pages))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustText is a helper that wraps a call to a terminal operation and panics
// if the error is non-nil. It discards warnings and returns just the value.
// It is intended for use in scripts or tests where error handling would be cumbersome.
//
// Example:
//
//	text := pdfparse.MustText(pdfparse.FromPages(pages).Text())
func MustText[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
