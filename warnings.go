package pdfparse

import (
	"fmt"
	"strings"
)

// Warning describes a non-fatal issue encountered while assembling a page.
// Warnings indicate that processing succeeded but results may be imperfect,
// such as a table whose header carries no columns.
type Warning struct {
	Page    int    // 1-indexed page number the warning applies to
	Message string // Human-readable description
}

// String returns the warning as "page N: message".
func (w Warning) String() string {
	return fmt.Sprintf("page %d: %s", w.Page, w.Message)
}

// FormatWarnings renders a warning list as a single semicolon-separated
// string, suitable for logging.
//
// Example:
//
//	text, warnings, err := pdfparse.FromPages(pages).Text()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", pdfparse.FormatWarnings(warnings))
//	}
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
