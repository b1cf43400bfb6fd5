// Package validate checks collected form-field values against the limits a
// downstream reviewer imposes. Problems are reported as values, a field
// name to error-code map, never as Go errors: an over-long value is a
// finding about the document, not a failure of the parse.
package validate

import (
	"unicode/utf8"
)

// MaxLength is the error code reported for a field value that exceeds its
// bucket's length cap.
const MaxLength = "Max length"

// explanations maps error codes to reviewer-facing descriptions.
var explanations = map[string]string{
	MaxLength: "Perhaps the line is too long",
}

// Explain returns the human-readable description for an error code.
// Unknown codes pass through unchanged.
func Explain(code string) string {
	if desc, ok := explanations[code]; ok {
		return desc
	}
	return code
}

// Checker validates field values and reports problems as a field name to
// error-code map. Fields inside detected tables and free-standing fields
// are checked separately because they carry different limits.
type Checker interface {
	Check(textFields, tableFields map[string]string) map[string]string
}

// Config holds configuration for length validation
type Config struct {
	// MaxTableLen is the value-length cap, in characters, for fields
	// referenced from a table row (default: 70)
	MaxTableLen int

	// MaxTextLen is the value-length cap, in characters, for free-standing
	// fields (default: 120)
	MaxTextLen int
}

// DefaultConfig returns sensible default configuration
func DefaultConfig() Config {
	return Config{
		MaxTableLen: 70,
		MaxTextLen:  120,
	}
}

// Lengths is the stock Checker: it flags values longer than their bucket's
// cap. Table cells are narrower than free-flowing lines, so the table cap
// is the tighter of the two.
type Lengths struct {
	config Config
}

// NewLengths creates a length checker with default configuration
func NewLengths() *Lengths {
	return &Lengths{
		config: DefaultConfig(),
	}
}

// NewLengthsWithConfig creates a length checker with custom configuration
func NewLengthsWithConfig(config Config) *Lengths {
	return &Lengths{
		config: config,
	}
}

// Check validates both buckets and returns a map of offending field names
// to error codes. Lengths are counted in runes, not bytes, so multi-byte
// values are not penalized.
func (l *Lengths) Check(textFields, tableFields map[string]string) map[string]string {
	problems := make(map[string]string)

	for name, value := range tableFields {
		if utf8.RuneCountInString(value) > l.config.MaxTableLen {
			problems[name] = MaxLength
		}
	}
	for name, value := range textFields {
		if utf8.RuneCountInString(value) > l.config.MaxTextLen {
			problems[name] = MaxLength
		}
	}

	return problems
}
