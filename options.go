package pdfparse

import (
	"go.uber.org/zap"
)

// ParseOptions holds configuration for document assembly.
type ParseOptions struct {
	// Rendering options
	withLabels bool // Prefix field values with "field_name: " in all renders

	// Processing options
	parallel  bool // Assemble pages concurrently
	normalize bool // Apply NFKC normalization to span text at ingestion

	// Diagnostics
	logger *zap.Logger
}

// defaultOptions returns the default parse options.
func defaultOptions() ParseOptions {
	return ParseOptions{
		withLabels: false,
		parallel:   false,
		normalize:  false,
		logger:     zap.NewNop(),
	}
}

// clone creates a copy of ParseOptions. The logger is shared; zap loggers
// are safe for concurrent use.
func (o ParseOptions) clone() ParseOptions {
	return ParseOptions{
		withLabels: o.withLabels,
		parallel:   o.parallel,
		normalize:  o.normalize,
		logger:     o.logger,
	}
}
