package rag

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// ExportFormat defines the available export formats
type ExportFormat int

const (
	// ExportFormatJSONL exports as JSON Lines (one JSON object per line)
	ExportFormatJSONL ExportFormat = iota
	// ExportFormatJSON exports as a JSON array
	ExportFormatJSON
)

// String returns a human-readable representation of the export format
func (ef ExportFormat) String() string {
	switch ef {
	case ExportFormatJSONL:
		return "jsonl"
	case ExportFormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ExportConfig holds configuration options for export
type ExportConfig struct {
	// Format specifies the export format
	Format ExportFormat

	// PrettyPrint enables indented output for the JSON array format
	PrettyPrint bool
}

// DefaultExportConfig returns sensible defaults for export configuration
func DefaultExportConfig() ExportConfig {
	return ExportConfig{
		Format:      ExportFormatJSONL,
		PrettyPrint: false,
	}
}

// Exporter handles exporting chunks to the supported formats
type Exporter struct {
	config ExportConfig
}

// NewExporter creates a new exporter with default configuration
func NewExporter() *Exporter {
	return &Exporter{
		config: DefaultExportConfig(),
	}
}

// NewExporterWithConfig creates an exporter with custom configuration
func NewExporterWithConfig(config ExportConfig) *Exporter {
	return &Exporter{
		config: config,
	}
}

// Export writes chunks to the writer in the configured format
func (e *Exporter) Export(chunks []*Chunk, w io.Writer) error {
	switch e.config.Format {
	case ExportFormatJSONL:
		return e.exportJSONL(chunks, w)
	case ExportFormatJSON:
		return e.exportJSON(chunks, w)
	default:
		return fmt.Errorf("unsupported export format: %v", e.config.Format)
	}
}

// ExportToString exports chunks to a string
func (e *Exporter) ExportToString(chunks []*Chunk) (string, error) {
	var buf bytes.Buffer
	if err := e.Export(chunks, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// exportJSONL writes one JSON object per line, the format vector stores
// commonly ingest.
func (e *Exporter) exportJSONL(chunks []*Chunk, w io.Writer) error {
	enc := json.NewEncoder(w)
	for _, chunk := range chunks {
		if err := enc.Encode(chunk); err != nil {
			return fmt.Errorf("encoding chunk %s: %w", chunk.ID, err)
		}
	}
	return nil
}

// exportJSON writes all chunks as a single JSON array
func (e *Exporter) exportJSON(chunks []*Chunk, w io.Writer) error {
	enc := json.NewEncoder(w)
	if e.config.PrettyPrint {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(chunks); err != nil {
		return fmt.Errorf("encoding chunks: %w", err)
	}
	return nil
}

// ChunkCollection extension for export

// ToJSONL exports the collection as JSON Lines
func (cc *ChunkCollection) ToJSONL() (string, error) {
	exporter := NewExporter()
	return exporter.ExportToString(cc.Chunks)
}

// WriteJSONL streams the collection as JSON Lines to w
func (cc *ChunkCollection) WriteJSONL(w io.Writer) error {
	exporter := NewExporter()
	return exporter.Export(cc.Chunks, w)
}

// ToJSON exports the collection as a pretty-printed JSON array
func (cc *ChunkCollection) ToJSON() (string, error) {
	exporter := NewExporterWithConfig(ExportConfig{
		Format:      ExportFormatJSON,
		PrettyPrint: true,
	})
	return exporter.ExportToString(cc.Chunks)
}
