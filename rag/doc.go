// Package rag prepares assembled document text for retrieval-augmented
// generation workflows: it splits the rendered pages into chunks sized for
// embedding and exports them in formats vector stores ingest.
//
// # Chunking
//
// The [Chunker] groups whole page renders into chunks near a target size:
//
//	chunker := rag.NewChunker()
//	chunks := chunker.Chunk(pages)
//
// Chunk boundaries fall on page boundaries whenever possible; only a page
// larger than the hard size cap is split, and then only between lines.
//
// # Chunk Metadata
//
// Each [Chunk] carries metadata for retrieval filtering:
//
//   - Page span (start and end page numbers)
//   - Whether the chunk contains a detected table
//   - Character, word, and estimated token counts
//
// # Export Formats
//
// A [ChunkCollection] exports via:
//
//   - ToJSONL() - JSON Lines, one chunk per line
//   - ToJSON() - a single JSON array
//   - WriteJSONL() - JSON Lines streamed to an io.Writer
package rag
