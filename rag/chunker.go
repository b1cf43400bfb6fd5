package rag

import (
	"fmt"
	"strings"
)

// PageText is one rendered page handed to the chunker: its 1-indexed page
// number, its full text render, and whether a table was detected on it.
type PageText struct {
	Page     int
	Text     string
	HasTable bool
}

// ChunkMetadata contains contextual information about a chunk's place in
// the document.
type ChunkMetadata struct {
	// PageStart is the starting page number (1-indexed)
	PageStart int `json:"page_start"`

	// PageEnd is the ending page number (1-indexed)
	PageEnd int `json:"page_end"`

	// ChunkIndex is the position of this chunk in the document (0-indexed)
	ChunkIndex int `json:"chunk_index"`

	// TotalChunks is the total number of chunks in the document
	TotalChunks int `json:"total_chunks,omitempty"`

	// HasTable indicates if a table was detected on any page the chunk spans
	HasTable bool `json:"has_table,omitempty"`

	// CharCount is the number of bytes in the chunk text
	CharCount int `json:"char_count"`

	// WordCount is the number of words in the chunk text
	WordCount int `json:"word_count"`

	// EstimatedTokens is an estimated token count (chars/4 as rough approximation)
	EstimatedTokens int `json:"estimated_tokens"`
}

// Chunk represents one unit of document text prepared for embedding.
type Chunk struct {
	// ID is a unique identifier for this chunk
	ID string `json:"id"`

	// Text is the chunk content
	Text string `json:"text"`

	// Metadata contains contextual information
	Metadata ChunkMetadata `json:"metadata"`
}

// NewChunk creates a chunk with the given text and metadata, filling in the
// text statistics.
func NewChunk(id, text string, metadata ChunkMetadata) *Chunk {
	metadata.CharCount = len(text)
	metadata.WordCount = countWords(text)
	metadata.EstimatedTokens = len(text) / 4 // Rough approximation

	return &Chunk{
		ID:       id,
		Text:     text,
		Metadata: metadata,
	}
}

// countWords counts whitespace-separated words
func countWords(text string) int {
	return len(strings.Fields(text))
}

// ChunkerConfig holds configuration options for the chunker
type ChunkerConfig struct {
	// TargetChunkSize is the target size for chunks in characters.
	// A page that would push the open chunk past this starts a new one.
	// Default: 1000
	TargetChunkSize int

	// MaxChunkSize is the hard limit for chunk size in characters.
	// A single page larger than this is split between lines.
	// Default: 2000
	MaxChunkSize int

	// MinChunkSize is the minimum size for a chunk in characters.
	// A smaller trailing chunk is merged into its predecessor when the
	// merge stays under MaxChunkSize.
	// Default: 100
	MinChunkSize int

	// IDPrefix is a prefix for generated chunk IDs
	// Default: "chunk"
	IDPrefix string
}

// DefaultChunkerConfig returns sensible default configuration
func DefaultChunkerConfig() ChunkerConfig {
	return ChunkerConfig{
		TargetChunkSize: 1000,
		MaxChunkSize:    2000,
		MinChunkSize:    100,
		IDPrefix:        "chunk",
	}
}

// Chunker splits rendered pages into chunks along page boundaries.
type Chunker struct {
	config ChunkerConfig
}

// NewChunker creates a new chunker with default configuration
func NewChunker() *Chunker {
	return &Chunker{
		config: DefaultChunkerConfig(),
	}
}

// NewChunkerWithConfig creates a chunker with custom configuration
func NewChunkerWithConfig(config ChunkerConfig) *Chunker {
	return &Chunker{
		config: config,
	}
}

// Chunk groups the rendered pages into chunks. Consecutive pages accumulate
// until the next page would push the chunk past the target size; a page
// larger than the hard cap is split between its lines instead. Page order
// is preserved and chunk text concatenates exactly to the document text.
func (c *Chunker) Chunk(pages []PageText) *ChunkCollection {
	var chunks []*Chunk
	index := 0

	var open []PageText
	size := 0

	flush := func() {
		if len(open) == 0 {
			return
		}
		chunks = append(chunks, c.newChunk(&index, open))
		open = nil
		size = 0
	}

	for _, pt := range pages {
		if len(pt.Text) > c.config.MaxChunkSize {
			flush()
			chunks = append(chunks, c.splitPage(&index, pt)...)
			continue
		}
		if size > 0 && size+len(pt.Text) > c.config.TargetChunkSize {
			flush()
		}
		open = append(open, pt)
		size += len(pt.Text)
	}
	flush()

	chunks = c.mergeShortTail(chunks)

	for _, chunk := range chunks {
		chunk.Metadata.TotalChunks = len(chunks)
	}

	return NewChunkCollection(chunks)
}

// newChunk builds one chunk from a run of consecutive pages and advances
// the chunk index.
func (c *Chunker) newChunk(index *int, pages []PageText) *Chunk {
	var sb strings.Builder
	hasTable := false
	for _, pt := range pages {
		sb.WriteString(pt.Text)
		hasTable = hasTable || pt.HasTable
	}

	chunk := NewChunk(
		fmt.Sprintf("%s-%d", c.config.IDPrefix, *index),
		sb.String(),
		ChunkMetadata{
			PageStart:  pages[0].Page,
			PageEnd:    pages[len(pages)-1].Page,
			ChunkIndex: *index,
			HasTable:   hasTable,
		},
	)
	*index++
	return chunk
}

// splitPage breaks an oversized page render into multiple chunks, splitting
// only between lines. A single line longer than the target still becomes
// one chunk; line coherence wins over the size target.
func (c *Chunker) splitPage(index *int, pt PageText) []*Chunk {
	var chunks []*Chunk
	var sb strings.Builder

	flush := func() {
		if sb.Len() == 0 {
			return
		}
		chunk := NewChunk(
			fmt.Sprintf("%s-%d", c.config.IDPrefix, *index),
			sb.String(),
			ChunkMetadata{
				PageStart:  pt.Page,
				PageEnd:    pt.Page,
				ChunkIndex: *index,
				HasTable:   pt.HasTable,
			},
		)
		*index++
		chunks = append(chunks, chunk)
		sb.Reset()
	}

	lines := strings.Split(pt.Text, "\n")
	for i, line := range lines {
		unit := line
		if i < len(lines)-1 {
			unit += "\n"
		}
		if sb.Len() > 0 && sb.Len()+len(unit) > c.config.TargetChunkSize {
			flush()
		}
		sb.WriteString(unit)
	}
	flush()

	return chunks
}

// mergeShortTail folds a final chunk shorter than the minimum size into its
// predecessor, provided the merged chunk stays within the hard cap.
func (c *Chunker) mergeShortTail(chunks []*Chunk) []*Chunk {
	n := len(chunks)
	if n < 2 {
		return chunks
	}

	last, prev := chunks[n-1], chunks[n-2]
	if last.Metadata.CharCount >= c.config.MinChunkSize {
		return chunks
	}
	if prev.Metadata.CharCount+last.Metadata.CharCount > c.config.MaxChunkSize {
		return chunks
	}

	merged := NewChunk(prev.ID, prev.Text+last.Text, ChunkMetadata{
		PageStart:  prev.Metadata.PageStart,
		PageEnd:    last.Metadata.PageEnd,
		ChunkIndex: prev.Metadata.ChunkIndex,
		HasTable:   prev.Metadata.HasTable || last.Metadata.HasTable,
	})
	return append(chunks[:n-2], merged)
}
