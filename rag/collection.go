package rag

import (
	"encoding/json"
	"strings"
)

// ChunkCollection provides filtering and search over chunks
type ChunkCollection struct {
	Chunks []*Chunk
}

// NewChunkCollection creates a new collection from chunks
func NewChunkCollection(chunks []*Chunk) *ChunkCollection {
	return &ChunkCollection{Chunks: chunks}
}

// Filter returns chunks matching a predicate
func (cc *ChunkCollection) Filter(predicate func(*Chunk) bool) *ChunkCollection {
	var filtered []*Chunk
	for _, c := range cc.Chunks {
		if predicate(c) {
			filtered = append(filtered, c)
		}
	}
	return &ChunkCollection{Chunks: filtered}
}

// FilterByPage returns chunks whose span covers a specific page
func (cc *ChunkCollection) FilterByPage(page int) *ChunkCollection {
	return cc.Filter(func(c *Chunk) bool {
		return c.Metadata.PageStart <= page && page <= c.Metadata.PageEnd
	})
}

// FilterByPageRange returns chunks whose span overlaps a page range
func (cc *ChunkCollection) FilterByPageRange(startPage, endPage int) *ChunkCollection {
	return cc.Filter(func(c *Chunk) bool {
		return c.Metadata.PageEnd >= startPage && c.Metadata.PageStart <= endPage
	})
}

// FilterWithTables returns chunks containing tables
func (cc *ChunkCollection) FilterWithTables() *ChunkCollection {
	return cc.Filter(func(c *Chunk) bool {
		return c.Metadata.HasTable
	})
}

// Search returns chunks containing a keyword (case-insensitive)
func (cc *ChunkCollection) Search(keyword string) *ChunkCollection {
	keyword = strings.ToLower(keyword)
	return cc.Filter(func(c *Chunk) bool {
		return strings.Contains(strings.ToLower(c.Text), keyword)
	})
}

// Count returns the number of chunks in the collection
func (cc *ChunkCollection) Count() int {
	return len(cc.Chunks)
}

// First returns the first chunk or nil
func (cc *ChunkCollection) First() *Chunk {
	if len(cc.Chunks) == 0 {
		return nil
	}
	return cc.Chunks[0]
}

// Last returns the last chunk or nil
func (cc *ChunkCollection) Last() *Chunk {
	if len(cc.Chunks) == 0 {
		return nil
	}
	return cc.Chunks[len(cc.Chunks)-1]
}

// GetByID returns a chunk by ID
func (cc *ChunkCollection) GetByID(id string) *Chunk {
	for _, c := range cc.Chunks {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// ToSlice returns the underlying slice
func (cc *ChunkCollection) ToSlice() []*Chunk {
	return cc.Chunks
}

// GetPageRange returns the min and max page numbers
func (cc *ChunkCollection) GetPageRange() (int, int) {
	if len(cc.Chunks) == 0 {
		return 0, 0
	}

	minPage := cc.Chunks[0].Metadata.PageStart
	maxPage := cc.Chunks[0].Metadata.PageEnd

	for _, c := range cc.Chunks[1:] {
		if c.Metadata.PageStart < minPage {
			minPage = c.Metadata.PageStart
		}
		if c.Metadata.PageEnd > maxPage {
			maxPage = c.Metadata.PageEnd
		}
	}

	return minPage, maxPage
}

// Statistics returns aggregate statistics about the collection
func (cc *ChunkCollection) Statistics() CollectionStats {
	stats := CollectionStats{
		TotalChunks: len(cc.Chunks),
	}

	if len(cc.Chunks) == 0 {
		return stats
	}

	minTokens := cc.Chunks[0].Metadata.EstimatedTokens
	maxTokens := cc.Chunks[0].Metadata.EstimatedTokens

	for _, c := range cc.Chunks {
		stats.TotalTokens += c.Metadata.EstimatedTokens
		stats.TotalWords += c.Metadata.WordCount
		stats.TotalChars += c.Metadata.CharCount

		if c.Metadata.EstimatedTokens < minTokens {
			minTokens = c.Metadata.EstimatedTokens
		}
		if c.Metadata.EstimatedTokens > maxTokens {
			maxTokens = c.Metadata.EstimatedTokens
		}

		if c.Metadata.HasTable {
			stats.ChunksWithTables++
		}
	}

	stats.AvgTokens = stats.TotalTokens / len(cc.Chunks)
	stats.MinTokens = minTokens
	stats.MaxTokens = maxTokens
	stats.PageStart, stats.PageEnd = cc.GetPageRange()

	return stats
}

// CollectionStats contains aggregate statistics about a chunk collection
type CollectionStats struct {
	TotalChunks      int
	TotalTokens      int
	TotalWords       int
	TotalChars       int
	AvgTokens        int
	MinTokens        int
	MaxTokens        int
	ChunksWithTables int
	PageStart        int
	PageEnd          int
}

// ToJSON serializes stats to JSON
func (cs *CollectionStats) ToJSON() ([]byte, error) {
	return json.Marshal(cs)
}
