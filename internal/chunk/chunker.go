// Package chunk splits document text into bounded-size segments so each
// fits a model's context window.
package chunk

import (
	"strings"

	"github.com/ppiankov/paperlens/internal/model"
)

// Chunker splits text into non-overlapping chunks of at most Size characters.
// It prefers paragraph boundaries and falls back to hard truncation for
// paragraphs longer than the limit.
type Chunker struct {
	size int
}

// NewChunker creates a chunker with the given character limit.
func NewChunker(size int) *Chunker {
	if size <= 0 {
		size = 20000
	}
	return &Chunker{size: size}
}

// Split produces the ordered chunks covering text. Text at or under the
// limit comes back as a single chunk equal to the input.
func (c *Chunker) Split(docID, text string) []model.Chunk {
	if len(text) <= c.size {
		return []model.Chunk{{DocumentID: docID, Ordinal: 0, Text: text}}
	}

	var pieces []string
	var current []string
	currentLen := 0

	flush := func() {
		if len(current) > 0 {
			pieces = append(pieces, strings.Join(current, "\n"))
			current = current[:0]
			currentLen = 0
		}
	}

	for _, para := range strings.Split(text, "\n") {
		if len(para) > c.size {
			flush()
			pieces = append(pieces, hardSplit(para, c.size)...)
			continue
		}

		sep := 0
		if len(current) > 0 {
			sep = 1 // joining newline
		}
		if currentLen+sep+len(para) > c.size {
			flush()
			sep = 0
		}
		current = append(current, para)
		currentLen += sep + len(para)
	}
	flush()

	chunks := make([]model.Chunk, len(pieces))
	for i, p := range pieces {
		chunks[i] = model.Chunk{DocumentID: docID, Ordinal: i, Text: p}
	}
	return chunks
}

// hardSplit cuts s into consecutive pieces of at most size characters.
func hardSplit(s string, size int) []string {
	var out []string
	for len(s) > size {
		out = append(out, s[:size])
		s = s[size:]
	}
	return append(out, s)
}
