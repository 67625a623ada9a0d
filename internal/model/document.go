package model

import "time"

// Document represents one paper returned by the search API.
// Immutable once fetched.
type Document struct {
	ID        string    `json:"id"`                  // ArXiv identifier (last path segment of the link)
	Title     string    `json:"title"`               // Paper title
	Authors   []string  `json:"authors"`             // Author names in feed order
	Published time.Time `json:"published"`           // Submission date from the feed
	Abstract  string    `json:"abstract"`            // Abstract text from the feed
	Link      string    `json:"link"`                // Canonical /abs/ URL
	Query     string    `json:"query,omitempty"`     // Search query that produced this document
}

// Chunk is a bounded-size segment of document text, produced by the
// chunker and discarded after summarization.
type Chunk struct {
	DocumentID string `json:"document_id"`
	Ordinal    int    `json:"ordinal"` // 0-based position within the document
	Text       string `json:"text"`
}
