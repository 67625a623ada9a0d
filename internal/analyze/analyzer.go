// Package analyze orchestrates the content-to-summary pipeline:
// fetch → chunk → prompt → aggregate.
package analyze

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ppiankov/paperlens/internal/arxiv"
	"github.com/ppiankov/paperlens/internal/cache"
	"github.com/ppiankov/paperlens/internal/chunk"
	"github.com/ppiankov/paperlens/internal/content"
	"github.com/ppiankov/paperlens/internal/llm"
	"github.com/ppiankov/paperlens/internal/model"
)

// Analyzer runs the full pipeline for a search query. Documents and chunks
// are processed strictly sequentially.
type Analyzer struct {
	searcher   *arxiv.Client
	extractor  *content.Extractor
	chunker    *chunk.Chunker
	summarizer *llm.Summarizer
	logger     zerolog.Logger
}

// NewAnalyzer wires the pipeline from configuration. The summarizer is
// injected so callers control provider construction.
func NewAnalyzer(cfg *model.Config, summarizer *llm.Summarizer, logger zerolog.Logger) *Analyzer {
	var c *cache.Cache
	if cfg.Cache.Enabled {
		c = cache.New(cfg.Cache.TTL)
	}

	return &Analyzer{
		searcher:   arxiv.NewClient(cfg.ArXiv.BaseURL, cfg.HTTP, c),
		extractor:  content.NewExtractor(cfg.HTTP, c, logger),
		chunker:    chunk.NewChunker(cfg.Chunk.Size),
		summarizer: summarizer,
		logger:     logger,
	}
}

// Run searches for papers and analyzes each in order.
func (a *Analyzer) Run(ctx context.Context, query string, maxResults int) ([]model.Analysis, error) {
	docs, err := a.searcher.Search(ctx, query, maxResults)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	a.logger.Info().Str("query", query).Int("documents", len(docs)).Msg("fetched documents")

	analyses := make([]model.Analysis, 0, len(docs))
	for _, doc := range docs {
		analysis, err := a.AnalyzeDocument(ctx, doc)
		if err != nil {
			return nil, fmt.Errorf("analyze %s: %w", doc.ID, err)
		}
		analyses = append(analyses, analysis)
	}
	return analyses, nil
}

// AnalyzeDocument summarizes one document: full text where an HTML rendition
// exists, the abstract otherwise.
func (a *Analyzer) AnalyzeDocument(ctx context.Context, doc model.Document) (model.Analysis, error) {
	text := a.documentText(ctx, doc)
	if text == "" {
		return model.Analysis{}, fmt.Errorf("document %s has no text: %w", doc.ID, model.ErrSourceUnavailable)
	}

	chunks := a.chunker.Split(doc.ID, text)
	a.logger.Info().Str("document", doc.ID).Int("chunks", len(chunks)).Msg("split document")

	parts := make([]model.SectionedSummary, 0, len(chunks))
	var usedModel string
	for _, ch := range chunks {
		resp, err := a.summarizer.Generate(ctx, chunkAnalysisPrompt, ch.Text, true)
		if err != nil {
			return model.Analysis{}, fmt.Errorf("chunk %d: %w", ch.Ordinal, err)
		}

		section, err := parseSections(resp.Content)
		if err != nil {
			return model.Analysis{}, fmt.Errorf("chunk %d: parse response: %v: %w", ch.Ordinal, err, model.ErrAnalysisFailed)
		}
		parts = append(parts, section)
		usedModel = resp.Model

		a.logger.Debug().Str("document", doc.ID).Int("chunk", ch.Ordinal).Int("of", len(chunks)).Msg("analyzed chunk")
	}

	return model.Analysis{
		Document: doc,
		Summary:  merge(parts),
		Chunks:   len(chunks),
		Model:    usedModel,
	}, nil
}

// documentText prefers the paper's full HTML rendition and falls back to the
// abstract from the feed when extraction fails (many older papers have no
// /html/ version).
func (a *Analyzer) documentText(ctx context.Context, doc model.Document) string {
	if doc.Link != "" {
		text, err := a.extractor.Extract(ctx, doc.Link)
		if err == nil {
			return text
		}
		a.logger.Warn().Err(err).Str("document", doc.ID).Msg("full-text extraction failed, using abstract")
	}
	return doc.Abstract
}

// parseSections decodes the model's JSON response, tolerating a Markdown
// code fence around the object.
func parseSections(s string) (model.SectionedSummary, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	var out model.SectionedSummary
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return model.SectionedSummary{}, err
	}
	return out, nil
}
