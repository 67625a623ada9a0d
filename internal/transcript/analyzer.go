package transcript

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ppiankov/paperlens/internal/chunk"
	"github.com/ppiankov/paperlens/internal/llm"
)

const summaryPrompt = `You are summarizing a podcast or talk transcript. Focus on:
1. Main topics discussed
2. Key insights and takeaways
3. Important quotes or statements
Be concise but thorough.`

// Analyzer summarizes a video's transcript with the configured models.
type Analyzer struct {
	client     *Client
	chunker    *chunk.Chunker
	summarizer *llm.Summarizer
	logger     zerolog.Logger
}

// NewAnalyzer wires the transcript pipeline.
func NewAnalyzer(client *Client, chunker *chunk.Chunker, summarizer *llm.Summarizer, logger zerolog.Logger) *Analyzer {
	return &Analyzer{
		client:     client,
		chunker:    chunker,
		summarizer: summarizer,
		logger:     logger,
	}
}

// Summarize fetches the caption track for the given video URL or ID and
// returns a Markdown summary. Chunks are summarized sequentially and the
// per-chunk summaries concatenated in order.
func (a *Analyzer) Summarize(ctx context.Context, videoURL string) (string, error) {
	videoID, err := ExtractVideoID(videoURL)
	if err != nil {
		return "", err
	}

	segments, err := a.client.Fetch(ctx, videoID, "")
	if err != nil {
		return "", err
	}

	text := Join(segments)
	chunks := a.chunker.Split(videoID, text)
	a.logger.Info().Str("video", videoID).Int("segments", len(segments)).Int("chunks", len(chunks)).Msg("fetched transcript")

	summaries := make([]string, 0, len(chunks))
	for _, ch := range chunks {
		resp, err := a.summarizer.Generate(ctx, summaryPrompt, ch.Text, false)
		if err != nil {
			return "", fmt.Errorf("chunk %d: %w", ch.Ordinal, err)
		}
		summaries = append(summaries, resp.Content)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Transcript Summary: %s\n\n", videoID)
	b.WriteString(strings.Join(summaries, "\n\n"))
	b.WriteString("\n")
	return b.String(), nil
}
