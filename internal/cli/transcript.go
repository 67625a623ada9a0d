package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/paperlens/internal/cache"
	"github.com/ppiankov/paperlens/internal/chunk"
	"github.com/ppiankov/paperlens/internal/llm"
	"github.com/ppiankov/paperlens/internal/transcript"
)

var (
	transcriptOutMD   string
	transcriptTimeout time.Duration
)

// transcriptCmd represents the transcript command
var transcriptCmd = &cobra.Command{
	Use:   "transcript <video-url>",
	Short: "Summarize a YouTube video transcript",
	Long: `Transcript fetches the caption track for a YouTube video and
produces an LLM summary of its content.

Example:
  paperlens transcript https://www.youtube.com/watch?v=dQw4w9WgXcQ
  paperlens transcript dQw4w9WgXcQ --md summary.md`,
	Args: cobra.ExactArgs(1),
	RunE: runTranscript,
}

func init() {
	rootCmd.AddCommand(transcriptCmd)

	transcriptCmd.Flags().StringVar(&transcriptOutMD, "md", "", "write summary to path (default stdout)")
	transcriptCmd.Flags().DurationVar(&transcriptTimeout, "timeout", 10*time.Minute, "overall run timeout")
}

func runTranscript(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := newLogger(cfg.Project.Debug)

	summarizer, err := llm.NewSummarizer(cfg.LLM, logger)
	if err != nil {
		return fmt.Errorf("configure summarizer: %w", err)
	}

	var c *cache.Cache
	if cfg.Cache.Enabled {
		c = cache.New(cfg.Cache.TTL)
	}
	client := transcript.NewClient("", cfg.HTTP, c)
	analyzer := transcript.NewAnalyzer(client, chunk.NewChunker(cfg.Chunk.Size), summarizer, logger)

	ctx, cancel := context.WithTimeout(context.Background(), transcriptTimeout)
	defer cancel()

	summary, err := analyzer.Summarize(ctx, args[0])
	if err != nil {
		return fmt.Errorf("transcript failed: %w", err)
	}

	if transcriptOutMD != "" {
		if err := os.WriteFile(transcriptOutMD, []byte(summary), 0644); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
		fmt.Fprintf(os.Stderr, "✓ Wrote %s\n", transcriptOutMD)
		return nil
	}

	fmt.Println(summary)
	return nil
}
