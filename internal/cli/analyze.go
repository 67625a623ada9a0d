package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/paperlens/internal/analyze"
	"github.com/ppiankov/paperlens/internal/llm"
	"github.com/ppiankov/paperlens/internal/render"
)

var (
	analyzeQuery   string
	analyzeMax     int
	analyzeOutMD   string
	analyzeOutHTML string
	analyzeTimeout time.Duration
	analyzeNoCache bool
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [query]",
	Short: "Fetch and analyze papers once, writing the report to stdout or a file",
	Long: `Analyze runs the full pipeline one time: searches ArXiv for the
query, extracts paper content, produces LLM summaries and renders
a Markdown report.

Example:
  paperlens analyze
  paperlens analyze --query "retrieval augmented generation" --max 3
  paperlens analyze --md report.md --html report.html`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeQuery, "query", "q", "", "search query (default from config)")
	analyzeCmd.Flags().IntVar(&analyzeMax, "max", 0, "max papers to analyze (default from config)")
	analyzeCmd.Flags().StringVar(&analyzeOutMD, "md", "", "write Markdown report to path (default stdout)")
	analyzeCmd.Flags().StringVar(&analyzeOutHTML, "html", "", "write HTML report to path")
	analyzeCmd.Flags().DurationVar(&analyzeTimeout, "timeout", 10*time.Minute, "overall run timeout")
	analyzeCmd.Flags().BoolVar(&analyzeNoCache, "no-cache", false, "disable cache (force fresh fetch)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if len(args) > 0 {
		cfg.ArXiv.DefaultQuery = args[0]
	}
	if analyzeQuery != "" {
		cfg.ArXiv.DefaultQuery = analyzeQuery
	}
	if analyzeMax > 0 {
		cfg.ArXiv.MaxResults = analyzeMax
	}
	if analyzeNoCache {
		cfg.Cache.Enabled = false
	}

	logger := newLogger(cfg.Project.Debug)

	summarizer, err := llm.NewSummarizer(cfg.LLM, logger)
	if err != nil {
		return fmt.Errorf("configure summarizer: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), analyzeTimeout)
	defer cancel()

	a := analyze.NewAnalyzer(cfg, summarizer, logger)
	analyses, err := a.Run(ctx, cfg.ArXiv.DefaultQuery, cfg.ArXiv.MaxResults)
	if err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}

	markdown := render.Markdown(analyses)

	if analyzeOutMD != "" {
		if err := os.WriteFile(analyzeOutMD, []byte(markdown), 0644); err != nil {
			return fmt.Errorf("write markdown: %w", err)
		}
		fmt.Fprintf(os.Stderr, "✓ Wrote %s\n", analyzeOutMD)
	}

	if analyzeOutHTML != "" {
		body, err := render.HTML(markdown)
		if err != nil {
			return fmt.Errorf("render html: %w", err)
		}
		page := render.Page(cfg.Project.Name, body)
		if err := os.WriteFile(analyzeOutHTML, []byte(page), 0644); err != nil {
			return fmt.Errorf("write html: %w", err)
		}
		fmt.Fprintf(os.Stderr, "✓ Wrote %s\n", analyzeOutHTML)
	}

	if analyzeOutMD == "" && analyzeOutHTML == "" {
		fmt.Println(markdown)
	}
	return nil
}
