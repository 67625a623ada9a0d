package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ppiankov/paperlens/internal/analyze"
	"github.com/ppiankov/paperlens/internal/cache"
	"github.com/ppiankov/paperlens/internal/chunk"
	"github.com/ppiankov/paperlens/internal/llm"
	"github.com/ppiankov/paperlens/internal/server"
	"github.com/ppiankov/paperlens/internal/transcript"
)

var (
	serveHost string
	servePort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP analysis service",
	Long: `Serve starts the HTTP service exposing:
  GET /         landing page
  GET /papers   fetch, analyze and render the latest papers
  GET /healthz  liveness probe

Example:
  paperlens serve
  paperlens serve --port 9000`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveHost, "host", "", "bind address (default from config)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "listen port (default from config)")

	_ = viper.BindPFlag("server.host", serveCmd.Flags().Lookup("host"))
	_ = viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serveHost != "" {
		cfg.Server.Host = serveHost
	}
	if servePort != 0 {
		cfg.Server.Port = servePort
	}

	logger := newLogger(cfg.Project.Debug)

	summarizer, err := llm.NewSummarizer(cfg.LLM, logger)
	if err != nil {
		return fmt.Errorf("configure summarizer: %w", err)
	}

	analyzer := analyze.NewAnalyzer(cfg, summarizer, logger)

	var c *cache.Cache
	if cfg.Cache.Enabled {
		c = cache.New(cfg.Cache.TTL)
	}
	tc := transcript.NewClient("", cfg.HTTP, c)
	ta := transcript.NewAnalyzer(tc, chunk.NewChunker(cfg.Chunk.Size), summarizer, logger)

	srv := server.New(cfg, analyzer, ta, summarizer.PrimaryName(), logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return srv.ListenAndServe(ctx)
}
