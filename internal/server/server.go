// Package server exposes the analysis pipeline over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/ppiankov/paperlens/internal/analyze"
	"github.com/ppiankov/paperlens/internal/model"
	"github.com/ppiankov/paperlens/internal/render"
	"github.com/ppiankov/paperlens/internal/transcript"
)

// Server holds the wired pipeline and configuration for the HTTP service.
type Server struct {
	cfg          *model.Config
	analyzer     *analyze.Analyzer
	transcripts  *transcript.Analyzer
	providerName string
	logger       zerolog.Logger
}

// New creates a server. providerName is shown on the landing page.
func New(cfg *model.Config, analyzer *analyze.Analyzer, transcripts *transcript.Analyzer, providerName string, logger zerolog.Logger) *Server {
	return &Server{
		cfg:          cfg,
		analyzer:     analyzer,
		transcripts:  transcripts,
		providerName: providerName,
		logger:       logger,
	}
}

// Router builds the chi router with all routes registered.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/", s.handleHome)
	r.Get("/healthz", s.handleHealth)
	r.Get("/papers", s.handlePapers)
	r.Get("/transcript", s.handleTranscript)
	return r
}

// ListenAndServe runs the HTTP server until ctx is canceled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	addr := net.JoinHostPort(s.cfg.Server.Host, strconv.Itoa(s.cfg.Server.Port))
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", addr).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

// statusFor maps the pipeline's two failure kinds onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrSourceUnavailable):
		return http.StatusBadGateway
	case errors.Is(err, model.ErrAnalysisFailed):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) failPage(w http.ResponseWriter, err error) {
	s.logger.Error().Err(err).Msg("pipeline failed")
	status := statusFor(err)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	body := fmt.Sprintf("<h1>Analysis failed</h1><p>%s</p>", err)
	_, _ = w.Write([]byte(render.Page(s.cfg.Project.Name, body)))
}

func (s *Server) writePage(w http.ResponseWriter, title, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(render.Page(title, body)))
}
