package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ppiankov/paperlens/internal/render"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	body := fmt.Sprintf(`<h1>%s</h1>
<p>Fetches recent ArXiv papers, analyzes them with an LLM and renders a
structured report.</p>
<p>Default query: <code>%s</code></p>
<p>Primary model: <code>%s</code> via %s, fallback: <code>%s</code></p>
<ul>
	<li><a href="/papers">/papers</a> analyze the latest papers</li>
	<li><a href="/healthz">/healthz</a> liveness probe</li>
</ul>`,
		s.cfg.Project.Name,
		s.cfg.ArXiv.DefaultQuery,
		s.cfg.LLM.PrimaryModel,
		s.providerName,
		s.cfg.LLM.FallbackModel,
	)
	s.writePage(w, s.cfg.Project.Name, body)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) handlePapers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		query = s.cfg.ArXiv.DefaultQuery
	}

	analyses, err := s.analyzer.Run(r.Context(), query, s.cfg.ArXiv.MaxResults)
	if err != nil {
		s.failPage(w, err)
		return
	}

	markdown := render.Markdown(analyses)
	body, err := render.HTML(markdown)
	if err != nil {
		s.failPage(w, err)
		return
	}
	s.writePage(w, s.cfg.Project.Name, body)
}

func (s *Server) handleTranscript(w http.ResponseWriter, r *http.Request) {
	videoURL := r.URL.Query().Get("v")
	if videoURL == "" {
		http.Error(w, "missing v parameter", http.StatusBadRequest)
		return
	}

	markdown, err := s.transcripts.Summarize(r.Context(), videoURL)
	if err != nil {
		s.failPage(w, err)
		return
	}

	body, err := render.HTML(markdown)
	if err != nil {
		s.failPage(w, err)
		return
	}
	s.writePage(w, "Transcript Summary", body)
}
