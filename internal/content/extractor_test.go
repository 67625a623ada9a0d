package content

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ppiankov/paperlens/internal/cache"
	"github.com/ppiankov/paperlens/internal/model"
)

func testHTTPConfig() model.HTTPConfig {
	return model.HTTPConfig{
		Timeout:      5 * time.Second,
		UserAgent:    "test-agent",
		MaxBodyBytes: 1 << 20,
	}
}

func TestExtract_ConvertsHTMLPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/robots.txt":
			_, _ = fmt.Fprint(w, "User-agent: *\nAllow: /\n")
		case "/html/2401.11111v1":
			_, _ = fmt.Fprint(w, `<html><body>
				<p>Introduction paragraph.</p>
				<p>Method paragraph.</p>
				<h2>References</h2>
				<p>[1] Something cited.</p>
			</body></html>`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	e := NewExtractor(testHTTPConfig(), nil, zerolog.Nop())
	text, err := e.Extract(context.Background(), server.URL+"/abs/2401.11111v1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !strings.Contains(text, "Introduction paragraph.") {
		t.Errorf("Expected body text, got %q", text)
	}
	if strings.Contains(text, "Something cited") {
		t.Errorf("Expected references section to be stripped, got %q", text)
	}
}

func TestExtract_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			_, _ = fmt.Fprint(w, "User-agent: *\nAllow: /\n")
			return
		}
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	e := NewExtractor(testHTTPConfig(), nil, zerolog.Nop())
	_, err := e.Extract(context.Background(), server.URL+"/abs/2401.11111v1")
	if !errors.Is(err, model.ErrSourceUnavailable) {
		t.Errorf("Expected ErrSourceUnavailable, got %v", err)
	}
}

func TestExtract_RobotsDisallowed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			_, _ = fmt.Fprint(w, "User-agent: *\nDisallow: /html/\n")
			return
		}
		_, _ = fmt.Fprint(w, "<html><body><p>Should not be fetched.</p></body></html>")
	}))
	defer server.Close()

	e := NewExtractor(testHTTPConfig(), nil, zerolog.Nop())
	_, err := e.Extract(context.Background(), server.URL+"/abs/2401.11111v1")
	if !errors.Is(err, model.ErrSourceUnavailable) {
		t.Errorf("Expected ErrSourceUnavailable when robots disallow, got %v", err)
	}
}

func TestExtract_CachesContent(t *testing.T) {
	var pageHits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			_, _ = fmt.Fprint(w, "User-agent: *\nAllow: /\n")
			return
		}
		pageHits.Add(1)
		_, _ = fmt.Fprint(w, "<html><body><p>Cached body.</p></body></html>")
	}))
	defer server.Close()

	e := NewExtractor(testHTTPConfig(), cache.New(time.Minute), zerolog.Nop())
	for i := 0; i < 2; i++ {
		if _, err := e.Extract(context.Background(), server.URL+"/abs/x"); err != nil {
			t.Fatalf("Extract %d failed: %v", i, err)
		}
	}
	if pageHits.Load() != 1 {
		t.Errorf("Expected 1 page fetch with cache enabled, got %d", pageHits.Load())
	}
}

func TestCleanContent(t *testing.T) {
	in := "  Title line  \n\n\nBody text.\n## References\n[1] dropped\n"
	got := cleanContent(in)
	want := "Title line\nBody text."
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestVisibleText_SkipsScripts(t *testing.T) {
	page := `<html><head><script>var x = 1;</script><style>p{}</style></head>
		<body><p>Visible.</p></body></html>`
	got := visibleText(page)
	if !strings.Contains(got, "Visible.") {
		t.Errorf("Expected visible text, got %q", got)
	}
	if strings.Contains(got, "var x") {
		t.Errorf("Expected script content to be skipped, got %q", got)
	}
}
