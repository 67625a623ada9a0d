package render

import (
	"strings"
	"testing"
	"time"

	"github.com/ppiankov/paperlens/internal/model"
)

func sampleAnalysis() model.Analysis {
	return model.Analysis{
		Document: model.Document{
			ID:        "2401.00001v1",
			Title:     "A Paper",
			Authors:   []string{"Ada Lovelace", "Alan Turing"},
			Published: time.Date(2024, 1, 20, 18, 0, 0, 0, time.UTC),
			Link:      "http://arxiv.org/abs/2401.00001v1",
		},
		Summary: model.SectionedSummary{
			Summary:          "The overview.",
			KeyFindings:      "The findings.",
			Methodology:      "The method.",
			Conclusions:      "The conclusions.",
			Relevance:        "The relevance.",
			TechnicalDetails: "The details.",
		},
		Chunks: 1,
	}
}

func TestMarkdown_SixFixedHeaders(t *testing.T) {
	out := Markdown([]model.Analysis{sampleAnalysis()})

	for _, header := range []string{
		"### Summary", "### Key Findings", "### Methodology",
		"### Conclusions", "### Relevance", "### Technical Details",
	} {
		if !strings.Contains(out, header) {
			t.Errorf("Expected header %q in output", header)
		}
	}
}

func TestMarkdown_Metadata(t *testing.T) {
	out := Markdown([]model.Analysis{sampleAnalysis()})

	if !strings.Contains(out, "## A Paper") {
		t.Error("Expected document title heading")
	}
	if !strings.Contains(out, "**Authors:** Ada Lovelace, Alan Turing") {
		t.Error("Expected comma-joined author list")
	}
	if !strings.Contains(out, "**Published:** 2024-01-20") {
		t.Error("Expected published date")
	}
	if !strings.Contains(out, "[Read Full Paper](http://arxiv.org/abs/2401.00001v1)") {
		t.Error("Expected paper link")
	}
}

func TestMarkdown_MultipleDocumentsInOrder(t *testing.T) {
	first := sampleAnalysis()
	second := sampleAnalysis()
	second.Document.Title = "Z Second Paper"

	out := Markdown([]model.Analysis{first, second})
	if strings.Index(out, "A Paper") > strings.Index(out, "Z Second Paper") {
		t.Error("Expected documents rendered in input order")
	}
}

func TestHTML_ConvertsHeaders(t *testing.T) {
	out, err := HTML("# Title\n\nSome **bold** text.")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(out, "<h1") || !strings.Contains(out, "<strong>bold</strong>") {
		t.Errorf("Unexpected HTML: %q", out)
	}
}

func TestHTML_SanitizesScripts(t *testing.T) {
	out, err := HTML("hello <script>alert(1)</script> world")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if strings.Contains(out, "<script>") {
		t.Errorf("Expected scripts to be stripped, got %q", out)
	}
}

func TestPage_WrapsBody(t *testing.T) {
	out := Page("My Title", "<p>content</p>")
	if !strings.Contains(out, "<title>My Title</title>") {
		t.Error("Expected page title")
	}
	if !strings.Contains(out, "<p>content</p>") {
		t.Error("Expected body content")
	}
	if !strings.Contains(out, "markdown-body") {
		t.Error("Expected markdown-body styling class")
	}
}
