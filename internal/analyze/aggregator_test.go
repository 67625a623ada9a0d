package analyze

import (
	"testing"

	"github.com/ppiankov/paperlens/internal/model"
)

func TestMerge_SingleChunkVerbatim(t *testing.T) {
	in := model.SectionedSummary{
		Summary:          "s",
		KeyFindings:      "k",
		Methodology:      "m",
		Conclusions:      "c",
		Relevance:        "r",
		TechnicalDetails: "t",
	}

	got := merge([]model.SectionedSummary{in})
	if got != in {
		t.Errorf("Expected verbatim summary for single chunk, got %+v", got)
	}
}

func TestMerge_ConcatenatesInChunkOrder(t *testing.T) {
	parts := []model.SectionedSummary{
		{Summary: "first", KeyFindings: "finding one"},
		{Summary: "second", KeyFindings: "finding two", Methodology: "only here"},
	}

	got := merge(parts)
	if got.Summary != "first\n\nsecond" {
		t.Errorf("Unexpected merged summary: %q", got.Summary)
	}
	if got.KeyFindings != "finding one\n\nfinding two" {
		t.Errorf("Unexpected merged findings: %q", got.KeyFindings)
	}
	if got.Methodology != "only here" {
		t.Errorf("Expected empty sections to be skipped, got %q", got.Methodology)
	}
	if got.Conclusions != "" {
		t.Errorf("Expected empty conclusions, got %q", got.Conclusions)
	}
}

func TestParseSections(t *testing.T) {
	raw := `{"Overall_Summary":"s","Key_Findings":"k","Methodology":"m",
		"Conclusions":"c","Field_Relevance":"r","Technical_Details":"t"}`

	got, err := parseSections(raw)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got.Summary != "s" || got.KeyFindings != "k" || got.Methodology != "m" ||
		got.Conclusions != "c" || got.Relevance != "r" || got.TechnicalDetails != "t" {
		t.Errorf("Unexpected sections: %+v", got)
	}
}

func TestParseSections_StripsCodeFence(t *testing.T) {
	raw := "```json\n{\"Overall_Summary\":\"fenced\"}\n```"

	got, err := parseSections(raw)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got.Summary != "fenced" {
		t.Errorf("Unexpected summary: %q", got.Summary)
	}
}

func TestParseSections_Invalid(t *testing.T) {
	if _, err := parseSections("not json"); err == nil {
		t.Fatal("Expected error for malformed response")
	}
}
