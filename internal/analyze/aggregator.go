package analyze

import (
	"strings"

	"github.com/ppiankov/paperlens/internal/model"
)

// merge combines per-chunk structured responses into one SectionedSummary.
// A single chunk's response is used verbatim; multiple chunks have their
// section text concatenated in chunk order, without deduplication or a
// re-summarization pass.
func merge(parts []model.SectionedSummary) model.SectionedSummary {
	if len(parts) == 1 {
		return parts[0]
	}

	var out model.SectionedSummary
	out.Summary = joinSections(parts, func(s model.SectionedSummary) string { return s.Summary })
	out.KeyFindings = joinSections(parts, func(s model.SectionedSummary) string { return s.KeyFindings })
	out.Methodology = joinSections(parts, func(s model.SectionedSummary) string { return s.Methodology })
	out.Conclusions = joinSections(parts, func(s model.SectionedSummary) string { return s.Conclusions })
	out.Relevance = joinSections(parts, func(s model.SectionedSummary) string { return s.Relevance })
	out.TechnicalDetails = joinSections(parts, func(s model.SectionedSummary) string { return s.TechnicalDetails })
	return out
}

func joinSections(parts []model.SectionedSummary, field func(model.SectionedSummary) string) string {
	var texts []string
	for _, p := range parts {
		if t := strings.TrimSpace(field(p)); t != "" {
			texts = append(texts, t)
		}
	}
	return strings.Join(texts, "\n\n")
}
