// Package render converts analyses into Markdown and HTML pages.
package render

import (
	"fmt"
	"strings"

	"github.com/ppiankov/paperlens/internal/model"
)

// Section headers are fixed; tests and downstream consumers rely on them.
var sectionHeaders = []string{
	"Summary",
	"Key Findings",
	"Methodology",
	"Conclusions",
	"Relevance",
	"Technical Details",
}

// Markdown renders the analyzed papers as a Markdown document.
func Markdown(analyses []model.Analysis) string {
	var b strings.Builder
	b.WriteString("# Recent ArXiv LLM Papers Analysis\n\n")

	for _, a := range analyses {
		doc := a.Document
		fmt.Fprintf(&b, "## %s\n\n", doc.Title)
		fmt.Fprintf(&b, "**Authors:** %s\n\n", strings.Join(doc.Authors, ", "))
		if !doc.Published.IsZero() {
			fmt.Fprintf(&b, "**Published:** %s\n\n", doc.Published.Format("2006-01-02"))
		}

		sections := []string{
			a.Summary.Summary,
			a.Summary.KeyFindings,
			a.Summary.Methodology,
			a.Summary.Conclusions,
			a.Summary.Relevance,
			a.Summary.TechnicalDetails,
		}
		for i, header := range sectionHeaders {
			fmt.Fprintf(&b, "### %s\n%s\n\n", header, sections[i])
		}

		if doc.Link != "" {
			fmt.Fprintf(&b, "[Read Full Paper](%s)\n\n", doc.Link)
		}
		b.WriteString("---\n\n")
	}
	return b.String()
}
