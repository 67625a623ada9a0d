package model

// SectionedSummary is the structured result of analyzing one document.
// Field names match the JSON schema the synthesis prompt asks the model for.
type SectionedSummary struct {
	Summary          string `json:"Overall_Summary"`
	KeyFindings      string `json:"Key_Findings"`
	Methodology      string `json:"Methodology"`
	Conclusions      string `json:"Conclusions"`
	Relevance        string `json:"Field_Relevance"`
	TechnicalDetails string `json:"Technical_Details"`
}

// Analysis pairs a document with its summary for rendering.
type Analysis struct {
	Document Document         `json:"document"`
	Summary  SectionedSummary `json:"summary"`
	Chunks   int              `json:"chunks"`          // How many chunks the document was split into
	Model    string           `json:"model,omitempty"` // Model that produced the summary
}
