package minutes

// Minutes is the record extracted from one uploaded recording.
type Minutes struct {
	AbstractSummary string `json:"abstract_summary"`
	KeyPoints       string `json:"key_points"`
	ActionItems     string `json:"action_items"`
	Sentiment       string `json:"sentiment"`
	Transcript      string `json:"transcript"`
}

// Section is one heading/body pair of the exported document.
type Section struct {
	Heading string
	Body    string
}

// Sections lists the document sections in export order. The transcript is
// appended only when present.
func (m Minutes) Sections() []Section {
	out := []Section{
		{Heading: "Abstract Summary", Body: m.AbstractSummary},
		{Heading: "Key Points", Body: m.KeyPoints},
		{Heading: "Action Items", Body: m.ActionItems},
		{Heading: "Sentiment", Body: m.Sentiment},
	}
	if m.Transcript != "" {
		out = append(out, Section{Heading: "Transcript", Body: m.Transcript})
	}
	return out
}
