package domain

// Reasoning explains how a query analysis arrived at its resolution.
type Reasoning string

const (
	ReasoningStrongMatch       Reasoning = "strong_textual_match"
	ReasoningFuzzyMatch        Reasoning = "fuzzy_match"
	ReasoningSubtopicHeuristic Reasoning = "subtopic_heuristic"
	ReasoningTopicKeyword      Reasoning = "topic_keyword"
	ReasoningNoMatch           Reasoning = "no_match"
)

// QueryAnalysis is the per-query output of the analysis pipeline. It is
// constructed fresh for every incoming query and never mutated after being
// returned.
type QueryAnalysis struct {
	OriginalText   string    `json:"original_text"`
	NormalizedText string    `json:"normalized_text"`
	Intent         Intent    `json:"intent"`
	Topic          *Topic    `json:"topic,omitempty"`
	Subtopic       string    `json:"subtopic,omitempty"`
	Reasoning      Reasoning `json:"reasoning"`
	Confidence     float64   `json:"confidence"`
	IsAmbiguous    bool      `json:"is_ambiguous"`
	IsOutOfDomain  bool      `json:"is_out_of_domain"`
}

// TopicResolved reports whether the analysis settled on a topic.
func (a *QueryAnalysis) TopicResolved() bool {
	return a.Topic != nil
}

// SubtopicResolved reports whether the analysis settled on a subtopic.
func (a *QueryAnalysis) SubtopicResolved() bool {
	return a.Subtopic != ""
}
