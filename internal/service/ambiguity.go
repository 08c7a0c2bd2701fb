package service

import (
	"github.com/AanV03/Chatbot/internal/domain"
)

// AmbiguityClassifier flags a query as ambiguous or out of domain from the
// accumulated evidence. Both booleans are emitted, never thrown; the
// orchestrator decides what to do with them.
type AmbiguityClassifier struct {
	generics map[string]struct{}
	cal      Calibration
}

func NewAmbiguityClassifier(lexicon *Lexicon, cal Calibration) *AmbiguityClassifier {
	generics := make(map[string]struct{}, len(lexicon.GenericSubtopics))
	for _, g := range lexicon.GenericSubtopics {
		generics[fold(g)] = struct{}{}
	}
	return &AmbiguityClassifier{generics: generics, cal: cal}
}

// Classify computes the two booleans independently. Both are monotonic in
// the confidence score: with topic and subtopic held fixed, lowering the
// score can only switch a flag on, never off.
func (c *AmbiguityClassifier) Classify(confidence float64, topic *domain.Topic, subtopic string) (ambiguous, outOfDomain bool) {
	hasTopic := topic != nil
	hasSubtopic := subtopic != ""

	ambiguous = !hasTopic || (confidence < c.cal.WeakMatch && !hasSubtopic)

	_, generic := c.generics[fold(subtopic)]
	outOfDomain = (!hasTopic && !hasSubtopic && confidence < c.cal.OutOfDomain) ||
		(hasSubtopic && generic && confidence < c.cal.OutOfDomain)
	return ambiguous, outOfDomain
}
