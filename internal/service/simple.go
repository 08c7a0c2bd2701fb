package service

import (
	"context"
	"strings"

	"github.com/AanV03/Chatbot/internal/domain"
)

// SimpleMatcher is the last-resort tier: a corpus-wide stopword-filtered
// overlap scan, independent of any topic or subtopic filtering.
type SimpleMatcher struct {
	knowledge domain.KnowledgeStore
	stopwords map[string]struct{}
	threshold float64
}

func NewSimpleMatcher(knowledge domain.KnowledgeStore, lexicon *Lexicon, cal Calibration) *SimpleMatcher {
	return &SimpleMatcher{
		knowledge: knowledge,
		stopwords: lexicon.Stopwords,
		threshold: cal.SimpleMatch,
	}
}

// Match returns the best record's answer text if its overlap ratio reaches
// the threshold. Stopwords and tokens shorter than three characters are
// discarded before scoring.
func (m *SimpleMatcher) Match(ctx context.Context, queryText string) (string, bool, error) {
	var content []string
	for _, t := range tokenize(queryText) {
		if len(t) < 3 {
			continue
		}
		if _, stop := m.stopwords[t]; stop {
			continue
		}
		content = append(content, t)
	}
	qSet := make(map[string]struct{}, len(content))
	for _, t := range content {
		qSet[t] = struct{}{}
	}
	if len(qSet) == 0 {
		return "", false, nil
	}

	records, err := m.knowledge.FindAll(ctx)
	if err != nil {
		return "", false, err
	}

	bestScore := 0.0
	bestAnswer := ""
	for _, rec := range records {
		ref := tokenSet(strings.Join([]string{
			rec.Subtopic,
			strings.Join(rec.Keywords, " "),
			rec.KeyPhrase,
			rec.Description,
			rec.Examples,
		}, " "))

		matched := 0
		for t := range qSet {
			if _, ok := ref[t]; ok {
				matched++
			}
		}
		if score := float64(matched) / float64(len(qSet)); score > bestScore {
			bestScore = score
			bestAnswer = rec.AnswerText
		}
	}

	if bestScore >= m.threshold {
		return bestAnswer, true, nil
	}
	return "", false, nil
}
