package service

import (
	"github.com/AanV03/Chatbot/internal/domain"
)

// SubtopicHeuristic infers a subtopic from synonym-token votes when no
// record scored well enough to resolve one directly.
type SubtopicHeuristic struct {
	synonyms []SubtopicSynonyms
}

func NewSubtopicHeuristic(lexicon *Lexicon) *SubtopicHeuristic {
	return &SubtopicHeuristic{synonyms: lexicon.SubtopicSynonyms}
}

// Infer counts, per subtopic, how many of its synonym tokens occur in the
// query tokens, and accepts the top-ranked subtopic only if it is the
// unique subtopic with exactly one matching token, or it has two or more
// (ties at two or more go to the first-declared subtopic). The accepted
// label must also be carried by at least one stored record, compared
// case- and diacritic-insensitively, or it is discarded.
func (h *SubtopicHeuristic) Infer(tokens []string, records []domain.KnowledgeRecord) (string, bool) {
	tokSet := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		tokSet[fold(t)] = struct{}{}
	}

	bestLabel := ""
	bestCount := 0
	singles := 0
	for _, syn := range h.synonyms {
		count := 0
		for _, t := range syn.Tokens {
			if _, ok := tokSet[fold(t)]; ok {
				count++
			}
		}
		if count == 1 {
			singles++
		}
		// Strict greater-than: the first declared subtopic keeps ties.
		if count > bestCount {
			bestCount = count
			bestLabel = syn.Label
		}
	}

	switch {
	case bestCount >= 2:
	case bestCount == 1 && singles == 1:
	default:
		return "", false
	}

	folded := fold(bestLabel)
	for _, rec := range records {
		if fold(rec.Subtopic) == folded {
			return bestLabel, true
		}
	}
	return "", false
}
