package service

import (
	"regexp"
	"sort"
	"strings"

	"github.com/AanV03/Chatbot/internal/domain"
)

var nonWord = regexp.MustCompile(`[^\p{L}\p{N}\s]+`)

// tokenize folds case and diacritics, strips non-word characters and
// splits on whitespace. Folding both sides keeps accented record fields
// comparable with normalized query text.
func tokenize(text string) []string {
	return strings.Fields(nonWord.ReplaceAllString(fold(text), " "))
}

func tokenSet(text string) map[string]struct{} {
	tokens := tokenize(text)
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

// SimilarityScorer computes weighted asymmetric token overlap between a
// query and a record's fields.
type SimilarityScorer struct {
	weights FieldWeights
}

func NewSimilarityScorer(weights FieldWeights) *SimilarityScorer {
	return &SimilarityScorer{weights: weights}
}

// OverlapRatio returns |tokens(query) ∩ tokens(field)| / max(|tokens(query)|, 1).
// Normalizing by the query side only keeps long reference fields from being
// penalized; a query whose tokens are a subset of the field scores 1.0.
func (s *SimilarityScorer) OverlapRatio(query, field string) float64 {
	qSet := tokenSet(query)
	if len(qSet) == 0 {
		return 0
	}
	fSet := tokenSet(field)
	matched := 0
	for t := range qSet {
		if _, ok := fSet[t]; ok {
			matched++
		}
	}
	return float64(matched) / float64(len(qSet))
}

// Score returns the composite score of a record against the query: the
// fixed weighted sum of the four field overlap ratios, in [0,1].
func (s *SimilarityScorer) Score(query string, rec domain.KnowledgeRecord) float64 {
	return s.weights.KeyPhrase*s.OverlapRatio(query, rec.KeyPhrase) +
		s.weights.Description*s.OverlapRatio(query, rec.Description) +
		s.weights.Answer*s.OverlapRatio(query, rec.AnswerText) +
		s.weights.Examples*s.OverlapRatio(query, rec.Examples)
}

// ScoredRecord pairs a record with its composite score.
type ScoredRecord struct {
	domain.KnowledgeRecord
	Score float64 `json:"score"`
}

// RankTop scores every record and returns the top k in descending order.
// The sort is stable with a strict greater-than comparison, so records that
// tie keep their input order.
func (s *SimilarityScorer) RankTop(query string, records []domain.KnowledgeRecord, k int) []ScoredRecord {
	scored := make([]ScoredRecord, 0, len(records))
	for _, rec := range records {
		scored = append(scored, ScoredRecord{KnowledgeRecord: rec, Score: s.Score(query, rec)})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if k > 0 && len(scored) > k {
		scored = scored[:k]
	}
	return scored
}
