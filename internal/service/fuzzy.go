package service

import (
	"strings"

	"github.com/AanV03/Chatbot/internal/domain"
)

// DefaultFuzzyMinScore is deliberately permissive: the fuzzy pass is a
// secondary signal consulted only when exact scoring was inconclusive, and
// an accepted match never carries its raw score forward.
const DefaultFuzzyMinScore = 60

// FuzzyMatch is the best approximate candidate and its 0-100 score.
type FuzzyMatch struct {
	Record domain.KnowledgeRecord
	Score  int
}

// FuzzyMatcher ranks records by approximate similarity of the query against
// their key phrase and subtopic fields.
type FuzzyMatcher struct {
	minScore int
}

func NewFuzzyMatcher() *FuzzyMatcher {
	return &FuzzyMatcher{minScore: DefaultFuzzyMinScore}
}

// Best returns the single best-ranked candidate if it clears the threshold.
// Earlier records win ties.
func (m *FuzzyMatcher) Best(query string, records []domain.KnowledgeRecord) (*FuzzyMatch, bool) {
	best := -1
	var bestRec domain.KnowledgeRecord
	for _, rec := range records {
		score := approxScore(query, rec.KeyPhrase)
		if s := approxScore(query, rec.Subtopic); s > score {
			score = s
		}
		if score > best {
			best = score
			bestRec = rec
		}
	}
	if best < m.minScore {
		return nil, false
	}
	return &FuzzyMatch{Record: bestRec, Score: best}, true
}

// approxScore rates how well query matches target on a 0-100 scale,
// combining exact, prefix, substring and edit-distance evidence.
func approxScore(query, target string) int {
	q := fold(strings.TrimSpace(query))
	t := fold(strings.TrimSpace(target))
	if q == "" || t == "" {
		return 0
	}
	if q == t {
		return 100
	}

	score := 0
	if strings.HasPrefix(t, q) {
		score = 90
	}
	if strings.Contains(t, q) {
		ratio := float64(len(q)) / float64(len(t))
		if s := 60 + int(ratio*25); s > score {
			score = s
		}
	}

	words := strings.Fields(t)
	for _, w := range words {
		if strings.HasPrefix(w, q) && score < 80 {
			score = 80
		}
		// Per-word edit distance catches single-word misspellings.
		if s := int(editSimilarity(q, w) * 70); s > score {
			score = s
		}
	}

	if s := int(editSimilarity(q, t) * 50); s > score {
		score = s
	}
	return score
}

func editSimilarity(a, b string) float64 {
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return 0
	}
	sim := 1.0 - float64(levenshtein(a, b))/float64(longest)
	if sim < 0 {
		return 0
	}
	return sim
}

// levenshtein computes edit distance with a single-row DP.
func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	prev := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr := make([]int, len(b)+1)
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(curr[j-1]+1, min(prev[j]+1, prev[j-1]+cost))
		}
		prev = curr
	}
	return prev[len(b)]
}
