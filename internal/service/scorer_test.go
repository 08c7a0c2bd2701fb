package service

import (
	"math"
	"testing"

	"github.com/AanV03/Chatbot/internal/domain"
	"github.com/google/uuid"
)

func floatEq(a, b float64) bool {
	return math.Abs(a-b) < 0.0001
}

func TestSimilarityScorer_OverlapRatio(t *testing.T) {
	s := NewSimilarityScorer(DefaultCalibration().Weights)

	// Query tokens fully contained in the field score 1.0 regardless of
	// how long the field is.
	if got := s.OverlapRatio("que es smog", "que es el smog y de donde viene la niebla"); !floatEq(got, 1.0) {
		t.Errorf("expected subset query to score 1.0, got %f", got)
	}

	if got := s.OverlapRatio("smog ozono", "el smog de la ciudad"); !floatEq(got, 0.5) {
		t.Errorf("expected 0.5, got %f", got)
	}

	if got := s.OverlapRatio("", "algo"); got != 0 {
		t.Errorf("expected 0 for empty query, got %f", got)
	}

	// Repeated query tokens count once.
	if got := s.OverlapRatio("smog smog smog", "smog"); !floatEq(got, 1.0) {
		t.Errorf("expected distinct-token semantics, got %f", got)
	}
}

func TestSimilarityScorer_OverlapRatioFoldsFieldText(t *testing.T) {
	s := NewSimilarityScorer(DefaultCalibration().Weights)

	// Corpus fields keep their accents while queries arrive normalized;
	// both sides must fold to the same tokens.
	if got := s.OverlapRatio("que es el smog", "¿Qué es el smog?"); !floatEq(got, 1.0) {
		t.Errorf("expected accented field to fully overlap, got %f", got)
	}
	if got := s.OverlapRatio("particulas suspendidas", "las partículas suspendidas"); !floatEq(got, 1.0) {
		t.Errorf("expected accented tokens to fold, got %f", got)
	}
}

func TestSimilarityScorer_ScoreWeights(t *testing.T) {
	s := NewSimilarityScorer(DefaultCalibration().Weights)

	cases := []struct {
		name string
		rec  domain.KnowledgeRecord
		want float64
	}{
		{"key phrase only", domain.KnowledgeRecord{KeyPhrase: "smog"}, 0.5},
		{"description only", domain.KnowledgeRecord{Description: "smog"}, 0.2},
		{"answer only", domain.KnowledgeRecord{AnswerText: "smog"}, 0.2},
		{"examples only", domain.KnowledgeRecord{Examples: "smog"}, 0.1},
		{"all fields", domain.KnowledgeRecord{KeyPhrase: "smog", Description: "smog", AnswerText: "smog", Examples: "smog"}, 1.0},
		{"no fields", domain.KnowledgeRecord{}, 0.0},
	}
	for _, c := range cases {
		if got := s.Score("smog", c.rec); !floatEq(got, c.want) {
			t.Errorf("%s: Score = %f, want %f", c.name, got, c.want)
		}
	}
}

func TestSimilarityScorer_ScoreBounds(t *testing.T) {
	s := NewSimilarityScorer(DefaultCalibration().Weights)

	rec := domain.KnowledgeRecord{
		KeyPhrase:   "que es el smog",
		Description: "definicion del smog",
		AnswerText:  "el smog es humo y niebla",
		Examples:    "que es el smog",
	}
	for _, q := range []string{"", "que es el smog", "nada relacionado aqui", "smog smog"} {
		got := s.Score(q, rec)
		if got < 0 || got > 1 {
			t.Errorf("Score(%q) = %f out of [0,1]", q, got)
		}
	}
}

func TestSimilarityScorer_RankTop(t *testing.T) {
	s := NewSimilarityScorer(DefaultCalibration().Weights)

	records := []domain.KnowledgeRecord{
		{ID: uuid.New(), KeyPhrase: "nada"},
		{ID: uuid.New(), KeyPhrase: "que es el smog"},
		{ID: uuid.New(), KeyPhrase: "el smog"},
	}

	ranked := s.RankTop("que es el smog", records, 2)
	if len(ranked) != 2 {
		t.Fatalf("expected 2 results, got %d", len(ranked))
	}
	if ranked[0].ID != records[1].ID {
		t.Errorf("expected exact key phrase ranked first")
	}
	if ranked[0].Score < ranked[1].Score {
		t.Errorf("expected descending order: %f then %f", ranked[0].Score, ranked[1].Score)
	}
}

func TestSimilarityScorer_RankTopTieKeepsFirst(t *testing.T) {
	s := NewSimilarityScorer(DefaultCalibration().Weights)

	first := domain.KnowledgeRecord{ID: uuid.New(), KeyPhrase: "que es el smog"}
	second := domain.KnowledgeRecord{ID: uuid.New(), KeyPhrase: "que es el smog"}

	ranked := s.RankTop("que es el smog", []domain.KnowledgeRecord{first, second}, 2)
	if ranked[0].ID != first.ID {
		t.Errorf("expected tie to keep declaration order")
	}
}
