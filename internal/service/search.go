package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/AanV03/Chatbot/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// The only two user-visible failure messages; internal errors are never
// surfaced to the end user.
const (
	OutOfDomainAnswer = "Lo siento, eso está fuera de los temas que manejo. Pregúntame sobre el medio ambiente: aire, agua, residuos o salud ambiental."
	NoClearAnswer     = "No encontré una respuesta clara a tu pregunta. ¿Podrías reformularla con otras palabras?"
)

type AnswerOrigin string

const (
	OriginAdvanced AnswerOrigin = "advanced"
	OriginSimple   AnswerOrigin = "simple"
	OriginFallback AnswerOrigin = "fallback"
)

type Answer struct {
	Text       string   `json:"text"`
	Score      *float64 `json:"score,omitempty"`
	Provenance string   `json:"provenance"`
}

type ResolveResult struct {
	Answers  []Answer              `json:"answers"`
	Origin   AnswerOrigin          `json:"origin"`
	Analysis *domain.QueryAnalysis `json:"analysis"`
}

const maxAnswers = 3

// SearchService consumes a query analysis and walks the fallback tiers:
// filter cascade, broad regex recall, simple corpus-wide match, and
// finally the fixed no-answer sentinel with a feedback event.
type SearchService struct {
	knowledge domain.KnowledgeStore
	analyzer  *QueryAnalyzer
	scorer    *SimilarityScorer
	simple    *SimpleMatcher
	feedback  *FeedbackService
	logger    *zap.Logger
}

func NewSearchService(knowledge domain.KnowledgeStore, analyzer *QueryAnalyzer, scorer *SimilarityScorer, simple *SimpleMatcher, feedback *FeedbackService, logger *zap.Logger) *SearchService {
	return &SearchService{
		knowledge: knowledge,
		analyzer:  analyzer,
		scorer:    scorer,
		simple:    simple,
		feedback:  feedback,
		logger:    logger,
	}
}

// Resolve returns up to three ranked answers. It is total for any string
// input: every no-match path terminates in a fixed fallback answer. The
// only propagated errors are knowledge-base read failures.
func (s *SearchService) Resolve(ctx context.Context, queryText, sessionID string) (*ResolveResult, error) {
	analysis, err := s.analyzer.Analyze(ctx, queryText)
	if err != nil {
		return nil, err
	}

	if analysis.IsOutOfDomain {
		s.feedback.EmitUnanswered(ctx, sessionID, queryText, OutOfDomainAnswer, analysis)
		return fallbackResult(analysis, OutOfDomainAnswer, "out-of-domain"), nil
	}

	pool, err := s.filterCascade(ctx, analysis)
	if err != nil {
		return nil, err
	}

	if len(pool) == 0 {
		pool, err = s.broadRecall(ctx, analysis.NormalizedText)
		if err != nil {
			return nil, err
		}
	}

	if len(pool) == 0 {
		answer, ok, err := s.simple.Match(ctx, queryText)
		if err != nil {
			return nil, err
		}
		if ok {
			return &ResolveResult{
				Answers:  []Answer{{Text: answer, Provenance: "simple-match"}},
				Origin:   OriginSimple,
				Analysis: analysis,
			}, nil
		}

		s.feedback.EmitUnanswered(ctx, sessionID, queryText, NoClearAnswer, analysis)
		return fallbackResult(analysis, NoClearAnswer, "no-match"), nil
	}

	ranked := s.scorer.RankTop(analysis.NormalizedText, pool, maxAnswers)
	answers := make([]Answer, 0, len(ranked))
	for _, r := range ranked {
		score := r.Score
		answers = append(answers, Answer{
			Text:       r.AnswerText,
			Score:      &score,
			Provenance: "knowledge-base",
		})
	}

	s.logger.Debug("query resolved",
		zap.String("session_id", sessionID),
		zap.Int("pool_size", len(pool)),
		zap.Int("answers", len(answers)))

	return &ResolveResult{Answers: answers, Origin: OriginAdvanced, Analysis: analysis}, nil
}

// filterCascade tries the knowledge-base filters in strictly decreasing
// specificity, as an explicit ordered list so the fallback order stays
// auditable. The first fully specifiable, non-empty result wins; the pool
// is never narrowed further once found.
func (s *SearchService) filterCascade(ctx context.Context, analysis *domain.QueryAnalysis) ([]domain.KnowledgeRecord, error) {
	var topicID *uuid.UUID
	if analysis.Topic != nil {
		id := analysis.Topic.ID
		topicID = &id
	}
	var subtopic *string
	if analysis.Subtopic != "" {
		st := analysis.Subtopic
		subtopic = &st
	}
	intent := analysis.Intent

	tiers := []struct {
		name        string
		specifiable bool
		filter      domain.KnowledgeFilter
	}{
		{"topic+subtopic+intent", topicID != nil && subtopic != nil, domain.KnowledgeFilter{TopicID: topicID, Subtopic: subtopic, Intent: &intent}},
		{"topic+subtopic", topicID != nil && subtopic != nil, domain.KnowledgeFilter{TopicID: topicID, Subtopic: subtopic}},
		{"subtopic+intent", subtopic != nil, domain.KnowledgeFilter{Subtopic: subtopic, Intent: &intent}},
		{"subtopic", subtopic != nil, domain.KnowledgeFilter{Subtopic: subtopic}},
		{"topic+intent", topicID != nil, domain.KnowledgeFilter{TopicID: topicID, Intent: &intent}},
		{"topic", topicID != nil, domain.KnowledgeFilter{TopicID: topicID}},
	}

	for _, tier := range tiers {
		if !tier.specifiable {
			continue
		}
		records, err := s.knowledge.FindByFilter(ctx, tier.filter)
		if err != nil {
			return nil, err
		}
		if len(records) > 0 {
			s.logger.Debug("filter tier matched",
				zap.String("tier", tier.name),
				zap.Int("records", len(records)))
			return records, nil
		}
	}
	return nil, nil
}

// broadRecall widens the search with a disjunctive pattern built from the
// first five normalized tokens longer than two characters, matched against
// every textual field of every record.
func (s *SearchService) broadRecall(ctx context.Context, normalized string) ([]domain.KnowledgeRecord, error) {
	var terms []string
	for _, tok := range tokenize(normalized) {
		if len(tok) <= 2 {
			continue
		}
		terms = append(terms, regexp.QuoteMeta(tok))
		if len(terms) == 5 {
			break
		}
	}
	if len(terms) == 0 {
		return nil, nil
	}
	pattern := regexp.MustCompile(`(?i)(` + strings.Join(terms, "|") + `)`)

	records, err := s.knowledge.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	// Fields are folded so accented corpus text stays reachable from the
	// already-folded query terms.
	var pool []domain.KnowledgeRecord
	for _, rec := range records {
		if pattern.MatchString(fold(rec.KeyPhrase)) ||
			pattern.MatchString(fold(rec.AnswerText)) ||
			pattern.MatchString(fold(rec.Description)) ||
			pattern.MatchString(fold(rec.Examples)) ||
			matchAny(pattern, rec.Keywords) {
			pool = append(pool, rec)
		}
	}
	return pool, nil
}

func matchAny(pattern *regexp.Regexp, values []string) bool {
	for _, v := range values {
		if pattern.MatchString(fold(v)) {
			return true
		}
	}
	return false
}

func fallbackResult(analysis *domain.QueryAnalysis, text, provenance string) *ResolveResult {
	return &ResolveResult{
		Answers:  []Answer{{Text: text, Provenance: provenance}},
		Origin:   OriginFallback,
		Analysis: analysis,
	}
}
