package service

import (
	"context"

	"github.com/AanV03/Chatbot/internal/domain"
	"go.uber.org/zap"
)

// QueryAnalyzer runs the per-query analysis pipeline: misspelling
// correction, normalization, intent classification, composite scoring over
// the full corpus, fuzzy fallback, subtopic/topic heuristics and the
// ambiguity verdict. It holds no per-query state, so one analyzer serves
// concurrent queries.
type QueryAnalyzer struct {
	knowledge domain.KnowledgeStore
	topics    domain.TopicStore

	normalizer    *Normalizer
	intents       *IntentClassifier
	scorer        *SimilarityScorer
	fuzzy         *FuzzyMatcher
	subtopics     *SubtopicHeuristic
	topicResolver *TopicResolver
	ambiguity     *AmbiguityClassifier

	cal    Calibration
	logger *zap.Logger
}

func NewQueryAnalyzer(knowledge domain.KnowledgeStore, topics domain.TopicStore, lexicon *Lexicon, cal Calibration, logger *zap.Logger) *QueryAnalyzer {
	return &QueryAnalyzer{
		knowledge:     knowledge,
		topics:        topics,
		normalizer:    NewNormalizer(DefaultNormalizerConfig(), lexicon),
		intents:       NewIntentClassifier(lexicon),
		scorer:        NewSimilarityScorer(cal.Weights),
		fuzzy:         NewFuzzyMatcher(),
		subtopics:     NewSubtopicHeuristic(lexicon),
		topicResolver: NewTopicResolver(lexicon),
		ambiguity:     NewAmbiguityClassifier(lexicon, cal),
		cal:           cal,
		logger:        logger,
	}
}

// Analyze never fails for a well-formed string: an empty or whitespace-only
// input degenerates to a zero-score, topicless, ambiguous analysis. The
// only error source is the knowledge-base read, which propagates.
func (a *QueryAnalyzer) Analyze(ctx context.Context, text string) (*domain.QueryAnalysis, error) {
	corrected := a.normalizer.CorrectMisspellings(text)
	normalized := a.normalizer.Normalize(corrected)
	intent := a.intents.Classify(normalized)

	records, err := a.knowledge.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	topics, err := a.topics.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	// Strict greater-than keeps the first record on composite-score ties.
	var best *domain.KnowledgeRecord
	bestScore := 0.0
	for i := range records {
		if s := a.scorer.Score(normalized, records[i]); s > bestScore {
			bestScore = s
			best = &records[i]
		}
	}

	confidence := bestScore
	reasoning := domain.ReasoningNoMatch
	var topic *domain.Topic
	subtopic := ""

	if best != nil && bestScore >= a.cal.StrongMatch {
		topic = findTopicByID(topics, best.TopicID)
		subtopic = best.Subtopic
		reasoning = domain.ReasoningStrongMatch
	} else if m, ok := a.fuzzy.Best(normalized, records); ok {
		topic = findTopicByID(topics, m.Record.TopicID)
		subtopic = m.Record.Subtopic
		reasoning = domain.ReasoningFuzzyMatch
		confidence = a.cal.FuzzyConfidence
	}

	if subtopic == "" || confidence < a.cal.WeakMatch {
		if label, ok := a.subtopics.Infer(tokenize(normalized), records); ok {
			// Adopt the subtopic only; the topic is reconciled below.
			subtopic = label
			if reasoning == domain.ReasoningNoMatch {
				reasoning = domain.ReasoningSubtopicHeuristic
			}
		}
	}

	if topic == nil {
		if t := a.topicResolver.Infer(normalized, topics); t != nil {
			topic = t
			if reasoning == domain.ReasoningNoMatch {
				reasoning = domain.ReasoningTopicKeyword
			}
		}
	}

	if subtopic != "" {
		topic = a.topicResolver.Reconcile(topic, subtopic, records, topics)
	}

	ambiguous, outOfDomain := a.ambiguity.Classify(confidence, topic, subtopic)

	analysis := &domain.QueryAnalysis{
		OriginalText:   text,
		NormalizedText: normalized,
		Intent:         intent,
		Topic:          topic,
		Subtopic:       subtopic,
		Reasoning:      reasoning,
		Confidence:     confidence,
		IsAmbiguous:    ambiguous,
		IsOutOfDomain:  outOfDomain,
	}

	a.logger.Debug("query analyzed",
		zap.String("normalized", normalized),
		zap.String("intent", string(intent)),
		zap.String("reasoning", string(reasoning)),
		zap.Float64("confidence", confidence),
		zap.Bool("ambiguous", ambiguous),
		zap.Bool("out_of_domain", outOfDomain))

	return analysis, nil
}
