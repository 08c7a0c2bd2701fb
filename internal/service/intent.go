package service

import (
	"strings"

	"github.com/AanV03/Chatbot/internal/domain"
)

// IntentClassifier maps normalized text to an intent category via ordered
// phrase-membership tests. Total and deterministic: the same input always
// yields the same category, and an input with no matching phrase falls back
// to the informational category.
type IntentClassifier struct {
	rules []IntentRule
}

func NewIntentClassifier(lexicon *Lexicon) *IntentClassifier {
	return &IntentClassifier{rules: lexicon.IntentRules}
}

func (c *IntentClassifier) Classify(normalized string) domain.Intent {
	for _, rule := range c.rules {
		for _, phrase := range rule.Phrases {
			if strings.Contains(normalized, phrase) {
				return rule.Intent
			}
		}
	}
	return domain.IntentInformational
}
