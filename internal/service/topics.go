package service

import (
	"strings"

	"github.com/AanV03/Chatbot/internal/domain"
	"github.com/google/uuid"
)

// TopicResolver infers a topic from configured keyword substrings and
// repairs it from subtopic evidence.
type TopicResolver struct {
	keywords []TopicKeywords
}

func NewTopicResolver(lexicon *Lexicon) *TopicResolver {
	return &TopicResolver{keywords: lexicon.TopicKeywords}
}

// Infer walks the topic keys in declaration order and resolves the first
// topic with any keyword occurring as a substring of the normalized text.
func (r *TopicResolver) Infer(normalized string, topics []domain.Topic) *domain.Topic {
	for _, tk := range r.keywords {
		for _, kw := range tk.Keywords {
			if strings.Contains(normalized, kw) {
				if t := findTopicByKey(topics, tk.TopicKey); t != nil {
					return t
				}
				break
			}
		}
	}
	return nil
}

// Reconcile forces the topic onto the one carried by any record with the
// resolved subtopic. Subtopic evidence is stronger than keyword inference,
// so a disagreement is settled in the record's favor.
func (r *TopicResolver) Reconcile(topic *domain.Topic, subtopic string, records []domain.KnowledgeRecord, topics []domain.Topic) *domain.Topic {
	if subtopic == "" {
		return topic
	}
	folded := fold(subtopic)
	for _, rec := range records {
		if fold(rec.Subtopic) == folded {
			if t := findTopicByID(topics, rec.TopicID); t != nil {
				return t
			}
			return topic
		}
	}
	return topic
}

func findTopicByKey(topics []domain.Topic, key string) *domain.Topic {
	folded := fold(key)
	for i := range topics {
		if fold(topics[i].Key) == folded {
			return &topics[i]
		}
	}
	return nil
}

func findTopicByID(topics []domain.Topic, id uuid.UUID) *domain.Topic {
	for i := range topics {
		if topics[i].ID == id {
			return &topics[i]
		}
	}
	return nil
}
