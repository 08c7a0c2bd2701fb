package service

import (
	"context"
	"strings"

	"github.com/AanV03/Chatbot/internal/domain"
	"github.com/google/uuid"
)

type mockKnowledgeStore struct {
	records []domain.KnowledgeRecord
	filters []domain.KnowledgeFilter
	err     error
}

func (m *mockKnowledgeStore) FindAll(ctx context.Context) ([]domain.KnowledgeRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.records, nil
}

func (m *mockKnowledgeStore) FindByFilter(ctx context.Context, filter domain.KnowledgeFilter) ([]domain.KnowledgeRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.filters = append(m.filters, filter)
	if filter.Empty() {
		return m.records, nil
	}
	var out []domain.KnowledgeRecord
	for _, rec := range m.records {
		if filter.TopicID != nil && rec.TopicID != *filter.TopicID {
			continue
		}
		if filter.Subtopic != nil && !strings.EqualFold(rec.Subtopic, *filter.Subtopic) {
			continue
		}
		if filter.Intent != nil && rec.Intent != *filter.Intent {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

type mockTopicStore struct {
	topics []domain.Topic
	err    error
}

func (m *mockTopicStore) FindAll(ctx context.Context) ([]domain.Topic, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.topics, nil
}

func (m *mockTopicStore) GetByKey(ctx context.Context, key string) (*domain.Topic, error) {
	for i := range m.topics {
		if strings.EqualFold(m.topics[i].Key, key) {
			return &m.topics[i], nil
		}
	}
	return nil, nil
}

type mockFeedbackSink struct {
	events []*domain.FeedbackEvent
	err    error
}

func (m *mockFeedbackSink) Create(ctx context.Context, f *domain.FeedbackEvent) error {
	if m.err != nil {
		return m.err
	}
	f.ID = uuid.New()
	m.events = append(m.events, f)
	return nil
}

// seedTopics and seedRecords build the small Spanish corpus shared by the
// pipeline tests. Topic order: aire, residuos, general.
func seedTopics() []domain.Topic {
	return []domain.Topic{
		{ID: uuid.New(), Key: "aire", Name: "Calidad del aire", Subtopics: []string{"smog", "ozono"}},
		{ID: uuid.New(), Key: "residuos", Name: "Manejo de residuos", Subtopics: []string{"reciclaje"}},
		{ID: uuid.New(), Key: "general", Name: "Conversación general", Subtopics: []string{"saludos"}},
	}
}

func seedRecords(topics []domain.Topic) []domain.KnowledgeRecord {
	aire, residuos, general := topics[0].ID, topics[1].ID, topics[2].ID
	return []domain.KnowledgeRecord{
		{
			ID:          uuid.New(),
			TopicID:     aire,
			Subtopic:    "smog",
			KeyPhrase:   "que es el smog",
			AnswerText:  "el smog es una mezcla de humo y niebla",
			Description: "definicion del smog",
			Examples:    "que es el smog, explicame el smog",
			Keywords:    []string{"smog", "humo"},
			Intent:      domain.IntentInformational,
			AnswerKind:  domain.AnswerKindText,
		},
		{
			ID:          uuid.New(),
			TopicID:     aire,
			Subtopic:    "ozono",
			KeyPhrase:   "que es el ozono troposferico",
			AnswerText:  "el ozono troposferico es un contaminante secundario",
			Description: "definicion del ozono",
			Examples:    "que es el ozono, ozono malo",
			Keywords:    []string{"ozono"},
			Intent:      domain.IntentInformational,
			AnswerKind:  domain.AnswerKindText,
		},
		{
			ID:          uuid.New(),
			TopicID:     residuos,
			Subtopic:    "reciclaje",
			KeyPhrase:   "como separo la basura",
			AnswerText:  "separa organicos, reciclables e inorganicos",
			Description: "guia de separacion de residuos",
			Examples:    "como reciclo, donde va cada residuo",
			Keywords:    []string{"reciclaje", "basura"},
			Intent:      domain.IntentTechnical,
			AnswerKind:  domain.AnswerKindList,
		},
		{
			ID:          uuid.New(),
			TopicID:     general,
			Subtopic:    "saludos",
			KeyPhrase:   "hola",
			AnswerText:  "hola, soy el asistente ambiental",
			Description: "saludo inicial",
			Examples:    "hola, buenos dias",
			Keywords:    []string{"hola"},
			Intent:      domain.IntentInformational,
			AnswerKind:  domain.AnswerKindText,
		},
	}
}
