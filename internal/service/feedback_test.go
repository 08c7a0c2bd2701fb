package service

import (
	"context"
	"errors"
	"testing"

	"github.com/AanV03/Chatbot/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockFeedbackSink mocks the FeedbackSink interface.
type MockFeedbackSink struct {
	mock.Mock
}

func (m *MockFeedbackSink) Create(ctx context.Context, f *domain.FeedbackEvent) error {
	args := m.Called(ctx, f)
	if args.Error(0) == nil {
		f.ID = uuid.New()
	}
	return args.Error(0)
}

func TestFeedbackService_Report(t *testing.T) {
	sink := new(MockFeedbackSink)
	sink.On("Create", mock.Anything, mock.Anything).Return(nil)
	svc := NewFeedbackService(sink, zap.NewNop())

	ev := &domain.FeedbackEvent{
		SessionID:   "sess-1",
		UserMessage: "que es el smog",
		BotMessage:  "no lo se",
	}
	err := svc.Report(context.Background(), ev)

	assert.NoError(t, err)
	// Missing type defaults to unhelpful.
	assert.Equal(t, domain.FeedbackTypeUnhelpful, ev.Type)
	assert.NotEqual(t, uuid.Nil, ev.ID)
	sink.AssertExpectations(t)
}

func TestFeedbackService_ReportValidation(t *testing.T) {
	sink := new(MockFeedbackSink)
	svc := NewFeedbackService(sink, zap.NewNop())
	ctx := context.Background()

	err := svc.Report(ctx, &domain.FeedbackEvent{UserMessage: "algo"})
	assert.ErrorIs(t, err, ErrFeedbackSessionIDMissing)

	err = svc.Report(ctx, &domain.FeedbackEvent{SessionID: "sess-1"})
	assert.ErrorIs(t, err, ErrFeedbackMessageMissing)

	err = svc.Report(ctx, &domain.FeedbackEvent{
		SessionID:   "sess-1",
		UserMessage: "algo",
		Type:        domain.FeedbackType("enojado"),
	})
	assert.ErrorIs(t, err, ErrFeedbackInvalidType)

	sink.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestFeedbackService_EmitUnanswered(t *testing.T) {
	sink := new(MockFeedbackSink)
	sink.On("Create", mock.Anything, mock.MatchedBy(func(f *domain.FeedbackEvent) bool {
		return f.Type == domain.FeedbackTypeUnanswered &&
			f.SessionID == "sess-1" &&
			len(f.DetectedTopics) == 1 && f.DetectedTopics[0] == "aire" &&
			len(f.DetectedSubtopics) == 1 && f.DetectedSubtopics[0] == "smog"
	})).Return(nil)
	svc := NewFeedbackService(sink, zap.NewNop())

	analysis := &domain.QueryAnalysis{
		Intent:   domain.IntentInformational,
		Topic:    &domain.Topic{ID: uuid.New(), Key: "aire"},
		Subtopic: "smog",
	}
	svc.EmitUnanswered(context.Background(), "sess-1", "pregunta", "respuesta", analysis)

	sink.AssertExpectations(t)
}

func TestFeedbackService_EmitUnansweredSwallowsErrors(t *testing.T) {
	sink := new(MockFeedbackSink)
	sink.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))
	svc := NewFeedbackService(sink, zap.NewNop())

	// Must not panic or surface the error.
	svc.EmitUnanswered(context.Background(), "sess-1", "pregunta", "respuesta", nil)

	sink.AssertExpectations(t)
}
