package service

import (
	"context"
	"errors"

	"github.com/AanV03/Chatbot/internal/domain"
	"go.uber.org/zap"
)

var (
	ErrFeedbackSessionIDMissing = errors.New("session_id is required")
	ErrFeedbackMessageMissing   = errors.New("user_message is required")
	ErrFeedbackInvalidType      = errors.New("invalid feedback type")
)

// FeedbackService persists feedback events. Pipeline-emitted events are
// fire-and-forget: a failed write is logged and swallowed so it can never
// affect the answer already computed. User-reported feedback goes through
// Report, which does propagate errors.
type FeedbackService struct {
	sink   domain.FeedbackSink
	logger *zap.Logger
}

func NewFeedbackService(sink domain.FeedbackSink, logger *zap.Logger) *FeedbackService {
	return &FeedbackService{sink: sink, logger: logger}
}

// EmitUnanswered records a query the pipeline could not answer.
func (s *FeedbackService) EmitUnanswered(ctx context.Context, sessionID, userMessage, botMessage string, analysis *domain.QueryAnalysis) {
	ev := &domain.FeedbackEvent{
		SessionID:   sessionID,
		Type:        domain.FeedbackTypeUnanswered,
		UserMessage: userMessage,
		BotMessage:  botMessage,
	}
	if analysis != nil {
		ev.DetectedIntents = []string{string(analysis.Intent)}
		if analysis.Topic != nil {
			ev.DetectedTopics = []string{analysis.Topic.Key}
		}
		if analysis.Subtopic != "" {
			ev.DetectedSubtopics = []string{analysis.Subtopic}
		}
	}
	if err := s.sink.Create(ctx, ev); err != nil {
		s.logger.Warn("failed to record feedback",
			zap.String("session_id", sessionID),
			zap.Error(err))
	}
}

// Report persists a user-reported unhelpful exchange.
func (s *FeedbackService) Report(ctx context.Context, ev *domain.FeedbackEvent) error {
	if ev.SessionID == "" {
		return ErrFeedbackSessionIDMissing
	}
	if ev.UserMessage == "" {
		return ErrFeedbackMessageMissing
	}
	if ev.Type == "" {
		ev.Type = domain.FeedbackTypeUnhelpful
	}
	if !domain.ValidFeedbackType(string(ev.Type)) {
		return ErrFeedbackInvalidType
	}
	return s.sink.Create(ctx, ev)
}
