package service

import (
	"context"
	"errors"
	"testing"

	"github.com/AanV03/Chatbot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockConversationStore mocks the ConversationStore interface.
type MockConversationStore struct {
	mock.Mock
}

func (m *MockConversationStore) AppendMessage(ctx context.Context, msg *domain.ChatMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockConversationStore) GetBySessionID(ctx context.Context, sessionID string, limit int) ([]domain.ChatMessage, error) {
	args := m.Called(ctx, sessionID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChatMessage), args.Error(1)
}

func TestConversationService_RecordExchange(t *testing.T) {
	store := new(MockConversationStore)
	var seen []domain.ChatMessage
	store.On("AppendMessage", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		seen = append(seen, *args.Get(1).(*domain.ChatMessage))
	}).Return(nil)
	svc := NewConversationService(store, zap.NewNop())

	svc.RecordExchange(context.Background(), "sess-1", "hola", "hola, soy el asistente")

	assert.Len(t, seen, 2)
	assert.Equal(t, domain.RoleUser, seen[0].Role)
	assert.Equal(t, "hola", seen[0].Content)
	assert.Equal(t, domain.RoleBot, seen[1].Role)
	assert.Equal(t, "hola, soy el asistente", seen[1].Content)
	assert.Equal(t, "sess-1", seen[0].SessionID)
}

func TestConversationService_RecordExchangeSwallowsErrors(t *testing.T) {
	store := new(MockConversationStore)
	store.On("AppendMessage", mock.Anything, mock.Anything).Return(errors.New("db down"))
	svc := NewConversationService(store, zap.NewNop())

	// Best effort: must not panic.
	svc.RecordExchange(context.Background(), "sess-1", "hola", "respuesta")

	// The first failure stops the write of the bot side.
	store.AssertNumberOfCalls(t, "AppendMessage", 1)
}

func TestConversationService_RecordExchangeNoSession(t *testing.T) {
	store := new(MockConversationStore)
	svc := NewConversationService(store, zap.NewNop())

	svc.RecordExchange(context.Background(), "", "hola", "respuesta")

	store.AssertNotCalled(t, "AppendMessage", mock.Anything, mock.Anything)
}

func TestConversationService_History(t *testing.T) {
	store := new(MockConversationStore)
	messages := []domain.ChatMessage{
		{SessionID: "sess-1", Role: domain.RoleUser, Content: "hola"},
		{SessionID: "sess-1", Role: domain.RoleBot, Content: "hola, soy el asistente"},
	}
	store.On("GetBySessionID", mock.Anything, "sess-1", defaultHistoryLimit).Return(messages, nil)
	svc := NewConversationService(store, zap.NewNop())

	// A non-positive limit falls back to the default.
	got, err := svc.History(context.Background(), "sess-1", 0)

	assert.NoError(t, err)
	assert.Equal(t, messages, got)
	store.AssertExpectations(t)
}

func TestConversationService_HistoryRequiresSession(t *testing.T) {
	store := new(MockConversationStore)
	svc := NewConversationService(store, zap.NewNop())

	_, err := svc.History(context.Background(), "", 10)
	assert.ErrorIs(t, err, ErrSessionIDMissing)
}
