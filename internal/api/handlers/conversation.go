package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/AanV03/Chatbot/internal/domain"
	"github.com/AanV03/Chatbot/internal/service"
	"github.com/go-chi/chi/v5"
)

type ConversationHandler struct {
	svc *service.ConversationService
}

func NewConversationHandler(svc *service.ConversationService) *ConversationHandler {
	return &ConversationHandler{svc: svc}
}

type historyResponse struct {
	SessionID string               `json:"session_id"`
	Messages  []domain.ChatMessage `json:"messages"`
	Count     int                  `json:"count"`
}

func (h *ConversationHandler) History(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	messages, err := h.svc.History(r.Context(), sessionID, limit)
	if err != nil {
		if errors.Is(err, service.ErrSessionIDMissing) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load conversation")
		return
	}

	if messages == nil {
		messages = []domain.ChatMessage{}
	}

	writeJSON(w, http.StatusOK, historyResponse{
		SessionID: sessionID,
		Messages:  messages,
		Count:     len(messages),
	})
}
