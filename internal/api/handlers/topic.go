package handlers

import (
	"errors"
	"net/http"

	"github.com/AanV03/Chatbot/internal/domain"
	"github.com/AanV03/Chatbot/internal/store"
	"github.com/go-chi/chi/v5"
)

// TopicHandler exposes the read-only topic catalog for the chat UI.
type TopicHandler struct {
	topics domain.TopicStore
}

func NewTopicHandler(topics domain.TopicStore) *TopicHandler {
	return &TopicHandler{topics: topics}
}

type listTopicsResponse struct {
	Topics []domain.Topic `json:"topics"`
	Count  int            `json:"count"`
}

func (h *TopicHandler) List(w http.ResponseWriter, r *http.Request) {
	topics, err := h.topics.FindAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list topics")
		return
	}
	if topics == nil {
		topics = []domain.Topic{}
	}
	writeJSON(w, http.StatusOK, listTopicsResponse{Topics: topics, Count: len(topics)})
}

func (h *TopicHandler) GetByKey(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	topic, err := h.topics.GetByKey(r.Context(), key)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "topic not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to get topic")
		return
	}
	writeJSON(w, http.StatusOK, topic)
}
