package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/AanV03/Chatbot/internal/domain"
	"github.com/AanV03/Chatbot/internal/service"
)

type FeedbackHandler struct {
	svc    *service.FeedbackService
	lister domain.FeedbackLister
}

func NewFeedbackHandler(svc *service.FeedbackService, lister domain.FeedbackLister) *FeedbackHandler {
	return &FeedbackHandler{svc: svc, lister: lister}
}

type createFeedbackRequest struct {
	SessionID   string `json:"session_id"`
	Type        string `json:"type,omitempty"`
	UserMessage string `json:"user_message"`
	BotMessage  string `json:"bot_message,omitempty"`
}

func (h *FeedbackHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ev := &domain.FeedbackEvent{
		SessionID:   req.SessionID,
		Type:        domain.FeedbackType(req.Type),
		UserMessage: req.UserMessage,
		BotMessage:  req.BotMessage,
	}

	if err := h.svc.Report(r.Context(), ev); err != nil {
		switch {
		case errors.Is(err, service.ErrFeedbackSessionIDMissing),
			errors.Is(err, service.ErrFeedbackMessageMissing),
			errors.Is(err, service.ErrFeedbackInvalidType):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to record feedback")
		}
		return
	}

	writeJSON(w, http.StatusCreated, ev)
}

type listFeedbackResponse struct {
	Events []domain.FeedbackEvent `json:"events"`
	Count  int                    `json:"count"`
}

// List returns the most recent feedback events, newest first. Intended for
// corpus curation, not for end users.
func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 500 {
			limit = l
		}
	}

	events, err := h.lister.ListRecent(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list feedback")
		return
	}
	if events == nil {
		events = []domain.FeedbackEvent{}
	}

	writeJSON(w, http.StatusOK, listFeedbackResponse{Events: events, Count: len(events)})
}
