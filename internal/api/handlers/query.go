package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/AanV03/Chatbot/internal/service"
	"github.com/google/uuid"
)

type QueryHandler struct {
	search        *service.SearchService
	conversations *service.ConversationService
}

func NewQueryHandler(search *service.SearchService, conversations *service.ConversationService) *QueryHandler {
	return &QueryHandler{search: search, conversations: conversations}
}

type resolveQueryRequest struct {
	Text      string `json:"text"`
	SessionID string `json:"session_id,omitempty"`
}

type resolveQueryResponse struct {
	SessionID string `json:"session_id"`
	*service.ResolveResult
}

// Resolve answers a free-text question. A missing session id starts a new
// session; an empty question is rejected before the pipeline runs.
func (h *QueryHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	var req resolveQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	result, err := h.search.Resolve(r.Context(), req.Text, sessionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to resolve query")
		return
	}

	// History is UI glue; a write failure is logged inside and must not
	// affect the response.
	h.conversations.RecordExchange(r.Context(), sessionID, req.Text, result.Answers[0].Text)

	writeJSON(w, http.StatusOK, resolveQueryResponse{
		SessionID:     sessionID,
		ResolveResult: result,
	})
}
