package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	log "github.com/sirupsen/logrus"

	"github.com/mialiew/futaritabi/internal/chat"
	"github.com/mialiew/futaritabi/internal/models"
	"github.com/mialiew/futaritabi/internal/session"
)

// chatTimeout bounds one assistant round-trip.
const chatTimeout = 60 * time.Second

// chatErrorReply is shown in the conversation when the assistant fails;
// failures never block further editing.
const chatErrorReply = "Sorry, I couldn't reach the travel assistant just now. Please try again in a moment."

// ChatHandler forwards conversation turns to the assistant with the current
// trip as context.
type ChatHandler struct {
	assistant chat.Assistant
	session   *session.Session
}

// NewChatHandler creates a new chat handler. assistant may be nil when no
// API key is configured; the feature then reports itself unavailable.
func NewChatHandler(assistant chat.Assistant, s *session.Session) *ChatHandler {
	return &ChatHandler{assistant: assistant, session: s}
}

// Send handles one user message.
// POST /api/chat
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if h.assistant == nil {
		writeError(w, http.StatusServiceUnavailable, "Chat assistant is not configured")
		return
	}

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "Message is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), chatTimeout)
	defer cancel()

	text, err := h.assistant.SendMessage(ctx, req.Message, req.History, h.session.Current())
	if err != nil {
		// Recovered locally as an in-conversation error message.
		log.WithError(err).Warn("chat assistant failed")
		writeJSON(w, http.StatusOK, models.ChatResponse{Text: chatErrorReply})
		return
	}

	writeJSON(w, http.StatusOK, models.ChatResponse{Text: text})
}
