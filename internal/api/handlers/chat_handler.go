package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Nitinnn1403/kisan-drishti/internal/services"
)

type ChatHandler struct {
	chat *services.ChatService
}

func NewChatHandler(chat *services.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// Open starts the conversation on first use and returns the greeting. Later
// calls are cheap no-ops returning nothing new.
func (h *ChatHandler) Open(w http.ResponseWriter, r *http.Request) {
	reply, err := h.chat.Open(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	if reply == nil {
		writeJSON(w, http.StatusOK, map[string]bool{"ready": true})
		return
	}
	writeJSON(w, http.StatusOK, reply)
}

type chatSendRequest struct {
	Message string `json:"message"`
}

func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req chatSendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	reply, err := h.chat.Send(r.Context(), req.Message)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	if reply == nil {
		// Blank input is dropped without a backend call.
		writeJSON(w, http.StatusOK, map[string]bool{"ignored": true})
		return
	}
	writeJSON(w, http.StatusOK, reply)
}
