package chat

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
)

// MessageRequest is the JSON body for POST /api/chat.
type MessageRequest struct {
	Message string `json:"message"`
}

// Handler exposes the chat widget endpoint over whichever Responder was
// configured.
type Handler struct {
	responder Responder
}

func NewHandler(responder Responder) *Handler {
	return &Handler{responder: responder}
}

func (h *Handler) Message(w http.ResponseWriter, r *http.Request) {
	var req MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		http.Error(w, `{"error":"invalid message"}`, http.StatusBadRequest)
		return
	}

	reply, err := h.responder.Reply(r.Context(), req.Message)
	if err != nil {
		log.Printf("chat reply error: %v", err)
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"response": reply})
}
