package httptransport

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ereporting/internal/assistant"
)

// AssistantHandler serves the canned AI writing helper.
type AssistantHandler struct {
	svc *assistant.Service
}

func NewAssistantHandler(svc *assistant.Service) *AssistantHandler {
	return &AssistantHandler{svc: svc}
}

func (h *AssistantHandler) Register(r chi.Router) {
	r.Post("/assist", h.handleAssist)
}

func (h *AssistantHandler) handleAssist(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Prompt string `json:"prompt"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)
	WriteJSON(w, http.StatusOK, h.svc.Assist(r.Context(), body.Prompt))
}
