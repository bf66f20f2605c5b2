package httptransport

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"ereporting/internal/auth"
)

// AuthHandler serves the mock login and the current-user endpoint.
type AuthHandler struct {
	svc *auth.Service
}

func NewAuthHandler(svc *auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Register(r chi.Router) {
	r.Post("/login", h.handleLogin)
	r.Get("/me", h.handleMe)
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
	}
	// Any body, including none, logs in; that is the whole point of the mock.
	_ = json.NewDecoder(r.Body).Decode(&body)
	if body.Email == "" {
		body.Email = "demo@local"
	}
	res, err := h.svc.Login(r.Context(), body.Email)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, res)
}

func (h *AuthHandler) handleMe(w http.ResponseWriter, r *http.Request) {
	bearer := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if bearer == r.Header.Get("Authorization") {
		bearer = ""
	}
	WriteJSON(w, http.StatusOK, h.svc.Me(r.Context(), bearer))
}
