package httptransport

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ereporting/internal/domain"
	"ereporting/internal/session"
	dErrors "ereporting/pkg/domain-errors"
)

// SessionsHandler serves session CRUD plus the deliberation and meeting
// sub-lists.
type SessionsHandler struct {
	svc *session.Service
}

func NewSessionsHandler(svc *session.Service) *SessionsHandler {
	return &SessionsHandler{svc: svc}
}

func (h *SessionsHandler) Register(r chi.Router) {
	r.Get("/", h.handleList)
	r.Post("/", h.handleCreate)
	r.Get("/{id}", h.handleGet)
	r.Put("/{id}", h.handleUpdate)
	r.Delete("/{id}", h.handleDelete)
	r.Get("/{id}/deliberations", h.handleListDeliberations)
	r.Post("/{id}/deliberations", h.handleAddDeliberation)
	r.Get("/{id}/meetings", h.handleListMeetings)
	r.Post("/{id}/meetings", h.handleAddMeeting)
}

func (h *SessionsHandler) handleList(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.svc.List(r.Context()))
}

func (h *SessionsHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var sess domain.Session
	if err := json.NewDecoder(r.Body).Decode(&sess); err != nil {
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	WriteJSON(w, http.StatusCreated, h.svc.Create(r.Context(), sess))
}

func (h *SessionsHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	sess, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, sess)
}

func (h *SessionsHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	patch, err := io.ReadAll(r.Body)
	if err != nil {
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	sess, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, sess)
}

func (h *SessionsHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	h.svc.Delete(r.Context(), chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *SessionsHandler) handleListDeliberations(w http.ResponseWriter, r *http.Request) {
	delibs, err := h.svc.Deliberations(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, delibs)
}

func (h *SessionsHandler) handleAddDeliberation(w http.ResponseWriter, r *http.Request) {
	var delib domain.Deliberation
	if err := json.NewDecoder(r.Body).Decode(&delib); err != nil {
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	delibs, err := h.svc.AddDeliberation(r.Context(), chi.URLParam(r, "id"), delib)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, delibs)
}

func (h *SessionsHandler) handleListMeetings(w http.ResponseWriter, r *http.Request) {
	meetings, err := h.svc.Meetings(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, meetings)
}

func (h *SessionsHandler) handleAddMeeting(w http.ResponseWriter, r *http.Request) {
	var meeting domain.Meeting
	if err := json.NewDecoder(r.Body).Decode(&meeting); err != nil {
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	meetings, err := h.svc.AddMeeting(r.Context(), chi.URLParam(r, "id"), meeting)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, meetings)
}
