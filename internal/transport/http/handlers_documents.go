package httptransport

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ereporting/internal/document"
	"ereporting/internal/domain"
	dErrors "ereporting/pkg/domain-errors"
)

// DocumentsHandler serves document CRUD plus the workflow verbs.
type DocumentsHandler struct {
	svc *document.Service
}

func NewDocumentsHandler(svc *document.Service) *DocumentsHandler {
	return &DocumentsHandler{svc: svc}
}

func (h *DocumentsHandler) Register(r chi.Router) {
	r.Get("/", h.handleList)
	r.Post("/", h.handleCreate)
	r.Get("/{id}", h.handleGet)
	r.Put("/{id}", h.handleUpdate)
	r.Delete("/{id}", h.handleDelete)
	r.Post("/{id}/submit", h.handleSubmit)
	r.Post("/{id}/approve", h.handleApprove)
	r.Post("/{id}/reject", h.handleReject)
}

func (h *DocumentsHandler) handleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	docs := h.svc.List(r.Context(), document.ListFilter{
		EntityID:  q.Get("entityId"),
		SessionID: q.Get("sessionId"),
		Category:  q.Get("category"),
	})
	WriteJSON(w, http.StatusOK, docs)
}

func (h *DocumentsHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var doc domain.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	WriteJSON(w, http.StatusCreated, h.svc.Create(r.Context(), doc))
}

func (h *DocumentsHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	doc, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, doc)
}

func (h *DocumentsHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	patch, err := io.ReadAll(r.Body)
	if err != nil {
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	doc, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, doc)
}

func (h *DocumentsHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	h.svc.Delete(r.Context(), chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *DocumentsHandler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	doc, err := h.svc.Submit(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, doc)
}

func (h *DocumentsHandler) handleApprove(w http.ResponseWriter, r *http.Request) {
	doc, err := h.svc.Approve(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, doc)
}

func (h *DocumentsHandler) handleReject(w http.ResponseWriter, r *http.Request) {
	// The reason body is optional; an empty or malformed body rejects without
	// a recorded reason.
	var body struct {
		Reason string `json:"reason"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)
	doc, err := h.svc.Reject(r.Context(), chi.URLParam(r, "id"), body.Reason)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, doc)
}
