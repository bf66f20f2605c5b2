package httptransport

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ereporting/internal/resource"
	"ereporting/internal/store"
	dErrors "ereporting/pkg/domain-errors"
)

// Resource is the generic CRUD handler mounted once per plain resource type.
// It owns the five uniform routes; resource-specific extras (catalogs,
// workflow verbs) are registered next to it by the router.
type Resource[T store.Record[T]] struct {
	svc *resource.Service[T]
}

func NewResource[T store.Record[T]](svc *resource.Service[T]) *Resource[T] {
	return &Resource[T]{svc: svc}
}

// Register mounts list/create/get/update/delete on r.
func (h *Resource[T]) Register(r chi.Router) {
	r.Get("/", h.handleList)
	r.Post("/", h.handleCreate)
	r.Get("/{id}", h.handleGet)
	r.Put("/{id}", h.handleUpdate)
	r.Delete("/{id}", h.handleDelete)
}

func (h *Resource[T]) handleList(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.svc.List(r.Context()))
}

func (h *Resource[T]) handleCreate(w http.ResponseWriter, r *http.Request) {
	var rec T
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	WriteJSON(w, http.StatusCreated, h.svc.Create(r.Context(), rec))
}

func (h *Resource[T]) handleGet(w http.ResponseWriter, r *http.Request) {
	rec, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, rec)
}

func (h *Resource[T]) handleUpdate(w http.ResponseWriter, r *http.Request) {
	patch, err := io.ReadAll(r.Body)
	if err != nil {
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	rec, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, rec)
}

func (h *Resource[T]) handleDelete(w http.ResponseWriter, r *http.Request) {
	h.svc.Delete(r.Context(), chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}
