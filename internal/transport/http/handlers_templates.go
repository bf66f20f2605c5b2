package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"ereporting/internal/template"
)

// TemplatesHandler serves the static template catalog.
type TemplatesHandler struct {
	catalog *template.Catalog
}

func NewTemplatesHandler(catalog *template.Catalog) *TemplatesHandler {
	return &TemplatesHandler{catalog: catalog}
}

func (h *TemplatesHandler) Register(r chi.Router) {
	r.Get("/", h.handleList)
	r.Get("/{id}", h.handleDetail)
}

func (h *TemplatesHandler) handleList(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.catalog.List())
}

func (h *TemplatesHandler) handleDetail(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.catalog.Detail(chi.URLParam(r, "id")))
}
