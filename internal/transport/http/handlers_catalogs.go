package httptransport

import (
	"net/http"

	"ereporting/internal/domain"
	"ereporting/internal/store"
)

// CatalogsHandler serves the static reference lists: the ministry picker and
// the two seeded entity name catalogs.
type CatalogsHandler struct {
	store *store.Store
}

func NewCatalogsHandler(s *store.Store) *CatalogsHandler {
	return &CatalogsHandler{store: s}
}

func (h *CatalogsHandler) handleMinistryCatalog(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, domain.MinistryCatalog())
}

func (h *CatalogsHandler) handleCatalogEPE(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.store.CatalogEPE())
}

func (h *CatalogsHandler) handleCatalogSE(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.store.CatalogSE())
}
