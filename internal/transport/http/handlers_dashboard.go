package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"ereporting/internal/dashboard"
	"ereporting/internal/export"
	dErrors "ereporting/pkg/domain-errors"
)

// DashboardHandler serves the synthetic stats and KPI figures plus their CSV
// export.
type DashboardHandler struct {
	svc    *dashboard.Service
	export *export.Service
}

func NewDashboardHandler(svc *dashboard.Service, exp *export.Service) *DashboardHandler {
	return &DashboardHandler{svc: svc, export: exp}
}

func (h *DashboardHandler) Register(r chi.Router) {
	r.Get("/stats", h.handleStats)
	r.Get("/kpis", h.handleKPIs)
}

// RegisterExport mounts the CSV download under its own prefix.
func (h *DashboardHandler) RegisterExport(r chi.Router) {
	r.Get("/kpis.csv", h.handleExportKPIs)
}

func scopeFromQuery(r *http.Request) dashboard.Scope {
	q := r.URL.Query()
	return dashboard.Scope{
		MinistryID: q.Get("ministryId"),
		EntityID:   q.Get("entityId"),
	}
}

func (h *DashboardHandler) handleStats(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.svc.Stats(r.Context(), scopeFromQuery(r)))
}

func (h *DashboardHandler) handleKPIs(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.svc.KPIs(r.Context(), scopeFromQuery(r)))
}

func (h *DashboardHandler) handleExportKPIs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=dashboard_kpis.csv")
	if err := h.export.WriteKPIsCSV(r.Context(), w); err != nil {
		WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to write csv"))
	}
}
