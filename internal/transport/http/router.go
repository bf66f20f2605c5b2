// Package httptransport wires the REST surface. Handlers stay thin: parse the
// request, call one service, write the JSON envelope.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ereporting/internal/assistant"
	"ereporting/internal/auth"
	"ereporting/internal/dashboard"
	"ereporting/internal/document"
	"ereporting/internal/domain"
	"ereporting/internal/export"
	"ereporting/internal/notification"
	"ereporting/internal/platform/metrics"
	"ereporting/internal/platform/middleware"
	"ereporting/internal/resource"
	"ereporting/internal/session"
	"ereporting/internal/signature"
	"ereporting/internal/store"
	"ereporting/internal/template"
)

// Deps collects everything the router mounts. Construction happens in main;
// tests build a Deps with in-memory stores and pass it straight in.
type Deps struct {
	Logger  *slog.Logger
	Metrics *metrics.Metrics
	Store   *store.Store

	Ministries *resource.Service[domain.Ministry]
	Entities   *resource.Service[domain.Entity]
	Projects   *resource.Service[domain.Project]
	Users      *resource.Service[domain.User]
	Courses    *resource.Service[domain.Course]

	Sessions      *session.Service
	Documents     *document.Service
	Signatures    *signature.Service
	Notifications *notification.Service
	Auth          *auth.Service
	Dashboard     *dashboard.Service
	Export        *export.Service
	Templates     *template.Catalog
	Assistant     *assistant.Service

	// Gatherer backs /metrics; main passes the registry the Metrics were
	// registered on.
	Gatherer prometheus.Gatherer
}

// NewRouter wires all public endpoints.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.Latency(d.Metrics))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))

	catalogs := NewCatalogsHandler(d.Store)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.ContentTypeJSON)

		r.Route("/ministries", func(r chi.Router) {
			r.Get("/catalog", catalogs.handleMinistryCatalog)
			NewResource(d.Ministries).Register(r)
		})
		r.Route("/entities", func(r chi.Router) {
			r.Get("/catalog/epe", catalogs.handleCatalogEPE)
			r.Get("/catalog/se", catalogs.handleCatalogSE)
			NewResource(d.Entities).Register(r)
		})
		r.Route("/projects", NewResource(d.Projects).Register)
		r.Route("/users", NewResource(d.Users).Register)
		r.Route("/elearning/courses", NewResource(d.Courses).Register)

		r.Route("/sessions", NewSessionsHandler(d.Sessions).Register)
		r.Route("/documents", NewDocumentsHandler(d.Documents).Register)
		r.Route("/signatures", NewSignaturesHandler(d.Signatures).Register)
		r.Route("/notifications", NewNotificationsHandler(d.Notifications).Register)
		r.Route("/auth", NewAuthHandler(d.Auth).Register)

		dash := NewDashboardHandler(d.Dashboard, d.Export)
		r.Route("/dashboard", dash.Register)
		r.Route("/export", dash.RegisterExport)

		r.Route("/templates", NewTemplatesHandler(d.Templates).Register)
		r.Route("/ai", NewAssistantHandler(d.Assistant).Register)
	})

	return r
}
