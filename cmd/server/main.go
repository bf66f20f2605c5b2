// main wires high-level dependencies, seeds the demo store, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"ereporting/internal/assistant"
	"ereporting/internal/auth"
	"ereporting/internal/dashboard"
	"ereporting/internal/document"
	"ereporting/internal/export"
	"ereporting/internal/notification"
	"ereporting/internal/platform/config"
	"ereporting/internal/platform/httpserver"
	"ereporting/internal/platform/logger"
	"ereporting/internal/platform/metrics"
	"ereporting/internal/resource"
	"ereporting/internal/session"
	"ereporting/internal/signature"
	"ereporting/internal/store"
	"ereporting/internal/template"
	httptransport "ereporting/internal/transport/http"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New()

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	st := store.New()
	st.Seed()

	notifications := notification.NewService(st.Notifications, m, log)
	documents := document.NewService(st.Documents, notifications, m, log)
	dashboards := dashboard.NewService()

	deps := httptransport.Deps{
		Logger:        log,
		Metrics:       m,
		Store:         st,
		Ministries:    resource.New(st.Ministries, log),
		Entities:      resource.New(st.Entities, log),
		Projects:      resource.New(st.Projects, log),
		Users:         resource.New(st.Users, log),
		Courses:       resource.New(st.Courses, log),
		Sessions:      session.NewService(st.Sessions, log),
		Documents:     documents,
		Signatures:    signature.NewService(st.Documents, log),
		Notifications: notifications,
		Auth:          auth.NewService(st.Users, []byte(cfg.JWTSigningKey), log),
		Dashboard:     dashboards,
		Export:        export.NewService(dashboards),
		Templates:     template.NewCatalog(),
		Assistant:     assistant.NewService(),
		Gatherer:      registry,
	}

	srv := httpserver.New(cfg.Addr, httptransport.NewRouter(deps))

	log.Info("starting ereporting backend", "addr", cfg.Addr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
