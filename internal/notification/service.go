// Package notification exposes the append-only notification sink written by
// the document workflow and read by the listing endpoint.
package notification

import (
	"context"
	"log/slog"

	"ereporting/internal/domain"
	"ereporting/internal/platform/metrics"
	"ereporting/internal/store"
)

type Service struct {
	log     *store.NotificationLog
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewService(log *store.NotificationLog, m *metrics.Metrics, logger *slog.Logger) *Service {
	return &Service{log: log, metrics: m, logger: logger}
}

// Add appends a notification, filling id and createdAt when the caller left
// them empty.
func (s *Service) Add(ctx context.Context, n domain.Notification) domain.Notification {
	n = s.log.Append(n)
	s.metrics.NotificationsEmitted.Inc()
	s.logger.DebugContext(ctx, "notification emitted", "type", n.Type, "id", n.ID)
	return n
}

// List returns every notification in append order. There is no pagination and
// no acknowledgement; the log only grows.
func (s *Service) List(_ context.Context) []domain.Notification {
	return s.log.List()
}
