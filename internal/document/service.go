// Package document implements the report document service: the generic CRUD
// operations plus the status workflow Draft → Submitted → Approved/Rejected.
package document

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"ereporting/internal/domain"
	"ereporting/internal/notification"
	"ereporting/internal/platform/metrics"
	"ereporting/internal/store"
	dErrors "ereporting/pkg/domain-errors"
)

// ListFilter narrows List results. Zero-value fields match everything;
// dangling entity or session ids simply match nothing.
type ListFilter struct {
	EntityID  string
	SessionID string
	Category  string
}

func (f ListFilter) matches(d domain.Document) bool {
	if f.EntityID != "" && d.EntityID != f.EntityID {
		return false
	}
	if f.SessionID != "" && d.SessionID != f.SessionID {
		return false
	}
	if f.Category != "" && d.Category != f.Category {
		return false
	}
	return true
}

type Service struct {
	docs          *store.Collection[domain.Document]
	notifications *notification.Service
	metrics       *metrics.Metrics
	logger        *slog.Logger
	now           func() time.Time
}

func NewService(docs *store.Collection[domain.Document], n *notification.Service, m *metrics.Metrics, logger *slog.Logger) *Service {
	return &Service{
		docs:          docs,
		notifications: n,
		metrics:       m,
		logger:        logger,
		now:           time.Now,
	}
}

// List returns documents matching the filter, in unspecified order.
func (s *Service) List(_ context.Context, filter ListFilter) []domain.Document {
	all := s.docs.List()
	out := make([]domain.Document, 0, len(all))
	for _, d := range all {
		if filter.matches(d) {
			out = append(out, d)
		}
	}
	return out
}

// Create stores a new document under a generated id. Missing fields get the
// elaboration defaults; status stays empty until the first transition, and the
// history starts out as an empty trail.
func (s *Service) Create(ctx context.Context, doc domain.Document) domain.Document {
	if doc.Category == "" {
		doc.Category = "elaboration"
	}
	if doc.Title == "" {
		doc.Title = "Document"
	}
	if doc.Content == "" {
		doc.Content = "# Nouveau document\n"
	}
	doc.Status = ""
	doc.History = []domain.HistoryEntry{}
	doc.Signature = nil
	doc = s.docs.Insert(doc)
	s.metrics.DocumentsCreated.Inc()
	s.logger.InfoContext(ctx, "document created", "id", doc.ID, "category", doc.Category)
	return doc
}

// Get looks up one document; a missing id is a benign not-found.
func (s *Service) Get(_ context.Context, id string) (domain.Document, error) {
	doc, err := s.docs.Get(id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Document{}, dErrors.New(dErrors.CodeNotFound, "Document introuvable")
	}
	return doc, nil
}

// Update shallow-merges the patch over the stored document, keeping the id.
func (s *Service) Update(_ context.Context, id string, patch json.RawMessage) (domain.Document, error) {
	doc, err := s.docs.Apply(id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Document{}, dErrors.New(dErrors.CodeNotFound, "Document introuvable")
		}
		return domain.Document{}, dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid patch")
	}
	return doc, nil
}

// Delete removes the document; absent ids are a no-op.
func (s *Service) Delete(_ context.Context, id string) {
	s.docs.Delete(id)
}

// Submit moves the document to Submitted and notifies.
func (s *Service) Submit(ctx context.Context, id string) (domain.Document, error) {
	return s.transition(ctx, id, domain.StatusSubmitted, domain.ActionSubmission, "Document soumis")
}

// Approve moves the document to Approved and notifies.
func (s *Service) Approve(ctx context.Context, id string) (domain.Document, error) {
	return s.transition(ctx, id, domain.StatusApproved, domain.ActionApproval, "Document approuvé")
}

// Reject moves the document to Rejected, recording the optional reason in the
// history action ("Rejet: <reason>"), and notifies.
func (s *Service) Reject(ctx context.Context, id, reason string) (domain.Document, error) {
	action := domain.ActionRejection
	if reason != "" {
		action += ": " + reason
	}
	return s.transition(ctx, id, domain.StatusRejected, action, "Document rejeté")
}

// transition applies the status change and history append atomically under the
// collection's write lock: no reader can observe the new status without its
// history entry. The current status is deliberately not checked first; the
// platform allows any state to be re-driven to any target (see DESIGN.md).
func (s *Service) transition(ctx context.Context, id, status, action, messagePrefix string) (domain.Document, error) {
	doc, err := s.docs.Mutate(id, func(d *domain.Document) {
		d.Status = status
		// Full slice expression forces the append to reallocate, so snapshots
		// handed out by earlier reads never see in-place growth.
		d.History = append(d.History[:len(d.History):len(d.History)], domain.HistoryEntry{
			Date:   s.now(),
			Action: action,
		})
	})
	if errors.Is(err, store.ErrNotFound) {
		return domain.Document{}, dErrors.New(dErrors.CodeNotFound, "Document introuvable")
	}
	s.metrics.WorkflowTransitions.WithLabelValues(status).Inc()
	s.notifications.Add(ctx, domain.Notification{
		Type:    "document",
		Message: fmt.Sprintf("%s: %s", messagePrefix, doc.Title),
	})
	s.logger.InfoContext(ctx, "document transition", "id", id, "status", status)
	return doc, nil
}
