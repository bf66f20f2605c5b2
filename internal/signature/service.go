// Package signature implements the mock e-signature service. It attaches a
// signature block to a document without touching the workflow status.
package signature

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"ereporting/internal/domain"
	"ereporting/internal/store"
)

// Result is the structured outcome of a signing attempt. A missing document is
// reported through OK=false and Message rather than an error, matching what
// the signing widget expects.
type Result struct {
	OK       bool             `json:"ok"`
	Message  string           `json:"message,omitempty"`
	Document *domain.Document `json:"document,omitempty"`
}

type Service struct {
	docs   *store.Collection[domain.Document]
	logger *slog.Logger
	now    func() time.Time
}

func NewService(docs *store.Collection[domain.Document], logger *slog.Logger) *Service {
	return &Service{docs: docs, logger: logger, now: time.Now}
}

// Sign attaches a signature to the document, overwriting any prior one. Any
// status, including none, is signable. signedBy defaults to "Admin".
func (s *Service) Sign(ctx context.Context, documentID, signedBy string) Result {
	if signedBy == "" {
		signedBy = "Admin"
	}
	doc, err := s.docs.Mutate(documentID, func(d *domain.Document) {
		d.Signature = &domain.Signature{
			Signed:   true,
			SignedBy: signedBy,
			SignedAt: s.now(),
		}
	})
	if errors.Is(err, store.ErrNotFound) {
		return Result{OK: false, Message: "Document introuvable"}
	}
	s.logger.InfoContext(ctx, "document signed", "id", documentID, "signed_by", signedBy)
	return Result{OK: true, Document: &doc}
}
