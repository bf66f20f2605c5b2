package document

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"

	"ereporting/internal/domain"
	"ereporting/internal/notification"
	"ereporting/internal/platform/metrics"
	"ereporting/internal/store"
	dErrors "ereporting/pkg/domain-errors"
)

type ServiceSuite struct {
	suite.Suite
	store *store.Store
	notes *notification.Service
	svc   *Service
}

func (s *ServiceSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.New(prometheus.NewRegistry())
	s.store = store.New()
	s.notes = notification.NewService(s.store.Notifications, m, logger)
	s.svc = NewService(s.store.Documents, s.notes, m, logger)
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) TestCreateDefaults() {
	ctx := context.Background()

	s.Run("fills elaboration defaults and an empty history", func() {
		doc := s.svc.Create(ctx, domain.Document{Title: "Budget Q1"})

		s.Equal("Budget Q1", doc.Title)
		s.Equal("elaboration", doc.Category)
		s.Equal("# Nouveau document\n", doc.Content)
		s.Empty(doc.Status)
		s.NotNil(doc.History)
		s.Empty(doc.History)
		s.Nil(doc.Signature)
	})

	s.Run("keeps supplied fields", func() {
		doc := s.svc.Create(ctx, domain.Document{Category: "cloture", Title: "ODJ", Content: "# ODJ\n"})

		s.Equal("cloture", doc.Category)
		s.Equal("ODJ", doc.Title)
		s.Equal("# ODJ\n", doc.Content)
	})

	s.Run("ignores client-supplied status, history, and signature", func() {
		doc := s.svc.Create(ctx, domain.Document{
			Status:    domain.StatusApproved,
			History:   []domain.HistoryEntry{{Action: "forged"}},
			Signature: &domain.Signature{Signed: true},
		})

		s.Empty(doc.Status)
		s.Empty(doc.History)
		s.Nil(doc.Signature)
	})
}

func (s *ServiceSuite) TestSubmit() {
	ctx := context.Background()
	doc := s.svc.Create(ctx, domain.Document{Title: "Budget Q1"})

	submitted, err := s.svc.Submit(ctx, doc.ID)
	s.Require().NoError(err)

	s.Equal(domain.StatusSubmitted, submitted.Status)
	s.Require().Len(submitted.History, 1)
	s.Equal(domain.ActionSubmission, submitted.History[0].Action)
	s.False(submitted.History[0].Date.IsZero())

	notes := s.notes.List(ctx)
	s.Require().Len(notes, 1)
	s.Equal("document", notes[0].Type)
	s.Equal("Document soumis: Budget Q1", notes[0].Message)
}

func (s *ServiceSuite) TestApprove() {
	ctx := context.Background()
	doc := s.svc.Create(ctx, domain.Document{Title: "Budget Q1"})

	approved, err := s.svc.Approve(ctx, doc.ID)
	s.Require().NoError(err)

	s.Equal(domain.StatusApproved, approved.Status)
	s.Require().Len(approved.History, 1)
	s.Equal(domain.ActionApproval, approved.History[0].Action)

	notes := s.notes.List(ctx)
	s.Require().Len(notes, 1)
	s.Equal("Document approuvé: Budget Q1", notes[0].Message)
}

func (s *ServiceSuite) TestReject() {
	ctx := context.Background()

	s.Run("records the reason in the history action", func() {
		doc := s.svc.Create(ctx, domain.Document{Title: "Budget Q1"})

		rejected, err := s.svc.Reject(ctx, doc.ID, "incomplet")
		s.Require().NoError(err)

		s.Equal(domain.StatusRejected, rejected.Status)
		s.Require().Len(rejected.History, 1)
		s.Equal("Rejet: incomplet", rejected.History[0].Action)

		notes := s.notes.List(ctx)
		s.Require().Len(notes, 1)
		s.Equal("Document rejeté: Budget Q1", notes[0].Message)
	})

	s.Run("omits the reason suffix when none is given", func() {
		doc := s.svc.Create(ctx, domain.Document{})

		rejected, err := s.svc.Reject(ctx, doc.ID, "")
		s.Require().NoError(err)
		s.Equal("Rejet", rejected.History[0].Action)
	})
}

func (s *ServiceSuite) TestTransitionsAreUnguarded() {
	// The platform allows re-driving a document from any state to any other;
	// history keeps the full trail.
	ctx := context.Background()
	doc := s.svc.Create(ctx, domain.Document{Title: "Budget Q1"})

	_, err := s.svc.Approve(ctx, doc.ID)
	s.Require().NoError(err)

	resubmitted, err := s.svc.Submit(ctx, doc.ID)
	s.Require().NoError(err)

	s.Equal(domain.StatusSubmitted, resubmitted.Status)
	s.Require().Len(resubmitted.History, 2)
	s.Equal(domain.ActionApproval, resubmitted.History[0].Action)
	s.Equal(domain.ActionSubmission, resubmitted.History[1].Action)
	s.Len(s.notes.List(ctx), 2)
}

func (s *ServiceSuite) TestTransitionOnMissingDocument() {
	ctx := context.Background()

	for _, transition := range []func(context.Context, string) (domain.Document, error){
		s.svc.Submit,
		s.svc.Approve,
		func(ctx context.Context, id string) (domain.Document, error) { return s.svc.Reject(ctx, id, "x") },
	} {
		_, err := transition(ctx, "missing")
		s.Require().Error(err)
		s.True(dErrors.Is(err, dErrors.CodeNotFound))
		s.Equal("Document introuvable", dErrors.MessageOf(err))
	}
	s.Empty(s.notes.List(ctx))
}

func (s *ServiceSuite) TestHistorySnapshotsAreStable() {
	// A snapshot taken before a transition must not grow under the reader.
	ctx := context.Background()
	doc := s.svc.Create(ctx, domain.Document{})
	_, err := s.svc.Submit(ctx, doc.ID)
	s.Require().NoError(err)

	snapshot, err := s.svc.Get(ctx, doc.ID)
	s.Require().NoError(err)
	_, err = s.svc.Approve(ctx, doc.ID)
	s.Require().NoError(err)

	s.Len(snapshot.History, 1)
	current, err := s.svc.Get(ctx, doc.ID)
	s.Require().NoError(err)
	s.Len(current.History, 2)
}

func (s *ServiceSuite) TestHistoryDateUsesClock() {
	ctx := context.Background()
	fixed := time.Date(2026, 2, 1, 10, 30, 0, 0, time.UTC)
	s.svc.now = func() time.Time { return fixed }

	doc := s.svc.Create(ctx, domain.Document{})
	submitted, err := s.svc.Submit(ctx, doc.ID)
	s.Require().NoError(err)
	s.Equal(fixed, submitted.History[0].Date)
}

func (s *ServiceSuite) TestListFilters() {
	ctx := context.Background()
	a := s.svc.Create(ctx, domain.Document{Title: "A", EntityID: "e-1", SessionID: "s-1"})
	s.svc.Create(ctx, domain.Document{Title: "B", EntityID: "e-2", Category: "cloture"})
	s.svc.Create(ctx, domain.Document{Title: "C", EntityID: "e-1", Category: "cloture"})

	s.Len(s.svc.List(ctx, ListFilter{}), 3)
	s.Len(s.svc.List(ctx, ListFilter{EntityID: "e-1"}), 2)
	s.Len(s.svc.List(ctx, ListFilter{EntityID: "e-1", Category: "elaboration"}), 1)
	s.Len(s.svc.List(ctx, ListFilter{SessionID: "s-1"}), 1)

	s.Run("dangling references match nothing", func() {
		s.Empty(s.svc.List(ctx, ListFilter{EntityID: "missing-entity"}))
	})

	got := s.svc.List(ctx, ListFilter{SessionID: "s-1"})
	s.Equal(a.ID, got[0].ID)
}

func (s *ServiceSuite) TestUpdateMergesAndGuardsID() {
	ctx := context.Background()
	doc := s.svc.Create(ctx, domain.Document{Title: "Budget Q1"})

	updated, err := s.svc.Update(ctx, doc.ID, json.RawMessage(`{"content":"# Révisé\n","id":"forged"}`))
	s.Require().NoError(err)
	s.Equal(doc.ID, updated.ID)
	s.Equal("# Révisé\n", updated.Content)
	s.Equal("Budget Q1", updated.Title)
	s.Equal("elaboration", updated.Category)
}
