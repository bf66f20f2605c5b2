package session

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"

	"ereporting/internal/domain"
	"ereporting/internal/store"
	dErrors "ereporting/pkg/domain-errors"
)

type ServiceSuite struct {
	suite.Suite
	svc *Service
}

func (s *ServiceSuite) SetupTest() {
	s.svc = NewService(store.NewCollection[domain.Session](), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) TestCreateDefaults() {
	ctx := context.Background()

	s.Run("defaults the type and starts both sub-lists empty", func() {
		sess := s.svc.Create(ctx, domain.Session{EntityID: "e-1"})

		s.NotEmpty(sess.ID)
		s.Equal("budgetaire", sess.Type)
		s.Equal("e-1", sess.EntityID)
		s.NotNil(sess.Deliberations)
		s.Empty(sess.Deliberations)
		s.NotNil(sess.Meetings)
		s.Empty(sess.Meetings)
	})

	s.Run("keeps a supplied type and tolerates no entity", func() {
		sess := s.svc.Create(ctx, domain.Session{Type: "cloture"})
		s.Equal("cloture", sess.Type)
		s.Empty(sess.EntityID)
	})
}

func (s *ServiceSuite) TestDeliberations() {
	ctx := context.Background()
	sess := s.svc.Create(ctx, domain.Session{})

	s.Run("appends with defaults and preserves order", func() {
		first, err := s.svc.AddDeliberation(ctx, sess.ID, domain.Deliberation{})
		s.Require().NoError(err)
		s.Require().Len(first, 1)
		s.NotEmpty(first[0].ID)
		s.Equal("Délibération", first[0].Title)
		s.Equal("Brouillon", first[0].Status)

		second, err := s.svc.AddDeliberation(ctx, sess.ID, domain.Deliberation{Title: "Arrêt des comptes", Status: "Adoptée"})
		s.Require().NoError(err)
		s.Require().Len(second, 2)
		s.Equal("Délibération", second[0].Title)
		s.Equal("Arrêt des comptes", second[1].Title)
		s.Equal("Adoptée", second[1].Status)
	})

	s.Run("lists in append order", func() {
		delibs, err := s.svc.Deliberations(ctx, sess.ID)
		s.Require().NoError(err)
		s.Len(delibs, 2)
	})

	s.Run("missing session is a coded not-found", func() {
		_, err := s.svc.AddDeliberation(ctx, "missing", domain.Deliberation{})
		s.True(dErrors.Is(err, dErrors.CodeNotFound))

		_, err = s.svc.Deliberations(ctx, "missing")
		s.True(dErrors.Is(err, dErrors.CodeNotFound))
	})
}

func (s *ServiceSuite) TestMeetings() {
	ctx := context.Background()
	sess := s.svc.Create(ctx, domain.Session{})

	s.Run("defaults the room to the session and the provider to jitsi", func() {
		meetings, err := s.svc.AddMeeting(ctx, sess.ID, domain.Meeting{})
		s.Require().NoError(err)
		s.Require().Len(meetings, 1)
		s.Equal("reporting-"+sess.ID, meetings[0].Room)
		s.Equal("jitsi", meetings[0].Provider)
	})

	s.Run("keeps supplied fields", func() {
		meetings, err := s.svc.AddMeeting(ctx, sess.ID, domain.Meeting{Room: "salle-1", Provider: "zoom"})
		s.Require().NoError(err)
		s.Require().Len(meetings, 2)
		s.Equal("salle-1", meetings[1].Room)
		s.Equal("zoom", meetings[1].Provider)
	})

	s.Run("missing session is a coded not-found", func() {
		_, err := s.svc.AddMeeting(ctx, "missing", domain.Meeting{})
		s.True(dErrors.Is(err, dErrors.CodeNotFound))
	})
}

func (s *ServiceSuite) TestUpdatePreservesSubLists() {
	ctx := context.Background()
	sess := s.svc.Create(ctx, domain.Session{Type: "budgetaire"})
	_, err := s.svc.AddDeliberation(ctx, sess.ID, domain.Deliberation{})
	s.Require().NoError(err)

	updated, err := s.svc.Update(ctx, sess.ID, json.RawMessage(`{"type":"cloture"}`))
	s.Require().NoError(err)
	s.Equal("cloture", updated.Type)
	s.Len(updated.Deliberations, 1)
}
