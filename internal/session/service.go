// Package session implements reporting sessions and their append-only
// deliberation and meeting lists.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"ereporting/internal/domain"
	"ereporting/internal/store"
	dErrors "ereporting/pkg/domain-errors"
)

type Service struct {
	sessions *store.Collection[domain.Session]
	logger   *slog.Logger
}

func NewService(sessions *store.Collection[domain.Session], logger *slog.Logger) *Service {
	return &Service{sessions: sessions, logger: logger}
}

// List returns all sessions in unspecified order.
func (s *Service) List(_ context.Context) []domain.Session {
	return s.sessions.List()
}

// Create stores a new session. The type defaults to "budgetaire" and both
// sub-lists start empty.
func (s *Service) Create(ctx context.Context, sess domain.Session) domain.Session {
	if sess.Type == "" {
		sess.Type = "budgetaire"
	}
	sess.Deliberations = []domain.Deliberation{}
	sess.Meetings = []domain.Meeting{}
	sess = s.sessions.Insert(sess)
	s.logger.InfoContext(ctx, "session created", "id", sess.ID, "type", sess.Type)
	return sess
}

// Get looks up one session; a missing id is a benign not-found.
func (s *Service) Get(_ context.Context, id string) (domain.Session, error) {
	sess, err := s.sessions.Get(id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Session{}, dErrors.New(dErrors.CodeNotFound, "session not found")
	}
	return sess, nil
}

// Update shallow-merges the patch over the stored session, keeping the id.
func (s *Service) Update(_ context.Context, id string, patch json.RawMessage) (domain.Session, error) {
	sess, err := s.sessions.Apply(id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Session{}, dErrors.New(dErrors.CodeNotFound, "session not found")
		}
		return domain.Session{}, dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid patch")
	}
	return sess, nil
}

// Delete removes the session; absent ids are a no-op.
func (s *Service) Delete(_ context.Context, id string) {
	s.sessions.Delete(id)
}

// AddDeliberation appends a deliberation to the session and returns the full
// list. Deliberations are never removed once written.
func (s *Service) AddDeliberation(ctx context.Context, sessionID string, d domain.Deliberation) ([]domain.Deliberation, error) {
	d.ID = uuid.NewString()
	if d.Title == "" {
		d.Title = "Délibération"
	}
	if d.Status == "" {
		d.Status = "Brouillon"
	}
	sess, err := s.sessions.Mutate(sessionID, func(sess *domain.Session) {
		sess.Deliberations = append(sess.Deliberations[:len(sess.Deliberations):len(sess.Deliberations)], d)
	})
	if errors.Is(err, store.ErrNotFound) {
		return nil, dErrors.New(dErrors.CodeNotFound, "session not found")
	}
	s.logger.InfoContext(ctx, "deliberation added", "session_id", sessionID, "id", d.ID)
	return sess.Deliberations, nil
}

// Deliberations returns the session's deliberations in append order.
func (s *Service) Deliberations(ctx context.Context, sessionID string) ([]domain.Deliberation, error) {
	sess, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return sess.Deliberations, nil
}

// AddMeeting appends a meeting to the session and returns the full list. The
// room defaults to "reporting-<sessionID>" and the provider to "jitsi".
func (s *Service) AddMeeting(ctx context.Context, sessionID string, m domain.Meeting) ([]domain.Meeting, error) {
	m.ID = uuid.NewString()
	if m.Room == "" {
		m.Room = "reporting-" + sessionID
	}
	if m.Provider == "" {
		m.Provider = "jitsi"
	}
	sess, err := s.sessions.Mutate(sessionID, func(sess *domain.Session) {
		sess.Meetings = append(sess.Meetings[:len(sess.Meetings):len(sess.Meetings)], m)
	})
	if errors.Is(err, store.ErrNotFound) {
		return nil, dErrors.New(dErrors.CodeNotFound, "session not found")
	}
	s.logger.InfoContext(ctx, "meeting added", "session_id", sessionID, "id", m.ID)
	return sess.Meetings, nil
}

// Meetings returns the session's meetings in append order.
func (s *Service) Meetings(ctx context.Context, sessionID string) ([]domain.Meeting, error) {
	sess, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return sess.Meetings, nil
}
