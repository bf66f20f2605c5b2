package auth

import (
	"context"
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
	users *store.Collection[domain.User]
	svc   *Service
}

func (s *ServiceSuite) SetupTest() {
	s.users = store.NewCollection[domain.User]()
	s.svc = NewService(s.users, []byte("test-signing-key"), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) TestLoginIssuesValidToken() {
	ctx := context.Background()
	admin := s.users.Insert(domain.User{Email: "admin@demo.local", Roles: []string{"ADMIN"}})

	res, err := s.svc.Login(ctx, "someone@demo.local")
	s.Require().NoError(err)
	s.NotEmpty(res.Token)
	s.Equal(admin.ID, res.User.ID)

	claims, err := s.svc.ValidateToken(res.Token)
	s.Require().NoError(err)
	s.Equal(admin.ID, claims.Subject)
	s.Equal("someone@demo.local", claims.Email)
}

func (s *ServiceSuite) TestValidateRejectsForeignToken() {
	other := NewService(s.users, []byte("another-key"), slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.users.Insert(domain.User{Email: "admin@demo.local"})

	res, err := other.Login(context.Background(), "x@demo.local")
	s.Require().NoError(err)

	_, err = s.svc.ValidateToken(res.Token)
	s.Require().Error(err)
	s.True(dErrors.Is(err, dErrors.CodeUnauthorized))
}

func (s *ServiceSuite) TestValidateRejectsGarbage() {
	_, err := s.svc.ValidateToken("not-a-token")
	s.True(dErrors.Is(err, dErrors.CodeUnauthorized))
}

func (s *ServiceSuite) TestMeResolvesTokenSubject() {
	ctx := context.Background()
	admin := s.users.Insert(domain.User{Email: "admin@demo.local"})

	res, err := s.svc.Login(ctx, "admin@demo.local")
	s.Require().NoError(err)

	me := s.svc.Me(ctx, res.Token)
	s.Equal(admin.ID, me.ID)
}

func (s *ServiceSuite) TestMeFallsBackWithoutToken() {
	ctx := context.Background()
	admin := s.users.Insert(domain.User{Email: "admin@demo.local"})

	s.Equal(admin.ID, s.svc.Me(ctx, "").ID)
	s.Equal(admin.ID, s.svc.Me(ctx, "garbage").ID)
}

func (s *ServiceSuite) TestMeWithNoUsers() {
	me := s.svc.Me(context.Background(), "")
	s.Empty(me.ID)
}
