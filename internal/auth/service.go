// Package auth implements the demo login: a signed JWT handed to whoever asks,
// bound to the seeded admin account. There is no password check and no gated
// route; the token exists so the frontend auth flow works end to end.
package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"ereporting/internal/domain"
	"ereporting/internal/store"
	dErrors "ereporting/pkg/domain-errors"
)

// Claims carried by issued tokens.
type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// LoginResult mirrors the login response body.
type LoginResult struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

type Service struct {
	users      *store.Collection[domain.User]
	signingKey []byte
	tokenTTL   time.Duration
	logger     *slog.Logger
	now        func() time.Time
}

func NewService(users *store.Collection[domain.User], signingKey []byte, logger *slog.Logger) *Service {
	return &Service{
		users:      users,
		signingKey: signingKey,
		tokenTTL:   24 * time.Hour,
		logger:     logger,
		now:        time.Now,
	}
}

// Login issues an HS256 token for the current demo user. The supplied email is
// echoed into the claims but not checked against anything.
func (s *Service) Login(ctx context.Context, email string) (LoginResult, error) {
	user := s.currentUser()
	now := s.now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		return LoginResult{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to sign token")
	}
	s.logger.InfoContext(ctx, "login", "user_id", user.ID, "email", email)
	return LoginResult{Token: token, User: user}, nil
}

// ValidateToken parses and verifies a token issued by Login.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "unexpected signing method")
		}
		return s.signingKey, nil
	})
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnauthorized, "invalid token")
	}
	return claims, nil
}

// Me resolves the account behind a bearer token. An absent or invalid token
// falls back to the demo user; the endpoint is not gated.
func (s *Service) Me(_ context.Context, bearer string) domain.User {
	if bearer != "" {
		if claims, err := s.ValidateToken(bearer); err == nil {
			if user, err := s.users.Get(claims.Subject); err == nil {
				return user
			}
		}
	}
	return s.currentUser()
}

// currentUser returns an arbitrary stored user; the demo seeds exactly one.
func (s *Service) currentUser() domain.User {
	users := s.users.List()
	if len(users) == 0 {
		return domain.User{}
	}
	return users[0]
}
