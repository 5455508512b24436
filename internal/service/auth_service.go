package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"catalog-admin/internal/repository"
)

// ErrInvalidCredentials indicates that provided login credentials are incorrect.
// It never distinguishes an unknown username from a wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService establishes and resolves authenticated sessions. The session
// token is a signed claim set held by the client; the server keeps no session
// state of its own.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
	Resolve(ctx context.Context, token string) (string, bool)
	TTL() time.Duration
}

type sessionClaims struct {
	jwt.RegisteredClaims
}

type authService struct {
	users  repository.UserRepository
	secret []byte
	ttl    time.Duration
}

func NewAuthService(users repository.UserRepository, secret string, ttl time.Duration) AuthService {
	return &authService{
		users:  users,
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Login verifies credentials and mints a session token for the user.
func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Resolve returns the authenticated username for a session token. Any failure
// (missing or tampered token, expiry, user gone) yields an anonymous result,
// never an error.
func (s *authService) Resolve(ctx context.Context, token string) (string, bool) {
	if token == "" {
		return "", false
	}

	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return "", false
	}

	if _, err := s.users.GetByUsername(ctx, claims.Subject); err != nil {
		return "", false
	}

	return claims.Subject, true
}

func (s *authService) TTL() time.Duration {
	return s.ttl
}
