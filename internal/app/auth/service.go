package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/solacehq/solace-api/internal/domain"
	"github.com/solacehq/solace-api/internal/observability"
)

// Service handles accounts and bearer tokens.
type Service struct {
	users  domain.UserStore
	secret []byte
	now    func() time.Time
}

func NewService(users domain.UserStore, secret string) *Service {
	return &Service{
		users:  users,
		secret: []byte(secret),
		now:    time.Now,
	}
}

// Register creates an account and returns it with a fresh token.
func (s *Service) Register(ctx context.Context, email, password, displayName string) (*domain.User, string, error) {
	log := observability.LoggerFromContext(ctx).With("email", email)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hashing password: %w", err)
	}

	if displayName == "" {
		displayName = "Friend"
	}

	user := &domain.User{
		ID:           domain.UserID(uuid.NewString()),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		DisplayName:  displayName,
		PasswordHash: string(hash),
		CreatedAt:    s.now(),
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		log.Warn("register failed", "error", err)
		return nil, "", err
	}

	token := s.mintToken(user.ID)
	log.Info("user registered", "user_id", user.ID)
	return user, token, nil
}

// Login verifies credentials and returns the user with a fresh token.
// Every failure is reported as ErrUnauthorized so callers cannot probe
// which part failed.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.users.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, "", domain.ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", domain.ErrUnauthorized
	}

	return user, s.mintToken(user.ID), nil
}

// VerifyToken resolves a bearer token to its user. Checks run in order:
// signature, age (24h ceiling), then existence of the referenced account.
func (s *Service) VerifyToken(ctx context.Context, token string) (*domain.User, error) {
	userID, err := s.verifyToken(token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}
