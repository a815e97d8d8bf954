package memory

import (
	"context"
	"sync"

	"github.com/solacehq/solace-api/internal/domain"
)

type UserStore struct {
	mu      sync.RWMutex
	users   map[domain.UserID]*domain.User
	byEmail map[string]domain.UserID
}

func NewUserStore() *UserStore {
	return &UserStore{
		users:   make(map[domain.UserID]*domain.User),
		byEmail: make(map[string]domain.UserID),
	}
}

func (s *UserStore) CreateUser(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.ID]; exists {
		return domain.ErrAlreadyExists
	}
	if _, exists := s.byEmail[user.Email]; exists {
		return domain.ErrAlreadyExists
	}

	cp := *user
	s.users[user.ID] = &cp
	s.byEmail[user.Email] = user.ID
	return nil
}

func (s *UserStore) GetUser(ctx context.Context, id domain.UserID) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	cp := *u
	return &cp, nil
}

func (s *UserStore) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return nil, domain.ErrNotFound
	}

	cp := *s.users[id]
	return &cp, nil
}

func (s *UserStore) UpdateProfile(ctx context.Context, id domain.UserID, displayName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return domain.ErrNotFound
	}

	u.DisplayName = displayName
	return nil
}

func (s *UserStore) UpdateWellnessSummary(ctx context.Context, id domain.UserID, summary string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return domain.ErrNotFound
	}

	u.WellnessSummary = summary
	return nil
}
