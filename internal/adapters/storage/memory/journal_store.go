package memory

import (
	"context"
	"sync"

	"github.com/solacehq/solace-api/internal/domain"
)

type JournalStore struct {
	mu      sync.RWMutex
	entries map[domain.EntryID]*domain.JournalEntry
	byUser  map[domain.UserID][]domain.EntryID
}

func NewJournalStore() *JournalStore {
	return &JournalStore{
		entries: make(map[domain.EntryID]*domain.JournalEntry),
		byUser:  make(map[domain.UserID][]domain.EntryID),
	}
}

func (s *JournalStore) CreateEntry(ctx context.Context, entry *domain.JournalEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[entry.ID]; exists {
		return domain.ErrAlreadyExists
	}

	cp := *entry
	s.entries[entry.ID] = &cp
	s.byUser[entry.UserID] = append(s.byUser[entry.UserID], entry.ID)
	return nil
}

func (s *JournalStore) GetEntry(ctx context.Context, id domain.EntryID) (*domain.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	cp := *e
	return &cp, nil
}

func (s *JournalStore) ListEntriesByUser(ctx context.Context, userID domain.UserID, limit int) ([]*domain.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.byUser[userID]

	out := make([]*domain.JournalEntry, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		if e, ok := s.entries[ids[i]]; ok {
			cp := *e
			out = append(out, &cp)
		}
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (s *JournalStore) UpdateEntry(ctx context.Context, entry *domain.JournalEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[entry.ID]; !ok {
		return domain.ErrNotFound
	}

	cp := *entry
	s.entries[entry.ID] = &cp
	return nil
}

func (s *JournalStore) DeleteEntry(ctx context.Context, id domain.EntryID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return domain.ErrNotFound
	}

	delete(s.entries, id)
	ids := s.byUser[e.UserID]
	for i, eid := range ids {
		if eid == id {
			s.byUser[e.UserID] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	return nil
}

func (s *JournalStore) DeleteEntriesByUser(ctx context.Context, userID domain.UserID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.byUser[userID]
	for _, id := range ids {
		delete(s.entries, id)
	}
	delete(s.byUser, userID)
	return len(ids), nil
}
