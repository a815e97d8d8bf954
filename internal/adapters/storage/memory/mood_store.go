package memory

import (
	"context"
	"sync"

	"github.com/solacehq/solace-api/internal/domain"
)

type MoodStore struct {
	mu      sync.RWMutex
	entries map[domain.UserID][]*domain.MoodEntry
}

func NewMoodStore() *MoodStore {
	return &MoodStore{
		entries: make(map[domain.UserID][]*domain.MoodEntry),
	}
}

func (s *MoodStore) AppendMood(ctx context.Context, entry *domain.MoodEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *entry
	s.entries[entry.UserID] = append(s.entries[entry.UserID], &cp)
	return nil
}

// ListRecentMoods returns entries most-recent-first. Entries are appended in
// arrival order; ties between identical timestamps keep arrival order, which
// is as good as any.
func (s *MoodStore) ListRecentMoods(ctx context.Context, userID domain.UserID, limit int) ([]*domain.MoodEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.entries[userID]

	out := make([]*domain.MoodEntry, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		out = append(out, entries[i])
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (s *MoodStore) DeleteMoodsByUser(ctx context.Context, userID domain.UserID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.entries[userID])
	delete(s.entries, userID)
	return n, nil
}
