package memory

import (
	"context"
	"sync"

	"github.com/solacehq/solace-api/internal/domain"
)

type ConversationStore struct {
	mu      sync.RWMutex
	records map[domain.UserID][]*domain.ConversationRecord
}

func NewConversationStore() *ConversationStore {
	return &ConversationStore{
		records: make(map[domain.UserID][]*domain.ConversationRecord),
	}
}

func (s *ConversationStore) AppendRecord(ctx context.Context, rec *domain.ConversationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *rec
	s.records[rec.UserID] = append(s.records[rec.UserID], &cp)
	return nil
}

func (s *ConversationStore) ListRecentRecords(ctx context.Context, userID domain.UserID, limit int) ([]*domain.ConversationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recs := s.records[userID]

	// Most recent first.
	out := make([]*domain.ConversationRecord, 0, len(recs))
	for i := len(recs) - 1; i >= 0; i-- {
		out = append(out, recs[i])
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (s *ConversationStore) DeleteRecordsByUser(ctx context.Context, userID domain.UserID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.records[userID])
	delete(s.records, userID)
	return n, nil
}
