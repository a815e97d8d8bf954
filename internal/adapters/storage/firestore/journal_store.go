package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/solacehq/solace-api/internal/domain"
)

// ─────────────────────────────────────────
// JournalStore implementation
// ─────────────────────────────────────────

func (s *Store) CreateEntry(ctx context.Context, entry *domain.JournalEntry) error {
	doc := journalDoc{
		UserID:    string(entry.UserID),
		Title:     entry.Title,
		Content:   entry.Content,
		Mood:      entry.Mood,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}

	if _, err := s.journalCol().Doc(string(entry.ID)).Create(ctx, doc); err != nil {
		return fmt.Errorf("firestore CreateEntry: %w", err)
	}
	return nil
}

func (s *Store) GetEntry(ctx context.Context, id domain.EntryID) (*domain.JournalEntry, error) {
	snap, err := s.journalCol().Doc(string(id)).Get(ctx)
	if err != nil {
		return nil, mapNotFound(err, "firestore GetEntry")
	}

	var doc journalDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("firestore GetEntry decode: %w", err)
	}

	return journalFromDoc(id, doc), nil
}

func (s *Store) ListEntriesByUser(ctx context.Context, userID domain.UserID, limit int) ([]*domain.JournalEntry, error) {
	q := s.journalCol().
		Where("user_id", "==", string(userID)).
		OrderBy("created_at", firestore.Desc)
	if limit > 0 {
		q = q.Limit(limit)
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	var out []*domain.JournalEntry
	for {
		snap, err := iter.Next()
		if err != nil {
			if err == iterator.Done {
				break
			}
			return nil, fmt.Errorf("firestore ListEntriesByUser: %w", err)
		}

		var doc journalDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("decode journalDoc: %w", err)
		}

		out = append(out, journalFromDoc(domain.EntryID(snap.Ref.ID), doc))
	}
	return out, nil
}

func (s *Store) UpdateEntry(ctx context.Context, entry *domain.JournalEntry) error {
	_, err := s.journalCol().Doc(string(entry.ID)).Update(ctx, []firestore.Update{
		{Path: "title", Value: entry.Title},
		{Path: "content", Value: entry.Content},
		{Path: "mood", Value: entry.Mood},
		{Path: "updated_at", Value: entry.UpdatedAt},
	})
	if err != nil {
		return mapNotFound(err, "firestore UpdateEntry")
	}
	return nil
}

func (s *Store) DeleteEntry(ctx context.Context, id domain.EntryID) error {
	// Firestore deletes are idempotent; check existence first so callers can
	// distinguish 404.
	if _, err := s.journalCol().Doc(string(id)).Get(ctx); err != nil {
		return mapNotFound(err, "firestore DeleteEntry")
	}

	if _, err := s.journalCol().Doc(string(id)).Delete(ctx); err != nil {
		return fmt.Errorf("firestore DeleteEntry: %w", err)
	}
	return nil
}

func (s *Store) DeleteEntriesByUser(ctx context.Context, userID domain.UserID) (int, error) {
	return s.deleteByUser(ctx, s.journalCol(), userID)
}

func journalFromDoc(id domain.EntryID, doc journalDoc) *domain.JournalEntry {
	return &domain.JournalEntry{
		ID:        id,
		UserID:    domain.UserID(doc.UserID),
		Title:     doc.Title,
		Content:   doc.Content,
		Mood:      doc.Mood,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}

// ─────────────────────────────────────────
// MoodStore implementation
// ─────────────────────────────────────────

func (s *Store) AppendMood(ctx context.Context, entry *domain.MoodEntry) error {
	doc := moodDoc{
		UserID:    string(entry.UserID),
		Mood:      entry.Mood,
		Intensity: entry.Intensity,
		Note:      entry.Note,
		CreatedAt: entry.CreatedAt,
	}

	if _, err := s.moodCol().Doc(string(entry.ID)).Set(ctx, doc); err != nil {
		return fmt.Errorf("firestore AppendMood: %w", err)
	}
	return nil
}

// ListRecentMoods orders by created_at descending. Entries sharing a
// timestamp come back in whatever order Firestore breaks the tie.
func (s *Store) ListRecentMoods(ctx context.Context, userID domain.UserID, limit int) ([]*domain.MoodEntry, error) {
	q := s.moodCol().
		Where("user_id", "==", string(userID)).
		OrderBy("created_at", firestore.Desc)
	if limit > 0 {
		q = q.Limit(limit)
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	var out []*domain.MoodEntry
	for {
		snap, err := iter.Next()
		if err != nil {
			if err == iterator.Done {
				break
			}
			return nil, fmt.Errorf("firestore ListRecentMoods: %w", err)
		}

		var doc moodDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("decode moodDoc: %w", err)
		}

		out = append(out, &domain.MoodEntry{
			ID:        domain.EntryID(snap.Ref.ID),
			UserID:    domain.UserID(doc.UserID),
			Mood:      doc.Mood,
			Intensity: doc.Intensity,
			Note:      doc.Note,
			CreatedAt: doc.CreatedAt,
		})
	}
	return out, nil
}

func (s *Store) DeleteMoodsByUser(ctx context.Context, userID domain.UserID) (int, error) {
	return s.deleteByUser(ctx, s.moodCol(), userID)
}
