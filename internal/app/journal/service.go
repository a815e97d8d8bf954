package journal

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/solacehq/solace-api/internal/domain"
)

// Service holds journal entry and mood log logic.
type Service struct {
	entries domain.JournalStore
	moods   domain.MoodStore
	now     func() time.Time
}

func NewService(entries domain.JournalStore, moods domain.MoodStore) *Service {
	return &Service{
		entries: entries,
		moods:   moods,
		now:     time.Now,
	}
}

func (s *Service) CreateEntry(ctx context.Context, userID domain.UserID, title, content, mood string) (*domain.JournalEntry, error) {
	now := s.now()
	entry := &domain.JournalEntry{
		ID:        domain.EntryID(uuid.NewString()),
		UserID:    userID,
		Title:     title,
		Content:   content,
		Mood:      mood,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.entries.CreateEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *Service) GetEntry(ctx context.Context, id domain.EntryID, callerID domain.UserID) (*domain.JournalEntry, error) {
	entry, err := s.entries.GetEntry(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry.UserID != callerID {
		return nil, domain.ErrForbidden
	}
	return entry, nil
}

func (s *Service) ListEntries(ctx context.Context, userID domain.UserID, limit int) ([]*domain.JournalEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.entries.ListEntriesByUser(ctx, userID, limit)
}

func (s *Service) UpdateEntry(ctx context.Context, id domain.EntryID, callerID domain.UserID, title, content, mood string) (*domain.JournalEntry, error) {
	entry, err := s.entries.GetEntry(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry.UserID != callerID {
		return nil, domain.ErrForbidden
	}

	entry.Title = title
	entry.Content = content
	entry.Mood = mood
	entry.UpdatedAt = s.now()

	if err := s.entries.UpdateEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *Service) DeleteEntry(ctx context.Context, id domain.EntryID, callerID domain.UserID) error {
	entry, err := s.entries.GetEntry(ctx, id)
	if err != nil {
		return err
	}
	if entry.UserID != callerID {
		return domain.ErrForbidden
	}

	return s.entries.DeleteEntry(ctx, id)
}

func (s *Service) LogMood(ctx context.Context, userID domain.UserID, mood string, intensity int, note string) (*domain.MoodEntry, error) {
	entry := &domain.MoodEntry{
		ID:        domain.EntryID(uuid.NewString()),
		UserID:    userID,
		Mood:      mood,
		Intensity: intensity,
		Note:      note,
		CreatedAt: s.now(),
	}

	if err := s.moods.AppendMood(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *Service) ListMoods(ctx context.Context, userID domain.UserID, limit int) ([]*domain.MoodEntry, error) {
	if limit <= 0 {
		limit = 30
	}
	return s.moods.ListRecentMoods(ctx, userID, limit)
}
