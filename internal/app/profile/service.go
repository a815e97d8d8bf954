package profile

import (
	"context"
	"errors"

	"github.com/solacehq/solace-api/internal/domain"
	"github.com/solacehq/solace-api/internal/observability"
)

// Service reads and updates the user profile and owns the full data wipe.
type Service struct {
	users   domain.UserStore
	records domain.ConversationStore
	entries domain.JournalStore
	moods   domain.MoodStore
	posts   domain.PostStore
}

func NewService(
	users domain.UserStore,
	records domain.ConversationStore,
	entries domain.JournalStore,
	moods domain.MoodStore,
	posts domain.PostStore,
) *Service {
	return &Service{
		users:   users,
		records: records,
		entries: entries,
		moods:   moods,
		posts:   posts,
	}
}

func (s *Service) Get(ctx context.Context, userID domain.UserID) (*domain.User, error) {
	return s.users.GetUser(ctx, userID)
}

func (s *Service) Update(ctx context.Context, userID domain.UserID, displayName string) (*domain.User, error) {
	if err := s.users.UpdateProfile(ctx, userID, displayName); err != nil {
		return nil, err
	}
	return s.users.GetUser(ctx, userID)
}

// DeleteAllData removes the user's conversations, journal entries, mood logs,
// and posts. Each collection is wiped independently; a failure in one does
// not roll back the others. Returns how many documents were deleted.
func (s *Service) DeleteAllData(ctx context.Context, userID domain.UserID) (int, error) {
	log := observability.LoggerFromContext(ctx).With("user_id", userID)

	total := 0
	var errs []error

	steps := []struct {
		name string
		fn   func(context.Context, domain.UserID) (int, error)
	}{
		{"conversations", s.records.DeleteRecordsByUser},
		{"journal entries", s.entries.DeleteEntriesByUser},
		{"mood entries", s.moods.DeleteMoodsByUser},
		{"posts", s.posts.DeletePostsByUser},
	}

	for _, step := range steps {
		n, err := step.fn(ctx, userID)
		total += n
		if err != nil {
			log.Error("bulk delete step failed", "step", step.name, "deleted", n, "error", err)
			errs = append(errs, err)
			continue
		}
		log.Info("bulk delete step done", "step", step.name, "deleted", n)
	}

	return total, errors.Join(errs...)
}
