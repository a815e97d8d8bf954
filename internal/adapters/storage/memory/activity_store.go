package memory

import (
	"context"

	"github.com/solacehq/solace-api/internal/domain"
)

// ActivityStore serves a fixed catalog. The catalog is read-only after
// construction so no locking is needed.
type ActivityStore struct {
	activities []*domain.Activity
	byID       map[string]*domain.Activity
}

// NewActivityStore seeds the built-in wellness activities.
func NewActivityStore() *ActivityStore {
	seed := []*domain.Activity{
		{
			ID:          "breathing",
			Title:       "Guided Breathing",
			Description: "A 3-minute box-breathing exercise to settle your nervous system.",
			Category:    "calm",
			Link:        "/activities/breathing",
		},
		{
			ID:          "journaling",
			Title:       "Journal Prompt",
			Description: "Write a few lines about what is on your mind today.",
			Category:    "reflect",
			Link:        "/activities/journaling",
		},
		{
			ID:          "meditation",
			Title:       "Short Meditation",
			Description: "A 5-minute guided body-scan meditation.",
			Category:    "calm",
			Link:        "/activities/meditation",
		},
		{
			ID:          "walk",
			Title:       "Mindful Walk",
			Description: "Step outside for a 10-minute walk and notice five things you can see.",
			Category:    "move",
			Link:        "/activities/walk",
		},
		{
			ID:          "gratitude",
			Title:       "Gratitude List",
			Description: "Note three small things you are grateful for right now.",
			Category:    "reflect",
			Link:        "/activities/gratitude",
		},
	}

	byID := make(map[string]*domain.Activity, len(seed))
	for _, a := range seed {
		byID[a.ID] = a
	}

	return &ActivityStore{activities: seed, byID: byID}
}

func (s *ActivityStore) ListActivities(ctx context.Context) ([]*domain.Activity, error) {
	out := make([]*domain.Activity, len(s.activities))
	copy(out, s.activities)
	return out, nil
}

func (s *ActivityStore) GetActivity(ctx context.Context, id string) (*domain.Activity, error) {
	a, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return a, nil
}
