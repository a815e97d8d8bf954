package firestore

import (
	"context"
	"fmt"

	"google.golang.org/api/iterator"

	"github.com/solacehq/solace-api/internal/domain"
)

// ─────────────────────────────────────────
// ActivityStore implementation
// ─────────────────────────────────────────

func (s *Store) ListActivities(ctx context.Context) ([]*domain.Activity, error) {
	iter := s.activitiesCol().Documents(ctx)
	defer iter.Stop()

	var out []*domain.Activity
	for {
		snap, err := iter.Next()
		if err != nil {
			if err == iterator.Done {
				break
			}
			return nil, fmt.Errorf("firestore ListActivities: %w", err)
		}

		var doc activityDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("decode activityDoc: %w", err)
		}

		out = append(out, activityFromDoc(snap.Ref.ID, doc))
	}
	return out, nil
}

func (s *Store) GetActivity(ctx context.Context, id string) (*domain.Activity, error) {
	snap, err := s.activitiesCol().Doc(id).Get(ctx)
	if err != nil {
		return nil, mapNotFound(err, "firestore GetActivity")
	}

	var doc activityDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("firestore GetActivity decode: %w", err)
	}

	return activityFromDoc(id, doc), nil
}

func activityFromDoc(id string, doc activityDoc) *domain.Activity {
	return &domain.Activity{
		ID:          id,
		Title:       doc.Title,
		Description: doc.Description,
		Category:    doc.Category,
		Link:        doc.Link,
	}
}
