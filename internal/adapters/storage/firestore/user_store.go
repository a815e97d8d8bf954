package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/solacehq/solace-api/internal/domain"
)

// ─────────────────────────────────────────
// UserStore implementation
// ─────────────────────────────────────────

func (s *Store) CreateUser(ctx context.Context, user *domain.User) error {
	// Email uniqueness check first; the create below is keyed by id.
	existing := s.usersCol().Where("email", "==", user.Email).Limit(1).Documents(ctx)
	defer existing.Stop()
	if _, err := existing.Next(); err == nil {
		return domain.ErrAlreadyExists
	} else if err != iterator.Done {
		return fmt.Errorf("firestore CreateUser email check: %w", err)
	}

	doc := userDoc{
		Email:           user.Email,
		DisplayName:     user.DisplayName,
		PasswordHash:    user.PasswordHash,
		WellnessSummary: user.WellnessSummary,
		CreatedAt:       user.CreatedAt,
	}

	if _, err := s.userDoc(user.ID).Create(ctx, doc); err != nil {
		return fmt.Errorf("firestore CreateUser: %w", err)
	}
	return nil
}

func (s *Store) GetUser(ctx context.Context, id domain.UserID) (*domain.User, error) {
	snap, err := s.userDoc(id).Get(ctx)
	if err != nil {
		return nil, mapNotFound(err, "firestore GetUser")
	}

	var doc userDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("firestore GetUser decode: %w", err)
	}

	return userFromDoc(id, doc), nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	iter := s.usersCol().Where("email", "==", email).Limit(1).Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("firestore GetUserByEmail: %w", err)
	}

	var doc userDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("firestore GetUserByEmail decode: %w", err)
	}

	return userFromDoc(domain.UserID(snap.Ref.ID), doc), nil
}

func (s *Store) UpdateProfile(ctx context.Context, id domain.UserID, displayName string) error {
	_, err := s.userDoc(id).Update(ctx, []firestore.Update{
		{Path: "display_name", Value: displayName},
	})
	if err != nil {
		return mapNotFound(err, "firestore UpdateProfile")
	}
	return nil
}

// UpdateWellnessSummary overwrites the stored summary. Last write wins; the
// summarizer accepts that a stale refresh can clobber a newer one.
func (s *Store) UpdateWellnessSummary(ctx context.Context, id domain.UserID, summary string) error {
	_, err := s.userDoc(id).Update(ctx, []firestore.Update{
		{Path: "wellness_summary", Value: summary},
	})
	if err != nil {
		return mapNotFound(err, "firestore UpdateWellnessSummary")
	}
	return nil
}

func userFromDoc(id domain.UserID, doc userDoc) *domain.User {
	return &domain.User{
		ID:              id,
		Email:           doc.Email,
		DisplayName:     doc.DisplayName,
		PasswordHash:    doc.PasswordHash,
		WellnessSummary: doc.WellnessSummary,
		CreatedAt:       doc.CreatedAt,
	}
}
