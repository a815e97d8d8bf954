package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/solacehq/solace-api/internal/domain"
)

// ─────────────────────────────────────────
// ConversationStore implementation
// ─────────────────────────────────────────

func (s *Store) AppendRecord(ctx context.Context, rec *domain.ConversationRecord) error {
	doc := recordDoc{
		UserID:     string(rec.UserID),
		Input:      rec.Input,
		Output:     rec.Output,
		CrisisFlag: rec.CrisisFlag,
		CreatedAt:  rec.CreatedAt,
	}

	if _, err := s.chatConversationsCol().Doc(string(rec.ID)).Set(ctx, doc); err != nil {
		return fmt.Errorf("firestore AppendRecord: %w", err)
	}
	return nil
}

func (s *Store) ListRecentRecords(ctx context.Context, userID domain.UserID, limit int) ([]*domain.ConversationRecord, error) {
	q := s.chatConversationsCol().
		Where("user_id", "==", string(userID)).
		OrderBy("created_at", firestore.Desc)
	if limit > 0 {
		q = q.Limit(limit)
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	var out []*domain.ConversationRecord
	for {
		snap, err := iter.Next()
		if err != nil {
			if err == iterator.Done {
				break
			}
			return nil, fmt.Errorf("firestore ListRecentRecords: %w", err)
		}

		var doc recordDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("decode recordDoc: %w", err)
		}

		out = append(out, &domain.ConversationRecord{
			ID:         domain.RecordID(snap.Ref.ID),
			UserID:     domain.UserID(doc.UserID),
			Input:      doc.Input,
			Output:     doc.Output,
			CrisisFlag: doc.CrisisFlag,
			CreatedAt:  doc.CreatedAt,
		})
	}
	return out, nil
}

// DeleteRecordsByUser removes the user's exchange log, sweeping both the
// current collection and the legacy one from earlier app versions.
func (s *Store) DeleteRecordsByUser(ctx context.Context, userID domain.UserID) (int, error) {
	n, err := s.deleteByUser(ctx, s.chatConversationsCol(), userID)
	if err != nil {
		return n, err
	}

	legacy, err := s.deleteByUser(ctx, s.legacyConversationsCol(), userID)
	return n + legacy, err
}
