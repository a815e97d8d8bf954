package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/iterator"

	"github.com/solacehq/solace-api/internal/domain"
)

// deleteByUser removes every document in col whose user_id matches. Writes
// are chunked into batches of at most maxBatchSize, committed concurrently,
// and awaited jointly. A failed batch does not roll back the others; the
// count reflects documents in successfully committed batches only.
func (s *Store) deleteByUser(ctx context.Context, col *firestore.CollectionRef, userID domain.UserID) (int, error) {
	iter := col.Where("user_id", "==", string(userID)).Documents(ctx)
	defer iter.Stop()

	var refs []*firestore.DocumentRef
	for {
		snap, err := iter.Next()
		if err != nil {
			if err == iterator.Done {
				break
			}
			return 0, fmt.Errorf("firestore deleteByUser query %s: %w", col.ID, err)
		}
		refs = append(refs, snap.Ref)
	}

	if len(refs) == 0 {
		return 0, nil
	}

	var g errgroup.Group
	deleted := make([]int, (len(refs)+maxBatchSize-1)/maxBatchSize)

	for i := 0; i < len(refs); i += maxBatchSize {
		chunk := refs[i:min(i+maxBatchSize, len(refs))]
		slot := i / maxBatchSize
		g.Go(func() error {
			batch := s.client.Batch()
			for _, ref := range chunk {
				batch.Delete(ref)
			}
			if _, err := batch.Commit(ctx); err != nil {
				return fmt.Errorf("firestore deleteByUser commit %s: %w", col.ID, err)
			}
			deleted[slot] = len(chunk)
			return nil
		})
	}

	err := g.Wait()

	total := 0
	for _, n := range deleted {
		total += n
	}
	return total, err
}
