package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/solacehq/solace-api/internal/domain"
)

// ─────────────────────────────────────────
// PostStore implementation
// ─────────────────────────────────────────

func (s *Store) CreatePost(ctx context.Context, post *domain.Post) error {
	doc := postDoc{
		AuthorID:   string(post.AuthorID),
		AuthorName: post.AuthorName,
		Content:    post.Content,
		Likes:      likesToStrings(post.Likes),
		Comments:   post.Comments,
		CreatedAt:  post.CreatedAt,
	}
	if doc.Likes == nil {
		doc.Likes = []string{}
	}
	if doc.Comments == nil {
		doc.Comments = []domain.Comment{}
	}

	if _, err := s.postDoc(post.ID).Create(ctx, doc); err != nil {
		return fmt.Errorf("firestore CreatePost: %w", err)
	}
	return nil
}

func (s *Store) GetPost(ctx context.Context, id domain.PostID) (*domain.Post, error) {
	snap, err := s.postDoc(id).Get(ctx)
	if err != nil {
		return nil, mapNotFound(err, "firestore GetPost")
	}

	var doc postDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("firestore GetPost decode: %w", err)
	}

	return postFromDoc(id, doc), nil
}

func (s *Store) ListPosts(ctx context.Context, limit int) ([]*domain.Post, error) {
	q := s.postsCol().OrderBy("created_at", firestore.Desc)
	if limit > 0 {
		q = q.Limit(limit)
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	var out []*domain.Post
	for {
		snap, err := iter.Next()
		if err != nil {
			if err == iterator.Done {
				break
			}
			return nil, fmt.Errorf("firestore ListPosts: %w", err)
		}

		var doc postDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("decode postDoc: %w", err)
		}

		out = append(out, postFromDoc(domain.PostID(snap.Ref.ID), doc))
	}
	return out, nil
}

func (s *Store) DeletePost(ctx context.Context, id domain.PostID) error {
	if _, err := s.postDoc(id).Get(ctx); err != nil {
		return mapNotFound(err, "firestore DeletePost")
	}

	if _, err := s.postDoc(id).Delete(ctx); err != nil {
		return fmt.Errorf("firestore DeletePost: %w", err)
	}
	return nil
}

// LikePost runs an atomic read-modify-write on the single post document so
// concurrent duplicate likes collapse to one entry. This is the only place
// the store uses an explicit transaction.
func (s *Store) LikePost(ctx context.Context, id domain.PostID, userID domain.UserID) (*domain.Post, error) {
	ref := s.postDoc(id)
	var result postDoc

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			return mapNotFound(err, "firestore LikePost get")
		}

		var doc postDoc
		if err := snap.DataTo(&doc); err != nil {
			return fmt.Errorf("firestore LikePost decode: %w", err)
		}

		for _, uid := range doc.Likes {
			if uid == string(userID) {
				result = doc
				return nil
			}
		}

		doc.Likes = append(doc.Likes, string(userID))
		result = doc
		return tx.Update(ref, []firestore.Update{
			{Path: "likes", Value: doc.Likes},
		})
	})
	if err != nil {
		return nil, err
	}

	return postFromDoc(id, result), nil
}

func (s *Store) SetComments(ctx context.Context, id domain.PostID, comments []domain.Comment) error {
	if comments == nil {
		comments = []domain.Comment{}
	}

	_, err := s.postDoc(id).Update(ctx, []firestore.Update{
		{Path: "comments", Value: comments},
	})
	if err != nil {
		return mapNotFound(err, "firestore SetComments")
	}
	return nil
}

// DeletePostsByUser removes the user's own posts as part of the bulk wipe.
func (s *Store) DeletePostsByUser(ctx context.Context, userID domain.UserID) (int, error) {
	iter := s.postsCol().Where("author_id", "==", string(userID)).Documents(ctx)
	defer iter.Stop()

	var refs []*firestore.DocumentRef
	for {
		snap, err := iter.Next()
		if err != nil {
			if err == iterator.Done {
				break
			}
			return 0, fmt.Errorf("firestore DeletePostsByUser query: %w", err)
		}
		refs = append(refs, snap.Ref)
	}

	n := 0
	for _, ref := range refs {
		if _, err := ref.Delete(ctx); err != nil {
			return n, fmt.Errorf("firestore DeletePostsByUser: %w", err)
		}
		n++
	}
	return n, nil
}

func likesToStrings(likes []domain.UserID) []string {
	out := make([]string, 0, len(likes))
	for _, id := range likes {
		out = append(out, string(id))
	}
	return out
}

func postFromDoc(id domain.PostID, doc postDoc) *domain.Post {
	likes := make([]domain.UserID, 0, len(doc.Likes))
	for _, uid := range doc.Likes {
		likes = append(likes, domain.UserID(uid))
	}

	return &domain.Post{
		ID:         id,
		AuthorID:   domain.UserID(doc.AuthorID),
		AuthorName: doc.AuthorName,
		Content:    doc.Content,
		Likes:      likes,
		Comments:   doc.Comments,
		CreatedAt:  doc.CreatedAt,
	}
}
