package community

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/solacehq/solace-api/internal/domain"
	"github.com/solacehq/solace-api/internal/observability"
)

// Service holds community post and comment logic.
type Service struct {
	posts domain.PostStore
	now   func() time.Time
}

func NewService(posts domain.PostStore) *Service {
	return &Service{
		posts: posts,
		now:   time.Now,
	}
}

func (s *Service) CreatePost(ctx context.Context, authorID domain.UserID, authorName, content string) (*domain.Post, error) {
	post := &domain.Post{
		ID:         domain.PostID(uuid.NewString()),
		AuthorID:   authorID,
		AuthorName: authorName,
		Content:    content,
		Likes:      []domain.UserID{},
		Comments:   []domain.Comment{},
		CreatedAt:  s.now(),
	}

	if err := s.posts.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	observability.LoggerFromContext(ctx).Info("post created",
		"post_id", post.ID, "author_id", authorID)
	return post, nil
}

func (s *Service) GetPost(ctx context.Context, id domain.PostID) (*domain.Post, error) {
	return s.posts.GetPost(ctx, id)
}

func (s *Service) ListPosts(ctx context.Context, limit int) ([]*domain.Post, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.posts.ListPosts(ctx, limit)
}

// DeletePost removes the caller's own post; anyone else gets ErrForbidden.
func (s *Service) DeletePost(ctx context.Context, id domain.PostID, callerID domain.UserID) error {
	post, err := s.posts.GetPost(ctx, id)
	if err != nil {
		return err
	}

	if post.AuthorID != callerID {
		return domain.ErrForbidden
	}

	return s.posts.DeletePost(ctx, id)
}

// LikePost records the caller's like. Idempotent: liking twice leaves exactly
// one entry; the store's single-document transaction handles concurrent
// duplicates.
func (s *Service) LikePost(ctx context.Context, id domain.PostID, userID domain.UserID) (*domain.Post, error) {
	return s.posts.LikePost(ctx, id, userID)
}

// AddComment appends a comment at top level (parentID empty) or under the
// identified parent anywhere in the reply tree.
func (s *Service) AddComment(
	ctx context.Context,
	postID domain.PostID,
	parentID domain.CommentID,
	authorID domain.UserID,
	authorName, content string,
) (*domain.Post, error) {
	post, err := s.posts.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := domain.Comment{
		ID:         domain.CommentID(uuid.NewString()),
		AuthorID:   authorID,
		AuthorName: authorName,
		Content:    content,
		CreatedAt:  s.now(),
	}

	if parentID == "" {
		post.Comments = append(post.Comments, comment)
	} else {
		parent := domain.FindComment(post.Comments, parentID)
		if parent == nil {
			return nil, domain.ErrNotFound
		}
		parent.Replies = append(parent.Replies, comment)
	}

	if err := s.posts.SetComments(ctx, postID, post.Comments); err != nil {
		return nil, err
	}
	return post, nil
}

// DeleteComment removes the identified comment and its replies. Only the
// comment's author may delete it; a forbidden attempt leaves the tree
// unchanged.
func (s *Service) DeleteComment(
	ctx context.Context,
	postID domain.PostID,
	commentID domain.CommentID,
	callerID domain.UserID,
) (*domain.Post, error) {
	post, err := s.posts.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := domain.FindComment(post.Comments, commentID)
	if comment == nil {
		return nil, domain.ErrNotFound
	}
	if comment.AuthorID != callerID {
		return nil, domain.ErrForbidden
	}

	tree, removed := domain.RemoveComment(post.Comments, commentID)
	if !removed {
		return nil, domain.ErrNotFound
	}
	post.Comments = tree

	if err := s.posts.SetComments(ctx, postID, tree); err != nil {
		return nil, err
	}
	return post, nil
}
