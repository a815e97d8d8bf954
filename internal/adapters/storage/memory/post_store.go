package memory

import (
	"context"
	"sync"

	"github.com/solacehq/solace-api/internal/domain"
)

type PostStore struct {
	mu    sync.RWMutex
	posts map[domain.PostID]*domain.Post
	order []domain.PostID
}

func NewPostStore() *PostStore {
	return &PostStore{
		posts: make(map[domain.PostID]*domain.Post),
	}
}

func clonePost(p *domain.Post) *domain.Post {
	cp := *p
	cp.Likes = append([]domain.UserID(nil), p.Likes...)
	cp.Comments = cloneComments(p.Comments)
	return &cp
}

func cloneComments(comments []domain.Comment) []domain.Comment {
	if comments == nil {
		return nil
	}
	out := make([]domain.Comment, len(comments))
	for i, c := range comments {
		out[i] = c
		out[i].Replies = cloneComments(c.Replies)
	}
	return out
}

func (s *PostStore) CreatePost(ctx context.Context, post *domain.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.posts[post.ID]; exists {
		return domain.ErrAlreadyExists
	}

	s.posts[post.ID] = clonePost(post)
	s.order = append(s.order, post.ID)
	return nil
}

func (s *PostStore) GetPost(ctx context.Context, id domain.PostID) (*domain.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.posts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return clonePost(p), nil
}

func (s *PostStore) ListPosts(ctx context.Context, limit int) ([]*domain.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Post, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		if p, ok := s.posts[s.order[i]]; ok {
			out = append(out, clonePost(p))
		}
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (s *PostStore) DeletePost(ctx context.Context, id domain.PostID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[id]; !ok {
		return domain.ErrNotFound
	}

	delete(s.posts, id)
	for i, pid := range s.order {
		if pid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// LikePost mirrors the Firestore transaction: the read and the write happen
// under one lock, so duplicate concurrent likes collapse to a single entry.
func (s *PostStore) LikePost(ctx context.Context, id domain.PostID, userID domain.UserID) (*domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	for _, uid := range p.Likes {
		if uid == userID {
			return clonePost(p), nil
		}
	}

	p.Likes = append(p.Likes, userID)
	return clonePost(p), nil
}

func (s *PostStore) DeletePostsByUser(ctx context.Context, userID domain.UserID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	kept := s.order[:0]
	for _, id := range s.order {
		p := s.posts[id]
		if p != nil && p.AuthorID == userID {
			delete(s.posts, id)
			n++
			continue
		}
		kept = append(kept, id)
	}
	s.order = kept
	return n, nil
}

func (s *PostStore) SetComments(ctx context.Context, id domain.PostID, comments []domain.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[id]
	if !ok {
		return domain.ErrNotFound
	}

	p.Comments = cloneComments(comments)
	return nil
}
