package httpadapter

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/solacehq/solace-api/internal/domain"
)

// ─────────────────────────────────────────────
// DTOs
// ─────────────────────────────────────────────

type createPostRequest struct {
	Content string `json:"content"`
}

type addCommentRequest struct {
	Content  string `json:"content"`
	ParentID string `json:"parent_id,omitempty"`
}

type postResponse struct {
	ID         string           `json:"id"`
	AuthorID   string           `json:"author_id"`
	AuthorName string           `json:"author_name"`
	Content    string           `json:"content"`
	Likes      []string         `json:"likes"`
	LikeCount  int              `json:"like_count"`
	Comments   []domain.Comment `json:"comments"`
	CreatedAt  time.Time        `json:"created_at"`
}

func toPostResponse(p *domain.Post) postResponse {
	likes := make([]string, 0, len(p.Likes))
	for _, id := range p.Likes {
		likes = append(likes, string(id))
	}

	comments := p.Comments
	if comments == nil {
		comments = []domain.Comment{}
	}

	return postResponse{
		ID:         string(p.ID),
		AuthorID:   string(p.AuthorID),
		AuthorName: p.AuthorName,
		Content:    p.Content,
		Likes:      likes,
		LikeCount:  len(likes),
		Comments:   comments,
		CreatedAt:  p.CreatedAt,
	}
}

// ─────────────────────────────────────────────
// Handlers
// ─────────────────────────────────────────────

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := s.community.ListPosts(r.Context(), 0)
	if err != nil {
		respondError(w, err)
		return
	}

	out := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, toPostResponse(p))
	}
	writeJSON(w, http.StatusOK, map[string]any{"posts": out})
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r)

	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		badRequest(w, "content is required")
		return
	}

	post, err := s.community.CreatePost(r.Context(), user.ID, user.DisplayName, req.Content)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPostResponse(post))
}

func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {
	post, err := s.community.GetPost(r.Context(), domain.PostID(chi.URLParam(r, "postID")))
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPostResponse(post))
}

func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r)

	err := s.community.DeletePost(r.Context(), domain.PostID(chi.URLParam(r, "postID")), user.ID)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleLikePost(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r)

	post, err := s.community.LikePost(r.Context(), domain.PostID(chi.URLParam(r, "postID")), user.ID)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPostResponse(post))
}

func (s *Server) handleAddComment(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r)

	var req addCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		badRequest(w, "content is required")
		return
	}

	post, err := s.community.AddComment(
		r.Context(),
		domain.PostID(chi.URLParam(r, "postID")),
		domain.CommentID(req.ParentID),
		user.ID,
		user.DisplayName,
		req.Content,
	)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPostResponse(post))
}

func (s *Server) handleDeleteComment(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r)

	post, err := s.community.DeleteComment(
		r.Context(),
		domain.PostID(chi.URLParam(r, "postID")),
		domain.CommentID(chi.URLParam(r, "commentID")),
		user.ID,
	)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toPostResponse(post))
}
