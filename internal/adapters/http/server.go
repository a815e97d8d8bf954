package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/solacehq/solace-api/internal/app/activity"
	"github.com/solacehq/solace-api/internal/app/auth"
	"github.com/solacehq/solace-api/internal/app/chat"
	"github.com/solacehq/solace-api/internal/app/community"
	"github.com/solacehq/solace-api/internal/app/journal"
	"github.com/solacehq/solace-api/internal/app/profile"
)

type Server struct {
	auth       *auth.Service
	chat       *chat.Service
	community  *community.Service
	journal    *journal.Service
	activities *activity.Service
	profile    *profile.Service
}

// NewServer wires all routes. The chat endpoint accepts anonymous callers;
// everything else under /api requires a valid bearer token.
func NewServer(
	authSvc *auth.Service,
	chatSvc *chat.Service,
	communitySvc *community.Service,
	journalSvc *journal.Service,
	activitySvc *activity.Service,
	profileSvc *profile.Service,
) http.Handler {
	s := &Server{
		auth:       authSvc,
		chat:       chatSvc,
		community:  communitySvc,
		journal:    journalSvc,
		activities: activitySvc,
		profile:    profileSvc,
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(withRequestLogging)
	r.Use(withCORS)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(api chi.Router) {
		api.Post("/auth/register", s.handleRegister)
		api.Post("/auth/login", s.handleLogin)

		// Chat works without an account; a valid token personalizes it.
		api.With(s.withOptionalAuth).Post("/chat", s.handleChat)

		api.Group(func(authed chi.Router) {
			authed.Use(s.withAuth)

			authed.Get("/posts", s.handleListPosts)
			authed.Post("/posts", s.handleCreatePost)
			authed.Get("/posts/{postID}", s.handleGetPost)
			authed.Delete("/posts/{postID}", s.handleDeletePost)
			authed.Post("/posts/{postID}/like", s.handleLikePost)
			authed.Post("/posts/{postID}/comments", s.handleAddComment)
			authed.Delete("/posts/{postID}/comments/{commentID}", s.handleDeleteComment)

			authed.Get("/journal", s.handleListEntries)
			authed.Post("/journal", s.handleCreateEntry)
			authed.Get("/journal/{entryID}", s.handleGetEntry)
			authed.Put("/journal/{entryID}", s.handleUpdateEntry)
			authed.Delete("/journal/{entryID}", s.handleDeleteEntry)

			authed.Get("/mood", s.handleListMoods)
			authed.Post("/mood", s.handleLogMood)

			authed.Get("/activities", s.handleListActivities)

			authed.Get("/profile", s.handleGetProfile)
			authed.Put("/profile", s.handleUpdateProfile)
			authed.Delete("/profile/data", s.handleDeleteAllData)
		})
	})

	return r
}
