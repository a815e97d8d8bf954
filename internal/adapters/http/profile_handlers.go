package httpadapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/solacehq/solace-api/internal/domain"
)

type updateProfileRequest struct {
	DisplayName string `json:"display_name"`
}

type activityResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Link        string `json:"link"`
}

func toActivityResponse(a *domain.Activity) activityResponse {
	return activityResponse{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Category:    a.Category,
		Link:        a.Link,
	}
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r)

	u, err := s.profile.Get(r.Context(), user.ID)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserProfile(u))
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r)

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.DisplayName) == "" {
		badRequest(w, "display_name is required")
		return
	}

	u, err := s.profile.Update(r.Context(), user.ID, req.DisplayName)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserProfile(u))
}

// handleDeleteAllData wipes the caller's conversations, journal, moods, and
// posts. Counts only what was actually deleted; a partly failed wipe still
// reports its progress.
func (s *Server) handleDeleteAllData(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r)

	deleted, err := s.profile.DeleteAllData(r.Context(), user.ID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error":   "some data could not be deleted",
			"deleted": deleted,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "deleted",
		"deleted": deleted,
	})
}

func (s *Server) handleListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := s.activities.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	out := make([]activityResponse, 0, len(activities))
	for _, a := range activities {
		out = append(out, toActivityResponse(a))
	}
	writeJSON(w, http.StatusOK, map[string]any{"activities": out})
}
