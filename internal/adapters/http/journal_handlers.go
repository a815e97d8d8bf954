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

type entryRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Mood    string `json:"mood,omitempty"`
}

type entryResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Mood      string    `json:"mood,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type logMoodRequest struct {
	Mood      string `json:"mood"`
	Intensity int    `json:"intensity"`
	Note      string `json:"note,omitempty"`
}

type moodResponse struct {
	ID        string    `json:"id"`
	Mood      string    `json:"mood"`
	Intensity int       `json:"intensity"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toEntryResponse(e *domain.JournalEntry) entryResponse {
	return entryResponse{
		ID:        string(e.ID),
		Title:     e.Title,
		Content:   e.Content,
		Mood:      e.Mood,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func toMoodResponse(m *domain.MoodEntry) moodResponse {
	return moodResponse{
		ID:        string(m.ID),
		Mood:      m.Mood,
		Intensity: m.Intensity,
		Note:      m.Note,
		CreatedAt: m.CreatedAt,
	}
}

// ─────────────────────────────────────────────
// Journal handlers
// ─────────────────────────────────────────────

func (s *Server) handleListEntries(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r)

	entries, err := s.journal.ListEntries(r.Context(), user.ID, 0)
	if err != nil {
		respondError(w, err)
		return
	}

	out := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEntryResponse(e))
	}
	writeJSON(w, http.StatusOK, map[string]any{"entries": out})
}

func (s *Server) handleCreateEntry(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r)

	var req entryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		badRequest(w, "content is required")
		return
	}

	entry, err := s.journal.CreateEntry(r.Context(), user.ID, req.Title, req.Content, req.Mood)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEntryResponse(entry))
}

func (s *Server) handleGetEntry(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r)

	entry, err := s.journal.GetEntry(r.Context(), domain.EntryID(chi.URLParam(r, "entryID")), user.ID)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

func (s *Server) handleUpdateEntry(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r)

	var req entryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		badRequest(w, "content is required")
		return
	}

	entry, err := s.journal.UpdateEntry(
		r.Context(),
		domain.EntryID(chi.URLParam(r, "entryID")),
		user.ID,
		req.Title, req.Content, req.Mood,
	)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

func (s *Server) handleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r)

	err := s.journal.DeleteEntry(r.Context(), domain.EntryID(chi.URLParam(r, "entryID")), user.ID)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ─────────────────────────────────────────────
// Mood handlers
// ─────────────────────────────────────────────

func (s *Server) handleLogMood(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r)

	var req logMoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Mood) == "" {
		badRequest(w, "mood is required")
		return
	}
	if req.Intensity < 1 || req.Intensity > 10 {
		badRequest(w, "intensity must be between 1 and 10")
		return
	}

	entry, err := s.journal.LogMood(r.Context(), user.ID, req.Mood, req.Intensity, req.Note)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toMoodResponse(entry))
}

func (s *Server) handleListMoods(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r)

	moods, err := s.journal.ListMoods(r.Context(), user.ID, 0)
	if err != nil {
		respondError(w, err)
		return
	}

	out := make([]moodResponse, 0, len(moods))
	for _, m := range moods {
		out = append(out, toMoodResponse(m))
	}
	writeJSON(w, http.StatusOK, map[string]any{"moods": out})
}
