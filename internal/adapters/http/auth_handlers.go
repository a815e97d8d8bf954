package httpadapter

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/solacehq/solace-api/internal/domain"
)

type registerRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  userProfile `json:"user"`
}

type userProfile struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	DisplayName     string    `json:"display_name"`
	WellnessSummary string    `json:"wellness_summary,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func toUserProfile(u *domain.User) userProfile {
	return userProfile{
		ID:              string(u.ID),
		Email:           u.Email,
		DisplayName:     u.DisplayName,
		WellnessSummary: u.WellnessSummary,
		CreatedAt:       u.CreatedAt,
	}
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	if !strings.Contains(req.Email, "@") {
		badRequest(w, "email is required and must be a valid address")
		return
	}
	if len(req.Password) < 8 {
		badRequest(w, "password must be at least 8 characters")
		return
	}

	user, token, err := s.auth.Register(r.Context(), req.Email, req.Password, req.DisplayName)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, authResponse{
		Token: token,
		User:  toUserProfile(user),
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	if req.Email == "" {
		badRequest(w, "email is required")
		return
	}
	if req.Password == "" {
		badRequest(w, "password is required")
		return
	}

	user, token, err := s.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, authResponse{
		Token: token,
		User:  toUserProfile(user),
	})
}
