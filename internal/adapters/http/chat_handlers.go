package httpadapter

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/solacehq/solace-api/internal/app/chat"
	"github.com/solacehq/solace-api/internal/app/safety"
	"github.com/solacehq/solace-api/internal/domain"
)

type chatRequest struct {
	Message  string           `json:"message"`
	Messages []domain.Message `json:"messages,omitempty"`

	// Accepted for client compatibility; identity comes from the bearer
	// token, and the extra modalities are not used by the pipeline.
	UserID        string          `json:"userId,omitempty"`
	FacialEmotion string          `json:"facialEmotion,omitempty"`
	MultiModal    json.RawMessage `json:"multiModalData,omitempty"`
}

type chatResponse struct {
	Reply     string                   `json:"reply"`
	Crisis    bool                     `json:"crisis"`
	Timestamp time.Time                `json:"timestamp"`
	Helplines *safety.Helplines        `json:"helplines,omitempty"`
	Buttons   []domain.SuggestedAction `json:"buttons,omitempty"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		badRequest(w, "message is required")
		return
	}

	var userID domain.UserID
	if user := userFrom(r); user != nil {
		userID = user.ID
	}

	out, err := s.chat.SendMessage(r.Context(), chat.SendMessageInput{
		UserID:  userID,
		Message: req.Message,
		History: req.Messages,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{
		Reply:     out.Reply,
		Crisis:    out.Crisis,
		Timestamp: out.Timestamp.UTC(),
		Helplines: out.Helplines,
		Buttons:   out.Actions,
	})
}
