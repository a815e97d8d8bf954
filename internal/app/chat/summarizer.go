package chat

import (
	"context"

	"github.com/solacehq/solace-api/internal/domain"
	"github.com/solacehq/solace-api/internal/observability"
)

// refreshSummary recomputes the user's wellness summary from the trailing
// turns and overwrites the stored field. Runs detached from the request path;
// every failure is swallowed and logged. Last write wins.
func (s *Service) refreshSummary(ctx context.Context, userID domain.UserID, history []domain.Message, reply string) {
	defer func() {
		if s.summaryDone != nil {
			s.summaryDone()
		}
	}()

	log := observability.Logger().With("user_id", userID, "task", "summary_refresh")

	recent := append(append([]domain.Message{}, tail(history, historyWindow)...), domain.Message{
		Role:    domain.RoleAssistant,
		Content: reply,
	})

	previous := ""
	if user, err := s.users.GetUser(ctx, userID); err == nil {
		previous = user.WellnessSummary
	} else {
		log.Warn("could not load previous summary", "error", err)
	}

	summary, err := s.llm.Summarize(ctx, recent, previous)
	if err != nil {
		log.Warn("summary generation failed", "error", err)
		return
	}

	if err := s.users.UpdateWellnessSummary(ctx, userID, summary); err != nil {
		log.Warn("summary write failed", "error", err)
	}
}

func tail(msgs []domain.Message, n int) []domain.Message {
	if len(msgs) <= n {
		return msgs
	}
	return msgs[len(msgs)-n:]
}
