package activity

import (
	"context"
	"strings"

	"github.com/solacehq/solace-api/internal/domain"
	"github.com/solacehq/solace-api/internal/observability"
)

// keywordsByActivity maps catalog ids to the phrases that mark a reply as
// mentioning that activity. Matching is a plain case-insensitive substring
// scan over the model's own output; it is a rendering hint, not a claim the
// activity is relevant.
var keywordsByActivity = map[string][]string{
	"breathing":  {"breathing", "breathe", "breath"},
	"journaling": {"journal", "write down", "writing down"},
	"meditation": {"meditation", "meditate", "mindfulness"},
	"walk":       {"walk", "stroll", "step outside"},
	"gratitude":  {"gratitude", "grateful", "thankful"},
}

// scanOrder fixes the order suggestions come back in.
var scanOrder = []string{"breathing", "journaling", "meditation", "walk", "gratitude"}

// Service serves the activities catalog and matches replies against it.
type Service struct {
	store domain.ActivityStore
}

func NewService(store domain.ActivityStore) *Service {
	return &Service{store: store}
}

func (s *Service) List(ctx context.Context) ([]*domain.Activity, error) {
	return s.store.ListActivities(ctx)
}

// Suggest scans a generated reply for activity keywords and returns one
// suggested action per matched catalog entry. Lookup failures are swallowed:
// a missing affordance never degrades the chat turn.
func (s *Service) Suggest(ctx context.Context, reply string) []domain.SuggestedAction {
	lowered := strings.ToLower(reply)

	var actions []domain.SuggestedAction
	for _, id := range scanOrder {
		if !containsAny(lowered, keywordsByActivity[id]) {
			continue
		}

		act, err := s.store.GetActivity(ctx, id)
		if err != nil {
			observability.LoggerFromContext(ctx).Warn("activity lookup failed",
				"activity_id", id, "error", err)
			continue
		}

		actions = append(actions, domain.SuggestedAction{
			Label: act.Title,
			Link:  act.Link,
		})
	}
	return actions
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
