package chat

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/solacehq/solace-api/internal/app/activity"
	"github.com/solacehq/solace-api/internal/app/safety"
	"github.com/solacehq/solace-api/internal/domain"
	"github.com/solacehq/solace-api/internal/observability"
)

// ErrGenerateFailed hides completion-service errors from callers; the turn is
// not retried.
var ErrGenerateFailed = errors.New("failed to generate response")

// historyWindow is how many trailing turns feed the summary refresh.
const historyWindow = 6

type Service struct {
	llm        domain.LLMClient
	users      domain.UserStore
	moods      domain.MoodStore
	records    domain.ConversationStore
	activities *activity.Service
	now        func() time.Time

	// summaryDone, when set, is called after a detached summary refresh
	// finishes. Tests use it; production leaves it nil.
	summaryDone func()
}

func NewService(
	llm domain.LLMClient,
	users domain.UserStore,
	moods domain.MoodStore,
	records domain.ConversationStore,
	activities *activity.Service,
) *Service {
	return &Service{
		llm:        llm,
		users:      users,
		moods:      moods,
		records:    records,
		activities: activities,
		now:        time.Now,
	}
}

type SendMessageInput struct {
	// UserID is empty for anonymous callers.
	UserID  domain.UserID
	Message string
	// History holds the prior turns, oldest first, excluding Message.
	History []domain.Message
}

type SendMessageOutput struct {
	Reply     string
	Crisis    bool
	Timestamp time.Time
	Helplines *safety.Helplines
	Actions   []domain.SuggestedAction
}

// SendMessage runs one chat turn: crisis screen first, then context assembly
// and generation. The exchange log and the summary refresh are side effects
// that can never fail the turn.
func (s *Service) SendMessage(ctx context.Context, in SendMessageInput) (*SendMessageOutput, error) {
	log := observability.LoggerFromContext(ctx).With("user_id", in.UserID)
	now := s.now()

	if safety.Detect(in.Message) {
		log.Info("crisis phrase detected, short-circuiting to safety response")

		reply, helplines := safety.CrisisReply()
		s.logExchange(ctx, in.UserID, in.Message, reply, true)

		return &SendMessageOutput{
			Reply:     reply,
			Crisis:    true,
			Timestamp: now,
			Helplines: &helplines,
		}, nil
	}

	userCtx := s.assembleContext(ctx, in.UserID)

	history := append(append([]domain.Message{}, in.History...), domain.Message{
		Role:    domain.RoleUser,
		Content: in.Message,
	})

	reply, err := s.llm.GenerateReply(ctx, history, userCtx)
	if err != nil {
		log.Error("generation failed", "error", err)
		return nil, ErrGenerateFailed
	}

	actions := s.activities.Suggest(ctx, reply)

	s.logExchange(ctx, in.UserID, in.Message, reply, false)

	if in.UserID != "" {
		// Detached from the request: no cancellation, no ordering guarantee.
		// A late refresh losing to a newer one is accepted staleness.
		go s.refreshSummary(context.WithoutCancel(ctx), in.UserID, history, reply)
	}

	log.Info("chat turn completed", "actions", len(actions))

	return &SendMessageOutput{
		Reply:     reply,
		Crisis:    false,
		Timestamp: now,
		Actions:   actions,
	}, nil
}

// assembleContext builds the per-request user view. Anonymous callers and any
// lookup failure fall back to defaults; this never aborts the turn.
func (s *Service) assembleContext(ctx context.Context, userID domain.UserID) domain.UserContext {
	if userID == "" {
		return domain.DefaultUserContext()
	}

	log := observability.LoggerFromContext(ctx).With("user_id", userID)

	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		log.Warn("profile lookup failed, using default context", "error", err)
		return domain.DefaultUserContext()
	}

	userCtx := domain.UserContext{
		DisplayName:     user.DisplayName,
		WellnessSummary: user.WellnessSummary,
	}
	if userCtx.DisplayName == "" {
		userCtx.DisplayName = "Friend"
	}

	moods, err := s.moods.ListRecentMoods(ctx, userID, 3)
	if err != nil {
		log.Warn("mood lookup failed, continuing without moods", "error", err)
		return userCtx
	}
	for _, m := range moods {
		userCtx.RecentMoods = append(userCtx.RecentMoods, *m)
	}

	return userCtx
}

// logExchange appends the conversation record. Best effort, at most once:
// a store failure is logged and dropped.
func (s *Service) logExchange(ctx context.Context, userID domain.UserID, input, output string, crisis bool) {
	rec := &domain.ConversationRecord{
		ID:         domain.RecordID(uuid.NewString()),
		UserID:     userID,
		Input:      input,
		Output:     output,
		CrisisFlag: crisis,
		CreatedAt:  s.now(),
	}

	if err := s.records.AppendRecord(ctx, rec); err != nil {
		observability.LoggerFromContext(ctx).Error("failed to persist conversation record",
			"user_id", userID, "crisis", crisis, "error", err)
	}
}
