package llm

import (
	"context"
	"fmt"

	"github.com/solacehq/solace-api/internal/domain"
)

type MockLLM struct{}

func NewMockLLM() *MockLLM {
	return &MockLLM{}
}

func (m *MockLLM) GenerateReply(ctx context.Context, history []domain.Message, userCtx domain.UserContext) (string, error) {
	current := ""
	if len(history) > 0 {
		current = history[len(history)-1].Content
	}
	return fmt.Sprintf("I hear you, %s. You said %q. Tell me a bit more about how that feels.",
		userCtx.DisplayName, current), nil
}

func (m *MockLLM) Summarize(ctx context.Context, recent []domain.Message, previous string) (string, error) {
	return fmt.Sprintf("The user has shared %d recent messages. Previous notes: %s", len(recent), previous), nil
}
