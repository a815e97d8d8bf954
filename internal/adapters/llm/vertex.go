package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/solacehq/solace-api/internal/domain"
)

type VertexClient struct {
	client    *genai.Client
	modelName string
}

// NewVertexClient creates a domain.LLMClient backed by Vertex AI (Gemini).
func NewVertexClient(ctx context.Context, projectID, location, modelName string) (*VertexClient, error) {
	if projectID == "" || location == "" {
		return nil, fmt.Errorf("projectID and location are required for the Vertex client")
	}
	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  projectID,
		Location: location,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating Vertex AI client: %w", err)
	}

	return &VertexClient{
		client:    client,
		modelName: modelName,
	}, nil
}

// GenerateReply implements domain.LLMClient using Vertex AI.
func (v *VertexClient) GenerateReply(
	ctx context.Context,
	history []domain.Message,
	userCtx domain.UserContext,
) (string, error) {
	if len(history) == 0 {
		return "", fmt.Errorf("history must end with the current user turn")
	}

	content := BuildUserContent(history, userCtx)
	return v.generate(ctx, systemPrompt, content)
}

// Summarize implements domain.LLMClient using Vertex AI.
func (v *VertexClient) Summarize(
	ctx context.Context,
	recent []domain.Message,
	previous string,
) (string, error) {
	content := BuildSummaryContent(recent, previous)
	return v.generate(ctx, summaryInstruction, content)
}

func (v *VertexClient) generate(ctx context.Context, system, user string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(user, genai.RoleUser),
	}

	// Fixed decoding parameters; nothing here is tuned per request.
	temp := float32(0.7)
	topP := float32(0.9)
	outputTokens := int32(2048)

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		Temperature:       &temp,
		TopP:              &topP,
		MaxOutputTokens:   outputTokens,
	}

	res, err := v.client.Models.GenerateContent(ctx, v.modelName, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("vertex generate content: %w", err)
	}

	text := res.Text()
	if text == "" {
		return "", fmt.Errorf("vertex returned empty text")
	}

	return text, nil
}
