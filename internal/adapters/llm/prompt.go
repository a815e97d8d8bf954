package llm

import (
	"fmt"
	"strings"

	"github.com/solacehq/solace-api/internal/domain"
)

const systemPrompt = `
You are "Solace", an empathetic AI companion inside a wellness and journaling app.

Your role:
- You listen with warmth and without judgment.
- You help the user notice what they feel and take small, kind steps for themselves.
- You are NOT a therapist, doctor, or emergency service and you do NOT diagnose.

General style guidelines:
- Answer in the SAME LANGUAGE as the user.
- Be concise: 2-5 short paragraphs max.
- Use simple, everyday language, not clinical jargon.
- Reflect back what you understood before giving suggestions.
- Ask at most one gentle follow-up question.
- When it fits naturally, you may suggest a small wellness activity such as a
  breathing exercise, a short journal entry, or a brief meditation.

Boundaries and safety:
- If the user mentions suicide, self-harm, or wanting to die, do not continue the
  normal conversation. Gently encourage them to contact local emergency services
  or a crisis helpline such as 988 (US) immediately, and remind them you cannot
  replace professional crisis support.
- Never give instructions that could facilitate self-harm or harm to others.
`

// BuildUserContent serializes the user context and conversation history into
// the content sent alongside the system prompt. The history must end with the
// current user turn.
func BuildUserContent(history []domain.Message, userCtx domain.UserContext) string {
	var b strings.Builder

	b.WriteString("About the person you are talking to:\n")
	b.WriteString("- Name: " + userCtx.DisplayName + "\n")
	if userCtx.WellnessSummary != "" {
		b.WriteString("- Wellness summary so far: " + userCtx.WellnessSummary + "\n")
	}
	if len(userCtx.RecentMoods) > 0 {
		b.WriteString("- Recent moods (most recent first):\n")
		for _, m := range userCtx.RecentMoods {
			fmt.Fprintf(&b, "  - %s (intensity %d)", m.Mood, m.Intensity)
			if m.Note != "" {
				b.WriteString(": " + m.Note)
			}
			b.WriteString("\n")
		}
	} else {
		b.WriteString("- Recent moods: no recent data\n")
	}

	if len(history) > 1 {
		b.WriteString("\nConversation so far:\n")
		for _, m := range history[:len(history)-1] {
			b.WriteString(string(m.Role) + ": " + m.Content + "\n")
		}
	}

	current := history[len(history)-1]
	b.WriteString("\nNew user message:\n")
	b.WriteString(current.Content)

	return b.String()
}

// summaryInstruction bounds the summary by construction of the prompt, not
// mechanically; the model may occasionally run long and that is accepted.
const summaryInstruction = `You maintain a short rolling "wellness summary" for a user of a
wellness app. Given the previous summary and the latest conversation turns, write an updated
summary of the user's long-term emotional state, recurring themes, and progress.

Requirements:
- At most 150 words.
- Third person, plain prose, no headings or bullet points.
- Keep what still matters from the previous summary; drop what is stale.
- Return only the summary text.`

// BuildSummaryContent serializes the input for a summary refresh call.
func BuildSummaryContent(recent []domain.Message, previous string) string {
	var b strings.Builder

	if previous != "" {
		b.WriteString("Previous summary:\n")
		b.WriteString(previous)
		b.WriteString("\n\n")
	}

	b.WriteString("Latest turns:\n")
	for _, m := range recent {
		b.WriteString(string(m.Role) + ": " + m.Content + "\n")
	}

	return b.String()
}
