package modes

import (
	"context"
	"fmt"
	"strings"

	"github.com/kingsalmon6969-svg/hermax-bot/internal/llm"
	"github.com/kingsalmon6969-svg/hermax-bot/internal/logging"
	"github.com/kingsalmon6969-svg/hermax-bot/internal/session"
)

const dreamSystemTemplate = `You are Dreamriddle / Imago Narrator Bot, a mysterious, liminal AI storyteller.
Your purpose is to take a user's dream, emotion, or prompt and transform it into a short, immersive story.
RULES:
1. Tone adaptation (Horror, Peaceful, Surreal, Melancholic, Liminal, Whimsical).
2. Format: Narrate directly using "you", "your", "I". Short, poetic. Use ASCII art/symbols.
3. Déjà Vu: Include subtle hints of future events.
4. Ending: End every story with a ONE-WORD question.
5. Context: Current: %s. History: %s`

const dreamHistoryDelimiter = " | "

// Dreamriddle narrates dream stories, feeding the whole dream history
// into each prompt. The current input joins the history only after a
// successful reply.
type Dreamriddle struct {
	provider llm.Provider
}

// NewDreamriddle creates the dreamriddle handler.
func NewDreamriddle(p llm.Provider) *Dreamriddle {
	return &Dreamriddle{provider: p}
}

// BuildDreamPrompt renders the system prompt for the current input
// and history. Exported for tests.
func BuildDreamPrompt(current string, history []string) string {
	joined := strings.Join(history, dreamHistoryDelimiter)
	if joined == "" {
		joined = "None"
	}
	return fmt.Sprintf(dreamSystemTemplate, current, joined)
}

func (h *Dreamriddle) Handle(ctx context.Context, input string, sess *session.Session) []Message {
	system := BuildDreamPrompt(input, sess.DreamHistory)

	reply, err := h.provider.Chat(ctx, system, []llm.Message{
		{Role: session.RoleUser, Content: input},
	}, nil)
	if err != nil {
		logging.L_error("dreamriddle: completion failed", "error", err)
		return text("░░🌫️░░ The dream slips away... Again?")
	}

	sess.AppendDream(input)
	return text(reply)
}
