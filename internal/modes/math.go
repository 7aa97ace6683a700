package modes

import (
	"context"
	"fmt"

	"github.com/kingsalmon6969-svg/hermax-bot/internal/llm"
	"github.com/kingsalmon6969-svg/hermax-bot/internal/logging"
	"github.com/kingsalmon6969-svg/hermax-bot/internal/session"
)

const mathSystemPrompt = "You are a brilliant math expert with a cute and friendly vibe. " +
	"Solve the math problem provided clearly and step-by-step. You can handle everything " +
	"from basic arithmetic to complex calculus, trigonometry, multiple variables, and " +
	"imaginary numbers. Use lots of emojis and be very encouraging! ✨🌸💖"

// Math solves math problems via the LLM. Stateless; no retry.
type Math struct {
	provider llm.Provider
}

// NewMath creates the math handler.
func NewMath(p llm.Provider) *Math {
	return &Math{provider: p}
}

func (h *Math) Handle(ctx context.Context, problem string, _ *session.Session) []Message {
	reply, err := h.provider.Chat(ctx, mathSystemPrompt, []llm.Message{
		{Role: session.RoleUser, Content: fmt.Sprintf("Please solve this math problem: %s", problem)},
	}, nil)
	if err != nil {
		logging.L_error("math: completion failed", "error", err)
		return text("Sorry, my math brain is a bit fuzzy right now. 😿✨")
	}
	return text(reply)
}
