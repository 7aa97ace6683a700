package modes

import (
	"context"

	"github.com/kingsalmon6969-svg/hermax-bot/internal/llm"
	"github.com/kingsalmon6969-svg/hermax-bot/internal/logging"
	"github.com/kingsalmon6969-svg/hermax-bot/internal/session"
)

const aiChatSystemPrompt = "You are a helpful assistant with a cute and friendly vibe. " +
	"Use lots of emojis in your responses and be very polite and cheerful! ✨🌸💖"

// AIChat runs the rolling AI conversation. On success it appends both
// the user turn and the assistant turn to the session's chat history;
// on failure the history is left exactly as it was.
type AIChat struct {
	provider llm.Provider
}

// NewAIChat creates the AI chat handler.
func NewAIChat(p llm.Provider) *AIChat {
	return &AIChat{provider: p}
}

func (h *AIChat) Handle(ctx context.Context, input string, sess *session.Session) []Message {
	msgs := make([]llm.Message, 0, len(sess.ChatHistory)+1)
	for _, turn := range sess.ChatHistory {
		msgs = append(msgs, llm.Message{Role: turn.Role, Content: turn.Content})
	}
	msgs = append(msgs, llm.Message{Role: session.RoleUser, Content: input})

	reply, err := h.provider.Chat(ctx, aiChatSystemPrompt, msgs, &llm.Options{
		MaxTokens:   1024,
		Temperature: 0.7,
	})
	if err != nil {
		logging.L_error("ai_chat: completion failed", "error", err)
		return text("Sorry, I'm having trouble thinking right now. 😿✨")
	}

	// Only a successful exchange lands in history.
	sess.AppendChat(
		session.ChatTurn{Role: session.RoleUser, Content: input},
		session.ChatTurn{Role: session.RoleAssistant, Content: reply},
	)

	return text(reply)
}
