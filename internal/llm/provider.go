// Package llm provides the chat-completion client used by the math,
// AI chat and dreamriddle handlers.
package llm

import "context"

// Message is one turn in a completion request.
type Message struct {
	Role    string
	Content string
}

// Options tunes a single completion call. Zero values mean
// provider defaults.
type Options struct {
	MaxTokens   int
	Temperature float32
}

// Provider is a chat-completion backend. Implementations must be safe
// for concurrent use.
type Provider interface {
	// Chat sends a system prompt plus message sequence and returns the
	// single text reply.
	Chat(ctx context.Context, system string, msgs []Message, opts *Options) (string, error)
}
