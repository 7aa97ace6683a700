package session

// DefaultChatHistoryLimit bounds the AI chat transcript to the most
// recent 10 entries (5 exchanges).
const DefaultChatHistoryLimit = 10

// DefaultDreamHistoryLimit bounds the dreamriddle history the same way.
const DefaultDreamHistoryLimit = 10

// Config holds session store tunables.
type Config struct {
	// ChatHistoryLimit caps ChatHistory length. Values <= 0 fall back
	// to DefaultChatHistoryLimit; the chat buffer is always bounded.
	ChatHistoryLimit int `json:"chatHistoryLimit"`

	// DreamHistoryLimit caps DreamHistory length. 0 disables the
	// bound entirely (the historically observed behavior).
	DreamHistoryLimit int `json:"dreamHistoryLimit"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		ChatHistoryLimit:  DefaultChatHistoryLimit,
		DreamHistoryLimit: DefaultDreamHistoryLimit,
	}
}

func (c Config) chatLimit() int {
	if c.ChatHistoryLimit <= 0 {
		return DefaultChatHistoryLimit
	}
	return c.ChatHistoryLimit
}

func (c Config) dreamLimit() int {
	if c.DreamHistoryLimit < 0 {
		return 0
	}
	return c.DreamHistoryLimit
}
