package telegram

import "time"

const defaultPollTimeout = 10 * time.Second

// Config holds Telegram bot configuration.
type Config struct {
	// BotToken authenticates against the Bot API. Required.
	BotToken string `json:"botToken"`

	// AllowedUsers restricts the bot to these Telegram user IDs.
	// Empty means open to everyone.
	AllowedUsers []int64 `json:"allowedUsers"`

	// PollTimeoutSeconds tunes long polling.
	PollTimeoutSeconds int `json:"pollTimeoutSeconds"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{}
}

func (c Config) pollTimeout() time.Duration {
	if c.PollTimeoutSeconds > 0 {
		return time.Duration(c.PollTimeoutSeconds) * time.Second
	}
	return defaultPollTimeout
}

func (c Config) allowed(userID int64) bool {
	if len(c.AllowedUsers) == 0 {
		return true
	}
	for _, id := range c.AllowedUsers {
		if id == userID {
			return true
		}
	}
	return false
}
