// Package session provides per-user conversational state for Hermax.
//
// A Session tracks which mode a user is in plus the rolling history buffers
// the two long-running conversational modes (AI chat, dreamriddle) need.
// Sessions live in memory for the process lifetime; there is no persistence.
package session

// Mode is the conversational state that decides which handler
// processes the user's next input.
type Mode string

const (
	ModeNormal      Mode = "normal"
	ModeTime        Mode = "time"
	ModeWeather     Mode = "weather"
	ModeImages      Mode = "images"
	ModeMath        Mode = "math"
	ModeAIChat      Mode = "ai_chat"
	ModeDreamriddle Mode = "dreamriddle"
	ModeVideoToGIF  Mode = "video_to_gif"
	ModeMusicEdit   Mode = "music_edit"
)

// Chat roles for ChatHistory entries.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatTurn is one (role, content) pair in the AI chat history.
type ChatTurn struct {
	Role    string
	Content string
}

// Session is the per-user state record.
type Session struct {
	Mode Mode

	// ChatHistory holds the rolling AI chat transcript, newest last.
	// Only meaningful while Mode == ModeAIChat, but may carry stale
	// entries from a previous visit to that mode.
	ChatHistory []ChatTurn

	// DreamHistory holds the raw dreamriddle inputs, newest last.
	DreamHistory []string

	// AudioFileID references the last audio asset received in music
	// edit mode. It persists until the session is reset, so a stored
	// track can be re-processed with different options.
	AudioFileID string

	// SelectedEffect is the effect category chosen in the music edit
	// flow. Only meaningful once AudioFileID is set.
	SelectedEffect string
}

// New returns the default session: normal mode, empty histories.
func New() Session {
	return Session{Mode: ModeNormal}
}

// AppendChat appends turns to the chat history.
func (s *Session) AppendChat(turns ...ChatTurn) {
	s.ChatHistory = append(s.ChatHistory, turns...)
}

// AppendDream appends a raw dream input to the dream history.
func (s *Session) AppendDream(text string) {
	s.DreamHistory = append(s.DreamHistory, text)
}

// Clamp drops the oldest history entries until both buffers fit the
// configured limits. The store applies this on every write, so a
// persisted session never exceeds its bounds.
func (s *Session) Clamp(cfg Config) {
	if limit := cfg.chatLimit(); len(s.ChatHistory) > limit {
		s.ChatHistory = append([]ChatTurn(nil), s.ChatHistory[len(s.ChatHistory)-limit:]...)
	}
	if limit := cfg.dreamLimit(); limit > 0 && len(s.DreamHistory) > limit {
		s.DreamHistory = append([]string(nil), s.DreamHistory[len(s.DreamHistory)-limit:]...)
	}
}

// clone returns a deep copy so callers can mutate their view of a
// session without racing the store.
func (s Session) clone() Session {
	out := s
	if s.ChatHistory != nil {
		out.ChatHistory = append([]ChatTurn(nil), s.ChatHistory...)
	}
	if s.DreamHistory != nil {
		out.DreamHistory = append([]string(nil), s.DreamHistory...)
	}
	return out
}
