package dispatch

// Config holds dispatcher behavior switches.
type Config struct {
	// MusicEditWebApp selects what the "🎵 Music Edit" menu entry
	// does. true (the historically observed behavior): reply with the
	// Sonic Lab web-app link and leave the mode unchanged, which makes
	// the in-bot effect flow unreachable from the menu. false: enter
	// music_edit mode and prompt for an audio file.
	MusicEditWebApp bool `json:"musicEditWebApp"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{MusicEditWebApp: true}
}
