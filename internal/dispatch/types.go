// Package dispatch maps (session mode, incoming event) to (next mode,
// side effect, reply). It owns the menu-label transition table and the
// music-edit sub-state machine; delivery of replies is the channel
// adapter's job.
package dispatch

// EventKind discriminates inbound events.
type EventKind int

const (
	// EventText is a plain text message.
	EventText EventKind = iota
	// EventStart is the /start command.
	EventStart
	// EventAudio is an audio message; FileID references the asset.
	EventAudio
	// EventVideo is a video message (or a document with a video MIME
	// type); FileID references the asset.
	EventVideo
	// EventCallback is an inline-button press; Data carries the
	// callback payload.
	EventCallback
)

// Event is one inbound user event.
type Event struct {
	Kind   EventKind
	Text   string
	FileID string
	Data   string
}

// Keyboard selects which keyboard a reply message shows.
type Keyboard int

const (
	// KeyboardNone leaves the current keyboard in place.
	KeyboardNone Keyboard = iota
	// KeyboardMain shows the main menu.
	KeyboardMain
	// KeyboardBack shows the single Back button.
	KeyboardBack
	// KeyboardEffects shows the audio effect categories inline.
	KeyboardEffects
	// KeyboardOptions shows the option set for Message.Effect inline.
	KeyboardOptions
)

// WebAppLink is an inline button that opens a web app.
type WebAppLink struct {
	Label string
	URL   string
}

// Message is one outbound reply unit.
type Message struct {
	Text      string
	Keyboard  Keyboard
	Effect    string      // effect key when Keyboard == KeyboardOptions
	WebApp    *WebAppLink // inline web-app button, if any
	PhotoURLs []string    // photo batch; sent before Text when both set

	// Edit replaces the message the pressed inline button was attached
	// to instead of sending a new one.
	Edit bool
}

// TranscodeJob asks the channel adapter to run a media job off the
// event-handling path.
type TranscodeJob struct {
	Kind   string // "audio" or "gif"
	FileID string
	Effect string
	Option string
}

// Reply is everything the dispatcher wants done for one event. A zero
// Reply means silent no-op.
type Reply struct {
	Messages []Message
	Alert    string // callback-query answer toast, if any
	Job      *TranscodeJob
}

// Empty reports whether the reply carries nothing at all.
func (r Reply) Empty() bool {
	return len(r.Messages) == 0 && r.Alert == "" && r.Job == nil
}

// Media job outcome strings, used by the channel adapter when a
// queued job finishes.
const (
	AudioDoneCaption   = "Effect applied: %s (%s) 🎵✨🌸"
	AudioFailedReply   = "Failed to process audio. 😿✨"
	GIFDoneCaption     = "Here is your GIF! 📹✨🌸"
	GIFFailedReply     = "Failed to convert video to GIF. 😿✨"
	AudioEditingNotice = "Editing your music... 🎵⚙️"
	VideoWorkingNotice = "Processing your video... ⚙️✨"
)
