package dispatch

import (
	"context"
	"fmt"
	"strings"

	"github.com/kingsalmon6969-svg/hermax-bot/internal/logging"
	"github.com/kingsalmon6969-svg/hermax-bot/internal/modes"
	"github.com/kingsalmon6969-svg/hermax-bot/internal/session"
)

// PreconditionReply answers an option press with no stored audio.
const PreconditionReply = "Please send the music file first! 🎵"

// ProcessingAlert acknowledges an accepted option press.
const ProcessingAlert = "Processing your request... ⚙️✨"

// Dispatcher routes events through the per-user state machine.
type Dispatcher struct {
	cfg      Config
	store    *session.Store
	handlers map[session.Mode]modes.Handler
}

// New creates a dispatcher over the given session store and mode
// handler set.
func New(cfg Config, store *session.Store, handlers map[session.Mode]modes.Handler) *Dispatcher {
	return &Dispatcher{cfg: cfg, store: store, handlers: handlers}
}

// ActiveMode returns the user's current mode without locking; channel
// adapters use it to pick a chat-action indicator.
func (d *Dispatcher) ActiveMode(userID string) session.Mode {
	return d.store.Get(userID).Mode
}

// Handle processes one event for one user. The per-user session lock
// is held for the whole read-handle-write cycle, so concurrent events
// for the same user serialize while other users proceed untouched.
func (d *Dispatcher) Handle(ctx context.Context, userID string, ev Event) Reply {
	unlock := d.store.Lock(userID)
	defer unlock()

	switch ev.Kind {
	case EventStart:
		d.store.Reset(userID)
		logging.L_info("dispatch: session reset", "userID", userID, "cause", "start")
		return Reply{Messages: []Message{{Text: WelcomeReply, Keyboard: KeyboardMain}}}

	case EventText:
		return d.handleText(ctx, userID, ev.Text)

	case EventAudio:
		return d.handleAudio(userID, ev)

	case EventVideo:
		return d.handleVideo(userID, ev)

	case EventCallback:
		return d.handleCallback(userID, ev)
	}

	return Reply{}
}

func (d *Dispatcher) handleText(ctx context.Context, userID, input string) Reply {
	if input == LabelBack {
		d.store.Reset(userID)
		logging.L_info("dispatch: session reset", "userID", userID, "cause", "back")
		return Reply{Messages: []Message{{Text: MainMenuReply, Keyboard: KeyboardMain}}}
	}

	sess := d.store.Get(userID)

	// An active input mode consumes the text unconditionally; menu
	// labels are only interpreted from normal mode.
	if handler, ok := d.handlers[sess.Mode]; ok {
		logging.L_debug("dispatch: routing to mode handler", "userID", userID, "mode", sess.Mode)

		out := handler.Handle(ctx, input, &sess)
		d.store.Set(userID, sess)

		reply := Reply{}
		for _, m := range out {
			reply.Messages = append(reply.Messages, Message{Text: m.Text, PhotoURLs: m.PhotoURLs})
		}
		if followUp, ok := followUpPrompts[sess.Mode]; ok {
			reply.Messages = append(reply.Messages, Message{Text: followUp, Keyboard: KeyboardBack})
		}
		return reply
	}

	if entry, ok := d.menuEntry(input); ok {
		return d.enterMenu(userID, sess, input, entry)
	}

	// Unrecognized input in normal mode: intentional silent no-op.
	logging.L_debug("dispatch: ignoring unrecognized input", "userID", userID, "text", input)
	return Reply{}
}

func (d *Dispatcher) menuEntry(label string) (menuEntry, bool) {
	if label == LabelMusicEdit {
		if d.cfg.MusicEditWebApp {
			return musicEditWebAppEntry, true
		}
		return musicEditModeEntry, true
	}
	entry, ok := menuTable[label]
	return entry, ok
}

func (d *Dispatcher) enterMenu(userID string, sess session.Session, label string, entry menuEntry) Reply {
	msg := Message{Text: entry.prompt, WebApp: entry.webApp}

	if entry.mode != "" {
		sess.Mode = entry.mode
		if entry.onEnter != nil {
			entry.onEnter(&sess)
		}
		d.store.Set(userID, sess)
		msg.Keyboard = KeyboardBack
		logging.L_info("dispatch: mode entered", "userID", userID, "mode", entry.mode, "label", label)
	}

	return Reply{Messages: []Message{msg}}
}

func (d *Dispatcher) handleAudio(userID string, ev Event) Reply {
	sess := d.store.Get(userID)
	if sess.Mode != session.ModeMusicEdit || ev.FileID == "" {
		return Reply{}
	}

	sess.AudioFileID = ev.FileID
	d.store.Set(userID, sess)
	logging.L_info("dispatch: audio stored", "userID", userID, "fileID", ev.FileID)

	return Reply{Messages: []Message{{
		Text:     "Choose an effect for your music:",
		Keyboard: KeyboardEffects,
	}}}
}

func (d *Dispatcher) handleVideo(userID string, ev Event) Reply {
	sess := d.store.Get(userID)
	if sess.Mode != session.ModeVideoToGIF || ev.FileID == "" {
		return Reply{}
	}

	logging.L_info("dispatch: gif job requested", "userID", userID, "fileID", ev.FileID)
	return Reply{
		Messages: []Message{{Text: VideoWorkingNotice}},
		Job:      &TranscodeJob{Kind: "gif", FileID: ev.FileID},
	}
}

func (d *Dispatcher) handleCallback(userID string, ev Event) Reply {
	sess := d.store.Get(userID)

	// Both steps of the effect flow require a stored audio asset.
	if sess.AudioFileID == "" {
		return Reply{Alert: PreconditionReply}
	}

	switch {
	case strings.HasPrefix(ev.Data, "effect_"):
		effect := strings.TrimPrefix(ev.Data, "effect_")
		sess.SelectedEffect = effect
		d.store.Set(userID, sess)
		logging.L_debug("dispatch: effect selected", "userID", userID, "effect", effect)

		return Reply{Messages: []Message{{
			Text:     fmt.Sprintf("Select options for %s:", effect),
			Keyboard: KeyboardOptions,
			Effect:   effect,
			Edit:     true,
		}}}

	case strings.HasPrefix(ev.Data, "opt_"):
		if sess.SelectedEffect == "" {
			return Reply{Alert: PreconditionReply}
		}
		option := strings.TrimPrefix(ev.Data, "opt_")
		logging.L_info("dispatch: audio job requested",
			"userID", userID, "effect", sess.SelectedEffect, "option", option)

		// AudioFileID and SelectedEffect stay set so the same track
		// can be re-processed with another option.
		return Reply{
			Alert:    ProcessingAlert,
			Messages: []Message{{Text: AudioEditingNotice}},
			Job: &TranscodeJob{
				Kind:   "audio",
				FileID: sess.AudioFileID,
				Effect: sess.SelectedEffect,
				Option: option,
			},
		}
	}

	logging.L_debug("dispatch: unknown callback ignored", "userID", userID, "data", ev.Data)
	return Reply{}
}
