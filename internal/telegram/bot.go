// Package telegram provides the Telegram channel adapter for Hermax.
// It turns Bot API updates into dispatch events and renders the
// dispatcher's replies back into messages, keyboards and media.
package telegram

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tele "gopkg.in/telebot.v4"

	"github.com/kingsalmon6969-svg/hermax-bot/internal/dispatch"
	"github.com/kingsalmon6969-svg/hermax-bot/internal/logging"
	"github.com/kingsalmon6969-svg/hermax-bot/internal/media"
	"github.com/kingsalmon6969-svg/hermax-bot/internal/session"
)

// Bot is the Telegram adapter.
type Bot struct {
	bot        *tele.Bot
	cfg        Config
	dispatcher *dispatch.Dispatcher
	queue      *media.Queue
	transcoder *media.Transcoder
}

// New creates the Telegram bot and registers its handlers.
func New(cfg Config, d *dispatch.Dispatcher, queue *media.Queue, transcoder *media.Transcoder) (*Bot, error) {
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("telegram bot token not configured")
	}

	pref := tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: cfg.pollTimeout()},
	}

	bot, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	logging.L_debug("telegram: bot created", "username", bot.Me.Username, "id", bot.Me.ID)

	b := &Bot{
		bot:        bot,
		cfg:        cfg,
		dispatcher: d,
		queue:      queue,
		transcoder: transcoder,
	}
	b.setupHandlers()
	logging.L_debug("telegram: handlers registered")

	return b, nil
}

// setupHandlers registers message handlers
func (b *Bot) setupHandlers() {
	b.bot.Handle("/start", func(c tele.Context) error {
		return b.handleEvent(c, dispatch.Event{Kind: dispatch.EventStart})
	})

	b.bot.Handle(tele.OnText, func(c tele.Context) error {
		b.notifyForMode(c)
		return b.handleEvent(c, dispatch.Event{Kind: dispatch.EventText, Text: c.Text()})
	})

	b.bot.Handle(tele.OnAudio, func(c tele.Context) error {
		audio := c.Message().Audio
		if audio == nil {
			return nil
		}
		return b.handleEvent(c, dispatch.Event{Kind: dispatch.EventAudio, FileID: audio.FileID})
	})

	b.bot.Handle(tele.OnVideo, func(c tele.Context) error {
		video := c.Message().Video
		if video == nil {
			return nil
		}
		return b.handleEvent(c, dispatch.Event{Kind: dispatch.EventVideo, FileID: video.FileID})
	})

	// Documents count as video when their MIME type says so.
	b.bot.Handle(tele.OnDocument, func(c tele.Context) error {
		doc := c.Message().Document
		if doc == nil || !strings.HasPrefix(doc.MIME, "video/") {
			return nil
		}
		return b.handleEvent(c, dispatch.Event{Kind: dispatch.EventVideo, FileID: doc.FileID})
	})

	b.bot.Handle(tele.OnCallback, func(c tele.Context) error {
		data := strings.TrimPrefix(strings.TrimSpace(c.Callback().Data), "\f")
		return b.handleEvent(c, dispatch.Event{Kind: dispatch.EventCallback, Data: data})
	})
}

// handleEvent runs one event through the dispatcher and renders the
// reply.
func (b *Bot) handleEvent(c tele.Context, ev dispatch.Event) error {
	sender := c.Sender()
	if sender == nil {
		return nil
	}
	if c.Chat().Type != tele.ChatPrivate {
		logging.L_debug("telegram: ignoring group message", "chatID", c.Chat().ID)
		return nil
	}
	if !b.cfg.allowed(sender.ID) {
		logging.L_warn("telegram: unauthorized user ignored", "userID", sender.ID)
		return nil
	}

	userID := fmt.Sprintf("%d", sender.ID)
	reply := b.dispatcher.Handle(context.Background(), userID, ev)
	return b.render(c, reply)
}

// notifyForMode shows the chat action matching the work the active
// mode is about to do.
func (b *Bot) notifyForMode(c tele.Context) {
	userID := fmt.Sprintf("%d", c.Sender().ID)
	switch b.dispatcher.ActiveMode(userID) {
	case session.ModeMath, session.ModeAIChat, session.ModeDreamriddle:
		_ = c.Notify(tele.Typing)
	case session.ModeImages:
		_ = c.Notify(tele.UploadingPhoto)
	}
}

// render delivers a dispatch reply: callback answer, messages with
// their keyboards, photo batches, and queued media jobs.
func (b *Bot) render(c tele.Context, reply dispatch.Reply) error {
	if reply.Alert != "" {
		_ = c.Respond(&tele.CallbackResponse{Text: reply.Alert})
	}

	for _, msg := range reply.Messages {
		for _, url := range msg.PhotoURLs {
			if err := c.Send(&tele.Photo{File: tele.FromURL(url)}); err != nil {
				logging.L_error("telegram: failed to send photo", "url", url, "error", err)
			}
		}
		if msg.Text == "" {
			continue
		}

		markup := b.markupFor(msg)
		if msg.Edit {
			if err := c.Edit(msg.Text, markup); err != nil {
				logging.L_debug("telegram: edit failed, sending instead", "error", err)
				if err := send(c, msg.Text, markup); err != nil {
					return err
				}
			}
			continue
		}
		if err := send(c, msg.Text, markup); err != nil {
			return err
		}
	}

	if reply.Job != nil {
		b.submitJob(c.Chat().ID, *reply.Job)
	}
	return nil
}

func send(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	if markup != nil {
		return c.Send(text, markup)
	}
	return c.Send(text)
}

func (b *Bot) markupFor(msg dispatch.Message) *tele.ReplyMarkup {
	switch msg.Keyboard {
	case dispatch.KeyboardMain:
		return mainMenu()
	case dispatch.KeyboardBack:
		return backMenu()
	case dispatch.KeyboardEffects:
		return effectsMenu()
	case dispatch.KeyboardOptions:
		return optionsMenu(msg.Effect)
	}
	if msg.WebApp != nil {
		return webAppMenu(msg.WebApp)
	}
	return nil
}

// submitJob queues a transcode job; the worker downloads the asset,
// runs ffmpeg and delivers the result, all off the update path.
func (b *Bot) submitJob(chatID int64, job dispatch.TranscodeJob) {
	chat := &tele.Chat{ID: chatID}
	failure := dispatch.AudioFailedReply
	if job.Kind == "gif" {
		failure = dispatch.GIFFailedReply
	}

	b.queue.Submit(media.Job{
		Kind: job.Kind,
		Run: func(ctx context.Context) error {
			return b.runJob(ctx, chat, job)
		},
		OnError: func(err error) {
			if _, sendErr := b.bot.Send(chat, failure); sendErr != nil {
				logging.L_error("telegram: failed to send job failure notice", "error", sendErr)
			}
		},
	})
}

func (b *Bot) runJob(ctx context.Context, chat *tele.Chat, job dispatch.TranscodeJob) error {
	_ = b.bot.Notify(chat, tele.UploadingDocument)

	tmpDir, err := os.MkdirTemp("", "hermax-media-*")
	if err != nil {
		return fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	switch job.Kind {
	case "audio":
		inputPath := filepath.Join(tmpDir, "input.mp3")
		if err := downloadFile(b.bot, job.FileID, inputPath); err != nil {
			return err
		}

		outputPath, err := b.transcoder.Audio(ctx, inputPath, job.Effect, job.Option)
		if err != nil {
			return err
		}

		audio := &tele.Audio{
			File:    tele.FromDisk(outputPath),
			Caption: fmt.Sprintf(dispatch.AudioDoneCaption, job.Effect, job.Option),
		}
		if _, err := b.bot.Send(chat, audio); err != nil {
			return fmt.Errorf("failed to send audio: %w", err)
		}
		return nil

	case "gif":
		inputPath := filepath.Join(tmpDir, "input.mp4")
		if err := downloadFile(b.bot, job.FileID, inputPath); err != nil {
			return err
		}

		outputPath, err := b.transcoder.GIF(ctx, inputPath)
		if err != nil {
			return err
		}

		doc := &tele.Document{
			File:    tele.FromDisk(outputPath),
			Caption: dispatch.GIFDoneCaption,
		}
		if _, err := b.bot.Send(chat, doc); err != nil {
			return fmt.Errorf("failed to send document: %w", err)
		}
		return nil
	}

	return fmt.Errorf("unknown job kind: %s", job.Kind)
}

// Start starts the bot polling.
func (b *Bot) Start() {
	logging.L_info("starting telegram bot", "username", b.bot.Me.Username)
	go b.bot.Start()
}

// Stop stops the bot.
func (b *Bot) Stop() {
	logging.L_info("stopping telegram bot")
	b.bot.Stop()
}
