package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/kingsalmon6969-svg/hermax-bot/internal/config"
	"github.com/kingsalmon6969-svg/hermax-bot/internal/dispatch"
	"github.com/kingsalmon6969-svg/hermax-bot/internal/geo"
	websrv "github.com/kingsalmon6969-svg/hermax-bot/internal/http"
	"github.com/kingsalmon6969-svg/hermax-bot/internal/llm"
	. "github.com/kingsalmon6969-svg/hermax-bot/internal/logging"
	"github.com/kingsalmon6969-svg/hermax-bot/internal/media"
	"github.com/kingsalmon6969-svg/hermax-bot/internal/modes"
	"github.com/kingsalmon6969-svg/hermax-bot/internal/session"
	"github.com/kingsalmon6969-svg/hermax-bot/internal/telegram"
	"github.com/kingsalmon6969-svg/hermax-bot/internal/unsplash"
)

const version = "0.1.0"

// CLI defines the command-line flags.
type CLI struct {
	Config  string           `short:"c" help:"Path to hermax.json config file."`
	Debug   bool             `help:"Enable debug logging."`
	Version kong.VersionFlag `help:"Print version and exit."`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("hermax"),
		kong.Description("Hermax Telegram bot: weather, images, math, AI chat, dreamriddle and media editing."),
		kong.Vars{"version": "hermax " + version},
	)

	// .env is optional; real deployments set environment variables.
	_ = godotenv.Load()

	level := LevelInfo
	if cli.Debug {
		level = LevelDebug
	}
	Init(&Config{Level: level, ShowCaller: true})

	L_info("hermax %s starting", version)

	cfg, err := config.Load(cli.Config)
	if err != nil {
		L_fatal("failed to load config: %v", err)
	}
	L_debug("config loaded")

	// External service clients.
	provider := llm.NewOpenAIProvider(cfg.LLM)
	geoClient := geo.NewClient(cfg.Geo)
	imageClient := unsplash.NewClient(cfg.Unsplash)

	// Transcoding pipeline.
	transcoder := media.NewTranscoder(cfg.Media)
	queue := media.NewQueue(cfg.Media)
	queue.Start()

	// Session store and the per-mode handler table.
	store := session.NewStore(cfg.Session)
	handlers := map[session.Mode]modes.Handler{
		session.ModeTime:        modes.NewTime(geoClient, nil),
		session.ModeWeather:     modes.NewWeather(geoClient),
		session.ModeImages:      modes.NewImages(imageClient),
		session.ModeMath:        modes.NewMath(provider),
		session.ModeAIChat:      modes.NewAIChat(provider),
		session.ModeDreamriddle: modes.NewDreamriddle(provider),
	}
	dispatcher := dispatch.New(cfg.Dispatch, store, handlers)

	bot, err := telegram.New(cfg.Telegram, dispatcher, queue, transcoder)
	if err != nil {
		L_fatal("failed to create telegram bot: %v", err)
	}

	server := websrv.NewServer(cfg.Server)
	server.Start()
	bot.Start()

	L_info("hermax ready")

	// Block until asked to stop.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	L_info("shutting down")
	bot.Stop()
	queue.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Stop(ctx); err != nil {
		L_error("http shutdown failed", "error", err)
	}

	L_info("hermax stopped")
}
