// Package config loads the merged Hermax configuration: defaults,
// then hermax.json, then environment variable overrides.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/kingsalmon6969-svg/hermax-bot/internal/dispatch"
	"github.com/kingsalmon6969-svg/hermax-bot/internal/geo"
	websrv "github.com/kingsalmon6969-svg/hermax-bot/internal/http"
	"github.com/kingsalmon6969-svg/hermax-bot/internal/llm"
	"github.com/kingsalmon6969-svg/hermax-bot/internal/logging"
	"github.com/kingsalmon6969-svg/hermax-bot/internal/media"
	"github.com/kingsalmon6969-svg/hermax-bot/internal/session"
	"github.com/kingsalmon6969-svg/hermax-bot/internal/telegram"
	"github.com/kingsalmon6969-svg/hermax-bot/internal/unsplash"
)

// DefaultPath is where Load looks when no config file is given.
const DefaultPath = "hermax.json"

// Config is the merged Hermax configuration.
type Config struct {
	Server   websrv.Config   `json:"server"`
	Telegram telegram.Config `json:"telegram"`
	LLM      llm.Config      `json:"llm"`
	Unsplash unsplash.Config `json:"unsplash"`
	Geo      geo.Config      `json:"geo"`
	Session  session.Config  `json:"session"`
	Media    media.Config    `json:"media"`
	Dispatch dispatch.Config `json:"dispatch"`
}

// Default returns the configuration with every package's defaults.
func Default() *Config {
	return &Config{
		Server:   websrv.DefaultConfig(),
		Telegram: telegram.DefaultConfig(),
		LLM:      llm.DefaultConfig(),
		Unsplash: unsplash.DefaultConfig(),
		Geo:      geo.DefaultConfig(),
		Session:  session.DefaultConfig(),
		Media:    media.DefaultConfig(),
		Dispatch: dispatch.DefaultConfig(),
	}
}

// Load reads configuration from path (optional) and applies
// environment overrides. A missing file is fine; a malformed one is
// an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		logging.L_debug("config: loaded file", "path", path)
	case os.IsNotExist(err):
		logging.L_debug("config: no config file, using defaults", "path", path)
	default:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg.applyEnv()

	if cfg.Telegram.BotToken == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN not set")
	}
	return cfg, nil
}

// applyEnv overrides file values with the environment variables the
// bot has always honored.
func (c *Config) applyEnv() {
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		c.Telegram.BotToken = v
	}
	if v := os.Getenv("GROQ_API_KEY"); v != "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("UNSPLASH_ACCESS_KEY"); v != "" {
		c.Unsplash.AccessKey = v
	}
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			logging.L_warn("config: ignoring bad PORT value", "value", v)
			return
		}
		c.Server.Port = port
	}
}
