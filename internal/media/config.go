package media

import "time"

const (
	defaultFFmpegPath = "ffmpeg"
	defaultWorkers    = 2
	defaultQueueSize  = 16
	defaultJobTimeout = 5 * time.Minute
)

// Config holds transcoding configuration.
type Config struct {
	FFmpegPath        string `json:"ffmpegPath"`
	Workers           int    `json:"workers"`
	QueueSize         int    `json:"queueSize"`
	JobTimeoutSeconds int    `json:"jobTimeoutSeconds"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{}
}

func (c Config) ffmpegPath() string {
	if c.FFmpegPath != "" {
		return c.FFmpegPath
	}
	return defaultFFmpegPath
}

func (c Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return defaultWorkers
}

func (c Config) queueSize() int {
	if c.QueueSize > 0 {
		return c.QueueSize
	}
	return defaultQueueSize
}

func (c Config) jobTimeout() time.Duration {
	if c.JobTimeoutSeconds > 0 {
		return time.Duration(c.JobTimeoutSeconds) * time.Second
	}
	return defaultJobTimeout
}
