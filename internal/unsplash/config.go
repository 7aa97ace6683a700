package unsplash

import "time"

const (
	defaultSearchURL = "https://api.unsplash.com/search/photos"
	defaultTimeout   = 15 * time.Second
)

// Config holds Unsplash client configuration.
type Config struct {
	AccessKey      string `json:"accessKey"`
	SearchURL      string `json:"searchUrl"`
	TimeoutSeconds int    `json:"timeoutSeconds"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{}
}

func (c Config) searchURL() string {
	if c.SearchURL != "" {
		return c.SearchURL
	}
	return defaultSearchURL
}

func (c Config) timeout() time.Duration {
	if c.TimeoutSeconds > 0 {
		return time.Duration(c.TimeoutSeconds) * time.Second
	}
	return defaultTimeout
}
