package geo

import "time"

const (
	defaultGeocodeURL  = "https://geocoding-api.open-meteo.com/v1/search"
	defaultForecastURL = "https://api.open-meteo.com/v1/forecast"
	defaultTimeout     = 15 * time.Second
)

// Config holds geo client configuration. The URL overrides exist for
// tests; production runs on the open-meteo defaults.
type Config struct {
	GeocodeURL     string `json:"geocodeUrl"`
	ForecastURL    string `json:"forecastUrl"`
	TimeoutSeconds int    `json:"timeoutSeconds"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{}
}

func (c Config) geocodeURL() string {
	if c.GeocodeURL != "" {
		return c.GeocodeURL
	}
	return defaultGeocodeURL
}

func (c Config) forecastURL() string {
	if c.ForecastURL != "" {
		return c.ForecastURL
	}
	return defaultForecastURL
}

func (c Config) timeout() time.Duration {
	if c.TimeoutSeconds > 0 {
		return time.Duration(c.TimeoutSeconds) * time.Second
	}
	return defaultTimeout
}
