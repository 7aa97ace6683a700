// Package geo looks up locations, local time and current weather via
// the open-meteo APIs.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/kingsalmon6969-svg/hermax-bot/internal/logging"
)

// Location is a geocoding result.
type Location struct {
	Latitude  float64
	Longitude float64
	Name      string
	Country   string
	Timezone  string
}

// Weather is the current weather at a coordinate.
type Weather struct {
	Temperature float64 // °C
	WindSpeed   float64 // km/h
	Code        int     // WMO condition code
}

// ErrNotFound is returned when geocoding yields no results.
var ErrNotFound = fmt.Errorf("location not found")

// Client calls the open-meteo geocoding and forecast APIs.
type Client struct {
	cfg    Config
	client *http.Client
}

// NewClient creates a geo client.
func NewClient(cfg Config) *Client {
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.timeout()},
	}
}

// Geocode resolves a free-form place name to its best match.
// Returns ErrNotFound when the API has no results for the name.
func (c *Client) Geocode(ctx context.Context, name string) (*Location, error) {
	reqURL, _ := url.Parse(c.cfg.geocodeURL())
	q := reqURL.Query()
	q.Set("name", name)
	q.Set("count", "1")
	q.Set("language", "en")
	q.Set("format", "json")
	reqURL.RawQuery = q.Encode()

	var payload struct {
		Results []struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
			Name      string  `json:"name"`
			Country   string  `json:"country"`
			Timezone  string  `json:"timezone"`
		} `json:"results"`
	}
	if err := c.getJSON(ctx, reqURL.String(), &payload); err != nil {
		return nil, err
	}

	if len(payload.Results) == 0 {
		logging.L_debug("geo: no geocoding results", "name", name)
		return nil, ErrNotFound
	}

	r := payload.Results[0]
	tz := r.Timezone
	if tz == "" {
		tz = "UTC"
	}

	loc := &Location{
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		Name:      r.Name,
		Country:   r.Country,
		Timezone:  tz,
	}
	logging.L_debug("geo: geocoded", "name", name, "result", loc.Name, "country", loc.Country, "tz", loc.Timezone)
	return loc, nil
}

// CurrentWeather fetches the current weather at a coordinate.
func (c *Client) CurrentWeather(ctx context.Context, lat, lon float64) (*Weather, error) {
	reqURL, _ := url.Parse(c.cfg.forecastURL())
	q := reqURL.Query()
	q.Set("latitude", fmt.Sprintf("%g", lat))
	q.Set("longitude", fmt.Sprintf("%g", lon))
	q.Set("current_weather", "true")
	reqURL.RawQuery = q.Encode()

	var payload struct {
		CurrentWeather struct {
			Temperature float64 `json:"temperature"`
			WindSpeed   float64 `json:"windspeed"`
			WeatherCode int     `json:"weathercode"`
		} `json:"current_weather"`
	}
	if err := c.getJSON(ctx, reqURL.String(), &payload); err != nil {
		return nil, err
	}

	return &Weather{
		Temperature: payload.CurrentWeather.Temperature,
		WindSpeed:   payload.CurrentWeather.WindSpeed,
		Code:        payload.CurrentWeather.WeatherCode,
	}, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, "GET", rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		logging.L_error("geo: request failed", "url", rawURL, "error", err)
		return fmt.Errorf("geo request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		logging.L_error("geo: API error", "status", resp.StatusCode, "body", string(body))
		return fmt.Errorf("geo API error: %s", resp.Status)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// timeLayout matches the original bot's clock format.
const timeLayout = "01/02/2006, 03:04:05 PM"

// LocalTime formats the current time in the location's timezone.
// When the timezone is unknown to the local zone database it falls
// back to UTC and says so in the output.
func LocalTime(now time.Time, timezone string) string {
	tz, err := time.LoadLocation(timezone)
	if err != nil {
		logging.L_warn("geo: unknown timezone, using UTC", "tz", timezone)
		return now.UTC().Format(timeLayout) + " (UTC)"
	}
	return now.In(tz).Format(timeLayout)
}
