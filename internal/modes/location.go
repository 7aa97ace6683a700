package modes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kingsalmon6969-svg/hermax-bot/internal/geo"
	"github.com/kingsalmon6969-svg/hermax-bot/internal/logging"
	"github.com/kingsalmon6969-svg/hermax-bot/internal/session"
)

const locationNotFoundReply = "Location not found. Please try again."

// Time answers "what time is it in <place>" lookups. Stateless.
type Time struct {
	geo GeoService
	now func() time.Time
}

// NewTime creates the time handler. A nil clock uses time.Now.
func NewTime(g GeoService, now func() time.Time) *Time {
	if now == nil {
		now = time.Now
	}
	return &Time{geo: g, now: now}
}

func (h *Time) Handle(ctx context.Context, input string, _ *session.Session) []Message {
	loc, err := h.geo.Geocode(ctx, input)
	if errors.Is(err, geo.ErrNotFound) {
		return text(locationNotFoundReply)
	}
	if err != nil {
		logging.L_error("time: lookup failed", "location", input, "error", err)
		return text("Failed to fetch time data.")
	}

	timeStr := geo.LocalTime(h.now(), loc.Timezone)
	return text(fmt.Sprintf("✨ Current local time in %s, %s (%s): ✨\n\n⏰ %s 🌸💖",
		loc.Name, loc.Country, loc.Timezone, timeStr))
}

// Weather answers current-weather lookups. Stateless.
type Weather struct {
	geo GeoService
}

// NewWeather creates the weather handler.
func NewWeather(g GeoService) *Weather {
	return &Weather{geo: g}
}

func (h *Weather) Handle(ctx context.Context, input string, _ *session.Session) []Message {
	loc, err := h.geo.Geocode(ctx, input)
	if errors.Is(err, geo.ErrNotFound) {
		return text(locationNotFoundReply)
	}
	if err != nil {
		logging.L_error("weather: lookup failed", "location", input, "error", err)
		return text("Failed to fetch weather data.")
	}

	wx, err := h.geo.CurrentWeather(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		logging.L_error("weather: forecast failed", "location", loc.Name, "error", err)
		return text("Failed to fetch weather data.")
	}

	return text(fmt.Sprintf(
		"🌈 Weather in %s, %s: 🌈\n\n"+
			"🌡️ Temperature: %g°C ✨\n"+
			"💨 Wind Speed: %g km/h 🌸\n"+
			"✨ Condition: %d 💖",
		loc.Name, loc.Country, wx.Temperature, wx.WindSpeed, wx.Code))
}
