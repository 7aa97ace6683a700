// Package modes implements the per-mode text handlers: time, weather,
// images, math, AI chat and dreamriddle.
//
// Each handler is a function of (input, session, service) producing
// reply messages and a session delta. Service failures never escape a
// handler; they become the mode's fixed fallback reply, and failed
// calls leave the session untouched.
package modes

import (
	"context"

	"github.com/kingsalmon6969-svg/hermax-bot/internal/geo"
	"github.com/kingsalmon6969-svg/hermax-bot/internal/session"
)

// Message is one outbound reply unit. A message carries either text
// or a batch of photo URLs.
type Message struct {
	Text      string
	PhotoURLs []string
}

// Handler processes one text input for a mode.
type Handler interface {
	Handle(ctx context.Context, text string, sess *session.Session) []Message
}

// GeoService is the slice of the geo client the time and weather
// handlers need.
type GeoService interface {
	Geocode(ctx context.Context, name string) (*geo.Location, error)
	CurrentWeather(ctx context.Context, lat, lon float64) (*geo.Weather, error)
}

// ImageSearcher is the slice of the Unsplash client the images
// handler needs.
type ImageSearcher interface {
	Search(ctx context.Context, query string, count int) ([]string, error)
}

func text(s string) []Message {
	return []Message{{Text: s}}
}
