package geo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestGeocode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("name"); got != "Tokyo" {
			t.Errorf("name param = %q, want %q", got, "Tokyo")
		}
		w.Write([]byte(`{"results":[{"latitude":35.6895,"longitude":139.6917,"name":"Tokyo","country":"Japan","timezone":"Asia/Tokyo"}]}`))
	}))
	defer srv.Close()

	c := NewClient(Config{GeocodeURL: srv.URL})
	loc, err := c.Geocode(context.Background(), "Tokyo")
	if err != nil {
		t.Fatalf("Geocode: %v", err)
	}
	if loc.Name != "Tokyo" || loc.Country != "Japan" || loc.Timezone != "Asia/Tokyo" {
		t.Errorf("unexpected location: %+v", loc)
	}
}

func TestGeocodeNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	c := NewClient(Config{GeocodeURL: srv.URL})
	_, err := c.Geocode(context.Background(), "nowhere at all")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestCurrentWeather(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"current_weather":{"temperature":21.5,"windspeed":12.3,"weathercode":3}}`))
	}))
	defer srv.Close()

	c := NewClient(Config{ForecastURL: srv.URL})
	wx, err := c.CurrentWeather(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("CurrentWeather: %v", err)
	}
	if wx.Temperature != 21.5 || wx.WindSpeed != 12.3 || wx.Code != 3 {
		t.Errorf("unexpected weather: %+v", wx)
	}
}

func TestLocalTime(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 30, 5, 0, time.UTC)

	got := LocalTime(now, "UTC")
	if got != "03/09/2024, 02:30:05 PM" {
		t.Errorf("LocalTime UTC = %q", got)
	}

	// Unknown timezones fall back to UTC with a marker.
	got = LocalTime(now, "Not/AZone")
	if !strings.HasSuffix(got, " (UTC)") {
		t.Errorf("LocalTime fallback = %q, want (UTC) suffix", got)
	}
}
