package modes

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/kingsalmon6969-svg/hermax-bot/internal/geo"
	"github.com/kingsalmon6969-svg/hermax-bot/internal/llm"
	"github.com/kingsalmon6969-svg/hermax-bot/internal/session"
	"github.com/kingsalmon6969-svg/hermax-bot/internal/unsplash"
)

type stubGeo struct {
	loc        *geo.Location
	geocodeErr error
	weather    *geo.Weather
	weatherErr error
}

func (s *stubGeo) Geocode(ctx context.Context, name string) (*geo.Location, error) {
	return s.loc, s.geocodeErr
}

func (s *stubGeo) CurrentWeather(ctx context.Context, lat, lon float64) (*geo.Weather, error) {
	return s.weather, s.weatherErr
}

type stubSearcher struct {
	urls []string
	err  error
}

func (s *stubSearcher) Search(ctx context.Context, query string, count int) ([]string, error) {
	return s.urls, s.err
}

type stubLLM struct {
	reply      string
	err        error
	gotSystem  string
	gotMsgs    []llm.Message
	gotOptions *llm.Options
}

func (s *stubLLM) Chat(ctx context.Context, system string, msgs []llm.Message, opts *llm.Options) (string, error) {
	s.gotSystem = system
	s.gotMsgs = msgs
	s.gotOptions = opts
	return s.reply, s.err
}

func fixedClock() time.Time {
	return time.Date(2024, 3, 9, 14, 30, 5, 0, time.UTC)
}

func TestTimeHandler(t *testing.T) {
	g := &stubGeo{loc: &geo.Location{Name: "London", Country: "United Kingdom", Timezone: "UTC"}}
	h := NewTime(g, fixedClock)
	sess := session.New()

	msgs := h.Handle(context.Background(), "london", &sess)
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1", len(msgs))
	}
	want := "✨ Current local time in London, United Kingdom (UTC): ✨\n\n⏰ 03/09/2024, 02:30:05 PM 🌸💖"
	if msgs[0].Text != want {
		t.Errorf("reply = %q, want %q", msgs[0].Text, want)
	}
}

func TestTimeHandlerNotFound(t *testing.T) {
	h := NewTime(&stubGeo{geocodeErr: geo.ErrNotFound}, fixedClock)
	sess := session.New()

	msgs := h.Handle(context.Background(), "xyzzy", &sess)
	if msgs[0].Text != "Location not found. Please try again." {
		t.Errorf("reply = %q", msgs[0].Text)
	}
}

func TestWeatherHandler(t *testing.T) {
	g := &stubGeo{
		loc:     &geo.Location{Name: "Paris", Country: "France", Timezone: "Europe/Paris"},
		weather: &geo.Weather{Temperature: 18.5, WindSpeed: 7, Code: 2},
	}
	sess := session.New()

	msgs := NewWeather(g).Handle(context.Background(), "paris", &sess)
	got := msgs[0].Text
	for _, want := range []string{"Weather in Paris, France", "18.5°C", "7 km/h", "Condition: 2"} {
		if !strings.Contains(got, want) {
			t.Errorf("reply = %q, missing %q", got, want)
		}
	}
}

func TestWeatherHandlerServiceFailure(t *testing.T) {
	g := &stubGeo{
		loc:        &geo.Location{Name: "Paris", Country: "France"},
		weatherErr: errors.New("upstream down"),
	}
	sess := session.New()

	msgs := NewWeather(g).Handle(context.Background(), "paris", &sess)
	if msgs[0].Text != "Failed to fetch weather data." {
		t.Errorf("reply = %q", msgs[0].Text)
	}
}

func TestImagesHandler(t *testing.T) {
	urls := []string{"https://img/1", "https://img/2", "https://img/3"}
	sess := session.New()

	msgs := NewImages(&stubSearcher{urls: urls}).Handle(context.Background(), "cats", &sess)
	if len(msgs) != 2 {
		t.Fatalf("got %d messages, want 2", len(msgs))
	}
	if len(msgs[0].PhotoURLs) != 3 {
		t.Errorf("photo count = %d, want 3", len(msgs[0].PhotoURLs))
	}
	if !strings.Contains(msgs[1].Text, `"cats"`) {
		t.Errorf("summary = %q", msgs[1].Text)
	}
}

func TestImagesHandlerFailures(t *testing.T) {
	sess := session.New()

	msgs := NewImages(&stubSearcher{err: unsplash.ErrNoKey}).Handle(context.Background(), "cats", &sess)
	if msgs[0].Text != "Unsplash API key is missing! 😿✨" {
		t.Errorf("no-key reply = %q", msgs[0].Text)
	}

	msgs = NewImages(&stubSearcher{}).Handle(context.Background(), "cats", &sess)
	if msgs[0].Text != `I couldn't find any images for "cats". 😿✨` {
		t.Errorf("no-results reply = %q", msgs[0].Text)
	}

	msgs = NewImages(&stubSearcher{err: errors.New("boom")}).Handle(context.Background(), "cats", &sess)
	if msgs[0].Text != "Failed to fetch images. 😿✨" {
		t.Errorf("failure reply = %q", msgs[0].Text)
	}
}

func TestMathHandler(t *testing.T) {
	p := &stubLLM{reply: "4! ✨"}
	sess := session.New()

	msgs := NewMath(p).Handle(context.Background(), "2+2", &sess)
	if msgs[0].Text != "4! ✨" {
		t.Errorf("reply = %q", msgs[0].Text)
	}
	if !strings.Contains(p.gotMsgs[0].Content, "2+2") {
		t.Errorf("prompt = %q", p.gotMsgs[0].Content)
	}
	if !strings.Contains(p.gotSystem, "math expert") {
		t.Errorf("system prompt = %q", p.gotSystem)
	}
}

func TestMathHandlerFallback(t *testing.T) {
	sess := session.New()
	msgs := NewMath(&stubLLM{err: errors.New("rate limited")}).Handle(context.Background(), "2+2", &sess)
	if msgs[0].Text != "Sorry, my math brain is a bit fuzzy right now. 😿✨" {
		t.Errorf("reply = %q", msgs[0].Text)
	}
}

func TestAIChatAppendsHistory(t *testing.T) {
	p := &stubLLM{reply: "hi there"}
	sess := session.New()
	sess.Mode = session.ModeAIChat

	msgs := NewAIChat(p).Handle(context.Background(), "hello", &sess)
	if msgs[0].Text != "hi there" {
		t.Errorf("reply = %q", msgs[0].Text)
	}
	if len(sess.ChatHistory) != 2 {
		t.Fatalf("history length = %d, want 2", len(sess.ChatHistory))
	}
	if sess.ChatHistory[0] != (session.ChatTurn{Role: session.RoleUser, Content: "hello"}) {
		t.Errorf("history[0] = %+v", sess.ChatHistory[0])
	}
	if sess.ChatHistory[1] != (session.ChatTurn{Role: session.RoleAssistant, Content: "hi there"}) {
		t.Errorf("history[1] = %+v", sess.ChatHistory[1])
	}
	if p.gotOptions == nil || p.gotOptions.MaxTokens != 1024 || p.gotOptions.Temperature != 0.7 {
		t.Errorf("options = %+v", p.gotOptions)
	}
}

func TestAIChatSendsHistoryToProvider(t *testing.T) {
	p := &stubLLM{reply: "again!"}
	sess := session.New()
	sess.AppendChat(
		session.ChatTurn{Role: session.RoleUser, Content: "first"},
		session.ChatTurn{Role: session.RoleAssistant, Content: "reply"},
	)

	NewAIChat(p).Handle(context.Background(), "second", &sess)
	if len(p.gotMsgs) != 3 {
		t.Fatalf("provider got %d messages, want 3", len(p.gotMsgs))
	}
	if p.gotMsgs[2].Content != "second" {
		t.Errorf("last message = %q", p.gotMsgs[2].Content)
	}
}

func TestAIChatFailureLeavesHistory(t *testing.T) {
	sess := session.New()
	sess.AppendChat(session.ChatTurn{Role: session.RoleUser, Content: "old"})

	msgs := NewAIChat(&stubLLM{err: errors.New("down")}).Handle(context.Background(), "hello", &sess)
	if msgs[0].Text != "Sorry, I'm having trouble thinking right now. 😿✨" {
		t.Errorf("reply = %q", msgs[0].Text)
	}
	if len(sess.ChatHistory) != 1 {
		t.Errorf("history mutated on failure: %+v", sess.ChatHistory)
	}
}

func TestBuildDreamPrompt(t *testing.T) {
	got := BuildDreamPrompt("c", []string{"a", "b"})
	if !strings.Contains(got, "History: a | b") {
		t.Errorf("prompt missing joined history: %q", got)
	}
	if !strings.Contains(got, "Current: c.") {
		t.Errorf("prompt missing current text: %q", got)
	}

	got = BuildDreamPrompt("first", nil)
	if !strings.Contains(got, "History: None") {
		t.Errorf("empty history should render as None: %q", got)
	}
}

func TestDreamriddleAppendsOnSuccessOnly(t *testing.T) {
	p := &stubLLM{reply: "░░ a story ░░"}
	h := NewDreamriddle(p)
	sess := session.New()
	sess.Mode = session.ModeDreamriddle

	h.Handle(context.Background(), "a", &sess)
	h.Handle(context.Background(), "b", &sess)
	if len(sess.DreamHistory) != 2 || sess.DreamHistory[0] != "a" || sess.DreamHistory[1] != "b" {
		t.Errorf("dream history = %v, want [a b]", sess.DreamHistory)
	}

	// The third turn's prompt joins the prior inputs.
	h.Handle(context.Background(), "c", &sess)
	if !strings.Contains(p.gotSystem, "History: a | b") {
		t.Errorf("third-turn prompt = %q", p.gotSystem)
	}

	failing := NewDreamriddle(&stubLLM{err: errors.New("down")})
	msgs := failing.Handle(context.Background(), "d", &sess)
	if msgs[0].Text != "░░🌫️░░ The dream slips away... Again?" {
		t.Errorf("fallback = %q", msgs[0].Text)
	}
	if len(sess.DreamHistory) != 3 {
		t.Errorf("history mutated on failure: %v", sess.DreamHistory)
	}
}
