package media

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
)

func argsString(t *testing.T, effect, option string) string {
	t.Helper()
	args, err := AudioArgs(effect, option, "in.mp3", "out.mp3")
	if err != nil {
		t.Fatalf("AudioArgs(%s, %s): %v", effect, option, err)
	}
	return strings.Join(args, " ")
}

func TestAudioArgsSlow(t *testing.T) {
	tests := []struct {
		option string
		filter string
	}{
		{"0.25", "atempo=0.5,atempo=0.5"}, // below atempo's floor, chained
		{"0.5", "atempo=0.5"},
		{"1", "atempo=1"},
		{"1.5", "atempo=1.5"},
		{"2", "atempo=2"},
	}
	for _, tt := range tests {
		got := argsString(t, "slow", tt.option)
		if !strings.Contains(got, "-filter:a "+tt.filter) {
			t.Errorf("slow %s: args = %q, want filter %q", tt.option, got, tt.filter)
		}
		if !strings.Contains(got, "libmp3lame") {
			t.Errorf("slow %s: missing mp3 encoder", tt.option)
		}
	}
}

func TestAudioArgsBassGains(t *testing.T) {
	tests := []struct {
		option string
		gain   string
	}{
		{"low", "g=5"},
		{"medium", "g=10"},
		{"high", "g=20"},
	}
	for _, tt := range tests {
		got := argsString(t, "bass", tt.option)
		if !strings.Contains(got, "equalizer=f=60:width_type=h:w=50:"+tt.gain) {
			t.Errorf("bass %s: args = %q, want gain %s", tt.option, got, tt.gain)
		}
	}
}

func TestAudioArgsBitrateKeepsCodec(t *testing.T) {
	got := argsString(t, "bit", "192k")
	if !strings.Contains(got, "-b:a 192k") {
		t.Errorf("bit: args = %q, want -b:a 192k", got)
	}
	if strings.Contains(got, "libmp3lame") {
		t.Errorf("bit: must not force re-encode, got %q", got)
	}
}

func TestAudioArgsGalaxyAndRain(t *testing.T) {
	if got := argsString(t, "galaxy", "reverb"); !strings.Contains(got, "aecho=0.8:0.9:1000:0.3") {
		t.Errorf("galaxy reverb: args = %q", got)
	}
	if got := argsString(t, "galaxy", "chill"); !strings.Contains(got, "extrastereo=m=3.0") {
		t.Errorf("galaxy chill: args = %q", got)
	}
	// Both rain options share the preset.
	soft := argsString(t, "rain", "soft_rain")
	thunder := argsString(t, "rain", "thunder")
	if soft != thunder {
		t.Errorf("rain presets differ: %q vs %q", soft, thunder)
	}
}

func TestAudioArgsDeffectFrequencies(t *testing.T) {
	tests := []struct {
		option string
		freq   string
	}{
		{"2d", "apulsator=hz=0.1"},
		{"4d", "apulsator=hz=0.2"},
		{"8d", "apulsator=hz=0.5"},
		{"16d", "apulsator=hz=1.0"},
	}
	for _, tt := range tests {
		if got := argsString(t, "deffect", tt.option); !strings.Contains(got, tt.freq) {
			t.Errorf("deffect %s: args = %q, want %s", tt.option, got, tt.freq)
		}
	}
}

func TestAudioArgsRejectsUnknown(t *testing.T) {
	if _, err := AudioArgs("bass", "extreme", "in", "out"); err == nil {
		t.Error("unknown option accepted")
	}
	if _, err := AudioArgs("echo", "low", "in", "out"); err == nil {
		t.Error("unknown effect accepted")
	}
}

func TestGIFArgs(t *testing.T) {
	got := strings.Join(GIFArgs("in.mp4", "out.gif"), " ")
	for _, want := range []string{"fps=10", "scale=480:-1:flags=lanczos", "palettegen=max_colors=128", "-loop 0"} {
		if !strings.Contains(got, want) {
			t.Errorf("gif args = %q, missing %q", got, want)
		}
	}
}

func TestEffectTable(t *testing.T) {
	wantOptions := map[string]int{
		"slow": 6, "bass": 3, "bit": 4, "galaxy": 2, "rain": 2, "deffect": 4,
	}
	for key, want := range wantOptions {
		e := EffectByKey(key)
		if e == nil {
			t.Fatalf("effect %q missing", key)
		}
		if len(e.Options) != want {
			t.Errorf("effect %q has %d options, want %d", key, len(e.Options), want)
		}
	}
	if EffectByKey("nope") != nil {
		t.Error("EffectByKey returned a result for an unknown key")
	}
	if !ValidOption("bass", "medium") || ValidOption("bass", "320k") {
		t.Error("ValidOption table mismatch")
	}
}

func TestQueueRunsJobsAndReportsErrors(t *testing.T) {
	q := NewQueue(Config{Workers: 2, QueueSize: 8, JobTimeoutSeconds: 5})
	q.Start()

	var mu sync.Mutex
	ran := 0
	var gotErr error

	var wg sync.WaitGroup
	wg.Add(2)
	q.Submit(Job{Kind: "audio", Run: func(ctx context.Context) error {
		defer wg.Done()
		mu.Lock()
		ran++
		mu.Unlock()
		return nil
	}})
	q.Submit(Job{
		Kind: "gif",
		Run: func(ctx context.Context) error {
			return errors.New("boom")
		},
		OnError: func(err error) {
			defer wg.Done()
			mu.Lock()
			gotErr = err
			mu.Unlock()
		},
	})
	wg.Wait()
	q.Stop()

	mu.Lock()
	defer mu.Unlock()
	if ran != 1 {
		t.Errorf("ran = %d, want 1", ran)
	}
	if gotErr == nil || gotErr.Error() != "boom" {
		t.Errorf("OnError got %v, want boom", gotErr)
	}
}
