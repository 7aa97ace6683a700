// Package media runs ffmpeg jobs for the music edit and video-to-GIF
// features: a fixed table of audio effect presets plus a worker queue
// that keeps transcoding off the event-handling path.
package media

// Option is one selectable setting for an effect.
type Option struct {
	Key   string // callback key, e.g. "medium"
	Label string // button label, e.g. "Medium"
}

// Effect is one audio effect category with its option set.
type Effect struct {
	Key     string // callback key, e.g. "bass"
	Label   string // button label, e.g. "Bass Boost"
	Options []Option
}

// effects is the fixed effect/option table, in menu order.
var effects = []Effect{
	{Key: "slow", Label: "Slow", Options: []Option{
		{"0.25", "0.25x"}, {"0.5", "0.5x"}, {"1", "1x"},
		{"1.25", "1.25x"}, {"1.5", "1.5x"}, {"2", "2x"},
	}},
	{Key: "bass", Label: "Bass Boost", Options: []Option{
		{"low", "Low"}, {"medium", "Medium"}, {"high", "High"},
	}},
	{Key: "bit", Label: "Bit Booster", Options: []Option{
		{"128k", "128 kbps"}, {"192k", "192 kbps"},
		{"256k", "256 kbps"}, {"320k", "320 kbps"},
	}},
	{Key: "galaxy", Label: "Galaxy Remix", Options: []Option{
		{"reverb", "Apply Big-Room Reverb"}, {"chill", "Chill Room Vibe"},
	}},
	{Key: "rain", Label: "Rain Vibe", Options: []Option{
		{"soft_rain", "Soft Rain"}, {"thunder", "Thunderstorm Vibe"},
	}},
	{Key: "deffect", Label: "D Effect", Options: []Option{
		{"2d", "2D"}, {"4d", "4D"}, {"8d", "8D"}, {"16d", "16D"},
	}},
}

// Effects returns the effect table in menu order.
func Effects() []Effect {
	return effects
}

// EffectByKey returns the effect for a callback key, or nil.
func EffectByKey(key string) *Effect {
	for i := range effects {
		if effects[i].Key == key {
			return &effects[i]
		}
	}
	return nil
}

// ValidOption reports whether option is in the effect's option set.
func ValidOption(effect, option string) bool {
	e := EffectByKey(effect)
	if e == nil {
		return false
	}
	for _, o := range e.Options {
		if o.Key == option {
			return true
		}
	}
	return false
}
