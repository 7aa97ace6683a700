package media

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kingsalmon6969-svg/hermax-bot/internal/logging"
)

// gifFilter is the palette-based GIF conversion filter graph.
const gifFilter = "fps=10,scale=480:-1:flags=lanczos,split[s0][s1];" +
	"[s0]palettegen=max_colors=128[p];" +
	"[s1][p]paletteuse=dither=bayer:bayer_scale=1"

// Transcoder invokes ffmpeg with fixed filter-graph presets.
type Transcoder struct {
	cfg Config
}

// NewTranscoder creates a transcoder.
func NewTranscoder(cfg Config) *Transcoder {
	return &Transcoder{cfg: cfg}
}

// AudioArgs builds the ffmpeg argument list for an effect/option pair.
// Exposed separately from Audio so the preset table is testable
// without ffmpeg installed.
func AudioArgs(effect, option, inputPath, outputPath string) ([]string, error) {
	if !ValidOption(effect, option) {
		return nil, fmt.Errorf("unknown effect/option: %s/%s", effect, option)
	}

	args := []string{"-y", "-hide_banner", "-loglevel", "error", "-i", inputPath}

	switch effect {
	case "slow":
		speed, err := strconv.ParseFloat(option, 64)
		if err != nil {
			return nil, fmt.Errorf("bad speed option %q: %w", option, err)
		}
		// atempo only accepts 0.5-2.0; chain two stages for extremes.
		var filter string
		switch {
		case speed < 0.5:
			filter = fmt.Sprintf("atempo=0.5,atempo=%s", formatFloat(speed/0.5))
		case speed > 2.0:
			filter = fmt.Sprintf("atempo=2.0,atempo=%s", formatFloat(speed/2.0))
		default:
			filter = fmt.Sprintf("atempo=%s", formatFloat(speed))
		}
		args = append(args, "-filter:a", filter)

	case "bass":
		gain := 5
		switch option {
		case "medium":
			gain = 10
		case "high":
			gain = 20
		}
		args = append(args, "-af", fmt.Sprintf("equalizer=f=60:width_type=h:w=50:g=%d", gain))

	case "bit":
		args = append(args, "-b:a", option)

	case "galaxy":
		if option == "chill" {
			args = append(args, "-af", "extrastereo=m=3.0,aecho=0.8:0.9:60:0.3,lowpass=f=15000,bass=g=3")
		} else {
			args = append(args, "-af", "aecho=0.8:0.9:1000:0.3")
		}

	case "rain":
		// Both rain options share one preset.
		args = append(args, "-af", "lowpass=f=3500,highpass=f=150,aecho=0.6:0.66:400:0.2,volume=0.9")

	case "deffect":
		freq := "1.0"
		switch option {
		case "2d":
			freq = "0.1"
		case "4d":
			freq = "0.2"
		case "8d":
			freq = "0.5"
		}
		args = append(args, "-af", fmt.Sprintf("apulsator=hz=%s", freq))
	}

	// Bitrate boost keeps the source codec settings; everything else
	// re-encodes to mp3.
	if effect != "bit" {
		args = append(args, "-c:a", "libmp3lame", "-preset", "superfast")
	}

	args = append(args, outputPath)
	return args, nil
}

// GIFArgs builds the ffmpeg argument list for video-to-GIF conversion.
func GIFArgs(inputPath, outputPath string) []string {
	return []string{
		"-y", "-hide_banner", "-loglevel", "error",
		"-i", inputPath,
		"-vf", gifFilter,
		"-loop", "0",
		outputPath,
	}
}

// Audio applies an effect preset to an audio file. The output lands
// next to the input as output_<effect>.mp3 and its path is returned.
func (t *Transcoder) Audio(ctx context.Context, inputPath, effect, option string) (string, error) {
	outputPath := filepath.Join(filepath.Dir(inputPath), fmt.Sprintf("output_%s.mp3", effect))

	args, err := AudioArgs(effect, option, inputPath, outputPath)
	if err != nil {
		return "", err
	}

	if err := t.run(ctx, args); err != nil {
		return "", fmt.Errorf("audio transcode failed: %w", err)
	}
	return outputPath, nil
}

// GIF converts a video file to a GIF next to the input.
func (t *Transcoder) GIF(ctx context.Context, inputPath string) (string, error) {
	outputPath := filepath.Join(filepath.Dir(inputPath), "output.gif")

	if err := t.run(ctx, GIFArgs(inputPath, outputPath)); err != nil {
		return "", fmt.Errorf("gif conversion failed: %w", err)
	}
	return outputPath, nil
}

func (t *Transcoder) run(ctx context.Context, args []string) error {
	logging.L_debug("media: running ffmpeg", "args", strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, t.cfg.ffmpegPath(), args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("ffmpeg timed out: %w", ctx.Err())
	}

	msg := strings.TrimSpace(stderr.String())
	if len(msg) > 300 {
		msg = msg[len(msg)-300:]
	}
	if msg != "" {
		return fmt.Errorf("ffmpeg failed: %w (%s)", err, msg)
	}
	return fmt.Errorf("ffmpeg failed: %w", err)
}

// formatFloat renders a float the way the filter strings expect,
// without a trailing ".0" for whole numbers.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
