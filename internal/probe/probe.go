// Package probe inspects a media file with ffprobe to discover its frame
// rate and whether it carries an audio stream, used to fill in fps/audio
// defaults the user didn't specify explicitly.
package probe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"

	"github.com/garaekz/glyphcast/internal/errs"
	"github.com/garaekz/glyphcast/progrefx"
)

// Result is what a probe discovers about a media file.
type Result struct {
	FPS        float64
	HasAudio   bool
	DurationS  float64
}

type ffprobeStream struct {
	CodecType    string `json:"codec_type"`
	RFrameRate   string `json:"r_frame_rate"`
	AvgFrameRate string `json:"avg_frame_rate"`
}

type ffprobeFormat struct {
	Duration string `json:"duration"`
}

type ffprobeOutput struct {
	Streams []ffprobeStream `json:"streams"`
	Format  ffprobeFormat   `json:"format"`
}

// Probe runs ffprobe against path and parses its JSON report.
func Probe(ctx context.Context, path string) (Result, error) {
	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "error",
		"-show_entries", "stream=codec_type,r_frame_rate,avg_frame_rate:format=duration",
		"-print_format", "json",
		path,
	)
	var out bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return Result{}, errs.Wrap(errs.Application, "probe", fmt.Errorf("ffprobe failed: %w: %s", err, stderr.String()))
	}

	var parsed ffprobeOutput
	if err := json.Unmarshal(out.Bytes(), &parsed); err != nil {
		return Result{}, errs.Wrap(errs.Application, "probe", fmt.Errorf("invalid ffprobe output: %w", err))
	}

	var res Result
	for _, stream := range parsed.Streams {
		switch stream.CodecType {
		case "video":
			if fps, ok := parseRational(stream.AvgFrameRate); ok && fps > 0 {
				res.FPS = fps
			} else if fps, ok := parseRational(stream.RFrameRate); ok && fps > 0 {
				res.FPS = fps
			}
		case "audio":
			res.HasAudio = true
		}
	}
	if d, err := strconv.ParseFloat(strings.TrimSpace(parsed.Format.Duration), 64); err == nil {
		res.DurationS = d
	}
	return res, nil
}

// parseRational parses ffprobe's "num/den" frame-rate strings.
func parseRational(s string) (float64, bool) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		v, err := strconv.ParseFloat(s, 64)
		return v, err == nil
	}
	num, err1 := strconv.ParseFloat(parts[0], 64)
	den, err2 := strconv.ParseFloat(parts[1], 64)
	if err1 != nil || err2 != nil || den == 0 {
		return 0, false
	}
	return num / den, true
}

// ProbeWithSpinner runs Probe while animating a spinner on w, so a slow
// ffprobe invocation against a large remote-downloaded file still gives the
// user feedback that the program hasn't hung.
func ProbeWithSpinner(ctx context.Context, path string, w io.Writer) (Result, error) {
	spinCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	spinner := progrefx.StartSpinner(progrefx.SpinnerConfig{Label: "Probing " + path})
	done := make(chan struct{})
	go func() {
		defer close(done)
		spinner.Run(spinCtx, w, 0)
	}()

	res, err := Probe(ctx, path)
	cancel()
	<-done
	return res, err
}

// ResolveFPS applies the precedence chain: explicit configuration, then a
// probed value, else a default of 30.
func ResolveFPS(configured float64, probed float64) float64 {
	if configured > 0 {
		return configured
	}
	if probed > 0 {
		return probed
	}
	return 30
}
