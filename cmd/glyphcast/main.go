// Command glyphcast renders a still image, animated image, video file, or
// remote video URL as live character art in the terminal, with optional
// synchronized audio.
package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/garaekz/glyphcast/internal/audioplay"
	"github.com/garaekz/glyphcast/internal/charmap"
	"github.com/garaekz/glyphcast/internal/download"
	"github.com/garaekz/glyphcast/internal/engine"
	"github.com/garaekz/glyphcast/internal/mediasource"
	"github.com/garaekz/glyphcast/internal/pipeline"
	"github.com/garaekz/glyphcast/internal/probe"
	"github.com/garaekz/glyphcast/internal/quantize"
	"github.com/garaekz/glyphcast/logx"
	"github.com/garaekz/glyphcast/terminal"
)

const defaultRamp = " .:-=+*#%@"

func main() {
	var (
		fps       = pflag.Float64P("fps", "f", 0, "Target FPS. Default: probe the source; fall back to 30.")
		charMap   = pflag.StringP("char-map", "c", defaultRamp, "Initial character map (ordered sequence of display glyphs).")
		gray      = pflag.BoolP("gray", "g", false, "Start in grayscale (per-cell color disabled).")
		wMod      = pflag.IntP("w-mod", "w", 1, "Cell-width compensation divisor, 1 or 2.")
		allowSkip = pflag.BoolP("allow-frame-skip", "a", false, "Enable source-side frame skipping.")
	)
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "glyphcast - render images, GIFs, video, or a YouTube URL as live character art.\n\n")
		fmt.Fprintf(os.Stderr, "Usage: glyphcast [options] <input>\n\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	log := logx.GetLogger()

	if pflag.NArg() != 1 {
		pflag.Usage()
		os.Exit(1)
	}
	input := pflag.Arg(0)

	if *wMod != 1 && *wMod != 2 {
		log.Fatal("invalid --w-mod %d: must be 1 or 2", *wMod)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	path, cleanup := resolveInput(ctx, input, log)
	defer cleanup()

	cols, rows, err := terminal.GetSize()
	if err != nil || cols <= 0 || rows <= 0 {
		cols, rows = 80, 24
	}
	targetW, targetH := cols / *wMod, rows

	resolvedFPS, hasAudio := resolveProbe(ctx, path, *fps, log)

	source, err := mediasource.Open(path, targetW, targetH, resolvedFPS)
	if err != nil {
		log.Fatal("opening %q: %v", path, err)
	}
	defer source.Close()

	initial := charmap.FromString("initial", *charMap)
	if initial.Len() == 0 {
		initial = charmap.ASCII10
	}
	table := charmap.NewTable(initial)
	quantizer := quantize.New(targetW, targetH, table.At(0))

	pipelineCfg := pipeline.DefaultConfig()
	pipelineCfg.FPS = resolvedFPS
	pipelineCfg.WidthMod = *wMod
	pipelineCfg.AllowSkip = *allowSkip

	var audioBackend audioplay.Player
	if hasAudio {
		backend, err := audioplay.NewBackend(ctx, path, 44100, 2)
		if err != nil {
			log.Warn("audio backend unavailable, continuing muted: %v", err)
		} else {
			audioBackend = backend
		}
	}

	opts := engine.Options{
		Pipeline:         pipelineCfg,
		Source:           source,
		Quantizer:        quantizer,
		CharMaps:         table,
		AudioBackend:     audioBackend,
		InitialGrayscale: *gray,
		Stdin:            os.Stdin,
		Stdout:           os.Stdout,
		Log:              log,
	}

	if err := engine.Run(ctx, opts); err != nil {
		log.Fatal("glyphcast exited with error: %v", err)
	}
}

// resolveInput returns a local, playable file path for input: a YouTube/
// short URL is downloaded to a temp file first (removed by cleanup); any
// other path is returned unchanged with a no-op cleanup.
func resolveInput(ctx context.Context, input string, log *logx.Logger) (path string, cleanup func()) {
	if !isYouTubeURL(input) {
		return input, func() {}
	}
	tmp, err := download.ToTempFileWithSpinner(ctx, input, os.Stderr)
	if err != nil {
		log.Fatal("downloading %q: %v", input, err)
	}
	return tmp, func() { _ = os.Remove(tmp) }
}

func isYouTubeURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return false
	}
	host := strings.ToLower(u.Host)
	return strings.HasSuffix(host, "youtube.com") || strings.HasSuffix(host, "youtu.be")
}

// resolveProbe fills in fps/audio-presence for local video files. Still
// images and GIFs have no meaningful probe, so files with a recognized
// still-image or GIF extension skip probing and fall back straight to the
// explicit-config-then-default chain with no audio; any other extension is
// probed as video.
func resolveProbe(ctx context.Context, path string, configuredFPS float64, log *logx.Logger) (fps float64, hasAudio bool) {
	if !looksLikeVideo(path) {
		return probe.ResolveFPS(configuredFPS, 0), false
	}
	result, err := probe.ProbeWithSpinner(ctx, path, os.Stderr)
	if err != nil {
		log.Warn("probing %q failed, using defaults: %v", path, err)
		return probe.ResolveFPS(configuredFPS, 0), false
	}
	return probe.ResolveFPS(configuredFPS, result.FPS), result.HasAudio
}

func looksLikeVideo(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg", ".bmp", ".tif", ".tiff", ".ico", ".gif":
		return false
	default:
		return true
	}
}
