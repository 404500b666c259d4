// Package termui implements the terminal worker: it owns the TTY, renders
// one frame per receive from the pipeline, polls keyboard and resize
// events non-blockingly, and issues MediaControl commands to the broker.
package termui

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/garaekz/glyphcast/color"
	"github.com/garaekz/glyphcast/internal/control"
	"github.com/garaekz/glyphcast/internal/quantize"
	"github.com/garaekz/glyphcast/internal/share"
	"github.com/garaekz/glyphcast/logx"
	"github.com/garaekz/glyphcast/runfx"
	"github.com/garaekz/glyphcast/writer"
)

// resizePollInterval is how often the worker checks for a changed TTY size;
// there is no portable blocking resize-event API, so it polls.
const resizePollInterval = 250 * time.Millisecond

// Worker is the terminal worker's render+input loop.
type Worker struct {
	kr *runfx.KeyReader
	tw *writer.TerminalWriter
	tty *os.File

	frames   <-chan quantize.FrameArtifact
	controls chan<- control.MediaControl

	grayscale bool
	paused    bool

	log *logx.Context
}

// NewWorker builds a terminal Worker reading keys from in and rendering to
// out. out must be an *os.File for raw-mode/size detection to work.
// initialGrayscale seeds the worker's local grayscale toggle (the 'g' key
// flips it from there).
func NewWorker(in *os.File, out *os.File, frames <-chan quantize.FrameArtifact, controls chan<- control.MediaControl, initialGrayscale bool, log *logx.Logger) *Worker {
	return &Worker{
		grayscale: initialGrayscale,
		kr:       runfx.NewKeyReader(in),
		tw:       writer.NewTerminalWriter(out, writer.TerminalOptions{DoubleBuffer: true}),
		tty:      out,
		frames:   frames,
		controls: controls,
		log:      log.WithFields(share.Fields{"worker": "terminal"}),
	}
}

// Run enters raw mode, sends the initial Resize so the pipeline has a valid
// target before its first tick, then services frames/input/resize until
// Stopped or ctx is canceled.
func (w *Worker) Run(ctx context.Context) error {
	state, err := w.tw.EnableRawMode()
	if err != nil {
		w.log.Warn("raw mode unavailable: %v", err)
	} else {
		defer func() { _ = w.tw.RestoreMode(state) }()
	}

	_ = w.tw.HideCursor()
	_ = w.tw.Clear()
	defer func() {
		_ = w.tw.ShowCursor()
		_ = w.tw.Clear()
	}()

	cols, rows, err := w.tw.GetSize()
	if err != nil {
		cols, rows = 80, 24
	}
	w.controls <- control.ResizeMedia(cols, rows)
	lastCols, lastRows := cols, rows

	keys := make(chan runfx.Key, 8)
	go w.readKeys(ctx, keys)

	resizeTicker := time.NewTicker(resizePollInterval)
	defer resizeTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case key := <-keys:
			if stop := w.handleKey(key); stop {
				return nil
			}

		case artifact, ok := <-w.frames:
			if !ok {
				w.controls <- control.ExitMedia
				return nil
			}
			w.render(artifact)

		case <-resizeTicker.C:
			cols, rows, err := w.tw.GetSize()
			if err != nil || (cols == lastCols && rows == lastRows) {
				continue
			}
			lastCols, lastRows = cols, rows
			w.controls <- control.ResizeMedia(cols, rows)
			w.drainFrames()
		}
	}
}

// readKeys continuously reads keys and forwards them, until ctx is done or
// the read fails (TTY closed).
func (w *Worker) readKeys(ctx context.Context, out chan<- runfx.Key) {
	for {
		key, err := w.kr.ReadKey(ctx)
		if err != nil {
			return
		}
		select {
		case out <- key:
		case <-ctx.Done():
			return
		}
	}
}

// handleKey applies the literal key map, returning true when the worker
// should stop.
func (w *Worker) handleKey(key runfx.Key) bool {
	switch {
	case key.Code == runfx.KeyQ || key.Code == runfx.KeyCtrlC || key.Code == runfx.KeyEscape:
		w.controls <- control.ExitMedia
		return true
	case key.Code == runfx.KeySpace:
		w.paused = !w.paused
		w.controls <- control.PauseContinueMedia
	case key.Code == runfx.KeyG:
		w.grayscale = !w.grayscale
		w.controls <- control.SetGrayscaleMedia(w.grayscale)
	case key.Code == runfx.KeyM:
		w.controls <- control.MuteUnmuteMedia
	case key.IsNumber():
		w.controls <- control.SetCharMapMedia(key.ToNumber())
	}
	return false
}

// drainFrames discards any frames already queued, best-effort, without
// blocking for new ones — used after a Resize so a stale-resolution
// artifact isn't rendered.
func (w *Worker) drainFrames() {
	for {
		select {
		case <-w.frames:
		default:
			return
		}
	}
}

// render draws one artifact: cursor to (0,0), the glyph grid either plain
// (grayscale) or with a per-cell truecolor foreground, cursor back to
// (0,0). The terminal writer does not buffer, so each write reaches the
// terminal directly.
func (w *Worker) render(artifact quantize.FrameArtifact) {
	mode := w.tw.GetColorMode()
	var buf strings.Builder
	buf.Grow(len(artifact.Glyphs) * 12)

	glyphs := []rune(artifact.Glyphs)
	width := artifact.Width
	if width <= 0 {
		width = len(glyphs)
	}

	if w.grayscale || mode == color.ModeNoColor {
		for i, g := range glyphs {
			buf.WriteRune(g)
			if width > 0 && (i+1)%width == 0 && i+1 != len(glyphs) {
				buf.WriteString("\r\n")
			}
		}
	} else {
		for i, g := range glyphs {
			if i*3+2 < len(artifact.Colors) {
				r, gr, b := artifact.Colors[i*3], artifact.Colors[i*3+1], artifact.Colors[i*3+2]
				buf.WriteString(color.NewRGB(r, gr, b).Render(mode))
			}
			buf.WriteRune(g)
			if width > 0 && (i+1)%width == 0 && i+1 != len(glyphs) {
				buf.WriteString("\r\n")
			}
		}
		buf.WriteString(color.Reset)
	}

	_ = w.tw.MoveCursor(1, 1)
	_, _ = w.tw.Write([]byte(buf.String()))
	_ = w.tw.MoveCursor(1, 1)
}
