// Package pipeline runs the frame-producer worker: it owns the media
// decoder and the quantizer, paces output at a target frame rate, and
// applies control commands from the broker, matching the single-threaded,
// non-blocking Runner loop it's grounded on.
package pipeline

import (
	"context"
	"image"
	"time"

	"github.com/garaekz/glyphcast/internal/charmap"
	"github.com/garaekz/glyphcast/internal/control"
	"github.com/garaekz/glyphcast/internal/mediasource"
	"github.com/garaekz/glyphcast/internal/quantize"
	"github.com/garaekz/glyphcast/internal/share"
	"github.com/garaekz/glyphcast/logx"
)

// Config configures a Runner.
type Config struct {
	FPS       float64
	WidthMod  int // wmod: divisor applied to terminal columns (emoji compensation)
	AllowSkip bool
	SendWait  time.Duration // deadline to send a produced artifact before dropping it
	DrainWait time.Duration // budget to drain queued control commands per tick
}

// DefaultConfig returns sane defaults: 30fps, wmod 1, no skip, a 5ms send
// deadline, and a 1ms control-drain budget.
func DefaultConfig() Config {
	return Config{
		FPS:       30,
		WidthMod:  1,
		AllowSkip: false,
		SendWait:  5 * time.Millisecond,
		DrainWait: 1 * time.Millisecond,
	}
}

// Runner is the pipeline worker's state machine.
type Runner struct {
	cfg       Config
	source    mediasource.Source
	quantizer *quantize.Quantizer
	charMaps  *charmap.Table
	state     control.PlaybackState

	controls <-chan control.PipelineControl
	frames   chan<- quantize.FrameArtifact

	log *logx.Context

	lastFrame image.Image
	haveFrame bool
	nextTick  time.Time
	period    time.Duration
}

// NewRunner builds a pipeline Runner. controls is read for commands; frames
// is written with produced artifacts (capacity 1 per the back-pressure
// contract).
func NewRunner(cfg Config, source mediasource.Source, quantizer *quantize.Quantizer, charMaps *charmap.Table, controls <-chan control.PipelineControl, frames chan<- quantize.FrameArtifact, log *logx.Logger) *Runner {
	if cfg.FPS <= 0 {
		cfg.FPS = 30
	}
	if cfg.WidthMod <= 0 {
		cfg.WidthMod = 1
	}
	return &Runner{
		cfg:       cfg,
		source:    source,
		quantizer: quantizer,
		charMaps:  charMaps,
		state:     control.StateRunning,
		controls:  controls,
		frames:    frames,
		log:       log.WithFields(share.Fields{"worker": "pipeline"}),
		period:    time.Duration(float64(time.Second) / cfg.FPS),
	}
}

// Run executes the main loop until the state becomes Stopped, the controls
// channel is closed (treated as Exit), or ctx is canceled.
func (r *Runner) Run(ctx context.Context) error {
	r.nextTick = time.Now()
	refresh := false

	for r.state != control.StateStopped {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		r.drainControls(&refresh)
		if r.state == control.StateStopped {
			break
		}

		skip, due := r.gate()
		if !due {
			time.Sleep(time.Millisecond)
			continue
		}
		if r.state != control.StateRunning && r.state != control.StatePaused {
			continue
		}

		if r.cfg.AllowSkip && skip > 0 && r.state == control.StateRunning {
			if err := r.source.Skip(ctx, skip); err != nil {
				r.log.Warn("skip advance failed: %v", err)
			}
		}

		artifact, produced, err := r.acquireAndQuantize(ctx, &refresh)
		if err != nil {
			r.log.Warn("quantize failed, dropping frame: %v", err)
			continue
		}
		if !produced {
			continue
		}
		r.emit(artifact)
	}
	return nil
}

// drainControls applies every command already queued, up to DrainWait.
func (r *Runner) drainControls(refresh *bool) {
	timer := time.NewTimer(r.cfg.DrainWait)
	defer timer.Stop()

	for {
		select {
		case cmd, ok := <-r.controls:
			if !ok {
				r.state = control.StateStopped
				return
			}
			r.apply(cmd, refresh)
		case <-timer.C:
			return
		default:
			return
		}
	}
}

func (r *Runner) apply(cmd control.PipelineControl, refresh *bool) {
	switch cmd.Kind {
	case control.PipelinePauseContinue:
		r.state = r.state.Toggle()
	case control.PipelineExit:
		r.state = control.StateStopped
	case control.PipelineResize:
		r.quantizer.SetResolution(cmd.Width/r.cfg.WidthMod, cmd.Height)
		*refresh = true
	case control.PipelineSetCharMap:
		r.quantizer.SetCharMap(r.charMaps.At(cmd.CharMapIndex))
		*refresh = true
	case control.PipelineSetGrayscale:
		// no-op at the pipeline; grayscale is a terminal-side rendering mode.
	}
}

// gate implements the frame-time gate: it reports whether a tick is due and,
// if so, how many frame periods were skipped.
func (r *Runner) gate() (skip int, due bool) {
	elapsed := time.Since(r.nextTick) + r.period
	if elapsed < r.period {
		return 0, false
	}
	skip = int(elapsed/r.period) - 1
	if skip < 0 {
		skip = 0
	}
	r.nextTick = r.nextTick.Add(time.Duration(skip+1) * r.period)
	return skip, true
}

// acquireAndQuantize pulls a new frame when Running, falls back to
// re-quantizing the cached last frame when paused/stopped-with-refresh, and
// reports produced=false when there is nothing to emit.
func (r *Runner) acquireAndQuantize(ctx context.Context, refresh *bool) (quantize.FrameArtifact, bool, error) {
	if r.state == control.StateRunning {
		next, ok, err := r.source.Next(ctx)
		if err != nil {
			return quantize.FrameArtifact{}, false, err
		}
		if ok {
			r.lastFrame = next
			r.haveFrame = true
			artifact, err := r.quantizer.Process(next)
			return artifact, true, err
		}
	}

	if r.haveFrame && *refresh {
		*refresh = false
		artifact, err := r.quantizer.Process(r.lastFrame)
		return artifact, true, err
	}
	return quantize.FrameArtifact{}, false, nil
}

func (r *Runner) emit(artifact quantize.FrameArtifact) {
	select {
	case r.frames <- artifact:
	case <-time.After(r.cfg.SendWait):
		r.log.Warn("consumer behind, dropping frame")
	}
}
