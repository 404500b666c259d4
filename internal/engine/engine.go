// Package engine wires the four workers (broker, pipeline, terminal, and
// optionally audio) together: it owns the channels between them, the start
// barrier that releases them simultaneously, and the supervisor that runs
// them in parallel, waits for all of them, and combines their errors.
package engine

import (
	"context"
	"os"

	"github.com/garaekz/glyphcast/flowfx"
	"github.com/garaekz/glyphcast/internal/audioplay"
	"github.com/garaekz/glyphcast/internal/broker"
	"github.com/garaekz/glyphcast/internal/charmap"
	"github.com/garaekz/glyphcast/internal/control"
	"github.com/garaekz/glyphcast/internal/mediasource"
	"github.com/garaekz/glyphcast/internal/pipeline"
	"github.com/garaekz/glyphcast/internal/quantize"
	"github.com/garaekz/glyphcast/internal/termui"
	"github.com/garaekz/glyphcast/logx"
)

// controlBufferSize approximates the spec's "unbounded" control channels
// with a generous fixed buffer; see internal/broker's grounding note.
const controlBufferSize = 64

// Options configures a single playback run. Source, Quantizer, and CharMaps
// are already constructed by the caller (the CLI layer owns file opening,
// probing, and flag parsing); AudioBackend is nil for media with no audio
// track, which drops the arity to 3 and omits the audio worker entirely.
type Options struct {
	Pipeline     pipeline.Config
	Source       mediasource.Source
	Quantizer    *quantize.Quantizer
	CharMaps     *charmap.Table
	AudioBackend audioplay.Player

	// InitialGrayscale seeds the terminal worker's grayscale toggle; the 'g'
	// key flips it from there.
	InitialGrayscale bool

	Stdin, Stdout *os.File

	Log *logx.Logger
}

// Run builds the channels and the start barrier, launches every worker in
// parallel, and blocks until every worker has returned (normally via Exit).
// It returns all worker errors combined by flowfx.Parallel, or nil.
func Run(ctx context.Context, opts Options) error {
	media := make(chan control.MediaControl, controlBufferSize)
	pipelineCh := make(chan control.PipelineControl, controlBufferSize)
	frames := make(chan quantize.FrameArtifact, 1)

	var audioCh chan control.AudioControl
	arity := 3
	if opts.AudioBackend != nil {
		audioCh = make(chan control.AudioControl, controlBufferSize)
		arity = 4
	}

	barrier := NewBarrier(arity)

	pipelineRunner := pipeline.NewRunner(opts.Pipeline, opts.Source, opts.Quantizer, opts.CharMaps, pipelineCh, frames, opts.Log)
	terminalWorker := termui.NewWorker(opts.Stdin, opts.Stdout, frames, media, opts.InitialGrayscale, opts.Log)
	brokerWorker := broker.New(media, pipelineCh, audioCh, opts.Log)

	tasks := []*flowfx.Task{
		flowfx.NewTask(
			flowfx.WithName("pipeline"),
			flowfx.WithRun(barrierGated(barrier, pipelineRunner.Run)),
		),
		flowfx.NewTask(
			flowfx.WithName("terminal"),
			flowfx.WithRun(barrierGated(barrier, terminalWorker.Run)),
		),
		flowfx.NewTask(
			flowfx.WithName("broker"),
			flowfx.WithRun(barrierGated(barrier, brokerWorker.Run)),
		),
	}

	if opts.AudioBackend != nil {
		audioRunner := audioplay.NewRunner(opts.AudioBackend, audioCh, opts.Log)
		tasks = append(tasks, flowfx.NewTask(
			flowfx.WithName("audio"),
			flowfx.WithRun(barrierGated(barrier, audioRunner.Run)),
		))
	}

	return flowfx.Parallel(ctx, tasks...)
}

// barrierGated wraps a worker's Run method so it blocks on the start
// barrier before entering its main loop, matching every worker waiting at
// the same synchronization point before the pipeline's first scheduled
// tick becomes the time origin for playback.
func barrierGated(barrier *Barrier, run func(ctx context.Context) error) func(context.Context, *flowfx.ProgressTracker) error {
	return func(ctx context.Context, _ *flowfx.ProgressTracker) error {
		if err := barrier.Wait(ctx); err != nil {
			return err
		}
		return run(ctx)
	}
}
