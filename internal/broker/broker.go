// Package broker fans the terminal worker's MediaControl commands out to
// the pipeline and audio workers' own control types, per a fixed
// translation table: the terminal stays ignorant of which downstream
// workers exist for a given media (audio present or not).
package broker

import (
	"context"

	"github.com/garaekz/glyphcast/internal/control"
	"github.com/garaekz/glyphcast/internal/share"
	"github.com/garaekz/glyphcast/logx"
)

// Broker reads MediaControl from the terminal worker and forwards
// translated commands to the pipeline and, when present, the audio worker.
type Broker struct {
	in       <-chan control.MediaControl
	pipeline chan<- control.PipelineControl
	audio    chan<- control.AudioControl // nil when the media has no audio

	log *logx.Context
}

// New builds a Broker. audio may be nil when the media has no audio track;
// audio-bound commands are then silently dropped.
func New(in <-chan control.MediaControl, pipeline chan<- control.PipelineControl, audio chan<- control.AudioControl, log *logx.Logger) *Broker {
	return &Broker{
		in:       in,
		pipeline: pipeline,
		audio:    audio,
		log:      log.WithFields(share.Fields{"worker": "broker"}),
	}
}

// Run loops on in until Exit is received or the channel closes, forwarding
// each command per the translation table. On Exit it forwards Exit
// downstream to both workers (if present), drains any already-queued
// messages best-effort, and returns.
func (b *Broker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case cmd, ok := <-b.in:
			if !ok {
				return nil
			}
			if cmd.Kind == control.MediaExit {
				b.forward(cmd)
				b.drain()
				return nil
			}
			b.forward(cmd)
		}
	}
}

// drain forwards any messages already queued on in, best-effort, without
// blocking for new ones.
func (b *Broker) drain() {
	for {
		select {
		case cmd, ok := <-b.in:
			if !ok {
				return
			}
			b.forward(cmd)
		default:
			return
		}
	}
}

func (b *Broker) forward(cmd control.MediaControl) {
	switch cmd.Kind {
	case control.MediaPauseContinue:
		b.sendPipeline(control.PauseContinuePipeline)
		b.sendAudio(control.PauseContinueAudio)
	case control.MediaExit:
		b.sendPipeline(control.ExitPipeline)
		b.sendAudio(control.ExitAudio)
	case control.MediaResize:
		b.sendPipeline(control.Resize(cmd.Width, cmd.Height))
	case control.MediaSetCharMap:
		b.sendPipeline(control.SetCharMap(cmd.CharMapIndex))
	case control.MediaSetGrayscale:
		b.sendPipeline(control.SetGrayscale(cmd.Grayscale))
	case control.MediaMuteUnmute:
		b.sendAudio(control.MuteToggleAudio)
	case control.MediaReplay:
		b.sendAudio(control.RewindAudio)
	}
}

// sendPipeline and sendAudio block on send: ctrl_pipe/ctrl_audio are
// unbounded control channels (approximated with a generously sized buffer),
// so a full channel signals a genuinely stuck downstream worker rather than
// ordinary back-pressure.
func (b *Broker) sendPipeline(cmd control.PipelineControl) {
	if b.pipeline == nil {
		return
	}
	b.pipeline <- cmd
}

func (b *Broker) sendAudio(cmd control.AudioControl) {
	if b.audio == nil {
		return
	}
	b.audio <- cmd
}
