package audioplay

import (
	"context"

	"github.com/garaekz/glyphcast/internal/control"
	"github.com/garaekz/glyphcast/internal/errs"
	"github.com/garaekz/glyphcast/internal/share"
	"github.com/garaekz/glyphcast/logx"
)

// Player is the backend surface the Runner drives; *Backend implements it.
// Accepting an interface here (rather than *Backend directly) lets the
// worker's control-translation loop be exercised without a real audio
// device or ffmpeg binary, and lets the engine wire in any backend that
// satisfies it.
type Player interface {
	Pause()
	Resume()
	TogglePlay()
	Mute()
	Unmute()
	ToggleMute()
	Rewind(ctx context.Context) error
	Stop() error
}

// Runner is the audio worker's state machine: after release it resumes
// playback from the backend's initial paused state, then loops on controls,
// translating each command to a backend call one-to-one.
type Runner struct {
	backend  Player
	controls <-chan control.AudioControl
	log      *logx.Context
}

// NewRunner builds an audio Runner over backend, reading commands from
// controls.
func NewRunner(backend Player, controls <-chan control.AudioControl, log *logx.Logger) *Runner {
	return &Runner{
		backend:  backend,
		controls: controls,
		log:      log.WithFields(share.Fields{"worker": "audio"}),
	}
}

// Run resumes playback, then loops until Exit is received, controls is
// closed, or ctx is canceled — in all three cases the backend is stopped
// before returning.
func (r *Runner) Run(ctx context.Context) error {
	r.backend.Resume()

	for {
		select {
		case <-ctx.Done():
			return r.stop()
		case cmd, ok := <-r.controls:
			if !ok {
				return r.stop()
			}
			if err := r.apply(ctx, cmd); err != nil {
				return err
			}
			if cmd.Kind == control.AudioExit {
				return nil
			}
		}
	}
}

func (r *Runner) apply(ctx context.Context, cmd control.AudioControl) error {
	switch cmd.Kind {
	case control.AudioPauseContinue:
		r.backend.TogglePlay()
	case control.AudioExit:
		return r.stop()
	case control.AudioMuteToggle:
		r.backend.ToggleMute()
	case control.AudioRewind:
		if err := r.backend.Rewind(ctx); err != nil {
			return errs.Wrap(errs.Audio, "audioplay", err)
		}
	}
	return nil
}

func (r *Runner) stop() error {
	if err := r.backend.Stop(); err != nil {
		return errs.Wrap(errs.Audio, "audioplay", err)
	}
	return nil
}
