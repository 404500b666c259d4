package audioplay

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"sync"

	"github.com/ebitengine/oto/v3"

	"github.com/garaekz/glyphcast/internal/errs"
)

// Backend decodes an audio track by piping raw PCM out of an ffmpeg
// subprocess and sinks it through oto. Only one oto.Context may exist per
// process, so it's created once and reused across Backend instances.
type Backend struct {
	path       string
	sampleRate int
	channels   int

	mu      sync.Mutex
	cmd     *exec.Cmd
	stdout  io.ReadCloser
	player  *oto.Player
	volume  float64
	muted   bool
	paused  bool
	stopped bool
}

var (
	otoOnce    sync.Once
	otoCtx     *oto.Context
	otoInitErr error
)

func initOto(sampleRate, channels int) (*oto.Context, error) {
	otoOnce.Do(func() {
		ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: channels,
			Format:       oto.FormatSignedInt16LE,
		})
		if err != nil {
			otoInitErr = err
			return
		}
		<-ready
		otoCtx = ctx
	})
	return otoCtx, otoInitErr
}

// NewBackend opens path via an ffmpeg subprocess producing raw interleaved
// 16-bit PCM at the given sample rate/channel count, and wires it into an
// oto player. The backend starts paused, matching the worker's contract.
func NewBackend(ctx context.Context, path string, sampleRate, channels int) (*Backend, error) {
	b := &Backend{path: path, sampleRate: sampleRate, channels: channels, volume: 1.0, paused: true}
	if err := b.start(ctx); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Backend) start(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-nostdin", "-hide_banner", "-loglevel", "error",
		"-i", b.path,
		"-f", "s16le",
		"-ar", fmt.Sprintf("%d", b.sampleRate),
		"-ac", fmt.Sprintf("%d", b.channels),
		"-",
	)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return errs.Wrap(errs.Audio, "audioplay", err)
	}
	if err := cmd.Start(); err != nil {
		return errs.Wrap(errs.Audio, "audioplay", err)
	}

	otoCtx, err := initOto(b.sampleRate, b.channels)
	if err != nil {
		_ = cmd.Process.Kill()
		return errs.Wrap(errs.Audio, "audioplay", err)
	}

	player := otoCtx.NewPlayer(stdout)
	player.SetVolume(b.volume)

	b.cmd = cmd
	b.stdout = stdout
	b.player = player
	b.stopped = false
	return nil
}

// Pause pauses playback without affecting the muted/volume state.
func (b *Backend) Pause() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.player == nil || b.stopped {
		return
	}
	b.player.Pause()
	b.paused = true
}

// Resume resumes playback from where it was paused.
func (b *Backend) Resume() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.player == nil || b.stopped {
		return
	}
	b.player.Play()
	b.paused = false
}

// TogglePlay flips between Pause and Resume.
func (b *Backend) TogglePlay() {
	b.mu.Lock()
	paused := b.paused
	b.mu.Unlock()
	if paused {
		b.Resume()
	} else {
		b.Pause()
	}
}

// Mute silences output while remembering the prior volume.
func (b *Backend) Mute() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.muted = true
	if b.player != nil {
		b.player.SetVolume(0)
	}
}

// Unmute restores the volume in effect before Mute.
func (b *Backend) Unmute() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.muted = false
	if b.player != nil {
		b.player.SetVolume(b.volume)
	}
}

// ToggleMute flips between Mute and Unmute.
func (b *Backend) ToggleMute() {
	b.mu.Lock()
	muted := b.muted
	b.mu.Unlock()
	if muted {
		b.Unmute()
	} else {
		b.Mute()
	}
}

// Rewind restarts the track from the beginning: arbitrary-timestamp seeking
// is out of scope, so a rewind tears down and relaunches the decode
// subprocess rather than seeking the PCM stream.
func (b *Backend) Rewind(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.stopped {
		return nil
	}
	wasPaused := b.paused
	b.disposeLocked()
	if err := b.start(ctx); err != nil {
		return err
	}
	if b.muted {
		b.player.SetVolume(0)
	}
	if !wasPaused {
		b.player.Play()
		b.paused = false
	} else {
		b.paused = true
	}
	return nil
}

// Stop halts playback and tears down the decode subprocess permanently.
func (b *Backend) Stop() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.stopped {
		return nil
	}
	b.disposeLocked()
	b.stopped = true
	return nil
}

// Close releases backend resources; it is equivalent to Stop.
func (b *Backend) Close() error {
	return b.Stop()
}

func (b *Backend) disposeLocked() {
	if b.player != nil {
		b.player.Pause()
		_ = b.player.Close()
		b.player = nil
	}
	if b.cmd != nil && b.cmd.Process != nil {
		_ = b.cmd.Process.Kill()
		_ = b.cmd.Wait()
	}
	if b.stdout != nil {
		_ = b.stdout.Close()
		b.stdout = nil
	}
	b.cmd = nil
}
