package audioplay

import (
	"context"
	"testing"
	"time"

	"github.com/garaekz/glyphcast/internal/control"
	"github.com/garaekz/glyphcast/logx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	resumed    bool
	toggled    int
	muted      int
	rewound    int
	stopped    bool
	rewindErr  error
}

func (f *fakeBackend) Pause()                              {}
func (f *fakeBackend) Resume()                              { f.resumed = true }
func (f *fakeBackend) TogglePlay()                           { f.toggled++ }
func (f *fakeBackend) Mute()                                 {}
func (f *fakeBackend) Unmute()                               {}
func (f *fakeBackend) ToggleMute()                            { f.muted++ }
func (f *fakeBackend) Rewind(ctx context.Context) error      { f.rewound++; return f.rewindErr }
func (f *fakeBackend) Stop() error                           { f.stopped = true; return nil }

func newTestRunner() (*Runner, *fakeBackend, chan control.AudioControl) {
	backend := &fakeBackend{}
	controls := make(chan control.AudioControl, 4)
	r := NewRunner(backend, controls, logx.New(logx.DefaultOptions()))
	return r, backend, controls
}

func TestRunResumesOnStart(t *testing.T) {
	r, backend, controls := newTestRunner()
	done := make(chan error, 1)
	go func() { done <- r.Run(context.Background()) }()

	controls <- control.ExitAudio
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("runner did not exit after Exit control")
	}
	assert.True(t, backend.resumed)
	assert.True(t, backend.stopped)
}

func TestPauseContinueTogglesPlayback(t *testing.T) {
	r, backend, controls := newTestRunner()
	done := make(chan error, 1)
	go func() { done <- r.Run(context.Background()) }()

	controls <- control.PauseContinueAudio
	controls <- control.PauseContinueAudio
	controls <- control.ExitAudio
	<-done
	assert.Equal(t, 2, backend.toggled)
}

func TestMuteToggleCallsBackend(t *testing.T) {
	r, backend, controls := newTestRunner()
	done := make(chan error, 1)
	go func() { done <- r.Run(context.Background()) }()

	controls <- control.MuteToggleAudio
	controls <- control.ExitAudio
	<-done
	assert.Equal(t, 1, backend.muted)
}

func TestRewindCallsBackend(t *testing.T) {
	r, backend, controls := newTestRunner()
	done := make(chan error, 1)
	go func() { done <- r.Run(context.Background()) }()

	controls <- control.RewindAudio
	controls <- control.ExitAudio
	<-done
	assert.Equal(t, 1, backend.rewound)
}

func TestClosedControlsChannelStopsRunner(t *testing.T) {
	r, backend, controls := newTestRunner()
	done := make(chan error, 1)
	go func() { done <- r.Run(context.Background()) }()

	close(controls)
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("runner did not exit after controls channel closed")
	}
	assert.True(t, backend.stopped)
}

func TestContextCancelStopsRunner(t *testing.T) {
	r, backend, _ := newTestRunner()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("runner did not exit after context cancel")
	}
	assert.True(t, backend.stopped)
}
