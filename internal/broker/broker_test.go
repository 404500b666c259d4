package broker

import (
	"context"
	"testing"
	"time"

	"github.com/garaekz/glyphcast/internal/control"
	"github.com/garaekz/glyphcast/logx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBroker() (*Broker, chan control.MediaControl, chan control.PipelineControl, chan control.AudioControl) {
	in := make(chan control.MediaControl, 8)
	pipeline := make(chan control.PipelineControl, 8)
	audio := make(chan control.AudioControl, 8)
	b := New(in, pipeline, audio, logx.New(logx.DefaultOptions()))
	return b, in, pipeline, audio
}

func runBroker(t *testing.T, b *Broker) (context.CancelFunc, chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- b.Run(ctx) }()
	return cancel, done
}

func TestPauseContinueFansOutToBoth(t *testing.T) {
	b, in, pipeline, audio := newTestBroker()
	cancel, done := runBroker(t, b)
	defer cancel()

	in <- control.PauseContinueMedia
	select {
	case cmd := <-pipeline:
		assert.Equal(t, control.PipelinePauseContinue, cmd.Kind)
	case <-time.After(time.Second):
		t.Fatal("expected a pipeline PauseContinue")
	}
	select {
	case cmd := <-audio:
		assert.Equal(t, control.AudioPauseContinue, cmd.Kind)
	case <-time.After(time.Second):
		t.Fatal("expected an audio PauseContinue")
	}
	in <- control.ExitMedia
	<-done
}

func TestResizeOnlyReachesPipeline(t *testing.T) {
	b, in, pipeline, audio := newTestBroker()
	cancel, done := runBroker(t, b)
	defer cancel()

	in <- control.ResizeMedia(80, 24)
	select {
	case cmd := <-pipeline:
		assert.Equal(t, control.PipelineResize, cmd.Kind)
		assert.Equal(t, 80, cmd.Width)
		assert.Equal(t, 24, cmd.Height)
	case <-time.After(time.Second):
		t.Fatal("expected a pipeline Resize")
	}
	select {
	case cmd := <-audio:
		t.Fatalf("unexpected audio command for Resize: %+v", cmd)
	case <-time.After(50 * time.Millisecond):
	}
	in <- control.ExitMedia
	<-done
}

func TestMuteUnmuteOnlyReachesAudio(t *testing.T) {
	b, in, pipeline, audio := newTestBroker()
	cancel, done := runBroker(t, b)
	defer cancel()

	in <- control.MuteUnmuteMedia
	select {
	case cmd := <-audio:
		assert.Equal(t, control.AudioMuteToggle, cmd.Kind)
	case <-time.After(time.Second):
		t.Fatal("expected an audio MuteToggle")
	}
	select {
	case cmd := <-pipeline:
		t.Fatalf("unexpected pipeline command for MuteUnmute: %+v", cmd)
	case <-time.After(50 * time.Millisecond):
	}
	in <- control.ExitMedia
	<-done
}

func TestExitForwardsToBothAndStops(t *testing.T) {
	b, in, pipeline, audio := newTestBroker()
	cancel, done := runBroker(t, b)
	defer cancel()

	in <- control.ExitMedia
	select {
	case cmd := <-pipeline:
		assert.Equal(t, control.PipelineExit, cmd.Kind)
	case <-time.After(time.Second):
		t.Fatal("expected a pipeline Exit")
	}
	select {
	case cmd := <-audio:
		assert.Equal(t, control.AudioExit, cmd.Kind)
	case <-time.After(time.Second):
		t.Fatal("expected an audio Exit")
	}
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("broker did not stop after Exit")
	}
}

func TestNilAudioChannelDropsAudioBoundCommandsSilently(t *testing.T) {
	in := make(chan control.MediaControl, 8)
	pipeline := make(chan control.PipelineControl, 8)
	b := New(in, pipeline, nil, logx.New(logx.DefaultOptions()))
	cancel, done := runBroker(t, b)
	defer cancel()

	in <- control.MuteUnmuteMedia
	in <- control.ResizeMedia(10, 5)
	select {
	case cmd := <-pipeline:
		assert.Equal(t, control.PipelineResize, cmd.Kind)
	case <-time.After(time.Second):
		t.Fatal("expected pipeline Resize despite nil audio channel")
	}
	in <- control.ExitMedia
	<-done
}
