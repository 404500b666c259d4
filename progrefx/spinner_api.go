package progrefx

import (
    "context"
    "fmt"
    "io"
    "time"

    "github.com/garaekz/glyphcast/internal/share"
    "github.com/garaekz/glyphcast/runfx"
)

// SpinnerConfig defines options for an animated spinner, used to show
// progress on indeterminate-length operations (subprocess probes,
// downloads) where a percentage isn't known up front.
type SpinnerConfig struct {
    Frames    []string
    Label     string
    Theme     ProgressTheme
    Writer    io.Writer
    Interval  time.Duration
    DetectTTY func() runfx.TTYInfo
}

// DefaultSpinnerConfig returns sensible defaults: a braille dot cycle,
// the Material theme, and a 100ms tick interval.
func DefaultSpinnerConfig() SpinnerConfig {
    return SpinnerConfig{
        Frames:    []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
        Label:     "Working",
        Theme:     MaterialTheme,
        Interval:  100 * time.Millisecond,
        DetectTTY: runfx.DetectTTY,
    }
}

// StartSpinner creates a Spinner from at most one argument: a SpinnerConfig
// or *SpinnerConfig, which replaces DefaultSpinnerConfig as a whole (a config
// with no Frames gets the default frames). Any other argument, including a
// functional option, panics.
func StartSpinner(opts ...any) *Spinner {
    cfg := share.OverloadWithOptions[SpinnerConfig](opts, DefaultSpinnerConfig())
    return newSpinner(cfg)
}

// Run ticks the spinner and writes it to w every interval (100ms when
// interval is not positive) until ctx is canceled, then clears the line on
// a TTY. The Writer and Interval fields of SpinnerConfig are not consulted.
// Intended to be run in its own goroutine alongside a blocking subprocess
// call.
func (s *Spinner) Run(ctx context.Context, w io.Writer, interval time.Duration) {
    if interval <= 0 {
        interval = 100 * time.Millisecond
    }
    ticker := time.NewTicker(interval)
    defer ticker.Stop()

    for {
        select {
        case <-ctx.Done():
            if s.isTTY {
                fmt.Fprint(w, "\r\033[2K")
            }
            return
        case <-ticker.C:
            s.Tick()
            fmt.Fprint(w, s.Render())
        }
    }
}
