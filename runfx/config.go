package runfx

import (
	"io"
	"os"
	"time"

	"github.com/garaekz/glyphcast/internal/share"
)

// Config holds settings for interactive terminal use. KeyReader does not
// read it: NewKeyReader takes only an input reader.
type Config struct {
	// PollInterval is a polling period for callers; nothing in this
	// package reads it.
	PollInterval time.Duration
	Output       io.Writer
	TestMode     bool
}

// DefaultConfig returns sensible defaults for interactive use.
func DefaultConfig() Config {
	return Config{
		PollInterval: 10 * time.Millisecond,
		Output:       os.Stdout,
		TestMode:     false,
	}
}

// --- FUNCTIONAL OPTIONS ---

// WithPollInterval sets PollInterval.
func WithPollInterval(interval time.Duration) share.Option[Config] {
	return func(cfg *Config) {
		cfg.PollInterval = interval
	}
}

// WithOutput sets the output writer.
func WithOutput(output io.Writer) share.Option[Config] {
	return func(cfg *Config) {
		cfg.Output = output
	}
}

// WithTestMode enables test mode, bypassing TTY-only code paths.
func WithTestMode() share.Option[Config] {
	return func(cfg *Config) {
		cfg.TestMode = true
	}
}
