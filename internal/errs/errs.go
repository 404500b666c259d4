// Package errs implements the error taxonomy shared by every glyphcast
// worker: a closed set of kinds, each carrying the component that raised it
// and the underlying cause, so callers can branch with errors.As/errors.Is
// instead of string matching.
package errs

import (
	"errors"
	"fmt"
)

// Kind classifies the origin and expected handling of an error.
type Kind int

const (
	// Application covers CLI/config/startup failures: bad flags, a
	// media source that cannot be opened, a missing subprocess binary.
	Application Kind = iota
	// Decode covers failures turning raw bytes into frames: a corrupt
	// image, an unsupported container, a broken ffmpeg pipe.
	Decode
	// Frame covers a single bad frame during playback; the frame is
	// dropped and playback continues.
	Frame
	// Terminal covers TTY/raw-mode/resize failures.
	Terminal
	// Audio covers audio backend failures; playback continues muted.
	Audio
	// Channel covers broken worker plumbing: a channel closed
	// unexpectedly, a control message sent after shutdown.
	Channel
)

func (k Kind) String() string {
	switch k {
	case Application:
		return "application"
	case Decode:
		return "decode"
	case Frame:
		return "frame"
	case Terminal:
		return "terminal"
	case Audio:
		return "audio"
	case Channel:
		return "channel"
	default:
		return "unknown"
	}
}

// Error is the concrete error type every worker returns or logs.
type Error struct {
	Kind      Kind
	Component string
	Cause     error
}

// New builds an Error with no wrapped cause.
func New(kind Kind, component, msg string) *Error {
	return &Error{Kind: kind, Component: component, Cause: errors.New(msg)}
}

// Wrap builds an Error around an existing cause. Returns nil if cause is nil.
func Wrap(kind Kind, component string, cause error) *Error {
	if cause == nil {
		return nil
	}
	return &Error{Kind: kind, Component: component, Cause: cause}
}

func (e *Error) Error() string {
	if e.Component == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Cause)
	}
	return fmt.Sprintf("%s[%s]: %v", e.Kind, e.Component, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is the sentinel for e's Kind, so callers can
// write errors.Is(err, errs.IsDecode) style checks with the sentinels below.
func (e *Error) Is(target error) bool {
	k, ok := target.(kindSentinel)
	return ok && e.Kind == Kind(k)
}

type kindSentinel Kind

// Sentinel values usable with errors.Is(err, errs.IsDecode), etc.
var (
	IsApplication error = kindSentinel(Application)
	IsDecode      error = kindSentinel(Decode)
	IsFrame       error = kindSentinel(Frame)
	IsTerminal    error = kindSentinel(Terminal)
	IsAudio       error = kindSentinel(Audio)
	IsChannel     error = kindSentinel(Channel)
)

func (k kindSentinel) Error() string { return Kind(k).String() }

// Recoverable reports whether playback should continue after this error
// (Frame and Audio kinds) or must terminate the program.
func Recoverable(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == Frame || e.Kind == Audio
}
