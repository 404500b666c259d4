package runfx

import "errors"

// ErrNotTTY is returned when a caller requires TTY capabilities (raw mode,
// cell-size probing) on an output that isn't backed by a real terminal.
var ErrNotTTY = errors.New("runfx: not a TTY environment")
