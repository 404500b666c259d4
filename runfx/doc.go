// Package runfx provides non-blocking keyboard input and TTY capability
// detection for interactive terminal programs.
//
// It has two halves:
//
//   - [KeyReader] reads its input (stdin, put in raw mode by the caller)
//     and decodes bytes into [Key] values, including CSI escape sequences
//     for arrow keys and their modifiers. An ESC byte with no further byte
//     already buffered behind it is reported as the Esc key; no timed poll
//     is made.
//   - [DetectTTY] and [TTYInfo] report whether os.Stdout (any writer, with
//     [DetectTTYForOutput]) is backed by a real terminal and what color
//     support it has, so callers can fail fast or fall back when raw-mode
//     features aren't available. The cell size is not reported.
//
// # Usage
//
//	r := runfx.NewKeyReader(os.Stdin)
//	for {
//		key, err := r.ReadKey(ctx)
//		if err != nil {
//			return err
//		}
//		if key.IsCancel() {
//			return nil
//		}
//	}
package runfx
