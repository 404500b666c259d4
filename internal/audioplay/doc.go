// Package audioplay drives the audio backend: decode an audio track via an
// ffmpeg subprocess piping raw PCM, sink it through oto, and translate
// AudioControl commands to backend calls one-to-one.
//
// Audio sync skew: no active resync is implemented, since precise
// audio/video lip-sync beyond the one-shot start barrier is out of scope.
// Worst case skew is one pipeline frame period plus goroutine-scheduling
// jitter across the barrier release, expected well under 50ms on a loaded
// machine. If it's ever observed to exceed that, a periodic resync could
// replay from the backend's reported position, but that isn't built here.
package audioplay
