package model

import (
	"sync/atomic"
)

// PlaybackModel tracks whether the preview is playing, how many ticks ended
// with a presented frame versus nothing new to show, and the source's frame
// count as last seen on the Tk thread. The zero value is stopped and usable.
// Everything is atomic so the debug loggers may read it off the Tk thread.
type PlaybackModel struct {
	playing   atomic.Bool
	presented atomic.Uint64
	skipped   atomic.Uint64
	frames    atomic.Uint64
}

// Playing reports whether the preview is currently playing.
func (m *PlaybackModel) Playing() bool {
	if m == nil {
		return false
	}
	return m.playing.Load()
}

// SetPlaying stores the playing flag.
func (m *PlaybackModel) SetPlaying(b bool) {
	if m == nil {
		return
	}
	m.playing.Store(b)
}

// Presented records a tick that pushed a frame to the view.
func (m *PlaybackModel) Presented() {
	if m != nil {
		m.presented.Add(1)
	}
}

// Skipped records a tick that had nothing new to draw.
func (m *PlaybackModel) Skipped() {
	if m != nil {
		m.skipped.Add(1)
	}
}

// Counts returns presented and skipped tick counts.
func (m *PlaybackModel) Counts() (presented, skipped uint64) {
	if m == nil {
		return 0, 0
	}
	return m.presented.Load(), m.skipped.Load()
}

// SetFrames publishes the source's captured frame count.
func (m *PlaybackModel) SetFrames(n uint64) {
	if m != nil {
		m.frames.Store(n)
	}
}

// Frames returns the last published frame count.
func (m *PlaybackModel) Frames() uint64 {
	if m == nil {
		return 0
	}
	return m.frames.Load()
}
