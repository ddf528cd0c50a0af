package model

import (
	"time"
)

// SessionValues is a snapshot of the preview session clocks.
type SessionValues struct {
	// Session is the wall-clock time since playback started.
	Session time.Duration
	// Played is the capture play time, frames captured over target fps. It
	// falls behind Session whenever the device delivers below the target rate.
	Played time.Duration
}

// Lag is how far play time trails wall-clock time, never negative.
func (v SessionValues) Lag() time.Duration { return max(v.Session-v.Played, 0) }

// SessionModel tracks the wall-clock session next to the source's play time.
// It is decoupled from the UI; presenters should poll Values() and update views.
// The zero value is ready to use.
type SessionModel struct {
	active  bool
	started time.Time
	values  SessionValues
}

// NewSessionModel returns a pointer to a ready-to-use SessionModel.
func NewSessionModel() *SessionModel { return &SessionModel{} }

// OnTick updates the model from the playing flag, the current timestamp and
// the source's elapsed play time in seconds. Once playback stops the last
// values are kept.
func (m *SessionModel) OnTick(playing bool, now time.Time, elapsed float64) {
	if m == nil {
		return
	}
	if !playing {
		m.active = false
		return
	}
	if !m.active {
		m.active = true
		m.started = now
	}
	m.values = SessionValues{
		Session: now.Sub(m.started),
		Played:  time.Duration(elapsed * float64(time.Second)),
	}
}

// Values returns the latest snapshot.
func (m *SessionModel) Values() SessionValues {
	if m == nil {
		return SessionValues{}
	}
	return m.values
}
