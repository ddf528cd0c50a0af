package presenter

import "time"

// Loop aggregates feature presenters and drives periodic updates.
//
// It ticks the sub-presenters and invokes a scheduler callback while the
// preview is still running. The zero value is usable (methods are nil-safe).
type Loop struct {
	Preview  *PreviewPresenter
	Session  *SessionPresenter
	State    *StatePresenter
	Schedule func()
	now      func() time.Time
}

func NewLoop(preview *PreviewPresenter, sess *SessionPresenter, state *StatePresenter, schedule func()) *Loop {
	return &Loop{Preview: preview, Session: sess, State: state, Schedule: schedule, now: time.Now}
}

// Tick runs one update and reports whether another was scheduled.
func (l *Loop) Tick() bool {
	if l == nil {
		return false
	}
	now := time.Now()
	if l.now != nil {
		now = l.now()
	}
	running := true
	if l.Preview != nil {
		running = l.Preview.Tick()
	}
	if l.Session != nil {
		l.Session.Tick(now)
	}
	if l.State != nil {
		l.State.Tick()
	}
	if !running || l.Schedule == nil {
		return false
	}
	l.Schedule()
	return true
}
