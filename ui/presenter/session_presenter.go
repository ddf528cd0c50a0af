package presenter

import (
	"time"

	"github.com/soocke/pixel-cam-go/ui/model"
)

// PlayingModel reports whether the preview is playing and receives the frame
// count for readers outside the Tk thread.
type PlayingModel interface {
	Playing() bool
	SetFrames(n uint64)
}

// PlayClock reports the source's play time in seconds.
type PlayClock interface{ Elapsed() float64 }

// SessionView displays the session clocks and frame counter.
type SessionView interface {
	SetSession(v model.SessionValues)
	SetFrames(n uint64)
}

// FrameCounter reports how many frames the source has captured.
type FrameCounter interface{ Frames() uint64 }

// SessionSource is what the session presenter reads from capture.Source.
type SessionSource interface {
	PlayClock
	FrameCounter
}

// SessionPresenter formats session values from the model to the view.
type SessionPresenter struct {
	sess   *model.SessionModel
	play   PlayingModel
	source SessionSource
	view   SessionView
}

// NewSessionPresenter returns a new SessionPresenter.
func NewSessionPresenter(sess *model.SessionModel, play PlayingModel, source SessionSource, view SessionView) *SessionPresenter {
	return &SessionPresenter{sess: sess, play: play, source: source, view: view}
}

// Tick advances the session model and pushes values to the view.
func (p *SessionPresenter) Tick(now time.Time) {
	if p == nil || p.sess == nil || p.play == nil || p.source == nil || p.view == nil {
		return
	}
	p.sess.OnTick(p.play.Playing(), now, p.source.Elapsed())
	p.view.SetSession(p.sess.Values())
	frames := p.source.Frames()
	p.play.SetFrames(frames)
	p.view.SetFrames(frames)
}
