package view

import (
	"fmt"
	"time"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// SessionStats shows session wall-clock time, play time, how far play time
// lags behind and captured frames.
type SessionStats interface {
	SetSession(d time.Duration)
	SetPlayed(d time.Duration)
	SetLag(d time.Duration)
	SetFrames(n uint64)
}

type sessionStats struct {
	sessionLbl *LabelWidget
	playedLbl  *LabelWidget
	lagLbl     *LabelWidget
	framesLbl  *LabelWidget
}

// NewSessionStats creates the four labels at (row, startCol..startCol+3).
func NewSessionStats(row, startCol int) SessionStats {
	s := &sessionStats{
		sessionLbl: Label(Width(16)),
		playedLbl:  Label(Width(16)),
		lagLbl:     Label(Width(16)),
		framesLbl:  Label(Width(16)),
	}
	for i, l := range []*LabelWidget{s.sessionLbl, s.playedLbl, s.lagLbl, s.framesLbl} {
		Grid(l, Row(row), Column(startCol+i), Sticky("w"), Padx("0.2m"))
	}
	s.SetSession(0)
	s.SetPlayed(0)
	s.SetLag(0)
	s.SetFrames(0)
	return s
}

func (s *sessionStats) SetSession(d time.Duration) {
	if s == nil || s.sessionLbl == nil {
		return
	}
	s.sessionLbl.Configure(Txt("Session: " + clock(d)))
}

func (s *sessionStats) SetPlayed(d time.Duration) {
	if s == nil || s.playedLbl == nil {
		return
	}
	s.playedLbl.Configure(Txt("Played: " + clock(d)))
}

func (s *sessionStats) SetLag(d time.Duration) {
	if s == nil || s.lagLbl == nil {
		return
	}
	s.lagLbl.Configure(Txt("Lag: " + clock(d)))
}

func (s *sessionStats) SetFrames(n uint64) {
	if s == nil || s.framesLbl == nil {
		return
	}
	s.framesLbl.Configure(Txt(fmt.Sprintf("Frames: %d", n)))
}

// clock formats d as mm:ss, growing to h:mm:ss past the hour.
func clock(d time.Duration) string {
	seconds := int(max(d, 0).Seconds())
	h, m, s := seconds/3600, seconds/60%60, seconds%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
