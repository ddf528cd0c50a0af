package capture

import "time"

// pacer throttles device reads to at most one per interval. The zero last tick
// makes the very first poll always eligible.
type pacer struct {
	last     time.Time
	interval time.Duration
}

func newPacer(fps int) pacer { return pacer{interval: frameInterval(fps)} }

func frameInterval(fps int) time.Duration { return time.Second / time.Duration(fps) }

// tick reports whether a read may happen at now and, if so, records now as the
// last tick.
func (p *pacer) tick(now time.Time) bool {
	if now.Sub(p.last) < p.interval {
		return false
	}
	p.last = now
	return true
}
