package capture

import "time"

// Stats summarises how a Source has been polled and what the device delivered.
type Stats struct {
	Captures    uint64        // frames stored, same as Frames()
	Misses      uint64        // device reads that produced no frame
	Throttled   uint64        // polls skipped by frame-rate pacing
	AvgRead     time.Duration // mean duration of a device read
	LastCapture time.Time
}

type counters struct {
	captures  uint64
	misses    uint64
	throttled uint64
	readNanos uint64
	reads     uint64
	last      time.Time
}

func (c *counters) snapshot() Stats {
	var avg time.Duration
	if c.reads > 0 {
		avg = time.Duration(c.readNanos / c.reads)
	}
	return Stats{
		Captures:    c.captures,
		Misses:      c.misses,
		Throttled:   c.throttled,
		AvgRead:     avg,
		LastCapture: c.last,
	}
}
