package debug

import (
	"context"
	"log/slog"
	"runtime"
	"time"
)

// FrameCounter reports frames captured so far. It is read from the logger
// goroutine and must be safe for concurrent use; *model.PlaybackModel is.
type FrameCounter interface{ Frames() uint64 }

// StartMemLogger logs Go heap stats, the process working set where the
// platform exposes it, and the capture frame count every interval until ctx
// is done. RSS query failures are logged once and suppressed.
func StartMemLogger(ctx context.Context, interval time.Duration, frames FrameCounter, logger *slog.Logger) {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		var rssErrLogged bool
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
			var ms runtime.MemStats
			runtime.ReadMemStats(&ms)
			rss, err := processRSS()
			if err != nil && !rssErrLogged {
				logger.Warn("memlog: rss unavailable", slog.String("err", err.Error()))
				rssErrLogged = true
			}
			attrs := []any{
				slog.Int("goroutines", runtime.NumGoroutine()),
				slog.Uint64("heap_alloc", ms.HeapAlloc),
				slog.Uint64("heap_inuse", ms.HeapInuse),
				slog.Uint64("heap_idle", ms.HeapIdle),
				slog.Uint64("heap_sys", ms.HeapSys),
				slog.Uint64("next_gc", ms.NextGC),
				slog.Uint64("rss", rss),
				slog.Uint64("num_gc", uint64(ms.NumGC)),
			}
			if frames != nil {
				attrs = append(attrs, slog.Uint64("frames", frames.Frames()))
			}
			logger.Info("memstats", attrs...)
		}
	}()
}
