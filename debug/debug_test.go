package debug

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/soocke/pixel-cam-go/ui/model"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type frames uint64

func (f frames) Frames() uint64 { return uint64(f) }

func TestLoggersEmitUntilCancelled(t *testing.T) {
	var out syncBuffer
	logger := slog.New(slog.NewJSONHandler(&out, nil))
	ctx, cancel := context.WithCancel(context.Background())
	StartGoroutineLogger(ctx, 5*time.Millisecond, logger)
	StartMemLogger(ctx, 5*time.Millisecond, frames(42), logger)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		s := out.String()
		if strings.Contains(s, `"msg":"goroutine-stacks"`) && strings.Contains(s, `"frames":42`) {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	cancel()
	s := out.String()
	if !strings.Contains(s, `"msg":"goroutine-stacks"`) || !strings.Contains(s, `"msg":"memstats"`) {
		t.Fatalf("missing log lines:\n%s", s)
	}
	if !strings.Contains(s, `"frames":42`) {
		t.Fatalf("memstats without frame count:\n%s", s)
	}
}

// The frame count is published by the UI thread while the logger reads it.
// Run with -race.
func TestMemLoggerReadsPublishedFramesConcurrently(t *testing.T) {
	var out syncBuffer
	logger := slog.New(slog.NewJSONHandler(&out, nil))
	var playback model.PlaybackModel
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	StartMemLogger(ctx, time.Millisecond, &playback, logger)

	var stop atomic.Bool
	done := make(chan struct{})
	go func() {
		defer close(done)
		for n := uint64(1); !stop.Load(); n++ {
			playback.SetFrames(n)
		}
	}()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) && strings.Count(out.String(), `"msg":"memstats"`) < 3 {
		time.Sleep(time.Millisecond)
	}
	stop.Store(true)
	<-done
	cancel()
	if strings.Count(out.String(), `"msg":"memstats"`) < 3 {
		t.Fatalf("too few memstats lines:\n%s", out.String())
	}
}
