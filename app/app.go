package app

import (
	"log/slog"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	dcap "github.com/soocke/pixel-cam-go/domain/capture"
	"github.com/soocke/pixel-cam-go/ui/model"
	"github.com/soocke/pixel-cam-go/ui/theme"
)

// Options configures Preview.
type Options struct {
	Title string
	// MaxFPS caps how often the window polls the source.
	MaxFPS int
	// MaxWidth and MaxHeight bound the displayed frame; larger frames are
	// scaled down for display only.
	MaxWidth  int
	MaxHeight int
	Dark      bool
	// Playback receives playing state and counters. Readers on other
	// goroutines, such as the debug loggers, should read it instead of the
	// source. Nil means a private model.
	Playback *model.PlaybackModel
	Logger   *slog.Logger
}

const (
	defaultMaxFPS    = 60
	defaultMaxWidth  = 1920
	defaultMaxHeight = 1080
)

func (o *Options) defaults() {
	if o.Title == "" {
		o.Title = "Pixel Cam"
	}
	if o.MaxFPS <= 0 {
		o.MaxFPS = defaultMaxFPS
	}
	if o.MaxWidth <= 0 {
		o.MaxWidth = defaultMaxWidth
	}
	if o.MaxHeight <= 0 {
		o.MaxHeight = defaultMaxHeight
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
}

// Preview opens a window sized to the source's output and plays the source in
// it until the window is closed or the source stops. The source is closed
// before Preview returns. It must run on the main goroutine.
func Preview(src *dcap.Source, opts Options) error {
	opts.defaults()
	logger := opts.Logger
	c := BuildContainer(src, opts.Playback, logger)

	interval := time.Second / time.Duration(opts.MaxFPS)
	// The loop stops rescheduling once the window is destroyed, so no timer
	// is left pending when App.Wait returns.
	c.Loop.Schedule = func() {
		TclAfter(interval, func() { c.Loop.Tick() })
	}

	theme.SetDark(opts.Dark)
	size := src.CurrentSize()
	c.RootView.Build(opts.Title, size.Width, size.Height, opts.MaxWidth, opts.MaxHeight, c.PreviewPresenter.Stop)

	logger.Info("preview.start", "size", size.String(), "max_fps", opts.MaxFPS, "source", src.String())
	c.PreviewPresenter.Start()
	c.Loop.Schedule()
	App.Wait()

	presented, skipped := c.Playback.Counts()
	logger.Info("preview.done",
		"frames", src.Frames(),
		"presented", presented,
		"skipped", skipped,
		"elapsed", src.Elapsed(),
	)
	return src.Close()
}
