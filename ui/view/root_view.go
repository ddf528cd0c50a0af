package view

import (
	"image"
	"log/slog"

	"github.com/soocke/pixel-cam-go/ui/model"
	"github.com/soocke/pixel-cam-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the preview window layout: a status row, the frame
// preview and the exit button. It satisfies the presenter view contracts.
type RootView struct {
	logger *slog.Logger

	Session    SessionStats
	Preview    Preview
	StateLabel *TLabelWidget

	closed bool
}

func NewRootView(logger *slog.Logger) *RootView {
	return &RootView{logger: logger}
}

// Build constructs the layout for frames of w x h, scaled down to fit
// maxW x maxH. onExit runs for both the Exit button and the window manager
// close button.
func (rv *RootView) Build(title string, w, h, maxW, maxH int, onExit func()) {
	if rv == nil {
		return
	}
	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", onExit)

	// Row 0: session stats and state
	rv.Session = NewSessionStats(0, 0)
	rv.StateLabel = TLabel(Style(theme.StyleStateLabel), Txt("State: <none>"))
	Grid(rv.StateLabel, Row(1), Column(0), Columnspan(3), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	exitBtn := TButton(Style(theme.StyleDangerButton), Txt("Exit"), Command(onExit))
	Grid(exitBtn, Row(1), Column(3), Sticky("e"), Padx("0.4m"), Pady("0.3m"))

	// Row 2: frames
	rv.Preview = NewPreview(2, w, h, maxW, maxH)
}

// Present shows a drawn canvas.
func (rv *RootView) Present(img image.Image) {
	if rv != nil && rv.Preview != nil && !rv.closed {
		rv.Preview.Show(img)
	}
}

// Close destroys the window, which ends the Tk event loop.
func (rv *RootView) Close() {
	if rv == nil || rv.closed {
		return
	}
	rv.closed = true
	if rv.logger != nil {
		rv.logger.Debug("preview window closing")
	}
	Destroy(App)
}

// SetStateLabel updates the state label text.
func (rv *RootView) SetStateLabel(text string) {
	if rv != nil && rv.StateLabel != nil && !rv.closed {
		rv.StateLabel.Configure(Txt(text))
	}
}

// SetSession updates the session, play time and lag labels.
func (rv *RootView) SetSession(v model.SessionValues) {
	if rv == nil || rv.Session == nil || rv.closed {
		return
	}
	rv.Session.SetSession(v.Session)
	rv.Session.SetPlayed(v.Played)
	rv.Session.SetLag(v.Lag())
}

// SetFrames updates the captured frame counter.
func (rv *RootView) SetFrames(n uint64) {
	if rv != nil && rv.Session != nil && !rv.closed {
		rv.Session.SetFrames(n)
	}
}
