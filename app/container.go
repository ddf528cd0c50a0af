package app

import (
	"fmt"
	"log/slog"

	"github.com/soocke/pixel-cam-go/capture"
	"github.com/soocke/pixel-cam-go/config"
	dcap "github.com/soocke/pixel-cam-go/domain/capture"
	"github.com/soocke/pixel-cam-go/domain/postprocess"
	"github.com/soocke/pixel-cam-go/ui/model"
	"github.com/soocke/pixel-cam-go/ui/presenter"
	"github.com/soocke/pixel-cam-go/ui/view"
)

// OpenSource resolves the configured backend, resizer and post-processing and
// opens a capture source. A positive OutputHeight is applied with
// ChangeResolution so the width follows the capture aspect ratio.
func OpenSource(cfg *config.Config, logger *slog.Logger) (*dcap.Source, error) {
	open, err := capture.OpenerFor(cfg.Backend)
	if err != nil {
		return nil, err
	}
	resize, err := capture.ResizerFor(cfg.Resizer)
	if err != nil {
		return nil, err
	}
	post, err := postprocess.Lookup(cfg.PostProcess)
	if err != nil {
		return nil, err
	}
	src, err := dcap.NewSource(open,
		dcap.WithDeviceID(cfg.DeviceID),
		dcap.WithFPS(cfg.FPS),
		dcap.WithInterpolation(cfg.Interp),
		dcap.WithCaptureSize(cfg.CaptureSize()),
		dcap.WithPostProcess(post),
		dcap.WithResizer(resize),
		dcap.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("open %s source: %w", cfg.Backend, err)
	}
	if cfg.OutputHeight > 0 {
		src.ChangeResolution(cfg.OutputHeight)
	}
	return src, nil
}

// AppContainer assembles models, presenters and the root view around a source.
type AppContainer struct {
	Logger   *slog.Logger
	Source   *dcap.Source
	Playback *model.PlaybackModel
	Session  *model.SessionModel
	RootView *view.RootView

	// Presenters
	PreviewPresenter *presenter.PreviewPresenter
	SessionPresenter *presenter.SessionPresenter
	StatePresenter   *presenter.StatePresenter
	Loop             *presenter.Loop
}

// BuildContainer constructs all components. It makes no Tk calls; the view is
// built later on the Tk thread and the loop's scheduler is set by the caller.
// A nil playback model is replaced with a fresh one.
func BuildContainer(src *dcap.Source, playback *model.PlaybackModel, logger *slog.Logger) *AppContainer {
	if playback == nil {
		playback = &model.PlaybackModel{}
	}
	c := &AppContainer{Logger: logger, Source: src, Playback: playback}
	c.Session = model.NewSessionModel()
	c.RootView = view.NewRootView(logger)
	c.PreviewPresenter = presenter.NewPreviewPresenter(c.Playback, src, c.RootView)
	c.SessionPresenter = presenter.NewSessionPresenter(c.Session, c.Playback, src, c.RootView)
	c.StatePresenter = presenter.NewStatePresenter(src, c.RootView)
	c.Loop = presenter.NewLoop(c.PreviewPresenter, c.SessionPresenter, c.StatePresenter, nil)
	return c
}
