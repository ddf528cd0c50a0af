package presenter

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/soocke/pixel-cam-go/domain/capture"
)

// FrameSource narrows what the presenter needs from capture.Source.
type FrameSource interface {
	Draw(dst draw.Image, at image.Point, force bool) bool
	Play()
	Stop()
	Active() bool
	CurrentSize() capture.Size
}

// PlaybackModel records playing state and per-tick outcomes.
type PlaybackModel interface {
	Playing() bool
	SetPlaying(bool)
	Presented()
	Skipped()
}

// PreviewView shows frames and owns the preview window.
type PreviewView interface {
	Present(img image.Image)
	Close()
}

// PreviewPresenter pulls frames from the source onto an off-screen canvas and
// hands the canvas to the view whenever something new was drawn.
type PreviewPresenter struct {
	model  PlaybackModel
	source FrameSource
	view   PreviewView

	canvas *image.RGBA
	force  bool // redraw the held frame onto a freshly allocated canvas
	closed bool
}

func NewPreviewPresenter(model PlaybackModel, source FrameSource, view PreviewView) *PreviewPresenter {
	return &PreviewPresenter{model: model, source: source, view: view}
}

func (p *PreviewPresenter) ready() bool {
	return p != nil && p.model != nil && p.source != nil && p.view != nil
}

// Start begins playback. Idempotent.
func (p *PreviewPresenter) Start() {
	if !p.ready() || p.model.Playing() {
		return
	}
	p.source.Play()
	p.model.SetPlaying(true)
}

// Stop ends playback. The window is closed on the next Tick. Idempotent.
func (p *PreviewPresenter) Stop() {
	if !p.ready() || !p.model.Playing() {
		return
	}
	p.source.Stop()
	p.model.SetPlaying(false)
}

// Tick draws the source onto the canvas and presents it when a frame was
// drawn. Once the source is no longer active the view is closed and Tick
// reports false so the caller stops scheduling.
func (p *PreviewPresenter) Tick() bool {
	if !p.ready() {
		return false
	}
	if !p.source.Active() {
		p.model.SetPlaying(false)
		if !p.closed {
			p.closed = true
			p.view.Close()
		}
		return false
	}
	size := p.source.CurrentSize()
	if p.canvas == nil || p.canvas.Rect.Dx() != size.Width || p.canvas.Rect.Dy() != size.Height {
		p.canvas = image.NewRGBA(image.Rect(0, 0, size.Width, size.Height))
		p.force = true
	}
	if !p.source.Draw(p.canvas, image.Point{}, p.force) {
		p.model.Skipped()
		return true
	}
	p.force = false
	p.model.Presented()
	p.view.Present(p.canvas)
	return true
}

// Canvas returns the surface frames are drawn onto, nil before the first Tick.
func (p *PreviewPresenter) Canvas() *image.RGBA {
	if p == nil {
		return nil
	}
	return p.canvas
}
