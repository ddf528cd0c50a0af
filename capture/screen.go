package capture

import (
	"fmt"
	"image"

	"github.com/vova616/screenshot"

	dcap "github.com/soocke/pixel-cam-go/domain/capture"
)

// Screen captures the primary display as if it were a camera. Capture sizes
// are honoured by grabbing a region anchored at the top-left corner, clamped
// to the screen.
type Screen struct {
	bounds image.Rectangle
	sel    image.Rectangle
}

// OpenScreen opens the primary display. Only id 0 exists.
func OpenScreen(id int) (dcap.Device, error) {
	if id != 0 {
		return nil, fmt.Errorf("capture: screen %d not available", id)
	}
	r, err := screenshot.ScreenRect()
	if err != nil {
		return nil, fmt.Errorf("capture: screen bounds: %w", err)
	}
	if r.Empty() {
		return nil, fmt.Errorf("capture: empty screen %v", r)
	}
	return &Screen{bounds: r, sel: r}, nil
}

func (s *Screen) Read() (dcap.Frame, bool) {
	img, err := GrabSelection(s.sel)
	if err != nil || img == nil {
		return dcap.Frame{}, false
	}
	return dcap.FrameFromImage(img), true
}

func (s *Screen) Size() dcap.Size { return dcap.Size{Width: s.sel.Dx(), Height: s.sel.Dy()} }

func (s *Screen) SetSize(size dcap.Size) dcap.Size {
	s.sel = clampSelection(s.bounds, size)
	return s.Size()
}

func (s *Screen) Release() error { return nil }

// clampSelection anchors a size-d region at bounds.Min and clips it to bounds.
// Non-positive dimensions select the full extent.
func clampSelection(bounds image.Rectangle, size dcap.Size) image.Rectangle {
	w, h := size.Width, size.Height
	if w <= 0 || w > bounds.Dx() {
		w = bounds.Dx()
	}
	if h <= 0 || h > bounds.Dy() {
		h = bounds.Dy()
	}
	return image.Rect(bounds.Min.X, bounds.Min.Y, bounds.Min.X+w, bounds.Min.Y+h)
}

// GrabSelection captures the given screen region.
func GrabSelection(selectionArea image.Rectangle) (*image.RGBA, error) {
	if selectionArea.Empty() {
		return nil, fmt.Errorf("capture: empty selection")
	}
	return screenshot.CaptureRect(selectionArea)
}
