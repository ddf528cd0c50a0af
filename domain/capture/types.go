package capture

import "fmt"

// Size is a frame resolution in pixels. Both dimensions are non-negative.
type Size struct {
	Width  int
	Height int
}

// Native is the capture size sentinel meaning "use whatever the device reports".
var Native = Size{}

func (s Size) String() string { return fmt.Sprintf("%dx%d", s.Width, s.Height) }

// Empty reports whether either dimension is zero.
func (s Size) Empty() bool { return s.Width <= 0 || s.Height <= 0 }

// Frame is a tightly packed 3-channel BGR pixel buffer (stride Width*3).
// The zero value is an empty frame.
type Frame struct {
	Pix    []byte
	Width  int
	Height int
}

// NewFrame allocates a black frame of the given size.
func NewFrame(size Size) Frame {
	w, h := max(size.Width, 0), max(size.Height, 0)
	return Frame{Pix: make([]byte, w*h*3), Width: w, Height: h}
}

// Size returns the frame dimensions.
func (f Frame) Size() Size { return Size{Width: f.Width, Height: f.Height} }

// Empty reports whether the frame carries no pixels.
func (f Frame) Empty() bool { return f.Width <= 0 || f.Height <= 0 || len(f.Pix) == 0 }

// Stride is the number of bytes per row.
func (f Frame) Stride() int { return f.Width * 3 }

// Clone returns a deep copy of f.
func (f Frame) Clone() Frame {
	pix := make([]byte, len(f.Pix))
	copy(pix, f.Pix)
	return Frame{Pix: pix, Width: f.Width, Height: f.Height}
}

// Device is an opened capture device. It is exclusively owned by one Source.
type Device interface {
	// Read returns the next raw frame in BGR order. ok is false when no frame
	// is available right now.
	Read() (frame Frame, ok bool)
	// Size reports the currently negotiated capture resolution.
	Size() Size
	// SetSize asks the device for a capture resolution and returns the one it
	// actually granted.
	SetSize(size Size) Size
	// Release frees the device. The Device must not be used afterwards.
	Release() error
}

// Opener opens a capture device by numeric id.
type Opener func(id int) (Device, error)

// PostProcessFunc transforms a captured frame after resizing. A nil func is the identity.
type PostProcessFunc func(Frame) Frame

// ResizeFunc scales a frame to size using the given interpolation.
type ResizeFunc func(f Frame, size Size, interp Interpolation) Frame

// State is the activity state of a Source.
type State int

const (
	StateActive State = iota
	StateStopped
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateStopped:
		return "stopped"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}
