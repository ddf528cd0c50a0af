package capture

import "image"

// frameState pairs the current frame buffer with the presentation image built
// from it. Both only change together, through set and clear.
type frameState struct {
	buf     Frame
	present *image.RGBA
}

func (s *frameState) set(f Frame) {
	img := acquirePresentation(f.Size())
	fillRGBA(img, f)
	old := s.present
	s.buf, s.present = f, img
	recyclePresentation(old)
}

func (s *frameState) clear() {
	old := s.present
	s.buf, s.present = Frame{}, nil
	recyclePresentation(old)
}

func (s *frameState) ok() bool { return s.present != nil }
