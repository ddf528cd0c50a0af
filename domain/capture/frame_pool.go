package capture

import (
	"image"
	"sync"
)

// Presentation images are rebuilt for every captured frame, which at 30 fps and
// 1080p means roughly 250 MB/s of short-lived RGBA backing arrays. Replaced
// presentation images are returned to this pool and reused for the next frame
// of the same or smaller size.

var presentationPool sync.Pool // stores *image.RGBA

// acquirePresentation returns a reusable RGBA image sized to size. Pix length
// matches width*height*4 exactly and Stride is width*4.
func acquirePresentation(size Size) *image.RGBA {
	rect := image.Rect(0, 0, size.Width, size.Height)
	w, h := rect.Dx(), rect.Dy()
	if w <= 0 || h <= 0 {
		return &image.RGBA{Rect: rect}
	}
	needed := w * h * 4
	var img *image.RGBA
	if v := presentationPool.Get(); v != nil {
		img = v.(*image.RGBA)
	}
	if img == nil || cap(img.Pix) < needed {
		return &image.RGBA{Pix: make([]byte, needed), Stride: w * 4, Rect: rect}
	}
	img.Stride = w * 4
	img.Rect = rect
	img.Pix = img.Pix[:needed]
	return img
}

// recyclePresentation hands img back to the pool. The caller must not touch
// img afterwards.
func recyclePresentation(img *image.RGBA) {
	if img == nil || img.Pix == nil {
		return
	}
	presentationPool.Put(img)
}
