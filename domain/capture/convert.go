package capture

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// fillRGBA writes the BGR frame f into dst, which must have the same size.
func fillRGBA(dst *image.RGBA, f Frame) {
	w, h := f.Width, f.Height
	for y := 0; y < h; y++ {
		src := f.Pix[y*f.Stride() : y*f.Stride()+w*3]
		row := dst.Pix[y*dst.Stride : y*dst.Stride+w*4]
		for x, j := 0, 0; x < w*3; x, j = x+3, j+4 {
			row[j+0] = src[x+2]
			row[j+1] = src[x+1]
			row[j+2] = src[x+0]
			row[j+3] = 0xFF
		}
	}
}

// ToImage converts f into a new opaque NRGBA image.
func (f Frame) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.Width, f.Height))
	if f.Empty() {
		return img
	}
	rgba := &image.RGBA{Pix: img.Pix, Stride: img.Stride, Rect: img.Rect}
	fillRGBA(rgba, f)
	return img
}

// FrameFromImage converts any image into a BGR frame. Alpha is discarded.
func FrameFromImage(img image.Image) Frame {
	if img == nil {
		return Frame{}
	}
	b := img.Bounds()
	f := NewFrame(Size{Width: b.Dx(), Height: b.Dy()})
	if f.Empty() {
		return f
	}
	var pix []uint8
	var stride int
	switch src := img.(type) {
	case *image.RGBA:
		pix, stride = src.Pix[src.PixOffset(b.Min.X, b.Min.Y):], src.Stride
	case *image.NRGBA:
		if src.Opaque() {
			pix, stride = src.Pix[src.PixOffset(b.Min.X, b.Min.Y):], src.Stride
		}
	}
	if pix == nil {
		// Slow path: everything else is composited over black, which is what
		// the RGBA fast path yields for translucent pixels too.
		tmp := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(tmp, tmp.Bounds(), img, b.Min, draw.Src)
		pix, stride = tmp.Pix, tmp.Stride
	}
	for y := 0; y < f.Height; y++ {
		row := pix[y*stride:]
		dst := f.Pix[y*f.Stride():]
		for x := 0; x < f.Width; x++ {
			dst[x*3+0] = row[x*4+2]
			dst[x*3+1] = row[x*4+1]
			dst[x*3+2] = row[x*4+0]
		}
	}
	return f
}

// At returns the color of the pixel at (x, y). Out of range pixels are black.
func (f Frame) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return color.RGBA{A: 0xFF}
	}
	i := y*f.Stride() + x*3
	return color.RGBA{R: f.Pix[i+2], G: f.Pix[i+1], B: f.Pix[i], A: 0xFF}
}
