package capture

import "github.com/disintegration/imaging"

var imagingFilters = [...]imaging.ResampleFilter{
	InterpNearest:  imaging.NearestNeighbor,
	InterpLinear:   imaging.Linear,
	InterpCubic:    imaging.CatmullRom,
	InterpArea:     imaging.Box,
	InterpLanczos4: imaging.Lanczos,
}

// Resize is the default pure-Go resize primitive. It never modifies f.
// Resizing to a size with a zero dimension yields an empty frame of that size.
func Resize(f Frame, size Size, interp Interpolation) Frame {
	if size.Empty() || f.Empty() {
		return NewFrame(size)
	}
	if f.Size() == size {
		return f.Clone()
	}
	filter := imaging.Linear
	if interp.valid() {
		filter = imagingFilters[interp]
	}
	return FrameFromImage(imaging.Resize(f.ToImage(), size.Width, size.Height, filter))
}
