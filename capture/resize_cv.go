package capture

import (
	"image"

	"gocv.io/x/gocv"

	dcap "github.com/soocke/pixel-cam-go/domain/capture"
)

var cvInterpolation = [...]gocv.InterpolationFlags{
	dcap.InterpNearest:  gocv.InterpolationNearestNeighbor,
	dcap.InterpLinear:   gocv.InterpolationLinear,
	dcap.InterpCubic:    gocv.InterpolationCubic,
	dcap.InterpArea:     gocv.InterpolationArea,
	dcap.InterpLanczos4: gocv.InterpolationLanczos4,
}

// ResizeCV resizes with OpenCV. Unknown interpolation values fall back to linear.
func ResizeCV(f dcap.Frame, size dcap.Size, interp dcap.Interpolation) dcap.Frame {
	if size.Empty() || f.Empty() {
		return dcap.NewFrame(size)
	}
	flag := gocv.InterpolationLinear
	if interp >= 0 && int(interp) < len(cvInterpolation) {
		flag = cvInterpolation[interp]
	}
	src, err := gocv.NewMatFromBytes(f.Height, f.Width, gocv.MatTypeCV8UC3, f.Pix)
	if err != nil {
		return dcap.Resize(f, size, interp)
	}
	defer src.Close()
	dst := gocv.NewMat()
	defer dst.Close()
	gocv.Resize(src, &dst, image.Pt(size.Width, size.Height), 0, 0, flag)
	return matToFrame(dst)
}
