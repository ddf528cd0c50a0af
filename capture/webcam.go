package capture

import (
	"fmt"

	"gocv.io/x/gocv"

	dcap "github.com/soocke/pixel-cam-go/domain/capture"
)

// Webcam is an OpenCV video capture device. The two Mats are reused across
// reads; frames handed out are copies.
type Webcam struct {
	vc  *gocv.VideoCapture
	raw gocv.Mat
	bgr gocv.Mat
}

// OpenWebcam opens the camera with the given index.
func OpenWebcam(id int) (dcap.Device, error) {
	vc, err := gocv.OpenVideoCapture(id)
	if err != nil {
		return nil, fmt.Errorf("capture: open webcam %d: %w", id, err)
	}
	if !vc.IsOpened() {
		vc.Close()
		return nil, fmt.Errorf("capture: webcam %d did not open", id)
	}
	return &Webcam{vc: vc, raw: gocv.NewMat(), bgr: gocv.NewMat()}, nil
}

func (w *Webcam) Read() (dcap.Frame, bool) {
	if ok := w.vc.Read(&w.raw); !ok || w.raw.Empty() {
		return dcap.Frame{}, false
	}
	src := w.raw
	switch w.raw.Channels() {
	case 3:
	case 4:
		gocv.CvtColor(w.raw, &w.bgr, gocv.ColorBGRAToBGR)
		src = w.bgr
	case 1:
		gocv.CvtColor(w.raw, &w.bgr, gocv.ColorGrayToBGR)
		src = w.bgr
	default:
		return dcap.Frame{}, false
	}
	return matToFrame(src), true
}

func (w *Webcam) Size() dcap.Size {
	return dcap.Size{
		Width:  int(w.vc.Get(gocv.VideoCaptureFrameWidth)),
		Height: int(w.vc.Get(gocv.VideoCaptureFrameHeight)),
	}
}

// SetSize requests width then height; the driver picks the closest mode it
// supports, so the result is read back from the device.
func (w *Webcam) SetSize(size dcap.Size) dcap.Size {
	w.vc.Set(gocv.VideoCaptureFrameWidth, float64(size.Width))
	w.vc.Set(gocv.VideoCaptureFrameHeight, float64(size.Height))
	return w.Size()
}

func (w *Webcam) Release() error {
	w.raw.Close()
	w.bgr.Close()
	return w.vc.Close()
}

func matToFrame(m gocv.Mat) dcap.Frame {
	return dcap.Frame{Pix: m.ToBytes(), Width: m.Cols(), Height: m.Rows()}
}
