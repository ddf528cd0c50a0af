// Package capture implements capture devices and resize primitives for
// domain/capture sources.
package capture

import (
	"fmt"

	dcap "github.com/soocke/pixel-cam-go/domain/capture"
)

// Device backends.
const (
	BackendWebcam = "webcam"
	BackendScreen = "screen"
	BackendGst    = "gst"
)

// Resize primitives.
const (
	ResizerGo     = "go"
	ResizerOpenCV = "opencv"
)

// OpenerFor returns the device opener for backend.
func OpenerFor(backend string) (dcap.Opener, error) {
	switch backend {
	case BackendWebcam, "":
		return OpenWebcam, nil
	case BackendScreen:
		return OpenScreen, nil
	case BackendGst:
		return OpenGst, nil
	default:
		return nil, fmt.Errorf("capture: unknown backend %q", backend)
	}
}

// ResizerFor returns the resize primitive called name.
func ResizerFor(name string) (dcap.ResizeFunc, error) {
	switch name {
	case ResizerOpenCV, "":
		return ResizeCV, nil
	case ResizerGo:
		return dcap.Resize, nil
	default:
		return nil, fmt.Errorf("capture: unknown resizer %q", name)
	}
}
