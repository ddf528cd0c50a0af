package capture

import "errors"

var (
	// ErrDeviceNotFound is returned when the capture device cannot be opened.
	ErrDeviceNotFound = errors.New("capture: device not found")
	// ErrInvalidParameter is returned for unrecognized interpolation tokens
	// and non-positive frame rates.
	ErrInvalidParameter = errors.New("capture: invalid parameter")
	// ErrClosed is returned by operations attempted on a closed Source.
	ErrClosed = errors.New("capture: source closed")
)
