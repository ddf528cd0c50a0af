package capture

import "fmt"

// Interpolation selects the resampling algorithm used when resizing frames.
// The numeric values are the accepted integer aliases.
type Interpolation int

const (
	InterpNearest Interpolation = iota
	InterpLinear
	InterpCubic
	InterpArea
	InterpLanczos4
)

var interpNames = [...]string{
	InterpNearest:  "nearest",
	InterpLinear:   "linear",
	InterpCubic:    "cubic",
	InterpArea:     "area",
	InterpLanczos4: "lanczos4",
}

func (i Interpolation) String() string {
	if i.valid() {
		return interpNames[i]
	}
	return fmt.Sprintf("Interpolation(%d)", int(i))
}

func (i Interpolation) valid() bool { return i >= InterpNearest && i <= InterpLanczos4 }

// ParseInterpolation resolves a token to an Interpolation. Tokens are either one
// of the names "nearest", "linear", "cubic", "area", "lanczos4" or the matching
// integer alias 0..4. Anything else fails with ErrInvalidParameter.
func ParseInterpolation(token any) (Interpolation, error) {
	var n int64
	switch v := token.(type) {
	case Interpolation:
		n = int64(v)
	case string:
		for i, name := range interpNames {
			if v == name {
				return Interpolation(i), nil
			}
		}
		return 0, fmt.Errorf("%w: interpolation %q not recognized", ErrInvalidParameter, v)
	case int:
		n = int64(v)
	case int8:
		n = int64(v)
	case int16:
		n = int64(v)
	case int32:
		n = int64(v)
	case int64:
		n = v
	case uint:
		n = int64(v)
	case uint8:
		n = int64(v)
	case uint16:
		n = int64(v)
	case uint32:
		n = int64(v)
	default:
		return 0, fmt.Errorf("%w: interpolation token %v (%T) not recognized", ErrInvalidParameter, token, token)
	}
	if i := Interpolation(n); n >= 0 && i.valid() {
		return i, nil
	}
	return 0, fmt.Errorf("%w: interpolation %d not recognized", ErrInvalidParameter, n)
}
