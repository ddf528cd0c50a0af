// Package postprocess provides ready-made frame transforms for
// capture.WithPostProcess and Source.SetPostProcess.
package postprocess

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/soocke/pixel-cam-go/domain/capture"
)

const (
	blurSigma      = 1.5
	sharpenSigma   = 1.0
	letterboxRatio = 0.1 // share of the height blacked out at top and bottom
	noiseAmplitude = 24
	zoomFactor     = 1.5
)

// None returns the frame unchanged.
func None(f capture.Frame) capture.Frame { return f }

// FlipUp mirrors the frame vertically.
func FlipUp(f capture.Frame) capture.Frame {
	return capture.FrameFromImage(imaging.FlipV(f.ToImage()))
}

// FlipLR mirrors the frame horizontally.
func FlipLR(f capture.Frame) capture.Frame {
	return capture.FrameFromImage(imaging.FlipH(f.ToImage()))
}

// Greyscale drops colour information.
func Greyscale(f capture.Frame) capture.Frame {
	return capture.FrameFromImage(imaging.Grayscale(f.ToImage()))
}

// Blur applies a gaussian blur.
func Blur(f capture.Frame) capture.Frame {
	return capture.FrameFromImage(imaging.Blur(f.ToImage(), blurSigma))
}

// Sharpen applies an unsharp mask.
func Sharpen(f capture.Frame) capture.Frame {
	return capture.FrameFromImage(imaging.Sharpen(f.ToImage(), sharpenSigma))
}

// Zoom crops the centre of the frame and scales it back up to the frame size.
func Zoom(f capture.Frame) capture.Frame {
	if f.Empty() {
		return f
	}
	w := max(int(float64(f.Width)/zoomFactor), 1)
	h := max(int(float64(f.Height)/zoomFactor), 1)
	crop := imaging.CropCenter(f.ToImage(), w, h)
	return capture.FrameFromImage(imaging.Resize(crop, f.Width, f.Height, imaging.Linear))
}

// Letterbox blacks out a band at the top and bottom of the frame.
func Letterbox(f capture.Frame) capture.Frame {
	out := f.Clone()
	band := int(float64(f.Height) * letterboxRatio)
	stride := f.Stride()
	clear(out.Pix[:band*stride])
	clear(out.Pix[(f.Height-band)*stride:])
	return out
}

// Noise adds random brightness noise to every channel.
func Noise(f capture.Frame) capture.Frame {
	out := f.Clone()
	for i, v := range out.Pix {
		n := int(v) + rand.IntN(2*noiseAmplitude+1) - noiseAmplitude
		out.Pix[i] = uint8(min(max(n, 0), 255))
	}
	return out
}

// Chain composes transforms left to right. Nil entries are skipped.
func Chain(fns ...capture.PostProcessFunc) capture.PostProcessFunc {
	return func(f capture.Frame) capture.Frame {
		for _, fn := range fns {
			if fn != nil {
				f = fn(f)
			}
		}
		return f
	}
}

var byName = map[string]capture.PostProcessFunc{
	"none":      None,
	"flipup":    FlipUp,
	"fliplr":    FlipLR,
	"greyscale": Greyscale,
	"blur":      Blur,
	"sharpen":   Sharpen,
	"letterbox": Letterbox,
	"noise":     Noise,
	"zoom":      Zoom,
}

// Lookup returns the transform registered under name. The empty name is None.
// A comma separated list such as "greyscale,blur" yields their Chain.
func Lookup(name string) (capture.PostProcessFunc, error) {
	if strings.TrimSpace(name) == "" {
		return None, nil
	}
	parts := strings.Split(name, ",")
	fns := make([]capture.PostProcessFunc, 0, len(parts))
	for _, p := range parts {
		fn, ok := byName[strings.TrimSpace(p)]
		if !ok {
			return nil, fmt.Errorf("%w: post-process %q not recognized", capture.ErrInvalidParameter, p)
		}
		fns = append(fns, fn)
	}
	if len(fns) == 1 {
		return fns[0], nil
	}
	return Chain(fns...), nil
}

// Names lists the registered transform names in sorted order.
func Names() []string {
	names := make([]string, 0, len(byName))
	for n := range byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
