package capture

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func solidFrame(size Size, bgr [3]byte) Frame {
	f := NewFrame(size)
	for i := 0; i < len(f.Pix); i += 3 {
		copy(f.Pix[i:i+3], bgr[:])
	}
	return f
}

func TestParseInterpolation(t *testing.T) {
	valid := map[any]Interpolation{
		"nearest": InterpNearest, 0: InterpNearest,
		"linear": InterpLinear, 1: InterpLinear,
		"cubic": InterpCubic, 2: InterpCubic,
		"area": InterpArea, 3: InterpArea,
		"lanczos4": InterpLanczos4, 4: InterpLanczos4,
		int64(2): InterpCubic, uint8(4): InterpLanczos4,
		InterpArea: InterpArea,
	}
	for token, want := range valid {
		got, err := ParseInterpolation(token)
		if err != nil || got != want {
			t.Errorf("ParseInterpolation(%#v) = %v, %v; want %v", token, got, err, want)
		}
	}
	for _, token := range []any{"LINEAR", "lanczos", " linear", 5, -1, int64(1 << 40), 2.0, true, nil} {
		if _, err := ParseInterpolation(token); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("ParseInterpolation(%#v): expected ErrInvalidParameter, got %v", token, err)
		}
	}
}

func TestInterpolationString(t *testing.T) {
	if InterpLanczos4.String() != "lanczos4" || Interpolation(9).String() != "Interpolation(9)" {
		t.Fatalf("unexpected names %q %q", InterpLanczos4, Interpolation(9))
	}
}

func TestResize_AllAlgorithmsKeepSolidColor(t *testing.T) {
	src := solidFrame(Size{16, 12}, [3]byte{40, 120, 200})
	for i := InterpNearest; i <= InterpLanczos4; i++ {
		t.Run(i.String(), func(t *testing.T) {
			out := Resize(src, Size{7, 5}, i)
			if out.Size() != (Size{7, 5}) || len(out.Pix) != 7*5*3 {
				t.Fatalf("size %v len %d", out.Size(), len(out.Pix))
			}
			c := out.At(3, 2)
			if diff(c.B, 40) > 1 || diff(c.G, 120) > 1 || diff(c.R, 200) > 1 {
				t.Fatalf("color drifted: %v", c)
			}
		})
	}
}

func diff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func TestResize_EdgeCases(t *testing.T) {
	src := solidFrame(Size{4, 4}, [3]byte{1, 2, 3})
	if out := Resize(src, Size{0, 3}, InterpLinear); out.Size() != (Size{0, 3}) || !out.Empty() {
		t.Fatalf("zero width: %v", out.Size())
	}
	if out := Resize(Frame{}, Size{2, 2}, InterpLinear); out.Size() != (Size{2, 2}) {
		t.Fatalf("empty source: %v", out.Size())
	}
	same := Resize(src, Size{4, 4}, InterpLinear)
	same.Pix[0] = 99
	if src.Pix[0] != 1 {
		t.Fatal("Resize aliased its input")
	}
}

func TestFrameImageConversion(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 10, 13, 12))
	img.SetRGBA(10, 10, color.RGBA{R: 200, G: 100, B: 50, A: 255})
	img.SetRGBA(12, 11, color.RGBA{R: 1, G: 2, B: 3, A: 255})

	f := FrameFromImage(img)
	if f.Size() != (Size{3, 2}) {
		t.Fatalf("size %v", f.Size())
	}
	if got := f.Pix[:3]; got[0] != 50 || got[1] != 100 || got[2] != 200 {
		t.Fatalf("first pixel not BGR: %v", got)
	}
	back := f.ToImage()
	if c := back.NRGBAAt(2, 1); c != (color.NRGBA{R: 1, G: 2, B: 3, A: 255}) {
		t.Fatalf("round trip pixel %v", c)
	}

	gray := image.NewGray(image.Rect(0, 0, 1, 1))
	gray.Pix[0] = 77
	if g := FrameFromImage(gray); g.Pix[0] != 77 || g.Pix[1] != 77 || g.Pix[2] != 77 {
		t.Fatalf("gray conversion %v", g.Pix)
	}
	if FrameFromImage(nil).Size() != (Size{}) {
		t.Fatal("nil image should give empty frame")
	}
}

func TestPresentationPool_ReusesBuffers(t *testing.T) {
	var st frameState
	st.set(solidFrame(Size{4, 4}, [3]byte{1, 2, 3}))
	first := st.present
	st.set(solidFrame(Size{2, 2}, [3]byte{4, 5, 6}))
	if st.present == first {
		t.Fatal("presentation mutated in place instead of rebuilt")
	}
	if st.present.Rect.Size() != image.Pt(2, 2) || st.buf.Size() != (Size{2, 2}) {
		t.Fatalf("state out of sync: present=%v buf=%v", st.present.Rect.Size(), st.buf.Size())
	}
	if c := st.present.RGBAAt(1, 1); c != (color.RGBA{R: 6, G: 5, B: 4, A: 255}) {
		t.Fatalf("presentation pixel %v", c)
	}
	st.clear()
	if st.ok() || !st.buf.Empty() {
		t.Fatal("clear left state behind")
	}
}
