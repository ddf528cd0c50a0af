package view

import (
	"image"

	"github.com/soocke/pixel-cam-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Preview shows the latest presented frame in a label.
type Preview interface {
	Show(img image.Image)
}

type preview struct {
	label     *LabelWidget
	maxW      int
	maxH      int
	prevPhoto *Img // last Tk photo, deleted before it is replaced
}

// NewPreview creates the frame label sized w x h and grids it at row. Frames
// larger than maxW x maxH are scaled down for display.
func NewPreview(row, w, h, maxW, maxH int) Preview {
	p := &preview{maxW: maxW, maxH: maxH}
	w, h = images.FitSize(image.Rect(0, 0, max(w, 1), max(h, 1)), maxW, maxH)
	photo := NewPhoto(Data(images.EncodePNG(image.NewRGBA(image.Rect(0, 0, w, h)))))
	p.label = Label(Image(photo), Borderwidth(1), Relief("sunken"))
	p.prevPhoto = photo
	Grid(p.label, Row(row), Column(0), Columnspan(4), Sticky("nsew"), Padx("0.4m"), Pady("0.4m"))
	return p
}

func (p *preview) Show(img image.Image) {
	if p == nil || p.label == nil || img == nil || img.Bounds().Empty() {
		return
	}
	pngBytes := images.EncodePNG(images.ScaleToFit(img, p.maxW, p.maxH))
	p.replace(NewPhoto(Data(pngBytes)))
}

func (p *preview) replace(photo *Img) {
	if p.prevPhoto != nil {
		p.prevPhoto.Delete()
	}
	p.prevPhoto = photo
	p.label.Configure(Image(photo))
}
