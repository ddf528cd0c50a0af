package presenter

import (
	"fmt"

	"github.com/soocke/pixel-cam-go/domain/capture"
)

// StateSource provides the source properties shown in the state label.
type StateSource interface {
	State() capture.State
	CurrentSize() capture.Size
	FPS() int
}

// StateView sets the state label in the view.
type StateView interface{ SetStateLabel(string) }

// StatePresenter reflects the source state, output size and rate in the view.
// The label is only rewritten when its text changes.
type StatePresenter struct {
	src    StateSource
	view   StateView
	latest string
}

func NewStatePresenter(src StateSource, view StateView) *StatePresenter {
	return &StatePresenter{src: src, view: view}
}

// Tick pushes the current label to the view if it changed since the last Tick.
func (p *StatePresenter) Tick() {
	if p == nil || p.src == nil || p.view == nil {
		return
	}
	label := fmt.Sprintf("State: %s  %s @ %d fps", p.src.State(), p.src.CurrentSize(), p.src.FPS())
	if label == p.latest {
		return
	}
	p.latest = label
	p.view.SetStateLabel(label)
}
