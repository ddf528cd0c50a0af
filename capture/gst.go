package capture

import (
	"fmt"
	"sync"
	"time"

	"github.com/tinyzimmer/go-gst/gst"
	"github.com/tinyzimmer/go-gst/gst/app"

	dcap "github.com/soocke/pixel-cam-go/domain/capture"
)

// negotiateTimeout bounds how long open and SetSize wait for a frame that
// shows the pipeline's negotiated size.
const negotiateTimeout = 5 * time.Second

// Gst is a V4L2 camera read through a GStreamer pipeline:
//
//	v4l2src → videoconvert → videoscale → capsfilter(BGR) → appsink
//
// The appsink callback keeps only the latest frame; Read never blocks.
type Gst struct {
	pipeline   *gst.Pipeline
	capsfilter *gst.Element

	mu     sync.Mutex
	latest dcap.Frame
	fresh  bool
	size   dcap.Size
	notify chan struct{}
}

// OpenGst opens /dev/video<id> through GStreamer.
func OpenGst(id int) (dcap.Device, error) {
	gst.Init(nil)

	pipeline, err := gst.NewPipeline("")
	if err != nil {
		return nil, fmt.Errorf("capture: gst pipeline: %w", err)
	}
	src, err := gst.NewElement("v4l2src")
	if err != nil {
		return nil, fmt.Errorf("capture: gst v4l2src: %w", err)
	}
	src.SetProperty("device", fmt.Sprintf("/dev/video%d", id))
	convert, err := gst.NewElement("videoconvert")
	if err != nil {
		return nil, fmt.Errorf("capture: gst videoconvert: %w", err)
	}
	scale, err := gst.NewElement("videoscale")
	if err != nil {
		return nil, fmt.Errorf("capture: gst videoscale: %w", err)
	}
	capsfilter, err := gst.NewElement("capsfilter")
	if err != nil {
		return nil, fmt.Errorf("capture: gst capsfilter: %w", err)
	}
	capsfilter.SetProperty("caps", gst.NewCapsFromString(bgrCaps(dcap.Native)))
	sink, err := app.NewAppSink()
	if err != nil {
		return nil, fmt.Errorf("capture: gst appsink: %w", err)
	}
	sink.SetProperty("sync", false)
	sink.SetProperty("max-buffers", 1)
	sink.SetProperty("drop", true)

	pipeline.AddMany(src, convert, scale, capsfilter, sink.Element)
	if err := gst.ElementLinkMany(src, convert, scale, capsfilter, sink.Element); err != nil {
		return nil, fmt.Errorf("capture: gst link: %w", err)
	}

	g := &Gst{pipeline: pipeline, capsfilter: capsfilter, notify: make(chan struct{}, 1)}
	sink.SetCallbacks(&app.SinkCallbacks{
		NewSampleFunc: g.onNewSample,
	})
	if err := pipeline.SetState(gst.StatePlaying); err != nil {
		return nil, fmt.Errorf("capture: gst start /dev/video%d: %w", id, err)
	}
	if !g.awaitFrame(func(dcap.Size) bool { return true }) {
		pipeline.SetState(gst.StateNull)
		return nil, fmt.Errorf("capture: gst /dev/video%d delivered no frame within %v", id, negotiateTimeout)
	}
	return g, nil
}

// bgrCaps pins the appsink format to packed BGR, optionally at a fixed size.
func bgrCaps(size dcap.Size) string {
	if size.Empty() {
		return "video/x-raw,format=BGR"
	}
	return fmt.Sprintf("video/x-raw,format=BGR,width=%d,height=%d", size.Width, size.Height)
}

func (g *Gst) onNewSample(sink *app.Sink) gst.FlowReturn {
	sample := sink.PullSample()
	if sample == nil {
		return gst.FlowEOS
	}
	w, h := sampleSize(sample)
	buffer := sample.GetBuffer()
	if buffer == nil || w <= 0 || h <= 0 {
		return gst.FlowOK
	}
	mapInfo := buffer.Map(gst.MapRead)
	frame, ok := packBGR(mapInfo.Bytes(), w, h)
	buffer.Unmap()
	if !ok {
		return gst.FlowOK
	}

	g.mu.Lock()
	g.latest, g.fresh, g.size = frame, true, frame.Size()
	g.mu.Unlock()
	select {
	case g.notify <- struct{}{}:
	default:
	}
	return gst.FlowOK
}

func sampleSize(sample *gst.Sample) (int, int) {
	caps := sample.GetCaps()
	if caps == nil || caps.GetSize() == 0 {
		return 0, 0
	}
	structure := caps.GetStructureAt(0)
	var w, h int
	if val, err := structure.GetValue("width"); err == nil {
		w, _ = val.(int)
	}
	if val, err := structure.GetValue("height"); err == nil {
		h, _ = val.(int)
	}
	return w, h
}

// packBGR copies a mapped BGR buffer into a Frame, dropping the row padding
// GStreamer adds to keep strides 4-byte aligned.
func packBGR(data []byte, w, h int) (dcap.Frame, bool) {
	if len(data) == 0 || h <= 0 || len(data)%h != 0 {
		return dcap.Frame{}, false
	}
	stride := len(data) / h
	if stride < w*3 {
		return dcap.Frame{}, false
	}
	f := dcap.NewFrame(dcap.Size{Width: w, Height: h})
	if stride == f.Stride() {
		copy(f.Pix, data)
		return f, true
	}
	for y := 0; y < h; y++ {
		copy(f.Pix[y*f.Stride():(y+1)*f.Stride()], data[y*stride:])
	}
	return f, true
}

// awaitFrame waits until a frame satisfying ok arrives or the timeout passes.
func (g *Gst) awaitFrame(ok func(dcap.Size) bool) bool {
	deadline := time.After(negotiateTimeout)
	for {
		g.mu.Lock()
		done := g.fresh && ok(g.size)
		g.mu.Unlock()
		if done {
			return true
		}
		select {
		case <-g.notify:
		case <-deadline:
			return false
		}
	}
}

func (g *Gst) Read() (dcap.Frame, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.fresh {
		return dcap.Frame{}, false
	}
	g.fresh = false
	return g.latest, true
}

func (g *Gst) Size() dcap.Size {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.size
}

// SetSize swaps the capsfilter caps and reports the size of the first frame
// after renegotiation. videoscale sits in front of the capsfilter, so any
// positive size is granted: when the camera has no such mode the frames are
// software-scaled from whatever mode v4l2src picked, and the granted size
// says nothing about the sensor.
func (g *Gst) SetSize(size dcap.Size) dcap.Size {
	g.capsfilter.SetProperty("caps", gst.NewCapsFromString(bgrCaps(size)))
	g.mu.Lock()
	g.fresh = false
	g.mu.Unlock()
	g.awaitFrame(func(got dcap.Size) bool { return size.Empty() || got == size })
	return g.Size()
}

func (g *Gst) Release() error {
	return g.pipeline.SetState(gst.StateNull)
}
