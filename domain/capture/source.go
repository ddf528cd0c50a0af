package capture

import (
	"fmt"
	"image"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

const (
	DefaultFPS           = 30
	DefaultInterpolation = "linear"

	statsLogInterval = 5 * time.Second
)

type options struct {
	post        PostProcessFunc
	interp      any
	fps         int
	deviceID    int
	captureSize Size
	resize      ResizeFunc
	now         func() time.Time
	logger      *slog.Logger
}

// Option configures a Source at construction.
type Option func(*options)

// WithPostProcess sets the transform applied to every captured frame.
func WithPostProcess(fn PostProcessFunc) Option { return func(o *options) { o.post = fn } }

// WithInterpolation sets the resize algorithm, see ParseInterpolation for tokens.
func WithInterpolation(token any) Option { return func(o *options) { o.interp = token } }

// WithFPS sets the target capture rate. It must be positive.
func WithFPS(fps int) Option { return func(o *options) { o.fps = fps } }

// WithDeviceID selects the device passed to the Opener.
func WithDeviceID(id int) Option { return func(o *options) { o.deviceID = id } }

// WithCaptureSize requests a native capture resolution. Native keeps whatever
// the device reports.
func WithCaptureSize(size Size) Option { return func(o *options) { o.captureSize = size } }

// WithResizer replaces the resize primitive (default Resize).
func WithResizer(fn ResizeFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.resize = fn
		}
	}
}

// WithClock replaces the wall clock used for frame pacing.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(l *slog.Logger) Option { return func(o *options) { o.logger = l } }

// Source turns a capture device into a paced sequence of frames that can be
// drawn onto an image. Frames are pulled from the device on demand by Update
// and Draw, at most once per 1/fps seconds, resized to CurrentSize,
// post-processed and kept as the single current frame.
//
// A Source is not safe for concurrent use. Callers that share one across
// goroutines must serialise access.
type Source struct {
	logger   *slog.Logger
	dev      Device
	deviceID int

	state  State
	fps    int
	interp Interpolation
	post   PostProcessFunc
	resize ResizeFunc
	now    func() time.Time
	pace   pacer

	original Size
	current  Size
	aspect   float64

	frame  frameState
	frames uint64

	stats      counters
	lastLogged time.Time
}

// NewSource opens the device and returns an active Source. Parameters are
// validated before the device is opened; an invalid interpolation token or a
// non-positive fps fails with ErrInvalidParameter and a device that cannot be
// opened fails with ErrDeviceNotFound.
func NewSource(open Opener, opts ...Option) (*Source, error) {
	o := options{
		interp: DefaultInterpolation,
		fps:    DefaultFPS,
		resize: Resize,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}

	interp, err := ParseInterpolation(o.interp)
	if err != nil {
		return nil, err
	}
	if o.fps <= 0 {
		return nil, fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidParameter, o.fps)
	}
	if o.captureSize.Width < 0 || o.captureSize.Height < 0 {
		return nil, fmt.Errorf("%w: capture size %v", ErrInvalidParameter, o.captureSize)
	}
	if open == nil {
		return nil, fmt.Errorf("%w: no opener", ErrDeviceNotFound)
	}

	logger := o.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With("source", uuid.NewString(), "device", o.deviceID)

	dev, err := open(o.deviceID)
	if err != nil {
		return nil, fmt.Errorf("%w: device %d: %w", ErrDeviceNotFound, o.deviceID, err)
	}
	if dev == nil {
		return nil, fmt.Errorf("%w: device %d", ErrDeviceNotFound, o.deviceID)
	}

	s := &Source{
		logger:   logger,
		dev:      dev,
		deviceID: o.deviceID,
		fps:      o.fps,
		interp:   interp,
		post:     o.post,
		resize:   o.resize,
		now:      o.now,
		pace:     newPacer(o.fps),
	}
	if o.captureSize == Native {
		s.original = dev.Size()
		s.aspect = aspectRatio(s.original)
	} else {
		s.ResizeCapture(o.captureSize)
	}
	s.current = s.original
	s.Play()

	logger.Info("capture.open",
		"size", s.original.String(),
		"fps", s.fps,
		"interp", s.interp.String(),
	)
	return s, nil
}

func aspectRatio(s Size) float64 {
	if s.Height == 0 {
		return 0
	}
	return float64(s.Width) / float64(s.Height)
}

func (s *Source) String() string { return fmt.Sprintf("capture.Source(fps=%d)", s.fps) }

// Update pulls a new frame from the device if the source is active and a full
// frame interval has passed since the previous attempt. It reports whether a
// new frame was stored. A device that has no frame ready is not an error.
func (s *Source) Update() bool {
	if s.state != StateActive {
		return false
	}
	now := s.now()
	if !s.pace.tick(now) {
		s.stats.throttled++
		return false
	}

	raw, ok := s.dev.Read()
	s.stats.reads++
	s.stats.readNanos += uint64(max(s.now().Sub(now), 0))
	if !ok || raw.Empty() {
		s.stats.misses++
		s.logger.Debug("capture.miss", "misses", s.stats.misses)
		return false
	}

	if raw.Size() != s.current {
		raw = s.resize(raw, s.current, s.interp)
	}
	if s.post != nil {
		raw = s.post(raw)
	}
	s.frame.set(raw)
	s.frames++
	s.stats.captures++
	s.stats.last = now

	if now.Sub(s.lastLogged) >= statsLogInterval {
		s.lastLogged = now
		s.logStats()
	}
	return true
}

func (s *Source) logStats() {
	st := s.stats.snapshot()
	s.logger.Debug("capture.stats",
		"captures", st.Captures,
		"misses", st.Misses,
		"throttled", st.Throttled,
		"avg_read", st.AvgRead,
	)
}

// SetPostProcess replaces the post-processing transform. The current frame is
// left untouched; the new transform applies from the next captured frame.
func (s *Source) SetPostProcess(fn PostProcessFunc) { s.post = fn }

// SetInterpolation changes the resize algorithm. On error the previous
// algorithm stays in effect.
func (s *Source) SetInterpolation(token any) error {
	if s.state == StateClosed {
		return ErrClosed
	}
	interp, err := ParseInterpolation(token)
	if err != nil {
		return err
	}
	s.interp = interp
	return nil
}

// SetFPS changes the target capture rate.
func (s *Source) SetFPS(fps int) error {
	if s.state == StateClosed {
		return ErrClosed
	}
	if fps <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidParameter, fps)
	}
	s.fps = fps
	s.pace.interval = frameInterval(fps)
	return nil
}

// Play activates the source. Calling it on an active source does nothing.
func (s *Source) Play() {
	if s.state == StateClosed {
		return
	}
	s.state = StateActive
}

// Stop deactivates the source and drops the current frame. The frame counter
// keeps its value.
func (s *Source) Stop() {
	if s.state == StateClosed {
		return
	}
	s.state = StateStopped
	s.frame.clear()
}

// Resize sets the output size. A frame already held is resized right away so
// the next Draw shows the new size without waiting for a capture.
func (s *Source) Resize(size Size) {
	if s.state == StateClosed {
		return
	}
	size = Size{Width: max(size.Width, 0), Height: max(size.Height, 0)}
	s.current = size
	if s.frame.ok() {
		s.frame.set(s.resize(s.frame.buf, size, s.interp))
	}
}

// ResizeCapture asks the device to capture at size. The negotiated size becomes
// OriginalSize either way; the result is true only if it matches size exactly.
// CurrentSize is not changed.
func (s *Source) ResizeCapture(size Size) bool {
	if s.state == StateClosed {
		return false
	}
	got := s.dev.SetSize(size)
	s.original = got
	s.aspect = aspectRatio(got)
	if got != size {
		s.logger.Info("capture.negotiated", "requested", size.String(), "granted", got.String())
		return false
	}
	return true
}

// ChangeResolution resizes the output to height, deriving the width from the
// capture aspect ratio. The width is rounded and then bumped to the next even
// number when odd.
func (s *Source) ChangeResolution(height int) {
	w := int(math.Round(float64(height) * s.aspect))
	if w%2 != 0 {
		w++
	}
	s.Resize(Size{Width: w, Height: height})
}

// Close stops the source and releases the device. It is irreversible: later
// calls are no-ops or fail with ErrClosed.
func (s *Source) Close() error {
	if s.state == StateClosed {
		return ErrClosed
	}
	s.Stop()
	err := s.dev.Release()
	s.state = StateClosed
	s.dev = nil
	s.logger.Info("capture.close", "frames", s.frames)
	if err != nil {
		return fmt.Errorf("capture: release device %d: %w", s.deviceID, err)
	}
	return nil
}

// Elapsed returns the play time in seconds, counted in captured frames at the
// target rate rather than wall-clock time.
func (s *Source) Elapsed() float64 { return float64(s.frames) / float64(s.fps) }

// Draw updates the source and composites the current frame onto dst with its
// top-left corner at at. With force set the current frame is drawn even when
// no new frame arrived; otherwise only new frames are drawn, which saves work
// but flickers if anything else is drawn over the same area. It reports
// whether anything was drawn.
func (s *Source) Draw(dst draw.Image, at image.Point, force bool) bool {
	fresh := s.Update()
	if (!fresh && !force) || !s.frame.ok() || dst == nil {
		return false
	}
	img := s.frame.present
	r := image.Rectangle{Min: at, Max: at.Add(img.Rect.Size())}
	draw.Draw(dst, r, img, image.Point{}, draw.Src)
	return true
}

// State reports the activity state.
func (s *Source) State() State { return s.state }

// Active reports whether the source is capturing.
func (s *Source) Active() bool { return s.state == StateActive }

// Closed reports whether Close has been called.
func (s *Source) Closed() bool { return s.state == StateClosed }

// OriginalSize is the capture resolution negotiated with the device.
func (s *Source) OriginalSize() Size { return s.original }

// CurrentSize is the output resolution frames are resized to.
func (s *Source) CurrentSize() Size { return s.current }

// AspectRatio is OriginalSize width over height, 0 for a zero height.
func (s *Source) AspectRatio() float64 { return s.aspect }

func (s *Source) FPS() int                     { return s.fps }
func (s *Source) DeviceID() int                { return s.deviceID }
func (s *Source) Interpolation() Interpolation { return s.interp }

// Frames is the number of frames captured since construction.
func (s *Source) Frames() uint64 { return s.frames }

// Frame returns the current frame buffer. The pixels are shared with the
// source and must not be modified.
func (s *Source) Frame() (Frame, bool) { return s.frame.buf, s.frame.ok() }

// Stats returns capture counters.
func (s *Source) Stats() Stats { return s.stats.snapshot() }
