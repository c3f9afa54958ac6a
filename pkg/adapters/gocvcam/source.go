package gocvcam

import (
	"fmt"
	"sync"
	"time"

	"gocv.io/x/gocv"

	"github.com/user/camrec/pkg/ports"
)

// settleDelay is applied after device acquisition before touching capture
// properties. Some drivers report stale capability values immediately after
// opening; querying too early negotiates against garbage.
const settleDelay = time.Second

// Source implements ports.VideoSource on a V4L/DirectShow camera via gocv.
type Source struct {
	mu     sync.Mutex
	cap    *gocv.VideoCapture
	actual ports.ActualParams
	logger ports.Logger
}

// NewSource creates an unopened camera source.
func NewSource(logger ports.Logger) *Source {
	return &Source{logger: logger.WithComponent("camera")}
}

// Open acquires the device and negotiates resolution and frame rate. When
// the driver reports the device closed after the first attempt, one explicit
// second attempt is made. Autofocus is requested best-effort; the negotiated
// width/height/fps are read back and returned, since they may legitimately
// differ from the request.
func (s *Source) Open(cfg ports.CameraConfig) (ports.ActualParams, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cap != nil {
		return s.actual, nil
	}

	cap, err := gocv.OpenVideoCapture(cfg.DeviceIndex)
	if err != nil {
		return ports.ActualParams{}, fmt.Errorf("%w: device %d: %v", ports.ErrDeviceOpen, cfg.DeviceIndex, err)
	}
	if !cap.IsOpened() {
		// Second explicit open attempt for drivers that need a retry.
		cap.Close()
		cap, err = gocv.OpenVideoCapture(cfg.DeviceIndex)
		if err != nil {
			return ports.ActualParams{}, fmt.Errorf("%w: device %d: %v", ports.ErrDeviceOpen, cfg.DeviceIndex, err)
		}
		if !cap.IsOpened() {
			cap.Close()
			return ports.ActualParams{}, fmt.Errorf("%w: device %d reports closed after two attempts", ports.ErrDeviceOpen, cfg.DeviceIndex)
		}
	}

	time.Sleep(settleDelay)

	cap.Set(gocv.VideoCaptureFrameWidth, float64(cfg.Width))
	cap.Set(gocv.VideoCaptureFrameHeight, float64(cfg.Height))
	cap.Set(gocv.VideoCaptureFPS, float64(cfg.FPS))
	// Best effort; unsupported on many fixed-focus modules.
	cap.Set(gocv.VideoCaptureAutoFocus, 1)

	s.cap = cap
	s.actual = ports.ActualParams{
		Width:  int(cap.Get(gocv.VideoCaptureFrameWidth)),
		Height: int(cap.Get(gocv.VideoCaptureFrameHeight)),
		FPS:    int(cap.Get(gocv.VideoCaptureFPS)),
	}
	s.logger.Info("Current camera configuration: index %d, resolution %dx%d, frame rate %dfps",
		cfg.DeviceIndex, s.actual.Width, s.actual.Height, s.actual.FPS)
	return s.actual, nil
}

// ReadFrame pulls the next frame. The caller owns the returned frame.
func (s *Source) ReadFrame() (ports.Frame, error) {
	s.mu.Lock()
	cap := s.cap
	s.mu.Unlock()
	if cap == nil {
		return nil, fmt.Errorf("%w: device not open", ports.ErrDeviceRead)
	}

	mat := gocv.NewMat()
	if ok := cap.Read(&mat); !ok {
		mat.Close()
		return nil, fmt.Errorf("%w: cannot receive camera frame", ports.ErrDeviceRead)
	}
	if mat.Empty() {
		mat.Close()
		return nil, fmt.Errorf("%w: empty camera frame", ports.ErrDeviceRead)
	}
	return NewFrame(mat), nil
}

// IsOpen reports whether the device is currently acquired.
func (s *Source) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cap != nil && s.cap.IsOpened()
}

// Release frees the device handle. Idempotent: the second and later calls
// are no-ops, so deferring it alongside an explicit call is safe.
func (s *Source) Release() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cap == nil {
		return nil
	}
	err := s.cap.Close()
	s.cap = nil
	s.logger.Info("Camera resources have been released")
	if err != nil {
		return fmt.Errorf("release camera: %w", err)
	}
	return nil
}

var _ ports.VideoSource = (*Source)(nil)
