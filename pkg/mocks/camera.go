package mocks

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/user/camrec/pkg/ports"
)

// Frame is a mock implementation of ports.Frame. Stamps applied by a mock
// Annotator are recorded on the frame itself.
type Frame struct {
	Width  int
	Height int
	Seq    int

	Stamps []string
	closed atomic.Int32
}

func (f *Frame) Empty() bool {
	return f.Width == 0 && f.Height == 0
}

func (f *Frame) Size() (int, int) {
	return f.Width, f.Height
}

func (f *Frame) Close() error {
	f.closed.Add(1)
	return nil
}

// Closed reports whether Close was called at least once.
func (f *Frame) Closed() bool {
	return f.closed.Load() > 0
}

var _ ports.Frame = (*Frame)(nil)

// VideoSource is a mock implementation of ports.VideoSource. By default it
// produces an unbounded sequence of 640x480 frames.
type VideoSource struct {
	mu       sync.Mutex
	open     bool
	seq      int
	released int

	OpenFunc      func(cfg ports.CameraConfig) (ports.ActualParams, error)
	ReadFrameFunc func(seq int) (ports.Frame, error)
}

func (m *VideoSource) Open(cfg ports.CameraConfig) (ports.ActualParams, error) {
	if m.OpenFunc != nil {
		actual, err := m.OpenFunc(cfg)
		if err == nil {
			m.mu.Lock()
			m.open = true
			m.mu.Unlock()
		}
		return actual, err
	}
	m.mu.Lock()
	m.open = true
	m.mu.Unlock()
	return ports.ActualParams{Width: 640, Height: 480, FPS: 30}, nil
}

func (m *VideoSource) ReadFrame() (ports.Frame, error) {
	m.mu.Lock()
	if !m.open {
		m.mu.Unlock()
		return nil, fmt.Errorf("source not open: %w", ports.ErrDeviceRead)
	}
	seq := m.seq
	m.seq++
	m.mu.Unlock()

	if m.ReadFrameFunc != nil {
		return m.ReadFrameFunc(seq)
	}
	return &Frame{Width: 640, Height: 480, Seq: seq}, nil
}

func (m *VideoSource) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open
}

func (m *VideoSource) Release() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.released++
	m.open = false
	return nil
}

// ReleaseCount returns how many times Release was called.
func (m *VideoSource) ReleaseCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.released
}

var _ ports.VideoSource = (*VideoSource)(nil)

// DeviceLister is a mock implementation of ports.DeviceLister.
type DeviceLister struct {
	Devices []ports.DeviceInfo
	Err     error
}

func (m *DeviceLister) ListDevices(_ context.Context) ([]ports.DeviceInfo, error) {
	return m.Devices, m.Err
}

var _ ports.DeviceLister = (*DeviceLister)(nil)

// DeviceSelector is a mock implementation of ports.DeviceSelector.
type DeviceSelector struct {
	Selection int
	Err       error
	Seen      []ports.DeviceInfo
}

func (m *DeviceSelector) SelectDevice(devices []ports.DeviceInfo) (int, error) {
	m.Seen = devices
	return m.Selection, m.Err
}

var _ ports.DeviceSelector = (*DeviceSelector)(nil)
