// Package ports defines interfaces for external dependencies.
package ports

import (
	"context"
	"errors"
)

// Sentinel errors for the failure taxonomy. Each layer wraps these with
// additional context via fmt.Errorf and %w.
var (
	// ErrDeviceOpen indicates the capture device could not be acquired.
	// Fatal for the run.
	ErrDeviceOpen = errors.New("device open failed")

	// ErrDeviceRead indicates a mid-stream capture failure. Fatal for the
	// current session; the partial artifact is preserved.
	ErrDeviceRead = errors.New("device read failed")

	// ErrSinkWrite indicates the video sink rejected a frame. Fatal for the
	// current session.
	ErrSinkWrite = errors.New("sink write failed")

	// ErrCannotOpenArtifact indicates the finished artifact could not be
	// opened for extraction. Fails the extraction call only.
	ErrCannotOpenArtifact = errors.New("cannot open artifact")
)

// CameraConfig holds the requested capture parameters. Immutable once passed
// to Open; the negotiated values may legitimately differ and are returned
// separately as ActualParams.
type CameraConfig struct {
	DeviceIndex int // Non-negative index into the enumerated device list
	Width       int // Requested frame width in pixels
	Height      int // Requested frame height in pixels
	FPS         int // Requested frame rate
}

// ActualParams holds the parameters the device actually negotiated. These
// must be surfaced to the sink and overlay, never silently assumed equal to
// the request.
type ActualParams struct {
	Width  int
	Height int
	FPS    int
}

// Frame is an opaque handle to a captured pixel buffer. The concrete type is
// owned by the capture adapter; sinks and annotators from the same adapter
// operate on it without copying.
type Frame interface {
	// Empty reports whether the frame holds no pixel data.
	Empty() bool

	// Size returns the frame dimensions in pixels.
	Size() (width, height int)

	// Close releases the underlying pixel buffer. Safe to call twice.
	Close() error
}

// VideoSource abstracts a pull-based capture device.
type VideoSource interface {
	// Open acquires the device and negotiates capture parameters. The
	// returned ActualParams reflect what the driver accepted.
	Open(cfg CameraConfig) (ActualParams, error)

	// ReadFrame pulls the next frame. The caller owns the returned frame
	// and must Close it. A failure during an active recording is fatal
	// for that session.
	ReadFrame() (Frame, error)

	// IsOpen reports whether the device is currently acquired.
	IsOpen() bool

	// Release frees the device handle. Idempotent; safe on every exit path.
	Release() error
}

// DeviceInfo describes one enumerated capture device.
type DeviceInfo struct {
	Index int
	Name  string
}

// DeviceLister enumerates the capture devices attached to the system.
type DeviceLister interface {
	ListDevices(ctx context.Context) ([]DeviceInfo, error)
}

// DeviceSelector resolves one device from an enumerated list. Implementations
// may block on user input; the core never reads standard input itself.
type DeviceSelector interface {
	SelectDevice(devices []DeviceInfo) (int, error)
}
