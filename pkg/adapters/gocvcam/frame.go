// Package gocvcam provides the OpenCV-backed adapters: capture device, video
// writer, artifact reader, still writer, on-frame annotator and preview
// window, all built on gocv.
package gocvcam

import (
	"fmt"

	"gocv.io/x/gocv"
)

// Frame wraps a gocv.Mat. It is the concrete type behind ports.Frame for
// every adapter in this package; the annotator and sink operate on the Mat
// directly, without copying pixel data.
type Frame struct {
	mat    gocv.Mat
	closed bool
}

// NewFrame wraps an existing Mat. The frame takes ownership.
func NewFrame(mat gocv.Mat) *Frame {
	return &Frame{mat: mat}
}

// Empty reports whether the frame holds no pixel data.
func (f *Frame) Empty() bool {
	return f.closed || f.mat.Empty()
}

// Size returns the frame dimensions in pixels.
func (f *Frame) Size() (int, int) {
	return f.mat.Cols(), f.mat.Rows()
}

// Close releases the underlying Mat. Safe to call twice.
func (f *Frame) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	return f.mat.Close()
}

// EncodeJPEG serializes the frame as JPEG, used for debug sampling.
func (f *Frame) EncodeJPEG() ([]byte, error) {
	if f.closed {
		return nil, fmt.Errorf("encode closed frame")
	}
	buf, err := gocv.IMEncode(gocv.JPEGFileExt, f.mat)
	if err != nil {
		return nil, fmt.Errorf("encode frame as JPEG: %w", err)
	}
	defer buf.Close()
	data := make([]byte, len(buf.GetBytes()))
	copy(data, buf.GetBytes())
	return data, nil
}
