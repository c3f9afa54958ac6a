package gocvcam

import (
	"fmt"

	"gocv.io/x/gocv"

	"github.com/user/camrec/pkg/ports"
)

// fourcc selects the MPEG-4 Part 2 encoder inside the MP4 container. The
// probe adapter depends on the container being ISO BMFF.
const fourcc = "mp4v"

// Sink implements ports.VideoSink on gocv.VideoWriter.
type Sink struct {
	writer *gocv.VideoWriter
}

// NewSink creates an unopened video sink.
func NewSink() *Sink {
	return &Sink{}
}

// Open creates the container file with the negotiated parameters.
func (s *Sink) Open(path string, width, height int, fps float64) error {
	writer, err := gocv.VideoWriterFile(path, fourcc, fps, width, height, true)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ports.ErrSinkWrite, path, err)
	}
	if !writer.IsOpened() {
		writer.Close()
		return fmt.Errorf("%w: %s: writer reports closed", ports.ErrSinkWrite, path)
	}
	s.writer = writer
	return nil
}

// WriteFrame appends one frame to the container.
func (s *Sink) WriteFrame(frame ports.Frame) error {
	if s.writer == nil {
		return fmt.Errorf("%w: sink not open", ports.ErrSinkWrite)
	}
	f, ok := frame.(*Frame)
	if !ok {
		return fmt.Errorf("%w: frame is %T, not a gocv frame", ports.ErrSinkWrite, frame)
	}
	if err := s.writer.Write(f.mat); err != nil {
		return fmt.Errorf("%w: %v", ports.ErrSinkWrite, err)
	}
	return nil
}

// Close finalizes the container. Safe to call twice.
func (s *Sink) Close() error {
	if s.writer == nil {
		return nil
	}
	err := s.writer.Close()
	s.writer = nil
	if err != nil {
		return fmt.Errorf("close video sink: %w", err)
	}
	return nil
}

var _ ports.VideoSink = (*Sink)(nil)
