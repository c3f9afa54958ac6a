package gocvcam

import (
	"fmt"

	"gocv.io/x/gocv"

	"github.com/user/camrec/pkg/ports"
)

// Reader implements ports.VideoReader on gocv.VideoCapture in file mode.
type Reader struct {
	cap *gocv.VideoCapture
}

// NewReader creates an unopened artifact reader.
func NewReader() *Reader {
	return &Reader{}
}

// Open opens the artifact for sequential decoding.
func (r *Reader) Open(path string) error {
	cap, err := gocv.VideoCaptureFile(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ports.ErrCannotOpenArtifact, path, err)
	}
	if !cap.IsOpened() {
		cap.Close()
		return fmt.Errorf("%w: %s", ports.ErrCannotOpenArtifact, path)
	}
	r.cap = cap
	return nil
}

// ReadFrame decodes the next frame; ok=false signals end of stream.
func (r *Reader) ReadFrame() (ports.Frame, bool, error) {
	if r.cap == nil {
		return nil, false, fmt.Errorf("%w: reader not open", ports.ErrCannotOpenArtifact)
	}
	mat := gocv.NewMat()
	if ok := r.cap.Read(&mat); !ok || mat.Empty() {
		mat.Close()
		return nil, false, nil
	}
	return NewFrame(mat), true, nil
}

// Close releases the reader. Safe to call twice.
func (r *Reader) Close() error {
	if r.cap == nil {
		return nil
	}
	err := r.cap.Close()
	r.cap = nil
	if err != nil {
		return fmt.Errorf("close artifact reader: %w", err)
	}
	return nil
}

var _ ports.VideoReader = (*Reader)(nil)

// StillWriter implements ports.StillWriter via OpenCV's image codecs.
type StillWriter struct{}

// NewStillWriter creates a still writer.
func NewStillWriter() *StillWriter {
	return &StillWriter{}
}

// WriteJPEG encodes the frame as JPEG at the given path.
func (w *StillWriter) WriteJPEG(path string, frame ports.Frame) error {
	f, ok := frame.(*Frame)
	if !ok {
		return fmt.Errorf("write still: frame is %T, not a gocv frame", frame)
	}
	if ok := gocv.IMWrite(path, f.mat); !ok {
		return fmt.Errorf("write still %s", path)
	}
	return nil
}

var _ ports.StillWriter = (*StillWriter)(nil)
