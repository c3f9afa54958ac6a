package mocks

import (
	"fmt"
	"sync"

	"github.com/user/camrec/pkg/ports"
)

// VideoSink is a mock implementation of ports.VideoSink. It counts written
// frames and records lifecycle calls.
type VideoSink struct {
	mu sync.Mutex

	Path    string
	Width   int
	Height  int
	FPS     float64
	Written int
	Opened  bool
	Closes  int

	OpenFunc       func(path string, width, height int, fps float64) error
	WriteFrameFunc func(frame ports.Frame, written int) error
}

func (m *VideoSink) Open(path string, width, height int, fps float64) error {
	if m.OpenFunc != nil {
		if err := m.OpenFunc(path, width, height, fps); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Path = path
	m.Width = width
	m.Height = height
	m.FPS = fps
	m.Opened = true
	return nil
}

func (m *VideoSink) WriteFrame(frame ports.Frame) error {
	m.mu.Lock()
	written := m.Written
	m.mu.Unlock()
	if m.WriteFrameFunc != nil {
		if err := m.WriteFrameFunc(frame, written); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.Opened {
		return fmt.Errorf("sink not opened: %w", ports.ErrSinkWrite)
	}
	m.Written++
	return nil
}

func (m *VideoSink) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closes++
	m.Opened = false
	return nil
}

// WrittenFrames returns how many frames were written.
func (m *VideoSink) WrittenFrames() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Written
}

// CloseCount returns how many times Close was called.
func (m *VideoSink) CloseCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Closes
}

var _ ports.VideoSink = (*VideoSink)(nil)

// VideoReader is a mock implementation of ports.VideoReader serving a fixed
// number of frames before end of stream.
type VideoReader struct {
	Frames int
	read   int
	opened bool
	Closes int

	OpenFunc func(path string) error
}

func (m *VideoReader) Open(path string) error {
	if m.OpenFunc != nil {
		if err := m.OpenFunc(path); err != nil {
			return err
		}
	}
	m.opened = true
	return nil
}

func (m *VideoReader) ReadFrame() (ports.Frame, bool, error) {
	if !m.opened {
		return nil, false, fmt.Errorf("reader not opened: %w", ports.ErrCannotOpenArtifact)
	}
	if m.read >= m.Frames {
		return nil, false, nil
	}
	f := &Frame{Width: 640, Height: 480, Seq: m.read}
	m.read++
	return f, true, nil
}

func (m *VideoReader) Close() error {
	m.Closes++
	return nil
}

var _ ports.VideoReader = (*VideoReader)(nil)

// StillWriter is a mock implementation of ports.StillWriter recording the
// paths written, in order.
type StillWriter struct {
	mu    sync.Mutex
	Paths []string

	WriteJPEGFunc func(path string, frame ports.Frame) error
}

func (m *StillWriter) WriteJPEG(path string, frame ports.Frame) error {
	if m.WriteJPEGFunc != nil {
		if err := m.WriteJPEGFunc(path, frame); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Paths = append(m.Paths, path)
	return nil
}

var _ ports.StillWriter = (*StillWriter)(nil)

// Annotator is a mock implementation of ports.Annotator. Stamps are appended
// to the mock frame so tests can inspect what each frame carried.
type Annotator struct {
	mu     sync.Mutex
	Stamps []string
	Infos  [][]string
}

func (m *Annotator) StampTimestamp(frame ports.Frame, text string) {
	m.mu.Lock()
	m.Stamps = append(m.Stamps, text)
	m.mu.Unlock()
	if f, ok := frame.(*Frame); ok {
		f.Stamps = append(f.Stamps, text)
	}
}

func (m *Annotator) StampInfo(frame ports.Frame, lines []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Infos = append(m.Infos, lines)
}

// StampedTexts returns a copy of all timestamp labels stamped so far.
func (m *Annotator) StampedTexts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.Stamps))
	copy(out, m.Stamps)
	return out
}

var _ ports.Annotator = (*Annotator)(nil)

// Display is a mock implementation of ports.Display. Keys are served from
// the Keys queue; -1 once exhausted.
type Display struct {
	mu     sync.Mutex
	Shown  int
	Keys   []int
	Closes int
}

func (m *Display) Show(frame ports.Frame) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Shown++
	return nil
}

func (m *Display) WaitKey(ms int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Keys) == 0 {
		return -1
	}
	k := m.Keys[0]
	m.Keys = m.Keys[1:]
	return k
}

func (m *Display) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closes++
	return nil
}

var _ ports.Display = (*Display)(nil)

// Prober is a mock implementation of ports.ArtifactProber.
type Prober struct {
	Info ports.ArtifactInfo
	Err  error
}

func (m *Prober) Probe(path string) (ports.ArtifactInfo, error) {
	return m.Info, m.Err
}

var _ ports.ArtifactProber = (*Prober)(nil)
