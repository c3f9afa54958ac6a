package mocks

import (
	"sync"

	"github.com/user/camrec/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	SessionJSON []byte
	ProbeJSON   []byte
	RawFrames   map[int][]byte
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled:   enabled,
		RawFrames: make(map[int][]byte),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveSessionJSON(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SessionJSON = data
	return nil
}

func (m *DebugSink) SaveProbeJSON(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ProbeJSON = data
	return nil
}

func (m *DebugSink) SaveRawFrame(index int, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RawFrames[index] = data
	return nil
}

var _ ports.DebugSink = (*DebugSink)(nil)
