// Package nullsink provides a no-op DebugSink implementation.
package nullsink

import "github.com/user/camrec/pkg/ports"

// Sink implements ports.DebugSink by discarding all output.
type Sink struct{}

// New creates a new no-op debug sink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false since this sink discards everything.
func (s *Sink) Enabled() bool {
	return false
}

// SaveSessionJSON does nothing.
func (s *Sink) SaveSessionJSON(data []byte) error {
	return nil
}

// SaveProbeJSON does nothing.
func (s *Sink) SaveProbeJSON(data []byte) error {
	return nil
}

// SaveRawFrame does nothing.
func (s *Sink) SaveRawFrame(index int, data []byte) error {
	return nil
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
