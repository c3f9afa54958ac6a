// Package filesink provides a DebugSink implementation that writes debug
// artifacts to the file system.
package filesink

import (
	"fmt"
	"path/filepath"

	"github.com/user/camrec/pkg/ports"
)

// Sink implements ports.DebugSink by saving artifacts under a base directory.
type Sink struct {
	baseDir string
	fs      ports.FileSystem
}

// New creates a new file-based debug sink rooted at baseDir.
func New(baseDir string, fs ports.FileSystem) *Sink {
	return &Sink{
		baseDir: baseDir,
		fs:      fs,
	}
}

// Enabled returns true since this sink always writes output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveSessionJSON saves the recording session metadata as session.json.
func (s *Sink) SaveSessionJSON(data []byte) error {
	path := filepath.Join(s.baseDir, "session.json")
	if err := s.fs.WriteFile(path, data); err != nil {
		return fmt.Errorf("save session JSON: %w", err)
	}
	return nil
}

// SaveProbeJSON saves the artifact probe result as probe.json.
func (s *Sink) SaveProbeJSON(data []byte) error {
	path := filepath.Join(s.baseDir, "probe.json")
	if err := s.fs.WriteFile(path, data); err != nil {
		return fmt.Errorf("save probe JSON: %w", err)
	}
	return nil
}

// SaveRawFrame saves a sampled raw frame as frames/raw/frame-NNNN.jpg.
func (s *Sink) SaveRawFrame(index int, data []byte) error {
	name := fmt.Sprintf("frame-%04d.jpg", index)
	path := filepath.Join(s.baseDir, "frames", "raw", name)
	if err := s.fs.WriteFile(path, data); err != nil {
		return fmt.Errorf("save raw frame %d: %w", index, err)
	}
	return nil
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
