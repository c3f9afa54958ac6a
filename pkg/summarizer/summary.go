// Package summarizer provides summary generation for recording results.
package summarizer

import "time"

// Summary contains all data collected during a recording session.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Capture device information
	Device DeviceInfo

	// Recording artifact details
	Artifact ArtifactInfo

	// Container probe results
	Probe ProbeInfo

	// Post-processing output
	Extraction ExtractionInfo
}

// DeviceInfo contains information about the capture device.
type DeviceInfo struct {
	Index int

	// Requested capture parameters
	RequestedWidth  int
	RequestedHeight int
	RequestedFPS    int

	// Parameters the device actually negotiated
	ActualWidth  int
	ActualHeight int
	ActualFPS    int
}

// ArtifactInfo contains information about the recorded video file.
type ArtifactInfo struct {
	RecordName string
	Path       string
	FrameCount int
	Duration   time.Duration
	FPS        float64
}

// ProbeInfo contains the container metadata read back from the artifact.
type ProbeInfo struct {
	Codec       string
	Width       int
	Height      int
	SampleCount int
	DurationSec float64
}

// ExtractionInfo contains the frame extraction output.
type ExtractionInfo struct {
	FrameCount int
	StillDir   string
	SheetPath  string
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithDevice sets capture device information.
func (b *Builder) WithDevice(device DeviceInfo) *Builder {
	b.summary.Device = device
	return b
}

// WithArtifact sets recording artifact information.
func (b *Builder) WithArtifact(artifact ArtifactInfo) *Builder {
	b.summary.Artifact = artifact
	return b
}

// WithProbe sets container probe information.
func (b *Builder) WithProbe(probe ProbeInfo) *Builder {
	b.summary.Probe = probe
	return b
}

// WithExtraction sets post-processing information.
func (b *Builder) WithExtraction(extraction ExtractionInfo) *Builder {
	b.summary.Extraction = extraction
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
