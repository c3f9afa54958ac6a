package pipeline

import (
	"github.com/user/camrec/pkg/ports"
)

// =============================================================================
// Probe Stage Types
// =============================================================================

// ProbeInput contains parameters for artifact inspection.
type ProbeInput struct {
	ArtifactPath string
}

// ProbeResult contains the probed container metadata.
type ProbeResult struct {
	Info ports.ArtifactInfo
}

// =============================================================================
// Extract Stage Types
// =============================================================================

// ExtractInput contains parameters for frame extraction.
type ExtractInput struct {
	// ArtifactPath is the finished container file to decompose.
	ArtifactPath string

	// TargetDir receives the numbered still images. Created if absent.
	TargetDir string

	// RecordName is the artifact base name without extension; stills are
	// named {RecordName}_frame_count_{n}.jpg.
	RecordName string
}

// ExtractResult contains the extraction output.
type ExtractResult struct {
	// FrameCount is the total number of stills written.
	FrameCount int

	// Files lists the written still paths in frame order.
	Files []string
}

// =============================================================================
// Sheet Stage Types
// =============================================================================

// SheetInput contains parameters for contact-sheet composition.
type SheetInput struct {
	// StillPaths are the extracted frame images in order.
	StillPaths []string

	// OutputPath is where the composed sheet PNG is written.
	OutputPath string

	// Title is drawn in the sheet header, typically the record name.
	Title string

	// Columns is the thumbnail grid width in cells.
	Columns int

	// MaxCells caps how many stills are sampled into the grid.
	MaxCells int

	// ThumbWidth is the width of each thumbnail in pixels.
	ThumbWidth int
}

// DefaultSheetInput returns SheetInput with default values.
func DefaultSheetInput() SheetInput {
	return SheetInput{
		Columns:    4,
		MaxCells:   16,
		ThumbWidth: 240,
	}
}

// SheetResult contains the composed sheet location and geometry.
type SheetResult struct {
	Path   string
	Width  int
	Height int
	Cells  int
}
