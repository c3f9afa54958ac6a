package ports

// VideoSink abstracts the container writer a recording session streams into.
type VideoSink interface {
	// Open creates the container file with the negotiated dimensions and
	// frame rate. Must be called before the first WriteFrame.
	Open(path string, width, height int, fps float64) error

	// WriteFrame appends one frame to the container.
	WriteFrame(frame Frame) error

	// Close finalizes the container. Safe to call twice.
	Close() error
}

// VideoReader abstracts sequential decode of a finished artifact.
type VideoReader interface {
	// Open opens the artifact for sequential reading.
	Open(path string) error

	// ReadFrame decodes the next frame. It returns ok=false at end of
	// stream, which is clean termination, not an error.
	ReadFrame() (frame Frame, ok bool, err error)

	// Close releases the reader. Safe to call twice.
	Close() error
}

// StillWriter persists a single frame as an image file.
type StillWriter interface {
	// WriteJPEG encodes the frame as JPEG at the given path.
	WriteJPEG(path string, frame Frame) error
}

// FrameEncoder is implemented by frames that can serialize themselves to
// JPEG, used for debug sampling of raw frames.
type FrameEncoder interface {
	EncodeJPEG() ([]byte, error)
}

// Annotator draws text onto a frame in place. In-place mutation is the one
// sanctioned mutation in the design; it avoids a full frame copy per output
// frame.
type Annotator interface {
	// StampTimestamp draws the elapsed-time label at a fixed, pre-computed
	// position. The position is not measured per call, for performance
	// predictability.
	StampTimestamp(frame Frame, text string)

	// StampInfo draws preview info lines (device id, negotiated params,
	// countdown, quit hint) at fixed positions.
	StampInfo(frame Frame, lines []string)
}

// Display abstracts the preview window.
type Display interface {
	// Show renders the frame in the preview window.
	Show(frame Frame) error

	// WaitKey polls for a pressed key for up to the given number of
	// milliseconds. Returns -1 when no key was pressed.
	WaitKey(ms int) int

	// Close destroys the window. Safe to call twice.
	Close() error
}

// ArtifactInfo describes a probed container file.
type ArtifactInfo struct {
	Codec       string  // Sample entry fourcc, e.g. "mp4v"
	Width       int     // Track width in pixels
	Height      int     // Track height in pixels
	SampleCount int     // Number of video samples in the track
	DurationSec float64 // Track duration in seconds
}

// ArtifactProber inspects a finished container without decoding frames.
type ArtifactProber interface {
	Probe(path string) (ArtifactInfo, error)
}
