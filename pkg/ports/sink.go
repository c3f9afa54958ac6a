package ports

// DebugSink abstracts debug output for intermediate results.
// It allows saving intermediate processing results for debugging purposes.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveSessionJSON saves the recording session metadata as JSON.
	SaveSessionJSON(data []byte) error

	// SaveProbeJSON saves the artifact probe result as JSON.
	SaveProbeJSON(data []byte) error

	// SaveRawFrame saves a sampled raw frame captured during recording,
	// before the overlay was applied.
	SaveRawFrame(index int, data []byte) error
}
