package recorder

// State is the lifecycle position of a recording controller.
type State int32

const (
	// StateIdle is the initial state before any device work.
	StateIdle State = iota
	// StateOpening covers device acquisition. A no-op transition when the
	// source is already open.
	StateOpening
	// StatePreview is the optional live preview window before recording.
	StatePreview
	// StateRecording is the active capture/encode loop.
	StateRecording
	// StateStopping is entered once the loop has observed a stop signal,
	// a timeout, or a terminal error, before the sink is finalized.
	StateStopping
	// StateClosed is terminal. The artifact may be trusted only after
	// Join has returned.
	StateClosed
)

// String returns the state name used in log lines.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateOpening:
		return "opening"
	case StatePreview:
		return "preview"
	case StateRecording:
		return "recording"
	case StateStopping:
		return "stopping"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}
