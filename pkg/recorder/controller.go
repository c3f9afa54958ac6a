// Package recorder implements the recording session lifecycle: the state
// machine around device acquisition, the capture/encode loop on its own
// goroutine, and the cross-goroutine stop and timestamp-mark signals.
package recorder

import (
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/user/camrec/pkg/overlay"
	"github.com/user/camrec/pkg/ports"
)

// filenameStamp is the timestamp layout in artifact names.
const filenameStamp = "20060102_150405"

// rawSampleEvery controls how often the debug sink receives a pre-overlay
// frame during recording.
const rawSampleEvery = 30

// SessionParams configures one recording invocation. A controller runs a
// single session; create a new controller to record again.
type SessionParams struct {
	// Dir is the run directory the artifact is written into.
	Dir string

	// BaseName distinguishes recordings, e.g. a test case name.
	BaseName string

	// Sequence distinguishes multiple recordings sharing a base name.
	Sequence int

	// Timeout bounds the recording wall time. The frame that crosses the
	// threshold is still written before the loop exits.
	Timeout time.Duration

	// Config is used to (re)open the device when the source is not
	// already open at Start.
	Config ports.CameraConfig

	// Actual holds the negotiated parameters of an already-open source.
	// Ignored when the controller has to open the device itself.
	Actual ports.ActualParams
}

// Artifact describes the container file a finished session produced. It is
// trustworthy only after Join has returned.
type Artifact struct {
	Path       string
	RecordName string
	Width      int
	Height     int
	FPS        float64
	FrameCount int
	Duration   time.Duration
}

// Controller orchestrates a bounded-duration, externally cancellable capture
// loop. Exactly one goroutine runs the loop; the only cross-goroutine state
// is the atomic stop flag and the timestamp-mark generation counter.
type Controller struct {
	source    ports.VideoSource
	sink      ports.VideoSink
	annotator ports.Annotator
	debug     ports.DebugSink
	logger    ports.Logger

	state   atomic.Int32
	stop    atomic.Bool
	markGen atomic.Uint64

	started  atomic.Bool
	done     chan struct{}
	artifact Artifact
	loopErr  error
}

// New creates a controller in the idle state.
func New(source ports.VideoSource, sink ports.VideoSink, annotator ports.Annotator, debug ports.DebugSink, logger ports.Logger) *Controller {
	return &Controller{
		source:    source,
		sink:      sink,
		annotator: annotator,
		debug:     debug,
		logger:    logger.WithComponent("recorder"),
		done:      make(chan struct{}),
	}
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	return State(c.state.Load())
}

func (c *Controller) transition(to State) {
	from := State(c.state.Swap(int32(to)))
	if from != to {
		c.logger.Debug("State %s -> %s", from, to)
	}
}

// Start acquires the device if needed, derives the artifact name, and
// launches the recording loop on its own goroutine. It returns immediately;
// loop errors surface through Join.
func (c *Controller) Start(p SessionParams) error {
	if !c.started.CompareAndSwap(false, true) {
		return fmt.Errorf("recorder: session already started")
	}

	c.transition(StateOpening)
	actual := p.Actual
	if !c.source.IsOpen() {
		c.logger.Warn("Camera is not opened, trying to open it")
		a, err := c.source.Open(p.Config)
		if err != nil {
			c.transition(StateClosed)
			close(c.done)
			c.loopErr = fmt.Errorf("open device for recording: %w", err)
			return c.loopErr
		}
		actual = a
	}

	// The filename timestamp is captured once and reused for both the real
	// path and the "saved as" log line, so the two can never diverge
	// across a second boundary.
	recordName := fmt.Sprintf("%s_%s_%d", p.BaseName, time.Now().Format(filenameStamp), p.Sequence)
	path := filepath.Join(p.Dir, recordName+".mp4")

	c.stop.Store(false)
	c.markGen.Store(0)
	c.transition(StateRecording)

	go c.run(p, actual, recordName, path)
	return nil
}

// EnableTimestamp turns on the elapsed-time overlay. The next frame the loop
// labels becomes time zero; frames already written are unaffected. Safe to
// call at any point while recording, including repeatedly to re-anchor.
func (c *Controller) EnableTimestamp() {
	c.markGen.Add(1)
	c.logger.Info("Timestamp mark enabled")
}

// RequestStop signals the loop to exit after the frame it is currently
// handling. It is the sole stop signal between caller and loop and does not
// wait for the loop to observe it.
func (c *Controller) RequestStop() {
	c.stop.Store(true)
}

// Join blocks until the recording goroutine has fully exited and returns the
// finished artifact. The artifact must not be read before Join returns.
// Joining a controller that was never started is an error, not a deadlock.
func (c *Controller) Join() (Artifact, error) {
	if !c.started.Load() {
		return Artifact{}, fmt.Errorf("recorder: join before start")
	}
	<-c.done
	return c.artifact, c.loopErr
}

// run is the recording loop body. It owns the sink for the whole session and
// finalizes it on every exit path, keeping partial artifacts on failure.
func (c *Controller) run(p SessionParams, actual ports.ActualParams, recordName, path string) {
	defer close(c.done)
	defer c.transition(StateClosed)

	if err := c.sink.Open(path, actual.Width, actual.Height, float64(actual.FPS)); err != nil {
		c.loopErr = fmt.Errorf("open video sink %s: %w", path, err)
		return
	}
	defer c.sink.Close()

	c.logger.Info("Start recording")
	start := time.Now()

	var clock overlay.Clock
	var seenGen uint64
	frames := 0

	for {
		frame, err := c.source.ReadFrame()
		if err != nil {
			// A torn frame boundary cannot be resumed mid-file, so a
			// read failure ends the session with the partial artifact.
			c.transition(StateStopping)
			c.loopErr = fmt.Errorf("capture frame %d: %w", frames, err)
			break
		}

		if c.debug.Enabled() && frames%rawSampleEvery == 0 {
			c.saveRawFrame(frames, frame)
		}

		gen := c.markGen.Load()
		if gen != seenGen {
			clock.Reset()
			seenGen = gen
		}
		if gen > 0 {
			c.annotator.StampTimestamp(frame, clock.ElapsedLabel(time.Now()))
		}

		if err := c.sink.WriteFrame(frame); err != nil {
			frame.Close()
			c.transition(StateStopping)
			c.loopErr = fmt.Errorf("write frame %d: %w", frames, err)
			break
		}
		frames++
		frame.Close()

		// Edge-triggered exit check, once per frame. The frame that
		// crossed the threshold has already been written.
		if c.stop.Load() || time.Since(start) >= p.Timeout {
			c.transition(StateStopping)
			c.logger.Info("Stop record")
			break
		}
	}

	c.artifact = Artifact{
		Path:       path,
		RecordName: recordName,
		Width:      actual.Width,
		Height:     actual.Height,
		FPS:        float64(actual.FPS),
		FrameCount: frames,
		Duration:   time.Since(start),
	}
	c.logger.Info("Video saved as: %s.mp4 (%d frames)", recordName, frames)
}

func (c *Controller) saveRawFrame(index int, frame ports.Frame) {
	enc, ok := frame.(ports.FrameEncoder)
	if !ok {
		return
	}
	data, err := enc.EncodeJPEG()
	if err != nil {
		c.logger.Debug("Encode raw frame %d: %s", index, err)
		return
	}
	if err := c.debug.SaveRawFrame(index, data); err != nil {
		c.logger.Debug("Save raw frame %d: %s", index, err)
	}
}
