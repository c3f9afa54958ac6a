package recorder

import (
	"fmt"
	"time"

	"github.com/user/camrec/pkg/ports"
)

// quitKey ends the preview early.
const quitKey = 'q'

// PreviewOptions configures the bounded live preview.
type PreviewOptions struct {
	// Display renders frames and polls the early-exit key.
	Display ports.Display

	// Timeout bounds the preview; the on-frame countdown runs toward it.
	Timeout time.Duration

	// DeviceIndex and Actual are shown in the info overlay.
	DeviceIndex int
	Actual      ports.ActualParams
}

// RunPreview shows the live camera image with a visible countdown so the lens
// can be adjusted before recording. It blocks the calling goroutine until the
// countdown expires or the quit key is pressed. Must be called before Start.
func (c *Controller) RunPreview(opts PreviewOptions) error {
	if c.started.Load() {
		return fmt.Errorf("recorder: preview after recording started")
	}
	c.transition(StatePreview)
	defer c.transition(StateIdle)
	defer opts.Display.Close()

	info := fmt.Sprintf("Camera ID: %d", opts.DeviceIndex)
	params := fmt.Sprintf("Frame Info: %dx%d@%dfps",
		opts.Actual.Width, opts.Actual.Height, opts.Actual.FPS)

	start := time.Now()
	for {
		elapsed := time.Since(start)
		remaining := opts.Timeout - elapsed
		if remaining < 0 {
			remaining = 0
		}
		countdown := fmt.Sprintf("Countdown Clock: %02d:%02d",
			int(remaining.Seconds())/60, int(remaining.Seconds())%60)

		frame, err := c.source.ReadFrame()
		if err != nil {
			return fmt.Errorf("preview frame: %w", err)
		}

		c.annotator.StampInfo(frame, []string{
			info,
			params,
			countdown,
			`Enter "q" to close windows`,
		})
		showErr := opts.Display.Show(frame)
		frame.Close()
		if showErr != nil {
			return fmt.Errorf("show preview frame: %w", showErr)
		}

		if opts.Display.WaitKey(1) == quitKey || elapsed > opts.Timeout {
			c.logger.Debug("Preview finished after %s", elapsed.Round(time.Millisecond))
			return nil
		}
	}
}
