package gocvcam

import (
	"fmt"

	"gocv.io/x/gocv"

	"github.com/user/camrec/pkg/ports"
)

// Display implements ports.Display on a gocv highgui window. The window is
// created on the first Show so that a session without preview never opens one.
type Display struct {
	title  string
	window *gocv.Window
	closed bool
}

// NewDisplay creates a preview display with the given window title.
func NewDisplay(title string) *Display {
	return &Display{title: title}
}

// Show renders the frame in the preview window.
func (d *Display) Show(frame ports.Frame) error {
	if d.closed {
		return fmt.Errorf("display closed")
	}
	f, ok := frame.(*Frame)
	if !ok {
		return fmt.Errorf("show: frame is %T, not a gocv frame", frame)
	}
	if d.window == nil {
		d.window = gocv.NewWindow(d.title)
	}
	d.window.IMShow(f.mat)
	return nil
}

// WaitKey polls for a pressed key; -1 when none.
func (d *Display) WaitKey(ms int) int {
	if d.window == nil {
		return -1
	}
	return d.window.WaitKey(ms)
}

// Close destroys the window. Safe to call twice.
func (d *Display) Close() error {
	if d.window == nil {
		d.closed = true
		return nil
	}
	err := d.window.Close()
	d.window = nil
	d.closed = true
	if err != nil {
		return fmt.Errorf("close display: %w", err)
	}
	return nil
}

var _ ports.Display = (*Display)(nil)
