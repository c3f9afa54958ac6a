// Package overlay implements the elapsed-time overlay engine: the label
// formatter and the lazily anchored clock that drives it.
package overlay

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatElapsed renders a non-negative elapsed duration in milliseconds as
// HH:MM:SS.mmm. Plain division and modulo decomposition; no calendar or
// timezone semantics.
func FormatElapsed(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	seconds, millis := ms/1000, ms%1000
	hours, remainder := seconds/3600, seconds%3600
	minutes, secs := remainder/60, remainder%60
	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, secs, millis)
}

// ParseElapsed converts an HH:MM:SS.mmm label back to milliseconds. It is the
// arithmetic inverse of FormatElapsed for all non-negative inputs.
func ParseElapsed(s string) (int64, error) {
	main, msPart, ok := strings.Cut(s, ".")
	if !ok {
		return 0, fmt.Errorf("parse elapsed %q: missing millisecond part", s)
	}
	parts := strings.Split(main, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("parse elapsed %q: expected HH:MM:SS.mmm", s)
	}
	h, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse elapsed %q: hours: %w", s, err)
	}
	m, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse elapsed %q: minutes: %w", s, err)
	}
	sec, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse elapsed %q: seconds: %w", s, err)
	}
	ms, err := strconv.ParseInt(msPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse elapsed %q: milliseconds: %w", s, err)
	}
	return ((h*3600+m*60+sec)*1000 + ms), nil
}

// Clock is the lazily anchored elapsed clock behind the on-frame timestamp.
// The anchor is not the moment marking was requested but the instant of the
// first labeled frame, so the first label always reads 00:00:00.0xx.
//
// Clock is used from the recording goroutine only; enabling and disabling
// happen through the controller's atomic flags, not here.
type Clock struct {
	anchor time.Time
}

// Reset clears the anchor so the next ElapsedLabel call becomes time zero.
func (c *Clock) Reset() {
	c.anchor = time.Time{}
}

// Anchored reports whether the clock has seen its first labeled frame.
func (c *Clock) Anchored() bool {
	return !c.anchor.IsZero()
}

// ElapsedLabel returns the label for a frame captured at now, anchoring the
// clock at now on the first call after a Reset.
func (c *Clock) ElapsedLabel(now time.Time) string {
	if c.anchor.IsZero() {
		c.anchor = now
	}
	return FormatElapsed(now.Sub(c.anchor).Milliseconds())
}
