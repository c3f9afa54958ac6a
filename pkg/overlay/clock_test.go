package overlay

import (
	"regexp"
	"testing"
	"time"
)

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		ms   int64
		want string
	}{
		{0, "00:00:00.000"},
		{1, "00:00:00.001"},
		{999, "00:00:00.999"},
		{1000, "00:00:01.000"},
		{59999, "00:00:59.999"},
		{60000, "00:01:00.000"},
		{3600000, "01:00:00.000"},
		{3661001, "01:01:01.001"},
		{86399999, "23:59:59.999"},
		{360000000, "100:00:00.000"},
	}
	for _, tt := range tests {
		if got := FormatElapsed(tt.ms); got != tt.want {
			t.Errorf("FormatElapsed(%d) = %q, want %q", tt.ms, got, tt.want)
		}
	}
}

func TestFormatElapsed_Pattern(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{2,}:\d{2}:\d{2}\.\d{3}$`)
	for _, ms := range []int64{0, 7, 1234, 59061, 3661001, 43200000} {
		got := FormatElapsed(ms)
		if !pattern.MatchString(got) {
			t.Errorf("FormatElapsed(%d) = %q does not match HH:MM:SS.mmm", ms, got)
		}
	}
}

func TestParseElapsed_RoundTrip(t *testing.T) {
	for _, ms := range []int64{0, 1, 999, 1000, 61001, 3661001, 86399999} {
		parsed, err := ParseElapsed(FormatElapsed(ms))
		if err != nil {
			t.Fatalf("ParseElapsed(FormatElapsed(%d)): %v", ms, err)
		}
		if parsed != ms {
			t.Errorf("round trip for %d gave %d", ms, parsed)
		}
	}
}

func TestParseElapsed_Invalid(t *testing.T) {
	for _, s := range []string{"", "00:00:00", "0:0:0.0x", "aa:bb:cc.ddd", "00:00.000"} {
		if _, err := ParseElapsed(s); err == nil {
			t.Errorf("ParseElapsed(%q): expected error", s)
		}
	}
}

func TestClock_AnchorsOnFirstLabel(t *testing.T) {
	var c Clock
	base := time.Date(2024, 4, 26, 21, 41, 0, 0, time.UTC)

	// The first label after a reset is always time zero, regardless of how
	// much wall time passed before the frame arrived.
	c.Reset()
	if c.Anchored() {
		t.Fatal("clock anchored before first label")
	}
	if got := c.ElapsedLabel(base.Add(5 * time.Second)); got != "00:00:00.000" {
		t.Errorf("first label = %q, want 00:00:00.000", got)
	}
	if !c.Anchored() {
		t.Fatal("clock not anchored after first label")
	}
	if got := c.ElapsedLabel(base.Add(5*time.Second + 1250*time.Millisecond)); got != "00:00:01.250" {
		t.Errorf("second label = %q, want 00:00:01.250", got)
	}

	// Re-enabling marking resets the anchor to the next frame.
	c.Reset()
	if got := c.ElapsedLabel(base.Add(30 * time.Second)); got != "00:00:00.000" {
		t.Errorf("label after reset = %q, want 00:00:00.000", got)
	}
}
