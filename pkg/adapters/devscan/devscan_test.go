package devscan

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestListDevices_OrderedByDeviceNumber(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"video10", "video0", "video2"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}

	s := NewWithPattern(filepath.Join(dir, "video*"))
	devices, err := s.ListDevices(context.Background())
	if err != nil {
		t.Fatalf("list devices: %v", err)
	}
	if len(devices) != 3 {
		t.Fatalf("found %d devices, want 3", len(devices))
	}
	wantOrder := []string{"video0", "video2", "video10"}
	for i, d := range devices {
		if d.Index != i {
			t.Errorf("device %d has index %d", i, d.Index)
		}
		if filepath.Base(d.Name) != wantOrder[i] {
			t.Errorf("device %d = %s, want %s", i, filepath.Base(d.Name), wantOrder[i])
		}
	}
}

func TestListDevices_NoneFound(t *testing.T) {
	s := NewWithPattern(filepath.Join(t.TempDir(), "video*"))
	devices, err := s.ListDevices(context.Background())
	if err != nil {
		t.Fatalf("list devices: %v", err)
	}
	if len(devices) != 0 {
		t.Errorf("found %d devices in empty dir", len(devices))
	}
}

func TestDeviceNumber(t *testing.T) {
	tests := []struct {
		path string
		want int
	}{
		{"/dev/video0", 0},
		{"/dev/video12", 12},
		{"/dev/weird", -1},
	}
	for _, tt := range tests {
		if got := deviceNumber(tt.path); got != tt.want {
			t.Errorf("deviceNumber(%q) = %d, want %d", tt.path, got, tt.want)
		}
	}
}
