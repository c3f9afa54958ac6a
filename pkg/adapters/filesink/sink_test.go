package filesink

import (
	"path/filepath"
	"testing"

	"github.com/user/camrec/pkg/mocks"
)

// testBaseDir is a platform-independent base directory for tests
var testBaseDir = filepath.Join("debug")

func TestSink_Enabled(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs)

	if !sink.Enabled() {
		t.Error("expected Enabled to return true")
	}
}

func TestSink_SaveSessionJSON(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs)

	data := []byte(`{"record_name": "switchcam_20260101_120000_1"}`)
	err := sink.SaveSessionJSON(data)
	if err != nil {
		t.Fatalf("SaveSessionJSON failed: %v", err)
	}

	expectedPath := filepath.Join(testBaseDir, "session.json")
	saved, ok := fs.Files()[expectedPath]
	if !ok {
		t.Fatalf("expected file to be saved at %s", expectedPath)
	}
	if string(saved) != string(data) {
		t.Errorf("expected %q, got %q", data, saved)
	}
}

func TestSink_SaveProbeJSON(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs)

	data := []byte(`{"codec": "mp4v"}`)
	err := sink.SaveProbeJSON(data)
	if err != nil {
		t.Fatalf("SaveProbeJSON failed: %v", err)
	}

	expectedPath := filepath.Join(testBaseDir, "probe.json")
	if _, ok := fs.Files()[expectedPath]; !ok {
		t.Errorf("expected file to be saved at %s", expectedPath)
	}
}

func TestSink_SaveRawFrame(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs)

	data := []byte{0xFF, 0xD8, 0xFF} // JPEG header
	err := sink.SaveRawFrame(0, data)
	if err != nil {
		t.Fatalf("SaveRawFrame failed: %v", err)
	}

	expectedPath := filepath.Join(testBaseDir, "frames", "raw", "frame-0000.jpg")
	if _, ok := fs.Files()[expectedPath]; !ok {
		t.Errorf("expected file to be saved at %s", expectedPath)
	}
}

func TestSink_MultipleRawFrames(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs)

	for i := 0; i < 10; i++ {
		err := sink.SaveRawFrame(i, []byte{0xFF})
		if err != nil {
			t.Fatalf("SaveRawFrame %d failed: %v", i, err)
		}
	}

	if got := len(fs.Files()); got != 10 {
		t.Errorf("expected 10 files, got %d", got)
	}
}
