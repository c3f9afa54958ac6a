// Package integration contains integration tests wiring the real session
// sequence through the orchestrator with the hardware edges mocked out.
package integration

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/user/camrec/pkg/adapters/ggrenderer"
	"github.com/user/camrec/pkg/adapters/logger"
	"github.com/user/camrec/pkg/mocks"
	"github.com/user/camrec/pkg/orchestrator"
	"github.com/user/camrec/pkg/ports"
	"github.com/user/camrec/pkg/stages/extract"
	"github.com/user/camrec/pkg/stages/probe"
	"github.com/user/camrec/pkg/stages/sheet"
)

// encodedTestJPEG returns a small real JPEG so the sheet stage can decode
// what the extraction stage "wrote".
func encodedTestJPEG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 64, 48))
	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 4), G: uint8(y * 5), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("encode test JPEG: %v", err)
	}
	return buf.Bytes()
}

// TestSession_RecordProbeExtractSheet drives the full orchestrator sequence:
// record with a mock camera, probe with a mock prober, slice the artifact
// with a mock reader, then compose a real contact sheet with the gg renderer.
func TestSession_RecordProbeExtractSheet(t *testing.T) {
	log := logger.NewNoop()
	fs := mocks.NewFileSystem()
	jpegData := encodedTestJPEG(t)

	source := &mocks.VideoSource{}
	sink := &mocks.VideoSink{}
	annotator := &mocks.Annotator{}

	reader := &mocks.VideoReader{Frames: 12}
	stills := &mocks.StillWriter{
		WriteJPEGFunc: func(path string, frame ports.Frame) error {
			return fs.WriteFile(path, jpegData)
		},
	}
	prober := &mocks.Prober{Info: ports.ArtifactInfo{
		Codec: "mp4v", Width: 640, Height: 480, SampleCount: 12, DurationSec: 0.4,
	}}

	orch := orchestrator.New(
		source, sink, annotator, &mocks.Display{},
		&mocks.DeviceLister{}, &mocks.DeviceSelector{},
		probe.New(prober, log),
		extract.New(reader, stills, fs, log),
		sheet.New(ggrenderer.New(), fs, log),
		fs,
		mocks.NewDebugSink(false),
		log,
	)

	cfg := orchestrator.DefaultConfig()
	cfg.DeviceIndex = 0
	cfg.OutputRoot = "out"
	cfg.BaseName = "itest"
	cfg.MarkDelay = 5 * time.Millisecond
	cfg.RecordDuration = 20 * time.Millisecond
	cfg.Timeout = 5 * time.Second
	cfg.Sheet = true
	cfg.SheetColumns = 3
	cfg.SheetMaxCells = 6
	cfg.SheetThumbWidth = 120

	result, err := orch.Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("session run: %v", err)
	}

	// Recording produced a named artifact inside the run directory.
	if result.Artifact.FrameCount == 0 {
		t.Error("no frames recorded")
	}
	if !strings.HasPrefix(result.Artifact.RecordName, "itest_") {
		t.Errorf("record name = %q", result.Artifact.RecordName)
	}
	if sink.WrittenFrames() != result.Artifact.FrameCount {
		t.Errorf("sink wrote %d frames, artifact says %d", sink.WrittenFrames(), result.Artifact.FrameCount)
	}

	// The overlay was enabled mid-session and labels start at zero.
	stamps := annotator.StampedTexts()
	if len(stamps) == 0 {
		t.Fatal("no timestamp labels stamped")
	}
	if !strings.HasPrefix(stamps[0], "00:00:00.0") {
		t.Errorf("first label = %q, want a 00:00:00.0xx label", stamps[0])
	}

	// Probe results surfaced.
	if result.Probe.SampleCount != 12 {
		t.Errorf("probe samples = %d", result.Probe.SampleCount)
	}

	// Extraction sliced every reader frame into the per-record directory.
	if result.Extracted != 12 {
		t.Errorf("extracted %d stills, want 12", result.Extracted)
	}
	wantStill := filepath.Join(result.StillDir, result.Artifact.RecordName+"_frame_count_0.jpg")
	if _, ok := fs.Files()[wantStill]; !ok {
		t.Errorf("missing first still %s", wantStill)
	}

	// The contact sheet is a real PNG composed from the stills.
	sheetData, ok := fs.Files()[result.SheetPath]
	if !ok {
		t.Fatalf("missing contact sheet %s", result.SheetPath)
	}
	if !bytes.HasPrefix(sheetData, []byte("\x89PNG")) {
		t.Error("contact sheet is not a PNG")
	}

	if source.ReleaseCount() != 1 {
		t.Errorf("camera released %d times, want 1", source.ReleaseCount())
	}
}
