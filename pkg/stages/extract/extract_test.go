package extract

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/user/camrec/pkg/adapters/logger"
	"github.com/user/camrec/pkg/mocks"
	"github.com/user/camrec/pkg/pipeline"
	"github.com/user/camrec/pkg/ports"
)

func TestStage_Execute(t *testing.T) {
	reader := &mocks.VideoReader{Frames: 5}
	stills := &mocks.StillWriter{}
	fs := mocks.NewFileSystem()
	stage := New(reader, stills, fs, logger.NewNoop())

	input := pipeline.ExtractInput{
		ArtifactPath: "/run/clip_20240426_214100_1.mp4",
		TargetDir:    "/run/clip_20240426_214100_1",
		RecordName:   "clip_20240426_214100_1",
	}
	result, err := stage.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if result.FrameCount != 5 {
		t.Errorf("frame count = %d, want 5", result.FrameCount)
	}
	if len(result.Files) != 5 {
		t.Fatalf("files = %d, want 5", len(result.Files))
	}
	// Sequentially numbered, zero-based, no gaps.
	for i, path := range result.Files {
		want := filepath.Join(input.TargetDir,
			fmt.Sprintf("clip_20240426_214100_1_frame_count_%d.jpg", i))
		if path != want {
			t.Errorf("file %d = %q, want %q", i, path, want)
		}
	}
	if len(stills.Paths) != 5 {
		t.Errorf("stills written = %d, want 5", len(stills.Paths))
	}
	if !fs.HasDir(input.TargetDir) {
		t.Error("target directory was not created")
	}
	if reader.Closes != 1 {
		t.Errorf("reader closed %d times, want 1", reader.Closes)
	}
}

func TestStage_Execute_CannotOpenArtifact(t *testing.T) {
	reader := &mocks.VideoReader{
		OpenFunc: func(path string) error {
			return fmt.Errorf("container is garbage")
		},
	}
	stills := &mocks.StillWriter{}
	stage := New(reader, stills, mocks.NewFileSystem(), logger.NewNoop())

	_, err := stage.Execute(context.Background(), pipeline.ExtractInput{
		ArtifactPath: "/run/missing.mp4",
		TargetDir:    "/run/missing",
		RecordName:   "missing",
	})
	if !errors.Is(err, ports.ErrCannotOpenArtifact) {
		t.Fatalf("error = %v, want ErrCannotOpenArtifact", err)
	}
	// Reported, not retried, and no partial output files.
	if len(stills.Paths) != 0 {
		t.Errorf("%d stills written for unreadable artifact, want 0", len(stills.Paths))
	}
}

func TestStage_Execute_StillWriteFailureKeepsPartial(t *testing.T) {
	reader := &mocks.VideoReader{Frames: 10}
	stills := &mocks.StillWriter{
		WriteJPEGFunc: func(path string, frame ports.Frame) error {
			if len(path) > 0 && filepath.Base(path) == "r_frame_count_3.jpg" {
				return fmt.Errorf("disk full")
			}
			return nil
		},
	}
	stage := New(reader, stills, mocks.NewFileSystem(), logger.NewNoop())

	result, err := stage.Execute(context.Background(), pipeline.ExtractInput{
		ArtifactPath: "/run/r.mp4",
		TargetDir:    "/run/r",
		RecordName:   "r",
	})
	if err == nil {
		t.Fatal("expected write failure to surface")
	}
	if len(result.Files) != 3 {
		t.Errorf("partial result has %d files, want 3", len(result.Files))
	}
	// Reader released on the failure path too.
	if reader.Closes != 1 {
		t.Errorf("reader closed %d times, want 1", reader.Closes)
	}
}

func TestStage_Execute_EmptyArtifact(t *testing.T) {
	reader := &mocks.VideoReader{Frames: 0}
	stage := New(reader, &mocks.StillWriter{}, mocks.NewFileSystem(), logger.NewNoop())

	result, err := stage.Execute(context.Background(), pipeline.ExtractInput{
		ArtifactPath: "/run/empty.mp4",
		TargetDir:    "/run/empty",
		RecordName:   "empty",
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if result.FrameCount != 0 {
		t.Errorf("frame count = %d, want 0", result.FrameCount)
	}
}
