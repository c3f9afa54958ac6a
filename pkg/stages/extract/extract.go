// Package extract implements the frame extraction stage: it decomposes a
// finished video artifact into numbered still images.
package extract

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/user/camrec/pkg/pipeline"
	"github.com/user/camrec/pkg/ports"
)

// Stage reads an artifact sequentially and materializes each decoded frame
// as a JPEG still on disk.
type Stage struct {
	reader ports.VideoReader
	stills ports.StillWriter
	fs     ports.FileSystem
	logger ports.Logger
}

// New creates a new extract stage.
func New(reader ports.VideoReader, stills ports.StillWriter, fs ports.FileSystem, logger ports.Logger) *Stage {
	return &Stage{
		reader: reader,
		stills: stills,
		fs:     fs,
		logger: logger.WithComponent("extract"),
	}
}

// Execute extracts every frame of the artifact into TargetDir, named with a
// zero-based, strictly increasing index. End of stream is clean termination.
// An artifact that cannot be opened fails immediately; a malformed container
// will not become readable on a second attempt, so nothing is retried.
func (s *Stage) Execute(ctx context.Context, input pipeline.ExtractInput) (pipeline.ExtractResult, error) {
	result := pipeline.ExtractResult{}

	if err := s.fs.MkdirAll(input.TargetDir); err != nil {
		return result, fmt.Errorf("create target dir %s: %w", input.TargetDir, err)
	}

	if err := s.reader.Open(input.ArtifactPath); err != nil {
		return result, fmt.Errorf("%w: %s: %v", ports.ErrCannotOpenArtifact, input.ArtifactPath, err)
	}
	defer s.reader.Close()

	count := 0
	for {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		frame, ok, err := s.reader.ReadFrame()
		if err != nil {
			return result, fmt.Errorf("decode frame %d: %w", count, err)
		}
		if !ok {
			break
		}

		path := filepath.Join(input.TargetDir,
			fmt.Sprintf("%s_frame_count_%d.jpg", input.RecordName, count))
		writeErr := s.stills.WriteJPEG(path, frame)
		frame.Close()
		if writeErr != nil {
			return result, fmt.Errorf("write still %s: %w", path, writeErr)
		}
		result.Files = append(result.Files, path)
		count++
	}

	result.FrameCount = count
	s.logger.Info("Record has been sliced: %s (%d frames)", input.TargetDir, count)
	return result, nil
}
