package probe

import (
	"context"
	"errors"
	"testing"

	"github.com/user/camrec/pkg/adapters/logger"
	"github.com/user/camrec/pkg/mocks"
	"github.com/user/camrec/pkg/pipeline"
	"github.com/user/camrec/pkg/ports"
)

func TestStage_Execute(t *testing.T) {
	prober := &mocks.Prober{
		Info: ports.ArtifactInfo{
			Codec: "mp4v", Width: 1280, Height: 720,
			SampleCount: 300, DurationSec: 10.0,
		},
	}
	stage := New(prober, logger.NewNoop())

	result, err := stage.Execute(context.Background(), pipeline.ProbeInput{ArtifactPath: "/run/a.mp4"})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if result.Info.Codec != "mp4v" || result.Info.SampleCount != 300 {
		t.Errorf("unexpected probe info: %+v", result.Info)
	}
}

func TestStage_Execute_Error(t *testing.T) {
	wantErr := errors.New("not an mp4")
	stage := New(&mocks.Prober{Err: wantErr}, logger.NewNoop())

	_, err := stage.Execute(context.Background(), pipeline.ProbeInput{ArtifactPath: "/run/a.mp4"})
	if !errors.Is(err, wantErr) {
		t.Fatalf("error = %v, want wrapped %v", err, wantErr)
	}
}
