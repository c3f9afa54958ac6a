// Package probe implements the artifact inspection stage run between
// recording and extraction.
package probe

import (
	"context"
	"fmt"

	"github.com/user/camrec/pkg/pipeline"
	"github.com/user/camrec/pkg/ports"
)

// Stage sanity-checks a finished container and reports its track metadata
// without decoding any frames.
type Stage struct {
	prober ports.ArtifactProber
	logger ports.Logger
}

// New creates a new probe stage.
func New(prober ports.ArtifactProber, logger ports.Logger) *Stage {
	return &Stage{
		prober: prober,
		logger: logger.WithComponent("probe"),
	}
}

// Execute probes the artifact container.
func (s *Stage) Execute(_ context.Context, input pipeline.ProbeInput) (pipeline.ProbeResult, error) {
	info, err := s.prober.Probe(input.ArtifactPath)
	if err != nil {
		return pipeline.ProbeResult{}, fmt.Errorf("probe %s: %w", input.ArtifactPath, err)
	}
	s.logger.Info("Artifact %s: codec %s, %dx%d, %d samples, %.2fs",
		input.ArtifactPath, info.Codec, info.Width, info.Height, info.SampleCount, info.DurationSec)
	return pipeline.ProbeResult{Info: info}, nil
}
