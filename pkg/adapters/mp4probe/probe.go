// Package mp4probe inspects finished MP4 artifacts without decoding frames.
package mp4probe

import (
	"fmt"
	"io"
	"os"

	"github.com/Eyevinn/mp4ff/mp4"

	"github.com/user/camrec/pkg/ports"
)

// Prober implements ports.ArtifactProber by parsing the ISO BMFF container.
type Prober struct{}

// New creates a new Prober.
func New() *Prober {
	return &Prober{}
}

// Probe parses the artifact and reports the video track metadata.
func (p *Prober) Probe(path string) (ports.ArtifactInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return ports.ArtifactInfo{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return ProbeReader(f)
}

// ProbeReader parses MP4 data from an io.ReadSeeker.
func ProbeReader(reader io.ReadSeeker) (ports.ArtifactInfo, error) {
	mp4File, err := mp4.DecodeFile(reader)
	if err != nil {
		return ports.ArtifactInfo{}, fmt.Errorf("decode mp4: %w", err)
	}

	moov := mp4File.Moov
	if mp4File.IsFragmented() && mp4File.Init != nil {
		moov = mp4File.Init.Moov
	}
	if moov == nil {
		return ports.ArtifactInfo{}, fmt.Errorf("no moov box found")
	}

	for _, trak := range moov.Traks {
		info, ok := videoTrackInfo(trak)
		if ok {
			return info, nil
		}
	}
	return ports.ArtifactInfo{}, fmt.Errorf("no video track found")
}

// videoTrackInfo extracts metadata from a track, reporting ok=false for
// non-video or malformed tracks.
func videoTrackInfo(trak *mp4.TrakBox) (ports.ArtifactInfo, bool) {
	if trak.Mdia == nil || trak.Mdia.Hdlr == nil || trak.Mdia.Hdlr.HandlerType != "vide" {
		return ports.ArtifactInfo{}, false
	}
	if trak.Mdia.Minf == nil || trak.Mdia.Minf.Stbl == nil || trak.Mdia.Minf.Stbl.Stsd == nil {
		return ports.ArtifactInfo{}, false
	}

	stsd := trak.Mdia.Minf.Stbl.Stsd
	if len(stsd.Children) == 0 {
		return ports.ArtifactInfo{}, false
	}

	info := ports.ArtifactInfo{
		Codec: stsd.Children[0].Type(),
	}
	if trak.Tkhd != nil {
		// Tkhd dimensions are 16.16 fixed point.
		info.Width = int(uint32(trak.Tkhd.Width) >> 16)
		info.Height = int(uint32(trak.Tkhd.Height) >> 16)
	}
	if stsz := trak.Mdia.Minf.Stbl.Stsz; stsz != nil {
		info.SampleCount = int(stsz.SampleNumber)
	}
	if mdhd := trak.Mdia.Mdhd; mdhd != nil && mdhd.Timescale > 0 {
		info.DurationSec = float64(mdhd.Duration) / float64(mdhd.Timescale)
	}
	return info, true
}

var _ ports.ArtifactProber = (*Prober)(nil)
