package gocvcam

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/user/camrec/pkg/ports"
)

// Fixed text anchors. Positions are pre-computed rather than measured per
// frame so the per-frame overlay cost stays constant.
var (
	timestampOrigin = image.Pt(10, 30)
	infoOrigin      = image.Pt(25, 40)
)

const infoLineStep = 40

var (
	timestampColor = color.RGBA{R: 255, G: 255, B: 255}
	infoColor      = color.RGBA{R: 255}
)

// Annotator implements ports.Annotator with gocv.PutText. Both methods
// mutate the frame's pixel buffer in place; this is the one sanctioned
// in-place mutation, avoiding a full frame copy per output frame.
type Annotator struct{}

// NewAnnotator creates an annotator.
func NewAnnotator() *Annotator {
	return &Annotator{}
}

// StampTimestamp draws the elapsed-time label at the fixed top-left anchor.
func (a *Annotator) StampTimestamp(frame ports.Frame, text string) {
	f, ok := frame.(*Frame)
	if !ok {
		return
	}
	gocv.PutText(&f.mat, text, timestampOrigin, gocv.FontHersheySimplex, 1, timestampColor, 2)
}

// StampInfo draws the preview info lines. The first line is emphasized; the
// remaining lines use a smaller face.
func (a *Annotator) StampInfo(frame ports.Frame, lines []string) {
	f, ok := frame.(*Frame)
	if !ok {
		return
	}
	for i, line := range lines {
		origin := image.Pt(infoOrigin.X, infoOrigin.Y+i*infoLineStep)
		scale, thickness := 0.8, 1
		if i == 0 {
			scale, thickness = 1, 2
		}
		gocv.PutTextWithParams(&f.mat, line, origin, gocv.FontHersheySimplex,
			scale, infoColor, thickness, gocv.LineAA, false)
	}
}

var _ ports.Annotator = (*Annotator)(nil)
