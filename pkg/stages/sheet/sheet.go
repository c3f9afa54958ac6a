// Package sheet implements the contact-sheet stage: a thumbnail grid sampled
// from the extracted stills, for reviewing a recording at a glance.
package sheet

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/user/camrec/pkg/pipeline"
	"github.com/user/camrec/pkg/ports"
)

// Fixed sheet geometry.
const (
	padding      = 10
	gap          = 8
	headerHeight = 36
	labelHeight  = 18
)

var (
	backgroundColor = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	cellColor       = color.RGBA{R: 50, G: 50, B: 50, A: 255}
	textColor       = color.White
)

// Stage composes extracted stills into one overview image.
type Stage struct {
	renderer ports.Renderer
	fs       ports.FileSystem
	logger   ports.Logger
}

// New creates a new sheet stage.
func New(renderer ports.Renderer, fs ports.FileSystem, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		fs:       fs,
		logger:   logger.WithComponent("sheet"),
	}
}

// Execute samples up to MaxCells stills evenly across the recording, scales
// each to ThumbWidth, and writes the composed grid as PNG.
func (s *Stage) Execute(_ context.Context, input pipeline.SheetInput) (pipeline.SheetResult, error) {
	if len(input.StillPaths) == 0 {
		return pipeline.SheetResult{}, fmt.Errorf("no stills to compose")
	}
	if input.Columns < 1 || input.MaxCells < 1 || input.ThumbWidth < 1 {
		return pipeline.SheetResult{}, fmt.Errorf("invalid sheet geometry: %d columns, %d cells, %dpx thumbs",
			input.Columns, input.MaxCells, input.ThumbWidth)
	}

	indices := sampleIndices(len(input.StillPaths), input.MaxCells)
	thumbs := make([]image.Image, 0, len(indices))
	for _, idx := range indices {
		data, err := s.fs.ReadFile(input.StillPaths[idx])
		if err != nil {
			return pipeline.SheetResult{}, fmt.Errorf("read still %s: %w", input.StillPaths[idx], err)
		}
		img, err := s.renderer.DecodeImage(data, ports.FormatJPEG)
		if err != nil {
			return pipeline.SheetResult{}, fmt.Errorf("decode still %s: %w", input.StillPaths[idx], err)
		}
		thumbs = append(thumbs, img)
	}

	// All frames of one artifact share dimensions; derive the thumb height
	// from the first still's aspect ratio.
	bounds := thumbs[0].Bounds()
	thumbHeight := input.ThumbWidth * bounds.Dy() / bounds.Dx()

	cols := input.Columns
	if cols > len(thumbs) {
		cols = len(thumbs)
	}
	rows := (len(thumbs) + cols - 1) / cols
	cellHeight := thumbHeight + labelHeight
	width := padding*2 + cols*input.ThumbWidth + (cols-1)*gap
	height := padding*2 + headerHeight + rows*cellHeight + (rows-1)*gap

	canvas := s.renderer.CreateCanvas(width, height, backgroundColor)
	canvas.DrawText(input.Title, padding, padding+20, ports.TextStyle{
		FontSize: 16,
		Color:    textColor,
	})

	for i, thumb := range thumbs {
		col := i % cols
		row := i / cols
		x := padding + col*(input.ThumbWidth+gap)
		y := padding + headerHeight + row*(cellHeight+gap)

		canvas.DrawRect(x, y, input.ThumbWidth, cellHeight, cellColor)
		scaled := s.renderer.ResizeImage(thumb, input.ThumbWidth, thumbHeight)
		canvas.DrawImage(scaled, x, y)
		canvas.DrawText(fmt.Sprintf("frame %d", indices[i]), x+2, y+thumbHeight+13, ports.TextStyle{
			FontSize: 11,
			Color:    textColor,
		})
	}

	data, err := s.renderer.EncodeImage(canvas.ToImage(), ports.FormatPNG, 0)
	if err != nil {
		return pipeline.SheetResult{}, fmt.Errorf("encode sheet: %w", err)
	}
	if err := s.fs.WriteFile(input.OutputPath, data); err != nil {
		return pipeline.SheetResult{}, fmt.Errorf("write sheet %s: %w", input.OutputPath, err)
	}

	s.logger.Info("Contact sheet saved to %s (%d cells)", input.OutputPath, len(thumbs))
	return pipeline.SheetResult{
		Path:   input.OutputPath,
		Width:  width,
		Height: height,
		Cells:  len(thumbs),
	}, nil
}

// sampleIndices picks up to max indices spread evenly across n stills,
// always including the first and last frame.
func sampleIndices(n, max int) []int {
	if n <= max {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	}
	if max == 1 {
		return []int{0}
	}
	out := make([]int, max)
	for i := 0; i < max; i++ {
		out[i] = i * (n - 1) / (max - 1)
	}
	return out
}
