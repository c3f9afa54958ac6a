package sheet

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"reflect"
	"testing"

	"github.com/user/camrec/pkg/adapters/logger"
	"github.com/user/camrec/pkg/mocks"
	"github.com/user/camrec/pkg/pipeline"
	"github.com/user/camrec/pkg/ports"
)

func stillPaths(n int) []string {
	paths := make([]string, n)
	for i := range paths {
		paths[i] = fmt.Sprintf("/run/r/r_frame_count_%d.jpg", i)
	}
	return paths
}

func testStage(fs *mocks.FileSystem) (*Stage, *mocks.Canvas) {
	canvas := &mocks.Canvas{}
	renderer := &mocks.Renderer{
		CreateCanvasFunc: func(w, h int, bg color.Color) ports.Canvas {
			return canvas
		},
		DecodeImageFunc: func(data []byte, format ports.ImageFormat) (image.Image, error) {
			return image.NewRGBA(image.Rect(0, 0, 640, 480)), nil
		},
		EncodeImageFunc: func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
			return []byte("png"), nil
		},
	}
	return New(renderer, fs, logger.NewNoop()), canvas
}

func TestSampleIndices(t *testing.T) {
	tests := []struct {
		n, max int
		want   []int
	}{
		{3, 16, []int{0, 1, 2}},
		{5, 5, []int{0, 1, 2, 3, 4}},
		{100, 1, []int{0}},
		{100, 4, []int{0, 33, 66, 99}},
		{9, 3, []int{0, 4, 8}},
	}
	for _, tt := range tests {
		got := sampleIndices(tt.n, tt.max)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("sampleIndices(%d, %d) = %v, want %v", tt.n, tt.max, got, tt.want)
		}
	}
}

func TestStage_Execute(t *testing.T) {
	fs := mocks.NewFileSystem()
	for _, p := range stillPaths(40) {
		if err := fs.WriteFile(p, []byte("jpeg")); err != nil {
			t.Fatal(err)
		}
	}
	stage, canvas := testStage(fs)

	input := pipeline.DefaultSheetInput()
	input.StillPaths = stillPaths(40)
	input.OutputPath = "/run/r/r_sheet.png"
	input.Title = "r"

	result, err := stage.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if result.Cells != input.MaxCells {
		t.Errorf("cells = %d, want %d", result.Cells, input.MaxCells)
	}
	if result.Path != input.OutputPath {
		t.Errorf("path = %q", result.Path)
	}
	if _, ok := fs.Files()[input.OutputPath]; !ok {
		t.Error("sheet PNG was not written")
	}
	if canvas.Images != input.MaxCells {
		t.Errorf("drew %d thumbnails, want %d", canvas.Images, input.MaxCells)
	}
	// Title plus one label per cell; first and last frames always sampled.
	if len(canvas.Texts) != input.MaxCells+1 {
		t.Fatalf("drew %d texts, want %d", len(canvas.Texts), input.MaxCells+1)
	}
	if canvas.Texts[0] != "r" {
		t.Errorf("header = %q, want title", canvas.Texts[0])
	}
	if canvas.Texts[1] != "frame 0" {
		t.Errorf("first label = %q, want frame 0", canvas.Texts[1])
	}
	if canvas.Texts[len(canvas.Texts)-1] != "frame 39" {
		t.Errorf("last label = %q, want frame 39", canvas.Texts[len(canvas.Texts)-1])
	}
}

func TestStage_Execute_NoStills(t *testing.T) {
	stage, _ := testStage(mocks.NewFileSystem())
	input := pipeline.DefaultSheetInput()
	input.OutputPath = "/run/sheet.png"
	if _, err := stage.Execute(context.Background(), input); err == nil {
		t.Fatal("expected error for empty still list")
	}
}
