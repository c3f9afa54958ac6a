// Package orchestrator coordinates a full recording session: device
// selection, acquisition, optional preview, the recording itself, and the
// post-processing stages over the finished artifact.
package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/user/camrec/pkg/pipeline"
	"github.com/user/camrec/pkg/ports"
	"github.com/user/camrec/pkg/recorder"
)

// runDirStamp is the timestamp layout for per-run directory names.
const runDirStamp = "20060102_150405"

// Config contains all configuration for one recording session.
type Config struct {
	// Device
	DeviceIndex int // negative triggers discovery + interactive selection
	Width       int
	Height      int
	FPS         int

	// Output
	OutputRoot string
	BaseName   string
	Sequence   int

	// Session timing
	Preview        bool
	PreviewTimeout time.Duration
	MarkDelay      time.Duration // wait after Start before enabling the overlay
	RecordDuration time.Duration // wait after the mark before requesting stop; 0 lets Timeout end the session
	Timeout        time.Duration // hard bound on recording wall time

	// Post-processing
	Extract         bool
	Sheet           bool
	SheetColumns    int
	SheetMaxCells   int
	SheetThumbWidth int
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	sheet := pipeline.DefaultSheetInput()
	return Config{
		DeviceIndex: -1,
		Width:       1280,
		Height:      720,
		FPS:         60,

		OutputRoot: "Videos",
		BaseName:   "switchcam",
		Sequence:   1,

		Preview:        false,
		PreviewTimeout: 60 * time.Second,
		MarkDelay:      3 * time.Second,
		RecordDuration: 10 * time.Second,
		Timeout:        60 * time.Second,

		Extract:         true,
		Sheet:           false,
		SheetColumns:    sheet.Columns,
		SheetMaxCells:   sheet.MaxCells,
		SheetThumbWidth: sheet.ThumbWidth,
	}
}

// Orchestrator wires the ports and pipeline stages into the session sequence.
type Orchestrator struct {
	source    ports.VideoSource
	sink      ports.VideoSink
	annotator ports.Annotator
	display   ports.Display
	lister    ports.DeviceLister
	selector  ports.DeviceSelector

	probeStage   pipeline.Stage[pipeline.ProbeInput, pipeline.ProbeResult]
	extractStage pipeline.Stage[pipeline.ExtractInput, pipeline.ExtractResult]
	sheetStage   pipeline.Stage[pipeline.SheetInput, pipeline.SheetResult]

	fs     ports.FileSystem
	debug  ports.DebugSink
	logger ports.Logger
}

// New creates a new Orchestrator. The display may be nil when preview is
// disabled in every Run config.
func New(
	source ports.VideoSource,
	sink ports.VideoSink,
	annotator ports.Annotator,
	display ports.Display,
	lister ports.DeviceLister,
	selector ports.DeviceSelector,
	probeStage pipeline.Stage[pipeline.ProbeInput, pipeline.ProbeResult],
	extractStage pipeline.Stage[pipeline.ExtractInput, pipeline.ExtractResult],
	sheetStage pipeline.Stage[pipeline.SheetInput, pipeline.SheetResult],
	fs ports.FileSystem,
	debug ports.DebugSink,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		source:       source,
		sink:         sink,
		annotator:    annotator,
		display:      display,
		lister:       lister,
		selector:     selector,
		probeStage:   probeStage,
		extractStage: extractStage,
		sheetStage:   sheetStage,
		fs:           fs,
		debug:        debug,
		logger:       logger,
	}
}

// RunResult contains the results of a completed session.
type RunResult struct {
	RunDir      string
	DeviceIndex int
	Artifact    recorder.Artifact
	Probe       ports.ArtifactInfo

	// Extraction output
	Extracted int
	StillDir  string

	// Contact sheet output, empty when the sheet was not requested
	SheetPath string
}

// Run executes the complete session sequence.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	o.logger.Info("Starting recording session")

	// 1. Run directory, one timestamp-named subdirectory per run
	runDir := filepath.Join(config.OutputRoot, time.Now().Format(runDirStamp))
	if err := o.fs.MkdirAll(runDir); err != nil {
		return RunResult{}, fmt.Errorf("create run directory %s: %w", runDir, err)
	}
	o.logger.Info("Run directory: %s", runDir)

	// 2. Device selection
	index := config.DeviceIndex
	if index < 0 {
		devices, err := o.lister.ListDevices(ctx)
		if err != nil {
			return RunResult{}, fmt.Errorf("list devices: %w", err)
		}
		index, err = o.selector.SelectDevice(devices)
		if err != nil {
			return RunResult{}, fmt.Errorf("select device: %w", err)
		}
	}

	// 3. Acquire the camera
	actual, err := o.source.Open(ports.CameraConfig{
		DeviceIndex: index,
		Width:       config.Width,
		Height:      config.Height,
		FPS:         config.FPS,
	})
	if err != nil {
		return RunResult{}, err
	}
	defer o.source.Release()

	ctrl := recorder.New(o.source, o.sink, o.annotator, o.debug, o.logger)

	// 4. Optional bounded preview
	if config.Preview {
		err := ctrl.RunPreview(recorder.PreviewOptions{
			Display:     o.display,
			Timeout:     config.PreviewTimeout,
			DeviceIndex: index,
			Actual:      actual,
		})
		if err != nil {
			return RunResult{}, fmt.Errorf("preview: %w", err)
		}
	}

	// 5. Record
	err = ctrl.Start(recorder.SessionParams{
		Dir:      runDir,
		BaseName: config.BaseName,
		Sequence: config.Sequence,
		Timeout:  config.Timeout,
		Actual:   actual,
	})
	if err != nil {
		return RunResult{}, err
	}

	// Context cancellation becomes a stop request; harmless once the loop
	// has already exited.
	watchCtx, cancelWatch := context.WithCancel(ctx)
	defer cancelWatch()
	go func() {
		<-watchCtx.Done()
		ctrl.RequestStop()
	}()

	if wait(ctx, config.MarkDelay) {
		ctrl.EnableTimestamp()
	}
	if config.RecordDuration > 0 {
		wait(ctx, config.RecordDuration)
		ctrl.RequestStop()
	}

	artifact, err := ctrl.Join()
	if err != nil {
		return RunResult{}, err
	}
	o.logger.Info("Session completed: %s (%d frames)", artifact.RecordName, artifact.FrameCount)

	result := RunResult{
		RunDir:      runDir,
		DeviceIndex: index,
		Artifact:    artifact,
	}

	if o.debug.Enabled() {
		if data, err := json.MarshalIndent(artifact, "", "  "); err == nil {
			o.debug.SaveSessionJSON(data)
		}
	}

	// 6. Probe the finished container
	probe, err := o.probeStage.Execute(ctx, pipeline.ProbeInput{ArtifactPath: artifact.Path})
	if err != nil {
		return result, fmt.Errorf("probe stage: %w", err)
	}
	result.Probe = probe.Info

	if o.debug.Enabled() {
		if data, err := json.MarshalIndent(probe.Info, "", "  "); err == nil {
			o.debug.SaveProbeJSON(data)
		}
	}

	// 7. Slice the artifact into stills
	if config.Extract {
		stillDir := filepath.Join(runDir, artifact.RecordName)
		extracted, err := o.extractStage.Execute(ctx, pipeline.ExtractInput{
			ArtifactPath: artifact.Path,
			TargetDir:    stillDir,
			RecordName:   artifact.RecordName,
		})
		if err != nil {
			return result, fmt.Errorf("extract stage: %w", err)
		}
		result.Extracted = extracted.FrameCount
		result.StillDir = stillDir

		// 8. Optional contact sheet over the extracted stills
		if config.Sheet && extracted.FrameCount > 0 {
			sheetPath := filepath.Join(runDir, artifact.RecordName+"_sheet.png")
			sheet, err := o.sheetStage.Execute(ctx, pipeline.SheetInput{
				StillPaths: extracted.Files,
				OutputPath: sheetPath,
				Title:      artifact.RecordName,
				Columns:    config.SheetColumns,
				MaxCells:   config.SheetMaxCells,
				ThumbWidth: config.SheetThumbWidth,
			})
			if err != nil {
				return result, fmt.Errorf("sheet stage: %w", err)
			}
			result.SheetPath = sheet.Path
		}
	}

	o.logger.Info("Output saved to %s", runDir)
	return result, nil
}

// wait sleeps for d unless the context is cancelled first. It reports whether
// the full duration elapsed.
func wait(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}
