// Package main provides the CLI entry point for camrec.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/camrec/pkg/adapters/consoleprompt"
	"github.com/user/camrec/pkg/adapters/devscan"
	"github.com/user/camrec/pkg/adapters/filesink"
	"github.com/user/camrec/pkg/adapters/ggrenderer"
	"github.com/user/camrec/pkg/adapters/gocvcam"
	"github.com/user/camrec/pkg/adapters/logger"
	"github.com/user/camrec/pkg/adapters/mp4probe"
	"github.com/user/camrec/pkg/adapters/nullsink"
	"github.com/user/camrec/pkg/adapters/osfilesystem"
	"github.com/user/camrec/pkg/config"
	"github.com/user/camrec/pkg/orchestrator"
	"github.com/user/camrec/pkg/pipeline"
	"github.com/user/camrec/pkg/ports"
	"github.com/user/camrec/pkg/stages/extract"
	"github.com/user/camrec/pkg/stages/probe"
	"github.com/user/camrec/pkg/stages/sheet"
	"github.com/user/camrec/pkg/summarizer"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := &cli.App{
		Name:    "camrec",
		Usage:   l10n.T("Record a USB camera with an elapsed-time overlay and slice the result into frames"),
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"C"},
				Usage:   l10n.T("YAML configuration file"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "info",
				Usage:   l10n.T("Log level (debug, info, warn, error)"),
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"Q"},
				Usage:   l10n.T("Suppress all log output"),
			},
		},
		Commands: []*cli.Command{
			recordCommand(),
			extractCommand(),
			devicesCommand(),
		},
	}

	if err := app.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger builds the logger from the global flags.
func newLogger(c *cli.Context) ports.Logger {
	if c.Bool("quiet") {
		return logger.NewNoop()
	}
	return logger.NewConsole(ports.ParseLogLevel(c.String("log-level")))
}

// loadConfig reads the YAML file when given and applies flag overrides.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return cfg, fmt.Errorf("load config %s: %w", path, err)
		}
		cfg = loaded
	}

	if c.IsSet("device") {
		cfg.DeviceIndex = c.Int("device")
	}
	if c.IsSet("width") {
		cfg.Width = c.Int("width")
	}
	if c.IsSet("height") {
		cfg.Height = c.Int("height")
	}
	if c.IsSet("fps") {
		cfg.FPS = c.Int("fps")
	}
	if c.IsSet("out") {
		cfg.OutputRoot = c.String("out")
	}
	if c.IsSet("name") {
		cfg.BaseName = c.String("name")
	}
	if c.IsSet("sequence") {
		cfg.Sequence = c.Int("sequence")
	}
	if c.IsSet("preview") {
		cfg.Preview = c.Bool("preview")
	}
	if c.IsSet("mark-delay") {
		cfg.MarkDelaySec = c.Int("mark-delay")
	}
	if c.IsSet("duration") {
		cfg.RecordDurationSec = c.Int("duration")
	}
	if c.IsSet("timeout") {
		cfg.TimeoutSec = c.Int("timeout")
	}
	if c.IsSet("no-extract") {
		cfg.Extract = !c.Bool("no-extract")
	}
	if c.IsSet("sheet") {
		cfg.Sheet = c.Bool("sheet")
	}
	if c.IsSet("debug") {
		cfg.Debug = c.Bool("debug")
	}
	if c.IsSet("debug-dir") {
		cfg.DebugDir = c.String("debug-dir")
	}

	return cfg, cfg.Validate()
}

func recordCommand() *cli.Command {
	return &cli.Command{
		Name:  "record",
		Usage: l10n.T("Record the camera and post-process the artifact"),
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "device", Aliases: []string{"d"}, Value: -1, Usage: l10n.T("Capture device index (negative prompts for a device)")},
			&cli.IntFlag{Name: "width", Aliases: []string{"W"}, Usage: l10n.T("Requested frame width")},
			&cli.IntFlag{Name: "height", Aliases: []string{"H"}, Usage: l10n.T("Requested frame height")},
			&cli.IntFlag{Name: "fps", Usage: l10n.T("Requested frame rate")},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: l10n.T("Root directory for run output")},
			&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: l10n.T("Base name for the recording")},
			&cli.IntFlag{Name: "sequence", Usage: l10n.T("Sequence number in the artifact name")},
			&cli.BoolFlag{Name: "preview", Aliases: []string{"p"}, Usage: l10n.T("Show a live preview before recording")},
			&cli.IntFlag{Name: "mark-delay", Usage: l10n.T("Seconds to record before enabling the timestamp overlay")},
			&cli.IntFlag{Name: "duration", Usage: l10n.T("Seconds to keep recording after the mark (0 = run until timeout)")},
			&cli.IntFlag{Name: "timeout", Usage: l10n.T("Hard recording timeout in seconds")},
			&cli.BoolFlag{Name: "no-extract", Usage: l10n.T("Skip slicing the artifact into frames")},
			&cli.BoolFlag{Name: "sheet", Usage: l10n.T("Compose a contact sheet from the extracted frames")},
			&cli.BoolFlag{Name: "debug", Usage: l10n.T("Save intermediate outputs for debugging")},
			&cli.StringFlag{Name: "debug-dir", Value: "./debug", Usage: l10n.T("Directory for debug output")},
		},
		Action: runRecord,
	}
}

func runRecord(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	log := newLogger(c)

	fs := osfilesystem.New()
	renderer := ggrenderer.New()

	var debugSink ports.DebugSink
	if cfg.Debug {
		if err := fs.MkdirAll(cfg.DebugDir); err != nil {
			return fmt.Errorf("create debug directory: %w", err)
		}
		debugSink = filesink.New(cfg.DebugDir, fs)
	} else {
		debugSink = nullsink.New()
	}

	orch := orchestrator.New(
		gocvcam.NewSource(log),
		gocvcam.NewSink(),
		gocvcam.NewAnnotator(),
		gocvcam.NewDisplay("camrec preview"),
		devscan.New(),
		consoleprompt.New(os.Stdin, os.Stdout, log),
		probe.New(mp4probe.New(), log),
		extract.New(gocvcam.NewReader(), gocvcam.NewStillWriter(), fs, log),
		sheet.New(renderer, fs, log),
		fs,
		debugSink,
		log,
	)

	result, err := orch.Run(c.Context, cfg.ToOrchestratorConfig())
	if err != nil {
		return err
	}

	summary := summarizer.NewBuilder().
		WithDevice(summarizer.DeviceInfo{
			Index:           result.DeviceIndex,
			RequestedWidth:  cfg.Width,
			RequestedHeight: cfg.Height,
			RequestedFPS:    cfg.FPS,
			ActualWidth:     result.Artifact.Width,
			ActualHeight:    result.Artifact.Height,
			ActualFPS:       int(result.Artifact.FPS),
		}).
		WithArtifact(summarizer.ArtifactInfo{
			RecordName: result.Artifact.RecordName,
			Path:       result.Artifact.Path,
			FrameCount: result.Artifact.FrameCount,
			Duration:   result.Artifact.Duration,
			FPS:        result.Artifact.FPS,
		}).
		WithProbe(summarizer.ProbeInfo{
			Codec:       result.Probe.Codec,
			Width:       result.Probe.Width,
			Height:      result.Probe.Height,
			SampleCount: result.Probe.SampleCount,
			DurationSec: result.Probe.DurationSec,
		}).
		WithExtraction(summarizer.ExtractionInfo{
			FrameCount: result.Extracted,
			StillDir:   result.StillDir,
			SheetPath:  result.SheetPath,
		}).
		Build()

	writer := summarizer.NewWriter(summarizer.NewMarkdownFormatter(), fs)
	return writer.Write(filepath.Join(result.RunDir, "summary.md"), summary)
}

func extractCommand() *cli.Command {
	return &cli.Command{
		Name:      "extract",
		Usage:     l10n.T("Slice an existing recording into numbered frames"),
		ArgsUsage: "ARTIFACT",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: l10n.T("Directory for the extracted frames (default: next to the artifact)")},
			&cli.BoolFlag{Name: "sheet", Usage: l10n.T("Compose a contact sheet from the extracted frames")},
		},
		Action: runExtract,
	}
}

func runExtract(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one artifact path")
	}
	artifactPath := c.Args().First()
	log := newLogger(c)
	fs := osfilesystem.New()

	recordName := strings.TrimSuffix(filepath.Base(artifactPath), filepath.Ext(artifactPath))
	targetDir := c.String("out")
	if targetDir == "" {
		targetDir = filepath.Join(filepath.Dir(artifactPath), recordName)
	}

	// Container sanity check before slicing.
	probeStage := probe.New(mp4probe.New(), log)
	if _, err := probeStage.Execute(c.Context, pipeline.ProbeInput{ArtifactPath: artifactPath}); err != nil {
		return err
	}

	extractStage := extract.New(gocvcam.NewReader(), gocvcam.NewStillWriter(), fs, log)
	result, err := extractStage.Execute(c.Context, pipeline.ExtractInput{
		ArtifactPath: artifactPath,
		TargetDir:    targetDir,
		RecordName:   recordName,
	})
	if err != nil {
		return err
	}

	if c.Bool("sheet") && result.FrameCount > 0 {
		input := pipeline.DefaultSheetInput()
		input.StillPaths = result.Files
		input.OutputPath = filepath.Join(filepath.Dir(artifactPath), recordName+"_sheet.png")
		input.Title = recordName
		sheetStage := sheet.New(ggrenderer.New(), fs, log)
		if _, err := sheetStage.Execute(c.Context, input); err != nil {
			return err
		}
	}
	return nil
}

func devicesCommand() *cli.Command {
	return &cli.Command{
		Name:   "devices",
		Usage:  l10n.T("List available capture devices"),
		Action: runDevices,
	}
}

func runDevices(c *cli.Context) error {
	devices, err := devscan.New().ListDevices(c.Context)
	if err != nil {
		return err
	}
	if len(devices) == 0 {
		fmt.Println(l10n.T("No capture devices found"))
		return nil
	}
	for _, d := range devices {
		fmt.Printf("%d : %s\n", d.Index, d.Name)
	}
	return nil
}
