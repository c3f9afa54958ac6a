// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/user/camrec/pkg/orchestrator"
	"gopkg.in/yaml.v3"
)

// Config represents the full configuration for camrec.
type Config struct {
	// Device
	DeviceIndex int `yaml:"device_index"`
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	FPS         int `yaml:"fps"`

	// Output
	OutputRoot string `yaml:"output_root"`
	BaseName   string `yaml:"base_name"`
	Sequence   int    `yaml:"sequence"`

	// Session timing (seconds)
	Preview           bool `yaml:"preview"`
	PreviewTimeoutSec int  `yaml:"preview_timeout_sec"`
	MarkDelaySec      int  `yaml:"mark_delay_sec"`
	RecordDurationSec int  `yaml:"record_duration_sec"`
	TimeoutSec        int  `yaml:"timeout_sec"`

	// Post-processing
	Extract         bool `yaml:"extract"`
	Sheet           bool `yaml:"sheet"`
	SheetColumns    int  `yaml:"sheet_columns"`
	SheetMaxCells   int  `yaml:"sheet_max_cells"`
	SheetThumbWidth int  `yaml:"sheet_thumb_width"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	orch := orchestrator.DefaultConfig()
	return Config{
		DeviceIndex: orch.DeviceIndex,
		Width:       orch.Width,
		Height:      orch.Height,
		FPS:         orch.FPS,

		OutputRoot: orch.OutputRoot,
		BaseName:   orch.BaseName,
		Sequence:   orch.Sequence,

		Preview:           orch.Preview,
		PreviewTimeoutSec: int(orch.PreviewTimeout / time.Second),
		MarkDelaySec:      int(orch.MarkDelay / time.Second),
		RecordDurationSec: int(orch.RecordDuration / time.Second),
		TimeoutSec:        int(orch.Timeout / time.Second),

		Extract:         orch.Extract,
		Sheet:           orch.Sheet,
		SheetColumns:    orch.SheetColumns,
		SheetMaxCells:   orch.SheetMaxCells,
		SheetThumbWidth: orch.SheetThumbWidth,

		DebugDir: "./debug",
	}
}

// LoadFromFile loads configuration from a YAML file on top of the defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks the configuration for values the session cannot run with.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid resolution %dx%d", c.Width, c.Height)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("invalid frame rate %d", c.FPS)
	}
	if c.TimeoutSec <= 0 {
		return fmt.Errorf("timeout_sec must be positive, got %d", c.TimeoutSec)
	}
	if c.RecordDurationSec < 0 || c.MarkDelaySec < 0 || c.PreviewTimeoutSec < 0 {
		return fmt.Errorf("session durations must not be negative")
	}
	if c.OutputRoot == "" {
		return fmt.Errorf("output_root must not be empty")
	}
	if c.BaseName == "" {
		return fmt.Errorf("base_name must not be empty")
	}
	if c.Sheet {
		if c.SheetColumns < 1 || c.SheetMaxCells < 1 || c.SheetThumbWidth < 1 {
			return fmt.Errorf("invalid sheet geometry %d columns, %d cells, %dpx thumbs",
				c.SheetColumns, c.SheetMaxCells, c.SheetThumbWidth)
		}
	}
	return nil
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
func (c Config) ToOrchestratorConfig() orchestrator.Config {
	return orchestrator.Config{
		DeviceIndex: c.DeviceIndex,
		Width:       c.Width,
		Height:      c.Height,
		FPS:         c.FPS,

		OutputRoot: c.OutputRoot,
		BaseName:   c.BaseName,
		Sequence:   c.Sequence,

		Preview:        c.Preview,
		PreviewTimeout: time.Duration(c.PreviewTimeoutSec) * time.Second,
		MarkDelay:      time.Duration(c.MarkDelaySec) * time.Second,
		RecordDuration: time.Duration(c.RecordDurationSec) * time.Second,
		Timeout:        time.Duration(c.TimeoutSec) * time.Second,

		Extract:         c.Extract,
		Sheet:           c.Sheet,
		SheetColumns:    c.SheetColumns,
		SheetMaxCells:   c.SheetMaxCells,
		SheetThumbWidth: c.SheetThumbWidth,
	}
}
