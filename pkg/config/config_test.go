package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.DeviceIndex != -1 {
		t.Errorf("default device_index = %d, want -1 (interactive)", cfg.DeviceIndex)
	}
	if cfg.Width != 1280 || cfg.Height != 720 || cfg.FPS != 60 {
		t.Errorf("default capture params = %dx%d@%d", cfg.Width, cfg.Height, cfg.FPS)
	}
	if cfg.OutputRoot != "Videos" {
		t.Errorf("default output_root = %q", cfg.OutputRoot)
	}
	if cfg.TimeoutSec != 60 {
		t.Errorf("default timeout_sec = %d", cfg.TimeoutSec)
	}
	if !cfg.Extract {
		t.Error("extraction should be enabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	yaml := `
device_index: 2
width: 640
height: 480
fps: 30
base_name: smoke
record_duration_sec: 5
sheet: true
`
	path := filepath.Join(t.TempDir(), "camrec.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if cfg.DeviceIndex != 2 || cfg.Width != 640 || cfg.Height != 480 || cfg.FPS != 30 {
		t.Errorf("loaded capture params = %d/%dx%d@%d", cfg.DeviceIndex, cfg.Width, cfg.Height, cfg.FPS)
	}
	if cfg.BaseName != "smoke" {
		t.Errorf("base_name = %q", cfg.BaseName)
	}
	if cfg.RecordDurationSec != 5 {
		t.Errorf("record_duration_sec = %d", cfg.RecordDurationSec)
	}
	// Unset keys keep their defaults.
	if cfg.OutputRoot != "Videos" {
		t.Errorf("output_root default lost: %q", cfg.OutputRoot)
	}
	if cfg.SheetColumns != 4 {
		t.Errorf("sheet_columns default lost: %d", cfg.SheetColumns)
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"zero width", func(c *Config) { c.Width = 0 }, false},
		{"zero fps", func(c *Config) { c.FPS = 0 }, false},
		{"zero timeout", func(c *Config) { c.TimeoutSec = 0 }, false},
		{"negative mark delay", func(c *Config) { c.MarkDelaySec = -1 }, false},
		{"empty base name", func(c *Config) { c.BaseName = "" }, false},
		{"empty output root", func(c *Config) { c.OutputRoot = "" }, false},
		{"bad sheet geometry", func(c *Config) { c.Sheet = true; c.SheetColumns = 0 }, false},
		{"bad sheet geometry ignored when disabled", func(c *Config) { c.Sheet = false; c.SheetColumns = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestToOrchestratorConfig(t *testing.T) {
	cfg := Defaults()
	cfg.MarkDelaySec = 3
	cfg.RecordDurationSec = 10

	orch := cfg.ToOrchestratorConfig()
	if orch.MarkDelay != 3*time.Second {
		t.Errorf("mark delay = %s", orch.MarkDelay)
	}
	if orch.RecordDuration != 10*time.Second {
		t.Errorf("record duration = %s", orch.RecordDuration)
	}
	if orch.OutputRoot != cfg.OutputRoot || orch.BaseName != cfg.BaseName {
		t.Error("output settings not carried over")
	}
}
