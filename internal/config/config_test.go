package config

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/yildizm/TrailMap/internal/geom"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Version != "1.0" {
		t.Errorf("Expected version 1.0, got %s", cfg.Version)
	}
	if cfg.Canvas.Width != 800 || cfg.Canvas.Height != 600 {
		t.Errorf("Expected 800x600 canvas, got %vx%v", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if *cfg.Anchors.Start != geom.Pt(80, 620) {
		t.Errorf("Expected start anchor (80, 620), got %v", *cfg.Anchors.Start)
	}
	if *cfg.Curve.ControlOffset != geom.Pt(50, 450) {
		t.Errorf("Expected control offset (50, 450), got %v", *cfg.Curve.ControlOffset)
	}
	if cfg.Preview.DotCount != 10 {
		t.Errorf("Expected dot count 10, got %d", cfg.Preview.DotCount)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should be valid: %v", err)
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid config",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "invalid output format",
			mutate:  func(c *Config) { c.Output.DefaultFormat = "xml" },
			wantErr: true,
			errMsg:  "invalid output format: xml (must be one of: json, text, markdown, svg, csv)",
		},
		{
			name:    "invalid color mode",
			mutate:  func(c *Config) { c.Output.ColorMode = "sometimes" },
			wantErr: true,
			errMsg:  "invalid color mode",
		},
		{
			name:    "invalid theme",
			mutate:  func(c *Config) { c.Output.Theme = "neon" },
			wantErr: true,
			errMsg:  "invalid theme",
		},
		{
			name:    "zero canvas",
			mutate:  func(c *Config) { c.Canvas.Width = 0 },
			wantErr: true,
			errMsg:  "canvas width and height must be greater than 0",
		},
		{
			name:    "negative tolerance",
			mutate:  func(c *Config) { tol := -1.0; c.Curve.Tolerance = &tol },
			wantErr: true,
			errMsg:  "tolerance must be non-negative",
		},
		{
			name:    "zero dot count",
			mutate:  func(c *Config) { c.Preview.DotCount = 0 },
			wantErr: true,
			errMsg:  "dot_count must be greater than 0",
		},
		{
			name:    "negative write timeout",
			mutate:  func(c *Config) { c.Server.WriteTimeout = -1 },
			wantErr: true,
			errMsg:  "write_timeout must be non-negative",
		},
		{
			name:    "coincident anchors are valid",
			mutate:  func(c *Config) { pt := geom.Pt(1, 1); c.Anchors.Start, c.Anchors.End = &pt, &pt },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error but got none")
				} else if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("Expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestViewConfig(t *testing.T) {
	cfg := DefaultConfig()
	end := geom.Pt(700, 40)
	cfg.Anchors.End = &end
	cfg.Preview.DotCount = 3

	vc := cfg.ViewConfig()
	if vc.Anchors.End != end {
		t.Errorf("Expected end anchor %v, got %v", end, vc.Anchors.End)
	}
	if vc.Anchors.Start != geom.Pt(80, 620) {
		t.Errorf("Expected default start anchor, got %v", vc.Anchors.Start)
	}
	if vc.DotCount != 3 {
		t.Errorf("Expected dot count 3, got %d", vc.DotCount)
	}
	if vc.Curve.ControlOffset != geom.Pt(50, 450) {
		t.Errorf("Expected control offset (50, 450), got %v", vc.Curve.ControlOffset)
	}
}

func TestSampleConfigsParse(t *testing.T) {
	for name, content := range map[string]string{"full": SampleConfig(), "minimal": MinimalSampleConfig()} {
		t.Run(name, func(t *testing.T) {
			var cfg Config
			if err := yaml.Unmarshal([]byte(content), &cfg); err != nil {
				t.Fatalf("sample config does not parse: %v", err)
			}
			merged := DefaultConfig()
			mergeConfigs(merged, &cfg)
			if err := merged.Validate(); err != nil {
				t.Errorf("sample config is invalid: %v", err)
			}
		})
	}
}
