package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/yildizm/TrailMap/internal/geom"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trailmap.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	loader := NewLoader()
	if len(loader.configPaths) != 3 {
		t.Errorf("Expected 3 config paths, got %d", len(loader.configPaths))
	}

	cfg, err := loader.LoadConfig("")
	if err != nil {
		t.Fatalf("Failed to load default config: %v", err)
	}
	if cfg.Preview.DotCount != 10 {
		t.Errorf("Expected default dot count 10, got %d", cfg.Preview.DotCount)
	}
	if cfg.Output.DefaultFormat != "text" {
		t.Errorf("Expected default output format text, got %s", cfg.Output.DefaultFormat)
	}
	if got := cfg.ViewConfig().Curve.Tolerance; got != 1 {
		t.Errorf("Expected default tolerance 1, got %v", got)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfig(t, `version: "1.0"
canvas:
  width: 1000
anchors:
  end: {x: 0, y: 0}
preview:
  dot_count: 5
output:
  default_format: "svg"
  verbose: true
server:
  write_timeout: 3s
`)

	cfg, err := NewLoader().LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config from file: %v", err)
	}

	if cfg.Canvas.Width != 1000 || cfg.Canvas.Height != 600 {
		t.Errorf("Expected canvas 1000x600, got %vx%v", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if *cfg.Anchors.End != geom.Pt(0, 0) {
		t.Errorf("Expected explicit end anchor (0, 0), got %v", *cfg.Anchors.End)
	}
	if *cfg.Anchors.Start != geom.Pt(80, 620) {
		t.Errorf("Expected default start anchor, got %v", *cfg.Anchors.Start)
	}
	if cfg.Preview.DotCount != 5 {
		t.Errorf("Expected dot count 5, got %d", cfg.Preview.DotCount)
	}
	if cfg.Output.DefaultFormat != "svg" {
		t.Errorf("Expected output format svg, got %s", cfg.Output.DefaultFormat)
	}
	if !cfg.Output.IsVerbose() {
		t.Errorf("Expected verbose output")
	}
	if cfg.Server.WriteTimeout != 3*time.Second {
		t.Errorf("Expected write timeout 3s, got %v", cfg.Server.WriteTimeout)
	}
}

func TestLoadConfigExplicitZeroTolerance(t *testing.T) {
	path := writeConfig(t, "curve:\n  tolerance: 0\n")

	cfg, err := NewLoader().LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Curve.Tolerance == nil || *cfg.Curve.Tolerance != 0 {
		t.Fatalf("Expected explicit tolerance 0, got %v", cfg.Curve.Tolerance)
	}
	if got := cfg.ViewConfig().Curve.Tolerance; got != 0 {
		t.Errorf("Expected view tolerance 0, got %v", got)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{"unterminated string", "output:\n  default_format: \"json\n  verbose: true\n", "failed to parse YAML"},
		{"unknown theme", "output:\n  theme: neon\n", "configuration validation failed"},
		{"negative tolerance", "curve:\n  tolerance: -2\n", "configuration validation failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoader().LoadConfig(writeConfig(t, tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("Expected error containing %q, got %v", tt.errMsg, err)
			}
		})
	}
}

func TestMergeConfigsExplicitValues(t *testing.T) {
	dst := DefaultConfig()
	on := true
	dst.Output.Verbose = &on

	zero := 0.0
	off := false
	src := &Config{
		Curve:  CurveConfig{Tolerance: &zero},
		Output: OutputConfig{Verbose: &off},
	}
	mergeConfigs(dst, src)

	if *dst.Curve.Tolerance != 0 {
		t.Errorf("Expected explicit zero tolerance to win, got %v", *dst.Curve.Tolerance)
	}
	if dst.Output.IsVerbose() {
		t.Errorf("Expected explicit false verbose to win")
	}

	mergeConfigs(dst, &Config{})
	if dst.Curve.Tolerance == nil || dst.Output.Verbose == nil {
		t.Fatal("Expected omitted fields to leave values untouched")
	}
	if dst.Canvas.Width != geom.DefaultWidth || dst.Output.Theme != "default" {
		t.Errorf("Expected defaults to survive an empty merge, got %+v", dst)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	envVars := map[string]string{
		"TRAILMAP_CANVAS_HEIGHT":        "900",
		"TRAILMAP_ANCHORS_START":        "10, 880",
		"TRAILMAP_CURVE_CONTROL_OFFSET": "0,0",
		"TRAILMAP_CURVE_TOLERANCE":      "0",
		"TRAILMAP_PREVIEW_DOT_COUNT":    "25",
		"TRAILMAP_OUTPUT_VERBOSE":       "true",
		"TRAILMAP_SERVER_ADDRESS":       "127.0.0.1:9000",
	}
	for key, value := range envVars {
		t.Setenv(key, value)
	}

	cfg := DefaultConfig()
	if err := NewLoader().applyEnvOverrides(cfg); err != nil {
		t.Fatalf("Failed to apply env overrides: %v", err)
	}

	if cfg.Canvas.Height != 900 {
		t.Errorf("Expected canvas height 900, got %v", cfg.Canvas.Height)
	}
	if *cfg.Anchors.Start != geom.Pt(10, 880) {
		t.Errorf("Expected start anchor (10, 880), got %v", *cfg.Anchors.Start)
	}
	if *cfg.Curve.ControlOffset != geom.Pt(0, 0) {
		t.Errorf("Expected zero control offset, got %v", *cfg.Curve.ControlOffset)
	}
	if *cfg.Curve.Tolerance != 0 {
		t.Errorf("Expected zero tolerance, got %v", *cfg.Curve.Tolerance)
	}
	if cfg.Preview.DotCount != 25 {
		t.Errorf("Expected dot count 25, got %d", cfg.Preview.DotCount)
	}
	if !cfg.Output.IsVerbose() {
		t.Errorf("Expected verbose output")
	}
	if cfg.Server.Address != "127.0.0.1:9000" {
		t.Errorf("Expected server address 127.0.0.1:9000, got %s", cfg.Server.Address)
	}
}

func TestApplyEnvOverridesInvalidValues(t *testing.T) {
	tests := []struct {
		envVar string
		value  string
	}{
		{"TRAILMAP_PREVIEW_DOT_COUNT", "not-a-number"},
		{"TRAILMAP_OUTPUT_VERBOSE", "not-a-bool"},
		{"TRAILMAP_SERVER_WRITE_TIMEOUT", "not-a-duration"},
		{"TRAILMAP_CANVAS_WIDTH", "wide"},
		{"TRAILMAP_CURVE_TOLERANCE", "loose"},
		{"TRAILMAP_ANCHORS_END", "1;2"},
		{"TRAILMAP_ANCHORS_END", "1,up"},
	}

	for _, tt := range tests {
		t.Run(tt.envVar+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.envVar, tt.value)
			err := NewLoader().applyEnvOverrides(DefaultConfig())
			if err == nil || !strings.Contains(err.Error(), tt.envVar) {
				t.Errorf("Expected error naming %s, got %v", tt.envVar, err)
			}
		})
	}
}

func TestParsePoint(t *testing.T) {
	tests := []struct {
		in      string
		want    geom.Point
		wantErr bool
	}{
		{"80,620", geom.Pt(80, 620), false},
		{" -5.5 , 0 ", geom.Pt(-5.5, 0), false},
		{"80", geom.Point{}, true},
		{"1,2,3", geom.Point{}, true},
		{"x,1", geom.Point{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var got *geom.Point
			err := parsePoint(tt.in, &got)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parsePoint(%q) expected error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("parsePoint(%q) unexpected error: %v", tt.in, err)
			}
			if *got != tt.want {
				t.Errorf("parsePoint(%q) = %v, want %v", tt.in, *got, tt.want)
			}
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	if _, found := FindConfigFile(); found {
		t.Skip("a config file already exists on this machine")
	}

	projectConfig := "./.trailmap.yaml"
	if err := os.WriteFile(projectConfig, []byte("version: 1.0"), 0o600); err != nil {
		t.Fatalf("Failed to create project config: %v", err)
	}
	defer func() { _ = os.Remove(projectConfig) }()

	path, found := FindConfigFile()
	if !found || path != projectConfig {
		t.Errorf("Expected %s to be found, got %q (found=%v)", projectConfig, path, found)
	}
}

func TestValidateConfigPath(t *testing.T) {
	tests := []struct {
		path   string
		errMsg string
	}{
		{"config.yaml", ""},
		{"config.yml", ""},
		{"./configs/app.yaml", ""},
		{"../../../etc/passwd", "path traversal not allowed"},
		{"config.txt", "config file must have .yaml or .yml extension"},
		{"/etc/passwd.yaml", "access to system files not allowed"},
		{"/proc/version.yaml", "access to system files not allowed"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			err := validateConfigPath(tt.path)
			if tt.errMsg == "" {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("Expected error containing %q, got %v", tt.errMsg, err)
			}
		})
	}
}
