package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yildizm/TrailMap/internal/geom"
)

// ConfigPaths lists config files from highest to lowest priority
var ConfigPaths = []string{
	"./.trailmap.yaml",
	"~/.config/trailmap/config.yaml",
	"/etc/trailmap/config.yaml",
}

// Loader resolves the effective configuration
type Loader struct {
	configPaths []string
}

// NewLoader creates a new config loader
func NewLoader() *Loader {
	return &Loader{
		configPaths: ConfigPaths,
	}
}

// LoadConfig layers, lowest first: defaults, the search-path files (or only
// customPath when given), then TRAILMAP_* environment variables. Flags are
// applied by the caller. The result is validated.
func (l *Loader) LoadConfig(customPath string) (*Config, error) {
	cfg := DefaultConfig()

	if customPath != "" {
		if err := validateConfigPath(customPath); err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		if err := l.loadFromFile(cfg, customPath); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", customPath, err)
		}
	} else {
		for i := len(l.configPaths) - 1; i >= 0; i-- {
			path := expandPath(l.configPaths[i])
			if !fileExists(path) {
				continue
			}
			// A broken system or user file should not stop the tool.
			if err := l.loadFromFile(cfg, path); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: Failed to load config from %s: %v\n", path, err)
			}
		}
	}

	if err := l.applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func (l *Loader) loadFromFile(cfg *Config, path string) error {
	// #nosec G304 - path comes from the search list or validateConfigPath
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var fileConfig Config
	if err := yaml.Unmarshal(data, &fileConfig); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	mergeConfigs(cfg, &fileConfig)
	return nil
}

// envOverride binds one TRAILMAP_* variable to a config field
type envOverride struct {
	name string
	set  func(value string) error
}

func envOverrides(cfg *Config) []envOverride {
	str := func(dst *string) func(string) error {
		return func(v string) error { *dst = v; return nil }
	}
	return []envOverride{
		{"TRAILMAP_CANVAS_WIDTH", func(v string) error { return parseFloat(v, &cfg.Canvas.Width) }},
		{"TRAILMAP_CANVAS_HEIGHT", func(v string) error { return parseFloat(v, &cfg.Canvas.Height) }},
		{"TRAILMAP_ANCHORS_START", func(v string) error { return parsePoint(v, &cfg.Anchors.Start) }},
		{"TRAILMAP_ANCHORS_END", func(v string) error { return parsePoint(v, &cfg.Anchors.End) }},
		{"TRAILMAP_CURVE_CONTROL_OFFSET", func(v string) error { return parsePoint(v, &cfg.Curve.ControlOffset) }},
		{"TRAILMAP_CURVE_TOLERANCE", func(v string) error { return parseOptionalFloat(v, &cfg.Curve.Tolerance) }},
		{"TRAILMAP_PREVIEW_DOT_COUNT", func(v string) error { return parseInt(v, &cfg.Preview.DotCount) }},
		{"TRAILMAP_OUTPUT_DEFAULT_FORMAT", str(&cfg.Output.DefaultFormat)},
		{"TRAILMAP_OUTPUT_COLOR_MODE", str(&cfg.Output.ColorMode)},
		{"TRAILMAP_OUTPUT_THEME", str(&cfg.Output.Theme)},
		{"TRAILMAP_OUTPUT_VERBOSE", func(v string) error { return parseOptionalBool(v, &cfg.Output.Verbose) }},
		{"TRAILMAP_SERVER_ADDRESS", str(&cfg.Server.Address)},
		{"TRAILMAP_SERVER_WRITE_TIMEOUT", func(v string) error { return parseDuration(v, &cfg.Server.WriteTimeout) }},
	}
}

func (l *Loader) applyEnvOverrides(cfg *Config) error {
	for _, o := range envOverrides(cfg) {
		value := os.Getenv(o.name)
		if value == "" {
			continue
		}
		if err := o.set(value); err != nil {
			return fmt.Errorf("invalid value for %s: %w", o.name, err)
		}
	}
	return nil
}

// GetConfigPaths returns the search paths with ~ expanded
func GetConfigPaths() []string {
	paths := make([]string, 0, len(ConfigPaths))
	for _, path := range ConfigPaths {
		paths = append(paths, expandPath(path))
	}
	return paths
}

// FindConfigFile returns the highest-priority config file that exists
func FindConfigFile() (string, bool) {
	for _, path := range GetConfigPaths() {
		if fileExists(path) {
			return path, true
		}
	}
	return "", false
}

// validateConfigPath rejects traversal, non-YAML files and system paths
func validateConfigPath(path string) error {
	cleanPath := filepath.Clean(path)
	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path traversal not allowed")
	}

	ext := strings.ToLower(filepath.Ext(cleanPath))
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("config file must have .yaml or .yml extension")
	}

	absPath, err := filepath.Abs(cleanPath)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}
	for _, prefix := range []string{"/etc/passwd", "/etc/shadow", "/proc/", "/sys/"} {
		if strings.HasPrefix(absPath, prefix) {
			return fmt.Errorf("access to system files not allowed")
		}
	}
	return nil
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// mergeConfigs copies the values src sets onto dst. Plain fields count as
// set when non-zero; pointer fields when non-nil, so an explicit zero or
// false in a file still wins.
func mergeConfigs(dst, src *Config) {
	setString(&dst.Version, src.Version)

	setFloat(&dst.Canvas.Width, src.Canvas.Width)
	setFloat(&dst.Canvas.Height, src.Canvas.Height)

	setPtr(&dst.Anchors.Start, src.Anchors.Start)
	setPtr(&dst.Anchors.End, src.Anchors.End)
	setPtr(&dst.Curve.ControlOffset, src.Curve.ControlOffset)
	setPtr(&dst.Curve.Tolerance, src.Curve.Tolerance)

	if src.Preview.DotCount != 0 {
		dst.Preview.DotCount = src.Preview.DotCount
	}

	setString(&dst.Output.DefaultFormat, src.Output.DefaultFormat)
	setString(&dst.Output.ColorMode, src.Output.ColorMode)
	setString(&dst.Output.Theme, src.Output.Theme)
	setPtr(&dst.Output.Verbose, src.Output.Verbose)

	setString(&dst.Server.Address, src.Server.Address)
	if src.Server.WriteTimeout != 0 {
		dst.Server.WriteTimeout = src.Server.WriteTimeout
	}
}

func setString(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}

func setFloat(dst *float64, src float64) {
	if src != 0 {
		*dst = src
	}
}

func setPtr[T any](dst **T, src *T) {
	if src != nil {
		*dst = src
	}
}

func parseInt(s string, dst *int) error {
	val, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

func parseBool(s string, dst *bool) error {
	val, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

func parseFloat(s string, dst *float64) error {
	val, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

func parseOptionalFloat(s string, dst **float64) error {
	var val float64
	if err := parseFloat(s, &val); err != nil {
		return err
	}
	*dst = &val
	return nil
}

func parseOptionalBool(s string, dst **bool) error {
	var val bool
	if err := parseBool(s, &val); err != nil {
		return err
	}
	*dst = &val
	return nil
}

// parsePoint parses "x,y".
func parsePoint(s string, dst **geom.Point) error {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return fmt.Errorf("expected \"x,y\", got %q", s)
	}
	var pt geom.Point
	if err := parseFloat(parts[0], &pt.X); err != nil {
		return err
	}
	if err := parseFloat(parts[1], &pt.Y); err != nil {
		return err
	}
	*dst = &pt
	return nil
}

func parseDuration(s string, dst *time.Duration) error {
	val, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	*dst = val
	return nil
}
