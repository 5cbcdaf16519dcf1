package config

import (
	"fmt"
	"math"
	"time"

	"github.com/yildizm/TrailMap/internal/curve"
	"github.com/yildizm/TrailMap/internal/geom"
	"github.com/yildizm/TrailMap/internal/mapview"
)

// Config holds the complete application configuration
type Config struct {
	Version string        `yaml:"version" json:"version"`
	Canvas  CanvasConfig  `yaml:"canvas" json:"canvas"`
	Anchors AnchorsConfig `yaml:"anchors" json:"anchors"`
	Curve   CurveConfig   `yaml:"curve" json:"curve"`
	Preview PreviewConfig `yaml:"preview" json:"preview"`
	Output  OutputConfig  `yaml:"output" json:"output"`
	Server  ServerConfig  `yaml:"server" json:"server"`
}

// CanvasConfig sets the logical canvas size markers are laid out on
type CanvasConfig struct {
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

// AnchorsConfig sets the start and end of the ascent curve. Pointers keep an
// explicit (0, 0) distinguishable from an omitted value.
type AnchorsConfig struct {
	Start *geom.Point `yaml:"start,omitempty" json:"start,omitempty"`
	End   *geom.Point `yaml:"end,omitempty" json:"end,omitempty"`
}

// CurveConfig tunes the marker layout. Pointers let an explicit zero
// override a lower-priority source.
type CurveConfig struct {
	ControlOffset *geom.Point `yaml:"control_offset,omitempty" json:"control_offset,omitempty"` // added to the anchor midpoint
	Tolerance     *float64    `yaml:"tolerance,omitempty" json:"tolerance,omitempty"`           // max x error for the Bézier branch
}

// PreviewConfig configures rendering before a plan exists
type PreviewConfig struct {
	DotCount int `yaml:"dot_count" json:"dot_count"`
}

// OutputConfig configures output formatting and display
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"` // text|json|markdown|svg|csv
	ColorMode     string `yaml:"color_mode" json:"color_mode"`         // auto|always|never
	Theme         string `yaml:"theme" json:"theme"`                   // default|high-contrast|minimal
	Verbose       *bool  `yaml:"verbose,omitempty" json:"verbose,omitempty"`
}

// IsVerbose reports whether verbose output is enabled
func (o OutputConfig) IsVerbose() bool {
	return o.Verbose != nil && *o.Verbose
}

// ServerConfig configures the live map server
type ServerConfig struct {
	Address      string        `yaml:"address" json:"address"`
	WriteTimeout time.Duration `yaml:"write_timeout" json:"write_timeout"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	anchors := geom.DefaultAnchors()
	offset := geom.Pt(curve.DefaultControlOffsetX, curve.DefaultControlOffsetY)
	tolerance := curve.DefaultTolerance
	verbose := false
	return &Config{
		Version: "1.0",
		Canvas: CanvasConfig{
			Width:  geom.DefaultWidth,
			Height: geom.DefaultHeight,
		},
		Anchors: AnchorsConfig{
			Start: &anchors.Start,
			End:   &anchors.End,
		},
		Curve: CurveConfig{
			ControlOffset: &offset,
			Tolerance:     &tolerance,
		},
		Preview: PreviewConfig{
			DotCount: mapview.DefaultDotCount,
		},
		Output: OutputConfig{
			DefaultFormat: "text",
			ColorMode:     "auto",
			Theme:         "default",
			Verbose:       &verbose,
		},
		Server: ServerConfig{
			Address:      ":8080",
			WriteTimeout: 10 * time.Second,
		},
	}
}

// ViewConfig converts the configuration into map view layout parameters
func (c *Config) ViewConfig() mapview.Config {
	cfg := mapview.DefaultConfig()
	cfg.Canvas = geom.Canvas{Width: c.Canvas.Width, Height: c.Canvas.Height}
	if c.Anchors.Start != nil {
		cfg.Anchors.Start = *c.Anchors.Start
	}
	if c.Anchors.End != nil {
		cfg.Anchors.End = *c.Anchors.End
	}
	if c.Curve.ControlOffset != nil {
		cfg.Curve.ControlOffset = *c.Curve.ControlOffset
	}
	if c.Curve.Tolerance != nil {
		cfg.Curve.Tolerance = *c.Curve.Tolerance
	}
	cfg.DotCount = c.Preview.DotCount
	return cfg
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateCanvasConfig(); err != nil {
		return err
	}
	if err := c.validateCurveConfig(); err != nil {
		return err
	}
	if err := c.validateOutputConfig(); err != nil {
		return err
	}
	if err := c.validateServerConfig(); err != nil {
		return err
	}
	return nil
}

// validateCanvasConfig validates canvas and anchor configuration
func (c *Config) validateCanvasConfig() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas width and height must be greater than 0")
	}
	for name, pt := range map[string]*geom.Point{"start": c.Anchors.Start, "end": c.Anchors.End} {
		if pt != nil && (pt.IsNaN() || math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)) {
			return fmt.Errorf("anchor %s must be a finite point", name)
		}
	}
	return nil
}

// validateCurveConfig validates layout configuration
func (c *Config) validateCurveConfig() error {
	if c.Curve.Tolerance != nil && *c.Curve.Tolerance < 0 {
		return fmt.Errorf("tolerance must be non-negative")
	}
	if c.Preview.DotCount < 1 {
		return fmt.Errorf("dot_count must be greater than 0")
	}
	return nil
}

// validateOutputConfig validates output-related configuration
func (c *Config) validateOutputConfig() error {
	if c.Output.DefaultFormat != "" {
		validFormats := map[string]bool{
			"json":     true,
			"text":     true,
			"markdown": true,
			"svg":      true,
			"csv":      true,
		}
		if !validFormats[c.Output.DefaultFormat] {
			return fmt.Errorf("invalid output format: %s (must be one of: json, text, markdown, svg, csv)", c.Output.DefaultFormat)
		}
	}
	if c.Output.ColorMode != "" {
		validColorModes := map[string]bool{
			"auto":   true,
			"always": true,
			"never":  true,
		}
		if !validColorModes[c.Output.ColorMode] {
			return fmt.Errorf("invalid color mode: %s (must be one of: auto, always, never)", c.Output.ColorMode)
		}
	}
	if c.Output.Theme != "" {
		validThemes := map[string]bool{
			"default":       true,
			"high-contrast": true,
			"minimal":       true,
		}
		if !validThemes[c.Output.Theme] {
			return fmt.Errorf("invalid theme: %s (must be one of: default, high-contrast, minimal)", c.Output.Theme)
		}
	}
	return nil
}

// validateServerConfig validates server configuration
func (c *Config) validateServerConfig() error {
	if c.Server.WriteTimeout < 0 {
		return fmt.Errorf("write_timeout must be non-negative")
	}
	return nil
}
