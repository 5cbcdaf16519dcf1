package config

// SampleConfig returns a fully documented configuration file
func SampleConfig() string {
	return `# TrailMap configuration
version: "1.0"

# Logical canvas that marker coordinates are laid out on.
canvas:
  width: 800
  height: 600

# Start (base camp) and end (summit) of the ascent curve, in canvas units.
anchors:
  start: {x: 80, y: 620}
  end: {x: 500, y: 180}

curve:
  # Added to the anchor midpoint to form the Bézier control point.
  control_offset: {x: 50, y: 450}
  # Largest x error for which the Bézier y is used instead of the cubic ease.
  tolerance: 1

# Markers drawn before a plan is available.
preview:
  dot_count: 10

output:
  default_format: text   # text | json | markdown | svg | csv
  color_mode: auto       # auto | always | never
  theme: default         # default | high-contrast | minimal
  verbose: false

server:
  address: ":8080"
  write_timeout: 10s
`
}

// MinimalSampleConfig returns a compact configuration with essential settings
func MinimalSampleConfig() string {
	return `version: "1.0"
preview:
  dot_count: 10
output:
  default_format: text
`
}
