// Package mapview turns a plan into a draw list for the progress map: marker
// positions along the ascent curve, the progress indicator and at most one
// open detail panel.
package mapview

import (
	"strconv"

	"github.com/yildizm/TrailMap/internal/geom"
)

// Stacking order of map layers.
const (
	ZBackdrop = 0
	ZMarker   = 1
	ZOpen     = 10
	ZPanel    = 20
)

// DrawList is the output of one render pass. Consumers draw Backdrop, then
// Markers ordered by Z, then Indicator and Panel.
type DrawList struct {
	Title     string          `json:"title,omitempty"`
	Canvas    geom.Canvas     `json:"canvas"`
	Anchors   geom.AnchorPair `json:"anchors"`
	Preview   bool            `json:"preview"`
	Progress  int             `json:"progress"`
	Backdrop  Backdrop        `json:"backdrop"`
	Markers   []Marker        `json:"markers"`
	Indicator *Indicator      `json:"indicator,omitempty"`
	Panel     *Panel          `json:"panel,omitempty"`
}

// Len returns the number of markers.
func (d *DrawList) Len() int {
	return len(d.Markers)
}

// Backdrop holds the decorative mountain layers.
type Backdrop struct {
	Silhouette []geom.Point `json:"silhouette"`
	Trail      []geom.Point `json:"trail"`
}

// Marker is one rendered step or preview dot.
type Marker struct {
	Index   int        `json:"index"`
	Point   geom.Point `json:"point"`
	Left    float64    `json:"left"`
	Top     float64    `json:"top"`
	Label   string     `json:"label,omitempty"`
	Bound   bool       `json:"bound"`
	Open    bool       `json:"open"`
	Focused bool       `json:"focused"`
	Reached bool       `json:"reached"`
	Z       int        `json:"z"`
}

// Activatable reports whether the marker participates in the detail state
// machine. Preview dots do not.
func (m Marker) Activatable() bool {
	return m.Bound
}

// Indicator is the progress glyph placed on the current marker.
type Indicator struct {
	Index int        `json:"index"`
	Point geom.Point `json:"point"`
	Left  float64    `json:"left"`
	Top   float64    `json:"top"`
}

// ResourceItem is a resource line inside a detail panel.
type ResourceItem struct {
	Label string `json:"label"`
	URL   string `json:"url,omitempty"`
	Type  string `json:"type,omitempty"`
	Link  bool   `json:"link"`
}

// Panel is the detail card for the open marker, anchored above it.
type Panel struct {
	Index           int            `json:"index"`
	Badge           string         `json:"badge"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	Resources       []ResourceItem `json:"resources,omitempty"`
	EstimatedTime   string         `json:"estimated_time"`
	Difficulty      string         `json:"difficulty,omitempty"`
	ExpectedOutcome string         `json:"expected_outcome,omitempty"`
	Anchor          geom.Point     `json:"anchor"`
	Left            float64        `json:"left"`
	Top             float64        `json:"top"`
	Z               int            `json:"z"`
}

// HasResources reports whether the panel has a resources section.
func (p *Panel) HasResources() bool {
	return len(p.Resources) > 0
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
