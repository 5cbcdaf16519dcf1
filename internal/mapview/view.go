package mapview

import (
	"github.com/yildizm/TrailMap/internal/curve"
	"github.com/yildizm/TrailMap/internal/geom"
	"github.com/yildizm/TrailMap/internal/plan"
)

// DefaultDotCount is the number of preview dots shown before a plan exists.
const DefaultDotCount = 10

// Config holds the fixed layout parameters of a view.
type Config struct {
	Canvas   geom.Canvas
	Anchors  geom.AnchorPair
	Curve    curve.Options
	DotCount int
}

// DefaultConfig returns the stock 800x600 layout.
func DefaultConfig() Config {
	return Config{
		Canvas:   geom.DefaultCanvas(),
		Anchors:  geom.DefaultAnchors(),
		Curve:    curve.DefaultOptions(),
		DotCount: DefaultDotCount,
	}
}

// Input is what a caller supplies for one render pass.
type Input struct {
	// Plan may be nil or empty, which selects preview mode.
	Plan *plan.Plan
	// DotCount overrides Config.DotCount in preview mode when positive.
	DotCount int
	// Progress is the caller-owned progress index. Out-of-range values
	// omit the indicator.
	Progress int
	// Anchors overrides Config.Anchors when set.
	Anchors *geom.AnchorPair
}

// View renders progress maps and owns the detail-panel state. A View is not
// safe for concurrent use; give each interactive session its own.
type View struct {
	cfg    Config
	cache  *curve.Cache
	detail DetailState
	focus  int
	last   []Marker
}

// Option configures a View.
type Option func(*View)

// WithCache shares a layout cache between views.
func WithCache(c *curve.Cache) Option {
	return func(v *View) {
		v.cache = c
	}
}

// New creates a view with the panel closed and no marker focused.
func New(cfg Config, opts ...Option) *View {
	v := &View{
		cfg:   cfg,
		focus: -1,
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.cache == nil {
		v.cache = curve.NewCache(0)
	}
	return v
}

// Config returns the view's layout configuration.
func (v *View) Config() Config {
	return v.cfg
}

// Detail returns the current detail state.
func (v *View) Detail() DetailState {
	return v.detail
}

// Focus returns the focused marker index, or -1.
func (v *View) Focus() int {
	return v.focus
}

// Activate toggles the detail panel of marker i from the most recent render.
// Inert preview markers and unknown indices are ignored; the return value
// reports whether the state changed.
func (v *View) Activate(i int) bool {
	if !InRange(i, len(v.last)) || !v.last[i].Activatable() {
		return false
	}
	v.detail = v.detail.Activate(i)
	v.focus = i
	return true
}

// ActivateFocused activates the focused marker.
func (v *View) ActivateFocused() bool {
	return v.Activate(v.focus)
}

// Close closes any open panel.
func (v *View) Close() {
	v.detail = Closed()
}

// FocusNext moves focus to the next activatable marker, wrapping around.
func (v *View) FocusNext() bool {
	return v.moveFocus(1)
}

// FocusPrev moves focus to the previous activatable marker, wrapping around.
func (v *View) FocusPrev() bool {
	return v.moveFocus(-1)
}

func (v *View) moveFocus(dir int) bool {
	n := len(v.last)
	if n == 0 {
		return false
	}
	start := v.focus
	if !InRange(start, n) {
		start = -1
		if dir < 0 {
			start = n
		}
	}
	for step := 1; step <= n; step++ {
		i := ((start+dir*step)%n + n) % n
		if v.last[i].Activatable() {
			v.focus = i
			return true
		}
	}
	return false
}

// Render runs the pipeline: markers, then panel, then indicator.
func (v *View) Render(in Input) *DrawList {
	anchors := v.cfg.Anchors
	if in.Anchors != nil {
		anchors = *in.Anchors
	}

	n := in.Plan.Len()
	preview := n == 0
	if preview {
		n = in.DotCount
		if n <= 0 {
			n = v.cfg.DotCount
		}
	}

	points := v.cache.Markers(n, anchors, v.cfg.Curve)

	dl := &DrawList{
		Canvas:   v.cfg.Canvas,
		Anchors:  anchors,
		Preview:  preview,
		Progress: in.Progress,
		Backdrop: v.backdrop(points),
		Markers:  v.markers(in.Plan, points, preview, in.Progress),
	}
	if in.Plan != nil {
		dl.Title = in.Plan.Goal
	}

	v.last = dl.Markers
	if preview || !InRange(v.focus, n) {
		v.focus = -1
	}
	if i, open := v.detail.Index(); open && (preview || !InRange(i, n)) {
		v.detail = Closed()
	}

	dl.Panel = v.panel(in.Plan, dl.Markers)
	dl.Indicator = v.indicator(dl.Markers, in.Progress)
	return dl
}

func (v *View) markers(p *plan.Plan, points []geom.Point, preview bool, progress int) []Marker {
	markers := make([]Marker, len(points))
	for i, pt := range points {
		left, top := v.cfg.Canvas.Percent(pt)
		m := Marker{
			Index:   i,
			Point:   pt,
			Left:    left,
			Top:     top,
			Reached: InRange(progress, len(points)) && i <= progress,
			Z:       ZMarker,
		}
		if !preview {
			step, _ := p.Step(i)
			m.Bound = true
			m.Label = step.DisplayTitle(i)
			m.Open = v.detail.IsOpen(i)
			m.Focused = v.focus == i
			if m.Open {
				m.Z = ZOpen
			}
		}
		markers[i] = m
	}
	return markers
}

func (v *View) panel(p *plan.Plan, markers []Marker) *Panel {
	i, open := v.detail.Index()
	if !open || !InRange(i, len(markers)) || !markers[i].Bound {
		return nil
	}
	step, ok := p.Step(i)
	if !ok {
		return nil
	}
	return BuildPanel(*step, i, markers[i])
}

func (v *View) indicator(markers []Marker, progress int) *Indicator {
	if !InRange(progress, len(markers)) {
		return nil
	}
	m := markers[progress]
	return &Indicator{
		Index: progress,
		Point: m.Point,
		Left:  m.Left,
		Top:   m.Top,
	}
}

// backdrop builds the mountain silhouette and the trail through the markers.
func (v *View) backdrop(points []geom.Point) Backdrop {
	w, h := v.cfg.Canvas.Width, v.cfg.Canvas.Height
	trail := make([]geom.Point, 0, len(points))
	trail = append(trail, points...)
	return Backdrop{
		Silhouette: []geom.Point{geom.Pt(0, h), geom.Pt(w/2, 0), geom.Pt(w, h)},
		Trail:      trail,
	}
}

// BuildPanel formats step i as a detail card anchored above its marker.
func BuildPanel(step plan.Step, i int, anchor Marker) *Panel {
	visible := step.VisibleResources()
	var resources []ResourceItem
	if len(visible) > 0 {
		resources = make([]ResourceItem, 0, len(visible))
		for _, r := range visible {
			resources = append(resources, ResourceItem{
				Label: r.Label(),
				URL:   r.URL,
				Type:  r.Type,
				Link:  r.IsLink(),
			})
		}
	}

	return &Panel{
		Index:           i,
		Badge:           plan.StepLabel(i),
		Title:           step.DisplayTitle(i),
		Description:     step.DisplayDescription(),
		Resources:       resources,
		EstimatedTime:   step.DisplayTime(),
		Difficulty:      step.Difficulty,
		ExpectedOutcome: step.ExpectedOutcome,
		Anchor:          anchor.Point,
		Left:            anchor.Left,
		Top:             anchor.Top,
		Z:               ZPanel,
	}
}
