package formatter

import (
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/yildizm/TrailMap/internal/geom"
	"github.com/yildizm/TrailMap/internal/mapview"
)

const (
	markerRadius     = 9.0
	indicatorRadius  = 14.0
	panelWidth       = 280.0
	panelLineHeight  = 16.0
	panelPadding     = 12.0
	panelGap         = 18.0
	panelWrapColumns = 42
	svgFont          = "Arial, sans-serif"
)

// SVGTheme holds the colors of the SVG map
type SVGTheme struct {
	Sky       string
	Mountain  string
	Trail     string
	Marker    string
	Reached   string
	Preview   string
	Open      string
	Indicator string
	PanelFill string
	PanelText string
	Link      string
}

// DefaultSVGTheme returns the stock palette
func DefaultSVGTheme() SVGTheme {
	return SVGTheme{
		Sky:       "#eef5fb",
		Mountain:  "#8fa9bf",
		Trail:     "#6b4f2c",
		Marker:    "#ffffff",
		Reached:   "#2f9e44",
		Preview:   "#c9d3dc",
		Open:      "#f59f00",
		Indicator: "#e03131",
		PanelFill: "#ffffff",
		PanelText: "#212529",
		Link:      "#1c7ed6",
	}
}

// svgFormatter draws the draw list as a standalone SVG document
type svgFormatter struct {
	theme SVGTheme
}

// NewSVG creates a new SVG formatter with the default theme
func NewSVG() Formatter {
	return NewSVGWithTheme(DefaultSVGTheme())
}

// NewSVGWithTheme creates a new SVG formatter with a custom palette
func NewSVGWithTheme(theme SVGTheme) Formatter {
	return &svgFormatter{theme: theme}
}

func (f *svgFormatter) Format(dl *mapview.DrawList) ([]byte, error) {
	var svg strings.Builder
	w, h := dl.Canvas.Width, dl.Canvas.Height

	fmt.Fprintf(&svg, `<svg width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f" xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink">`+"\n",
		w, h, w, h)
	fmt.Fprintf(&svg, "  <title>%s</title>\n", escapeXML(mapTitle(dl)))
	fmt.Fprintf(&svg, `  <rect x="0" y="0" width="%.0f" height="%.0f" fill="%s"/>`+"\n", w, h, f.theme.Sky)

	f.writeBackdrop(&svg, dl.Backdrop)
	f.writeMarkers(&svg, dl)
	if dl.Indicator != nil {
		f.writeIndicator(&svg, dl.Indicator)
	}
	if dl.Panel != nil {
		f.writePanel(&svg, dl.Panel, dl.Canvas)
	}

	svg.WriteString("</svg>\n")
	return []byte(svg.String()), nil
}

func (f *svgFormatter) writeBackdrop(svg *strings.Builder, bd mapview.Backdrop) {
	if len(bd.Silhouette) > 0 {
		fmt.Fprintf(svg, `  <path class="silhouette" d="%s" fill="%s"/>`+"\n", pathData(bd.Silhouette, true), f.theme.Mountain)
	}
	if len(bd.Trail) > 1 {
		fmt.Fprintf(svg, `  <polyline class="trail" points="%s" fill="none" stroke="%s" stroke-width="3" stroke-dasharray="6 4"/>`+"\n",
			pointList(bd.Trail), f.theme.Trail)
	}
}

// writeMarkers draws markers in ascending Z so the open marker lands on top
func (f *svgFormatter) writeMarkers(svg *strings.Builder, dl *mapview.DrawList) {
	ordered := make([]mapview.Marker, len(dl.Markers))
	copy(ordered, dl.Markers)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Z < ordered[j].Z
	})

	for _, m := range ordered {
		fill := f.theme.Marker
		switch {
		case !m.Bound:
			fill = f.theme.Preview
		case m.Open:
			fill = f.theme.Open
		case m.Reached:
			fill = f.theme.Reached
		}
		stroke := f.theme.Trail
		if m.Focused {
			stroke = f.theme.Open
		}

		fmt.Fprintf(svg, `  <g class="marker" data-index="%d">`, m.Index)
		if m.Label != "" {
			fmt.Fprintf(svg, "<title>%s</title>", escapeXML(m.Label))
		}
		fmt.Fprintf(svg, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s" stroke="%s" stroke-width="2"/>`,
			m.Point.X, m.Point.Y, markerRadius, fill, stroke)
		if m.Bound {
			fmt.Fprintf(svg, `<text x="%.2f" y="%.2f" font-family="%s" font-size="10" fill="%s" text-anchor="middle" dominant-baseline="middle">%d</text>`,
				m.Point.X, m.Point.Y, svgFont, f.theme.PanelText, m.Index+1)
		}
		svg.WriteString("</g>\n")
	}
}

func (f *svgFormatter) writeIndicator(svg *strings.Builder, ind *mapview.Indicator) {
	fmt.Fprintf(svg, `  <circle class="indicator" cx="%.2f" cy="%.2f" r="%.2f" fill="none" stroke="%s" stroke-width="3"/>`+"\n",
		ind.Point.X, ind.Point.Y, indicatorRadius, f.theme.Indicator)
}

// writePanel draws the detail card above its marker, kept inside the canvas
func (f *svgFormatter) writePanel(svg *strings.Builder, p *mapview.Panel, canvas geom.Canvas) {
	lines := panelLines(p)
	height := 2*panelPadding + float64(len(lines))*panelLineHeight

	x := clamp(p.Anchor.X-panelWidth/2, 0, canvas.Width-panelWidth)
	y := clamp(p.Anchor.Y-height-panelGap, 0, canvas.Height-height)

	fmt.Fprintf(svg, `  <g class="panel" data-index="%d">`+"\n", p.Index)
	fmt.Fprintf(svg, `    <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="8" fill="%s" stroke="%s"/>`+"\n",
		x, y, panelWidth, height, f.theme.PanelFill, f.theme.Open)

	for i, line := range lines {
		ty := y + panelPadding + float64(i)*panelLineHeight + panelLineHeight/2
		weight := "normal"
		if line.bold {
			weight = "bold"
		}
		fill := f.theme.PanelText
		if line.href != "" {
			fill = f.theme.Link
			fmt.Fprintf(svg, `    <a xlink:href="%s" target="_blank">`, escapeXML(line.href))
		} else {
			svg.WriteString("    ")
		}
		fmt.Fprintf(svg, `<text x="%.2f" y="%.2f" font-family="%s" font-size="12" font-weight="%s" fill="%s" dominant-baseline="middle">%s</text>`,
			x+panelPadding, ty, svgFont, weight, fill, escapeXML(line.text))
		if line.href != "" {
			svg.WriteString("</a>")
		}
		svg.WriteString("\n")
	}
	svg.WriteString("  </g>\n")
}

type panelLine struct {
	text string
	href string
	bold bool
}

func panelLines(p *mapview.Panel) []panelLine {
	lines := []panelLine{
		{text: p.Badge, bold: true},
		{text: p.Title, bold: true},
	}
	for _, l := range wrapText(p.Description, panelWrapColumns) {
		lines = append(lines, panelLine{text: l})
	}
	if p.HasResources() {
		lines = append(lines, panelLine{text: "Resources", bold: true})
		for _, r := range p.Resources {
			text := "• " + r.Label
			if r.Type != "" {
				text += " (" + r.Type + ")"
			}
			line := panelLine{text: text}
			if r.Link {
				line.href = r.URL
			}
			lines = append(lines, line)
		}
	}
	lines = append(lines, panelLine{text: "Time: " + p.EstimatedTime})
	if p.Difficulty != "" {
		lines = append(lines, panelLine{text: "Difficulty: " + p.Difficulty})
	}
	if p.ExpectedOutcome != "" {
		for _, l := range wrapText("Outcome: "+p.ExpectedOutcome, panelWrapColumns) {
			lines = append(lines, panelLine{text: l})
		}
	}
	return lines
}

// wrapText breaks s on word boundaries into lines of at most width runes
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len([]rune(current))+1+len([]rune(word)) > width {
			lines = append(lines, current)
			current = word
			continue
		}
		current += " " + word
	}
	return append(lines, current)
}

func pathData(points []geom.Point, closed bool) string {
	var d strings.Builder
	for i, pt := range points {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		fmt.Fprintf(&d, "%s%.2f,%.2f ", cmd, pt.X, pt.Y)
	}
	if closed {
		d.WriteString("Z")
	}
	return strings.TrimSpace(d.String())
}

func pointList(points []geom.Point) string {
	parts := make([]string, len(points))
	for i, pt := range points {
		parts[i] = fmt.Sprintf("%.2f,%.2f", pt.X, pt.Y)
	}
	return strings.Join(parts, " ")
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func escapeXML(s string) string {
	return html.EscapeString(s)
}
