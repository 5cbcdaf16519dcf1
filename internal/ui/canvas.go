package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yildizm/TrailMap/internal/geom"
	"github.com/yildizm/TrailMap/internal/mapview"
)

// grid is a character raster of a draw list
type grid struct {
	cols, rows int
	runes      [][]rune
	kinds      [][]cellKind
}

func newGrid(cols, rows int) *grid {
	g := &grid{cols: cols, rows: rows}
	g.runes = make([][]rune, rows)
	g.kinds = make([][]cellKind, rows)
	for y := 0; y < rows; y++ {
		g.runes[y] = []rune(strings.Repeat(" ", cols))
		g.kinds[y] = make([]cellKind, cols)
	}
	return g
}

// set writes a cell unless a higher layer already owns it
func (g *grid) set(col, row int, r rune, k cellKind) {
	if col < 0 || row < 0 || col >= g.cols || row >= g.rows {
		return
	}
	if g.kinds[row][col] > k {
		return
	}
	g.runes[row][col] = r
	g.kinds[row][col] = k
}

// line draws a Bresenham line between two cells
func (g *grid) line(x0, y0, x1, y1 int, r rune, k cellKind) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		g.set(x0, y0, r, k)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (g *grid) String() string {
	lines := make([]string, g.rows)
	for y := range g.runes {
		lines[y] = string(g.runes[y])
	}
	return strings.Join(lines, "\n")
}

// render styles runs of equal cell kinds
func (g *grid) render(styles *Styles) string {
	lines := make([]string, g.rows)
	for y := 0; y < g.rows; y++ {
		var b strings.Builder
		start := 0
		for x := 1; x <= g.cols; x++ {
			if x < g.cols && g.kinds[y][x] == g.kinds[y][start] {
				continue
			}
			run := string(g.runes[y][start:x])
			b.WriteString(styles.render(styleFor(styles, g.kinds[y][start]), run))
			start = x
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

func styleFor(styles *Styles, k cellKind) lipgloss.Style {
	switch k {
	case cellMountain:
		return styles.Mountain
	case cellTrail:
		return styles.Trail
	case cellPreview:
		return styles.Muted
	case cellReached:
		return styles.Reached
	case cellOpen:
		return styles.Open
	case cellFocused:
		return styles.Focused
	case cellIndicator:
		return styles.Indicator
	case cellMarker:
		return styles.Marker
	default:
		return styles.Muted
	}
}

// rasterize draws the backdrop, trail, markers and indicator onto a grid
func rasterize(dl *mapview.DrawList, cols, rows int) *grid {
	g := newGrid(cols, rows)
	if cols <= 0 || rows <= 0 {
		return g
	}
	cell := func(pt geom.Point) (int, int) {
		return dl.Canvas.Cell(pt, cols, rows)
	}

	sil := dl.Backdrop.Silhouette
	for i := 0; i+1 < len(sil); i++ {
		x0, y0 := cell(sil[i])
		x1, y1 := cell(sil[i+1])
		slope := '\\'
		if y1 < y0 {
			slope = '/'
		}
		g.line(x0, y0, x1, y1, slope, cellMountain)
	}

	trail := dl.Backdrop.Trail
	for i := 0; i+1 < len(trail); i++ {
		x0, y0 := cell(trail[i])
		x1, y1 := cell(trail[i+1])
		g.line(x0, y0, x1, y1, '·', cellTrail)
	}

	markers := make([]mapview.Marker, len(dl.Markers))
	copy(markers, dl.Markers)
	sort.SliceStable(markers, func(i, j int) bool {
		return markers[i].Z < markers[j].Z
	})
	for _, m := range markers {
		r, k := markerCell(m)
		x, y := cell(m.Point)
		g.set(x, y, r, k)
	}

	if dl.Indicator != nil {
		x, y := cell(dl.Indicator.Point)
		g.set(x, y, '▲', cellIndicator)
	}
	return g
}

func markerCell(m mapview.Marker) (rune, cellKind) {
	switch {
	case !m.Bound:
		return '∙', cellPreview
	case m.Focused && m.Open:
		return '◆', cellFocused
	case m.Focused:
		if m.Reached {
			return '●', cellFocused
		}
		return '○', cellFocused
	case m.Open:
		return '◆', cellOpen
	case m.Reached:
		return '●', cellReached
	default:
		return '○', cellMarker
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
