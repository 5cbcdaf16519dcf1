package ui

import (
	"strings"
	"testing"

	"github.com/yildizm/TrailMap/internal/mapview"
)

func TestRasterizeMarkers(t *testing.T) {
	v := mapview.New(mapview.DefaultConfig())
	dl := v.Render(mapview.Input{Plan: testPlan(), Progress: 1})

	g := rasterize(dl, 40, 12)
	out := g.String()

	lines := strings.Split(out, "\n")
	if len(lines) != 12 {
		t.Fatalf("Expected 12 rows, got %d", len(lines))
	}
	for i, line := range lines {
		if n := len([]rune(line)); n != 40 {
			t.Errorf("row %d has %d columns", i, n)
		}
	}

	if !strings.ContainsRune(out, '▲') {
		t.Errorf("Expected indicator glyph")
	}
	if !strings.ContainsRune(out, '●') {
		t.Errorf("Expected reached marker glyph")
	}
	if !strings.ContainsRune(out, '○') {
		t.Errorf("Expected pending marker glyph")
	}
	if !strings.ContainsRune(out, '/') {
		t.Errorf("Expected mountain slope")
	}
}

func TestRasterizeStartMarkerBottomLeft(t *testing.T) {
	v := mapview.New(mapview.DefaultConfig())
	dl := v.Render(mapview.Input{Plan: testPlan(), Progress: 0})

	g := rasterize(dl, 40, 12)

	// start anchor (80, 620) lies below the canvas and clamps to the last row
	col, row := dl.Canvas.Cell(dl.Markers[0].Point, 40, 12)
	if row != 11 {
		t.Fatalf("Expected start marker on the last row, got %d", row)
	}
	if g.kinds[row][col] != cellIndicator {
		t.Errorf("Expected indicator over the first marker, got kind %d", g.kinds[row][col])
	}
}

func TestRasterizePreview(t *testing.T) {
	v := mapview.New(mapview.DefaultConfig())
	dl := v.Render(mapview.Input{DotCount: 4})

	out := rasterize(dl, 30, 10).String()
	if !strings.ContainsRune(out, '∙') {
		t.Errorf("Expected preview dots")
	}
	if strings.ContainsRune(out, '○') {
		t.Errorf("Preview dots are not step markers")
	}
}

func TestRasterizeEmptyGrid(t *testing.T) {
	v := mapview.New(mapview.DefaultConfig())
	dl := v.Render(mapview.Input{Plan: testPlan()})

	if out := rasterize(dl, 0, 0).String(); out != "" {
		t.Errorf("Expected empty raster, got %q", out)
	}
}

func TestGridLayering(t *testing.T) {
	g := newGrid(3, 1)
	g.set(1, 0, '●', cellReached)
	g.set(1, 0, '/', cellMountain)
	if g.runes[0][1] != '●' {
		t.Errorf("Lower layer must not overwrite a marker")
	}
	g.set(5, 5, 'x', cellIndicator)
}
